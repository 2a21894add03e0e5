// Package ui holds presentation helpers for the task board: the state of the
// create/edit task dialog, priority colors and the terminal board renderer.
package ui

import "github.com/dmitrijs2005/taskboard/internal/client/models"

// TaskDialog tracks whether the task form is open and what it edits.
// The zero value is a closed dialog.
type TaskDialog struct {
	Open     bool
	EditMode bool
	Editing  *models.Task
}

// OpenCreate opens an empty form for a new task.
func (d *TaskDialog) OpenCreate() {
	d.EditMode = false
	d.Editing = nil
	d.Open = true
}

// OpenEdit opens the form prefilled with task.
func (d *TaskDialog) OpenEdit(task *models.Task) {
	d.EditMode = true
	d.Editing = task
	d.Open = true
}

// Close hides the form. The mode and edited task are kept until the next
// Open call.
func (d *TaskDialog) Close() {
	d.Open = false
}

// Input returns the form prefilled from the edited task, or an empty form
// defaulting to status when creating.
func (d *TaskDialog) Input(status string) models.TaskInput {
	if !d.EditMode || d.Editing == nil {
		return models.TaskInput{Status: status, Priority: models.PriorityMedium}
	}
	t := d.Editing
	in := models.TaskInput{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}
	if t.DueDate != nil {
		in.DueDate = DueDateInput(*t.DueDate)
	}
	return in
}
