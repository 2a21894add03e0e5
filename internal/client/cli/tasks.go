package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/router"
	"github.com/dmitrijs2005/taskboard/internal/client/ui"
	"github.com/dmitrijs2005/taskboard/internal/common"
)

// open shows the screen at path.
func (a *App) open(ctx context.Context, path string) error {
	switch router.Navigate(path, a.isLoggedIn()).Path {
	case router.PathDashboard, router.PathTasks:
		return a.Board(ctx)
	case router.PathUsers:
		return a.Users(ctx)
	case router.PathAccountSettings:
		return a.WhoAmI(ctx)
	}
	return nil
}

// Board renders every column of the board.
func (a *App) Board(ctx context.Context) error {
	a.println(ui.RenderBoard(a.taskService.Board()))
	return nil
}

// List prints the tasks in one status.
func (a *App) List(ctx context.Context, status string) error {
	if !a.knownStatus(status) {
		return common.Validation(fmt.Sprintf("invalid status: %s", status))
	}
	tasks := a.taskService.TasksByStatus(status)
	if len(tasks) == 0 {
		a.println("No tasks")
		return nil
	}
	for _, t := range tasks {
		a.println(formatTaskLine(t))
	}
	return nil
}

// AddTask opens the create dialog and adds the task it returns.
func (a *App) AddTask(ctx context.Context) error {
	a.dialog.OpenCreate()
	defer a.dialog.Close()

	in, err := a.promptTask(a.dialog.Input(models.StatusTodo))
	if err != nil {
		return err
	}
	t, err := a.taskService.AddTask(ctx, in)
	if err != nil {
		return err
	}
	a.println("Added " + ui.ShortID(t.ID))
	return nil
}

// EditTask opens the edit dialog for the task matching id and saves it.
func (a *App) EditTask(ctx context.Context, id string) error {
	t, err := a.findTask(id)
	if err != nil {
		return err
	}

	a.dialog.OpenEdit(t)
	defer a.dialog.Close()

	in, err := a.promptTask(a.dialog.Input(""))
	if err != nil {
		return err
	}
	if _, err := a.taskService.UpdateTask(ctx, t.ID, in); err != nil {
		return err
	}
	a.println("Updated " + ui.ShortID(t.ID))
	return nil
}

// DeleteTask removes the task matching id.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	t, err := a.findTask(id)
	if err != nil {
		return err
	}
	if err := a.taskService.DeleteTask(ctx, t.ID); err != nil {
		return err
	}
	a.println("Deleted " + ui.ShortID(t.ID))
	return nil
}

// findTask accepts a full id or a unique id prefix, as printed by the board.
func (a *App) findTask(id string) (*models.Task, error) {
	if t, ok := a.taskService.Task(id); ok {
		return t, nil
	}
	var match *models.Task
	for _, t := range a.taskService.Tasks() {
		if !strings.HasPrefix(t.ID, id) {
			continue
		}
		if match != nil {
			return nil, common.Validation(fmt.Sprintf("ambiguous task id: %s", id))
		}
		match = &t
	}
	if match == nil {
		return nil, common.ErrTaskNotFound
	}
	return match, nil
}

// promptTask fills in the task form, offering the current values as
// defaults.
func (a *App) promptTask(in models.TaskInput) (models.TaskInput, error) {
	var err error
	if in.Title, err = GetWithDefault(a.reader, "Title", in.Title, a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetWithDefault(a.reader, "Description", in.Description, a.out); err != nil {
		return in, err
	}
	if in.Status, err = GetWithDefault(a.reader, "Status ("+a.statusIDs()+")", in.Status, a.out); err != nil {
		return in, err
	}
	prio, err := GetWithDefault(a.reader, "Priority (low, medium, high)", string(in.Priority), a.out)
	if err != nil {
		return in, err
	}
	in.Priority = models.Priority(prio)
	if in.Priority != "" && !in.Priority.Known() {
		a.println(fmt.Sprintf("Note: %q is not a known priority; it is saved as is", prio))
	}
	if in.DueDate, err = GetWithDefault(a.reader, "Due date (YYYY-MM-DD[THH:MM], '-' for none)", in.DueDate, a.out); err != nil {
		return in, err
	}
	if in.DueDate == "-" {
		in.DueDate = ""
	}
	return in, nil
}

func (a *App) knownStatus(id string) bool {
	for _, s := range a.taskService.Statuses() {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (a *App) statusIDs() string {
	statuses := a.taskService.Statuses()
	ids := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, ", ")
}

func formatTaskLine(t models.Task) string {
	line := fmt.Sprintf("%s  %-6s  %s", ui.ShortID(t.ID), t.Priority, t.Title)
	if t.DueDate != nil {
		line += "  (due " + ui.FormatDueDate(*t.DueDate) + ")"
	}
	return line
}
