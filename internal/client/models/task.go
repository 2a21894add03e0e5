package models

import "time"

// Priority is a task priority. Values outside the three known ones are
// stored as given.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// OrDefault substitutes PriorityMedium for an empty priority.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// Known reports whether p is one of low, medium or high.
func (p Priority) Known() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a card on the board.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		c.UpdatedAt = &u
	}
	return c
}

// TaskInput is the task form used for both create and update. Title and
// Status are required; the rest is optional. DueDate is raw user input and
// is parsed by the store.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    Priority
	DueDate     string
}

// Status is a board column.
type Status struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Status identifiers.
const (
	StatusTodo       = "todo"
	StatusInProgress = "inProgress"
	StatusDone       = "done"
)

// DefaultStatuses returns a fresh copy of the fixed board columns.
func DefaultStatuses() []Status {
	return []Status{
		{ID: StatusTodo, Title: "Todo"},
		{ID: StatusInProgress, Title: "In Progress"},
		{ID: StatusDone, Title: "Done"},
	}
}

// Column is a status together with its tasks, in board order.
type Column struct {
	Status Status
	Tasks  []Task
}
