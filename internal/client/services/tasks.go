package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// TaskService manages the task board.
//
// Contract:
//   - AddTask / UpdateTask: validate the form, then create or replace a task.
//   - DeleteTask: remove a task; missing ids are ignored. Removing the last
//     task deletes the stored document.
//   - Statuses, Tasks, TasksByStatus, Board, Task: reads returning copies.
//
// Only tasks are persisted; the statuses are fixed.
type TaskService interface {
	AddTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	Statuses() []models.Status
	Tasks() []models.Task
	TasksByStatus(statusID string) []models.Task
	Board() []models.Column
	Task(id string) (*models.Task, bool)
}

type taskService struct {
	mu       sync.Mutex
	repo     kv.Repository
	now      func() time.Time
	log      logging.Logger
	statuses []models.Status
	tasks    []models.Task
}

// NewTaskService loads the saved tasks from repo.
func NewTaskService(ctx context.Context, repo kv.Repository, opts ...Option) (TaskService, error) {
	o := buildOptions(opts)
	s := &taskService{
		repo:     repo,
		now:      o.now,
		log:      o.log.With("store", "tasks"),
		statuses: models.DefaultStatuses(),
	}

	var st models.TasksState
	if _, err := loadState(ctx, repo, common.TasksStoreKey, &st); err != nil {
		return nil, err
	}
	s.tasks = st.Tasks
	if s.tasks == nil {
		s.tasks = []models.Task{}
	}
	s.log.Debug(ctx, "tasks store loaded", "tasks", len(s.tasks))
	return s, nil
}

// persist saves the tasks, or drops the document once the board is empty.
func (s *taskService) persist(ctx context.Context) {
	if len(s.tasks) == 0 {
		dropState(ctx, s.repo, s.log, common.TasksStoreKey)
		return
	}
	saveState(ctx, s.repo, s.log, common.TasksStoreKey, models.TasksState{Tasks: s.tasks})
}

// validate checks the form and returns the fields to store.
func (s *taskService) validate(in models.TaskInput) (title string, due *time.Time, err error) {
	title = strings.TrimSpace(in.Title)
	if title == "" || in.Status == "" {
		return "", nil, common.Validation("title and status are required")
	}
	if !slices.ContainsFunc(s.statuses, func(st models.Status) bool { return st.ID == in.Status }) {
		return "", nil, common.Validation(fmt.Sprintf("invalid status: %s", in.Status))
	}
	due, err = parseDueDate(in.DueDate)
	if err != nil {
		return "", nil, err
	}
	return title, due, nil
}

// AddTask validates in and appends a new task to the board.
func (s *taskService) AddTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, due, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := models.Task{
		ID:          common.NewID(now),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
		Priority:    in.Priority.OrDefault(),
		DueDate:     due,
		CreatedAt:   now.UTC(),
	}
	s.tasks = append(s.tasks, t)
	s.persist(ctx)

	s.log.Debug(ctx, "task added", "id", t.ID, "status", t.Status)
	c := t.Clone()
	return &c, nil
}

// UpdateTask replaces the editable fields of task id. The form is validated
// before the task is looked up. ID and CreatedAt are kept.
func (s *taskService) UpdateTask(ctx context.Context, id string, in models.TaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, due, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if i < 0 {
		return nil, common.ErrTaskNotFound
	}

	updated := s.now().UTC()
	t := &s.tasks[i]
	t.Title = title
	t.Description = strings.TrimSpace(in.Description)
	t.Status = in.Status
	t.Priority = in.Priority.OrDefault()
	t.DueDate = due
	t.UpdatedAt = &updated
	s.persist(ctx)

	s.log.Debug(ctx, "task updated", "id", id, "status", t.Status)
	c := t.Clone()
	return &c, nil
}

// DeleteTask removes task id. Deleting a missing task is a no-op.
func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if len(s.tasks) == n {
		return nil
	}
	s.persist(ctx)

	s.log.Debug(ctx, "task deleted", "id", id)
	return nil
}

func (s *taskService) Statuses() []models.Status {
	return slices.Clone(s.statuses)
}

func (s *taskService) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks, nil)
}

// TasksByStatus returns the tasks in statusID in board order. Unknown
// statuses yield an empty slice.
func (s *taskService) TasksByStatus(statusID string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks, func(t models.Task) bool { return t.Status == statusID })
}

// Board groups the tasks under every status, in status order.
func (s *taskService) Board() []models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := make([]models.Column, 0, len(s.statuses))
	for _, st := range s.statuses {
		cols = append(cols, models.Column{
			Status: st,
			Tasks:  cloneTasks(s.tasks, func(t models.Task) bool { return t.Status == st.ID }),
		})
	}
	return cols
}

func (s *taskService) Task(id string) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if i < 0 {
		return nil, false
	}
	c := s.tasks[i].Clone()
	return &c, true
}

func cloneTasks(src []models.Task, keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(src))
	for _, t := range src {
		if keep == nil || keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}
