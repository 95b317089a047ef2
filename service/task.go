package service

import (
	"context"
	"errors"
	"time"

	"github.com/sangam0207/SpeakDo-Task-Tracker/data"
	"github.com/sangam0207/SpeakDo-Task-Tracker/data/repository"
	"github.com/sangam0207/SpeakDo-Task-Tracker/ecode"
	"github.com/sangam0207/SpeakDo-Task-Tracker/logging/logger"
	"github.com/sangam0207/SpeakDo-Task-Tracker/validation/validator"
)

// TaskService handles task business logic.
type TaskService struct {
	data   *data.Data
	logger *logger.Logger
	now    func() time.Time
}

// NewTaskService creates a new task service.
func NewTaskService(d *data.Data, log *logger.Logger) *TaskService {
	return &TaskService{
		data:   d,
		logger: log,
		now:    time.Now,
	}
}

// CreateTaskRequest represents the request to create a task.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,oneof=todo in-progress done"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     string `json:"dueDate" binding:"omitempty,duedate"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// untouched; an empty dueDate clears the due date.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

// ListTasksQuery narrows ListTasks results. All filters are optional and
// independently combinable.
type ListTasksQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Search   string `form:"search"`
}

// GroupedTasks partitions tasks by status, each bucket most recently
// created first.
type GroupedTasks struct {
	Todo       []*repository.Task `json:"todo"`
	InProgress []*repository.Task `json:"in-progress"`
	Done       []*repository.Task `json:"done"`
}

// CreateTask validates fields and persists a new task.
func (s *TaskService) CreateTask(ctx context.Context, req *CreateTaskRequest) (*repository.Task, error) {
	title, err := validator.ValidateTitle(req.Title)
	if err != nil {
		return nil, NewInvalidInput("title", err.Error())
	}
	if req.Status == "" {
		return nil, NewInvalidInput("status", ecode.FieldIsRequired("status"))
	}
	if err := validator.ValidateStatus(req.Status); err != nil {
		return nil, NewInvalidInput("status", err.Error())
	}
	if req.Priority == "" {
		return nil, NewInvalidInput("priority", ecode.FieldIsRequired("priority"))
	}
	if err := validator.ValidatePriority(req.Priority); err != nil {
		return nil, NewInvalidInput("priority", err.Error())
	}

	task := &repository.Task{
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if req.DueDate != "" {
		due, err := validator.ValidateDueDate(req.DueDate, s.now())
		if err != nil {
			return nil, NewInvalidInput("dueDate", err.Error())
		}
		task.DueDate = &due
	}

	return s.data.TaskRepo.Create(ctx, task)
}

// GetTask retrieves a task by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*repository.Task, error) {
	task, err := s.data.TaskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, NewNotFound("task not found")
		}
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves tasks matching the query, most recently created
// first.
func (s *TaskService) ListTasks(ctx context.Context, query *ListTasksQuery) ([]*repository.Task, error) {
	filter := &repository.ListFilter{}
	if query != nil {
		filter.Status = query.Status
		filter.Priority = query.Priority
		filter.Search = query.Search
	}

	tasks, err := s.data.TaskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*repository.Task{}
	}
	return tasks, nil
}

// ListGroupedTasks partitions all tasks into status buckets. A task with
// an unrecognized status is excluded rather than faulting.
func (s *TaskService) ListGroupedTasks(ctx context.Context) (*GroupedTasks, error) {
	tasks, err := s.data.TaskRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	grouped := &GroupedTasks{
		Todo:       []*repository.Task{},
		InProgress: []*repository.Task{},
		Done:       []*repository.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case validator.StatusTodo:
			grouped.Todo = append(grouped.Todo, t)
		case validator.StatusInProgress:
			grouped.InProgress = append(grouped.InProgress, t)
		case validator.StatusDone:
			grouped.Done = append(grouped.Done, t)
		}
	}
	return grouped, nil
}

// UpdateTask applies a partial update. Present fields are validated with
// the same field-level rules as create, except that a due date is not
// re-checked against the clock: a task legitimately becomes overdue.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req *UpdateTaskRequest) (*repository.Task, error) {
	patch := &repository.TaskPatch{}

	if req.Title != nil {
		title, err := validator.ValidateTitle(*req.Title)
		if err != nil {
			return nil, NewInvalidInput("title", err.Error())
		}
		patch.Title = &title
	}
	if req.Description != nil {
		patch.Description = req.Description
	}
	if req.Status != nil {
		if err := validator.ValidateStatus(*req.Status); err != nil {
			return nil, NewInvalidInput("status", err.Error())
		}
		patch.Status = req.Status
	}
	if req.Priority != nil {
		if err := validator.ValidatePriority(*req.Priority); err != nil {
			return nil, NewInvalidInput("priority", err.Error())
		}
		patch.Priority = req.Priority
	}
	if req.DueDate != nil {
		patch.DueDateSet = true
		if *req.DueDate != "" {
			due, err := validator.ParseDueDate(*req.DueDate)
			if err != nil {
				return nil, NewInvalidInput("dueDate", err.Error())
			}
			patch.DueDate = &due
		}
	}

	if patch.IsZero() {
		return nil, NewInvalidInput("patch", "at least one field is required")
	}

	task, err := s.data.TaskRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			return nil, NewNotFound("task not found")
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, NewInvalidInput("patch", "at least one field is required")
		}
		return nil, err
	}
	return task, nil
}

// DeleteTask permanently removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.data.TaskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return NewNotFound("task not found")
		}
		return err
	}
	return nil
}
