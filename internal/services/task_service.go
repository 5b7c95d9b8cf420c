package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"etats/internal/apperrors"
	"etats/internal/models"
	"etats/internal/notify"
	"etats/internal/repositories"
)

// TaskInput carries the raw request values of a create or update.
// Status is ignored by Update.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Status      string
	EmployeeIDs []string
}

type TaskService interface {
	Create(ctx context.Context, in TaskInput) (int64, error)
	Update(ctx context.Context, id int64, in TaskInput) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context) ([]models.TaskRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.TaskRecord, error)
}

type taskService struct {
	repo      repositories.TaskRepository
	employees repositories.EmployeeRepository
	notifier  notify.Notifier
	log       zerolog.Logger
}

func NewTaskService(
	repo repositories.TaskRepository,
	employees repositories.EmployeeRepository,
	notifier notify.Notifier,
	log zerolog.Logger,
) TaskService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &taskService{repo: repo, employees: employees, notifier: notifier, log: log}
}

// cleanEmployeeIDs trims every id and drops the empty ones. Duplicates are
// kept; the assignment insert ignores them.
func cleanEmployeeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// normalizeDate accepts "2006-01-02" or RFC 3339 and returns the date part.
// Blank input means no date.
func normalizeDate(v string) (*string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DueDateLayout, v)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			return nil, err
		}
	}
	s := t.Format(models.DueDateLayout)
	return &s, nil
}

// buildTask validates the shared create/update fields.
func buildTask(in TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("Title is required")
	}
	priority := strings.TrimSpace(in.Priority)
	if priority == "" {
		priority = models.DefaultPriority
	}
	due, err := normalizeDate(in.DueDate)
	if err != nil {
		return nil, apperrors.Validation("dueDate must be YYYY-MM-DD")
	}
	return &models.Task{
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     due,
	}, nil
}

func (s *taskService) Create(ctx context.Context, in TaskInput) (int64, error) {
	task, err := buildTask(in)
	if err != nil {
		return 0, err
	}
	task.Status = models.NormalizeTaskStatus(in.Status)
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	ids := cleanEmployeeIDs(in.EmployeeIDs)

	id, err := s.repo.CreateWithAssignments(ctx, task, ids)
	if err != nil {
		return 0, s.mapWriteErr(err, "Failed to create task")
	}
	task.ID = id

	s.notifyAssignees(ctx, task, ids, false)
	return id, nil
}

func (s *taskService) Update(ctx context.Context, id int64, in TaskInput) error {
	if id <= 0 {
		return apperrors.Validation("Task id is required")
	}
	task, err := buildTask(in)
	if err != nil {
		return err
	}
	task.ID = id
	ids := cleanEmployeeIDs(in.EmployeeIDs)

	if err := s.repo.UpdateWithAssignments(ctx, task, ids); err != nil {
		return s.mapWriteErr(err, "Failed to update task")
	}

	s.notifyAssignees(ctx, task, ids, true)
	return nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return apperrors.Validation("Task id is required")
	}
	st := models.NormalizeTaskStatus(status)
	if st == "" {
		return apperrors.Validation("Invalid status")
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return s.mapWriteErr(err, "Failed to update status")
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.Validation("Task id is required")
	}
	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrForeignKey):
		return apperrors.Conflict("Task has reports and cannot be deleted")
	default:
		return s.mapWriteErr(err, "Failed to delete task")
	}
}

func (s *taskService) List(ctx context.Context) ([]models.TaskRecord, error) {
	recs, err := s.repo.ListWithAssignees(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch tasks", err)
	}
	return recs, nil
}

func (s *taskService) ListByEmployee(ctx context.Context, employeeID string) ([]models.TaskRecord, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, apperrors.Validation("employeeId is required")
	}
	recs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch tasks", err)
	}
	return recs, nil
}

func (s *taskService) mapWriteErr(err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NotFound("Task not found")
	case errors.Is(err, repositories.ErrForeignKey):
		return apperrors.Validation("Unknown employee in employeeIds")
	case errors.Is(err, repositories.ErrNoID):
		return apperrors.Internal("Task insert returned no id", err)
	default:
		return apperrors.Internal(fallback, err)
	}
}

// notifyAssignees runs after commit; a failure here never fails the request.
func (s *taskService) notifyAssignees(ctx context.Context, task *models.Task, ids []string, updated bool) {
	if len(ids) == 0 || s.employees == nil {
		return
	}
	recipients, err := s.employees.ListByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Int64("task_id", task.ID).Msg("load assignees for notification")
		return
	}
	notice := notify.TaskNotice{
		TaskID:   task.ID,
		Title:    task.Title,
		Priority: task.Priority,
		DueDate:  task.DueDate,
		Updated:  updated,
	}
	if err := s.notifier.TaskAssigned(ctx, notice, recipients); err != nil {
		s.log.Warn().Err(err).Int64("task_id", task.ID).Msg("task assignment notification failed")
	}
}
