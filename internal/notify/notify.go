// Package notify tells employees about task assignments and new accounts.
// Delivery failures are reported to the caller, which only logs them.
package notify

import (
	"context"
	"errors"
	"fmt"

	"etats/internal/models"
)

// TaskNotice is what a notification needs to know about a task.
type TaskNotice struct {
	TaskID   int64
	Title    string
	Priority string
	DueDate  *string
	Updated  bool
}

func (n TaskNotice) headline() string {
	if n.Updated {
		return fmt.Sprintf("Task #%d updated", n.TaskID)
	}
	return fmt.Sprintf("New task #%d", n.TaskID)
}

func (n TaskNotice) due() string {
	if n.DueDate == nil || *n.DueDate == "" {
		return "—"
	}
	return *n.DueDate
}

type Notifier interface {
	TaskAssigned(ctx context.Context, task TaskNotice, recipients []models.Employee) error
	EmployeeCreated(ctx context.Context, e models.Employee) error
}

// Nop discards every notification.
type Nop struct{}

func (Nop) TaskAssigned(context.Context, TaskNotice, []models.Employee) error { return nil }
func (Nop) EmployeeCreated(context.Context, models.Employee) error { return nil }

// Multi fans a notification out to every channel and joins their errors.
type Multi []Notifier

func (m Multi) TaskAssigned(ctx context.Context, task TaskNotice, recipients []models.Employee) error {
	var errs []error
	for _, n := range m {
		if err := n.TaskAssigned(ctx, task, recipients); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) EmployeeCreated(ctx context.Context, e models.Employee) error {
	var errs []error
	for _, n := range m {
		if err := n.EmployeeCreated(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
