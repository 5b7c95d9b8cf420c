// internal/models/task.go
package models

import (
	"strings"
	"time"
)

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
	StatusCancelled  TaskStatus = "Cancelled"
)

const DefaultPriority = "Medium"

// DueDateLayout is how due dates are accepted and returned.
const DueDateLayout = "2006-01-02"

// NormalizeTaskStatus returns the trimmed status when it is one of the four
// canonical values and "" otherwise.
func NormalizeTaskStatus(v string) TaskStatus {
	switch s := TaskStatus(strings.TrimSpace(v)); s {
	case StatusPending, StatusInProgress, StatusDone, StatusCancelled:
		return s
	}
	return ""
}

// Task is the writable part of a task row.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	DueDate     *string
	Status      TaskStatus
}

// TaskRecord is one task as returned by the list endpoints. Listing all
// tasks yields one record per (task, assignee) pair; unassigned tasks come
// back once with nil employee fields.
type TaskRecord struct {
	TaskID       int64      `json:"taskId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	DueDate      *string    `json:"dueDate"`
	Status       TaskStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	EmployeeID   *string    `json:"employeeId"`
	EmployeeName *string    `json:"employeeName"`
}
