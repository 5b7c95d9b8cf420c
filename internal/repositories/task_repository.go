package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"etats/internal/models"
)

type TaskRepository interface {
	// CreateWithAssignments inserts the task and one assignment per employee
	// id in a single transaction and returns the generated task id.
	CreateWithAssignments(ctx context.Context, task *models.Task, employeeIDs []string) (int64, error)
	// UpdateWithAssignments rewrites the mutable fields (not status) and
	// replaces the whole assignment set in a single transaction.
	UpdateWithAssignments(ctx context.Context, task *models.Task, employeeIDs []string) error
	UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error
	Delete(ctx context.Context, id int64) error

	ListWithAssignees(ctx context.Context) ([]models.TaskRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.TaskRecord, error)
	GetByID(ctx context.Context, id int64) (*models.TaskRecord, error)
}

type taskRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewTaskRepository(db *sql.DB, log zerolog.Logger) TaskRepository {
	return &taskRepository{db: db, log: log}
}

const insertAssignmentQuery = `
	INSERT INTO task_assignments (task_id, employee_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING`

func (r *taskRepository) CreateWithAssignments(ctx context.Context, task *models.Task, employeeIDs []string) (int64, error) {
	var taskID int64
	err := withTx(ctx, r.db, r.log, func(tx *sql.Tx) error {
		var id sql.NullInt64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO tasks (title, description, priority, due_date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING task_id`,
			task.Title, task.Description, task.Priority, nullableString(task.DueDate), task.Status,
		).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoID
		}
		if err != nil {
			return fmt.Errorf("insert task: %w", classify(err))
		}
		if !id.Valid || id.Int64 == 0 {
			return ErrNoID
		}
		taskID = id.Int64

		return insertAssignments(ctx, tx, taskID, employeeIDs)
	})
	if err != nil {
		return 0, err
	}
	task.ID = taskID
	return taskID, nil
}

func (r *taskRepository) UpdateWithAssignments(ctx context.Context, task *models.Task, employeeIDs []string) error {
	return withTx(ctx, r.db, r.log, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE tasks
			SET title = $1, description = $2, priority = $3, due_date = $4
			WHERE task_id = $5`,
			task.Title, task.Description, task.Priority, nullableString(task.DueDate), task.ID,
		)
		if err != nil {
			return fmt.Errorf("update task: %w", classify(err))
		}
		if err := mustAffect(res); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM task_assignments WHERE task_id = $1`, task.ID); err != nil {
			return fmt.Errorf("clear assignments: %w", err)
		}
		return insertAssignments(ctx, tx, task.ID, employeeIDs)
	})
}

// insertAssignments relies on ON CONFLICT DO NOTHING, so repeated ids in
// employeeIDs collapse to one row.
func insertAssignments(ctx context.Context, tx *sql.Tx, taskID int64, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, insertAssignmentQuery)
	if err != nil {
		return fmt.Errorf("prepare assignment insert: %w", err)
	}
	defer stmt.Close()

	for _, empID := range employeeIDs {
		if _, err := stmt.ExecContext(ctx, taskID, empID); err != nil {
			return fmt.Errorf("assign employee %s: %w", empID, classify(err))
		}
	}
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = $1 WHERE task_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return mustAffect(res)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, r.log, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_assignments WHERE task_id = $1`, id); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete task: %w", classify(err))
		}
		return mustAffect(res)
	})
}

const taskRecordColumns = `
	t.task_id, t.title, t.description, t.priority, t.due_date, t.status, t.created_at,
	e.employee_id, e.name AS employee_name`

func (r *taskRepository) ListWithAssignees(ctx context.Context) ([]models.TaskRecord, error) {
	q := `SELECT` + taskRecordColumns + `
	FROM tasks t
	LEFT JOIN task_assignments ta ON ta.task_id = t.task_id
	LEFT JOIN employees e ON e.employee_id = ta.employee_id
	ORDER BY t.created_at DESC, t.task_id DESC`
	return r.queryRecords(ctx, q)
}

func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.TaskRecord, error) {
	q := `SELECT` + taskRecordColumns + `
	FROM task_assignments ta
	JOIN tasks t ON t.task_id = ta.task_id
	JOIN employees e ON e.employee_id = ta.employee_id
	WHERE ta.employee_id = $1
	ORDER BY t.created_at DESC, t.task_id DESC`
	return r.queryRecords(ctx, q, employeeID)
}

// GetByID returns the task without assignee fields.
func (r *taskRepository) GetByID(ctx context.Context, id int64) (*models.TaskRecord, error) {
	var (
		rec  models.TaskRecord
		desc sql.NullString
		due  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT task_id, title, description, priority, due_date, status, created_at
		FROM tasks WHERE task_id = $1`, id,
	).Scan(&rec.TaskID, &rec.Title, &desc, &rec.Priority, &due, &rec.Status, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Description = desc.String
	rec.DueDate = datePtr(due)
	return &rec, nil
}

func (r *taskRepository) queryRecords(ctx context.Context, q string, args ...any) ([]models.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TaskRecord{}
	for rows.Next() {
		var (
			rec     models.TaskRecord
			desc    sql.NullString
			due     sql.NullTime
			empID   sql.NullString
			empName sql.NullString
		)
		if err := rows.Scan(
			&rec.TaskID, &rec.Title, &desc, &rec.Priority, &due, &rec.Status, &rec.CreatedAt,
			&empID, &empName,
		); err != nil {
			return nil, err
		}
		rec.Description = desc.String
		rec.DueDate = datePtr(due)
		rec.EmployeeID = stringPtr(empID)
		rec.EmployeeName = stringPtr(empName)
		out = append(out, rec)
	}
	return out, rows.Err()
}
