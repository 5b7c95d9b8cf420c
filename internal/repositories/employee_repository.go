package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"etats/internal/models"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Employee, error)
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id string) error
}

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	employee_id, name, email, phone, department, designation, role, status,
	photo_url, hire_date, password, telegram_chat_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s rowScanner) (*models.Employee, error) {
	var (
		e                              models.Employee
		phone, department, designation sql.NullString
		photoURL                       sql.NullString
		hireDate                       sql.NullTime
		chatID                         sql.NullInt64
	)
	if err := s.Scan(
		&e.EmployeeID, &e.Name, &e.Email, &phone, &department, &designation, &e.Role, &e.Status,
		&photoURL, &hireDate, &e.Password, &chatID, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Phone = stringPtr(phone)
	e.Department = stringPtr(department)
	e.Designation = stringPtr(designation)
	e.PhotoURL = stringPtr(photoURL)
	e.HireDate = datePtr(hireDate)
	if chatID.Valid {
		v := chatID.Int64
		e.TelegramChatID = &v
	}
	return &e, nil
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func (r *employeeRepository) Create(ctx context.Context, e *models.Employee) error {
	q := `
		INSERT INTO employees (
			employee_id, name, email, phone, department, designation, role, status,
			photo_url, hire_date, password, telegram_chat_id
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, q,
		e.EmployeeID, e.Name, e.Email,
		nullableString(e.Phone), nullableString(e.Department), nullableString(e.Designation),
		e.Role, e.Status, nullableString(e.PhotoURL), nullableString(e.HireDate),
		e.Password, nullableInt64(e.TelegramChatID),
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", classify(err))
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+employeeColumns+` FROM employees WHERE employee_id = $1`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+employeeColumns+` FROM employees WHERE email = $1 LIMIT 1`, email)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	return r.query(ctx, `SELECT`+employeeColumns+` FROM employees ORDER BY employee_id`)
}

func (r *employeeRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Employee, error) {
	if len(ids) == 0 {
		return []models.Employee{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT` + employeeColumns + ` FROM employees WHERE employee_id IN (` +
		placeholders(1, len(ids)) + `) ORDER BY employee_id`
	return r.query(ctx, q, args...)
}

func (r *employeeRepository) query(ctx context.Context, q string, args ...any) ([]models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *models.Employee) error {
	q := `
		UPDATE employees SET
			name=$1, email=$2, phone=$3, department=$4, designation=$5,
			role=$6, status=$7, photo_url=$8, hire_date=$9, password=$10, telegram_chat_id=$11
		WHERE employee_id=$12`
	res, err := r.db.ExecContext(ctx, q,
		e.Name, e.Email,
		nullableString(e.Phone), nullableString(e.Department), nullableString(e.Designation),
		e.Role, e.Status, nullableString(e.PhotoURL), nullableString(e.HireDate),
		e.Password, nullableInt64(e.TelegramChatID), e.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", classify(err))
	}
	return mustAffect(res)
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", classify(err))
	}
	return mustAffect(res)
}
