package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"etats/internal/models"
)

// ReportRepository has no update or delete: reports are append-only.
type ReportRepository interface {
	Create(ctx context.Context, r *models.Report) error
	List(ctx context.Context, limit int) ([]models.Report, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, rep *models.Report) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reports (task_id, manager_id, report_name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING report_id, created_at`,
		rep.TaskID, rep.ManagerID, nullableString(rep.ReportName), rep.Content,
	).Scan(&rep.ReportID, &rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", classify(err))
	}
	return nil
}

const reportSelect = `
	SELECT r.report_id, r.task_id, r.manager_id, r.report_name, r.content, r.created_at,
	       t.title AS task_title
	FROM reports r`

func scanReport(s rowScanner) (*models.Report, error) {
	var (
		rep   models.Report
		name  sql.NullString
		title sql.NullString
	)
	if err := s.Scan(&rep.ReportID, &rep.TaskID, &rep.ManagerID, &name, &rep.Content, &rep.CreatedAt, &title); err != nil {
		return nil, err
	}
	rep.ReportName = stringPtr(name)
	rep.TaskTitle = stringPtr(title)
	return &rep, nil
}

func (r *reportRepository) List(ctx context.Context, limit int) ([]models.Report, error) {
	rows, err := r.db.QueryContext(ctx, reportSelect+`
	JOIN tasks t ON t.task_id = r.task_id
	ORDER BY r.created_at DESC, r.report_id DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rep)
	}
	return out, rows.Err()
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	row := r.db.QueryRowContext(ctx, reportSelect+`
	LEFT JOIN tasks t ON t.task_id = r.task_id
	WHERE r.report_id = $1`, id)
	rep, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rep, err
}
