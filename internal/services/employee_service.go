package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"etats/internal/apperrors"
	"etats/internal/authz"
	"etats/internal/models"
	"etats/internal/notify"
	"etats/internal/repositories"
)

// EmployeeInput is a create or partial-update request. A nil field means
// "not sent": on update the stored value is kept.
type EmployeeInput struct {
	EmployeeID     string
	Name           *string
	Email          *string
	Phone          *string
	Department     *string
	Designation    *string
	Role           *string
	Status         *string
	PhotoURL       *string
	HireDate       *string
	Password       *string
	TelegramChatID *int64
}

type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*models.Employee, error)
	Get(ctx context.Context, employeeID string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, employeeID string, in EmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	repo     repositories.EmployeeRepository
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewEmployeeService(repo repositories.EmployeeRepository, notifier notify.Notifier, log zerolog.Logger) EmployeeService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &employeeService{repo: repo, notifier: notifier, log: log}
}

// HashPassword returns the bcrypt hash stored in employees.password.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// raw returns the value exactly as sent. Passwords and statuses are
// compared byte for byte, so they are never trimmed.
func raw(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// optional trims the value and turns blank strings into nil.
func optional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func optionalDate(p *string) (*string, error) {
	if p == nil {
		return nil, nil
	}
	d, err := normalizeDate(*p)
	if err != nil {
		return nil, apperrors.Validation("hireDate must be YYYY-MM-DD")
	}
	return d, nil
}

func (s *employeeService) Create(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	id := strings.TrimSpace(in.EmployeeID)
	name := deref(in.Name)
	email := strings.ToLower(deref(in.Email))
	password := raw(in.Password)
	if id == "" || name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, apperrors.Validation("Missing required fields")
	}
	hire, err := optionalDate(in.HireDate)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("Failed to create employee", err)
	}

	e := &models.Employee{
		EmployeeID:     id,
		Name:           name,
		Email:          email,
		Phone:          optional(in.Phone),
		Department:     optional(in.Department),
		Designation:    optional(in.Designation),
		Role:           authz.NormalizeRole(deref(in.Role)),
		Status:         models.NormalizeEmployeeStatus(raw(in.Status)),
		PhotoURL:       optional(in.PhotoURL),
		HireDate:       hire,
		TelegramChatID: in.TelegramChatID,
		Password:       hash,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("Employee id or email already exists")
		}
		return nil, apperrors.Internal("Failed to create employee", err)
	}

	if err := s.notifier.EmployeeCreated(ctx, *e); err != nil {
		s.log.Warn().Err(err).Str("employee_id", e.EmployeeID).Msg("welcome notification failed")
	}
	return e, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(employeeID))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Employee not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch employee", err)
	}
	return e, nil
}

func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch employees", err)
	}
	return list, nil
}

func (s *employeeService) Update(ctx context.Context, employeeID string, in EmployeeInput) (*models.Employee, error) {
	e, err := s.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if v := deref(in.Name); v != "" {
		e.Name = v
	}
	if v := deref(in.Email); v != "" {
		e.Email = strings.ToLower(v)
	}
	if in.Phone != nil {
		e.Phone = optional(in.Phone)
	}
	if in.Department != nil {
		e.Department = optional(in.Department)
	}
	if in.Designation != nil {
		e.Designation = optional(in.Designation)
	}
	if in.Role != nil {
		e.Role = authz.NormalizeRole(deref(in.Role))
	}
	if in.Status != nil {
		e.Status = models.NormalizeEmployeeStatus(*in.Status)
	}
	if in.PhotoURL != nil {
		e.PhotoURL = optional(in.PhotoURL)
	}
	if in.HireDate != nil {
		if e.HireDate, err = optionalDate(in.HireDate); err != nil {
			return nil, err
		}
	}
	if in.TelegramChatID != nil {
		e.TelegramChatID = in.TelegramChatID
	}
	if v := raw(in.Password); strings.TrimSpace(v) != "" {
		if e.Password, err = HashPassword(v); err != nil {
			return nil, apperrors.Internal("Failed to update employee", err)
		}
	}

	if err := s.repo.Update(ctx, e); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NotFound("Employee not found")
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, apperrors.Conflict("Email already in use")
		}
		return nil, apperrors.Internal("Failed to update employee", err)
	}
	return e, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	err := s.repo.Delete(ctx, strings.TrimSpace(employeeID))
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("Employee not found")
	}
	if err != nil {
		return apperrors.Internal("Failed to delete employee", err)
	}
	return nil
}
