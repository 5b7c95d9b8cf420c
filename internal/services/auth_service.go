package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"etats/internal/apperrors"
	"etats/internal/authz"
	"etats/internal/repositories"
)

const invalidCredentials = "Invalid email or password"

type AuthService interface {
	Login(ctx context.Context, email, password string) (*authz.SessionUser, error)
}

type authService struct {
	employees repositories.EmployeeRepository
	log       zerolog.Logger
}

func NewAuthService(employees repositories.EmployeeRepository, log zerolog.Logger) AuthService {
	return &authService{employees: employees, log: log}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// checkPassword accepts bcrypt hashes and legacy plaintext rows.
func checkPassword(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (s *authService) Login(ctx context.Context, email, password string) (*authz.SessionUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password required")
	}

	e, err := s.employees.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Unauthenticated(invalidCredentials)
	}
	if err != nil {
		return nil, apperrors.Internal("Login failed", err)
	}
	if !checkPassword(e.Password, password) {
		s.log.Info().Str("employee_id", e.EmployeeID).Msg("login rejected")
		return nil, apperrors.Unauthenticated(invalidCredentials)
	}

	return &authz.SessionUser{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       authz.NormalizeRole(e.Role),
	}, nil
}
