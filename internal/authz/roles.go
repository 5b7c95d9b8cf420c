package authz

import (
	"context"
	"strings"

	"etats/internal/apperrors"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// SessionUser is the snapshot of the authenticated employee carried by a session.
type SessionUser struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// NormalizeRole collapses anything other than "manager" (any case) to "employee".
func NormalizeRole(role string) string {
	if strings.EqualFold(role, RoleManager) {
		return RoleManager
	}
	return RoleEmployee
}

func IsManager(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleManager)
}

// CheckIdentity fails with Unauthenticated when no user snapshot is present.
func CheckIdentity(u *SessionUser) error {
	if u == nil || strings.TrimSpace(u.EmployeeID) == "" {
		return apperrors.Unauthenticated("Unauthorized")
	}
	return nil
}

// CheckManager runs CheckIdentity first, so a missing session is always
// reported as Unauthenticated rather than Forbidden.
func CheckManager(u *SessionUser) error {
	if err := CheckIdentity(u); err != nil {
		return err
	}
	if !IsManager(u.Role) {
		return apperrors.Forbidden("Forbidden (Manager only)")
	}
	return nil
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *SessionUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the snapshot stored by WithUser, or nil.
func UserFromContext(ctx context.Context) *SessionUser {
	u, _ := ctx.Value(ctxKey{}).(*SessionUser)
	return u
}
