package authz

import (
	"context"
	"testing"

	"etats/internal/apperrors"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"manager":  RoleManager,
		"MANAGER":  RoleManager,
		"Manager":  RoleManager,
		"admin":    RoleEmployee,
		"":         RoleEmployee,
		"employee": RoleEmployee,
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckIdentity(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		if err := CheckIdentity(nil); !apperrors.Is(err, apperrors.KindUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		if err := CheckIdentity(&SessionUser{}); !apperrors.Is(err, apperrors.KindUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		if err := CheckIdentity(&SessionUser{EmployeeID: "E1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckManager(t *testing.T) {
	t.Run("no session reports unauthenticated", func(t *testing.T) {
		err := CheckManager(nil)
		if !apperrors.Is(err, apperrors.KindUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		err := CheckManager(&SessionUser{EmployeeID: "E1", Role: "employee"})
		if !apperrors.Is(err, apperrors.KindForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("role compared case-insensitively", func(t *testing.T) {
		if err := CheckManager(&SessionUser{EmployeeID: "M1", Role: "Manager"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserContext(t *testing.T) {
	if UserFromContext(context.Background()) != nil {
		t.Fatal("expected nil user on empty context")
	}
	u := &SessionUser{EmployeeID: "E1"}
	ctx := WithUser(context.Background(), u)
	if got := UserFromContext(ctx); got != u {
		t.Fatalf("got %+v, want %+v", got, u)
	}
}
