package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"etats/internal/dbtest"
	"etats/internal/models"
)

func newTask(title string) *models.Task {
	return &models.Task{
		Title:    title,
		Priority: models.DefaultPriority,
		Status:   models.StatusPending,
	}
}

func assignedIDs(t *testing.T, repo TaskRepository, taskID int64) map[string]bool {
	t.Helper()
	recs, err := repo.ListWithAssignees(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := map[string]bool{}
	for _, r := range recs {
		if r.TaskID == taskID && r.EmployeeID != nil {
			out[*r.EmployeeID] = true
		}
	}
	return out
}

func TestTaskRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create with duplicate assignees", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "A", "Alice", "a@example.com", "employee")
		dbtest.SeedEmployee(t, db, "B", "Bob", "b@example.com", "employee")
		repo := NewTaskRepository(db, zerolog.Nop())

		id, err := repo.CreateWithAssignments(ctx, newTask("Audit"), []string{"A", "A", "B"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if id == 0 {
			t.Fatal("expected generated id")
		}
		if n := dbtest.Count(t, db, `SELECT COUNT(*) FROM task_assignments WHERE task_id = $1`, id); n != 2 {
			t.Errorf("assignment rows = %d, want 2", n)
		}
		for _, emp := range []string{"A", "B"} {
			n := dbtest.Count(t, db, `SELECT COUNT(*) FROM task_assignments WHERE task_id = $1 AND employee_id = $2`, id, emp)
			if n != 1 {
				t.Errorf("rows for %s = %d, want 1", emp, n)
			}
		}
	})

	t.Run("Create rolls back on unknown employee", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "A", "Alice", "a@example.com", "employee")
		repo := NewTaskRepository(db, zerolog.Nop())

		_, err := repo.CreateWithAssignments(ctx, newTask("Audit"), []string{"A", "GHOST"})
		if err == nil {
			t.Fatal("expected error for unknown employee")
		}
		if n := dbtest.Count(t, db, `SELECT COUNT(*) FROM tasks`); n != 0 {
			t.Errorf("tasks after failed create = %d, want 0", n)
		}
		if n := dbtest.Count(t, db, `SELECT COUNT(*) FROM task_assignments`); n != 0 {
			t.Errorf("assignments after failed create = %d, want 0", n)
		}
	})

	t.Run("Update replaces assignment set", func(t *testing.T) {
		db := dbtest.New(t)
		for _, id := range []string{"A", "B", "C"} {
			dbtest.SeedEmployee(t, db, id, "Emp "+id, id+"@example.com", "employee")
		}
		repo := NewTaskRepository(db, zerolog.Nop())

		task := newTask("Audit")
		id, err := repo.CreateWithAssignments(ctx, task, []string{"A", "B"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		due := "2030-01-31"
		task.Title = "Audit v2"
		task.DueDate = &due
		if err := repo.UpdateWithAssignments(ctx, task, []string{"B", "C"}); err != nil {
			t.Fatalf("update: %v", err)
		}

		got := assignedIDs(t, repo, id)
		if len(got) != 2 || !got["B"] || !got["C"] || got["A"] {
			t.Errorf("assignees = %v, want {B, C}", got)
		}

		rec, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if rec.Title != "Audit v2" {
			t.Errorf("title = %q", rec.Title)
		}
		if rec.DueDate == nil || *rec.DueDate != due {
			t.Errorf("due date = %v, want %s", rec.DueDate, due)
		}
		if rec.Status != models.StatusPending {
			t.Errorf("status changed to %q", rec.Status)
		}
	})

	t.Run("Update failure restores previous assignments", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "A", "Alice", "a@example.com", "employee")
		repo := NewTaskRepository(db, zerolog.Nop())

		task := newTask("Audit")
		id, err := repo.CreateWithAssignments(ctx, task, []string{"A"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		task.Title = "Renamed"
		if err := repo.UpdateWithAssignments(ctx, task, []string{"GHOST"}); err == nil {
			t.Fatal("expected error")
		}

		got := assignedIDs(t, repo, id)
		if len(got) != 1 || !got["A"] {
			t.Errorf("assignees = %v, want {A}", got)
		}
		rec, _ := repo.GetByID(ctx, id)
		if rec.Title != "Audit" {
			t.Errorf("title = %q, want rollback to Audit", rec.Title)
		}
	})

	t.Run("Update missing task", func(t *testing.T) {
		db := dbtest.New(t)
		repo := NewTaskRepository(db, zerolog.Nop())

		task := newTask("Ghost")
		task.ID = 999
		if err := repo.UpdateWithAssignments(ctx, task, nil); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		db := dbtest.New(t)
		repo := NewTaskRepository(db, zerolog.Nop())

		id, err := repo.CreateWithAssignments(ctx, newTask("Audit"), nil)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.UpdateStatus(ctx, id, models.StatusDone); err != nil {
			t.Fatalf("update status: %v", err)
		}
		rec, _ := repo.GetByID(ctx, id)
		if rec.Status != models.StatusDone {
			t.Errorf("status = %q, want Done", rec.Status)
		}
		if err := repo.UpdateStatus(ctx, id+100, models.StatusDone); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete removes assignments", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "E1", "Eve", "e@example.com", "employee")
		repo := NewTaskRepository(db, zerolog.Nop())

		id, err := repo.CreateWithAssignments(ctx, newTask("Audit"), []string{"E1"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("delete: %v", err)
		}
		mine, err := repo.ListByEmployee(ctx, "E1")
		if err != nil {
			t.Fatalf("list mine: %v", err)
		}
		if len(mine) != 0 {
			t.Errorf("expected no tasks for E1, got %d", len(mine))
		}
		if err := repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListWithAssignees includes unassigned tasks", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "E1", "Eve", "e@example.com", "employee")
		repo := NewTaskRepository(db, zerolog.Nop())

		if _, err := repo.CreateWithAssignments(ctx, newTask("Solo"), nil); err != nil {
			t.Fatalf("create: %v", err)
		}
		assigned, err := repo.CreateWithAssignments(ctx, newTask("Team"), []string{"E1"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		recs, err := repo.ListWithAssignees(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("records = %d, want 2", len(recs))
		}
		// newest first; equal timestamps fall back to task_id DESC
		if recs[0].TaskID != assigned {
			t.Errorf("first record = %d, want %d", recs[0].TaskID, assigned)
		}
		if recs[0].EmployeeName == nil || *recs[0].EmployeeName != "Eve" {
			t.Errorf("employee name = %v", recs[0].EmployeeName)
		}
		if recs[1].EmployeeID != nil {
			t.Errorf("unassigned task has employee %v", *recs[1].EmployeeID)
		}
	})
}

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		db := dbtest.New(t)
		repo := NewEmployeeRepository(db)

		phone := "+1 555"
		hire := "2024-03-01"
		e := &models.Employee{
			EmployeeID: "E1", Name: "Eve", Email: "eve@example.com",
			Phone: &phone, HireDate: &hire,
			Role: "manager", Status: models.EmployeeActive, Password: "hash",
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
		if e.CreatedAt.IsZero() {
			t.Error("created_at not populated")
		}

		got, err := repo.GetByEmail(ctx, "eve@example.com")
		if err != nil {
			t.Fatalf("get by email: %v", err)
		}
		if got.EmployeeID != "E1" || got.Role != "manager" {
			t.Errorf("unexpected employee %+v", got)
		}
		if got.Phone == nil || *got.Phone != phone {
			t.Errorf("phone = %v", got.Phone)
		}
		if got.HireDate == nil || *got.HireDate != hire {
			t.Errorf("hire date = %v", got.HireDate)
		}
		if got.Department != nil {
			t.Errorf("department = %v, want nil", *got.Department)
		}
	})

	t.Run("Missing rows", func(t *testing.T) {
		db := dbtest.New(t)
		repo := NewEmployeeRepository(db)

		if _, err := repo.GetByID(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetByID: expected ErrNotFound, got %v", err)
		}
		if err := repo.Update(ctx, &models.Employee{EmployeeID: "nobody"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update: expected ErrNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListByIDs", func(t *testing.T) {
		db := dbtest.New(t)
		for _, id := range []string{"A", "B", "C"} {
			dbtest.SeedEmployee(t, db, id, "Emp "+id, id+"@example.com", "employee")
		}
		repo := NewEmployeeRepository(db)

		got, err := repo.ListByIDs(ctx, []string{"C", "A", "missing"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].EmployeeID != "A" || got[1].EmployeeID != "C" {
			t.Errorf("unexpected result %+v", got)
		}

		none, err := repo.ListByIDs(ctx, nil)
		if err != nil || len(none) != 0 {
			t.Errorf("empty ids: got %v, %v", none, err)
		}
	})

	t.Run("Delete cascades assignments", func(t *testing.T) {
		db := dbtest.New(t)
		dbtest.SeedEmployee(t, db, "E1", "Eve", "e@example.com", "employee")
		tasks := NewTaskRepository(db, zerolog.Nop())
		if _, err := tasks.CreateWithAssignments(ctx, newTask("Audit"), []string{"E1"}); err != nil {
			t.Fatalf("create task: %v", err)
		}

		if err := NewEmployeeRepository(db).Delete(ctx, "E1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if n := dbtest.Count(t, db, `SELECT COUNT(*) FROM task_assignments`); n != 0 {
			t.Errorf("assignments = %d, want 0", n)
		}
	})
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	tasks := NewTaskRepository(db, zerolog.Nop())
	taskID, err := tasks.CreateWithAssignments(ctx, newTask("Audit"), nil)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	repo := NewReportRepository(db)

	name := "Weekly"
	rep := &models.Report{TaskID: taskID, ManagerID: "M1", ReportName: &name, Content: "All good"}
	if err := repo.Create(ctx, rep); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rep.ReportID == 0 {
		t.Fatal("expected report id")
	}

	list, err := repo.List(ctx, models.ReportListLimit)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].TaskTitle == nil || *list[0].TaskTitle != "Audit" {
		t.Errorf("unexpected list %+v", list)
	}

	got, err := repo.GetByID(ctx, rep.ReportID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "All good" || got.ReportName == nil || *got.ReportName != "Weekly" {
		t.Errorf("unexpected report %+v", got)
	}

	if _, err := repo.GetByID(ctx, rep.ReportID+1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	if err := classify(&pq.Error{Code: "23505", Constraint: "employees_email_key"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("unique violation: got %v", err)
	}
	if err := classify(&pq.Error{Code: "23503"}); !errors.Is(err, ErrForeignKey) {
		t.Errorf("fk violation: got %v", err)
	}
	plain := errors.New("boom")
	if err := classify(plain); err != plain {
		t.Errorf("plain error changed: %v", err)
	}
	if classify(nil) != nil {
		t.Error("nil must stay nil")
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(3, 3); got != "$3, $4, $5" {
		t.Errorf("placeholders = %q", got)
	}
}
