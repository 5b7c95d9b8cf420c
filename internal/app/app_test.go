package app

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"etats/internal/config"
	"etats/internal/dbtest"
	"etats/internal/models"
)

type stubRenderer struct{}

func (stubRenderer) RenderReport(w io.Writer, r models.Report) error {
	_, err := io.WriteString(w, "%PDF-1.3 stub "+r.Content)
	return err
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	db     *sql.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	dbtest.SeedEmployee(t, db, "E1", "Alice", "alice@example.com", "employee")
	dbtest.SeedEmployee(t, db, "7", "Seven", "seven@example.com", "employee")
	dbtest.SeedEmployee(t, db, "M1", "Mona", "mona@example.com", "Manager")

	cfg := &config.Config{
		Session: config.SessionConfig{Secret: "test-secret", TTL: time.Hour, CookieName: "etats.sid"},
	}
	router, err := NewRouter(Deps{Config: cfg, Log: zerolog.Nop(), DB: db, Renderer: stubRenderer{}})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return &testServer{t: t, router: router, db: db}
}

func (s *testServer) do(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(email, password string) *http.Cookie {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, nil)
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: status %d: %s", email, w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "etats.sid" {
			return c
		}
	}
	s.t.Fatal("login did not set the session cookie")
	return nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d: %s", w.Code, want, w.Body.String())
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func findTask(recs []models.TaskRecord, id int64) *models.TaskRecord {
	for i := range recs {
		if recs[i].TaskID == id {
			return &recs[i]
		}
	}
	return nil
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/health", nil, nil)
	expectStatus(t, w, http.StatusOK)
	if body := decode[map[string]any](t, w); body["ok"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestTaskLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice@example.com", "secret")

	w := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "Audit", "employeeIds": []string{"E1"}}, alice)
	expectStatus(t, w, http.StatusCreated)
	id := decode[struct {
		TaskID int64 `json:"taskId"`
	}](t, w).TaskID
	if id == 0 {
		t.Fatal("missing taskId")
	}

	mine := func() []models.TaskRecord {
		w := s.do(http.MethodGet, "/api/tasks/my/E1", nil, alice)
		expectStatus(t, w, http.StatusOK)
		return decode[[]models.TaskRecord](t, w)
	}

	rec := findTask(mine(), id)
	if rec == nil || rec.Status != models.StatusPending {
		t.Fatalf("task %d not listed as Pending: %+v", id, rec)
	}

	w = s.do(http.MethodPut, "/api/tasks/"+itoa(id)+"/status", map[string]string{"status": "Bogus"}, alice)
	expectStatus(t, w, http.StatusBadRequest)
	if rec := findTask(mine(), id); rec == nil || rec.Status != models.StatusPending {
		t.Fatalf("status changed by rejected update: %+v", rec)
	}

	w = s.do(http.MethodPut, "/api/tasks/"+itoa(id)+"/status", `{"status": 42}`, alice)
	expectStatus(t, w, http.StatusBadRequest)

	w = s.do(http.MethodPut, "/api/tasks/"+itoa(id)+"/status", map[string]string{"status": "In Progress"}, alice)
	expectStatus(t, w, http.StatusOK)

	w = s.do(http.MethodPut, "/api/tasks/"+itoa(id), map[string]any{"title": "Audit v2", "employeeIds": []any{7}}, alice)
	expectStatus(t, w, http.StatusOK)
	if rec := findTask(mine(), id); rec != nil {
		t.Fatalf("E1 still assigned after update: %+v", rec)
	}
	w = s.do(http.MethodGet, "/api/tasks", nil, alice)
	expectStatus(t, w, http.StatusOK)
	rec = findTask(decode[[]models.TaskRecord](t, w), id)
	if rec == nil || rec.EmployeeID == nil || *rec.EmployeeID != "7" || rec.Status != models.StatusInProgress {
		t.Fatalf("unexpected record after update: %+v", rec)
	}

	w = s.do(http.MethodDelete, "/api/tasks/"+itoa(id), nil, alice)
	expectStatus(t, w, http.StatusOK)
	if rec := findTask(mine(), id); rec != nil {
		t.Fatalf("task still listed after delete: %+v", rec)
	}

	w = s.do(http.MethodDelete, "/api/tasks/"+itoa(id), nil, alice)
	expectStatus(t, w, http.StatusNotFound)
}

func TestTaskValidation(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice@example.com", "secret")

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"blank title", http.MethodPost, "/api/tasks", map[string]string{"title": "  "}, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/tasks", `{"title":`, http.StatusBadRequest},
		// SQLite reports foreign key failures without a pq code, so they stay internal here.
		{"unknown employee", http.MethodPost, "/api/tasks", map[string]any{"title": "T", "employeeIds": []string{"ghost"}}, http.StatusInternalServerError},
		{"update missing task", http.MethodPut, "/api/tasks/999", map[string]string{"title": "T"}, http.StatusNotFound},
		{"update bad id", http.MethodPut, "/api/tasks/abc", map[string]string{"title": "T"}, http.StatusBadRequest},
		{"status missing task", http.MethodPut, "/api/tasks/999/status", map[string]string{"status": "Done"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(tc.method, tc.path, tc.body, alice)
			expectStatus(t, w, tc.status)
			if msg := decode[map[string]string](t, w)["message"]; msg == "" {
				t.Error("missing message")
			}
		})
	}
	if n := dbtest.Count(t, s.db, `SELECT COUNT(*) FROM tasks`); n != 0 {
		t.Errorf("tasks = %d, want 0", n)
	}
}

func TestAccessControl(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice@example.com", "secret")
	mona := s.login("mona@example.com", "secret")

	cases := []struct {
		name   string
		method string
		path   string
		cookie *http.Cookie
		status int
	}{
		{"tasks anonymous", http.MethodGet, "/api/tasks", nil, http.StatusUnauthorized},
		{"create task anonymous", http.MethodPost, "/api/tasks", nil, http.StatusUnauthorized},
		{"employees anonymous is 401 not 403", http.MethodGet, "/api/employees", nil, http.StatusUnauthorized},
		{"employees as employee", http.MethodGet, "/api/employees", alice, http.StatusForbidden},
		{"employees as manager", http.MethodGet, "/api/employees", mona, http.StatusOK},
		{"reports as employee", http.MethodGet, "/api/reports", alice, http.StatusForbidden},
		{"reports as manager", http.MethodGet, "/api/reports", mona, http.StatusOK},
		{"own record", http.MethodGet, "/api/employees/me", alice, http.StatusOK},
		{"own record anonymous", http.MethodGet, "/api/employees/me", nil, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectStatus(t, s.do(tc.method, tc.path, nil, tc.cookie), tc.status)
		})
	}
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("bad credentials", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "nope"}, nil)
		expectStatus(t, w, http.StatusUnauthorized)
		if msg := decode[map[string]string](t, w)["message"]; msg != "Invalid email or password" {
			t.Errorf("message = %q", msg)
		}
		w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": " ", "password": "x"}, nil)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("me and logout", func(t *testing.T) {
		expectStatus(t, s.do(http.MethodGet, "/api/auth/me", nil, nil), http.StatusUnauthorized)

		cookie := s.login("ALICE@example.com", "secret")
		w := s.do(http.MethodGet, "/api/auth/me", nil, cookie)
		expectStatus(t, w, http.StatusOK)
		body := decode[struct {
			User struct {
				EmployeeID string `json:"employeeId"`
				Role       string `json:"role"`
			} `json:"user"`
		}](t, w)
		if body.User.EmployeeID != "E1" || body.User.Role != "employee" {
			t.Errorf("user = %+v", body.User)
		}

		w = s.do(http.MethodPost, "/api/auth/logout", nil, cookie)
		expectStatus(t, w, http.StatusOK)
		cleared := false
		for _, c := range w.Result().Cookies() {
			if c.Name == "etats.sid" && c.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Error("logout did not clear the cookie")
		}
	})
}

func TestEmployeeEndpoints(t *testing.T) {
	s := newTestServer(t)
	mona := s.login("mona@example.com", "secret")

	w := s.do(http.MethodPost, "/api/employees", map[string]any{"employeeId": 42, "name": "Nora", "email": "Nora@Example.com"}, mona)
	expectStatus(t, w, http.StatusBadRequest)

	w = s.do(http.MethodPost, "/api/employees", map[string]any{
		"employeeId": 42, "name": "Nora", "email": "Nora@Example.com", "password": "pw", "role": "MANAGER",
	}, mona)
	expectStatus(t, w, http.StatusCreated)
	created := decode[map[string]any](t, w)
	if created["employeeId"] != "42" || created["email"] != "nora@example.com" || created["role"] != "manager" {
		t.Errorf("created = %v", created)
	}
	if _, ok := created["password"]; ok {
		t.Error("password leaked in response")
	}

	nora := s.login("nora@example.com", "pw")
	w = s.do(http.MethodGet, "/api/employees/me", nil, nora)
	expectStatus(t, w, http.StatusOK)

	w = s.do(http.MethodPut, "/api/employees/42", map[string]any{"designation": "Lead", "status": "Inactive"}, mona)
	expectStatus(t, w, http.StatusOK)
	updated := decode[map[string]any](t, w)
	if updated["name"] != "Nora" || updated["designation"] != "Lead" || updated["status"] != "Inactive" {
		t.Errorf("updated = %v", updated)
	}

	expectStatus(t, s.do(http.MethodPut, "/api/employees/nobody", map[string]any{"name": "x"}, mona), http.StatusNotFound)
	expectStatus(t, s.do(http.MethodDelete, "/api/employees/42", nil, mona), http.StatusOK)
	expectStatus(t, s.do(http.MethodDelete, "/api/employees/42", nil, mona), http.StatusNotFound)

	// The session outlives the row it was issued for.
	expectStatus(t, s.do(http.MethodGet, "/api/employees/me", nil, nora), http.StatusNotFound)
}

func TestReportEndpoints(t *testing.T) {
	s := newTestServer(t)
	mona := s.login("mona@example.com", "secret")

	w := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "Audit"}, mona)
	expectStatus(t, w, http.StatusCreated)
	taskID := decode[map[string]int64](t, w)["taskId"]

	w = s.do(http.MethodPost, "/api/reports", map[string]any{"taskId": taskID, "managerId": "M1", "content": "   "}, mona)
	expectStatus(t, w, http.StatusBadRequest)

	w = s.do(http.MethodPost, "/api/reports", map[string]any{"taskId": itoa(taskID), "managerId": "M1", "content": "All good"}, mona)
	expectStatus(t, w, http.StatusCreated)
	rep := decode[models.Report](t, w)
	if rep.ReportID == 0 || rep.ReportName != nil || rep.TaskTitle != nil {
		t.Errorf("report = %+v", rep)
	}

	w = s.do(http.MethodGet, "/api/reports", nil, mona)
	expectStatus(t, w, http.StatusOK)
	list := decode[[]models.Report](t, w)
	if len(list) != 1 || list[0].TaskTitle == nil || *list[0].TaskTitle != "Audit" {
		t.Fatalf("list = %+v", list)
	}

	w = s.do(http.MethodGet, "/api/reports/"+itoa(rep.ReportID)+"/pdf", nil, mona)
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "All good") {
		t.Errorf("body = %q", w.Body.String())
	}
	expectStatus(t, s.do(http.MethodGet, "/api/reports/999/pdf", nil, mona), http.StatusNotFound)
}
