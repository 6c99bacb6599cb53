package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
	"github.com/tasktrack/tracker-backend/internal/tasks/service"
)

// memStore mimics the tasks table, including its NOT NULL columns.
type memStore struct {
	rows    []domain.Task
	writes  int
	failAll error
}

func (m *memStore) toRow(id int64, w domain.TaskWrite) (domain.Task, error) {
	if w.Title == nil || w.UserName == nil || w.Status == nil {
		return domain.Task{}, errors.New("null value violates not-null constraint")
	}
	return domain.Task{
		ID:          id,
		ProjectID:   w.ProjectID,
		Title:       *w.Title,
		Description: w.Description,
		DueDate:     w.DueDate,
		Status:      *w.Status,
		UserName:    *w.UserName,
	}, nil
}

func (m *memStore) Create(_ context.Context, w domain.TaskWrite) (*domain.Task, error) {
	if m.failAll != nil {
		return nil, apperr.Store("insert task", m.failAll)
	}
	t, err := m.toRow(int64(len(m.rows)+1), w)
	if err != nil {
		return nil, apperr.Store("insert task", err)
	}
	m.writes++
	m.rows = append(m.rows, t)
	return &t, nil
}

func (m *memStore) List(_ context.Context, f domain.Filter) ([]domain.Task, error) {
	if m.failAll != nil {
		return nil, apperr.Store("list tasks", m.failAll)
	}
	out := make([]domain.Task, 0)
	for i := len(m.rows) - 1; i >= 0; i-- {
		t := m.rows[i]
		if f.UserName != "" && t.UserName != f.UserName {
			continue
		}
		if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, id int64, w domain.TaskWrite) (*domain.Task, error) {
	if m.failAll != nil {
		return nil, apperr.Store("update task", m.failAll)
	}
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		t, err := m.toRow(id, w)
		if err != nil {
			return nil, apperr.Store("update task", err)
		}
		m.writes++
		m.rows[i] = t
		return &t, nil
	}
	return nil, apperr.ErrNotFound
}

func setupRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewTaskService(store)).Register(r.Group("/api/tasks"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeTasks(t *testing.T, rr *httptest.ResponseRecorder) []domain.Task {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var out []domain.Task
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func seed(t *testing.T, r http.Handler) {
	t.Helper()
	bodies := []string{
		`{"title":"t1","user_name":"ana","project_id":1}`,
		`{"title":"t2","user_name":"ben","project_id":1}`,
		`{"title":"t3","user_name":"ana","project_id":2}`,
		`{"title":"t4","user_name":"ana"}`,
	}
	for _, b := range bodies {
		rr := do(r, http.MethodPost, "/api/tasks", b)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestCreateTask(t *testing.T) {
	t.Run("defaults status and nulls optional fields", func(t *testing.T) {
		rr := do(setupRouter(&memStore{}), http.MethodPost, "/api/tasks",
			`{"title":"Plan","user_name":"ana","description":"","due_date":"","project_id":""}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":1,"project_id":null,"title":"Plan","description":null,"due_date":null,"status":"not started","user_name":"ana"}`, rr.Body.String())
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		rr := do(setupRouter(&memStore{}), http.MethodPost, "/api/tasks",
			`{"title":"Plan","user_name":"ana","description":"d","due_date":"2025-02-03","project_id":"4","status":"in progress"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":1,"project_id":4,"title":"Plan","description":"d","due_date":"2025-02-03","status":"in progress","user_name":"ana"}`, rr.Body.String())
	})

	for name, body := range map[string]string{
		"missing title":     `{"user_name":"ana"}`,
		"missing user name": `{"title":"Plan"}`,
		"missing both":      `{}`,
		"empty strings":     `{"title":"","user_name":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := &memStore{}
			rr := do(setupRouter(store), http.MethodPost, "/api/tasks", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Title and user name are required"}`, rr.Body.String())
			assert.Equal(t, 0, store.writes)
		})
	}

	t.Run("non-numeric project id", func(t *testing.T) {
		rr := do(setupRouter(&memStore{}), http.MethodPost, "/api/tasks",
			`{"title":"Plan","user_name":"ana","project_id":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		rr := do(setupRouter(&memStore{failAll: errors.New("down")}), http.MethodPost, "/api/tasks",
			`{"title":"Plan","user_name":"ana"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to create task"}`, rr.Body.String())
	})
}

func TestListTasks(t *testing.T) {
	r := setupRouter(&memStore{})
	seed(t, r)

	cases := []struct {
		query string
		want  []int64
	}{
		{"", []int64{4, 3, 2, 1}},
		{"?user_name=ana", []int64{4, 3, 1}},
		{"?project_id=1", []int64{2, 1}},
		{"?user_name=ana&project_id=1", []int64{1}},
		{"?user_name=ana&project_id=2", []int64{3}},
		{"?user_name=zoe", []int64{}},
		{"?user_name=&project_id=", []int64{4, 3, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("query %q", tc.query), func(t *testing.T) {
			got := decodeTasks(t, do(r, http.MethodGet, "/api/tasks"+tc.query, ""))
			assert.Equal(t, tc.want, ids(got))
		})
	}

	t.Run("invalid project id", func(t *testing.T) {
		rr := do(r, http.MethodGet, "/api/tasks?project_id=abc", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		rr := do(setupRouter(&memStore{failAll: errors.New("down")}), http.MethodGet, "/api/tasks", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch tasks"}`, rr.Body.String())
	})
}

func TestCreateThenListRoundTrip(t *testing.T) {
	r := setupRouter(&memStore{})

	rr := do(r, http.MethodPost, "/api/tasks",
		`{"title":"Ship","user_name":"cara","project_id":7,"description":"v1","due_date":"2025-12-01","status":"todo"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var created domain.Task
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	got := decodeTasks(t, do(r, http.MethodGet, "/api/tasks?user_name=cara", ""))
	require.Len(t, got, 1)
	assert.Equal(t, created, got[0])
}

func TestUpdateTask(t *testing.T) {
	t.Run("overwrites every field and nulls omitted ones", func(t *testing.T) {
		r := setupRouter(&memStore{})
		rr := do(r, http.MethodPost, "/api/tasks",
			`{"title":"Plan","user_name":"ana","project_id":3,"description":"d","due_date":"2025-01-01"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = do(r, http.MethodPut, "/api/tasks/1", `{"title":"Plan v2","user_name":"ben","status":""}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":1,"project_id":null,"title":"Plan v2","description":null,"due_date":null,"status":"","user_name":"ben"}`, rr.Body.String())
	})

	t.Run("missing status is written as null and rejected by the store", func(t *testing.T) {
		store := &memStore{}
		r := setupRouter(store)
		seed(t, r)

		rr := do(r, http.MethodPut, "/api/tasks/1", `{"title":"x","user_name":"ana"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to update task"}`, rr.Body.String())
		assert.Equal(t, domain.DefaultStatus, store.rows[0].Status)
	})

	t.Run("unknown id is 404 and changes nothing", func(t *testing.T) {
		store := &memStore{}
		r := setupRouter(store)
		seed(t, r)
		before := append([]domain.Task(nil), store.rows...)

		rr := do(r, http.MethodPut, "/api/tasks/99", `{"title":"x","user_name":"ana","status":"done"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Task not found"}`, rr.Body.String())
		assert.Equal(t, before, store.rows)
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		rr := do(setupRouter(&memStore{}), http.MethodPut, "/api/tasks/abc", `{"title":"x","user_name":"ana","status":"done"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := do(setupRouter(&memStore{}), http.MethodPut, "/api/tasks/1", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
