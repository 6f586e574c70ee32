package tasks

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*gin.Engine, *fakeTaskStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newFakeTaskStore()
	handler := NewHandler(NewService(store))

	r := gin.New()
	tasks := r.Group("/tasks")
	{
		tasks.GET("", handler.List)
		tasks.GET("/completed", handler.ListCompleted)
		tasks.GET("/uncompleted", handler.ListUncompleted)
		tasks.GET("/:id", handler.Get)
		tasks.POST("/create", handler.Create)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
		tasks.GET("/:id/date", handler.Date)
		tasks.PUT("/:id/complete", handler.Complete)
	}
	return r, store
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetTask(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "POST", "/tasks/create",
		`{"title":"Report","priority":"HIGH","date":"2025-01-01T09:00:00Z","calendarId":1}`)
	require.Equal(t, 200, w.Code)

	var created Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ID)
	require.False(t, created.Completed)
	require.Equal(t, "HIGH", string(created.Priority))

	w = do(r, "GET", "/tasks/1", "")
	require.Equal(t, 200, w.Code)
	var found Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Equal(t, created, found)
}

func TestGetUnknownTaskIs404(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "GET", "/tasks/999", "")
	require.Equal(t, 404, w.Code)
}

func TestUpdateUnknownTaskIs404(t *testing.T) {
	r, store := testRouter(t)

	w := do(r, "PUT", "/tasks/999", `{"title":"Report","calendarId":1}`)
	require.Equal(t, 404, w.Code)
	require.Empty(t, store.byID)
}

func TestDeleteIsNoContentEvenWhenMissing(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "POST", "/tasks/create", `{"title":"Report","calendarId":1}`)
	require.Equal(t, 200, w.Code)

	w = do(r, "DELETE", "/tasks/1", "")
	require.Equal(t, 204, w.Code)

	w = do(r, "DELETE", "/tasks/1", "")
	require.Equal(t, 204, w.Code)
}

func TestTaskDateEndpoint(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "POST", "/tasks/create",
		`{"title":"Report","priority":"HIGH","date":"2025-01-01T09:00:00Z","calendarId":1}`)
	require.Equal(t, 200, w.Code)

	w = do(r, "GET", "/tasks/1/date", "")
	require.Equal(t, 200, w.Code)
	var date time.Time
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &date))
	require.Equal(t, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), date.UTC())

	// a task without a date answers 204
	w = do(r, "POST", "/tasks/create", `{"title":"Undated","calendarId":1}`)
	require.Equal(t, 200, w.Code)
	w = do(r, "GET", "/tasks/2/date", "")
	require.Equal(t, 204, w.Code)

	w = do(r, "GET", "/tasks/999/date", "")
	require.Equal(t, 404, w.Code)
}

func TestCompleteTransitionAndFilters(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "POST", "/tasks/create",
		`{"title":"Report","priority":"HIGH","date":"2025-01-01T09:00:00Z","calendarId":1}`)
	require.Equal(t, 200, w.Code)

	w = do(r, "PUT", "/tasks/1/complete", "")
	require.Equal(t, 200, w.Code)
	var updated Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.True(t, updated.Completed)

	// completing again keeps completed=true
	w = do(r, "PUT", "/tasks/1/complete", "")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.True(t, updated.Completed)

	w = do(r, "GET", "/tasks/completed", "")
	require.Equal(t, 200, w.Code)
	var completed []Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &completed))
	require.Len(t, completed, 1)
	require.Equal(t, int64(1), completed[0].ID)

	w = do(r, "GET", "/tasks/uncompleted", "")
	require.Equal(t, 200, w.Code)
	var uncompleted []Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uncompleted))
	require.Empty(t, uncompleted)

	w = do(r, "PUT", "/tasks/999/complete", "")
	require.Equal(t, 404, w.Code)
}

func TestCreateTaskRejectsBadBody(t *testing.T) {
	r, _ := testRouter(t)

	w := do(r, "POST", "/tasks/create", `{"description":"no title"}`)
	require.Equal(t, 400, w.Code)
}
