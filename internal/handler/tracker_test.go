package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"study-tracker/internal/service"
	"study-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewTrackerService(store.NewMemStore())
	return NewRouter(NewTrackerHandler(svc))
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUserAutoProvisions(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"alice","subjects":[],"dailylogs":[]}`, w.Body.String())

	// Idempotent on repeat.
	w = doRequest(t, r, http.MethodGet, "/api/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"alice","subjects":[],"dailylogs":[]}`, w.Body.String())
}

func TestGetSubjectsDoesNotProvision(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/ghost/subjects", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// Still no account: the id-scoped delete must 404.
	w = doRequest(t, r, http.MethodDelete, "/api/ghost/subjects/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}

func TestPostSubjectsRoundTrip(t *testing.T) {
	r := newTestRouter()

	payload := `[{"id":"1700000000002","name":"Physics","entries":[],"createdAt":"b"},
	             {"id":"1700000000001","name":"Math","entries":[{"id":"e1","description":"Ch1","date":"d"}],"createdAt":"a"}]`

	w := doRequest(t, r, http.MethodPost, "/api/alice/subjects", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, w.Body.String())

	// Stored verbatim: order and content come back exactly, no re-sort.
	w = doRequest(t, r, http.MethodGet, "/api/alice/subjects", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, w.Body.String())
}

func TestPostSubjectsFullReplace(t *testing.T) {
	r := newTestRouter()

	a := `[{"id":"1","name":"Math"},{"id":"2","name":"Physics"}]`
	b := `[{"id":"1","name":"Math"}]`

	doRequest(t, r, http.MethodPost, "/api/alice/subjects", a)
	w := doRequest(t, r, http.MethodPost, "/api/alice/subjects", b)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/alice/subjects", "")
	assert.JSONEq(t, b, w.Body.String())
}

func TestDeleteSubjectByID(t *testing.T) {
	r := newTestRouter()

	doRequest(t, r, http.MethodPost, "/api/alice/subjects", `[{"id":"1","name":"Math"},{"id":7,"name":"Legacy"}]`)

	w := doRequest(t, r, http.MethodDelete, "/api/alice/subjects/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"1","name":"Math"}]`, w.Body.String())

	w = doRequest(t, r, http.MethodDelete, "/api/alice/subjects/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostDailyLogsRoundTrip(t *testing.T) {
	r := newTestRouter()

	payload := `[{"id":"1","date":"2026-03-01","logs":["","studied"],"createdAt":"c"}]`
	w := doRequest(t, r, http.MethodPost, "/api/alice/dailylogs", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/api/alice/dailylogs", "")
	assert.JSONEq(t, payload, w.Body.String())

	// The subjects collection is untouched by dailylogs writes.
	w = doRequest(t, r, http.MethodGet, "/api/alice/subjects", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostMalformedBody(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodPost, "/api/alice/subjects", `{"id":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/alice", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/alice", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}
