package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"study-tracker/internal/handler"
	"study-tracker/internal/service"
	"study-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer runs the real router over an in-memory store. Writes can
// be failed on demand to exercise the pending-write path.
type testServer struct {
	*httptest.Server
	failWrites atomic.Bool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := service.NewTrackerService(store.NewMemStore())
	router := handler.NewRouter(handler.NewTrackerHandler(svc))

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && ts.failWrites.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"store unavailable"}`))
			return
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(t *testing.T, ts *testServer, user string) *Client {
	t.Helper()
	c := New(ts.URL)
	c.Login(user)
	return c
}

func TestNoSession(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)

	_, err := c.FetchSubjects(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	c.Login("alice")
	_, err = c.FetchSubjects(context.Background())
	assert.NoError(t, err)

	c.Logout()
	_, err = c.FetchSubjects(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFetchUserProvisions(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts, "fresh-name")

	u, err := c.FetchUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-name", u.Name)
	assert.Empty(t, u.Subjects)
	assert.Empty(t, u.DailyLogs)
}

func TestDeleteSubjectRoute(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	c := newTestClient(t, ts, "alice")

	v := NewSubjectView(c)
	require.NoError(t, v.Hydrate(ctx))
	math, err := v.AddSubject(ctx, "Math", "")
	require.NoError(t, err)
	_, err = v.AddSubject(ctx, "Physics", "")
	require.NoError(t, err)

	// The targeted delete route stays consistent with the replace flow.
	remaining, err := c.DeleteSubject(ctx, math.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Physics", remaining[0].Name)
}

func TestDeleteSubjectRouteUnknownUser(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts, "ghost")

	_, err := c.DeleteSubject(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}
