package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

type jobPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.BackendConfig{BaseURL: baseURL, Timeout: 2 * time.Second}, zap.NewNop())
}

func TestFetchSuccess(t *testing.T) {
	t.Run("bare payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"j1","title":"Backend Engineer"}`))
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/j1")
		require.True(t, res.Success)
		assert.Empty(t, res.Err)
		assert.Equal(t, "Backend Engineer", res.Data.Title)
	})

	t.Run("data envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"id":"j1","title":"a"},{"id":"j2","title":"b"}]}`))
		}))
		defer srv.Close()

		res := Fetch[[]jobPayload](context.Background(), newTestClient(srv.URL), "/recommendations/jobs/u1")
		require.True(t, res.Success)
		assert.Len(t, res.Data, 2)
	})

	t.Run("empty body yields zero value", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/apply")
		require.True(t, res.Success)
		assert.Empty(t, res.Data.ID)
	})

	t.Run("attaches user id from context", func(t *testing.T) {
		var gotUserID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = r.Header.Get("X-User-ID")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		ctx := session.ContextWithUser(context.Background(), &models.User{ID: "user-42"})
		res := Fetch[jobPayload](ctx, newTestClient(srv.URL), "/recommendations/jobs/user-42")
		require.True(t, res.Success)
		assert.Equal(t, "user-42", gotUserID)
	})
}

func TestFetchFailureModes(t *testing.T) {
	// Whatever goes wrong underneath, the caller sees Success=false and
	// a non-empty message, never an error value or a panic.
	t.Run("http 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/j1")
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Err)
	})

	t.Run("error field from backend wins over status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"unknown job id"}`))
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/nope")
		assert.False(t, res.Success)
		assert.Equal(t, "unknown job id", res.Err)
	})

	t.Run("network drop", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/j1")
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Err)
	})

	t.Run("malformed json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "j1", "title":`))
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/j1")
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Err)
	})

	t.Run("wrong payload shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`"just a string"`))
		}))
		defer srv.Close()

		res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/get-job/j1")
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Err)
	})
}

func TestFetchPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":"a1"}`))
	}))
	defer srv.Close()

	res := Fetch[jobPayload](context.Background(), newTestClient(srv.URL), "/apply",
		WithMethod(http.MethodPost),
		WithBody(map[string]string{"job_id": "j1"}),
	)
	require.True(t, res.Success)
	assert.Equal(t, "a1", res.Data.ID)
}
