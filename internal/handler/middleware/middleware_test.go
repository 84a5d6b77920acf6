//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireActor(t *testing.T) {
	router := gin.New()
	router.GET("/me", middleware.RequireActor(), func(c *gin.Context) {
		id, ok := middleware.GetActorID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "numeric id", header: "17", wantStatus: http.StatusOK, wantBody: `{"id":17}`},
		{name: "missing header", header: "", wantStatus: http.StatusBadRequest},
		{name: "non numeric", header: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(middleware.HeaderActorID, tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"VALIDATION"`)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	assert.Nil(t, middleware.NewRateLimitMiddleware(config.RateLimitConfig{RPS: 0}))

	router := gin.New()
	router.Use(middleware.NewRateLimitMiddleware(config.RateLimitConfig{RPS: 0.001, Burst: 2}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes[i] = rec.Code
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

type memoryStore struct {
	mu      sync.Mutex
	records map[string]shared.IdempotencyRecord
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]shared.IdempotencyRecord{}}
}

func (s *memoryStore) Reserve(_ context.Context, key, hash string) (*shared.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[key]; ok {
		return &rec, false, nil
	}
	s.records[key] = shared.IdempotencyRecord{State: shared.IdempotencyPending, RequestHash: hash}
	return nil, true, nil
}

func (s *memoryStore) Complete(_ context.Context, key string, rec shared.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.State = shared.IdempotencyCompleted
	s.records[key] = rec
	return nil
}

func (s *memoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

func TestIdempotencyMiddleware(t *testing.T) {
	newRouter := func(store shared.IdempotencyStore, calls *int, status int) *gin.Engine {
		router := gin.New()
		router.POST("/bookings", middleware.RequireActor(), middleware.NewIdempotencyMiddleware(store), func(c *gin.Context) {
			*calls++
			c.JSON(status, gin.H{"call": *calls})
		})
		return router
	}
	post := func(router *gin.Engine, key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set(middleware.HeaderActorID, "1")
		if key != "" {
			req.Header.Set(middleware.HeaderIdempotencyKey, key)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("repeated key replays the first response", func(t *testing.T) {
		calls := 0
		router := newRouter(newMemoryStore(), &calls, http.StatusCreated)

		first := post(router, "k1", `{"itemId":1}`)
		second := post(router, "k1", `{"itemId":1}`)

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	})

	t.Run("same key with another payload conflicts", func(t *testing.T) {
		calls := 0
		router := newRouter(newMemoryStore(), &calls, http.StatusCreated)

		post(router, "k1", `{"itemId":1}`)
		rec := post(router, "k1", `{"itemId":2}`)

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("pending key conflicts", func(t *testing.T) {
		calls := 0
		store := newMemoryStore()
		store.records["1:/bookings:k1"] = shared.IdempotencyRecord{
			State:       shared.IdempotencyPending,
			RequestHash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		}
		router := newRouter(store, &calls, http.StatusCreated)

		rec := post(router, "k1", "")

		assert.Equal(t, 0, calls)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("server errors release the key", func(t *testing.T) {
		calls := 0
		store := newMemoryStore()
		router := newRouter(store, &calls, http.StatusInternalServerError)

		post(router, "k1", `{}`)
		post(router, "k1", `{}`)

		assert.Equal(t, 2, calls)
		assert.Empty(t, store.records)
	})

	t.Run("no key means no deduplication", func(t *testing.T) {
		calls := 0
		router := newRouter(newMemoryStore(), &calls, http.StatusCreated)

		post(router, "", `{}`)
		post(router, "", `{}`)

		assert.Equal(t, 2, calls)
	})
}
