package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/database"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

func setupHealthRouter(t *testing.T, db *database.Database, pinger MongoPinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthController(db, pinger, "test").Status)
	return router
}

func TestHealthController_Status(t *testing.T) {
	t.Run("healthy when both stores respond", func(t *testing.T) {
		db, err := database.NewDatabase(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		router := setupHealthRouter(t, db, &fakePinger{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "ok", response.Checks["mongodb"])
		assert.Equal(t, "test", response.Version)
	})

	t.Run("unhealthy when the database is gone", func(t *testing.T) {
		db, err := database.NewDatabase(":memory:")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		router := setupHealthRouter(t, db, &fakePinger{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})

	t.Run("unhealthy when the document store is unreachable", func(t *testing.T) {
		db, err := database.NewDatabase(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		router := setupHealthRouter(t, db, &fakePinger{err: errors.New("connection refused")})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}
