package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/database"
	auditdb "github.com/mrlokans/bookcatalog/internal/database/audit"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

func setupBooksRouter(t *testing.T) (*database.Database, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	controller := NewBooksController(db, nil)

	router := gin.New()
	router.GET("/api/books", controller.GetAllBooks)
	router.POST("/api/add_book", controller.AddBook)
	router.GET("/api/search", controller.SearchBooks)

	return db, router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestBooksController_GetAllBooks(t *testing.T) {
	t.Run("empty catalog yields empty list", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		w, response := getJSON(t, router, "/api/books")

		assert.Equal(t, http.StatusOK, w.Code)
		books, ok := response["books"].([]any)
		require.True(t, ok, "books must serialize as a JSON array")
		assert.Empty(t, books)
	})

	t.Run("orders newest first", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		for _, title := range []string{"First", "Second", "Third"} {
			w := postJSON(t, router, "/api/add_book", gin.H{"title": title})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w, response := getJSON(t, router, "/api/books")
		assert.Equal(t, http.StatusOK, w.Code)

		books := response["books"].([]any)
		require.Len(t, books, 3)
		assert.Equal(t, "Third", books[0].(map[string]any)["title"])
		assert.Equal(t, "Second", books[1].(map[string]any)["title"])
		assert.Equal(t, "First", books[2].(map[string]any)["title"])
	})
}

func TestBooksController_AddBook(t *testing.T) {
	t.Run("title-only book gets null optionals and a fresh id", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		w := postJSON(t, router, "/api/add_book", gin.H{"title": "Dune"})
		require.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Book added successfully", response["message"])

		book := response["book"].(map[string]any)
		assert.Equal(t, "Dune", book["title"])
		assert.Nil(t, book["publication_year"])
		assert.Nil(t, book["author"])
		assert.Nil(t, book["image_url"])
		assert.Greater(t, book["book_id"].(float64), float64(0))
	})

	t.Run("ids increase across inserts", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		var previous float64
		for _, title := range []string{"A", "B", "C"} {
			w := postJSON(t, router, "/api/add_book", gin.H{"title": title})
			require.Equal(t, http.StatusCreated, w.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			id := response["book"].(map[string]any)["book_id"].(float64)
			assert.Greater(t, id, previous)
			previous = id
		}
	})

	t.Run("accepts year as string or number", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		for _, year := range []any{1999, "1999"} {
			w := postJSON(t, router, "/api/add_book", gin.H{"title": "Dune", "publication_year": year})
			require.Equal(t, http.StatusCreated, w.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			book := response["book"].(map[string]any)
			assert.Equal(t, float64(1999), book["publication_year"])
		}
	})

	t.Run("rejects non-integer year", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		w := postJSON(t, router, "/api/add_book", gin.H{"title": "Dune", "publication_year": "abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "publication_year must be an integer")
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		w := postJSON(t, router, "/api/add_book", gin.H{"title": "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Title is required")
	})

	t.Run("validation failure does not store anything", func(t *testing.T) {
		_, router := setupBooksRouter(t)

		w := postJSON(t, router, "/api/add_book", gin.H{"title": ""})
		require.Equal(t, http.StatusBadRequest, w.Code)

		_, response := getJSON(t, router, "/api/books")
		assert.Empty(t, response["books"])
	})
}

func TestBooksController_SearchBooks(t *testing.T) {
	seed := func(t *testing.T, router *gin.Engine) {
		books := []gin.H{
			{"title": "The Pragmatic Programmer", "author": "Andrew Hunt"},
			{"title": "Clean Code", "author": "Robert C. Martin"},
			{"title": "Refactoring", "author": "Martin Fowler"},
		}
		for _, book := range books {
			w := postJSON(t, router, "/api/add_book", book)
			require.Equal(t, http.StatusCreated, w.Code)
		}
	}

	t.Run("blank query yields empty list without error", func(t *testing.T) {
		_, router := setupBooksRouter(t)
		seed(t, router)

		for _, path := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
			w, response := getJSON(t, router, path)
			assert.Equal(t, http.StatusOK, w.Code)
			books, ok := response["books"].([]any)
			require.True(t, ok)
			assert.Empty(t, books)
		}
	})

	t.Run("matches title or author case-insensitively", func(t *testing.T) {
		_, router := setupBooksRouter(t)
		seed(t, router)

		w, response := getJSON(t, router, "/api/search?q=pragmatic")
		assert.Equal(t, http.StatusOK, w.Code)
		books := response["books"].([]any)
		require.Len(t, books, 1)
		assert.Equal(t, "The Pragmatic Programmer", books[0].(map[string]any)["title"])

		_, response = getJSON(t, router, "/api/search?q=martin")
		books = response["books"].([]any)
		assert.Len(t, books, 2)
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		_, router := setupBooksRouter(t)
		seed(t, router)

		w, response := getJSON(t, router, "/api/search?q=zzzzz")
		assert.Equal(t, http.StatusOK, w.Code)
		books, ok := response["books"].([]any)
		require.True(t, ok)
		assert.Empty(t, books)
	})

	t.Run("blank query still logs an outcome", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		db, err := database.NewDatabase(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() {
			db.Close()
		})

		auditService := audit.NewService(auditdb.NewRepository(db.DB))
		controller := NewBooksController(db, auditService)

		router := gin.New()
		router.GET("/api/search", controller.SearchBooks)

		w, response := getJSON(t, router, "/api/search?q=%20%20")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, response["books"])

		// Audit writes are asynchronous.
		time.Sleep(50 * time.Millisecond)

		events, total, err := auditService.GetEvents(10, 0)
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		assert.Equal(t, "searched books", events[0].Message)
		assert.Equal(t, "blank query", events[0].Details)
		assert.Equal(t, entities.AuditLevelInfo, events[0].Level)
	})
}
