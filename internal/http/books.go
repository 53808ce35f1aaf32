package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

// BookStore defines the catalog operations the books controller needs.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetAllBooks() ([]entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
}

type BooksController struct {
	store        BookStore
	auditService *audit.Service
}

func NewBooksController(store BookStore, auditService *audit.Service) *BooksController {
	return &BooksController{store: store, auditService: auditService}
}

// GetAllBooks lists the whole catalog, newest first.
// GET /api/books
func (ctrl *BooksController) GetAllBooks(c *gin.Context) {
	books, err := ctrl.store.GetAllBooks()
	if err != nil {
		ctrl.logFailure(c, "list books failed", err)
		respondStorageError(c, err, "list books")
		return
	}

	ctrl.logSuccess(c, "listed books", fmt.Sprintf("%d books", len(books)))
	c.JSON(http.StatusOK, gin.H{"books": books})
}

// AddBook creates a catalog entry.
// POST /api/add_book
func (ctrl *BooksController) AddBook(c *gin.Context) {
	var payload validation.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		ctrl.logFailure(c, "add book rejected", err)
		respondBadRequest(c, "invalid JSON body")
		return
	}

	record, err := validation.NewBook(payload)
	if err != nil {
		ctrl.logFailure(c, "add book rejected", err)
		respondBadRequest(c, err.Error())
		return
	}

	book := &entities.Book{
		Title:           record.Title,
		PublicationYear: record.PublicationYear,
		Author:          record.Author,
		ImageURL:        record.ImageURL,
	}
	if err := ctrl.store.CreateBook(book); err != nil {
		ctrl.logFailure(c, "add book failed", err)
		respondStorageError(c, err, "add book")
		return
	}

	ctrl.logSuccess(c, "book added", book.Title)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Book added successfully",
		"book":    book,
	})
}

// SearchBooks matches a substring of title or author. A blank query returns
// an empty shelf without touching storage.
// GET /api/search?q=
func (ctrl *BooksController) SearchBooks(c *gin.Context) {
	query, ok := validation.SearchQuery(c.Query("q"))
	if !ok {
		ctrl.logSuccess(c, "searched books", "blank query")
		c.JSON(http.StatusOK, gin.H{"books": []entities.Book{}})
		return
	}

	books, err := ctrl.store.SearchBooks(query)
	if err != nil {
		ctrl.logFailure(c, "search books failed", err)
		respondStorageError(c, err, "search books")
		return
	}

	ctrl.logSuccess(c, "searched books", fmt.Sprintf("q=%q matched %d", query, len(books)))
	c.JSON(http.StatusOK, gin.H{"books": books})
}

func (ctrl *BooksController) logSuccess(c *gin.Context, message, details string) {
	if ctrl.auditService == nil {
		return
	}
	ctrl.auditService.LogSuccess(GetRequestID(c), message, details)
}

func (ctrl *BooksController) logFailure(c *gin.Context, message string, err error) {
	if ctrl.auditService == nil {
		return
	}
	ctrl.auditService.LogFailure(GetRequestID(c), message, err)
}
