package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondStorageError logs the error and sends a 500 response. The underlying
// message goes into the body; this service trades error hygiene for
// debuggability and the API docs say so.
func respondStorageError(c *gin.Context, err error, context string) {
	log.Printf("Storage error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
