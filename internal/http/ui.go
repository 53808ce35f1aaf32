package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UIController struct{}

func NewUIController() *UIController {
	return &UIController{}
}

// HomePage renders the catalog shell; the page fetches its data from the
// JSON endpoints.
// GET /
func (ctrl *UIController) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}
