package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the embedded UI pages. Both post to /api/motivation.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "MOTIVATE.AI"})
}

func (h *PageHandler) TestDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "test-dashboard.html", gin.H{"Title": "Claude API Test Dashboard"})
}
