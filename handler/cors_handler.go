package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/motivate-be/utils"
)

type CorsHandler struct {
	origins utils.OriginPolicy
}

func NewCorsHandler(origins utils.OriginPolicy) *CorsHandler {
	return &CorsHandler{origins: origins}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	if h.origins.AllowAny() {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	} else {
		c.Writer.Header().Add("Vary", "Origin")
		if origin := c.GetHeader("Origin"); origin != "" && h.origins.Allowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
	}
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
