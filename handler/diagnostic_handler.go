package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/motivate-be/middleware"
	"github.com/tieubaoca/motivate-be/service"
	"github.com/tieubaoca/motivate-be/types"
	"go.uber.org/zap"
)

type DiagnosticHandler struct {
	motivation *service.MotivationService
	logger     *zap.Logger
}

func NewDiagnosticHandler(motivation *service.MotivationService, logger *zap.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{
		motivation: motivation,
		logger:     logger,
	}
}

// HandleTest sends the fixed test message to the provider (GET /api/test).
func (h *DiagnosticHandler) HandleTest(c *gin.Context) {
	text, err := h.motivation.Diagnose(c.Request.Context())
	if err != nil {
		h.logger.Error("api test failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)))

		switch {
		case errors.Is(err, service.ErrMissingCredential):
			recordOutcome("test", "configuration")
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: service.MsgKeyNotConfigured})
		case service.IsAuthenticationError(err):
			recordOutcome("test", "authentication")
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: service.MsgInvalidAPIKey})
		default:
			recordOutcome("test", "failure")
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:   service.MsgTestFailed,
				Details: errorDetails(err),
			})
		}
		return
	}

	recordOutcome("test", "success")
	c.JSON(http.StatusOK, types.DiagnosticResponse{
		Status:   "success",
		Message:  service.MsgTestSucceeded,
		Response: text,
	})
}

func errorDetails(err error) string {
	if err == nil || err.Error() == "" {
		return service.MsgUnknownError
	}
	return err.Error()
}
