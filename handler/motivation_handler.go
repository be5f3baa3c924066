package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/motivate-be/middleware"
	"github.com/tieubaoca/motivate-be/service"
	"github.com/tieubaoca/motivate-be/types"
	"go.uber.org/zap"
)

type MotivationHandler struct {
	motivation *service.MotivationService
	logger     *zap.Logger
}

func NewMotivationHandler(motivation *service.MotivationService, logger *zap.Logger) *MotivationHandler {
	return &MotivationHandler{
		motivation: motivation,
		logger:     logger,
	}
}

// HandleMotivation relays POST /api/motivation.
func (h *MotivationHandler) HandleMotivation(c *gin.Context) {
	// The credential check comes before the body is read.
	if !h.motivation.Configured() {
		h.logger.Error("relay rejected: provider credential is not configured",
			zap.String("request_id", middleware.GetRequestID(c)))
		h.fail(c, service.KindConfiguration)
		return
	}

	var req types.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("relay: invalid request body",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)))
		h.fail(c, service.KindUnexpected)
		return
	}

	text, err := h.motivation.Ask(c.Request.Context(), req.Input)
	if err != nil {
		kind := service.KindOf(err)
		if kind != service.KindValidation {
			h.logger.Error("relay failed",
				zap.Error(err),
				zap.String("kind", kind.String()),
				zap.String("request_id", middleware.GetRequestID(c)))
		}
		h.fail(c, kind)
		return
	}

	recordOutcome("motivation", "success")
	c.JSON(http.StatusOK, types.ReplyResponse{Response: text})
}

func (h *MotivationHandler) fail(c *gin.Context, kind service.ErrorKind) {
	recordOutcome("motivation", kind.String())
	c.JSON(relayStatus(kind), types.ErrorResponse{Error: service.RelayMessage(kind)})
}

func relayStatus(kind service.ErrorKind) int {
	if kind == service.KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
