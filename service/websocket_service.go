package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/motivate-be/types"
	"github.com/tieubaoca/motivate-be/utils"
	"go.uber.org/zap"
)

const (
	wsReadLimit   = 64 * 1024
	wsIdleTimeout = 60 * time.Second
)

// WebSocketService serves the relay over a socket: one complete reply per
// ask frame.
type WebSocketService struct {
	motivation *MotivationService
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewWebSocketService accepts upgrades from origins the policy allows.
// Requests without an Origin header come from non-browser clients and pass.
func NewWebSocketService(motivation *MotivationService, origins utils.OriginPolicy, logger *zap.Logger) *WebSocketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocketService{
		motivation: motivation,
		logger:     logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins.Allowed(origin)
			},
		},
	}
}

func (s *WebSocketService) HandleAsk(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
	})

	ctx := r.Context()
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Info("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.logger.Warn("websocket unmarshal error", zap.Error(err))
			if !s.write(conn, errorFrame(RelayMessage(KindUnexpected))) {
				return
			}
			continue
		}

		var resp types.WebSocketResponse
		switch req.Type {
		case types.TypeWebsocketAsk:
			text, err := s.motivation.Ask(ctx, req.Payload.Input)
			if err != nil {
				s.logger.Error("websocket relay failed", zap.Error(err))
				resp = errorFrame(RelayMessage(KindOf(err)))
			} else {
				resp = types.WebSocketResponse{
					Type:    types.TypeWebsocketReply,
					Payload: types.ReplyResponse{Response: text},
				}
			}
		case types.TypeWebsocketPing:
			resp = types.WebSocketResponse{Type: types.TypeWebsocketPong}
		default:
			resp = errorFrame("Unsupported message type")
		}

		if !s.write(conn, resp) {
			return
		}
	}
}

func (s *WebSocketService) write(conn *websocket.Conn, resp types.WebSocketResponse) bool {
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Warn("websocket write error", zap.Error(err))
		return false
	}
	return true
}

func errorFrame(message string) types.WebSocketResponse {
	return types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.ErrorResponse{Error: message},
	}
}
