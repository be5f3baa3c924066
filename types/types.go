package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketAsk   = "ask"
	TypeWebsocketReply = "reply"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string        `json:"type"`
	Payload PromptRequest `json:"payload"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}
