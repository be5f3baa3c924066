package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/motivate-be/types"
)

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t, &fakeAI{})

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/motivation")
	assert.Contains(t, w.Body.String(), "Ask another question")

	w = doRequest(router, http.MethodGet, "/test-dashboard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Claude API Test Dashboard")
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, &fakeAI{completion: textReply("ok")})

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	doRequest(router, http.MethodPost, "/api/motivation", `{"input":"focus"}`)

	w = doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "relay_outcomes_total")
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_CorsPreflight(t *testing.T) {
	router := newTestRouter(t, &fakeAI{})

	w := doRequest(router, http.MethodOptions, "/api/motivation", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CorsEchoesListedOrigin(t *testing.T) {
	router := newTestRouterWithOrigins(t, &fakeAI{}, "https://a.example, https://b.example")

	tests := []struct {
		origin string
		want   string
	}{
		{"https://b.example", "https://b.example"},
		{"https://a.example", "https://a.example"},
		{"https://evil.example", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/motivation", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"), "origin %q", tt.origin)
		assert.Contains(t, w.Header().Values("Vary"), "Origin")
	}
}

func TestWebSocket_RejectsUnlistedOrigin(t *testing.T) {
	srv := httptest.NewServer(newTestRouterWithOrigins(t, &fakeAI{}, "https://a.example"))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/motivation"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://a.example"}})
	require.NoError(t, err)
	conn.Close()
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/motivation"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

type wsFrame struct {
	Type    string `json:"type"`
	Payload struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	} `json:"payload"`
}

func TestWebSocket_AskAndPing(t *testing.T) {
	ai := &fakeAI{completion: textReply("Start small...")}
	srv := httptest.NewServer(newTestRouter(t, ai))
	defer srv.Close()
	conn := dialWS(t, srv)

	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{
		Type:    types.TypeWebsocketAsk,
		Payload: types.PromptRequest{Input: "become a better runner"},
	}))
	var frame wsFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, types.TypeWebsocketReply, frame.Type)
	assert.Equal(t, "Start small...", frame.Payload.Response)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": types.TypeWebsocketPing}))
	frame = wsFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, types.TypeWebsocketPong, frame.Type)
}

func TestWebSocket_Errors(t *testing.T) {
	ai := &fakeAI{completion: textReply("unused")}
	srv := httptest.NewServer(newTestRouter(t, ai))
	defer srv.Close()
	conn := dialWS(t, srv)

	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{Type: types.TypeWebsocketAsk}))
	var frame wsFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, types.TypeWebsocketError, frame.Type)
	assert.Equal(t, "Please enter your question", frame.Payload.Error)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	frame = wsFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "Failed to process request", frame.Payload.Error)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "dance"}))
	frame = wsFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, types.TypeWebsocketError, frame.Type)

	assert.Empty(t, ai.prompts)
}
