package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/motivate-be/service"
	"github.com/tieubaoca/motivate-be/types"
	"go.uber.org/zap"
)

type fakeAI struct {
	prompts    []string
	completion *types.Completion
	err        error
}

func (f *fakeAI) Complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error) {
	f.prompts = append(f.prompts, prompt)
	return f.completion, f.err
}

func textReply(text string) *types.Completion {
	return &types.Completion{Segments: []types.Segment{{Type: types.SegmentTypeText, Text: text}}}
}

// newTestRouter builds the full router. A nil ai means no credential.
func newTestRouter(t *testing.T, ai *fakeAI) *gin.Engine {
	t.Helper()
	return newTestRouterWithOrigins(t, ai, "*")
}

func newTestRouterWithOrigins(t *testing.T, ai *fakeAI, origins string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var provider service.AIService
	if ai != nil {
		provider = ai
	}
	motivation := service.NewMotivationService(provider, service.MotivationConfig{}, zap.NewNop())
	return NewRouter(RouterConfig{AllowedOrigins: origins}, motivation, zap.NewNop())
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
