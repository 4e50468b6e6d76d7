package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ragtask/handlers"
	"ragtask/models"
	"ragtask/services/chat"
)

type stubChatService struct {
	resp models.ChatResponse
	err  error
}

func (s *stubChatService) Chat(_ context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if s.err != nil {
		return models.ChatResponse{}, s.err
	}
	resp := s.resp
	if resp.SessionID == "" {
		resp.SessionID = req.SessionID
	}
	return resp, nil
}

func newRouter(svc chat.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewChatHandler(svc)
	r.POST("/api/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatSuccess(t *testing.T) {
	svc := &stubChatService{resp: models.ChatResponse{
		Response:        "hello",
		Mode:            models.ModeContinue,
		RetrievedChunks: 2,
		KnowledgeBase:   true,
	}}
	r := newRouter(svc)

	w := postChat(t, r, map[string]string{"query": "hi", "session_id": "s1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != "hello" || resp.RetrievedChunks != 2 || !resp.KnowledgeBase {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleChatRejectsEmptyQuery(t *testing.T) {
	r := newRouter(&stubChatService{})

	for _, query := range []string{"", "   "} {
		w := postChat(t, r, map[string]string{"query": query})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, w.Code)
		}
	}
}

func TestHandleChatRejectsBadMode(t *testing.T) {
	r := newRouter(&stubChatService{})

	w := postChat(t, r, map[string]string{"query": "hi", "mode": "reset"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", w.Code)
	}
}

func TestHandleChatRejectsBadKnowledgeBaseFlag(t *testing.T) {
	r := newRouter(&stubChatService{})

	w := postChat(t, r, map[string]string{"query": "hi", "knowledge_base": "maybe"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown knowledge_base value, got %d", w.Code)
	}
}

func TestHandleChatRejectsMalformedSessionID(t *testing.T) {
	r := newRouter(&stubChatService{resp: models.ChatResponse{Response: "must not be reached"}})

	for name, sessionID := range map[string]string{
		"control characters": "bad\nid\x00",
		"oversized":          strings.Repeat("a", 65536),
	} {
		w := postChat(t, r, map[string]string{"query": "hi", "session_id": sessionID})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s session_id: expected 400, got %d", name, w.Code)
		}
	}
}

func TestHandleChatGenerationFailure(t *testing.T) {
	svc := &stubChatService{err: fmt.Errorf("%w: upstream 503", chat.ErrGeneration)}
	r := newRouter(svc)

	w := postChat(t, r, map[string]string{"query": "hi"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for generation failure, got %d", w.Code)
	}
}

func TestHandleChatUnexpectedFailure(t *testing.T) {
	svc := &stubChatService{err: errors.New("boom")}
	r := newRouter(svc)

	w := postChat(t, r, map[string]string{"query": "hi"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
