package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"ragtask/models"
	"ragtask/services/chat"
	"ragtask/utils"
)

// ChatHandler exposes the conversational endpoint.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(service chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChat processes one chat exchange. Validation failures are rejected
// before any orchestration work begins; degraded dependencies inside the
// orchestrator still produce a normal reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		utils.JSONError(c, http.StatusBadRequest, "query must not be empty", "")
		return
	}
	if req.Mode != "" && req.Mode != models.ModeContinue && req.Mode != models.ModeRestart {
		utils.JSONError(c, http.StatusBadRequest, "mode must be 'continue' or 'restart'", "")
		return
	}
	if req.KnowledgeBase != "" && req.KnowledgeBase != "yes" && req.KnowledgeBase != "no" {
		utils.JSONError(c, http.StatusBadRequest, "knowledge_base must be 'yes' or 'no'", "")
		return
	}
	if !validSessionID(req.SessionID) {
		utils.JSONError(c, http.StatusBadRequest, "malformed session_id", "")
		return
	}

	resp, err := h.Service.Chat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrGeneration) {
			utils.JSONError(c, http.StatusBadGateway, "language model unavailable", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process chat request", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// validSessionID accepts an empty identifier (defaulted downstream) or a
// bounded printable string. Session identifiers become Redis keys and Mongo
// fields, so control characters and unbounded lengths are rejected up front.
func validSessionID(s string) bool {
	if len(s) > maxSessionIDLen {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

const maxSessionIDLen = 128
