package models

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat modes.
const (
	ModeContinue = "continue"
	ModeRestart  = "restart"
)

// Turn is one message in a session transcript.
type Turn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Query         string `json:"query"`                    // user's message (required)
	Mode          string `json:"mode,omitempty"`           // "continue" (default) or "restart"
	KnowledgeBase string `json:"knowledge_base,omitempty"` // "yes" (default) or "no"
	SessionID     string `json:"session_id,omitempty"`     // defaults to "default"
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response        string `json:"response"`
	SessionID       string `json:"session_id"`
	Mode            string `json:"mode"`
	KnowledgeBase   bool   `json:"knowledge_base_used"`
	RetrievedChunks int    `json:"retrieved_chunks"`
	BookingCreated  bool   `json:"booking_created"`
}

// RetrievedChunk is one text fragment returned by the ingestion collaborator,
// ordered by descending similarity score. Never persisted or cached across turns.
type RetrievedChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
