package chat

import (
	"context"
	"errors"
	"time"

	"ragtask/models"
	"ragtask/services/booking"
	ai "ragtask/services/intelligence"
	"ragtask/services/memory"
	"ragtask/services/retrieval"

	"go.uber.org/zap"
)

// ErrGeneration marks a language-model failure. Unlike degraded dependencies
// it is fatal to the request, since no reply exists to return.
var ErrGeneration = errors.New("language model generation failed")

// ChatService orchestrates one conversational exchange.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Memory    memory.SessionMemory
	Retriever retrieval.KnowledgeRetriever
	Model     ai.LanguageModel
	Booking   booking.FlowService
	Assembler PromptAssembler
	TopK      int
	Logger    *zap.Logger

	// Now is the request-time clock; overridable in tests.
	Now func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultChatService) topK() int {
	if s.TopK > 0 {
		return s.TopK
	}
	return 3
}
