package chat

import (
	"context"
	"fmt"
	"time"

	"ragtask/models"
	"ragtask/utils"

	"go.uber.org/zap"
)

// Chat runs the per-request algorithm: restart handling, booking evaluation,
// optional retrieval, prompt assembly, generation, and transcript append.
func (s *DefaultChatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if req.Mode == "" {
		req.Mode = models.ModeContinue
	}
	if req.KnowledgeBase == "" {
		req.KnowledgeBase = "yes"
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	if req.Mode == models.ModeRestart {
		if err := s.Memory.Clear(ctx, req.SessionID); err != nil {
			s.Logger.Warn("failed to clear session on restart",
				zap.String("sessionID", req.SessionID), zap.Error(err))
		}
		if err := s.Booking.Reset(ctx, req.SessionID); err != nil {
			s.Logger.Warn("failed to reset booking state on restart",
				zap.String("sessionID", req.SessionID), zap.Error(err))
		}
	}

	now := s.now()
	history := s.Memory.Load(ctx, req.SessionID)

	result, err := s.Booking.Evaluate(ctx, req.SessionID, history, req.Query, now)
	if err != nil {
		s.Logger.Warn("booking evaluation failed, continuing as plain chat",
			zap.String("sessionID", req.SessionID), zap.Error(err))
	}

	// A booking-completing turn never touches retrieval or generation; the
	// confirmation references the persisted fields directly.
	if result.Created != nil {
		reply := confirmationReply(result.Created)
		s.appendExchange(ctx, req.SessionID, req.Query, reply, now)
		return models.ChatResponse{
			Response:       reply,
			SessionID:      req.SessionID,
			Mode:           req.Mode,
			BookingCreated: true,
		}, nil
	}

	var chunks []models.RetrievedChunk
	if !result.Engaged && req.KnowledgeBase == "yes" {
		retrieveCtx, cancel := context.WithTimeout(ctx, utils.RetrieveTimeout)
		chunks, err = s.Retriever.Retrieve(retrieveCtx, req.Query, s.topK())
		cancel()
		if err != nil {
			// Collaborator failure degrades to ungrounded chat.
			s.Logger.Warn("knowledge retrieval failed, answering without context",
				zap.String("sessionID", req.SessionID), zap.Error(err))
			chunks = nil
		}
	}

	in := PromptInput{
		History: history,
		Query:   req.Query,
		Context: chunks,
		Now:     now,
	}
	if result.Engaged {
		in.BookingNote = collectingNote(result.Partial)
	}

	generateCtx, cancel := context.WithTimeout(ctx, utils.GenerateTimeout)
	reply, err := s.Model.Generate(generateCtx, s.Assembler.Build(in))
	cancel()
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	s.appendExchange(ctx, req.SessionID, req.Query, reply, now)

	return models.ChatResponse{
		Response:        reply,
		SessionID:       req.SessionID,
		Mode:            req.Mode,
		KnowledgeBase:   len(chunks) > 0,
		RetrievedChunks: len(chunks),
	}, nil
}

// appendExchange records the user turn and the assistant reply. Memory-store
// failure must not fail a response that was already computed.
func (s *DefaultChatService) appendExchange(ctx context.Context, sessionID, query, reply string, now time.Time) {
	userTurn := models.Turn{Role: models.RoleUser, Text: query, Timestamp: now}
	assistantTurn := models.Turn{Role: models.RoleAssistant, Text: reply, Timestamp: now}

	if err := s.Memory.Append(ctx, sessionID, userTurn); err != nil {
		s.Logger.Warn("failed to append user turn", zap.String("sessionID", sessionID), zap.Error(err))
		return
	}
	if err := s.Memory.Append(ctx, sessionID, assistantTurn); err != nil {
		s.Logger.Warn("failed to append assistant turn", zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func confirmationReply(b *models.Booking) string {
	return fmt.Sprintf(
		"You're all set, %s! Your interview is booked for %s at %s. A confirmation has been recorded for %s.",
		b.Name, b.Date, b.Time, b.Email)
}
