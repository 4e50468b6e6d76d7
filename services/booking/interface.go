package booking

import (
	"context"
	"time"

	bookingRepo "ragtask/database/repository/booking"
	"ragtask/models"
	ai "ragtask/services/intelligence"
	"ragtask/services/tasks"

	"go.uber.org/zap"
)

// Slot-filling states for a session.
const (
	StateNoIntent   = "no_intent"
	StateCollecting = "collecting"
)

// Result reports what the booking flow did with the latest user message.
type Result struct {
	// Engaged is true when the message was claimed by the booking flow,
	// either because it triggered intent or the session was already
	// collecting. Retrieval is skipped for engaged turns.
	Engaged bool
	// Created is non-nil when this turn completed and persisted the booking.
	Created *models.Booking
	// Partial is the slot record after this turn's extraction. A complete
	// partial with a nil Created means persistence failed and the session
	// is still collecting.
	Partial models.PartialBooking
}

// FlowService evaluates the booking state machine for one incoming message.
type FlowService interface {
	Evaluate(ctx context.Context, sessionID string, history []models.Turn, query string, now time.Time) (Result, error)
	Reset(ctx context.Context, sessionID string) error
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Model     ai.LanguageModel
	Repo      bookingRepo.BookingRepository
	States    StateStore
	Reminders *tasks.ReminderScheduler
	Logger    *zap.Logger
}
