package booking

import (
	"context"
	"fmt"
	"time"

	"ragtask/models"
	"ragtask/utils"

	"go.uber.org/zap"
)

// Evaluate runs one step of the slot-filling state machine for the latest
// user message.
//
// NO_INTENT sessions pass through untouched unless the message carries
// booking vocabulary. Collecting sessions re-run extraction over the
// accumulated transcript plus the new message; the moment all four slots are
// valid the booking is persisted synchronously, a reminder is queued, and the
// session drops back to NO_INTENT so a later booking can start fresh.
func (s *DefaultFlowService) Evaluate(ctx context.Context, sessionID string, history []models.Turn, query string, now time.Time) (Result, error) {
	state, err := s.States.Get(ctx, sessionID)
	if err != nil {
		s.Logger.Warn("booking state unavailable, treating session as no-intent",
			zap.String("sessionID", sessionID), zap.Error(err))
		state = &SessionState{State: StateNoIntent}
	}

	if state.State != StateCollecting && !HasBookingIntent(query) {
		return Result{}, nil
	}

	partial := state.Partial
	partial.SessionID = sessionID

	extractCtx, cancel := context.WithTimeout(ctx, utils.ExtractTimeout)
	defer cancel()
	fields, err := s.Model.Extract(extractCtx, extractionPrompt(history, query, now))
	if err != nil {
		// Extraction failure leaves the record unchanged; the session stays
		// collecting and the reply asks the user to repeat the missing info.
		s.Logger.Warn("booking extraction failed, keeping partial record",
			zap.String("sessionID", sessionID), zap.Error(err))
		s.saveState(ctx, sessionID, partial)
		return Result{Engaged: true, Partial: partial}, nil
	}

	partial = mergeFields(partial, fields)

	if !partial.Complete() {
		s.saveState(ctx, sessionID, partial)
		return Result{Engaged: true, Partial: partial}, nil
	}

	booking := &models.Booking{
		Name:      partial.Name,
		Email:     partial.Email,
		Date:      partial.Date,
		Time:      partial.Time,
		SessionID: sessionID,
	}
	if _, err := s.Repo.CreateBooking(ctx, booking); err != nil {
		// Keep the merged record so the next message can retry completion.
		s.Logger.Error("failed to persist completed booking",
			zap.String("sessionID", sessionID), zap.Error(err))
		s.saveState(ctx, sessionID, partial)
		return Result{Engaged: true, Partial: partial}, nil
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(booking); err != nil {
			s.Logger.Warn("failed to schedule interview reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	// Booking done: the partial record is discarded and the session returns
	// to NO_INTENT, ready for another booking later.
	if err := s.States.Clear(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to reset booking state after completion",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.Logger.Info("Interview booking created",
		zap.String("bookingID", booking.ID),
		zap.String("sessionID", sessionID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))
	return Result{Engaged: true, Created: booking, Partial: partial}, nil
}

// Reset drops any in-flight slot-filling state for the session.
func (s *DefaultFlowService) Reset(ctx context.Context, sessionID string) error {
	if err := s.States.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset booking state for session %s: %w", sessionID, err)
	}
	return nil
}

func (s *DefaultFlowService) saveState(ctx context.Context, sessionID string, partial models.PartialBooking) {
	state := &SessionState{State: StateCollecting, Partial: partial}
	if err := s.States.Set(ctx, sessionID, state); err != nil {
		s.Logger.Warn("failed to save booking state",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
