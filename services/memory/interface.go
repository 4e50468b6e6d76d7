package memory

import (
	"context"

	"ragtask/models"
)

// SessionMemory maps a session identifier to its bounded transcript.
//
// Load never fails: a missing session or an unavailable store both yield an
// empty transcript, so the conversation degrades to statelessness instead of
// erroring. Append and Clear return errors for the caller to log; they must
// not fail the surrounding request.
type SessionMemory interface {
	Load(ctx context.Context, sessionID string) []models.Turn
	Append(ctx context.Context, sessionID string, turn models.Turn) error
	Clear(ctx context.Context, sessionID string) error
}
