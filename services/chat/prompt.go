package chat

import (
	"fmt"
	"strings"
	"time"

	"ragtask/models"
	"ragtask/utils"
)

// PromptInput carries everything the assembler needs for one model call.
type PromptInput struct {
	History []models.Turn
	Query   string
	Context []models.RetrievedChunk
	Now     time.Time
	// BookingNote, when non-empty, steers the model toward collecting the
	// remaining booking slots instead of answering from the knowledge base.
	BookingNote string
}

// PromptAssembler builds the exact payload sent to the language model for
// both plain and grounded chat.
type PromptAssembler struct{}

// Build renders the instruction, date anchor, optional retrieved context,
// chronological history, and the latest user message.
func (PromptAssembler) Build(in PromptInput) string {
	var b strings.Builder

	b.WriteString("You are a helpful assistant.\n")
	b.WriteString(utils.DateAnchor(in.Now))
	b.WriteString("\n\n")

	switch {
	case in.BookingNote != "":
		b.WriteString(in.BookingNote)
		b.WriteString("\n\n")
	case len(in.Context) > 0:
		b.WriteString("Answer using ONLY the context below and the conversation history. ")
		b.WriteString("If the answer cannot be derived from the context, say so explicitly.\n\n")
		b.WriteString("Context:\n")
		for i, chunk := range in.Context {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, chunk.Text)
		}
		b.WriteString("\n")
	default:
		b.WriteString("Answer from the conversation history and your general knowledge.\n\n")
	}

	if len(in.History) > 0 {
		b.WriteString("Conversation history:\n")
		for _, turn := range in.History {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "user: %s\nassistant:", in.Query)
	return b.String()
}

// collectingNote renders the instruction for a session mid-booking.
func collectingNote(partial models.PartialBooking) string {
	var b strings.Builder
	b.WriteString("The user is booking an interview. ")

	var have []string
	if partial.Name != "" {
		have = append(have, "name: "+partial.Name)
	}
	if partial.Email != "" {
		have = append(have, "email: "+partial.Email)
	}
	if partial.Date != "" {
		have = append(have, "date: "+partial.Date)
	}
	if partial.Time != "" {
		have = append(have, "time: "+partial.Time)
	}
	if len(have) > 0 {
		b.WriteString("Details collected so far: " + strings.Join(have, ", ") + ". ")
	}

	if missing := partial.Missing(); len(missing) > 0 {
		b.WriteString("Politely ask the user for their " + strings.Join(missing, ", ") + ". ")
		b.WriteString("Ask only for what is missing.")
	} else {
		b.WriteString("The details could not be saved just now. Apologize briefly and ask the user to confirm the booking once more.")
	}
	return b.String()
}
