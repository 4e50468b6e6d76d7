package chat

import (
	"strings"
	"testing"
	"time"

	"ragtask/models"
)

var promptNow = time.Date(2025, 11, 22, 9, 0, 0, 0, time.UTC)

func TestBuildGroundedPrompt(t *testing.T) {
	var assembler PromptAssembler
	prompt := assembler.Build(PromptInput{
		Query: "what is the refund policy?",
		Context: []models.RetrievedChunk{
			{Text: "Refunds are processed within 14 days.", Score: 0.91},
			{Text: "Contact support to start a refund.", Score: 0.77},
		},
		Now: promptNow,
	})

	if !strings.Contains(prompt, "ONLY the context below") {
		t.Fatalf("grounded prompt must restrict the model to context: %s", prompt)
	}
	if !strings.Contains(prompt, "Refunds are processed within 14 days.") {
		t.Fatal("prompt missing retrieved context")
	}
	if !strings.Contains(prompt, "Today is 2025-11-22") {
		t.Fatal("prompt missing date anchor")
	}
}

func TestBuildUngroundedPrompt(t *testing.T) {
	var assembler PromptAssembler
	prompt := assembler.Build(PromptInput{
		Query: "tell me a joke",
		Now:   promptNow,
	})

	if strings.Contains(prompt, "ONLY the context below") {
		t.Fatal("ungrounded prompt must not reference context")
	}
	if !strings.Contains(prompt, "general knowledge") {
		t.Fatalf("ungrounded prompt missing fallback instruction: %s", prompt)
	}
	if !strings.Contains(prompt, "Today is 2025-11-22") {
		t.Fatal("date anchor must always be present")
	}
}

func TestBuildHistoryChronological(t *testing.T) {
	var assembler PromptAssembler
	prompt := assembler.Build(PromptInput{
		History: []models.Turn{
			{Role: models.RoleUser, Text: "first question"},
			{Role: models.RoleAssistant, Text: "first answer"},
			{Role: models.RoleUser, Text: "second question"},
		},
		Query: "third question",
		Now:   promptNow,
	})

	firstIdx := strings.Index(prompt, "first question")
	secondIdx := strings.Index(prompt, "second question")
	latestIdx := strings.Index(prompt, "third question")
	if firstIdx == -1 || secondIdx == -1 || latestIdx == -1 {
		t.Fatalf("prompt missing history: %s", prompt)
	}
	if !(firstIdx < secondIdx && secondIdx < latestIdx) {
		t.Fatal("history must be oldest first, latest message last")
	}
}

func TestBuildBookingNoteOverridesContext(t *testing.T) {
	var assembler PromptAssembler
	note := collectingNote(models.PartialBooking{Name: "John Doe"})
	prompt := assembler.Build(PromptInput{
		Query:       "I gave you my name already",
		Context:     []models.RetrievedChunk{{Text: "irrelevant", Score: 0.5}},
		Now:         promptNow,
		BookingNote: note,
	})

	if strings.Contains(prompt, "ONLY the context below") {
		t.Fatal("booking turns must not use knowledge-base instructions")
	}
	if !strings.Contains(prompt, "email, date, time") {
		t.Fatalf("booking note must ask for the missing slots: %s", prompt)
	}
	if !strings.Contains(prompt, "name: John Doe") {
		t.Fatalf("booking note must restate collected slots: %s", prompt)
	}
}

func TestCollectingNoteUnsavedBooking(t *testing.T) {
	note := collectingNote(models.PartialBooking{
		Name: "John Doe", Email: "john@example.com", Date: "2025-11-23", Time: "14:00",
	})
	if !strings.Contains(note, "could not be saved") {
		t.Fatalf("complete-but-unsaved record must ask for confirmation: %s", note)
	}
}
