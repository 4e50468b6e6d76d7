package ai

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestResponseTextConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")},
			},
		}},
	}

	text, err := responseText(resp)
	if err != nil {
		t.Fatalf("responseText err: %v", err)
	}
	if text != "Hello, world" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestResponseTextNoCandidates(t *testing.T) {
	// A blocked prompt yields a nil-error response with zero candidates.
	resp := &genai.GenerateContentResponse{}

	if _, err := responseText(resp); err == nil {
		t.Fatal("expected error for response without candidates")
	}
}

func TestResponseTextNilContent(t *testing.T) {
	// A safety finish yields a candidate with no content.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	if _, err := responseText(resp); err == nil {
		t.Fatal("expected error for candidate without content")
	}
}

func TestResponseTextNilResponse(t *testing.T) {
	if _, err := responseText(nil); err == nil {
		t.Fatal("expected error for nil response")
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"name\": \"x\"}\n```": `{"name": "x"}`,
		"```\n{}\n```":                    "{}",
		`{"plain": true}`:                 `{"plain": true}`,
	}
	for input, want := range cases {
		if got := stripCodeFence(input); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", input, got, want)
		}
	}
}
