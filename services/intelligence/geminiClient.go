package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	return &GeminiClient{model: model}
}

// Generate produces a free-text reply for the assembled prompt.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return responseText(resp)
}

// responseText flattens the first candidate's text parts. A nil-error
// response can still carry no candidates (prompt blocked) or a candidate
// without content (safety finish); both surface as errors.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// Extract runs the prompt expecting a single flat JSON object and decodes it
// into string fields. A response the model wraps in a markdown code fence is
// unwrapped first. Returns nil fields (no error) when the output is not JSON,
// so callers treat it as "nothing extracted" rather than a failure.
func (g *GeminiClient) Extract(ctx context.Context, prompt string) (map[string]string, error) {
	raw, err := g.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFence(raw)
	var fields map[string]string
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, nil
	}
	return fields, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
