package ai

import "context"

// LanguageModel is the narrow capability the orchestrator and the booking
// extractor depend on. Generate returns free text; Extract returns the
// structured fields the prompt asked for, or nil when the model could not
// produce a parseable result.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Extract(ctx context.Context, prompt string) (map[string]string, error)
}
