package llm

import "context"

// ILLM is the interface for language model completions.
type ILLM interface {
	// Complete sends a prompt to the model and returns the text of its reply.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
