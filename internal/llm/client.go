// Package llm wraps the external text-generation service. The service gives
// no output-format guarantee; callers must treat responses as unstructured.
package llm

import "context"

// Client generates free text from a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
