package llm

import "context"

// Completion is one model reply together with its token usage.
type Completion struct {
	Text       string
	TokensUsed int
}

// Client is a chat-completion provider.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (Completion, error)
	Model() string
}
