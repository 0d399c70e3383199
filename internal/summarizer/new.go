package summarizer

import (
	"github.com/verbahq/verba/internal/llm"
	"github.com/verbahq/verba/internal/logger"
)

// Options carries the numeric budgets for one engine instance.
type Options struct {
	ChunkTokens           int // transcript budget per chunk, ~4 chars per token
	CompletionTokens      int // reply budget for single-shot and reduce calls
	ChunkCompletionTokens int // reply budget for map-phase calls
	MapConcurrency        int // parallel map-phase calls
}

type implSummarizer struct {
	client llm.Client
	opts   Options
	logger logger.Logger
}

// New creates a Summarizer over the given completion client.
func New(client llm.Client, opts Options, log logger.Logger) Summarizer {
	if opts.ChunkTokens <= 0 {
		opts.ChunkTokens = 7500
	}
	if opts.CompletionTokens <= 0 {
		opts.CompletionTokens = 4000
	}
	if opts.ChunkCompletionTokens <= 0 {
		opts.ChunkCompletionTokens = 1000
	}
	if opts.MapConcurrency <= 0 {
		opts.MapConcurrency = 1
	}
	return &implSummarizer{
		client: client,
		opts:   opts,
		logger: log,
	}
}
