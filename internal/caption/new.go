package caption

import (
	"github.com/verbahq/verba/internal/logger"
)

type implParser struct {
	logger logger.Logger
}

// New creates a Parser for WebVTT and SRT files.
func New(log logger.Logger) Parser {
	return &implParser{logger: log}
}
