package export

import (
	"github.com/verbahq/verba/internal/logger"
	"github.com/verbahq/verba/pkg/executor"
)

type implExporter struct {
	converter string
	executor  executor.Executor
	logger    logger.Logger
}

// New creates an Exporter. converter names the HTML-to-PDF binary.
func New(converter string, exec executor.Executor, log logger.Logger) Exporter {
	if converter == "" {
		converter = "weasyprint"
	}
	return &implExporter{
		converter: converter,
		executor:  exec,
		logger:    log,
	}
}
