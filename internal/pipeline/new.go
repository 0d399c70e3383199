package pipeline

import (
	"github.com/verbahq/verba/internal/caption"
	"github.com/verbahq/verba/internal/config"
	"github.com/verbahq/verba/internal/downloader"
	"github.com/verbahq/verba/internal/export"
	"github.com/verbahq/verba/internal/history"
	"github.com/verbahq/verba/internal/logger"
	"github.com/verbahq/verba/internal/mailer"
	"github.com/verbahq/verba/internal/summarizer"
	"github.com/verbahq/verba/internal/translator"
)

type implPipeline struct {
	cfg        *config.Config
	model      string
	downloader downloader.Downloader
	parser     caption.Parser
	translator translator.Translator
	summarizer summarizer.Summarizer
	exporter   export.Exporter
	mailer     mailer.Mailer // nil when SMTP credentials are absent
	history    history.Store
	logger     logger.Logger
}

// New wires the pipeline. mailer may be nil; a run requesting e-mail
// then fails at the send step, not earlier.
func New(
	cfg *config.Config,
	model string,
	dl downloader.Downloader,
	parser caption.Parser,
	tr translator.Translator,
	sum summarizer.Summarizer,
	exp export.Exporter,
	ml mailer.Mailer,
	hist history.Store,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		model:      model,
		downloader: dl,
		parser:     parser,
		translator: tr,
		summarizer: sum,
		exporter:   exp,
		mailer:     ml,
		history:    hist,
		logger:     log,
	}
}
