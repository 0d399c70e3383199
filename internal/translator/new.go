package translator

import (
	"fmt"
	"net/http"
	"time"

	"github.com/verbahq/verba/internal/logger"
)

// Options configures the Azure Translator client.
type Options struct {
	Key            string
	Endpoint       string
	Region         string
	TargetLanguage string
	SourceLanguage string
	BatchSize      int
}

type implTranslator struct {
	opts       Options
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Translator backed by the Azure Translator v3 API.
func New(opts Options, log logger.Logger) (Translator, error) {
	if opts.Key == "" {
		return nil, fmt.Errorf("translator requires AZURE_TRANSLATOR_KEY")
	}
	if opts.Endpoint == "" {
		opts.Endpoint = "https://api.cognitive.microsofttranslator.com"
	}
	if opts.Region == "" {
		opts.Region = "eastus"
	}
	if opts.TargetLanguage == "" {
		opts.TargetLanguage = "pt"
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &implTranslator{
		opts:       opts,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     log,
	}, nil
}
