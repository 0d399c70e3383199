package pipeline

import (
	"context"

	"github.com/verbahq/verba/internal/summarizer"
)

// Request describes one pipeline run. Exactly one of VideoURL or
// CaptionPath is set: watch mode hands caption files in directly and
// skips the download step.
type Request struct {
	VideoURL    string
	CaptionPath string
	Title       string
	Language    string // caption language for download
	EmailTo     []string
	CopySummary bool // copy the executive summary to the clipboard
	KeepTemp    bool // keep the downloaded caption file
}

// Result is what a completed run produced.
type Result struct {
	RunID         string
	OutputDir     string
	DocxPath      string
	PDFPath       string
	EstimatedCost float64
	Summary       *summarizer.SummaryResult
}

// Pipeline drives a full video-to-minutes run.
type Pipeline interface {
	Run(ctx context.Context, req Request) (*Result, error)
}
