package export

import (
	"context"

	"github.com/verbahq/verba/internal/summarizer"
)

// Meta carries the document header fields shared by every output format.
type Meta struct {
	Title   string
	Company string
	Date    string // display date, dd/mm/yyyy
}

// Exporter renders a summary result into document files.
type Exporter interface {
	WriteDocx(result *summarizer.SummaryResult, meta Meta, path string) error
	// WritePDF renders the minutes to PDF via the configured converter.
	// When the converter is unavailable the HTML artifact is kept
	// instead and its path is returned.
	WritePDF(ctx context.Context, result *summarizer.SummaryResult, meta Meta, path string) (string, error)
}
