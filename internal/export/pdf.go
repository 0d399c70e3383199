package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verbahq/verba/internal/summarizer"
)

// WritePDF writes the HTML rendition next to path and converts it with
// the configured binary. A missing converter degrades to keeping the
// HTML artifact; a converter run failure is an error.
func (e *implExporter) WritePDF(ctx context.Context, result *summarizer.SummaryResult, meta Meta, path string) (string, error) {
	html, err := BuildHTML(result, meta)
	if err != nil {
		return "", err
	}

	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}

	if !e.executor.Available(e.converter) {
		e.logger.Warn(ctx, "PDF converter %q not found, keeping HTML artifact: %s", e.converter, htmlPath)
		return htmlPath, nil
	}

	if _, err := e.executor.Execute(ctx, e.converter, htmlPath, path); err != nil {
		return "", fmt.Errorf("convert pdf: %w", err)
	}

	e.logger.Info(ctx, "PDF document saved: %s", path)
	return path, nil
}
