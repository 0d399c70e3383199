package translator

import (
	"context"

	"github.com/verbahq/verba/internal/caption"
)

// Result is one translated text with detection metadata.
type Result struct {
	Text             string
	DetectedLanguage string
	Confidence       float64
}

// Translator translates caption segments into the target language.
type Translator interface {
	Translate(ctx context.Context, texts []string) ([]Result, error)
	TranslateSegments(ctx context.Context, segments []caption.Segment) ([]caption.Segment, error)
}
