package summarizer

import (
	"context"

	"github.com/verbahq/verba/internal/caption"
)

// Summarizer turns meeting transcripts into structured minutes.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, durationMinutes int, meetingDate, languageNote string) (*SummaryResult, error)
	SummarizeSegments(ctx context.Context, segments []caption.Segment, meetingDate, languageNote string) (*SummaryResult, error)
}
