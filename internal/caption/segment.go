package caption

import "strings"

// Segment is one timed caption unit from a subtitle file.
// Translation fields are filled in later by the translator.
type Segment struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Duration     float64 `json:"duration"`
	Text         string  `json:"text"`
	RawText      string  `json:"raw_text"`

	TextTranslated        string  `json:"text_translated,omitempty"`
	DetectedLanguage      string  `json:"detected_language,omitempty"`
	TranslationConfidence float64 `json:"translation_confidence,omitempty"`
}

// Stats summarizes a parsed segment list
type Stats struct {
	TotalSegments   int     `json:"total_segments"`
	TotalDuration   float64 `json:"total_duration"`
	TotalWords      int     `json:"total_words"`
	AverageDuration float64 `json:"average_segment_duration"`
}

// Transcript joins cleaned segment texts with a single space,
// skipping segments whose text is empty
func Transcript(segments []Segment) string {
	var parts []string
	for _, s := range segments {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}

// ComputeStats returns aggregate statistics for a segment list
func ComputeStats(segments []Segment) Stats {
	if len(segments) == 0 {
		return Stats{}
	}

	var st Stats
	st.TotalSegments = len(segments)

	var durSum float64
	for _, s := range segments {
		if s.EndSeconds > st.TotalDuration {
			st.TotalDuration = s.EndSeconds
		}
		st.TotalWords += len(strings.Fields(s.Text))
		durSum += s.Duration
	}
	st.AverageDuration = durSum / float64(len(segments))

	return st
}
