package summarizer

import (
	"strings"

	"github.com/verbahq/verba/internal/caption"
)

// estimateTokens approximates token count as len/4. A character
// heuristic, not a tokenizer call.
func estimateTokens(text string) int {
	return len(text) / 4
}

// chunkText splits text into chunks of at most maxTokens*4 characters by
// greedily accumulating sentence units. Text at or under budget comes back
// unchanged as a single chunk. A single sentence longer than the budget
// becomes its own oversized chunk, never split further.
func chunkText(text string, maxTokens int) []string {
	maxChars := maxTokens * 4

	if len(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range strings.Split(text, ". ") {
		if current.Len()+len(sentence)+2 > maxChars && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

// ChunkSegments groups segments into runs of at most maxTokens estimated
// tokens. A segment is never split across chunks, so one oversized
// segment yields one oversized chunk.
func ChunkSegments(segments []caption.Segment, maxTokens int) [][]caption.Segment {
	if len(segments) == 0 {
		return nil
	}

	var chunks [][]caption.Segment
	var current []caption.Segment
	currentTokens := 0

	for _, segment := range segments {
		text := segment.Text
		if text == "" {
			text = segment.TextTranslated
		}
		segmentTokens := estimateTokens(text)

		if currentTokens+segmentTokens > maxTokens && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			currentTokens = 0
		}

		current = append(current, segment)
		currentTokens += segmentTokens
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}
