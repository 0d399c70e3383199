package summarizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/verbahq/verba/internal/caption"
)

func TestChunkTextIdentity(t *testing.T) {
	tests := []string{
		"",
		"short text",
		"One sentence. Another sentence. A third.",
		strings.Repeat("x", 400), // exactly at the 100-token budget
	}
	for _, text := range tests {
		chunks := chunkText(text, 100)
		if len(chunks) != 1 {
			t.Errorf("chunkText(%d chars) returned %d chunks, want 1", len(text), len(chunks))
			continue
		}
		if chunks[0] != text {
			t.Errorf("identity chunk mutated: %q != %q", chunks[0], text)
		}
	}
}

func TestChunkTextSplitsOnSentences(t *testing.T) {
	var sentences []string
	for i := 0; i < 10; i++ {
		sentences = append(sentences, fmt.Sprintf("Sentence number %d with some padding words", i))
	}
	text := strings.Join(sentences, ". ") + "."

	// Budget of 30 tokens = 120 chars, ~3 sentences per chunk.
	chunks := chunkText(text, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestChunkTextReconstruction(t *testing.T) {
	var sentences []string
	for i := 0; i < 20; i++ {
		sentences = append(sentences, fmt.Sprintf("Item %d discussed in detail by the team", i))
	}
	text := strings.Join(sentences, ". ") + "."

	chunks := chunkText(text, 25)
	joined := strings.Join(chunks, " ")

	// The splitter re-appends the sentence delimiter at the tail, so
	// compare content modulo trailing delimiter characters.
	if strings.TrimRight(joined, ". ") != strings.TrimRight(text, ". ") {
		t.Errorf("reconstruction mismatch:\n got %q\nwant %q", joined, text)
	}
}

func TestChunkTextMonotonicCount(t *testing.T) {
	var sentences []string
	for i := 0; i < 30; i++ {
		sentences = append(sentences, fmt.Sprintf("Topic %d covered at some length during the call", i))
	}
	text := strings.Join(sentences, ". ") + "."

	prev := len(chunkText(text, 10))
	for _, budget := range []int{20, 40, 80, 160, 1000} {
		n := len(chunkText(text, budget))
		if n > prev {
			t.Errorf("chunk count grew from %d to %d when budget rose to %d", prev, n, budget)
		}
		prev = n
	}
}

func TestChunkTextOversizedSentence(t *testing.T) {
	long := strings.Repeat("a", 600) // single sentence over a 100-token budget
	text := "Short intro. " + long + ". Short outro."

	chunks := chunkText(text, 100)
	found := false
	for _, c := range chunks {
		if strings.Contains(c, long) {
			found = true
			if strings.Index(c, long) != strings.LastIndex(c, long) {
				t.Error("oversized sentence duplicated")
			}
		}
	}
	if !found {
		t.Error("oversized sentence was split across chunks")
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abcd", 1},
		{"abcdefg", 1},
		{strings.Repeat("x", 400), 100},
	}
	for _, tt := range tests {
		if got := estimateTokens(tt.text); got != tt.want {
			t.Errorf("estimateTokens(%d chars) = %d, want %d", len(tt.text), got, tt.want)
		}
	}
}

func TestChunkSegments(t *testing.T) {
	segments := []caption.Segment{
		{Text: strings.Repeat("a", 40)}, // 10 tokens each
		{Text: strings.Repeat("b", 40)},
		{Text: strings.Repeat("c", 40)},
		{Text: strings.Repeat("d", 40)},
	}

	chunks := ChunkSegments(segments, 20)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	for i, c := range chunks {
		if len(c) != 2 {
			t.Errorf("chunk %d has %d segments, want 2", i, len(c))
		}
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total != len(segments) {
		t.Errorf("segments across chunks = %d, want %d", total, len(segments))
	}
}

func TestChunkSegmentsNeverSplitsSegment(t *testing.T) {
	segments := []caption.Segment{
		{Text: strings.Repeat("a", 400)}, // 100 tokens, over budget alone
		{Text: strings.Repeat("b", 8)},
	}

	chunks := ChunkSegments(segments, 50)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[0]) != 1 || chunks[0][0].Text != segments[0].Text {
		t.Error("oversized segment was not kept whole in its own chunk")
	}
}

func TestChunkSegmentsEmpty(t *testing.T) {
	if got := ChunkSegments(nil, 100); got != nil {
		t.Errorf("ChunkSegments(nil) = %v, want nil", got)
	}
}
