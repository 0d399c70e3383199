package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/verbahq/verba/internal/caption"
)

// ErrEmptyTranscript is returned when the input holds no text to summarize.
var ErrEmptyTranscript = errors.New("transcript is empty")

// Summarize produces structured minutes for a transcript. Transcripts
// over the chunk budget go through a map-reduce pass; either way
// TranscricaoCompleta carries the input verbatim and TokensUsed is the
// sum over every model call made.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, durationMinutes int, meetingDate, languageNote string) (*SummaryResult, error) {
	start := time.Now()

	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	if meetingDate == "" {
		meetingDate = time.Now().Format("2006-01-02")
	}

	chunks := chunkText(transcript, s.opts.ChunkTokens)
	s.logger.Debug(ctx, "transcript split into %d chunk(s)", len(chunks))

	var (
		resumo   string
		decisoes []string
		acoes    []ActionItem
		tokens   int
		err      error
	)
	if len(chunks) == 1 {
		resumo, decisoes, acoes, tokens, err = s.summarizeSingle(ctx, chunks[0], durationMinutes, meetingDate, languageNote)
	} else {
		resumo, decisoes, acoes, tokens, err = s.summarizeMapReduce(ctx, chunks, durationMinutes, meetingDate, languageNote)
	}
	if err != nil {
		return nil, err
	}

	return &SummaryResult{
		ResumoExecutivo:     resumo,
		Decisoes:            decisoes,
		ProximasAcoes:       acoes,
		TranscricaoCompleta: transcript,
		TokensUsed:          tokens,
		ProcessingTime:      time.Since(start).Seconds(),
	}, nil
}

// SummarizeSegments builds a "[start] text" transcript from translated
// segments (falling back to the original text) and summarizes it.
// Duration is the whole number of minutes covered by the last segment.
func (s *implSummarizer) SummarizeSegments(ctx context.Context, segments []caption.Segment, meetingDate, languageNote string) (*SummaryResult, error) {
	var b strings.Builder
	for _, segment := range segments {
		text := segment.TextTranslated
		if text == "" {
			text = segment.Text
		}
		if text == "" {
			continue
		}
		start := segment.Start
		if start == "" {
			start = "00:00:00"
		}
		fmt.Fprintf(&b, "[%s] %s\n", start, text)
	}

	durationMinutes := 0
	if len(segments) > 0 {
		var maxEnd float64
		for _, segment := range segments {
			if segment.EndSeconds > maxEnd {
				maxEnd = segment.EndSeconds
			}
		}
		durationMinutes = int(maxEnd / 60)
	}

	return s.Summarize(ctx, b.String(), durationMinutes, meetingDate, languageNote)
}

func (s *implSummarizer) summarizeSingle(ctx context.Context, chunk string, durationMinutes int, meetingDate, languageNote string) (string, []string, []ActionItem, int, error) {
	prompt := buildMinutesPrompt(chunk, durationMinutes, meetingDate, languageNote)

	completion, err := s.client.Complete(ctx, prompt, s.opts.CompletionTokens)
	if err != nil {
		return "", nil, nil, 0, fmt.Errorf("summarize transcript: %w", err)
	}

	s.logMissingSections(ctx, completion.Text)
	resumo, decisoes, acoes := parseReply(completion.Text)
	return resumo, decisoes, acoes, completion.TokensUsed, nil
}

// summarizeMapReduce summarizes each chunk independently, then reduces
// the joined partial summaries through the canonical prompt. A failed
// map call degrades to a placeholder; a failed reduce call is terminal.
func (s *implSummarizer) summarizeMapReduce(ctx context.Context, chunks []string, durationMinutes int, meetingDate, languageNote string) (string, []string, []ActionItem, int, error) {
	summaries, mapTokens := s.mapChunks(ctx, chunks)

	combined := strings.Join(summaries, "\n\n")
	prompt := buildMinutesPrompt(combined, durationMinutes, meetingDate, languageNote)

	completion, err := s.client.Complete(ctx, prompt, s.opts.CompletionTokens)
	if err != nil {
		return "", nil, nil, 0, fmt.Errorf("final summarization: %w", err)
	}

	s.logMissingSections(ctx, completion.Text)
	resumo, decisoes, acoes := parseReply(completion.Text)
	return resumo, decisoes, acoes, mapTokens + completion.TokensUsed, nil
}

// mapChunks runs the map phase with bounded concurrency. Results land
// in chunk order regardless of completion order. A chunk whose call
// fails contributes its placeholder and zero tokens.
func (s *implSummarizer) mapChunks(ctx context.Context, chunks []string) ([]string, int) {
	summaries := make([]string, len(chunks))
	tokens := make([]int, len(chunks))

	sem := make(chan struct{}, s.opts.MapConcurrency)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			s.logger.Info(ctx, "Processing chunk %d/%d", i+1, len(chunks))

			completion, err := s.client.Complete(ctx, buildChunkPrompt(chunk), s.opts.ChunkCompletionTokens)
			if err != nil {
				s.logger.Error(ctx, "Error processing chunk %d: %v", i+1, err)
				summaries[i] = fmt.Sprintf("[Erro ao processar trecho %d]", i+1)
				return
			}
			summaries[i] = completion.Text
			tokens[i] = completion.TokensUsed
		}(i, chunk)
	}
	wg.Wait()

	total := 0
	for _, t := range tokens {
		total += t
	}
	return summaries, total
}

// logMissingSections records which expected headers the model omitted.
// The parsed result cannot distinguish an absent section from an empty
// one, so the logs carry that distinction.
func (s *implSummarizer) logMissingSections(ctx context.Context, reply string) {
	for _, title := range []string{"### Resumo executivo", "### Decisões", "### Próximas ações"} {
		if !strings.Contains(reply, title) {
			s.logger.Warn(ctx, "model reply missing section %q", title)
		}
	}
}
