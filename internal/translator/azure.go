package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/verbahq/verba/internal/caption"
)

type requestItem struct {
	Text string `json:"text"`
}

type responseItem struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate translates texts in configured batch sizes, preserving order.
func (t *implTranslator) Translate(ctx context.Context, texts []string) ([]Result, error) {
	var results []Result
	for start := 0; start < len(texts); start += t.opts.BatchSize {
		end := min(start+t.opts.BatchSize, len(texts))
		batch, err := t.translateBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		results = append(results, batch...)
	}
	return results, nil
}

// TranslateSegments translates segment texts and merges the results back
// positionally. A shortfall in the response never drops or reorders
// segments: missing positions keep the original text with confidence 0.
func (t *implTranslator) TranslateSegments(ctx context.Context, segments []caption.Segment) ([]caption.Segment, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	texts := make([]string, len(segments))
	for i, s := range segments {
		text := s.Text
		if text == "" {
			text = s.RawText
		}
		texts[i] = text
	}

	results, err := t.Translate(ctx, texts)
	if err != nil {
		return nil, err
	}

	translated := make([]caption.Segment, len(segments))
	for i, s := range segments {
		out := s
		if i < len(results) {
			out.TextTranslated = results[i].Text
			out.DetectedLanguage = results[i].DetectedLanguage
			out.TranslationConfidence = results[i].Confidence
		} else {
			out.TextTranslated = s.Text
			out.DetectedLanguage = t.fallbackLanguage()
			out.TranslationConfidence = 0.0
		}
		translated[i] = out
	}

	t.logger.Info(ctx, "translated %d segments to %s", len(translated), t.opts.TargetLanguage)
	return translated, nil
}

func (t *implTranslator) translateBatch(ctx context.Context, texts []string) ([]Result, error) {
	body := make([]requestItem, len(texts))
	for i, text := range texts {
		body[i] = requestItem{Text: text}
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	params := url.Values{}
	params.Set("api-version", "3.0")
	params.Set("to", t.opts.TargetLanguage)
	if t.opts.SourceLanguage != "" {
		params.Set("from", t.opts.SourceLanguage)
	}
	endpoint := strings.TrimRight(t.opts.Endpoint, "/") + "/translate?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", t.opts.Key)
	req.Header.Set("Ocp-Apim-Subscription-Region", t.opts.Region)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translator request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator API error %d: %s", resp.StatusCode, truncateBody(data))
	}

	var items []responseItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	results := make([]Result, len(items))
	for i, item := range items {
		if len(item.Translations) == 0 {
			return nil, fmt.Errorf("missing translation in response item %d", i)
		}
		r := Result{
			Text:             item.Translations[0].Text,
			DetectedLanguage: t.fallbackLanguage(),
			Confidence:       1.0,
		}
		if item.DetectedLanguage != nil {
			r.DetectedLanguage = item.DetectedLanguage.Language
			r.Confidence = item.DetectedLanguage.Score
		}
		results[i] = r
	}
	return results, nil
}

func (t *implTranslator) fallbackLanguage() string {
	if t.opts.SourceLanguage != "" {
		return t.opts.SourceLanguage
	}
	return "unknown"
}

func truncateBody(data []byte) string {
	const max = 500
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
