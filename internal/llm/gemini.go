package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/verbahq/verba/internal/logger"
)

type implGemini struct {
	apiKeys     []string
	model       string
	temperature float64
	logger      logger.Logger

	// The summarizer's map phase calls Complete from several
	// goroutines, so the rotation index is guarded.
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Gemini client that rotates through the supplied API keys.
func NewGemini(apiKeys []string, model string, temperature float64, log logger.Logger) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini requires at least one API key (GEMINI_API_KEYS)")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGemini{
		apiKeys:     apiKeys,
		model:       model,
		temperature: temperature,
		logger:      log,
	}, nil
}

func (c *implGemini) Model() string {
	return c.model
}

// Complete sends the prompt to Gemini. Rotates API keys on 429 / quota errors.
func (c *implGemini) Complete(ctx context.Context, prompt string, maxTokens int) (Completion, error) {
	temp := float32(c.temperature)
	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     &temp,
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIndex := c.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return Completion{}, fmt.Errorf("generate content: %w", err)
		}

		text := collectText(result)
		if text == "" {
			return Completion{}, fmt.Errorf("empty response from Gemini")
		}
		return Completion{Text: text, TokensUsed: usageTokens(result)}, nil
	}

	return Completion{}, fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implGemini) activeKey() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey], c.currentKey
}

func (c *implGemini) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func collectText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func usageTokens(result *genai.GenerateContentResponse) int {
	if result == nil || result.UsageMetadata == nil {
		return 0
	}
	return int(result.UsageMetadata.TotalTokenCount)
}
