package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/verbahq/verba/internal/logger"
)

// AzureOptions configures the Azure OpenAI chat-completions client.
type AzureOptions struct {
	Key         string
	Endpoint    string
	Deployment  string
	APIVersion  string
	Temperature float64
}

type implAzure struct {
	opts       AzureOptions
	httpClient *http.Client
	logger     logger.Logger
}

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureRequest struct {
	Messages    []azureMessage `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float64        `json:"temperature"`
}

type azureResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// NewAzure creates an Azure OpenAI client for the given deployment.
func NewAzure(opts AzureOptions, log logger.Logger) (Client, error) {
	if opts.Key == "" || opts.Endpoint == "" {
		return nil, fmt.Errorf("azure openai requires AZURE_OPENAI_KEY and AZURE_OPENAI_ENDPOINT")
	}
	if opts.Deployment == "" {
		opts.Deployment = "gpt-4o"
	}
	if opts.APIVersion == "" {
		opts.APIVersion = "2024-02-01"
	}
	return &implAzure{
		opts:       opts,
		httpClient: &http.Client{Timeout: 180 * time.Second},
		logger:     log,
	}, nil
}

func (c *implAzure) Model() string {
	return c.opts.Deployment
}

func (c *implAzure) Complete(ctx context.Context, prompt string, maxTokens int) (Completion, error) {
	reqBody := azureRequest{
		Messages:    []azureMessage{{Role: "system", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: c.opts.Temperature,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return Completion{}, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.opts.Endpoint, "/"), c.opts.Deployment, c.opts.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return Completion{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.opts.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("azure openai request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Completion{}, fmt.Errorf("azure openai %s: %s", resp.Status, truncateBody(data))
	}

	var out azureResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return Completion{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Choices) == 0 {
		return Completion{}, fmt.Errorf("empty completion from azure openai")
	}

	return Completion{
		Text:       out.Choices[0].Message.Content,
		TokensUsed: out.Usage.TotalTokens,
	}, nil
}

func truncateBody(data []byte) string {
	const max = 500
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
