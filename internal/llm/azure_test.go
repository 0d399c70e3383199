package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/verbahq/verba/internal/logger"
)

func testLogger() logger.Logger {
	return logger.New("error", "text")
}

func TestNewAzureRequiresCredentials(t *testing.T) {
	_, err := NewAzure(AzureOptions{}, testLogger())
	if err == nil {
		t.Fatal("expected error without key and endpoint")
	}
}

func TestNewAzureDefaults(t *testing.T) {
	c, err := NewAzure(AzureOptions{Key: "k", Endpoint: "https://example"}, testLogger())
	if err != nil {
		t.Fatalf("NewAzure failed: %v", err)
	}
	if c.Model() != "gpt-4o" {
		t.Errorf("Model() = %q, want gpt-4o", c.Model())
	}
}

func TestAzureComplete(t *testing.T) {
	var gotPath, gotKey string
	var gotBody azureRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "### Resumo executivo\nOk."}}],
			"usage": {"total_tokens": 1234}
		}`))
	}))
	defer srv.Close()

	c, err := NewAzure(AzureOptions{
		Key:         "secret",
		Endpoint:    srv.URL,
		Deployment:  "gpt-4o",
		APIVersion:  "2024-02-01",
		Temperature: 0.3,
	}, testLogger())
	if err != nil {
		t.Fatalf("NewAzure failed: %v", err)
	}

	got, err := c.Complete(context.Background(), "resuma a reunião", 4000)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if got.TokensUsed != 1234 {
		t.Errorf("TokensUsed = %d, want 1234", got.TokensUsed)
	}
	if !strings.Contains(got.Text, "Resumo executivo") {
		t.Errorf("Text = %q", got.Text)
	}
	if !strings.Contains(gotPath, "/openai/deployments/gpt-4o/chat/completions") {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(gotPath, "api-version=2024-02-01") {
		t.Errorf("missing api-version in %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api-key header = %q", gotKey)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
	if gotBody.MaxTokens != 4000 {
		t.Errorf("max_tokens = %d", gotBody.MaxTokens)
	}
	if gotBody.Temperature != 0.3 {
		t.Errorf("temperature = %v", gotBody.Temperature)
	}
}

func TestAzureCompleteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": "InvalidKey"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := NewAzure(AzureOptions{Key: "bad", Endpoint: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewAzure failed: %v", err)
	}

	_, err = c.Complete(context.Background(), "prompt", 100)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry the status: %v", err)
	}
}

func TestAzureCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 0}}`))
	}))
	defer srv.Close()

	c, err := NewAzure(AzureOptions{Key: "k", Endpoint: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewAzure failed: %v", err)
	}

	if _, err := c.Complete(context.Background(), "prompt", 100); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
