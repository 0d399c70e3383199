package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing output path",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "unknown llm provider",
			config: Config{
				Paths: PathsConfig{Output: "data/output"},
				LLM:   LLMConfig{Provider: "acme"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Output: "data/output"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != "azure" {
		t.Errorf("LLM.Provider = %q, want azure", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("LLM.Model = %q, want gpt-4o", cfg.LLM.Model)
	}
	if cfg.LLM.ChunkTokens != 7500 {
		t.Errorf("LLM.ChunkTokens = %d, want 7500", cfg.LLM.ChunkTokens)
	}
	if cfg.LLM.CompletionTokens != 4000 {
		t.Errorf("LLM.CompletionTokens = %d, want 4000", cfg.LLM.CompletionTokens)
	}
	if cfg.LLM.ChunkCompletionTokens != 1000 {
		t.Errorf("LLM.ChunkCompletionTokens = %d, want 1000", cfg.LLM.ChunkCompletionTokens)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("LLM.Temperature = %v, want 0.3", cfg.LLM.Temperature)
	}
	if cfg.Translator.TargetLanguage != "pt" {
		t.Errorf("Translator.TargetLanguage = %q, want pt", cfg.Translator.TargetLanguage)
	}
	if cfg.Translator.BatchSize != 100 {
		t.Errorf("Translator.BatchSize = %d, want 100", cfg.Translator.BatchSize)
	}
	if cfg.Captions.Binary != "yt-dlp" {
		t.Errorf("Captions.Binary = %q, want yt-dlp", cfg.Captions.Binary)
	}
	if cfg.Pricing["gpt-4o"] != 0.03 {
		t.Errorf("Pricing[gpt-4o] = %v, want 0.03", cfg.Pricing["gpt-4o"])
	}
}

func TestValidateGeminiModelDefault(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Output: "data/output"},
		LLM:   LLMConfig{Provider: "gemini"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("LLM.Model = %q, want gemini-2.5-flash", cfg.LLM.Model)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  output: "data/output"
  temp: "data/tmp"

captions:
  language: "en"

translator:
  target_language: "pt"
  batch_size: 50

llm:
  provider: "azure"
  chunk_tokens: 6000

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "data/output")
	}
	if cfg.Translator.BatchSize != 50 {
		t.Errorf("BatchSize = %v, want 50", cfg.Translator.BatchSize)
	}
	if cfg.LLM.ChunkTokens != 6000 {
		t.Errorf("ChunkTokens = %v, want 6000", cfg.LLM.ChunkTokens)
	}
	// default filled by Validate
	if cfg.Email.Port != 587 {
		t.Errorf("Email.Port = %v, want 587", cfg.Email.Port)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("AZURE_OPENAI_KEY", "k1")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT", "")
	t.Setenv("GEMINI_API_KEYS", "a, b ,c")

	env := FromEnv()

	if env.AzureOpenAIKey != "k1" {
		t.Errorf("AzureOpenAIKey = %q", env.AzureOpenAIKey)
	}
	if env.AzureOpenAIDeployment != "gpt-4o" {
		t.Errorf("AzureOpenAIDeployment = %q, want default gpt-4o", env.AzureOpenAIDeployment)
	}
	if env.AzureTranslatorRegion != "eastus" {
		t.Errorf("AzureTranslatorRegion = %q, want default eastus", env.AzureTranslatorRegion)
	}
	if len(env.GeminiAPIKeys) != 3 || env.GeminiAPIKeys[1] != "b" {
		t.Errorf("GeminiAPIKeys = %v", env.GeminiAPIKeys)
	}
}

func TestMissingForLLM(t *testing.T) {
	env := Env{}

	missing := env.MissingForLLM("azure")
	if len(missing) != 2 {
		t.Errorf("expected 2 missing azure vars, got %v", missing)
	}

	missing = env.MissingForLLM("gemini")
	if len(missing) != 1 || missing[0] != "GEMINI_API_KEYS" {
		t.Errorf("expected GEMINI_API_KEYS missing, got %v", missing)
	}

	env.GeminiAPIKeys = []string{"k"}
	if got := env.MissingForLLM("gemini"); len(got) != 0 {
		t.Errorf("expected none missing, got %v", got)
	}
}
