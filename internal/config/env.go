package config

import (
	"os"
	"strings"
)

// Env holds credentials and endpoints sourced from the environment.
// Secrets never live in the YAML file.
type Env struct {
	AzureOpenAIKey        string
	AzureOpenAIEndpoint   string
	AzureOpenAIDeployment string
	AzureOpenAIAPIVersion string

	AzureTranslatorKey      string
	AzureTranslatorEndpoint string
	AzureTranslatorRegion   string

	GeminiAPIKeys []string

	SMTPUsername string
	SMTPPassword string
}

// FromEnv reads the process environment, applying service defaults
func FromEnv() Env {
	return Env{
		AzureOpenAIKey:        os.Getenv("AZURE_OPENAI_KEY"),
		AzureOpenAIEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureOpenAIDeployment: getenv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o"),
		AzureOpenAIAPIVersion: getenv("AZURE_OPENAI_API_VERSION", "2024-02-01"),

		AzureTranslatorKey:      os.Getenv("AZURE_TRANSLATOR_KEY"),
		AzureTranslatorEndpoint: getenv("AZURE_TRANSLATOR_ENDPOINT", "https://api.cognitive.microsofttranslator.com"),
		AzureTranslatorRegion:   getenv("AZURE_TRANSLATOR_REGION", "eastus"),

		GeminiAPIKeys: splitKeys(os.Getenv("GEMINI_API_KEYS")),

		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}
}

// MissingForLLM returns the unset variables the configured LLM provider needs
func (e Env) MissingForLLM(provider string) []string {
	var missing []string
	switch provider {
	case "gemini":
		if len(e.GeminiAPIKeys) == 0 {
			missing = append(missing, "GEMINI_API_KEYS")
		}
	default:
		if e.AzureOpenAIKey == "" {
			missing = append(missing, "AZURE_OPENAI_KEY")
		}
		if e.AzureOpenAIEndpoint == "" {
			missing = append(missing, "AZURE_OPENAI_ENDPOINT")
		}
	}
	return missing
}

// MissingForTranslate returns the unset variables translation needs
func (e Env) MissingForTranslate() []string {
	var missing []string
	if e.AzureTranslatorKey == "" {
		missing = append(missing, "AZURE_TRANSLATOR_KEY")
	}
	return missing
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
