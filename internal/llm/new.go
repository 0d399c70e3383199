package llm

import (
	"github.com/verbahq/verba/internal/config"
	"github.com/verbahq/verba/internal/logger"
)

// New creates the Client selected by llm.provider.
func New(cfg *config.Config, env config.Env, log logger.Logger) (Client, error) {
	if cfg.LLM.Provider == "gemini" {
		return NewGemini(env.GeminiAPIKeys, cfg.LLM.Model, cfg.LLM.Temperature, log)
	}
	return NewAzure(AzureOptions{
		Key:         env.AzureOpenAIKey,
		Endpoint:    env.AzureOpenAIEndpoint,
		Deployment:  env.AzureOpenAIDeployment,
		APIVersion:  env.AzureOpenAIAPIVersion,
		Temperature: cfg.LLM.Temperature,
	}, log)
}
