package config

import "fmt"

type Config struct {
	Paths       PathsConfig        `yaml:"paths"`
	Logging     LoggingConfig      `yaml:"logging"`
	Performance PerformanceConfig  `yaml:"performance"`
	Captions    CaptionsConfig     `yaml:"captions"`
	Translator  TranslatorConfig   `yaml:"translator"`
	LLM         LLMConfig          `yaml:"llm"`
	Export      ExportConfig       `yaml:"export"`
	Email       EmailConfig        `yaml:"email"`
	Pricing     map[string]float64 `yaml:"pricing"`
}

type PathsConfig struct {
	Output    string `yaml:"output"`
	Inbox     string `yaml:"inbox"`
	Temp      string `yaml:"temp"`
	HistoryDB string `yaml:"history_db"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent  int `yaml:"max_concurrent"`
	MapConcurrency int `yaml:"map_concurrency"`
}

type CaptionsConfig struct {
	Language string `yaml:"language"`
	Binary   string `yaml:"binary"`
}

type TranslatorConfig struct {
	TargetLanguage string `yaml:"target_language"`
	BatchSize      int    `yaml:"batch_size"`
}

type LLMConfig struct {
	Provider              string  `yaml:"provider"`
	Model                 string  `yaml:"model"`
	ChunkTokens           int     `yaml:"chunk_tokens"`
	CompletionTokens      int     `yaml:"completion_tokens"`
	ChunkCompletionTokens int     `yaml:"chunk_completion_tokens"`
	Temperature           float64 `yaml:"temperature"`
}

type ExportConfig struct {
	Company      string `yaml:"company"`
	PDFConverter string `yaml:"pdf_converter"`
}

type EmailConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	switch c.LLM.Provider {
	case "", "azure", "gemini":
	default:
		return fmt.Errorf("llm.provider must be 'azure' or 'gemini', got %q", c.LLM.Provider)
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.HistoryDB == "" {
		c.Paths.HistoryDB = "data/verba.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MapConcurrency == 0 {
		c.Performance.MapConcurrency = 3
	}
	if c.Captions.Language == "" {
		c.Captions.Language = "en"
	}
	if c.Captions.Binary == "" {
		c.Captions.Binary = "yt-dlp"
	}
	if c.Translator.TargetLanguage == "" {
		c.Translator.TargetLanguage = "pt"
	}
	if c.Translator.BatchSize == 0 {
		c.Translator.BatchSize = 100
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "azure"
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == "gemini" {
			c.LLM.Model = "gemini-2.5-flash"
		} else {
			c.LLM.Model = "gpt-4o"
		}
	}
	if c.LLM.ChunkTokens == 0 {
		c.LLM.ChunkTokens = 7500
	}
	if c.LLM.CompletionTokens == 0 {
		c.LLM.CompletionTokens = 4000
	}
	if c.LLM.ChunkCompletionTokens == 0 {
		c.LLM.ChunkCompletionTokens = 1000
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.Export.Company == "" {
		c.Export.Company = "Verba"
	}
	if c.Export.PDFConverter == "" {
		c.Export.PDFConverter = "weasyprint"
	}
	if c.Email.Host == "" {
		c.Email.Host = "smtp.gmail.com"
	}
	if c.Email.Port == 0 {
		c.Email.Port = 587
	}
	if c.Pricing == nil {
		c.Pricing = map[string]float64{
			"gpt-4o":           0.03,
			"gpt-4":            0.06,
			"gpt-3.5-turbo":    0.002,
			"azure-translator": 0.01,
		}
	}

	return nil
}
