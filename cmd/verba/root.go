package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/verbahq/verba/internal/config"
	"github.com/verbahq/verba/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "verba",
	Short: "Verba turns recorded meetings into structured minutes",
	Long: `Verba downloads automatic captions for a meeting video, translates
them, summarizes the transcript with an LLM and renders a formal
meeting-minutes document (DOCX and PDF), optionally e-mailing the result.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.AddCommand(runCmd, watchCmd, runsCmd)
}

// loadConfig reads .env (optional), the YAML config and the environment.
// An absent config.yaml at the default location falls back to defaults.
func loadConfig() (*config.Config, config.Env, logger.Logger, error) {
	_ = godotenv.Load()

	var cfg *config.Config
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) && configPath == "config.yaml" {
		cfg = &config.Config{Paths: config.PathsConfig{Output: "data/output"}}
		if err := cfg.Validate(); err != nil {
			return nil, config.Env{}, nil, err
		}
	} else {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, config.Env{}, nil, fmt.Errorf("load config: %w", err)
		}
	}

	env := config.FromEnv()
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, env, log, nil
}
