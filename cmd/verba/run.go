package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/verbahq/verba/internal/pipeline"
)

var (
	runTitle   string
	runLang    string
	runOutput  string
	runEmail   []string
	runCopy    bool
	runKeepTmp bool
)

var runCmd = &cobra.Command{
	Use:   "run <video-url>",
	Short: "Generate meeting minutes from a video URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTitle, "title", "", "meeting title (default: Ata de Reunião)")
	runCmd.Flags().StringVar(&runLang, "lang", "", "caption language code (default from config)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output directory (default from config)")
	runCmd.Flags().StringSliceVar(&runEmail, "email", nil, "e-mail recipient (repeatable)")
	runCmd.Flags().BoolVar(&runCopy, "copy", false, "copy the executive summary to the clipboard")
	runCmd.Flags().BoolVar(&runKeepTmp, "keep-tmp", false, "keep the downloaded caption file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, env, log, err := loadConfig()
	if err != nil {
		return err
	}
	if runOutput != "" {
		cfg.Paths.Output = runOutput
	}
	lang := runLang
	if lang == "" {
		lang = cfg.Captions.Language
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipe, hist, err := buildPipeline(ctx, cfg, env, log)
	if err != nil {
		return err
	}
	defer hist.Close()

	result, err := pipe.Run(ctx, pipeline.Request{
		VideoURL:    args[0],
		Title:       runTitle,
		Language:    lang,
		EmailTo:     runEmail,
		CopySummary: runCopy,
		KeepTemp:    runKeepTmp,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Minutes generated in %s\n", result.OutputDir)
	fmt.Printf("  DOCX:   %s\n", result.DocxPath)
	fmt.Printf("  PDF:    %s\n", result.PDFPath)
	fmt.Printf("  Tokens: %d (estimated cost $%.4f)\n", result.Summary.TokensUsed, result.EstimatedCost)
	return nil
}
