package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/verbahq/verba/internal/pipeline"
	"github.com/verbahq/verba/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process caption files dropped into the inbox directory",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, env, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.Inbox == "" {
		return fmt.Errorf("paths.inbox must be set for watch mode")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipe, hist, err := buildPipeline(ctx, cfg, env, log)
	if err != nil {
		return err
	}
	defer hist.Close()

	handler := func(ctx context.Context, path string) error {
		_, err := pipe.Run(ctx, pipeline.Request{CaptionPath: path})
		return err
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
