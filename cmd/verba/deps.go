package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/verbahq/verba/internal/caption"
	"github.com/verbahq/verba/internal/config"
	"github.com/verbahq/verba/internal/downloader"
	"github.com/verbahq/verba/internal/export"
	"github.com/verbahq/verba/internal/history"
	"github.com/verbahq/verba/internal/llm"
	"github.com/verbahq/verba/internal/logger"
	"github.com/verbahq/verba/internal/mailer"
	"github.com/verbahq/verba/internal/pipeline"
	"github.com/verbahq/verba/internal/summarizer"
	"github.com/verbahq/verba/internal/translator"
	"github.com/verbahq/verba/pkg/executor"
)

// buildPipeline wires every pipeline collaborator from config and
// environment. The caller owns closing the returned history store.
func buildPipeline(ctx context.Context, cfg *config.Config, env config.Env, log logger.Logger) (pipeline.Pipeline, history.Store, error) {
	if missing := env.MissingForLLM(cfg.LLM.Provider); len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	if missing := env.MissingForTranslate(); len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	exec := executor.New()
	dl := downloader.New(cfg.Captions.Binary, cfg.Paths.Temp, exec, log)
	parser := caption.New(log)

	tr, err := translator.New(translator.Options{
		Key:            env.AzureTranslatorKey,
		Endpoint:       env.AzureTranslatorEndpoint,
		Region:         env.AzureTranslatorRegion,
		TargetLanguage: cfg.Translator.TargetLanguage,
		BatchSize:      cfg.Translator.BatchSize,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create translator: %w", err)
	}

	client, err := llm.New(cfg, env, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create llm client: %w", err)
	}

	sum := summarizer.New(client, summarizer.Options{
		ChunkTokens:           cfg.LLM.ChunkTokens,
		CompletionTokens:      cfg.LLM.CompletionTokens,
		ChunkCompletionTokens: cfg.LLM.ChunkCompletionTokens,
		MapConcurrency:        cfg.Performance.MapConcurrency,
	}, log)

	exp := export.New(cfg.Export.PDFConverter, exec, log)

	var ml mailer.Mailer
	if env.SMTPUsername != "" && env.SMTPPassword != "" {
		ml, err = mailer.New(mailer.Options{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: env.SMTPUsername,
			Password: env.SMTPPassword,
		}, log)
		if err != nil {
			return nil, nil, fmt.Errorf("create mailer: %w", err)
		}
	} else {
		log.Warn(ctx, "SMTP credentials not set, e-mail delivery disabled")
	}

	hist, err := history.Open(cfg.Paths.HistoryDB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}

	pipe := pipeline.New(cfg, client.Model(), dl, parser, tr, sum, exp, ml, hist, log)
	return pipe, hist, nil
}
