package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/verbahq/verba/internal/caption"
	"github.com/verbahq/verba/internal/downloader"
	"github.com/verbahq/verba/internal/export"
	"github.com/verbahq/verba/internal/history"
	"github.com/verbahq/verba/internal/mailer"
)

const defaultTitle = "Ata de Reunião"

// Run executes the full pipeline: download, parse, translate,
// summarize, docx, pdf, e-mail. Terminal failures are recorded in
// metadata.json and the history row before the error propagates; no
// partial documents are produced past a failed summarization.
func (p *implPipeline) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	title := req.Title
	if title == "" {
		title = defaultTitle
	}
	videoID := p.videoID(req)
	runID := uuid.NewString()

	outputDir := filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("%s_%s", videoID, start.Format("20060102_150405")))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run %s: %s", runID, title)
	p.logger.Info(ctx, "Output directory: %s", outputDir)
	p.logger.Info(ctx, "========================================")

	if err := p.history.Create(ctx, history.Run{
		ID:        runID,
		VideoID:   videoID,
		Title:     title,
		Status:    "running",
		StartedAt: start,
	}); err != nil {
		p.logger.Warn(ctx, "Failed to record run in history: %v", err)
	}

	meta := newMetadata()
	result, err := p.runSteps(ctx, req, title, outputDir, meta)

	meta.EndTime = time.Now().Format(time.RFC3339)
	meta.TotalProcessingTime = time.Since(start).Seconds()

	if err != nil {
		meta.Error = err.Error()
		if saveErr := meta.Save(outputDir); saveErr != nil {
			p.logger.Error(ctx, "Failed to save metadata: %v", saveErr)
		}
		if histErr := p.history.Finish(ctx, runID, history.Outcome{
			Status:    "failed",
			OutputDir: outputDir,
			Error:     err.Error(),
		}); histErr != nil {
			p.logger.Warn(ctx, "Failed to close run in history: %v", histErr)
		}
		return nil, err
	}

	result.RunID = runID
	summary := result.Summary
	meta.OutputFile = result.PDFPath
	meta.Summary = &SummaryInfo{
		TokensUsed:     summary.TokensUsed,
		ProcessingTime: summary.ProcessingTime,
		EstimatedCost:  result.EstimatedCost,
		ResumoLength:   len(summary.ResumoExecutivo),
		DecisoesCount:  len(summary.Decisoes),
		AcoesCount:     len(summary.ProximasAcoes),
	}
	if err := meta.Save(outputDir); err != nil {
		p.logger.Error(ctx, "Failed to save metadata: %v", err)
	}

	if err := p.history.Finish(ctx, runID, history.Outcome{
		Status:         "completed",
		TokensUsed:     summary.TokensUsed,
		ProcessingTime: summary.ProcessingTime,
		EstimatedCost:  result.EstimatedCost,
		OutputDir:      outputDir,
	}); err != nil {
		p.logger.Warn(ctx, "Failed to close run in history: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run completed in %s", time.Since(start).Round(time.Second))
	p.logger.Info(ctx, "Documents: %s, %s", result.DocxPath, result.PDFPath)
	p.logger.Info(ctx, "Tokens used: %d (estimated cost $%.4f)", summary.TokensUsed, result.EstimatedCost)
	p.logger.Info(ctx, "========================================")

	return result, nil
}

func (p *implPipeline) runSteps(ctx context.Context, req Request, title, outputDir string, meta *Metadata) (*Result, error) {
	// Step 1: caption acquisition
	captionPath := req.CaptionPath
	if captionPath == "" {
		p.logger.Info(ctx, "Step 1/7: Downloading captions")
		path, videoDuration, err := p.downloader.Fetch(ctx, req.VideoURL, req.Language)
		if err != nil {
			return nil, fmt.Errorf("download captions: %w", err)
		}
		captionPath = path
		if !req.KeepTemp {
			defer func() {
				if err := os.Remove(captionPath); err != nil {
					p.logger.Warn(ctx, "Failed to remove temp caption file: %v", err)
				}
			}()
		}
		p.logger.Info(ctx, "Video duration: %d seconds", videoDuration)
		meta.AddStep("download_captions", map[string]interface{}{
			"caption_path":     captionPath,
			"duration_seconds": videoDuration,
		})
	} else {
		p.logger.Info(ctx, "Step 1/7: Using caption file %s", captionPath)
		meta.AddStep("download_captions", "skipped")
	}

	// Step 2: parse
	p.logger.Info(ctx, "Step 2/7: Parsing captions")
	segments, err := p.parser.ParseFile(captionPath)
	if err != nil {
		return nil, fmt.Errorf("parse captions: %w", err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no caption cues in %s", captionPath)
	}
	stats := caption.ComputeStats(segments)
	p.logger.Info(ctx, "Parsed %d segments covering %.0f seconds (%d words)",
		stats.TotalSegments, stats.TotalDuration, stats.TotalWords)
	meta.AddStep("parse_captions", len(segments))

	// Step 3: translate
	p.logger.Info(ctx, "Step 3/7: Translating segments to %s", p.cfg.Translator.TargetLanguage)
	translated, err := p.translator.TranslateSegments(ctx, segments)
	if err != nil {
		return nil, fmt.Errorf("translate segments: %w", err)
	}
	translatedChars := 0
	for _, s := range translated {
		translatedChars += len(s.Text)
	}
	meta.AddStep("translate_segments", len(translated))

	// Step 4: summarize
	p.logger.Info(ctx, "Step 4/7: Summarizing transcript")
	languageNote := fmt.Sprintf("A transcrição foi traduzida automaticamente para o idioma %q.", p.cfg.Translator.TargetLanguage)
	summary, err := p.summarizer.SummarizeSegments(ctx, translated, time.Now().Format("2006-01-02"), languageNote)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	meta.AddStep("summarize_segments", map[string]interface{}{
		"tokens_used":     summary.TokensUsed,
		"processing_time": summary.ProcessingTime,
	})

	cost := Cost(p.cfg.Pricing, p.model, summary.TokensUsed) +
		Cost(p.cfg.Pricing, "azure-translator", translatedChars)

	docMeta := export.Meta{
		Title:   title,
		Company: p.cfg.Export.Company,
		Date:    time.Now().Format("02/01/2006"),
	}

	// Step 5: docx
	p.logger.Info(ctx, "Step 5/7: Writing DOCX document")
	docxPath := filepath.Join(outputDir, "ata.docx")
	if err := p.exporter.WriteDocx(summary, docMeta, docxPath); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	meta.AddStep("generate_docx", docxPath)

	// Step 6: pdf
	p.logger.Info(ctx, "Step 6/7: Writing PDF document")
	pdfPath, err := p.exporter.WritePDF(ctx, summary, docMeta, filepath.Join(outputDir, "ata.pdf"))
	if err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	meta.AddStep("generate_pdf", pdfPath)

	// Step 7: e-mail
	if len(req.EmailTo) > 0 {
		p.logger.Info(ctx, "Step 7/7: Sending e-mail to %s", strings.Join(req.EmailTo, ", "))
		if err := p.sendMail(req, title, summary.TokensUsed, cost, maxEndMinutes(translated), docxPath, pdfPath); err != nil {
			p.logger.Error(ctx, "Failed to send e-mail: %v", err)
			meta.AddStep("send_email", "failed: "+err.Error())
		} else {
			meta.AddStep("send_email", "sent")
		}
	} else {
		p.logger.Info(ctx, "Step 7/7: Skipping e-mail")
		meta.AddStep("send_email", "skipped")
	}

	if req.CopySummary {
		if err := clipboard.WriteAll(summary.ResumoExecutivo); err != nil {
			p.logger.Warn(ctx, "Failed to copy summary to clipboard: %v", err)
		} else {
			p.logger.Info(ctx, "Executive summary copied to clipboard")
		}
	}

	return &Result{
		OutputDir:     outputDir,
		DocxPath:      docxPath,
		PDFPath:       pdfPath,
		Summary:       summary,
		EstimatedCost: cost,
	}, nil
}

func (p *implPipeline) sendMail(req Request, title string, tokens int, cost float64, durationMin int, attachments ...string) error {
	if p.mailer == nil {
		return fmt.Errorf("SMTP credentials are not configured")
	}
	return p.mailer.Send(mailer.Message{
		To:          req.EmailTo,
		Title:       title,
		Date:        time.Now().Format("02/01/2006"),
		DurationMin: durationMin,
		TokensUsed:  tokens,
		Cost:        cost,
		Attachments: attachments,
	})
}

func (p *implPipeline) videoID(req Request) string {
	if req.VideoURL != "" {
		return downloader.VideoID(req.VideoURL)
	}
	base := filepath.Base(req.CaptionPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func maxEndMinutes(segments []caption.Segment) int {
	var maxEnd float64
	for _, s := range segments {
		if s.EndSeconds > maxEnd {
			maxEnd = s.EndSeconds
		}
	}
	return int(maxEnd / 60)
}
