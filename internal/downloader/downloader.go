package downloader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCaptions is returned when the video has no automatic captions in
// the requested language. Callers distinguish it from transport failures.
var ErrNoCaptions = errors.New("no captions available")

// Fetch downloads the automatic caption track and probes the video
// duration. A failed duration probe degrades to 0 seconds, not an error.
func (d *implDownloader) Fetch(ctx context.Context, videoURL, language string) (string, int, error) {
	if err := os.MkdirAll(d.tmpDir, 0755); err != nil {
		return "", 0, fmt.Errorf("create temp dir: %w", err)
	}

	videoID := VideoID(videoURL)
	template := filepath.Join(d.tmpDir, videoID+".%(ext)s")

	d.logger.Info(ctx, "Downloading captions for %s (lang=%s)", videoURL, language)

	args := []string{
		"--write-auto-subs",
		"--sub-lang", language,
		"--skip-download",
		"--output", template,
		videoURL,
	}
	if _, err := d.executor.Execute(ctx, d.binary, args...); err != nil {
		return "", 0, fmt.Errorf("download captions: %w", err)
	}

	captionPath := filepath.Join(d.tmpDir, fmt.Sprintf("%s.%s.vtt", videoID, language))
	if _, err := os.Stat(captionPath); err != nil {
		// yt-dlp may emit a variant language tag (en-US, pt-BR);
		// fall back to any caption file for this video.
		matches, _ := filepath.Glob(filepath.Join(d.tmpDir, videoID+"*.vtt"))
		if len(matches) == 0 {
			return "", 0, fmt.Errorf("%w for %s", ErrNoCaptions, videoURL)
		}
		captionPath = matches[0]
	}
	d.logger.Info(ctx, "Captions saved: %s", captionPath)

	duration, err := d.probeDuration(ctx, videoURL)
	if err != nil {
		d.logger.Warn(ctx, "Failed to probe video duration: %v", err)
		duration = 0
	}

	return captionPath, duration, nil
}

func (d *implDownloader) probeDuration(ctx context.Context, videoURL string) (int, error) {
	out, err := d.executor.Execute(ctx, d.binary, "--dump-single-json", "--skip-download", videoURL)
	if err != nil {
		return 0, fmt.Errorf("probe video info: %w", err)
	}

	var info struct {
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return 0, fmt.Errorf("parse video info: %w", err)
	}
	return int(info.Duration), nil
}
