package downloader

import (
	"github.com/verbahq/verba/internal/logger"
	"github.com/verbahq/verba/pkg/executor"
)

type implDownloader struct {
	binary   string
	tmpDir   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary.
func New(binary, tmpDir string, exec executor.Executor, log logger.Logger) Downloader {
	if binary == "" {
		binary = "yt-dlp"
	}
	return &implDownloader{
		binary:   binary,
		tmpDir:   tmpDir,
		executor: exec,
		logger:   log,
	}
}
