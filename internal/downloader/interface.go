package downloader

import "context"

// Downloader fetches automatic captions for a video.
type Downloader interface {
	// Fetch downloads the caption track for videoURL in the given
	// language and returns the caption file path together with the
	// video duration in seconds.
	Fetch(ctx context.Context, videoURL, language string) (string, int, error)
}
