package downloader

import (
	"regexp"
	"strings"
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`watch\?v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`shorts/([0-9A-Za-z_-]{11})`),
}

var nonIDChars = regexp.MustCompile(`[^0-9A-Za-z_-]+`)

// VideoID extracts the 11-character YouTube video ID from the standard
// URL shapes. Unrecognized URLs fall back to a sanitized tail so the ID
// stays usable as a file name.
func VideoID(url string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}

	tail := url
	if i := strings.LastIndex(tail, "/"); i >= 0 {
		tail = tail[i+1:]
	}
	if i := strings.IndexAny(tail, "?&#"); i >= 0 {
		tail = tail[:i]
	}
	tail = nonIDChars.ReplaceAllString(tail, "_")
	if tail == "" {
		return "video"
	}
	return tail
}
