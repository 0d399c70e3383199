package caption

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reTag    = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// ParseFile decodes a .vtt or .srt file. Cue text is cleaned of markup
// and collapsed whitespace; the raw payload is kept alongside.
func (p *implParser) ParseFile(path string) ([]Segment, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".srt":
	default:
		return nil, fmt.Errorf("unsupported caption format %q (want .vtt or .srt)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading caption file: %w", err)
	}

	segments := parseCues(string(data))
	p.logger.Info(context.Background(), "parsed %d segments from %s", len(segments), path)
	return segments, nil
}

// parseCues walks the cue blocks of a VTT or SRT body. Header, NOTE,
// STYLE and REGION blocks are ignored; cue identifiers and numeric
// indices are skipped. A cue is anchored by its "start --> end" line.
func parseCues(content string) []Segment {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")

	var segments []Segment
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, "NOTE") || strings.HasPrefix(line, "STYLE") || strings.HasPrefix(line, "REGION") {
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
				i++
			}
			continue
		}

		if !strings.Contains(line, "-->") {
			i++
			continue
		}

		start, end := splitTimeLine(line)
		i++

		var textLines []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			textLines = append(textLines, lines[i])
			i++
		}
		raw := strings.Join(textLines, "\n")

		startSec := ParseTime(start)
		endSec := ParseTime(end)
		segments = append(segments, Segment{
			Start:        start,
			End:          end,
			StartSeconds: startSec,
			EndSeconds:   endSec,
			Duration:     endSec - startSec,
			Text:         CleanText(raw),
			RawText:      raw,
		})
	}

	return segments
}

func splitTimeLine(line string) (start, end string) {
	parts := strings.SplitN(line, "-->", 2)
	start = strings.TrimSpace(parts[0])
	end = strings.TrimSpace(parts[1])
	// drop cue settings after the end timestamp ("... align:start position:0%")
	if idx := strings.IndexAny(end, " \t"); idx >= 0 {
		end = end[:idx]
	}
	return start, end
}

// ParseTime converts a subtitle clock value ("HH:MM:SS.mmm" or "MM:SS.mmm",
// comma or dot decimals) to seconds. Malformed values yield 0.
func ParseTime(clock string) float64 {
	parts := strings.Split(strings.ReplaceAll(clock, ",", "."), ":")
	switch len(parts) {
	case 3:
		hours, err1 := strconv.Atoi(parts[0])
		minutes, err2 := strconv.Atoi(parts[1])
		seconds, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds
	case 2:
		minutes, err1 := strconv.Atoi(parts[0])
		seconds, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0
		}
		return float64(minutes)*60 + seconds
	default:
		return 0
	}
}

// CleanText strips markup tags and collapses runs of whitespace.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = reTag.ReplaceAllString(text, "")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
