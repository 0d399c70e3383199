package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]int{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	out    io.Writer
	std    *log.Logger
	level  int
	asJSON bool
}

// New creates a Logger writing to stdout. Unknown levels default to info.
func New(level, format string) Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w. Format is "text" or "json".
func NewWithWriter(w io.Writer, level, format string) Logger {
	lv, ok := levelNames[strings.ToLower(level)]
	if !ok {
		lv = levelInfo
	}
	return &implLogger{
		out:    w,
		std:    log.New(w, "", log.LstdFlags),
		level:  lv,
		asJSON: strings.EqualFold(format, "json"),
	}
}

func (l *implLogger) enabled(level int) bool {
	return level >= l.level
}

func (l *implLogger) log(level int, name, msg string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}

	line := msg
	if len(args) > 0 {
		line = fmt.Sprintf(msg, args...)
	}

	if l.asJSON {
		entry := map[string]string{
			"time":  time.Now().Format(time.RFC3339),
			"level": name,
			"msg":   line,
		}
		b, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(b))
		return
	}

	l.std.Printf("[%s] %s", strings.ToUpper(name), line)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelDebug, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelInfo, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelWarn, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelError, "error", msg, args...)
}
