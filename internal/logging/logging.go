// Package logging holds the process-wide slog logger. Pipe maintenance
// tasks log from background goroutines, so the logger lives behind an
// atomic.Value and is reconfigurable at runtime.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer // defaults to os.Stderr
}

var def atomic.Value

func init() {
	Configure(Options{})
}

func Configure(opts Options) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	cfg := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, cfg)
	} else {
		h = slog.NewTextHandler(w, cfg)
	}
	def.Store(slog.New(h))
}

func parseLevel(s string) slog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

func InitFromEnv() {
	lvl := os.Getenv("FRAMERELAY_LOG_LEVEL")
	json, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("FRAMERELAY_LOG_JSON")))
	Configure(Options{Level: lvl, JSON: json})
}
