package logger

import (
	"io"
	"log/slog"
	"strings"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// Options configures optional log shipping targets. The zero value keeps
// logging local.
type Options struct {
	// BetterStackToken enables Better Stack log shipping when non-empty.
	BetterStackToken string
	// BetterStackEndpoint is the ingest URL. Required when the token is set.
	BetterStackEndpoint string
}

// NewWithOptions creates a logger that always writes JSON to w and, when a
// Better Stack token is configured, additionally ships records to Better
// Stack. The remote handler batches and sends in the background.
func NewWithOptions(level string, w io.Writer, opts Options) *Logger {
	logLevel := parseLevel(level)
	local := newJSONHandler(w, logLevel)

	if opts.BetterStackToken == "" {
		return &Logger{Logger: slog.New(local)}
	}

	remote := slogbetterstack.Option{
		Token:    opts.BetterStackToken,
		Endpoint: opts.BetterStackEndpoint,
		Level:    logLevel,
	}.NewBetterstackHandler()

	return &Logger{Logger: slog.New(newFanoutHandler(local, remote))}
}

func parseLevel(level string) slog.Level {
	switch level {
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

func newJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			if a.Key == slog.LevelKey {
				a.Key = "level"
				l := a.Value.String()
				if l == "WARN" {
					l = "warning"
				} else {
					l = strings.ToLower(l)
				}
				a.Value = slog.StringValue(l)
			}
			if a.Key == slog.MessageKey {
				a.Key = "message"
			}
			return a
		},
	}
	return slog.NewJSONHandler(w, opts)
}
