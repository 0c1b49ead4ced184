package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog builds the human-oriented logger used for local runs:
// text output, debug level, short timestamps.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				t := a.Value.Time()
				a.Value = slog.StringValue(t.Format("15:04:05.000"))
			}
			return a
		},
	}))
}
