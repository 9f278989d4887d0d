package scytale

import (
	"context"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"

	"github.com/scytale/scytale/internal/types"
)

// newLogger creates the CLI logger. It writes to w and filters messages at
// the given level; --verbose lowers the level to debug.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logResult emits a debug line describing a finished cipher run. Message
// bodies never appear in logs; the xxhash digest identifies the content
// instead.
func logResult(ctx context.Context, res types.Result) {
	loggerFromContext(ctx).Debug(string(res.Operation)+"ed message",
		"rod", res.Rod,
		"length", res.Length,
		"padded", res.Padded,
		"artifact", res.Artifact,
		"digest", contentDigest(res.Output),
	)
}

func contentDigest(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
