// Package log configures [log/slog] handlers for kbkit.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/trace"

	charmlog "github.com/charmbracelet/log"
)

type (
	Format string
	Level  string

	contextKey string
)

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"

	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"

	loggerContextKey contextKey = "logger"

	traceIDLength = 8
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	AllFormats = []string{
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatText),
	}
	AllLevels = []string{
		string(LevelError),
		string(LevelWarn),
		string(LevelInfo),
		string(LevelDebug),
	}
)

// CreateHandlerWithStrings creates a [slog.Handler] from level and format
// names, as given on the command line.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := GetLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, err, logLevel)
	}

	f, err := GetFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, err, logFormat)
	}

	return CreateHandler(w, lvl, f), nil
}

// CreateHandler creates a [slog.Handler] writing to w. Unknown formats fall
// back to [FormatLogfmt].
func CreateHandler(w io.Writer, lvl slog.Level, f Format) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}

	switch f {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatText:
		return newCharmLogHandler(w, lvl)
	case FormatLogfmt:
	}

	return slog.NewTextHandler(w, opts)
}

// GetLevel parses a level name. "warning" is accepted as an alias of "warn".
func GetLevel(level string) (slog.Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(level))) {
	case LevelError:
		return slog.LevelError, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	}

	return 0, ErrUnknownLogLevel
}

// GetFormat parses a format name.
func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(format)))
	if slices.Contains([]Format{FormatJSON, FormatLogfmt, FormatText}, f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

func newCharmLogHandler(w io.Writer, level slog.Level) slog.Handler {
	//nolint:gosec // G115: input from GetLevel.
	lvl := int32(level)

	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(lvl),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      time.StampMilli,
	})
	logger.SetColorProfile(termenv.ColorProfile())

	return logger
}

// IntoContext returns a copy of ctx carrying logger.
func IntoContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// WithContext returns the logger stored in ctx by [IntoContext], or the
// default logger. If ctx carries an active span, the logger is annotated
// with its trace ID.
func WithContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if !ok {
		logger = slog.Default()
	}

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		traceID := span.SpanContext().TraceID().String()
		if len(traceID) > traceIDLength {
			traceID = traceID[:traceIDLength]
		}

		return logger.With(slog.String("trace_id", traceID))
	}

	return logger
}
