package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"

	"github.com/grammatek/KeyboardKit/pkg/log"
)

// TracedToolHandler is the handler type wrapped by [WithTracing].
type TracedToolHandler[In, Out any] func(
	context.Context,
	*mcp.ServerSession,
	*mcp.CallToolParamsFor[In],
) (*mcp.CallToolResultFor[Out], error)

// WithTracing wraps handler so that each tool call runs in its own span, with
// trace IDs added to logs and errors recorded on the span.
func WithTracing[In, Out any](
	tracer trace.Tracer,
	handler TracedToolHandler[In, Out],
) mcp.ToolHandlerFor[In, Out] {
	return func(
		ctx context.Context,
		session *mcp.ServerSession,
		params *mcp.CallToolParamsFor[In],
	) (*mcp.CallToolResultFor[Out], error) {
		toolName := params.Name

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		logger := log.WithContext(ctx)

		logger.DebugContext(ctx, "handling tool call",
			slog.String("name", toolName),
			slog.Any("args", params.Arguments),
		)

		result, err := handler(ctx, session, params)
		if err != nil {
			logger.ErrorContext(ctx, "tool call failed",
				slog.String("name", toolName),
				slog.Any("error", err),
			)
			span.RecordError(err)
		} else {
			logger.DebugContext(ctx, "tool call completed", slog.String("name", toolName))
		}

		return result, err
	}
}
