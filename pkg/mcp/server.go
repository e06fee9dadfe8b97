package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/grammatek/KeyboardKit/pkg/version"
)

// Server implements the MCP server for kbkit.
type Server struct {
	server  *mcp.Server
	tracer  trace.Tracer
	address string
}

// NewServer creates a new MCP server. An empty address serves over stdio.
func NewServer(address string) *Server {
	impl := &mcp.Implementation{
		Name:    name,
		Version: version.GetVersion(),
	}

	s := &Server{
		address: address,
		server:  mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
		tracer:  otel.Tracer("github.com/grammatek/KeyboardKit/pkg/mcp"),
	}

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_locales",
		Description: "List the supported keyboard locales, sorted by their native name.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"first": {
					Type:        "string",
					Description: "Identifier of a locale to list first, e.g. \"en\".",
				},
				"filter": {
					Type:        "string",
					Description: "CEL expression selecting locales, e.g. 'language == \"en\"'.",
				},
			},
		},
	}, WithTracing(s.tracer, s.handleListLocales))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_locale",
		Description: "Get the identifier, native name, flag and text direction of a locale.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "string",
					Description: "The locale identifier, e.g. \"en-GB\".",
				},
			},
			Required: []string{"id"},
		},
	}, WithTracing(s.tracer, s.handleGetLocale))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_screen",
		Description: "Find the known device with a screen size, in either orientation.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"width": {
					Type:        "number",
					Description: "Screen width in points.",
				},
				"height": {
					Type:        "number",
					Description: "Screen height in points.",
				},
			},
			Required: []string{"width", "height"},
		},
	}, WithTracing(s.tracer, s.handleMatchScreen))
}

// Server returns the underlying [mcp.Server].
func (s *Server) Server() *mcp.Server {
	return s.server
}

// Serve runs the MCP server until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	slog.InfoContext(ctx, "starting MCP server", slog.String("address", s.address))

	if s.address == "" {
		err := s.serveStdio(ctx)
		if err != nil {
			return fmt.Errorf("serve stdio: %w", err)
		}

		return nil
	}

	err := s.serveHTTP(ctx)
	if err != nil {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	return nil
}

func (s *Server) serveHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	server := &http.Server{
		Addr:    s.address,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.Error("shutdown MCP server", slog.Any("error", err))
		}
	}()

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

func (s *Server) serveStdio(ctx context.Context) error {
	t := mcp.NewLoggingTransport(mcp.NewStdioTransport(), os.Stderr)

	err := s.server.Run(ctx, t)
	if err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
