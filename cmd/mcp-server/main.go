package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/lampyrid/lampyrid-go/internal/auth"
	"github.com/lampyrid/lampyrid-go/internal/config"
	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Logs go to stderr; stdout belongs to the stdio transport
	logger := newSlogAdapter(cfg.LogLevel)

	opts := &firefly.ClientOptions{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		Timeout: cfg.Timeout,
		Logger:  logger,
		RetryConfig: &firefly.RetryConfig{
			MaxRetries: cfg.MaxRetries,
		},
		SentryDSN: cfg.SentryDSN,
	}

	if cfg.CredentialFile != "" {
		store, err := auth.NewStore(cfg.CredentialFile, cfg.CredentialSecret)
		if err != nil {
			log.Fatalf("failed to open credential store: %v", err)
		}
		opts.Credentials = store
	}

	client, err := firefly.NewClient(opts)
	if err != nil {
		log.Fatalf("failed to initialize Firefly III client: %v", err)
	}
	defer client.Close()

	impl := &mcp.Implementation{
		Name:    "lampyrid",
		Version: serverVersion,
	}

	server := mcp.NewServer(impl, nil)

	if err := registerTools(server, &fireflyTools{client: client, logger: logger}); err != nil {
		log.Fatalf("failed to register tools: %v", err)
	}

	ctx := context.Background()

	if cfg.HTTPAddr != "" {
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil)
		logger.Info("serving MCP over HTTP", "addr", cfg.HTTPAddr)
		if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// slogAdapter bridges slog to the client's logger interface
type slogAdapter struct {
	l *slog.Logger
}

func newSlogAdapter(level string) *slogAdapter {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &slogAdapter{l: slog.New(handler)}
}

func (a *slogAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

func (a *slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, keysAndValues...)
}

func (a *slogAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, keysAndValues...)
}

func (a *slogAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, keysAndValues...)
}
