package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"github.com/i2y/acapyclient/configs"
	"github.com/i2y/acapyclient/internal/adapter/inbound/mcphttp"
	"github.com/i2y/acapyclient/internal/adapter/outbound/acapyinvoker"
	"github.com/i2y/acapyclient/internal/adapter/outbound/memcatalog"
	"github.com/i2y/acapyclient/internal/adapter/outbound/swagger"
	"github.com/i2y/acapyclient/internal/telemetry"
	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/api"
	"github.com/i2y/acapyclient/pkg/client"
)

const (
	serverName    = "acapy-mcp"
	serverVersion = "0.1.0"
)

func main() {
	// === Command Line Flags ===
	var transport string
	flag.StringVar(&transport, "transport", "sse", "Transport mode: sse or stdio")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// === Logging ===
	logLevel := cfg.ParsedLogLevel()
	var logger *slog.Logger

	if transport == "stdio" {
		// stdout carries the protocol, so logs go to a file.
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
		} else {
			defer logFile.Close()
			logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
		}
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}

	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()), slog.String("transport", transport))

	// === OpenTelemetry Initialization ===
	shutdownOtel, err := telemetry.InitProvider(ctx, telemetry.Settings{
		ServiceName: serverName,
		Endpoint:    cfg.OtelExporterOtlpEndpoint,
		Insecure:    cfg.OtelExporterOtlpInsecure,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry providers.", slog.Any("error", err))
		}
	}()

	// === MCP Server (mark3labs/mcp-go) ===
	mcpSrv := mcpGoServer.NewMCPServer(serverName, serverVersion)

	// === Dependency Injection ===
	logger.Info("Initializing dependencies...")

	acapy := client.New(cfg.AdminURL, cfg.ClientOptions(logger)...)
	logger.Debug("Admin API client configured.", slog.String("admin_url", acapy.BaseURL()), slog.Duration("timeout", acapy.Timeout()))

	catalog := memcatalog.New(logger)
	if err := catalog.Register(ctx, api.Endpoints()); err != nil {
		logger.Error("Failed to register endpoints.", slog.Any("error", err))
		os.Exit(1)
	}

	invoker := acapyinvoker.New(acapy, logger)
	invokeUC := usecase.NewInvokeEndpointUseCase(catalog, invoker, logger)
	serveUC := usecase.NewServeToolsUseCase(catalog, invokeUC, logger)

	count, err := serveUC.Register(ctx, mcpSrv)
	if err != nil {
		logger.Error("Failed to register MCP tools.", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("MCP tools registered.", slog.Int("count", count))

	// === Transport Mode Selection ===
	switch transport {
	case "stdio":
		logger.Info("Starting in STDIO mode")

		stdioServer := mcpGoServer.NewStdioServer(mcpSrv)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Error("STDIO server error", slog.Any("error", err))
			os.Exit(1)
		}

	case "sse":
		logger.Info("Starting in SSE mode")

		sseServer := mcpGoServer.NewSSEServer(mcpSrv, mcpGoServer.WithBaseURL("http://"+cfg.ListenAddr))

		// === Admin HTTP Server Setup ===
		fetcher := swagger.NewFetcher(&http.Client{Timeout: cfg.Timeout}, acapy.Headers(), logger, cfg.SwaggerPath)
		driftUC := usecase.NewCheckDriftUseCase(catalog, fetcher, logger)

		adminMux := http.NewServeMux()
		mcphttp.NewHandlers(serveUC, invokeUC, driftUC, cfg.SwaggerURL(), logger).RegisterAdminRoutes(adminMux)
		adminServer := &http.Server{
			Addr:    cfg.AdminListenAddr,
			Handler: adminMux,
		}
		go func() {
			logger.Info("Admin HTTP server starting.", slog.String("address", adminServer.Addr))
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Admin HTTP server failed to start.", slog.Any("error", err))
			}
		}()

		// === MCP SSE Server Startup ===
		go func() {
			logger.Info("MCP SSE server starting.", slog.String("address", cfg.ListenAddr))
			if err := sseServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("MCP SSE server failed to start.", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		// === Server Shutdown ===
		logger.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Admin HTTP server graceful shutdown failed.", slog.Any("error", err))
		}

		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("MCP SSE server graceful shutdown failed.", slog.Any("error", err))
		}

		logger.Info("Servers shut down gracefully.")

	default:
		logger.Error("Invalid transport mode", slog.String("transport", transport))
		os.Exit(1)
	}
}
