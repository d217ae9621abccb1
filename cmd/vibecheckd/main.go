// VibeCheck API server — exposes the REST surface, manages the queue
// workers, and holds the tunnel channels for robust scans.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/api"
	"github.com/vibecheck/vibecheck/pkg/cleanup"
	"github.com/vibecheck/vibecheck/pkg/config"
	"github.com/vibecheck/vibecheck/pkg/database"
	"github.com/vibecheck/vibecheck/pkg/llm"
	"github.com/vibecheck/vibecheck/pkg/probe"
	"github.com/vibecheck/vibecheck/pkg/queue"
	"github.com/vibecheck/vibecheck/pkg/scan/robust"
	"github.com/vibecheck/vibecheck/pkg/scan/static"
	"github.com/vibecheck/vibecheck/pkg/services"
	"github.com/vibecheck/vibecheck/pkg/tunnel"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server and workers.
const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, continuing with existing environment")
	}

	settings := config.Load()

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting vibecheck",
		"http_port", settings.HTTPPort,
		"workers", settings.QueueWorkers)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("error closing database client", "error", err)
		}
	}()
	logger.Info("connected to PostgreSQL database")

	// Tunnel plumbing first: the assessment service checks channel liveness
	// when a robust request references a tunnel session.
	tunnelSessions := services.NewTunnelService(dbClient.Client)
	tunnelManager := tunnel.NewManager(tunnelSessions, logger)

	assessments := services.NewAssessmentService(dbClient.Client, tunnelManager)
	findings := services.NewFindingService(dbClient.Client)
	logs := services.NewLogService(dbClient.Client)

	// Robust scans need Gemini; absence is surfaced per assessment, not at
	// startup, so lightweight-only deployments work without the key.
	var geminiClient llm.Client
	if settings.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, settings.GeminiAPIKey, settings.GeminiModel)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		geminiClient = client
		logger.Info("gemini client initialized", "model", settings.GeminiModel)
	} else {
		logger.Warn("GEMINI_API_KEY not set, robust scans will fail")
	}

	contextual, err := static.NewContextualAnalyzer(settings.OpenAIAPIKey, settings.OpenAIModel)
	if err != nil {
		logger.Error("failed to create openai client", "error", err)
		os.Exit(1)
	}
	if contextual == nil {
		logger.Info("OPENAI_API_KEY not set, contextual analysis disabled")
	}

	lightweight := static.NewRunner(assessments, findings, settings.CloneDir, contextual, logger)

	directProber := probe.New(probe.DefaultTimeout)
	proberFor := func(a *ent.Assessment) robust.Doer {
		if a.TunnelSessionID != nil && *a.TunnelSessionID != "" {
			return tunnel.NewProber(tunnelManager, *a.TunnelSessionID)
		}
		return directProber
	}
	orchestrator := robust.NewOrchestrator(assessments, findings, logs, geminiClient, proberFor, logger)

	// Assessments stranded in a working status by a previous crash go back
	// to the queue before the workers start polling.
	if n, err := assessments.RequeueStuck(ctx); err != nil {
		logger.Error("failed to requeue stuck assessments", "error", err)
	} else if n > 0 {
		logger.Info("requeued stuck assessments", "count", n)
	}

	dispatcher := &queue.ModeDispatcher{Lightweight: lightweight, Robust: orchestrator}
	pool := queue.NewPool(settings.QueueWorkers, assessments, dispatcher, logger)
	pool.Start(ctx)

	retention := cleanup.NewService(settings, assessments, tunnelSessions, logger)
	retention.Start(ctx)

	server := api.NewServer(dbClient, assessments, findings, logs, tunnelSessions, tunnelManager, pool, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", settings.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		logger.Error("server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}

	retention.Stop()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("worker pool stopped")
	case <-shutdownCtx.Done():
		logger.Warn("worker pool shutdown timeout exceeded")
	}

	logger.Info("vibecheck stopped")
}
