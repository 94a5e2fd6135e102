// Command matchbot is the main entrypoint for the match scheduling chat bot.
// It:
//   - Loads configuration and initializes structured logging.
//   - Restores the match roster and alias table from the data file; any
//     structural corruption there aborts startup.
//   - Connects to Twitch chat and processes !-commands on a single event loop.
//   - Exposes a minimal HTTP server with /healthz, /readyz, /status, /metrics.
//
// Shutdown is graceful on SIGINT/SIGTERM; the process also exits when the
// chat connection dies.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/onnwee/matchbot/bot"
	"github.com/onnwee/matchbot/config"
	"github.com/onnwee/matchbot/datafile"
	"github.com/onnwee/matchbot/schedule"
	"github.com/onnwee/matchbot/server"
	"github.com/onnwee/matchbot/telemetry"
	"github.com/onnwee/matchbot/twitch"
)

func main() {
	// Load .env file if present (local dev convenience only; production relies on real env)
	_ = godotenv.Load(".env")

	// Configure logging (level + format). Defaults: level=info, format=text.
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
		// keep default
	default:
		tmp := slog.New(slog.NewTextHandler(os.Stdout, nil))
		tmp.Warn("unknown LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}
	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))

	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := cfg.ValidateChatReady(); err != nil {
		slog.Error("chat config incomplete", slog.Any("err", err))
		os.Exit(1)
	}

	// Metrics / telemetry init
	telemetry.Init()

	// Initialize OpenTelemetry tracing (optional; requires OTEL_EXPORTER_OTLP_ENDPOINT)
	shutdownTracing, err := telemetry.InitTracing("matchbot", "1.0.0")
	if err != nil {
		slog.Error("tracing initialization failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer shutdownTracing()

	// Restore persisted state before accepting any command. Corruption here
	// is fatal by design: better to stop than to run on (and re-save) a
	// broken roster.
	state, err := datafile.Load(cfg.DataFile)
	if err != nil {
		slog.Error("data file load failed", slog.Any("err", err), slog.String("file", cfg.DataFile))
		os.Exit(1)
	}
	store := schedule.Restore(state.Matches, state.NextID)
	slog.Info("data file loaded",
		slog.String("file", cfg.DataFile),
		slog.Int("matches", store.Len()),
		slog.Int("aliases", state.Aliases.Len()),
		slog.Int("next_id", store.NextID()))

	// Root context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tw := twitch.New(cfg)
	b := bot.New(cfg, store, state.Aliases, tw)
	tw.Bind(b)

	go b.Run(ctx)

	// HTTP server (health/status/metrics)
	go func() {
		if err := server.Start(ctx, b, cfg.TwitchChannel, cfg.HTTPAddr); err != nil {
			slog.Error("http server exited with error", slog.Any("err", err))
		}
	}()

	// Block on the chat connection; when it dies (or a signal arrives), exit.
	chatDone := make(chan error, 1)
	go func() { chatDone <- tw.Run(ctx) }()

	select {
	case <-ctx.Done():
	case err := <-chatDone:
		if err != nil {
			slog.Error("chat transport failed", slog.Any("err", err))
		}
		stop()
	}
	slog.Info("shutting down")
}
