// Package main is the entry point for the Travel Assistant API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/mgagnon/travel-assistant/internal/assist"
	"github.com/mgagnon/travel-assistant/internal/config"
	"github.com/mgagnon/travel-assistant/internal/handler"
	"github.com/mgagnon/travel-assistant/internal/middleware"
	"github.com/mgagnon/travel-assistant/internal/repo"
	"github.com/mgagnon/travel-assistant/internal/store"
	"github.com/mgagnon/travel-assistant/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Store ------------------------------------------------------------
	tripStore := store.New(repo.NewRecordRepo(pool), logger)
	if err := tripStore.Load(context.Background()); err != nil {
		slog.Error("failed to load persisted trip", "error", err)
		os.Exit(1)
	}

	// --- Assistant --------------------------------------------------------
	// The assistant is optional: without a provider credential the server
	// still runs and the chat endpoint reports the missing configuration.
	var assistant handler.Assistant
	if provider, err := buildProvider(context.Background(), cfg, logger); err != nil {
		slog.Error("failed to configure assistant", "error", err)
		os.Exit(1)
	} else if provider != nil {
		assistant = assist.NewClient(provider, logger)
		slog.Info("assistant configured", "provider", provider.Name())
	} else {
		slog.Warn("no assistant API key configured; chat endpoint disabled")
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(1 << 20))
	r.Use(middleware.NewCachePolicyHandler("/api"))

	routes := handler.NewServer(tripStore, assistant, logger).Routes()
	if cfg.StaticDir != "" {
		// Unmatched paths fall through to the SPA shell; the NotFound hook
		// must live on the router that actually matches the requests.
		mountStatic(routes, cfg.StaticDir)
	}
	r.Mount("/", routes)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves headroom for the chat endpoint's provider calls.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies any pending goose migrations from the embedded FS.
// goose needs a database/sql handle, so a short-lived one is opened here
// alongside the pgx pool the application uses.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// buildProvider selects the assistant backend from the configuration.
// It returns (nil, nil) when the selected provider has no API key.
func buildProvider(ctx context.Context, cfg config.Config, log *slog.Logger) (assist.Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, nil
		}
		model := ""
		if len(cfg.AIModels) > 0 {
			model = cfg.AIModels[0]
		}
		return assist.NewOpenAIProvider(cfg.OpenAIAPIKey, model)
	default:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return assist.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.AIModels, log)
	}
}

// mountStatic serves the SPA shell. Unknown paths fall back to index.html so
// client-side routing works on hard refresh.
func mountStatic(r chi.Router, dir string) {
	fs := http.FileServer(http.Dir(dir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(dir, "index.html"))
	})
}
