package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/Adiwanwade/aurora/internal/config"
	"github.com/Adiwanwade/aurora/internal/env"
	"github.com/Adiwanwade/aurora/internal/fetch"
	"github.com/Adiwanwade/aurora/internal/logger"
	serverhttp "github.com/Adiwanwade/aurora/internal/server/http"
	"github.com/Adiwanwade/aurora/internal/service"
	"github.com/Adiwanwade/aurora/internal/xfs"
)

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", config.DefaultHTTPPort(), "HTTP port to listen on")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "aurora.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/aurora.log"),
		),
	)

	manager := service.NewEngineManager()

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		if err := manager.LoadFromConfig(cfg); err != nil {
			slog.Error("Failed to wire engines from config", "error", err)
			return
		}
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	cfg := watcher.Snapshot()
	if err := manager.LoadFromConfig(cfg); err != nil {
		slog.Error("Failed to wire engines from config", "error", err)
		return
	}

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	stagingDir := cfg.Staging.Dir
	if stagingDir == "" {
		stagingDir = config.DefaultStagingPath()
	}
	stagingDir = xfs.ExpandTilde(stagingDir)
	if err := xfs.EnsureDir(stagingDir); err != nil {
		slog.Error("Failed to prepare staging directory", "dir", stagingDir, "error", err)
		return
	}

	fetcher := fetch.NewClient(
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
		cfg.Fetch.CacheEntries,
	)

	dispatcher := service.NewDispatcher(manager.Registry, fetcher, stagingDir)

	port := cfg.Server.HTTPPort
	if port == 0 {
		port = *flagHTTPPort
	}

	server := serverhttp.NewServer(cfg.Server.Host, port, cfg.Version, dispatcher)

	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
	}

	if err := manager.Close(); err != nil {
		slog.Error("Failed to close engines", "error", err)
	}
}
