package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ecoeval/internal/api"
	"github.com/katalvlaran/ecoeval/internal/config"
	"github.com/katalvlaran/ecoeval/internal/metrics"
	"github.com/katalvlaran/ecoeval/pipeline"
	"github.com/katalvlaran/ecoeval/schema"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	jobPath := flag.String("job", "", "evaluate one job file, print the result as JSON and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// In job mode stdout carries the result, so logs go to stderr.
	logOut := io.Writer(os.Stdout)
	if *jobPath != "" {
		logOut = os.Stderr
	}
	logger := newLogger(cfg.Logging, logOut)
	slog.SetDefault(logger)

	if *jobPath != "" {
		if err := runJob(*jobPath, cfg, os.Stdout, logger); err != nil {
			logger.Error("job failed", "job", *jobPath, "error", err)
			os.Exit(1)
		}
		return
	}

	serve(cfg, logger)
}

func newLogger(lc config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// runJob evaluates the job at path and writes the pipeline response to out.
func runJob(path string, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	job, err := schema.Load(path)
	if err != nil {
		return err
	}
	job.ApplyDefaults(cfg.Defaults())
	in, err := job.Input()
	if err != nil {
		return err
	}
	res, err := pipeline.Run(in)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	for _, w := range res.Warnings {
		logger.Warn("evaluation warning", "run_id", runID, "warning", w.Error())
	}
	logger.Info("job evaluated", "run_id", runID, "alternatives", in.Raw.Rows(), "indicators", in.Raw.Cols())

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(api.NewPipelineResponse(runID, job.Alternatives, res))
}

func serve(cfg *config.Config, logger *slog.Logger) {
	m := metrics.New()

	// API server
	router := api.NewRouter(cfg, m, logger)
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
