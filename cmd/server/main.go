package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lllllllleong/translatorstorage/internal/config"
	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; Cloud Run injects the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not read .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// --- Set up structured logging ---
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Clients that fail to initialize stay in place and report themselves as not ready.
	bucket, err := gcp.NewBucket(ctx, cfg.BucketName)
	if err != nil {
		slog.Warn("Storage client unavailable", "bucket", cfg.BucketName, "error", err)
	}
	defer bucket.Close()

	translator, err := gcp.NewTranslator(ctx, cfg.ProjectID)
	if err != nil {
		slog.Warn("Translation client unavailable", "project", cfg.ProjectID, "error", err)
	}
	defer translator.Close()

	vertex, err := gcp.NewVertexClient(ctx, cfg.ProjectID, cfg.VertexAIRegion, cfg.SummaryModel)
	if err != nil {
		slog.Warn("Summarization client unavailable", "region", cfg.VertexAIRegion, "model", cfg.SummaryModel, "error", err)
	}
	defer vertex.Close()

	slog.Info("Starting translator storage service.",
		"bucket", cfg.BucketName,
		"storageReady", bucket.Ready(),
		"translationReady", translator.Ready(),
		"summarizationReady", vertex.Ready(),
	)

	srv := server.New(server.Deps{
		Store:      bucket,
		Translator: translator,
		Summarizer: vertex,
	}, server.Options{
		Version:    cfg.Version,
		BucketName: cfg.BucketName,
		ProjectID:  cfg.ProjectID,
	})
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
