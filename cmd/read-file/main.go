package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/Lllllllleong/translatorstorage/internal/config"
	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/server"
)

var (
	readFile http.HandlerFunc
	once     sync.Once
	initErr  error
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// "ReadFile" is the entry point name configured in GCP.
	functions.HTTP("ReadFile", handleReadFile)
}

// main is required by the Go Functions Framework.
func main() {}

func handleReadFile(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		var cfg *config.Config
		cfg, initErr = config.Load()
		if initErr != nil {
			return
		}
		// An unconfigured bucket still yields a handler; it answers with a JSON error.
		bucket, err := gcp.NewBucket(context.Background(), cfg.BucketName)
		if err != nil {
			slog.Warn("Storage client unavailable", "bucket", cfg.BucketName, "error", err)
		}
		readFile = server.ReadFileHandler(bucket)
	})
	if initErr != nil {
		slog.Error("Critical: ReadFile initialization failed", "error", initErr)
		http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
		return
	}
	readFile(w, r)
}
