package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lllllllleong/translatorstorage/internal/models"
)

const (
	msgStorageNotConfigured       = "Storage client not configured"
	msgTranslationNotConfigured   = "Translation client not configured"
	msgSummarizationNotConfigured = "Summarization client not configured"
	msgEndpointNotFound           = "Endpoint not found"
	msgInternalError              = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
