package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lllllllleong/translatorstorage/internal/models"
)

// ReadFileHandler serves the raw text of the object named by the request path.
// It backs the single-purpose ReadFile Cloud Function.
func ReadFileHandler(store ObjectStore) http.HandlerFunc {
	s := &Server{store: store}
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.storeReady() {
			writeError(w, http.StatusInternalServerError, msgStorageNotConfigured)
			return
		}
		name := strings.Trim(r.URL.Path, "/")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Filename not provided in the URL path.")
			return
		}

		obj, ok := s.fetch(w, r, slog.With("filename", name), name)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.RawFileResponse{
			Filename:    name,
			ContentType: obj.ContentType,
			Size:        obj.Size,
			Data:        obj.Content,
		})
	}
}
