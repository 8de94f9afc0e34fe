package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/models"
	"github.com/Lllllllleong/translatorstorage/internal/services"
)

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	if !s.storeReady() {
		writeError(w, http.StatusInternalServerError, msgStorageNotConfigured)
		return
	}

	files, err := s.store.List(r.Context())
	if err != nil {
		slog.Error("Failed to list files", "bucket", s.store.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, models.FileListResponse{
		Bucket: s.store.Name(),
		Files:  files,
		Count:  len(files),
	})
}

// handleGetFile fetches one object and optionally translates it. Translation
// problems are reported inside the body; they never change the status code.
func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	if !s.storeReady() {
		writeError(w, http.StatusInternalServerError, msgStorageNotConfigured)
		return
	}
	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Filename not provided")
		return
	}

	q := r.URL.Query()
	target := q.Get("lang")
	if target == "" {
		target = q.Get("target")
	}
	source := q.Get("source")
	if source == "" {
		source = models.AutoDetect
	}
	// Language codes go to the translator unchecked; a rejected code shows up
	// as a translation error in the body.
	logCtx := slog.With("filename", name, "target", target)
	obj, ok := s.fetch(w, r, logCtx, name)
	if !ok {
		return
	}

	content := s.dispatcher.ClassifyAndTranslate(r.Context(), obj.Content, target, source)
	logCtx.Info("File served.", "format", content.Format, "translated", content.TranslatedData != nil)
	writeJSON(w, http.StatusOK, models.FileResponse{
		Filename:    name,
		ContentType: obj.ContentType,
		Size:        obj.Size,
		Content:     content,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.storeReady() {
		writeError(w, http.StatusInternalServerError, msgStorageNotConfigured)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Could not decode upload request body", "error", err)
		writeError(w, http.StatusBadRequest, "Missing filename or content")
		return
	}
	if req.Filename == "" || isMissing(req.Content) {
		writeError(w, http.StatusBadRequest, "Missing filename or content")
		return
	}

	contentType := contentTypeFor(req.Filename)
	content, err := uploadBody(req.Content, contentType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.store.Write(r.Context(), req.Filename, content, contentType); err != nil {
		slog.Error("Failed to upload file", "filename", req.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return
	}

	slog.Info("File uploaded.", "filename", req.Filename, "contentType", contentType, "bytes", len(content))
	writeJSON(w, http.StatusOK, models.UploadResponse{
		Message:  fmt.Sprintf("File %s uploaded successfully", req.Filename),
		Filename: req.Filename,
		Size:     len(content),
		URL:      models.FileURL(req.Filename),
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if !s.storeReady() {
		writeError(w, http.StatusInternalServerError, msgStorageNotConfigured)
		return
	}
	if !s.summarizerReady() {
		writeError(w, http.StatusInternalServerError, msgSummarizationNotConfigured)
		return
	}
	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Filename not provided")
		return
	}

	q := r.URL.Query()
	maxLength, err := parseMaxLength(q.Get("max_length"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := services.SummaryOptions{
		CustomPrompt: q.Get("prompt"),
		MaxLength:    maxLength,
	}

	logCtx := slog.With("filename", name)
	obj, ok := s.fetch(w, r, logCtx, name)
	if !ok {
		return
	}

	result, format, err := s.summaries.Summarize(r.Context(), obj.Content, opts)
	if errors.Is(err, services.ErrEmptyContent) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File %s has no content to summarize", name))
		return
	}
	if err != nil {
		logCtx.Error("Summarization failed", "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return
	}

	logCtx.Info("File summarized.", "format", format, "summaryChars", result.SummaryLength)
	writeJSON(w, http.StatusOK, models.SummaryResponse{
		Filename:       name,
		OriginalFormat: format,
		SummaryResult:  *result,
		MaxLength:      opts.MaxLength,
		CustomPrompt:   strings.TrimSpace(opts.CustomPrompt),
	})
}

// fetch checks existence and downloads an object, writing the error response
// itself when it returns false.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request, logCtx *slog.Logger, name string) (*models.StoredObject, bool) {
	notFound := fmt.Sprintf("File %s not found", name)

	exists, err := s.store.Exists(r.Context(), name)
	if err != nil {
		logCtx.Error("Failed to check object existence", "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return nil, false
	}
	if !exists {
		writeError(w, http.StatusNotFound, notFound)
		return nil, false
	}

	obj, err := s.store.Read(r.Context(), name)
	if errors.Is(err, gcp.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFound)
		return nil, false
	}
	if err != nil {
		logCtx.Error("Failed to read object", "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return nil, false
	}
	return obj, true
}

// parseMaxLength validates the optional word-count hint. Empty means no hint.
func parseMaxLength(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, errors.New("max_length must be a positive integer")
	}
	return n, nil
}

func contentTypeFor(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func isMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// uploadBody turns the request content into the text to store. JSON objects
// are accepted for .json files and stored indented, keys in request order.
func uploadBody(raw json.RawMessage, contentType string) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", errors.New("content must be a valid JSON string")
		}
		return s, nil
	}
	if contentType == "application/json" && trimmed[0] == '{' {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, trimmed, "", "  "); err != nil {
			return "", errors.New("content must be a valid JSON object")
		}
		return pretty.String(), nil
	}
	return "", errors.New("content must be a string, or a JSON object for .json files")
}
