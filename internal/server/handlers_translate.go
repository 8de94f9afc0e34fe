package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/models"
	"golang.org/x/text/language"
)

const defaultTargetLanguage = "en"

const msgInvalidText = "Text must be a string or a list of strings"

// handleTranslate translates text given directly in the request. Unlike the
// per-file path, any translation failure fails the whole request.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if !s.translatorReady() {
		writeError(w, http.StatusInternalServerError, msgTranslationNotConfigured)
		return
	}

	var (
		single string
		list   []string
		isList bool
		target string
		source string
	)
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		single = q.Get("text")
		target = q.Get("target")
		source = q.Get("source")
	} else {
		req, ok := decodeTranslateRequest(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "No JSON data provided")
			return
		}
		single, list, isList, ok = decodeText(req.Text)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidText)
			return
		}
		target = req.Target
		source = req.Source
	}

	if target == "" {
		target = defaultTargetLanguage
	}
	if source == "" {
		source = models.AutoDetect
	}
	if (isList && len(list) == 0) || (!isList && single == "") {
		writeError(w, http.StatusBadRequest, "Text parameter is required")
		return
	}
	if msg, ok := validateLanguages(target, source); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var (
		translation any
		err         error
	)
	if isList {
		translation, err = s.translator.TranslateBatch(r.Context(), list, target, source)
	} else {
		translation, err = s.translator.Translate(r.Context(), single, target, source)
	}
	if err != nil {
		slog.Error("Direct translation failed", "target", target, "source", source, "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, models.TranslateResponse{
		Translation:    translation,
		TargetLanguage: target,
		SourceLanguage: source,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if !s.translatorReady() {
		writeError(w, http.StatusInternalServerError, msgTranslationNotConfigured)
		return
	}
	display := r.URL.Query().Get("target")
	if msg, ok := validateLanguages(display); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	languages, err := s.translator.SupportedLanguages(r.Context(), display)
	if err != nil {
		slog.Error("Failed to list supported languages", "error", err)
		writeError(w, http.StatusInternalServerError, gcp.ErrorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, models.LanguagesResponse{
		SupportedLanguages: languages,
		Count:              len(languages),
	})
}

// decodeTranslateRequest reads a POST body. A missing body, null, or an
// empty object all count as no data.
func decodeTranslateRequest(r *http.Request) (*models.TranslateRequest, bool) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		slog.Warn("Could not decode translate request body", "error", err)
		return nil, false
	}
	if len(fields) == 0 {
		return nil, false
	}

	req := &models.TranslateRequest{Text: fields["text"]}
	for key, dst := range map[string]*string{"target": &req.Target, "source": &req.Source} {
		raw, present := fields[key]
		if !present || isMissing(raw) {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			slog.Warn("Translate request field is not a string", "field", key, "error", err)
			return nil, false
		}
	}
	return req, true
}

// decodeText accepts either a JSON string or a JSON list of strings.
// A missing or null text decodes as an empty string.
func decodeText(raw json.RawMessage) (single string, list []string, isList bool, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", nil, false, true
	}
	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(raw, &single); err != nil {
			return "", nil, false, false
		}
		return single, nil, false, true
	case '[':
		if err := json.Unmarshal(raw, &list); err != nil {
			return "", nil, false, false
		}
		return "", list, true, true
	}
	return "", nil, false, false
}

// validateLanguages rejects codes that are not well-formed BCP 47 tags.
// Empty codes and the auto-detect sentinel are accepted; well-formed codes
// with unknown subtags are left for the translation service to judge.
func validateLanguages(codes ...string) (string, bool) {
	for _, code := range codes {
		if code == "" || code == models.AutoDetect {
			continue
		}
		_, err := language.Parse(code)
		if err == nil {
			continue
		}
		var unknown language.ValueError
		if errors.As(err, &unknown) {
			continue
		}
		return "Invalid language code: " + code, false
	}
	return "", true
}
