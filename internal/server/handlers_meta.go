package server

import (
	"net/http"

	"github.com/Lllllllleong/translatorstorage/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:                   "healthy",
		Service:                  s.opts.ServiceName,
		BucketConfigured:         s.opts.BucketName != "",
		StorageClientReady:       s.storeReady(),
		TranslationClientReady:   s.translatorReady(),
		SummarizationClientReady: s.summarizerReady(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	root := urlRoot(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  "Translator Storage API",
		"version":  s.opts.Version,
		"bucket":   s.opts.BucketName,
		"project":  s.opts.ProjectID,
		"features": []string{"storage", "translation", "summarization"},
		"endpoints": map[string]string{
			"health":              "/health",
			"list_files":          "/files",
			"get_file":            "/file/<filename>?lang=<target_lang>&source=<source_lang>",
			"translate_direct":    "/translate?text=<text>&target=<lang>&source=<lang>",
			"supported_languages": "/languages",
			"upload_file":         "/upload (POST)",
			"summarize_file":      "/summarize/<filename>?prompt=<instructions>&max_length=<words>",
			"info":                "/info",
		},
		"examples": map[string]string{
			"list_files":          root + "files",
			"get_file":            root + "file/info.json",
			"get_file_translated": root + "file/welcome.txt?lang=es",
			"translate_text":      root + "translate?text=Hello%20World&target=es",
			"summarize_file":      root + "summarize/info.json?max_length=50",
			"health_check":        root + "health",
			"supported_languages": root + "languages",
		},
		"translation_info": map[string]any{
			"supported_params": map[string]string{
				"lang or target": "Target language code (e.g., es, fr, de)",
				"source":         "Source language code (default: auto)",
			},
			"examples": map[string]string{
				"spanish":              "?lang=es",
				"french":               "?lang=fr",
				"german":               "?lang=de",
				"detect_and_translate": "?lang=es&source=auto",
			},
		},
		"summarization_info": map[string]any{
			"supported_params": map[string]string{
				"prompt":     "Additional instructions for the summary",
				"max_length": "Approximate summary length in words (positive integer)",
			},
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgEndpointNotFound)
}

// urlRoot rebuilds the externally visible base URL, honouring the proxy
// header set by Cloud Run's front end.
func urlRoot(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + "/"
}
