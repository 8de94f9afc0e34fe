package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lllllllleong/translatorstorage/internal/models"
	"github.com/Lllllllleong/translatorstorage/internal/services"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// ObjectStore is the storage gateway the HTTP surface reads and writes through.
type ObjectStore interface {
	Ready() bool
	Name() string
	Exists(ctx context.Context, name string) (bool, error)
	Read(ctx context.Context, name string) (*models.StoredObject, error)
	Write(ctx context.Context, name, content, contentType string) (int64, error)
	List(ctx context.Context) ([]models.FileInfo, error)
}

// LanguageTranslator is a translator that can also list its languages.
type LanguageTranslator interface {
	services.Translator
	SupportedLanguages(ctx context.Context, displayLang string) ([]models.Language, error)
}

// Deps are the external-service handles, built once at startup.
type Deps struct {
	Store      ObjectStore
	Translator LanguageTranslator
	Summarizer services.Summarizer
}

// Options describe the deployment for /health and /info.
type Options struct {
	ServiceName string
	Version     string
	BucketName  string
	ProjectID   string
}

// Server binds the storage, translation and summarization handles to HTTP routes.
type Server struct {
	store      ObjectStore
	translator LanguageTranslator
	summarizer services.Summarizer
	dispatcher *services.Dispatcher
	summaries  *services.SummaryService
	opts       Options
}

func New(deps Deps, opts Options) *Server {
	if opts.ServiceName == "" {
		opts.ServiceName = "translator-storage-api"
	}
	return &Server{
		store:      deps.Store,
		translator: deps.Translator,
		summarizer: deps.Summarizer,
		dispatcher: services.NewDispatcher(deps.Translator),
		summaries:  services.NewSummaryService(deps.Summarizer),
		opts:       opts,
	}
}

// Handler returns the routed, instrumented HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /info", s.handleInfo)
	mux.HandleFunc("GET /files", s.handleListFiles)
	mux.HandleFunc("GET /file/{name...}", s.handleGetFile)
	mux.HandleFunc("GET /translate", s.handleTranslate)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("GET /languages", s.handleLanguages)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /summarize/{name...}", s.handleSummarize)
	mux.HandleFunc("/", s.handleNotFound)

	return accessLog(recoverer(mux))
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("HTTP server listening.", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down HTTP server.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) storeReady() bool {
	return s.store != nil && s.store.Ready()
}

func (s *Server) translatorReady() bool {
	return s.translator != nil && s.translator.Ready()
}

func (s *Server) summarizerReady() bool {
	return s.summarizer != nil && s.summarizer.Ready()
}
