package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vellum-dev/vellum/pkg/render"
)

// ErrNilPage is returned to handlers that produce a nil document
// without an error.
var ErrNilPage = errors.New("server: page returned nil document")

// PageFunc produces the document for one request. Returning an error
// renders the error page with status 500.
type PageFunc func(r *http.Request) (*render.Document, error)

// Config configures a Server. The zero value serves compact output on
// the default chunk size with no dev features.
type Config struct {
	// Addr is the listen address for ListenAndServe, e.g. ":8080".
	Addr string

	// Render configures document rendering.
	Render render.Config

	// ChunkSize is the streaming chunk size in bytes. Values below 1
	// use render.DefaultChunkSize.
	ChunkSize int

	// Dev enables the live-reload hub and script injection.
	Dev bool

	// Logger receives request and error logs. Nil uses slog.Default().
	Logger *slog.Logger
}

// Server serves rendered documents over HTTP, streaming each response
// progressively as it renders.
type Server struct {
	cfg    Config
	log    *slog.Logger
	router chi.Router

	metrics *metrics
	tracer  *tracing
	reload  *ReloadHub
}

// Option configures optional server features.
type Option func(*Server)

// New creates a Server with its routes mounted.
func New(cfg Config, opts ...Option) *Server {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		log:    log,
		router: chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(s.requestLogger)
	if s.metrics != nil {
		s.router.Use(s.metrics.middleware)
	}
	if s.tracer != nil {
		s.router.Use(s.tracer.middleware)
	}

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.Dev {
		s.reload = NewReloadHub()
		s.router.Get(reloadPath, s.reload.ServeWebSocket)
	}

	return s
}

// Handle registers a page at a chi route pattern.
func (s *Server) Handle(pattern string, page PageFunc) {
	s.router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, r, page)
	})
}

// Handler returns the server's HTTP handler for mounting elsewhere.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until the listener
// fails or the process exits.
func (s *Server) ListenAndServe() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	s.log.Info("listening", "addr", addr, "dev", s.cfg.Dev)
	return http.ListenAndServe(addr, s.router)
}

// Reload returns the live-reload hub, or nil when Dev is off.
func (s *Server) Reload() *ReloadHub {
	return s.reload
}

// servePage renders one document progressively into the response.
// Each chunk is written and, when the writer supports it, flushed so
// the client sees bytes while traversal is still running.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, page PageFunc) {
	doc, err := page(r)
	if err == nil && doc == nil {
		err = ErrNilPage
	}
	if err != nil {
		s.log.Error("page failed", "path", r.URL.Path, "error", err)
		s.serveErrorPage(w, r, err)
		return
	}

	if s.cfg.Dev && s.reload != nil {
		doc = withReloadScript(doc)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	flusher, _ := w.(http.Flusher)
	renderer := render.New(s.cfg.Render)
	written := 0
	chunks := 0
	for chunk := range renderer.StreamDocument(r.Context(), doc, s.cfg.ChunkSize) {
		n, err := w.Write(chunk)
		written += n
		chunks++
		if err != nil {
			s.log.Debug("client gone", "path", r.URL.Path, "error", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	if s.metrics != nil {
		s.metrics.observeStream(written, chunks)
	}
}
