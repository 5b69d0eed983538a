package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/noahwilliamshaffer/resumesite/internal/config"
	"github.com/noahwilliamshaffer/resumesite/internal/docstore"
	"github.com/noahwilliamshaffer/resumesite/internal/resume"
	"github.com/noahwilliamshaffer/resumesite/internal/viewer"
)

// Server is the HTTP API for document viewing and the parsed resume.
type Server struct {
	router   chi.Router
	docs     *docstore.Store
	sessions *viewer.Manager
	resume   *resume.Service
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(docs *docstore.Store, sessions *viewer.Manager, svc *resume.Service, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		docs:     docs,
		sessions: sessions,
		resume:   svc,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/documents", s.handleListDocuments)
		r.Post("/documents/{slug}/open", s.handleOpenDocument)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleSessionStatus)
			r.Get("/pages/{page}", s.handleSessionPage)
			r.Get("/toc", s.handleSessionTOC)
			r.Get("/search", s.handleSessionSearch)
			r.Delete("/", s.handleCloseSession)
		})

		r.Get("/resume", s.handleResume)
		r.Get("/resume/html", s.handleResumeHTML)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
