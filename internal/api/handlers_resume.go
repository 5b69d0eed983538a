package api

import (
	"net/http"

	"github.com/noahwilliamshaffer/resumesite/internal/render"
)

// handleResume returns the parsed resume with overrides applied.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	rs, err := s.resume.Resume(r.Context())
	if err != nil {
		jsonError(w, "failed to load resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

// handleResumeHTML serves the resume rendered to sanitized HTML.
func (s *Server) handleResumeHTML(w http.ResponseWriter, r *http.Request) {
	rs, err := s.resume.Resume(r.Context())
	if err != nil {
		jsonError(w, "failed to load resume: "+err.Error(), http.StatusInternalServerError)
		return
	}

	html, err := render.ResumeHTML(rs)
	if err != nil {
		jsonError(w, "failed to render resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
