package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
	"github.com/noahwilliamshaffer/resumesite/internal/searchindex"
	"github.com/noahwilliamshaffer/resumesite/internal/viewer"
)

func (s *Server) session(w http.ResponseWriter, r *http.Request) *viewer.Session {
	id := chi.URLParam(r, "sessionID")
	sess := s.sessions.Get(id)
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
	}
	return sess
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleSessionPage returns one page's extracted text and layout
// fragments. 404 for pages outside [1, numPages]; 409 while the document
// is still decoding.
func (s *Server) handleSessionPage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	n, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		jsonError(w, "invalid page number", http.StatusBadRequest)
		return
	}

	snap := sess.Snapshot()
	if snap.Status == viewer.StatusFailed {
		jsonError(w, "document failed to load: "+snap.Error, http.StatusConflict)
		return
	}
	if snap.NumPages == 0 {
		jsonError(w, "document still loading", http.StatusConflict)
		return
	}

	info := sess.Page(n)
	if info == nil {
		jsonError(w, "page not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleSessionTOC(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	toc := sess.TOC()
	if toc == nil {
		toc = []pdf.TOCEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"toc": toc, "ready": sess.Snapshot().Status == viewer.StatusReady})
}

func (s *Server) handleSessionSearch(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	query := r.URL.Query().Get("q")
	results := sess.Search(r.Context(), query)
	if results == nil {
		results = []searchindex.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.sessions.Close(id) {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}
