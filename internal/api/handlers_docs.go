package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noahwilliamshaffer/resumesite/internal/docstore"
)

type documentResponse struct {
	docstore.DocumentFile
	SizeLabel string `json:"sizeLabel"`
}

// handleListDocuments lists the discoverable PDFs, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.List()
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentResponse{
			DocumentFile: d,
			SizeLabel:    docstore.FormatFileSize(d.Size),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

// handleOpenDocument creates a viewing session for a document and starts
// loading it in the background. Returns 202 with the initial snapshot.
func (s *Server) handleOpenDocument(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	doc, err := s.docs.BySlug(slug)
	if err != nil {
		jsonError(w, "failed to resolve document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	if doc.Size > s.cfg.MaxDocumentBytes {
		jsonError(w, "document exceeds size limit", http.StatusRequestEntityTooLarge)
		return
	}

	sess, err := s.sessions.Open(r.Context(), slug)
	if err != nil {
		jsonError(w, "failed to open document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, sess.Snapshot())
}
