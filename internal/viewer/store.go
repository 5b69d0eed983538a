package viewer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/noahwilliamshaffer/resumesite/internal/docstore"
	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
)

// Manager opens documents into sessions and evicts idle ones. Sessions
// expire after ttl without a status poll, page fetch, or search.
type Manager struct {
	docs   *docstore.Store
	engine pdf.Engine
	ttl    time.Duration
	log    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(docs *docstore.Store, engine pdf.Engine, ttl time.Duration, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		docs:     docs,
		engine:   engine,
		ttl:      ttl,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Open resolves a document slug, creates a session, and starts the build
// pass in the background. The returned session is immediately pollable.
func (m *Manager) Open(ctx context.Context, slug string) (*Session, error) {
	doc, err := m.docs.BySlug(slug)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no document with slug %q", slug)
	}

	data, err := m.docs.Read(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pdf.ErrUnavailable, err)
	}

	s := newSession(slug, doc.Filename, m.log)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Info("session opened", "session", s.ID, "slug", slug, "bytes", len(data))
	// The build pass outlives the open request.
	go s.load(context.WithoutCancel(ctx), m.engine, data)
	return s, nil
}

// Get looks a session up by ID, nil when unknown or expired.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Close destroys a session and removes it from the store. Reports
// whether the session existed.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

// Cleanup evicts sessions idle past the TTL.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	var expired []*Session
	now := time.Now()
	for id, s := range m.sessions {
		if now.Sub(s.touched()) > m.ttl {
			delete(m.sessions, id)
			expired = append(expired, s)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		m.log.Info("session expired", "session", s.ID, "slug", s.Slug)
		s.Close()
	}
}

// Run periodically evicts expired sessions until ctx is cancelled, then
// closes everything left.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			remaining := make([]*Session, 0, len(m.sessions))
			for id, s := range m.sessions {
				delete(m.sessions, id)
				remaining = append(remaining, s)
			}
			m.mu.Unlock()
			for _, s := range remaining {
				s.Close()
			}
			return
		case <-ticker.C:
			m.Cleanup()
		}
	}
}
