// Package viewer ties one loaded document to its derived state: text
// extraction, search index, and inferred TOC, built in the background
// after the session is created. Sessions live in a TTL store and are
// destroyed on expiry or explicit close.
package viewer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
	"github.com/noahwilliamshaffer/resumesite/internal/searchindex"
)

// SessionStatus is the lifecycle state of a viewing session.
type SessionStatus string

const (
	StatusLoading SessionStatus = "loading"
	StatusReady   SessionStatus = "ready"
	StatusFailed  SessionStatus = "failed"
)

// Session owns one loaded document and everything derived from it. All
// exported methods are safe for concurrent use.
type Session struct {
	ID       string
	Slug     string
	Filename string

	mu            sync.Mutex
	status        SessionStatus
	phase         string
	progress      float64
	errMsg        string
	proc          *pdf.Processor
	index         *searchindex.Index
	toc           []pdf.TOCEntry
	chunks        int
	requestedPage int
	updatedAt     time.Time
	closed        bool

	log *slog.Logger
}

// Snapshot is a JSON-safe copy of session state for status polling.
type Snapshot struct {
	ID          string        `json:"sessionId"`
	Slug        string        `json:"slug"`
	Filename    string        `json:"filename"`
	Status      SessionStatus `json:"status"`
	Phase       string        `json:"phase"`
	Progress    float64       `json:"progress"`
	Error       string        `json:"error,omitempty"`
	NumPages    int           `json:"numPages"`
	Chunks      int           `json:"chunks"`
	Metadata    *pdf.Metadata `json:"metadata,omitempty"`
	CurrentPage int           `json:"currentPage"`
}

func newSession(slug, filename string, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		ID:            uuid.NewString(),
		Slug:          slug,
		Filename:      filename,
		status:        StatusLoading,
		phase:         "loading",
		requestedPage: 1,
		updatedAt:     time.Now(),
		log:           log,
	}
}

// load runs the full build pass: decode, per-page extract+index, TOC.
// Page-level failures are local; only decode failure fails the session.
func (s *Session) load(ctx context.Context, engine pdf.Engine, data []byte) {
	proc, err := pdf.Load(engine, data)
	if err != nil {
		s.fail(err)
		return
	}

	index, err := searchindex.New(ctx, s.log)
	if err != nil {
		proc.Destroy()
		s.fail(err)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		proc.Destroy()
		index.Close()
		return
	}
	s.proc = proc
	s.index = index
	s.phase = "extracting"
	s.updatedAt = time.Now()
	s.mu.Unlock()

	numPages := proc.NumPages()
	chunks := 0
	for n := 1; n <= numPages; n++ {
		if ctx.Err() != nil {
			return
		}
		if info := proc.ExtractPageText(n); info != nil {
			added, err := index.AddPage(ctx, n, info.Text)
			if err != nil {
				s.log.Warn("page indexing failed", "session", s.ID, "page", n, "error", err)
			}
			chunks += added
		}
		s.setProgress(float64(n)/float64(numPages)*100, chunks)
	}

	toc := proc.GenerateTOC()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.toc = toc
	s.status = StatusReady
	s.phase = "ready"
	s.progress = 100
	s.updatedAt = time.Now()
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.phase = "failed"
	s.errMsg = err.Error()
	s.updatedAt = time.Now()
	s.log.Warn("session load failed", "session", s.ID, "slug", s.Slug, "error", err)
}

// setProgress only moves forward; late page callbacks never regress the
// reported percentage.
func (s *Session) setProgress(pct float64, chunks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pct > s.progress {
		s.progress = pct
	}
	s.chunks = chunks
	s.updatedAt = time.Now()
}

// Page extracts one page and records it as the most recently requested.
// Returns nil out of range or before the document finished decoding.
func (s *Session) Page(n int) *pdf.PageInfo {
	s.mu.Lock()
	proc := s.proc
	if proc != nil && n >= 1 && n <= proc.NumPages() {
		s.requestedPage = n
	}
	s.mu.Unlock()
	if proc == nil {
		return nil
	}
	info := proc.ExtractPageText(n)

	// A later request may have superseded this one; the extraction is
	// memoized, so returning it is still cheap and correct.
	return info
}

// TOC returns the inferred outline, nil until the build pass finishes.
func (s *Session) TOC() []pdf.TOCEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toc
}

// Search queries whatever has been indexed so far. During a build pass
// this covers only the pages already processed.
func (s *Session) Search(ctx context.Context, query string) []searchindex.Result {
	s.mu.Lock()
	index := s.index
	s.mu.Unlock()
	if index == nil {
		return nil
	}
	return index.Search(ctx, query)
}

// Snapshot returns a copy of the session state for status responses.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.ID,
		Slug:        s.Slug,
		Filename:    s.Filename,
		Status:      s.status,
		Phase:       s.phase,
		Progress:    s.progress,
		Error:       s.errMsg,
		Chunks:      s.chunks,
		CurrentPage: s.requestedPage,
	}
	if s.proc != nil {
		snap.NumPages = s.proc.NumPages()
		meta := s.proc.Metadata()
		snap.Metadata = &meta
	}
	return snap
}

func (s *Session) touched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Close destroys the processor and index. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.proc != nil {
		s.proc.Destroy()
	}
	if s.index != nil {
		s.index.Close()
	}
}
