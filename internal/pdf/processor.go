package pdf

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Processor owns one loaded document and its derived state: the per-page
// extraction cache, the concatenated full text, and the inferred TOC.
// One processor serves one loading session; Destroy releases everything.
type Processor struct {
	mu       sync.Mutex
	doc      Document
	numPages int
	meta     Metadata
	fpr      string
	pages    map[int]*PageInfo
	text     string
	textSet  bool
}

// Load decodes an in-memory PDF and returns a processor for it.
// Fails with ErrUnreadable when the bytes are not a valid PDF.
func Load(engine Engine, data []byte) (*Processor, error) {
	doc, err := engine.Open(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &Processor{
		doc:      doc,
		numPages: doc.NumPages(),
		meta:     doc.Metadata(),
		fpr:      fingerprint(data),
		pages:    make(map[int]*PageInfo),
	}, nil
}

// LoadURL fetches a PDF over HTTP and loads it. Retrieval failures surface
// as ErrUnavailable; decode failures as ErrUnreadable.
func LoadURL(ctx context.Context, client *http.Client, engine Engine, url string, maxBytes int64) (*Processor, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d fetching %s", ErrUnavailable, resp.StatusCode, url)
	}
	// Read one byte past the limit so an oversized body is detected instead
	// of silently truncated into a partial parse.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrUnavailable, maxBytes)
	}
	return Load(engine, data)
}

// fingerprint is a stable content identity for caching, SHA-256 over the
// source bytes.
func fingerprint(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:16])
}

// NumPages returns the page count, 0 after Destroy.
func (p *Processor) NumPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return 0
	}
	return p.numPages
}

// Metadata returns the document information record.
func (p *Processor) Metadata() Metadata {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.meta
}

// Fingerprint returns the stable content identity of the loaded bytes.
func (p *Processor) Fingerprint() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fpr
}

// GetPage returns the decoded page n, or nil when n is outside
// [1, numPages] or the document has been destroyed or the page fails to
// decode. It never returns an error: page failures are local.
func (p *Processor) GetPage(n int) Page {
	p.mu.Lock()
	doc := p.doc
	num := p.numPages
	p.mu.Unlock()

	if doc == nil || n < 1 || n > num {
		return nil
	}
	pg, err := doc.Page(n)
	if err != nil {
		return nil
	}
	return pg
}

// ExtractPageText returns the extracted state of page n, memoized by page
// number: a second call returns the cached value without recomputation.
// Returns nil outside [1, numPages] or when the page cannot be decoded.
func (p *Processor) ExtractPageText(n int) *PageInfo {
	p.mu.Lock()
	if info, ok := p.pages[n]; ok {
		p.mu.Unlock()
		return info
	}
	p.mu.Unlock()

	pg := p.GetPage(n)
	if pg == nil {
		return nil
	}

	frags := pg.Fragments()
	w, h := pg.Size()

	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	// Content-stream order, whitespace runs collapsed, ends trimmed.
	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")

	info := &PageInfo{
		PageNumber: n,
		Width:      w,
		Height:     h,
		Text:       text,
		Fragments:  frags,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// First extraction wins so concurrent callers observe one value.
	if cached, ok := p.pages[n]; ok {
		return cached
	}
	if p.doc == nil {
		return nil
	}
	p.pages[n] = info
	return info
}

// ProgressFunc receives extraction progress as a percentage in (0, 100].
type ProgressFunc func(percent float64)

// ExtractAllText sequentially extracts every page and returns the page
// texts joined with blank-line separators. onProgress, when non-nil, is
// invoked after each page with pageNumber/numPages*100. The concatenated
// result is cached; a second call returns it without re-extraction.
func (p *Processor) ExtractAllText(ctx context.Context, onProgress ProgressFunc) (string, error) {
	p.mu.Lock()
	if p.textSet {
		text := p.text
		p.mu.Unlock()
		return text, nil
	}
	num := p.numPages
	p.mu.Unlock()

	var parts []string
	for i := 1; i <= num; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		if info := p.ExtractPageText(i); info != nil {
			parts = append(parts, info.Text)
		}
		if onProgress != nil {
			onProgress(float64(i) / float64(num) * 100)
		}
	}
	text := strings.Join(parts, "\n\n")

	p.mu.Lock()
	p.text = text
	p.textSet = true
	p.mu.Unlock()
	return text, nil
}

// Text returns the cached full text, empty until ExtractAllText has run.
func (p *Processor) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// Destroy releases the underlying document and all derived state. It is
// idempotent: calling it again (or never) is safe. All pages, TOC entries
// and text derived from this processor are invalid afterwards.
func (p *Processor) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc != nil {
		_ = p.doc.Close()
		p.doc = nil
	}
	p.pages = make(map[int]*PageInfo)
	p.text = ""
	p.textSet = false
}
