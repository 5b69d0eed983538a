package pdf

import "time"

// Engine decodes raw PDF bytes into a Document. It exists so the processor
// can run against any PDF library binding (and against fakes in tests).
type Engine interface {
	Open(data []byte) (Document, error)
}

// Document is one decoded PDF.
type Document interface {
	NumPages() int
	// Metadata is best-effort: a missing or corrupt info dictionary
	// yields a zero Metadata, never an error.
	Metadata() Metadata
	// Page returns the 1-based page n, or an error if the page cannot
	// be decoded. Callers treat a failing page as absent.
	Page(n int) (Page, error)
	// Outline returns the document's native navigational outline,
	// flattened depth-first with nesting levels assigned. Empty when the
	// document has no outline.
	Outline() []OutlineEntry
	Close() error
}

// Page is one decoded page.
type Page interface {
	// Size returns the page width and height in document units.
	Size() (w, h float64)
	// Fragments returns the positioned text runs in content-stream order.
	Fragments() []Fragment
}

// Metadata holds the document information dictionary. String fields are
// empty and time fields are zero when the document does not carry them.
type Metadata struct {
	Title        string    `json:"title,omitempty"`
	Author       string    `json:"author,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Creator      string    `json:"creator,omitempty"`
	Producer     string    `json:"producer,omitempty"`
	Keywords     string    `json:"keywords,omitempty"`
	CreationDate time.Time `json:"creationDate,omitzero"`
	ModDate      time.Time `json:"modificationDate,omitzero"`
}

// Fragment is one positioned run of text from a page's content stream.
type Fragment struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// OutlineEntry is one flattened node of a native PDF outline.
type OutlineEntry struct {
	Title string
	Level int
	Page  int
}

// PageInfo is the extracted state of one page. Instances are created once,
// cached by page number, and never mutated afterwards.
type PageInfo struct {
	PageNumber int        `json:"pageNumber"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Text       string     `json:"textContent"`
	Fragments  []Fragment `json:"fragments"`
}
