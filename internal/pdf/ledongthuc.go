package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	pdflib "github.com/ledongthuc/pdf"
)

// ledongEngine binds the decoding-engine interface to ledongthuc/pdf
// (BSD-3, pure Go, no CGO).
type ledongEngine struct{}

// NewEngine returns the production PDF decoding engine.
func NewEngine() Engine {
	return ledongEngine{}
}

func (ledongEngine) Open(data []byte) (Document, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &ledongDocument{r: r}, nil
}

type ledongDocument struct {
	r *pdflib.Reader
}

func (d *ledongDocument) NumPages() int { return d.r.NumPage() }

func (d *ledongDocument) Metadata() (meta Metadata) {
	// The library panics on some malformed info dictionaries; metadata is
	// best-effort so a bad dictionary yields an empty record.
	defer func() { _ = recover() }()

	info := d.r.Trailer().Key("Info")
	if info.IsNull() {
		return Metadata{}
	}
	meta.Title = info.Key("Title").Text()
	meta.Author = info.Key("Author").Text()
	meta.Subject = info.Key("Subject").Text()
	meta.Creator = info.Key("Creator").Text()
	meta.Producer = info.Key("Producer").Text()
	meta.Keywords = info.Key("Keywords").Text()
	meta.CreationDate = parsePDFDate(info.Key("CreationDate").Text())
	meta.ModDate = parsePDFDate(info.Key("ModDate").Text())
	return meta
}

func (d *ledongDocument) Page(n int) (Page, error) {
	pg := d.r.Page(n)
	if pg.V.IsNull() {
		return nil, fmt.Errorf("page %d is not decodable", n)
	}
	return &ledongPage{pg: pg}, nil
}

func (d *ledongDocument) Outline() []OutlineEntry {
	var entries []OutlineEntry
	defer func() { _ = recover() }()

	root := d.r.Outline()
	// The library exposes outline titles and nesting but does not resolve
	// destinations, so structural entries all target page 1.
	var walk func(nodes []pdflib.Outline, level int)
	walk = func(nodes []pdflib.Outline, level int) {
		for _, node := range nodes {
			title := strings.TrimSpace(node.Title)
			if title != "" {
				entries = append(entries, OutlineEntry{Title: title, Level: level, Page: 1})
			}
			if len(node.Child) > 0 {
				walk(node.Child, level+1)
			}
		}
	}
	walk(root.Child, 1)
	return entries
}

func (d *ledongDocument) Close() error {
	return nil
}

type ledongPage struct {
	pg pdflib.Page
}

// Letter-size fallback when a page carries no resolvable MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

func (p *ledongPage) Size() (w, h float64) {
	w, h = defaultPageWidth, defaultPageHeight
	defer func() { _ = recover() }()

	// MediaBox may be inherited from an ancestor Pages node.
	v := p.pg.V
	for depth := 0; depth < 16 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			x1, y1 := box.Index(0).Float64(), box.Index(1).Float64()
			x2, y2 := box.Index(2).Float64(), box.Index(3).Float64()
			if bw, bh := abs(x2-x1), abs(y2-y1); bw > 0 && bh > 0 {
				return bw, bh
			}
			break
		}
		v = v.Key("Parent")
	}
	return w, h
}

func (p *ledongPage) Fragments() (frags []Fragment) {
	// Content can panic on malformed streams; a failing page yields no
	// fragments rather than aborting the pass.
	defer func() { _ = recover() }()

	content := p.pg.Content()
	frags = make([]Fragment, 0, len(content.Text))
	for _, t := range content.Text {
		frags = append(frags, Fragment{
			Text:     t.S,
			FontSize: t.FontSize,
			X:        t.X,
			Y:        t.Y,
		})
	}
	return frags
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// parsePDFDate decodes PDF date strings like "D:20240115093000+01'00'".
// Returns the zero time when the string does not parse.
func parsePDFDate(s string) time.Time {
	s = strings.TrimPrefix(strings.TrimSpace(s), "D:")
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}
	for _, layout := range []string{"20060102150405", "200601021504", "20060102", "200601", "2006"} {
		if len(digits) == len(layout) {
			if t, err := time.Parse(layout, digits); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
