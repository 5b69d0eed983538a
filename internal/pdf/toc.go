package pdf

import (
	"fmt"
	"regexp"
	"strings"
)

// TOCEntry is one table-of-contents entry, either from the document's
// native outline or inferred from page layout.
type TOCEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Level    int     `json:"level"`
	Page     int     `json:"pageNumber"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// Heuristic TOC inference only inspects the first pages of large
// documents to bound its cost.
const tocScanPageLimit = 10

var headingKeywordRe = regexp.MustCompile(`(?i)^(chapter|section|part|\d+\.|\d+\.\d+)`)

// GenerateTOC derives a table of contents. The document's native outline
// wins when present; otherwise headings are inferred from font-size and
// text heuristics over the first min(10, numPages) pages. Entries are in
// document order: by page, then by appearance within the page.
func (p *Processor) GenerateTOC() []TOCEntry {
	p.mu.Lock()
	doc := p.doc
	num := p.numPages
	p.mu.Unlock()

	if doc == nil {
		return nil
	}

	if outline := doc.Outline(); len(outline) > 0 {
		entries := make([]TOCEntry, 0, len(outline))
		for i, node := range outline {
			entries = append(entries, TOCEntry{
				ID:    fmt.Sprintf("toc-%d", i),
				Title: node.Title,
				Level: node.Level,
				Page:  node.Page,
			})
		}
		return entries
	}

	var entries []TOCEntry
	limit := min(num, tocScanPageLimit)
	for page := 1; page <= limit; page++ {
		info := p.ExtractPageText(page)
		if info == nil {
			continue
		}
		entries = append(entries, headingsFromFragments(info.Fragments, page)...)
	}
	return entries
}

// headingsFromFragments scores each fragment of one page against layout
// heuristics and emits a TOC entry for each qualifying heading.
func headingsFromFragments(frags []Fragment, page int) []TOCEntry {
	var entries []TOCEntry
	avg := averageFontSize(frags)

	for i, f := range frags {
		trimmed := strings.TrimSpace(f.Text)
		if len(trimmed) <= 3 || len(trimmed) >= 100 {
			continue
		}
		// Fully upper-case runs are usually letterhead or emphasis,
		// not headings.
		if f.Text == strings.ToUpper(f.Text) {
			continue
		}
		size := f.FontSize
		if size == 0 {
			size = defaultFontSize
		}
		largerFont := size > avg*1.2
		if !largerFont && !headingKeywordRe.MatchString(trimmed) {
			continue
		}
		entries = append(entries, TOCEntry{
			ID:       fmt.Sprintf("heading-%d-%d", page, i),
			Title:    trimmed,
			Level:    levelFromFontSize(size, avg),
			Page:     page,
			FontSize: size,
		})
	}
	return entries
}

const defaultFontSize = 12

func averageFontSize(frags []Fragment) float64 {
	if len(frags) == 0 {
		return defaultFontSize
	}
	var sum float64
	for _, f := range frags {
		size := f.FontSize
		if size == 0 {
			size = defaultFontSize
		}
		sum += size
	}
	return sum / float64(len(frags))
}

func levelFromFontSize(size, avg float64) int {
	if avg == 0 {
		return 4
	}
	switch ratio := size / avg; {
	case ratio >= 1.8:
		return 1
	case ratio >= 1.4:
		return 2
	case ratio >= 1.2:
		return 3
	default:
		return 4
	}
}
