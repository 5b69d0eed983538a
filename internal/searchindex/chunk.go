package searchindex

import (
	"fmt"
	"strings"
)

// Chunking constants. A chunk is the indexed unit; its context is a wider
// window kept for display.
const (
	chunkWords  = 50
	contextPad  = 10
	contextSpan = chunkWords + contextPad
	searchLimit = 50
)

// Entry is one indexed chunk of page text.
type Entry struct {
	ID         string
	Page       int
	WordOffset int
	Content    string
	Context    string
}

// ChunkPage splits one page's text into non-overlapping 50-word chunks.
// Each chunk's context extends 10 words before and after the chunk,
// clamped to the page bounds.
func ChunkPage(page int, text string) []Entry {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	entries := make([]Entry, 0, (len(words)+chunkWords-1)/chunkWords)
	for off := 0; off < len(words); off += chunkWords {
		end := min(off+chunkWords, len(words))
		ctxStart := max(off-contextPad, 0)
		ctxEnd := min(off+contextSpan, len(words))

		entries = append(entries, Entry{
			ID:         fmt.Sprintf("%d-%d", page, off),
			Page:       page,
			WordOffset: off,
			Content:    strings.Join(words[off:end], " "),
			Context:    strings.Join(words[ctxStart:ctxEnd], " "),
		})
	}
	return entries
}
