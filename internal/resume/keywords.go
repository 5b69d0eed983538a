package resume

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 20

var wordRe = regexp.MustCompile(`\b\w{3,}\b`)

var keywordStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "man": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "boy": true,
	"did": true, "its": true, "let": true, "put": true, "say": true,
	"she": true, "too": true, "use": true,
}

// ExtractKeywords returns the top terms by frequency, most frequent
// first. Words shorter than four characters and common stop words are
// dropped. Ties keep first-appearance order so repeated calls over the
// same text are deterministic.
func ExtractKeywords(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	var order []string
	for _, w := range words {
		if keywordStopWords[w] || len(w) <= 3 {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
