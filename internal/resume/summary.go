package resume

import (
	"regexp"
	"strings"
)

const maxHighlights = 6

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	bulletLineRe    = regexp.MustCompile(`(?m)^\s*[•\-*\d+.]\s*(.+)$`)
	actionVerbRe    = regexp.MustCompile(`(?i)\b(led|managed|developed|created|implemented|improved|increased|reduced|achieved)\b`)
)

// ParseSummary condenses summary/objective text to its first three
// substantial sentences, joined with ". " and closed with a period.
func ParseSummary(summaryText string) string {
	if summaryText == "" {
		return ""
	}

	var kept []string
	for _, s := range sentenceSplitRe.Split(summaryText, -1) {
		if len(strings.TrimSpace(s)) > 20 {
			kept = append(kept, strings.TrimSpace(s))
		}
	}
	if len(kept) == 0 {
		return ""
	}
	if len(kept) > 3 {
		kept = kept[:3]
	}
	return strings.Join(kept, ". ") + "."
}

// ParseHighlights pulls standout lines from text. Bullet-marked lines of
// 20-200 characters win; when none exist, sentences carrying an
// action-verb keyword and 30-150 characters are used instead. At most six
// highlights are returned.
func ParseHighlights(text string) []string {
	var highlights []string

	for _, m := range bulletLineRe.FindAllStringSubmatch(text, -1) {
		h := strings.TrimSpace(m[1])
		if len(h) > 20 && len(h) < 200 {
			highlights = append(highlights, h)
		}
	}

	if len(highlights) == 0 {
		for _, s := range sentenceSplitRe.Split(text, -1) {
			if len(s) > 30 && len(s) < 150 && actionVerbRe.MatchString(s) {
				highlights = append(highlights, strings.TrimSpace(s))
				if len(highlights) == maxHighlights {
					break
				}
			}
		}
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}
