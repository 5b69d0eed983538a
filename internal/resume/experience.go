package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	roleKeywordRe = regexp.MustCompile(`(?i)(Engineer|Developer|Manager|Analyst|Specialist|Consultant|Director|Lead|Senior|Junior|Intern)`)
	orgSuffixRe   = regexp.MustCompile(`(?i)(Inc|LLC|Corp|Company|University|Department|Agency)`)
	// A new entry is recognized by the next title line; the boundary
	// keyword set is intentionally narrower than the title set.
	entryBoundaryRe = regexp.MustCompile(`(?i)(Engineer|Developer|Manager)`)

	dateRe      = regexp.MustCompile(`(\d{1,2}/\d{4}|\d{4}|[A-Z][a-z]+\s+\d{4})`)
	expBulletRe = regexp.MustCompile(`(?m)^\s*[•\-*]\s*(.+)$`)
)

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isTitleLine(line string) bool {
	return startsUpper(line) && roleKeywordRe.MatchString(line)
}

func isCompanyLine(line string) bool {
	return startsUpper(line) && orgSuffixRe.MatchString(line)
}

func isBoundaryLine(line string) bool {
	return startsUpper(line) && entryBoundaryRe.MatchString(line)
}

// ParseExperience extracts date-ranged job entries. An entry starts at a
// title line (role keyword) directly followed by a company line (org
// suffix keyword); its content runs to the next title line or end of
// text. The first date found is the start, the second the end; a missing
// or "present" end date flags the entry as current.
func ParseExperience(experienceText string) []Experience {
	lines := splitLines(experienceText)

	var entries []Experience
	for i := 0; i < len(lines); i++ {
		if !isTitleLine(lines[i]) || i+1 >= len(lines) || !isCompanyLine(lines[i+1]) {
			continue
		}

		end := len(lines)
		for j := i + 2; j < len(lines); j++ {
			if isBoundaryLine(lines[j]) {
				end = j
				break
			}
		}
		content := strings.Join(lines[i+2:end], "\n")

		dates := dateRe.FindAllString(content, -1)
		exp := Experience{
			Title:    lines[i],
			Company:  lines[i+1],
			EndDate:  "Present",
			Current:  true,
			Bullets:  bulletLines(content),
			Keywords: ExtractKeywords(content),
		}
		if len(dates) > 0 {
			exp.StartDate = dates[0]
		}
		if len(dates) > 1 {
			exp.EndDate = dates[1]
			exp.Current = strings.Contains(strings.ToLower(dates[1]), "present")
		}
		entries = append(entries, exp)

		i = end - 1
	}
	return entries
}

func bulletLines(content string) []string {
	var bullets []string
	for _, m := range expBulletRe.FindAllStringSubmatch(content, -1) {
		bullets = append(bullets, strings.TrimSpace(m[1]))
	}
	return bullets
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
