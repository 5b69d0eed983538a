package resume

import (
	"regexp"
	"strings"
)

var (
	degreeLineRe  = regexp.MustCompile(`(?i)^(Bachelor|Master|PhD|Associate|Certificate)`)
	degreeFieldRe = regexp.MustCompile(`(?i)^(Bachelor|Master|PhD|Associate|Certificate)[^\n]*?\b(?:in|of)\s+(.+)$`)
	institutionRe = regexp.MustCompile(`(?i)(University|College|Institute|School)`)
	yearRe        = regexp.MustCompile(`\d{4}`)
)

// ParseEducation extracts degree records. An entry is anchored on a line
// starting with a degree-level keyword and naming a field after "in" or
// "of", followed by an institution line; trailing detail lines run to the
// next degree line. The graduation date is the last four-digit year in
// the details.
func ParseEducation(educationText string) []Education {
	lines := splitLines(educationText)

	var entries []Education
	for i := 0; i < len(lines); i++ {
		m := degreeFieldRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		degreeType, field := m[1], strings.TrimSpace(m[2])

		if i+1 >= len(lines) || !institutionRe.MatchString(lines[i+1]) {
			continue
		}
		institution := lines[i+1]

		end := len(lines)
		for j := i + 2; j < len(lines); j++ {
			if degreeLineRe.MatchString(lines[j]) {
				end = j
				break
			}
		}
		details := strings.Join(lines[i+2:end], "\n")

		edu := Education{
			Degree:      degreeType + " in " + field,
			Institution: institution,
		}
		if years := yearRe.FindAllString(details, -1); len(years) > 0 {
			edu.GraduationDate = years[len(years)-1]
		}
		entries = append(entries, edu)

		i = end - 1
	}
	return entries
}
