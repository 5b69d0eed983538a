package resume

import (
	"regexp"
	"strings"
)

// Section names produced by SegmentSections. The header pseudo-section
// collects everything before the first recognized heading.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// Ordered: the first matching pattern wins for a given line.
var sectionPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{SectionSummary, regexp.MustCompile(`(?i)^(summary|profile|about|overview|objective)`)},
	{SectionExperience, regexp.MustCompile(`(?i)^(experience|work|employment|career|professional)`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(skills|technical|competencies|expertise)`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(education|academic|school|university)`)},
	{SectionProjects, regexp.MustCompile(`(?i)^(projects|portfolio|work samples)`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^(certifications|certificates|licenses|credentials)`)},
	{SectionAchievements, regexp.MustCompile(`(?i)^(achievements|accomplishments|awards|honors)`)},
}

// SegmentSections splits resume text into named sections by matching each
// non-empty line against the heading patterns. A matching line switches
// the current section and is consumed; all other lines accumulate under
// the current section, starting at "header". Sections never encountered
// are absent from the map: downstream parsers fall back to the full text.
func SegmentSections(text string) map[string]string {
	sections := make(map[string]string)

	current := SectionHeader
	var buf []string
	flush := func() {
		if len(buf) > 0 {
			sections[current] = strings.Join(buf, "\n")
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, sp := range sectionPatterns {
			if sp.re.MatchString(line) {
				flush()
				current = sp.name
				buf = buf[:0]
				matched = true
				break
			}
		}
		if !matched {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}
