package resume

import (
	"strings"
	"testing"
)

func TestSegmentSections_BasicResume(t *testing.T) {
	text := strings.Join([]string{
		"Jane Smith",
		"jane@example.com",
		"Summary",
		"Seasoned engineer with a decade of experience.",
		"Experience",
		"Senior Engineer",
		"Acme Inc",
		"Skills",
		"Go, Python, Kubernetes",
	}, "\n")

	sections := SegmentSections(text)

	if got := sections[SectionHeader]; got != "Jane Smith\njane@example.com" {
		t.Errorf("header = %q", got)
	}
	if got := sections[SectionSummary]; got != "Seasoned engineer with a decade of experience." {
		t.Errorf("summary = %q", got)
	}
	if got := sections[SectionExperience]; got != "Senior Engineer\nAcme Inc" {
		t.Errorf("experience = %q", got)
	}
	if got := sections[SectionSkills]; got != "Go, Python, Kubernetes" {
		t.Errorf("skills = %q", got)
	}
}

func TestSegmentSections_HeadingLineConsumed(t *testing.T) {
	sections := SegmentSections("Education\nBS in Things\nState University")
	if strings.Contains(sections[SectionEducation], "Education") {
		t.Errorf("heading line leaked into section body: %q", sections[SectionEducation])
	}
}

func TestSegmentSections_AbsentSectionsOmitted(t *testing.T) {
	sections := SegmentSections("Just a header line\nand another")
	for _, name := range []string{SectionSummary, SectionExperience, SectionSkills, SectionEducation, SectionProjects, SectionCertifications, SectionAchievements} {
		if _, ok := sections[name]; ok {
			t.Errorf("section %q should be absent", name)
		}
	}
	if _, ok := sections[SectionHeader]; !ok {
		t.Error("header section missing")
	}
}

func TestSegmentSections_HeadingVariants(t *testing.T) {
	cases := []struct {
		line    string
		section string
	}{
		{"PROFILE", SectionSummary},
		{"Work History", SectionExperience},
		{"Technical Skills", SectionSkills},
		{"Academic Background", SectionEducation},
		{"Portfolio", SectionProjects},
		{"Licenses", SectionCertifications},
		{"Awards", SectionAchievements},
	}
	for _, c := range cases {
		sections := SegmentSections(c.line + "\ncontent line")
		if got := sections[c.section]; got != "content line" {
			t.Errorf("%q: section %q = %q, want content line", c.line, c.section, got)
		}
	}
}

func TestSegmentSections_RepeatedHeadingOverwrites(t *testing.T) {
	sections := SegmentSections("Skills\nfirst batch\nSkills\nsecond batch")
	if got := sections[SectionSkills]; got != "second batch" {
		t.Errorf("expected later section to win, got %q", got)
	}
}

func TestSegmentSections_BlankLinesIgnored(t *testing.T) {
	sections := SegmentSections("\n\nSummary\n\n  \nShort bio text\n\n")
	if got := sections[SectionSummary]; got != "Short bio text" {
		t.Errorf("summary = %q", got)
	}
}
