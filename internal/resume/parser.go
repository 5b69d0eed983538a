package resume

// Parse runs the full pipeline over extracted resume text: segment into
// sections, then feed each parser its section, falling back to the whole
// text when the section heading never appeared. Keywords always see the
// full text.
func Parse(text string) *Resume {
	sections := SegmentSections(text)

	sectionOr := func(name, fallback string) string {
		if s, ok := sections[name]; ok {
			return s
		}
		return fallback
	}

	return &Resume{
		Contact:        ParseContact(sectionOr(SectionHeader, text)),
		Summary:        ParseSummary(sectionOr(SectionSummary, "")),
		Highlights:     ParseHighlights(sectionOr(SectionSummary, text)),
		Skills:         ParseSkills(sectionOr(SectionSkills, text)),
		Experience:     ParseExperience(sectionOr(SectionExperience, text)),
		Projects:       ParseProjects(sectionOr(SectionProjects, text)),
		Education:      ParseEducation(sectionOr(SectionEducation, text)),
		Certifications: ParseCertifications(sectionOr(SectionCertifications, text)),
		Keywords:       ExtractKeywords(text),
	}
}
