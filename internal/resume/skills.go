package resume

import "regexp"

// Matching vocabularies. Every term found in the text becomes one Skill
// record; output order follows vocabulary iteration order, not text order.
var technicalSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Swift",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask", "Spring",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Linux", "SQL", "MongoDB",
	"PostgreSQL", "Redis", "GraphQL", "REST", "API", "Microservices", "DevOps",
	"CI/CD", "Terraform", "Jenkins", "GitHub", "Jira", "Agile", "Scrum",
}

var securitySkills = []string{
	"NIST", "RMF", "STIG", "FISMA", "DISA", "DoD", "Security+", "CISSP", "CEH",
	"Penetration Testing", "Vulnerability Assessment", "Risk Management",
	"Compliance", "Cybersecurity", "Information Security", "Network Security",
}

type vocabEntry struct {
	name     string
	category string
	re       *regexp.Regexp
}

var skillVocabulary = buildVocabulary()

func buildVocabulary() []vocabEntry {
	entries := make([]vocabEntry, 0, len(technicalSkills)+len(securitySkills))
	add := func(names []string, category string) {
		for _, name := range names {
			entries = append(entries, vocabEntry{
				name:     name,
				category: category,
				re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
			})
		}
	}
	add(technicalSkills, CategoryTechnical)
	add(securitySkills, CategoryCertification)
	return entries
}

// ParseSkills matches the skills text against both vocabularies with
// case-insensitive whole-word matching. Purely a function of vocabulary
// membership: no term in the text, no record.
func ParseSkills(skillsText string) []Skill {
	var skills []Skill
	for _, v := range skillVocabulary {
		if v.re.MatchString(skillsText) {
			skills = append(skills, Skill{Name: v.name, Category: v.category})
		}
	}
	return skills
}
