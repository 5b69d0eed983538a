package resume

import "strings"

// ParseProjects groups lines into project entries. A short non-bullet
// line starts a new entry; bullet lines under it become highlights and
// other lines accumulate into the description.
func ParseProjects(projectsText string) []Project {
	var projects []Project
	var current *Project

	for _, line := range splitLines(projectsText) {
		isBullet := strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")

		if len(line) < 100 && !isBullet {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &Project{Title: line, Technologies: []string{}, Highlights: []string{}}
			continue
		}
		if current == nil {
			continue
		}
		if isBullet {
			current.Highlights = append(current.Highlights, strings.TrimSpace(strings.TrimLeft(line, "•-")))
		} else {
			current.Description = strings.TrimSpace(current.Description + " " + line)
		}
	}
	if current != nil {
		projects = append(projects, *current)
	}
	return projects
}
