package resume

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`(?i)[\w.-]+@[\w.-]+\.\w+`)
	phoneRe    = regexp.MustCompile(`[+]?[\d\s\-().]{10,}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	websiteRe  = regexp.MustCompile(`(?i)https?://[\w.-]+`)
	locationRe = regexp.MustCompile(`([A-Z][a-z\s]+),?\s*([A-Z]{2}|[A-Z][a-z\s]+)`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// ParseContact extracts contact details from the resume header text. The
// name is the first non-empty line, defaulting to "Professional". Profile
// handles are normalized to https:// URLs. Absent fields stay empty.
func ParseContact(headerText string) Contact {
	c := Contact{Name: "Professional"}

	for _, line := range strings.Split(headerText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			c.Name = line
			break
		}
	}

	c.Email = emailRe.FindString(headerText)
	if phone := phoneRe.FindString(headerText); phone != "" {
		c.Phone = strings.TrimSpace(spaceRunRe.ReplaceAllString(phone, " "))
	}
	c.Location = locationRe.FindString(headerText)
	c.Website = websiteRe.FindString(headerText)
	if m := linkedinRe.FindString(headerText); m != "" {
		c.LinkedIn = "https://" + m
	}
	if m := githubRe.FindString(headerText); m != "" {
		c.GitHub = "https://" + m
	}
	return c
}
