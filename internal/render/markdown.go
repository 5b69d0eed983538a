// Package render turns a parsed resume into a shareable HTML page:
// resume fields are laid out as Markdown, converted with goldmark, then
// sanitized before serving.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/noahwilliamshaffer/resumesite/internal/resume"
)

// ResumeMarkdown lays a resume out as a Markdown document, one section
// per populated field group. Empty sections are skipped entirely.
func ResumeMarkdown(r *resume.Resume) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Contact.Name)
	if line := contactLine(r.Contact); line != "" {
		b.WriteString(line + "\n\n")
	}

	if r.Summary != "" {
		b.WriteString("## Summary\n\n" + r.Summary + "\n\n")
	}

	if len(r.Highlights) > 0 {
		b.WriteString("## Highlights\n\n")
		for _, h := range r.Highlights {
			b.WriteString("- " + h + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Skills) > 0 {
		b.WriteString("## Skills\n\n")
		byCategory := map[string][]string{}
		var catOrder []string
		for _, s := range r.Skills {
			if len(byCategory[s.Category]) == 0 {
				catOrder = append(catOrder, s.Category)
			}
			byCategory[s.Category] = append(byCategory[s.Category], s.Name)
		}
		for _, cat := range catOrder {
			fmt.Fprintf(&b, "**%s:** %s\n\n", titleCase(cat), strings.Join(byCategory[cat], ", "))
		}
	}

	if len(r.Experience) > 0 {
		b.WriteString("## Experience\n\n")
		for _, e := range r.Experience {
			fmt.Fprintf(&b, "### %s\n\n", e.Title)
			fmt.Fprintf(&b, "**%s** · %s - %s\n\n", e.Company, e.StartDate, e.EndDate)
			for _, bl := range e.Bullets {
				b.WriteString("- " + bl + "\n")
			}
			if len(e.Bullets) > 0 {
				b.WriteString("\n")
			}
		}
	}

	if len(r.Projects) > 0 {
		b.WriteString("## Projects\n\n")
		for _, p := range r.Projects {
			fmt.Fprintf(&b, "### %s\n\n", p.Title)
			if p.Description != "" {
				b.WriteString(p.Description + "\n\n")
			}
			for _, h := range p.Highlights {
				b.WriteString("- " + h + "\n")
			}
			if len(p.Highlights) > 0 {
				b.WriteString("\n")
			}
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("## Education\n\n")
		for _, e := range r.Education {
			fmt.Fprintf(&b, "**%s**, %s", e.Degree, e.Institution)
			if e.GraduationDate != "" {
				b.WriteString(" (" + e.GraduationDate + ")")
			}
			b.WriteString("\n\n")
		}
	}

	if len(r.Certifications) > 0 {
		b.WriteString("## Certifications\n\n")
		for _, c := range r.Certifications {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Issuer)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func contactLine(c resume.Contact) string {
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.Location, c.Website, c.LinkedIn, c.GitHub} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}

// ResumeHTML converts the resume's Markdown rendering to sanitized HTML.
func ResumeHTML(r *resume.Resume) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert([]byte(ResumeMarkdown(r)), &buf); err != nil {
		return "", fmt.Errorf("render resume markdown: %w", err)
	}
	return Sanitize(buf.String())
}
