package resume

import (
	"encoding/json"
	"fmt"
	"os"
)

// ContactOverride patches individual contact fields. Nil pointers leave
// the parsed value alone; any set pointer wins, including an explicit
// empty string.
type ContactOverride struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// Override is hand-curated content layered over a parsed resume. Contact
// merges per field; every other section, when present, replaces the
// parsed section wholesale.
type Override struct {
	Contact        *ContactOverride `json:"contact,omitempty"`
	Summary        *string          `json:"summary,omitempty"`
	Highlights     []string         `json:"highlights,omitempty"`
	Skills         []Skill          `json:"skills,omitempty"`
	Experience     []Experience     `json:"experience,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Keywords       []string         `json:"keywords,omitempty"`
}

// LoadOverrides reads an override file. A missing file is not an error:
// it returns (nil, nil) and the parsed resume is served untouched.
func LoadOverrides(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var ov Override
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return &ov, nil
}

// Merge applies an override to a parsed resume and returns the merged
// copy. Base is never mutated.
func Merge(base *Resume, ov *Override) *Resume {
	merged := *base
	if ov == nil {
		return &merged
	}

	if ov.Contact != nil {
		applyContact(&merged.Contact, ov.Contact)
	}
	if ov.Summary != nil {
		merged.Summary = *ov.Summary
	}
	if ov.Highlights != nil {
		merged.Highlights = ov.Highlights
	}
	if ov.Skills != nil {
		merged.Skills = ov.Skills
	}
	if ov.Experience != nil {
		merged.Experience = ov.Experience
	}
	if ov.Projects != nil {
		merged.Projects = ov.Projects
	}
	if ov.Education != nil {
		merged.Education = ov.Education
	}
	if ov.Certifications != nil {
		merged.Certifications = ov.Certifications
	}
	if ov.Keywords != nil {
		merged.Keywords = ov.Keywords
	}
	return &merged
}

func applyContact(c *Contact, ov *ContactOverride) {
	if ov.Name != nil {
		c.Name = *ov.Name
	}
	if ov.Email != nil {
		c.Email = *ov.Email
	}
	if ov.Phone != nil {
		c.Phone = *ov.Phone
	}
	if ov.Location != nil {
		c.Location = *ov.Location
	}
	if ov.Website != nil {
		c.Website = *ov.Website
	}
	if ov.LinkedIn != nil {
		c.LinkedIn = *ov.LinkedIn
	}
	if ov.GitHub != nil {
		c.GitHub = *ov.GitHub
	}
}
