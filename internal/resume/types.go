// Package resume turns raw resume text into typed records using
// heading-pattern segmentation and per-section heuristic parsers. All
// parsers are total functions: malformed input yields empty collections or
// default scalars, never an error.
package resume

// Contact is the parsed contact block. Empty string means the field was
// not found; Name defaults to "Professional" when the header is empty.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Skill categories follow the two matching vocabularies: general technical
// terms and security/compliance terms.
const (
	CategoryTechnical     = "technical"
	CategoryCertification = "certification"
)

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level,omitempty"`
}

type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Current   bool     `json:"current"`
	Bullets   []string `json:"bullets"`
	Keywords  []string `json:"keywords"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Highlights   []string `json:"highlights"`
}

type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location,omitempty"`
	GraduationDate string   `json:"graduationDate"`
	GPA            string   `json:"gpa,omitempty"`
	Honors         []string `json:"honors,omitempty"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Resume is the aggregate parse result. Built once per parse invocation
// and immutable afterwards.
type Resume struct {
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Highlights     []string        `json:"highlights"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Keywords       []string        `json:"keywords"`
}
