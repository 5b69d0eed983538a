package resume

import "strings"

// Well-known certification names matched by case-insensitive substring.
var commonCertifications = []string{
	"Security+", "CISSP", "CEH", "CISM", "CISA", "GSEC",
	"AWS Certified", "Azure Certified", "Google Cloud", "CompTIA",
	"Certified Ethical Hacker", "SANS", "GIAC",
}

// ParseCertifications reports which well-known certifications the text
// mentions, in vocabulary order. The issuer is derived from the name;
// dates are not recoverable from a bare mention and stay empty.
func ParseCertifications(certificationsText string) []Certification {
	lower := strings.ToLower(certificationsText)

	var certs []Certification
	for _, name := range commonCertifications {
		if !strings.Contains(lower, strings.ToLower(name)) {
			continue
		}
		certs = append(certs, Certification{
			Name:   name,
			Issuer: certIssuer(name),
		})
	}
	return certs
}

func certIssuer(name string) string {
	switch {
	case strings.Contains(name, "AWS"):
		return "Amazon"
	case strings.Contains(name, "Azure"):
		return "Microsoft"
	default:
		return "Various"
	}
}
