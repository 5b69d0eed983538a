package resume

import "testing"

func TestParseCertifications_KnownNames(t *testing.T) {
	certs := ParseCertifications("Holds Security+ and CISSP; pursuing AWS Certified Solutions Architect.")

	names := map[string]string{}
	for _, c := range certs {
		names[c.Name] = c.Issuer
	}
	if issuer, ok := names["Security+"]; !ok || issuer != "Various" {
		t.Errorf("Security+ issuer = %q, found=%v", issuer, ok)
	}
	if issuer, ok := names["CISSP"]; !ok || issuer != "Various" {
		t.Errorf("CISSP issuer = %q, found=%v", issuer, ok)
	}
	if issuer, ok := names["AWS Certified"]; !ok || issuer != "Amazon" {
		t.Errorf("AWS Certified issuer = %q, found=%v", issuer, ok)
	}
}

func TestParseCertifications_CaseInsensitive(t *testing.T) {
	certs := ParseCertifications("comptia security+ training")
	found := false
	for _, c := range certs {
		if c.Name == "CompTIA" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CompTIA match, got %+v", certs)
	}
}

func TestParseCertifications_IssuerInference(t *testing.T) {
	certs := ParseCertifications("Azure Certified administrator")
	if len(certs) != 1 || certs[0].Issuer != "Microsoft" {
		t.Errorf("got %+v, want Azure Certified from Microsoft", certs)
	}
	if certs[0].Date != "" {
		t.Errorf("date should be empty, got %q", certs[0].Date)
	}
}

func TestParseCertifications_NoMentions(t *testing.T) {
	if certs := ParseCertifications("ten years of gardening"); len(certs) != 0 {
		t.Errorf("expected none, got %+v", certs)
	}
}
