package resume

import "testing"

func TestParseSkills_BothVocabularies(t *testing.T) {
	skills := ParseSkills("Built AWS infrastructure and applied STIG hardening.")

	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d: %+v", len(skills), skills)
	}
	// Technical vocabulary is matched before security.
	if skills[0].Name != "AWS" || skills[0].Category != CategoryTechnical {
		t.Errorf("first skill = %+v", skills[0])
	}
	if skills[1].Name != "STIG" || skills[1].Category != CategoryCertification {
		t.Errorf("second skill = %+v", skills[1])
	}
}

func TestParseSkills_CaseInsensitive(t *testing.T) {
	skills := ParseSkills("experienced with kubernetes and python")
	names := map[string]bool{}
	for _, s := range skills {
		names[s.Name] = true
	}
	if !names["Kubernetes"] || !names["Python"] {
		t.Errorf("expected canonical names, got %+v", skills)
	}
}

func TestParseSkills_WholeWordOnly(t *testing.T) {
	// "Going" must not match "Go".
	skills := ParseSkills("Going forward with the plan")
	for _, s := range skills {
		if s.Name == "Go" {
			t.Errorf("substring matched as skill: %+v", s)
		}
	}
}

func TestParseSkills_NoMatches(t *testing.T) {
	if skills := ParseSkills("gardening and pottery"); len(skills) != 0 {
		t.Errorf("expected no skills, got %+v", skills)
	}
}

func TestParseSkills_EachTermOnce(t *testing.T) {
	skills := ParseSkills("Python, python, PYTHON")
	count := 0
	for _, s := range skills {
		if s.Name == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Python once, got %d", count)
	}
}
