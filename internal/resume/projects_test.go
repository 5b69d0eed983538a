package resume

import (
	"strings"
	"testing"
)

func TestParseProjects_TitleBulletsDescription(t *testing.T) {
	text := strings.Join([]string{
		"Homelab Dashboard",
		"A self-hosted dashboard aggregating service health across the homelab cluster with alerting hooks built in for on-call use.",
		"• Streams metrics over websockets",
		"• Dark mode because obviously",
	}, "\n")

	projects := ParseProjects(text)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d: %+v", len(projects), projects)
	}
	p := projects[0]
	if p.Title != "Homelab Dashboard" {
		t.Errorf("title = %q", p.Title)
	}
	if !strings.HasPrefix(p.Description, "A self-hosted dashboard") {
		t.Errorf("description = %q", p.Description)
	}
	if len(p.Highlights) != 2 || p.Highlights[0] != "Streams metrics over websockets" {
		t.Errorf("highlights = %+v", p.Highlights)
	}
}

func TestParseProjects_ShortLinesStartNewProjects(t *testing.T) {
	projects := ParseProjects("First Project\n• Did a thing that was quite involved\nSecond Project\n• Did another thing entirely")
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "First Project" || projects[1].Title != "Second Project" {
		t.Errorf("titles = %q, %q", projects[0].Title, projects[1].Title)
	}
}

func TestParseProjects_Empty(t *testing.T) {
	if projects := ParseProjects(""); len(projects) != 0 {
		t.Errorf("expected none, got %+v", projects)
	}
}
