package resume

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestService_MissingResumeFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, filepath.Join(dir, "noah_shaffer-resume.pdf"), filepath.Join(dir, "overrides.json"), nil)

	r, err := svc.Resume(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// Name derived from the filename, separators spaced out.
	if r.Contact.Name != "noah shaffer resume" {
		t.Errorf("fallback name = %q", r.Contact.Name)
	}
	if len(r.Experience) != 0 {
		t.Errorf("fallback resume should be minimal: %+v", r)
	}
}

func TestService_OverridesApplyToFallback(t *testing.T) {
	dir := t.TempDir()
	ovPath := filepath.Join(dir, "overrides.json")
	if err := os.WriteFile(ovPath, []byte(`{"contact":{"name":"Curated Person"},"summary":"Hand-written summary."}`), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(nil, filepath.Join(dir, "resume.pdf"), ovPath, nil)
	r, err := svc.Resume(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Contact.Name != "Curated Person" {
		t.Errorf("name = %q", r.Contact.Name)
	}
	if r.Summary != "Hand-written summary." {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestService_CachesResult(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, filepath.Join(dir, "resume.pdf"), filepath.Join(dir, "overrides.json"), nil)

	first, err := svc.Resume(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Resume(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected cached resume pointer on unchanged inputs")
	}
}
