package resume

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
)

// Service parses the configured resume file on demand and layers the
// override file on top. The merged result is cached and invalidated when
// either file's mtime changes.
type Service struct {
	engine        pdf.Engine
	resumePath    string
	overridesPath string
	log           *slog.Logger

	mu          sync.Mutex
	cached      *Resume
	resumeMod   time.Time
	overrideMod time.Time
}

func NewService(engine pdf.Engine, resumePath, overridesPath string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		engine:        engine,
		resumePath:    resumePath,
		overridesPath: overridesPath,
		log:           log,
	}
}

// Resume returns the merged resume. Extraction or parse failures do not
// fail the request: a minimal resume named after the file stands in, and
// overrides still apply on top of it.
func (s *Service) Resume(ctx context.Context) (*Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumeMod := fileModTime(s.resumePath)
	overrideMod := fileModTime(s.overridesPath)
	if s.cached != nil && resumeMod.Equal(s.resumeMod) && overrideMod.Equal(s.overrideMod) {
		return s.cached, nil
	}

	parsed := s.parse(ctx)

	ov, err := LoadOverrides(s.overridesPath)
	if err != nil {
		s.log.Warn("resume overrides unusable", "path", s.overridesPath, "error", err)
	}

	merged := Merge(parsed, ov)
	s.cached = merged
	s.resumeMod = resumeMod
	s.overrideMod = overrideMod
	return merged, nil
}

func (s *Service) parse(ctx context.Context) *Resume {
	filename := filepath.Base(s.resumePath)

	data, err := os.ReadFile(s.resumePath)
	if err != nil {
		s.log.Warn("resume file unreadable", "path", s.resumePath, "error", err)
		return fallbackResume(filename)
	}

	text, err := ExtractText(ctx, s.engine, filename, data)
	if err != nil {
		s.log.Warn("resume text extraction failed", "path", s.resumePath, "error", err)
		return fallbackResume(filename)
	}

	return Parse(text)
}

// fallbackResume carries only a display name derived from the filename,
// extension stripped and separators spaced out.
func fallbackResume(filename string) *Resume {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return &Resume{Contact: Contact{Name: name}}
}

func fileModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
