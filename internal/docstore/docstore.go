// Package docstore discovers serveable PDF documents in a directory and
// reads their bytes for the viewer.
package docstore

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DocumentFile describes one discovered PDF.
type DocumentFile struct {
	Filename     string    `json:"filename"`
	Slug         string    `json:"slug"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Store scans a single directory. Listing re-reads the directory every
// call, so dropped-in files show up without a restart.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// List returns every non-hidden .pdf in the directory, newest first. A
// missing directory yields an empty list, not an error.
func (s *Store) List() ([]DocumentFile, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read docs dir: %w", err)
	}

	var docs []DocumentFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		docs = append(docs, DocumentFile{
			Filename:     name,
			Slug:         Slugify(base),
			Path:         "/docs/" + name,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].LastModified.Equal(docs[j].LastModified) {
			return docs[i].LastModified.After(docs[j].LastModified)
		}
		return docs[i].Filename < docs[j].Filename
	})
	return docs, nil
}

// BySlug finds a document by its slug, nil when absent.
func (s *Store) BySlug(slug string) (*DocumentFile, error) {
	docs, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].Slug == slug {
			return &docs[i], nil
		}
	}
	return nil, nil
}

// Read returns a discovered document's bytes. The filename is reduced to
// its base name so callers cannot escape the docs directory.
func (s *Store) Read(doc *DocumentFile) ([]byte, error) {
	path := filepath.Join(s.dir, filepath.Base(doc.Filename))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", doc.Filename, err)
	}
	return data, nil
}

var slugStripRe = regexp.MustCompile(`[^\w\s-]`)
var slugDashRe = regexp.MustCompile(`[\s_-]+`)

// Slugify lowercases a name and collapses separators into single dashes.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatFileSize renders a byte count with a binary unit, two decimals at
// most.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
