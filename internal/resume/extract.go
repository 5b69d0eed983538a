package resume

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
)

// ExtractText pulls plain text out of a resume file. PDFs go through the
// page pipeline; DOCX files are read paragraph by paragraph. Paragraphs
// and pages are separated by blank lines.
func ExtractText(ctx context.Context, engine pdf.Engine, filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(ctx, engine, data)
	case ".docx":
		return extractDOCXText(data)
	default:
		return "", fmt.Errorf("unsupported resume format %q", filepath.Ext(filename))
	}
}

func extractPDFText(ctx context.Context, engine pdf.Engine, data []byte) (string, error) {
	proc, err := pdf.Load(engine, data)
	if err != nil {
		return "", err
	}
	defer proc.Destroy()
	return proc.ExtractAllText(ctx, nil)
}

func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var paras []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := docxParagraphText(para); text != "" {
			paras = append(paras, text)
		}
	}
	return strings.Join(paras, "\n\n"), nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
