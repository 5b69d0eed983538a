package pdf

import (
	"strings"
	"testing"
)

func TestGenerateTOC_OutlineWins(t *testing.T) {
	doc := &fakeDoc{
		pages: []*fakePage{
			{frags: []Fragment{{Text: "Huge Heading Here", FontSize: 30}}, w: 612, h: 792},
		},
		outline: []OutlineEntry{
			{Title: "Introduction", Level: 1, Page: 1},
			{Title: "Background", Level: 2, Page: 1},
		},
	}
	proc, err := Load(&fakeEngine{doc: doc}, []byte("pdf"))
	if err != nil {
		t.Fatal(err)
	}

	toc := proc.GenerateTOC()
	if len(toc) != 2 {
		t.Fatalf("expected 2 outline entries, got %d", len(toc))
	}
	if toc[0].ID != "toc-0" || toc[0].Title != "Introduction" || toc[0].Level != 1 {
		t.Errorf("unexpected first entry: %+v", toc[0])
	}
	if toc[1].ID != "toc-1" || toc[1].Level != 2 {
		t.Errorf("unexpected second entry: %+v", toc[1])
	}
}

func TestGenerateTOC_HeuristicFontSize(t *testing.T) {
	// Body text at 10pt with one clearly larger fragment.
	frags := []Fragment{
		{Text: "Experience Summary", FontSize: 20},
	}
	for i := 0; i < 19; i++ {
		frags = append(frags, Fragment{Text: "ordinary body copy line", FontSize: 10})
	}
	doc := &fakeDoc{pages: []*fakePage{{frags: frags, w: 612, h: 792}}}
	proc, err := Load(&fakeEngine{doc: doc}, []byte("pdf"))
	if err != nil {
		t.Fatal(err)
	}

	toc := proc.GenerateTOC()
	if len(toc) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(toc), toc)
	}
	e := toc[0]
	if e.Title != "Experience Summary" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if e.Page != 1 {
		t.Errorf("unexpected page %d", e.Page)
	}
	if !strings.HasPrefix(e.ID, "heading-1-") {
		t.Errorf("unexpected id %q", e.ID)
	}
	// 20 / ~10.5 avg is past the 1.8 ratio.
	if e.Level != 1 {
		t.Errorf("expected level 1, got %d", e.Level)
	}
}

func TestGenerateTOC_HeuristicKeyword(t *testing.T) {
	frags := []Fragment{
		{Text: "Chapter One: Beginnings", FontSize: 12},
		{Text: "1.2 Detailed design", FontSize: 12},
		{Text: "just a sentence of body text", FontSize: 12},
	}
	doc := &fakeDoc{pages: []*fakePage{{frags: frags, w: 612, h: 792}}}
	proc, err := Load(&fakeEngine{doc: doc}, []byte("pdf"))
	if err != nil {
		t.Fatal(err)
	}

	toc := proc.GenerateTOC()
	if len(toc) != 2 {
		t.Fatalf("expected 2 keyword headings, got %d: %+v", len(toc), toc)
	}
	if toc[0].Title != "Chapter One: Beginnings" || toc[1].Title != "1.2 Detailed design" {
		t.Errorf("unexpected headings: %+v", toc)
	}
	// Same size as the average: bottom level.
	if toc[0].Level != 4 {
		t.Errorf("expected level 4, got %d", toc[0].Level)
	}
}

func TestGenerateTOC_SkipsNoise(t *testing.T) {
	frags := []Fragment{
		{Text: "ALL CAPS LETTERHEAD", FontSize: 24},             // all upper-case
		{Text: "Hi", FontSize: 24},                              // too short
		{Text: strings.Repeat("Long title ", 12), FontSize: 24}, // too long
		{Text: "body", FontSize: 10},
		{Text: "body", FontSize: 10},
		{Text: "body", FontSize: 10},
	}
	doc := &fakeDoc{pages: []*fakePage{{frags: frags, w: 612, h: 792}}}
	proc, err := Load(&fakeEngine{doc: doc}, []byte("pdf"))
	if err != nil {
		t.Fatal(err)
	}

	if toc := proc.GenerateTOC(); len(toc) != 0 {
		t.Errorf("expected no headings, got %+v", toc)
	}
}

func TestGenerateTOC_ScanLimitedToFirstTenPages(t *testing.T) {
	heading := &fakePage{frags: []Fragment{
		{Text: "Section Heading", FontSize: 24},
		{Text: "body text", FontSize: 10},
		{Text: "body text", FontSize: 10},
	}, w: 612, h: 792}

	var pages []*fakePage
	for i := 0; i < 12; i++ {
		pages = append(pages, heading)
	}
	doc := &fakeDoc{pages: pages}
	proc, err := Load(&fakeEngine{doc: doc}, []byte("pdf"))
	if err != nil {
		t.Fatal(err)
	}

	toc := proc.GenerateTOC()
	if len(toc) != 10 {
		t.Fatalf("expected 10 headings (one per scanned page), got %d", len(toc))
	}
	for _, e := range toc {
		if e.Page > 10 {
			t.Errorf("heading beyond scan limit: %+v", e)
		}
	}
}

func TestLevelFromFontSize_Thresholds(t *testing.T) {
	cases := []struct {
		size  float64
		level int
	}{
		{18, 1}, // 1.8x
		{14, 2}, // 1.4x
		{12, 3}, // 1.2x
		{11, 4}, // below 1.2x
		{10, 4},
	}
	for _, c := range cases {
		if got := levelFromFontSize(c.size, 10); got != c.level {
			t.Errorf("levelFromFontSize(%v, 10) = %d, want %d", c.size, got, c.level)
		}
	}
}
