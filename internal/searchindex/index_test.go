package searchindex

import (
	"context"
	"strings"
	"testing"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := New(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestIndex_AddPageAndCount(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	added, err := ix.AddPage(ctx, 1, wordsText(120))
	if err != nil {
		t.Fatal(err)
	}
	if added != 3 {
		t.Errorf("expected 3 chunks added, got %d", added)
	}
	if n := ix.Count(ctx); n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}

	// Blank pages add nothing.
	added, err = ix.AddPage(ctx, 2, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if added != 0 {
		t.Errorf("expected 0 chunks for blank page, got %d", added)
	}
}

func TestIndex_SearchEmptyQuery(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	if _, err := ix.AddPage(ctx, 1, "some indexed words here"); err != nil {
		t.Fatal(err)
	}

	for _, q := range []string{"", "   ", "\t\n"} {
		if results := ix.Search(ctx, q); results != nil {
			t.Errorf("query %q: expected nil, got %d results", q, len(results))
		}
	}
}

func TestIndex_SearchFindsChunks(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	if _, err := ix.AddPage(ctx, 1, "kubernetes deployment pipelines and monitoring"); err != nil {
		t.Fatal(err)
	}
	if _, err := ix.AddPage(ctx, 2, "baking sourdough bread at home"); err != nil {
		t.Fatal(err)
	}

	results := ix.Search(ctx, "kubernetes")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Page != 1 {
		t.Errorf("expected page 1, got %d", r.Page)
	}
	if !strings.Contains(r.Text, "kubernetes") {
		t.Errorf("result text should contain the term: %q", r.Text)
	}
	if r.Context == "" {
		t.Error("expected non-empty context")
	}
	if r.Score < 0 {
		t.Errorf("score should be non-negative, got %v", r.Score)
	}
}

func TestIndex_SearchTokensAreORed(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	if _, err := ix.AddPage(ctx, 1, "golang services"); err != nil {
		t.Fatal(err)
	}
	if _, err := ix.AddPage(ctx, 2, "python scripts"); err != nil {
		t.Fatal(err)
	}

	results := ix.Search(ctx, "golang python")
	if len(results) != 2 {
		t.Fatalf("expected matches from both pages, got %d", len(results))
	}
}

func TestIndex_SearchLimit(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	// 60 pages, one chunk each, all containing the same term.
	for page := 1; page <= 60; page++ {
		if _, err := ix.AddPage(ctx, page, "repeated term appears on every page"); err != nil {
			t.Fatal(err)
		}
	}

	results := ix.Search(ctx, "repeated")
	if len(results) != 50 {
		t.Errorf("expected results capped at 50, got %d", len(results))
	}
}

func TestIndex_TieBreakIsDocumentOrder(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	// Identical chunks rank identically; order must fall back to
	// (page, offset).
	for page := 1; page <= 5; page++ {
		if _, err := ix.AddPage(ctx, page, "identical chunk text"); err != nil {
			t.Fatal(err)
		}
	}

	results := ix.Search(ctx, "identical")
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Page != i+1 {
			t.Errorf("result %d on page %d, want %d", i, r.Page, i+1)
		}
	}
}

func TestIndex_SearchUnmatchedQuery(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()
	if _, err := ix.AddPage(ctx, 1, "entirely unrelated content"); err != nil {
		t.Fatal(err)
	}

	if results := ix.Search(ctx, "zzzzz"); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
