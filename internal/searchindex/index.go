// Package searchindex builds a per-document full-text index over extracted
// page text using pure-Go SQLite with an FTS5 virtual table. The index is
// rebuilt from scratch on every document load and is read-only afterwards;
// concurrent queries against a built index are safe.
package searchindex

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Result is one ranked search hit. Ephemeral: produced per query.
type Result struct {
	Page    int     `json:"pageNumber"`
	Text    string  `json:"text"`
	Context string  `json:"context"`
	Score   float64 `json:"score"`
}

// Index is a flat, page-agnostic chunk index for one loaded document.
type Index struct {
	db  *sql.DB
	log *slog.Logger
}

// New creates an empty in-memory index.
func New(ctx context.Context, log *slog.Logger) (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	// A shared in-memory database needs a single connection; it also
	// serializes writes during the build pass.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE chunks (
		id TEXT PRIMARY KEY,
		page_number INTEGER NOT NULL,
		word_offset INTEGER NOT NULL,
		content TEXT NOT NULL,
		context TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create chunks table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE VIRTUAL TABLE chunks_fts USING fts5(chunk_id UNINDEXED, content)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create fts table: %w", err)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Index{db: db, log: log}, nil
}

// AddPage chunks one page's text and appends the chunks to the index.
// Returns the number of chunks added.
func (ix *Index) AddPage(ctx context.Context, page int, text string) (int, error) {
	entries := ChunkPage(page, text)
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin index tx: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chunks (id, page_number, word_offset, content, context) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Page, e.WordOffset, e.Content, e.Context,
		); err != nil {
			return 0, fmt.Errorf("insert chunk %s: %w", e.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chunks_fts (chunk_id, content) VALUES (?, ?)`,
			e.ID, e.Content,
		); err != nil {
			return 0, fmt.Errorf("index chunk %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit index tx: %w", err)
	}
	return len(entries), nil
}

// Count returns the number of indexed chunks.
func (ix *Index) Count(ctx context.Context) int {
	var n int
	if err := ix.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Search runs a token-level match against indexed chunk text and returns
// up to 50 ranked results. An empty or whitespace-only query returns nil
// without touching the index; a failed lookup also yields nil rather than
// an error, since search is a best-effort surface.
func (ix *Index) Search(ctx context.Context, query string) []Result {
	match := matchExpr(query)
	if match == "" {
		return nil
	}

	rows, err := ix.db.QueryContext(ctx,
		`SELECT c.page_number, c.content, c.context, f.rank
		 FROM chunks_fts f
		 JOIN chunks c ON c.id = f.chunk_id
		 WHERE chunks_fts MATCH ?
		 ORDER BY f.rank, c.page_number, c.word_offset
		 LIMIT ?`,
		match, searchLimit,
	)
	if err != nil {
		ix.log.Warn("search query failed", "query", query, "error", err)
		return nil
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var rank float64
		if err := rows.Scan(&r.Page, &r.Text, &r.Context, &rank); err != nil {
			ix.log.Warn("search scan failed", "error", err)
			return nil
		}
		// FTS5 rank is negative, closer to zero meaning better.
		r.Score = -rank
		if r.Score < 0 {
			r.Score = 0
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		ix.log.Warn("search iteration failed", "error", err)
		return nil
	}
	return results
}

// matchExpr builds a lenient FTS5 MATCH expression: each query token is
// quoted and the tokens are OR-joined so partial matches still surface.
func matchExpr(query string) string {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		quoted = append(quoted, `"`+strings.ReplaceAll(t, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " OR ")
}

// Close releases the index database. Safe to call once the owning session
// is done; queries after Close return empty results.
func (ix *Index) Close() error {
	return ix.db.Close()
}
