// Package spanindex persists a genome's identifier and span tables to
// SQLite so other tools can resolve offsets without loading sequences.
package spanindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"refgenome-core/genome"
)

const schema = `
CREATE TABLE IF NOT EXISTS spans (
	id           TEXT PRIMARY KEY,
	start_offset INTEGER NOT NULL,
	end_offset   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS spans_start ON spans (start_offset);
CREATE TABLE IF NOT EXISTS owners (
	start_offset INTEGER PRIMARY KEY,
	id           TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Index is an open span database.
type Index struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close releases the database handle.
func (x *Index) Close() error { return x.db.Close() }

// Save replaces the stored tables with g's records in one transaction.
func (x *Index) Save(ctx context.Context, g *genome.Genome) (retErr error) {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, table := range [...]string{"spans", "owners"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO spans (id, start_offset, end_offset) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for _, e := range g.Entries() {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Span.Start, e.Span.End); err != nil {
			return fmt.Errorf("insert %s: %w", e.ID, err)
		}
	}
	ownStmt, err := tx.PrepareContext(ctx, `INSERT INTO owners (start_offset, id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = ownStmt.Close() }()
	for _, o := range g.Owners() {
		if _, err := ownStmt.ExecContext(ctx, o.Start, o.ID); err != nil {
			return fmt.Errorf("insert owner %d: %w", o.Start, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('condensed_length', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		fmt.Sprint(len(g.Condensed()))); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Span returns the stored span for id.
func (x *Index) Span(ctx context.Context, id string) (genome.Span, bool, error) {
	var sp genome.Span
	err := x.db.QueryRowContext(ctx,
		`SELECT start_offset, end_offset FROM spans WHERE id = ?`, id).Scan(&sp.Start, &sp.End)
	if errors.Is(err, sql.ErrNoRows) {
		return genome.Span{}, false, nil
	}
	if err != nil {
		return genome.Span{}, false, fmt.Errorf("select span: %w", err)
	}
	return sp, true, nil
}

// Locate mirrors Genome.Range: the owner of the greatest start strictly
// below pos. An owner whose span no longer begins at that start (an
// overwritten duplicate) is not found.
func (x *Index) Locate(ctx context.Context, pos int) (string, genome.Span, bool, error) {
	var (
		id         string
		start, end sql.NullInt64
	)
	err := x.db.QueryRowContext(ctx,
		`SELECT o.id, s.start_offset, s.end_offset FROM owners o
		 LEFT JOIN spans s ON s.id = o.id AND s.start_offset = o.start_offset
		 WHERE o.start_offset < ?
		 ORDER BY o.start_offset DESC
		 LIMIT 1`, pos).Scan(&id, &start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return "", genome.Span{}, false, nil
	}
	if err != nil {
		return "", genome.Span{}, false, fmt.Errorf("locate %d: %w", pos, err)
	}
	if !start.Valid || !end.Valid {
		return "", genome.Span{}, false, nil
	}
	return id, genome.Span{Start: int(start.Int64), End: int(end.Int64)}, true, nil
}

// Count returns the number of stored spans.
func (x *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := x.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// CondensedLength returns the condensed length recorded by the last Save.
func (x *Index) CondensedLength(ctx context.Context) (int, bool, error) {
	var n int
	err := x.db.QueryRowContext(ctx,
		`SELECT CAST(value AS INTEGER) FROM meta WHERE key = 'condensed_length'`).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select meta: %w", err)
	}
	return n, true, nil
}

// Save is a convenience wrapper that opens path, saves g and closes.
func Save(ctx context.Context, path string, g *genome.Genome) (err error) {
	x, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := x.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return x.Save(ctx, g)
}
