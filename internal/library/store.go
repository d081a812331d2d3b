// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists batch-report book records in a SQLite index so
// a reading system can search the collection by title and description.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/book-engine/pkg/types"
)

const dbFile = "library.db"

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	libraryDir string
	maxResults int
}

// NewStore opens or creates the library database at libraryDir/library.db,
// creating the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LibraryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		libraryDir: cfg.LibraryDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS books (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			book_name TEXT NOT NULL UNIQUE,
			title TEXT,
			description TEXT,
			original_file TEXT,
			output_file TEXT,
			page_count INTEGER,
			chapter_count INTEGER,
			file_size INTEGER,
			output_size INTEGER,
			processed_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_books_processed_at ON books(processed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='books_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE books_fts USING fts5(book_name, title, description, content=books, content_rowid=rowid)`,
			`CREATE TRIGGER books_ai AFTER INSERT ON books BEGIN
				INSERT INTO books_fts(rowid, book_name, title, description)
				VALUES (new.rowid, new.book_name, new.title, new.description);
			END`,
			`CREATE TRIGGER books_ad AFTER DELETE ON books BEGIN
				INSERT INTO books_fts(books_fts, rowid, book_name, title, description)
				VALUES('delete', old.rowid, old.book_name, old.title, old.description);
			END`,
			`CREATE TRIGGER books_au AFTER UPDATE ON books BEGIN
				INSERT INTO books_fts(books_fts, rowid, book_name, title, description)
				VALUES('delete', old.rowid, old.book_name, old.title, old.description);
				INSERT INTO books_fts(rowid, book_name, title, description)
				VALUES (new.rowid, new.book_name, new.title, new.description);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest reads a batch report and populates the database, replacing any
// previously indexed record for the same book. On success it writes
// export.yaml next to the database.
func (s *Store) Ingest(ctx context.Context, reportPath string, w io.Writer) (int, error) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return 0, fmt.Errorf("reading report %s: %w", reportPath, err)
	}

	var report types.BatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return 0, fmt.Errorf("parsing report %s: %w", reportPath, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Explicit delete-then-insert so the FTS sync triggers fire for
	// replaced rows.
	del, err := tx.PrepareContext(ctx, `DELETE FROM books WHERE book_name = ?`)
	if err != nil {
		return 0, fmt.Errorf("preparing delete: %w", err)
	}
	defer del.Close()

	ins, err := tx.PrepareContext(ctx,
		`INSERT INTO books (book_name, title, description, original_file, output_file,
			page_count, chapter_count, file_size, output_size, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer ins.Close()

	for _, book := range report.Books {
		if _, err := del.ExecContext(ctx, book.BookName); err != nil {
			return 0, fmt.Errorf("deleting old record %s: %w", book.BookName, err)
		}

		var title sql.NullString
		if book.Title != nil {
			title = sql.NullString{String: *book.Title, Valid: true}
		}

		_, err := ins.ExecContext(ctx,
			book.BookName, title, book.Description, book.OriginalFile, book.OutputFile,
			book.PageCount, book.ChapterCount, book.FileSize, book.OutputSize, book.ProcessedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting %s: %w", book.BookName, err)
		}

		fmt.Fprintf(w, "indexed %s (%d pages, %d chapters)\n",
			book.BookName, book.PageCount, book.ChapterCount)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "\n%d book(s) indexed\n", len(report.Books))

	if len(report.Books) > 0 {
		if err := s.ExportYAML(ctx); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return len(report.Books), nil
}

// Search queries the index with FTS5 full-text search over book name,
// title, and description. An empty query lists all books by name.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.BookRecord, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)

	if query != "" {
		qb.WriteString(
			`SELECT b.book_name, b.title, b.description, b.original_file, b.output_file,
				b.page_count, b.chapter_count, b.file_size, b.output_size, b.processed_at
			FROM books_fts
			JOIN books b ON b.rowid = books_fts.rowid
			WHERE books_fts MATCH ?
			ORDER BY books_fts.rank`)
		args = append(args, query)
	} else {
		qb.WriteString(
			`SELECT b.book_name, b.title, b.description, b.original_file, b.output_file,
				b.page_count, b.chapter_count, b.file_size, b.output_size, b.processed_at
			FROM books b
			ORDER BY b.book_name`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var results []types.BookRecord
	for rows.Next() {
		var (
			book  types.BookRecord
			title sql.NullString
		)
		if err := rows.Scan(
			&book.BookName, &title, &book.Description, &book.OriginalFile, &book.OutputFile,
			&book.PageCount, &book.ChapterCount, &book.FileSize, &book.OutputSize, &book.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if title.Valid {
			book.Title = &title.String
		}
		results = append(results, book)
	}

	return results, rows.Err()
}
