// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists per-page resolution outcomes so operators can
// review past runs and spot pages that needed a new pattern.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/certsplit/pkg/types"
)

const dbFile = "certsplit.db"

// Store manages the run-history SQLite database.
type Store struct {
	db        *sql.DB
	reportDir string
}

// NewStore opens or creates the run-history database at
// reportDir/certsplit.db, creating the schema if it does not exist.
func NewStore(reportDir string) (*Store, error) {
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	dbPath := filepath.Join(reportDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, reportDir: reportDir}
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_pdf TEXT NOT NULL,
			started_at TEXT NOT NULL,
			total_pages INTEGER NOT NULL,
			matched INTEGER NOT NULL,
			from_list INTEGER NOT NULL,
			generated INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			page INTEGER NOT NULL,
			name TEXT NOT NULL,
			origin TEXT NOT NULL,
			output_file TEXT,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_run_id ON pages(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one run and its per-page outcomes transactionally.
func (s *Store) Record(ctx context.Context, result *types.RunResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source_pdf, started_at, total_pages, matched, from_list, generated, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.SourcePDF,
		result.StartedAt.Format(time.RFC3339),
		result.Total(),
		result.CountByOrigin(types.OriginPattern),
		result.CountByOrigin(types.OriginList),
		result.CountByOrigin(types.OriginGenerated),
		result.Failed(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pages (run_id, page, name, origin, output_file, error)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range result.Pages {
		if _, err := stmt.ExecContext(ctx, runID, p.Page, p.Name, string(p.Origin), p.OutputFile, p.Error); err != nil {
			return fmt.Errorf("inserting page %d: %w", p.Page, err)
		}
	}

	return tx.Commit()
}
