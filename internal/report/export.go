// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportRun is the YAML shape of one recorded run.
type ExportRun struct {
	SourcePDF  string       `yaml:"source_pdf"`
	StartedAt  string       `yaml:"started_at"`
	TotalPages int          `yaml:"total_pages"`
	Matched    int          `yaml:"matched"`
	FromList   int          `yaml:"from_list"`
	Generated  int          `yaml:"generated"`
	Failed     int          `yaml:"failed"`
	Pages      []ExportPage `yaml:"pages"`
}

// ExportPage is one page outcome within an export.
type ExportPage struct {
	Page       int    `yaml:"page"`
	Name       string `yaml:"name"`
	Origin     string `yaml:"origin"`
	OutputFile string `yaml:"output_file,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// ExportYAML writes the most recent run to reportDir/last-run.yaml for
// operator review. With no recorded runs it is a no-op.
func (s *Store) ExportYAML(ctx context.Context) error {
	run, err := s.lastRun(ctx)
	if err != nil {
		return err
	}
	if run == nil {
		return nil
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}

	path := filepath.Join(s.reportDir, "last-run.yaml")
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) lastRun(ctx context.Context) (*ExportRun, error) {
	var (
		runID int64
		run   ExportRun
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source_pdf, started_at, total_pages, matched, from_list, generated, failed
		 FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&runID, &run.SourcePDF, &run.StartedAt, &run.TotalPages,
		&run.Matched, &run.FromList, &run.Generated, &run.Failed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT page, name, origin, output_file, error FROM pages
		 WHERE run_id = ? ORDER BY page`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ExportPage
		if err := rows.Scan(&p.Page, &p.Name, &p.Origin, &p.OutputFile, &p.Error); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		run.Pages = append(run.Pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pages: %w", err)
	}

	return &run, nil
}
