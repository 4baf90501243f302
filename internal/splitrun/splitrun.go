// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitrun orchestrates split runs: input discovery, the
// per-page resolve-and-write loop, and run summaries.
package splitrun

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pdiddy/certsplit/internal/pattern"
	"github.com/pdiddy/certsplit/internal/resolve"
	"github.com/pdiddy/certsplit/pkg/types"
)

// Splitter provides page access over an input PDF. The production
// implementation is pdfsplit.Splitter; tests supply fakes.
type Splitter interface {
	// PageTexts returns the extracted text of every page, in page order.
	PageTexts(path string) ([]string, error)

	// ExtractPage writes page pageNum (1-based) of src to dest.
	ExtractPage(src string, pageNum int, dest string) error
}

// SplitFile splits one PDF into per-page files in cfg.OutputDir, naming
// each page through the resolver. Per-page write errors are recorded on
// the result and do not stop the remaining pages. The returned error is
// reserved for failures of the whole file (unreadable PDF, unwritable
// output directory).
func SplitFile(s Splitter, cfg types.Config, pdfPath string, names []string, ps *pattern.Set, w io.Writer) (*types.RunResult, error) {
	texts, err := s.PageTexts(pdfPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	base := filepath.Base(pdfPath)
	total := len(texts)
	fmt.Fprintf(w, "splitting %s (%d pages, %d patterns)\n", base, total, ps.Len())

	if len(names) > 0 && len(names) < total {
		fmt.Fprintf(w, "warning: name list has %d names for %d pages, remaining pages use pattern matching\n",
			len(names), total)
	}

	result := &types.RunResult{
		SourcePDF: pdfPath,
		StartedAt: time.Now().UTC(),
	}

	for i, text := range texts {
		pageNum := i + 1

		external := ""
		if i < len(names) {
			external = names[i]
		}

		name, origin := resolve.Name(text, pageNum, external, ps)
		outPath := resolve.CollisionPath(cfg.OutputDir, cfg.Prefix, resolve.SanitizeBase(name), cfg.Suffix)

		page := types.PageResolution{
			Page:       pageNum,
			Name:       name,
			Origin:     origin,
			OutputFile: outPath,
		}

		if err := s.ExtractPage(pdfPath, pageNum, outPath); err != nil {
			page.Error = err.Error()
			fmt.Fprintf(w, "failed [%d/%d] %s: %v\n", pageNum, total, filepath.Base(outPath), err)
		} else {
			fmt.Fprintf(w, "ok     [%d/%d] %s (%s)\n", pageNum, total, filepath.Base(outPath), origin)
		}

		result.Pages = append(result.Pages, page)
	}

	fmt.Fprintf(w, "\n%s: %d pages, %d matched, %d from list, %d generated, %d failed\n",
		base, result.Total(),
		result.CountByOrigin(types.OriginPattern),
		result.CountByOrigin(types.OriginList),
		result.CountByOrigin(types.OriginGenerated),
		result.Failed())

	return result, nil
}

// ProcessDir splits every PDF found in cfg.InputDir. A file that cannot
// be read fails alone; the batch continues. When cfg.RemoveInput is set,
// inputs whose pages were all written successfully are deleted afterwards.
func ProcessDir(s Splitter, cfg types.Config, names []string, ps *pattern.Set, w io.Writer) ([]*types.RunResult, error) {
	if _, err := os.Stat(cfg.InputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating input directory %s: %w", cfg.InputDir, err)
		}
		fmt.Fprintf(w, "created input directory %s, place PDFs there and run again\n", cfg.InputDir)
		return nil, nil
	}

	pdfs, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scanning input directory %s: %w", cfg.InputDir, err)
	}
	sort.Strings(pdfs)

	if len(pdfs) == 0 {
		fmt.Fprintf(w, "no PDF files found in %s\n", cfg.InputDir)
		return nil, nil
	}

	fmt.Fprintf(w, "found %d PDF file(s) in %s\n", len(pdfs), cfg.InputDir)

	if cfg.CleanOutput {
		if _, err := CleanOutputDir(cfg.OutputDir, w); err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
		}
	}

	var results []*types.RunResult
	for _, p := range pdfs {
		res, err := SplitFile(s, cfg, p, names, ps, w)
		if err != nil {
			fmt.Fprintf(w, "failed %s: %v\n", filepath.Base(p), err)
			continue
		}
		results = append(results, res)

		if cfg.RemoveInput && !res.HasFailures() {
			if err := os.Remove(p); err != nil {
				fmt.Fprintf(w, "warning: could not remove input %s: %v\n", p, err)
			} else {
				fmt.Fprintf(w, "removed input %s\n", filepath.Base(p))
			}
		}
	}

	pages, failed := 0, 0
	for _, r := range results {
		pages += r.Total() - r.Failed()
		failed += r.Failed()
	}
	fmt.Fprintf(w, "\nBatch summary: %d of %d file(s) processed, %d page(s) written, %d failure(s)\n",
		len(results), len(pdfs), pages, failed)

	return results, nil
}

// CleanOutputDir removes existing PDF files from dir before a run. A
// missing directory is not an error.
func CleanOutputDir(dir string, w io.Writer) (int, error) {
	pdfs, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return 0, fmt.Errorf("scanning output directory %s: %w", dir, err)
	}

	removed := 0
	for _, p := range pdfs {
		if err := os.Remove(p); err != nil {
			fmt.Fprintf(w, "warning: could not remove %s: %v\n", p, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		fmt.Fprintf(w, "removed %d existing file(s) from %s\n", removed, dir)
	}
	return removed, nil
}
