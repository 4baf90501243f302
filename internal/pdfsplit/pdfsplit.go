// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfsplit wraps the two PDF collaborators of the splitter:
// per-page text extraction (ledongthuc/pdf) and writing a single page
// out as its own document (pdfcpu).
package pdfsplit

import (
	"fmt"
	"strconv"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Splitter provides page access over input PDFs on disk.
type Splitter struct {
	conf *model.Configuration
}

// New returns a Splitter with the default pdfcpu configuration.
func New() *Splitter {
	return &Splitter{conf: model.NewDefaultConfiguration()}
}

// PageCount returns the number of pages in the PDF at path.
func (s *Splitter) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

// PageTexts extracts the full text of every page, in page order. A page
// whose text cannot be extracted yields an empty string instead of
// failing the whole file; the resolver falls back to the sequential
// identifier for such pages.
func (s *Splitter) PageTexts(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	texts := make([]string, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		texts[i-1] = text
	}
	return texts, nil
}

// ExtractPage writes the single page pageNum (1-based) of src as a new
// PDF at dest.
func (s *Splitter) ExtractPage(src string, pageNum int, dest string) error {
	pages := []string{strconv.Itoa(pageNum)}
	if err := api.TrimFile(src, dest, pages, s.conf); err != nil {
		return fmt.Errorf("extracting page %d of %s: %w", pageNum, src, err)
	}
	return nil
}
