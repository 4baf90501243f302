// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration and result records used
// across certsplit stages.
package types

import "time"

// Origin identifies how a page's name was determined.
type Origin string

const (
	// OriginPattern means the name was captured from the page text by one
	// of the configured patterns.
	OriginPattern Origin = "pattern"

	// OriginList means the name came from the external name list.
	OriginList Origin = "list"

	// OriginGenerated means no name could be determined and the
	// sequential certificado_NNN fallback was used.
	OriginGenerated Origin = "generated"
)

// PageResolution records the outcome for one certificate page.
type PageResolution struct {
	// Page is the 1-based page number in the source PDF.
	Page int `json:"page" yaml:"page"`

	// Name is the resolved recipient name (or fallback identifier).
	Name string `json:"name" yaml:"name"`

	// Origin tells whether the name was matched, listed, or generated.
	Origin Origin `json:"origin" yaml:"origin"`

	// OutputFile is the path the single-page PDF was written to.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// Error holds the write error for this page, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunResult holds the per-page outcomes of splitting one source PDF.
type RunResult struct {
	// SourcePDF is the input file that was split.
	SourcePDF string `json:"source_pdf" yaml:"source_pdf"`

	// StartedAt is when processing of this file began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Pages lists one resolution per page, in page order.
	Pages []PageResolution `json:"pages" yaml:"pages"`
}

// Total returns the number of pages in the source PDF.
func (r *RunResult) Total() int {
	return len(r.Pages)
}

// CountByOrigin returns the number of successfully written pages whose
// name came from the given origin.
func (r *RunResult) CountByOrigin(o Origin) int {
	n := 0
	for _, p := range r.Pages {
		if p.Error == "" && p.Origin == o {
			n++
		}
	}
	return n
}

// Failed returns the number of pages that could not be written.
func (r *RunResult) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Error != "" {
			n++
		}
	}
	return n
}

// HasFailures reports whether any page of this run failed.
func (r *RunResult) HasFailures() bool {
	return r.Failed() > 0
}
