// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern loads and compiles the ordered set of search patterns
// used to locate recipient names in certificate text.
//
// The pattern file is plain UTF-8 text: lines starting with '#' and blank
// lines are ignored, every other line is a regular expression with one
// capturing group. File order defines match priority. Patterns compile
// exactly as written, so matching is case-sensitive unless a pattern opts
// in with an inline (?i) flag.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Pattern is one compiled search pattern together with its source text.
type Pattern struct {
	// Source is the pattern line exactly as it appeared in the file.
	Source string

	// Line is the 1-based line number in the pattern file, 0 for built-ins.
	Line int

	// Expr is the compiled expression. Group 1 captures the name.
	Expr *regexp.Regexp
}

// Set is an ordered collection of compiled patterns.
type Set struct {
	patterns []Pattern
}

// Patterns returns the compiled patterns in priority order.
func (s *Set) Patterns() []Pattern {
	return s.patterns
}

// Len returns the number of loaded patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// defaultSources are the built-in patterns used when no pattern file
// exists. They match the phrasing of common Spanish-language certificates.
var defaultSources = []string{
	`Se otorga el presente reconocimiento a:\s*\n?\s*(.+?)(?:\n|Por su)`,
	`[Oo]torga(?:do)? a:\s*(.+?)(?:\n|$)`,
	`[Cc]ertifica(?:do)? a:\s*(.+?)(?:\n|$)`,
}

// Default returns the built-in pattern set.
func Default() *Set {
	s := &Set{}
	for _, src := range defaultSources {
		s.patterns = append(s.patterns, Pattern{
			Source: src,
			Expr:   regexp.MustCompile(src),
		})
	}
	return s
}

// Load reads the pattern file at path. A missing file is not an error:
// Load warns on warn and returns the built-in defaults. Lines that fail
// to compile, or that have no capturing group, are reported on warn with
// their line number and skipped; the remaining patterns stay usable.
func Load(path string, warn io.Writer) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(warn, "warning: pattern file %s not found, using built-in patterns\n", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("opening pattern file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, warn)
}

// Parse reads pattern lines from r. name is used in warning messages.
func Parse(r io.Reader, name string, warn io.Writer) (*Set, error) {
	s := &Set{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expr, err := regexp.Compile(line)
		if err != nil {
			fmt.Fprintf(warn, "warning: %s:%d: invalid pattern skipped: %v\n", name, lineNum, err)
			continue
		}
		if expr.NumSubexp() == 0 {
			fmt.Fprintf(warn, "warning: %s:%d: pattern has no capturing group, skipped\n", name, lineNum)
			continue
		}

		s.patterns = append(s.patterns, Pattern{
			Source: line,
			Line:   lineNum,
			Expr:   expr,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pattern file %s: %w", name, err)
	}
	return s, nil
}
