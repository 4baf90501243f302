// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve picks the output name for each certificate page and
// turns it into a safe output filename.
package resolve

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/certsplit/internal/pattern"
	"github.com/pdiddy/certsplit/pkg/types"
)

// minNameLen is the minimum length, in runes, for a captured name to be
// accepted. Shorter captures are treated as non-matches.
const minNameLen = 3

var whitespaceRun = regexp.MustCompile(`\s+`)

// Name resolves the output name for one page. The external name, when
// non-empty after trimming, always wins. Otherwise the patterns are tried
// in priority order against the full page text and the first usable
// group-1 capture is returned. When nothing matches the sequential
// fallback identifier certificado_NNN is generated from the 1-based
// page number.
func Name(pageText string, pageNum int, externalName string, ps *pattern.Set) (string, types.Origin) {
	if name := strings.TrimSpace(externalName); name != "" {
		return name, types.OriginList
	}

	for _, p := range ps.Patterns() {
		m := p.Expr.FindStringSubmatch(pageText)
		if m == nil || len(m) < 2 {
			continue
		}
		if name := normalize(m[1]); utf8.RuneCountInString(name) >= minNameLen {
			return name, types.OriginPattern
		}
	}

	return Fallback(pageNum), types.OriginGenerated
}

// Fallback returns the deterministic identifier for a page no name could
// be resolved for: certificado_ plus the zero-padded 1-based page number.
func Fallback(pageNum int) string {
	return fmt.Sprintf("certificado_%03d", pageNum)
}

// normalize trims a capture, keeps only its first line, and collapses
// internal whitespace runs to single spaces.
func normalize(capture string) string {
	name := strings.TrimSpace(capture)
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
