// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// maxBaseLen caps the sanitized base name length, in runes.
	maxBaseLen = 100

	// unnamedBase replaces names that sanitize down to nothing.
	unnamedBase = "certificado_sin_nombre"
)

// unsafeChars are characters not allowed in filenames on common filesystems.
var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeBase cleans a resolved name for use as a filename base:
// filesystem-unsafe characters are removed, whitespace runs collapse to
// single spaces, and the result is trimmed and length-capped.
func SanitizeBase(name string) string {
	base := unsafeChars.ReplaceAllString(name, "")
	base = whitespaceRun.ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)

	if runes := []rune(base); len(runes) > maxBaseLen {
		base = strings.TrimSpace(string(runes[:maxBaseLen]))
	}
	if base == "" {
		base = unnamedBase
	}
	return base
}

// Filename assembles the output filename from its parts.
func Filename(prefix, base, suffix string) string {
	return prefix + base + suffix + ".pdf"
}

// CollisionPath returns a free output path for base in dir. When the
// plain name is taken, a numeric suffix _1, _2, ... is inserted before
// the caller suffix so that an existing file is never overwritten.
func CollisionPath(dir, prefix, base, suffix string) string {
	path := filepath.Join(dir, Filename(prefix, base, suffix))
	for n := 1; exists(path); n++ {
		numbered := fmt.Sprintf("%s_%d", base, n)
		path = filepath.Join(dir, Filename(prefix, numbered, suffix))
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
