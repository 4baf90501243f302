// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name untouched", "Ana Torres", "Ana Torres"},
		{"unsafe characters removed", `Ana<>:"/\|?*Torres`, "AnaTorres"},
		{"whitespace collapsed and trimmed", "  Ana \t Torres  ", "Ana Torres"},
		{"empty becomes placeholder", "", "certificado_sin_nombre"},
		{"only unsafe characters becomes placeholder", `<>:"/\|?*`, "certificado_sin_nombre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeBase(tt.in); got != tt.want {
				t.Errorf("SanitizeBase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeBase_LengthCap(t *testing.T) {
	long := strings.Repeat("á", 150)
	got := SanitizeBase(long)
	if n := len([]rune(got)); n != 100 {
		t.Errorf("sanitized length = %d runes, want 100", n)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("curso-", "Ana Torres", "-2026"); got != "curso-Ana Torres-2026.pdf" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("", "certificado_001", ""); got != "certificado_001.pdf" {
		t.Errorf("Filename = %q", got)
	}
}

func TestCollisionPath(t *testing.T) {
	dir := t.TempDir()

	first := CollisionPath(dir, "", "Ana Torres", "")
	if want := filepath.Join(dir, "Ana Torres.pdf"); first != want {
		t.Fatalf("first path = %q, want %q", first, want)
	}
	if err := os.WriteFile(first, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	second := CollisionPath(dir, "", "Ana Torres", "")
	if want := filepath.Join(dir, "Ana Torres_1.pdf"); second != want {
		t.Fatalf("second path = %q, want %q", second, want)
	}
	if err := os.WriteFile(second, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	third := CollisionPath(dir, "", "Ana Torres", "")
	if want := filepath.Join(dir, "Ana Torres_2.pdf"); third != want {
		t.Fatalf("third path = %q, want %q", third, want)
	}
}

func TestCollisionPath_SuffixStaysLast(t *testing.T) {
	dir := t.TempDir()

	taken := filepath.Join(dir, "curso-Ana-2026.pdf")
	if err := os.WriteFile(taken, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := CollisionPath(dir, "curso-", "Ana", "-2026")
	if want := filepath.Join(dir, "curso-Ana_1-2026.pdf"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
