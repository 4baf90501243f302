// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `# recipient patterns, checked in order
Se otorga el presente reconocimiento a:\s*(.+?)(?:\n|Por su)

[Oo]torga(?:do)? a:\s*(.+?)(?:\n|$)
`
	var warn bytes.Buffer
	s, err := Parse(strings.NewReader(input), "patrones.txt", &warn)
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Patterns()[0].Line)
	assert.Equal(t, 4, s.Patterns()[1].Line)
	assert.Empty(t, warn.String())
}

func TestParse_OnlyCommentsAndBlanks(t *testing.T) {
	input := "# first comment\n\n   \n# second comment\n"
	var warn bytes.Buffer
	s, err := Parse(strings.NewReader(input), "patrones.txt", &warn)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestParse_SkipsInvalidPattern(t *testing.T) {
	input := "Otorgado a:\\s*(.+?)\n[invalid(\nCertificado a:\\s*(.+?)\n"
	var warn bytes.Buffer
	s, err := Parse(strings.NewReader(input), "patrones.txt", &warn)
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Contains(t, warn.String(), "patrones.txt:2")
	assert.Contains(t, warn.String(), "invalid pattern skipped")
}

func TestParse_SkipsPatternWithoutGroup(t *testing.T) {
	input := "Otorgado a:\\s*\\S+\n"
	var warn bytes.Buffer
	s, err := Parse(strings.NewReader(input), "patrones.txt", &warn)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	assert.Contains(t, warn.String(), "no capturing group")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	var warn bytes.Buffer
	s, err := Load(filepath.Join(t.TempDir(), "nope.txt"), &warn)
	require.NoError(t, err)

	assert.Equal(t, len(defaultSources), s.Len())
	assert.Contains(t, warn.String(), "using built-in patterns")
}

func TestLoad_FileOrderIsPriorityOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patrones.txt")
	content := "primero:(.+)\nsegundo:(.+)\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var warn bytes.Buffer
	s, err := Load(path, &warn)
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "primero:(.+)", s.Patterns()[0].Source)
	assert.Equal(t, "segundo:(.+)", s.Patterns()[1].Source)
}

func TestDefault(t *testing.T) {
	s := Default()
	require.Equal(t, 3, s.Len())
	for _, p := range s.Patterns() {
		assert.Zero(t, p.Line)
		assert.Greater(t, p.Expr.NumSubexp(), 0)
	}
}
