// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/certsplit/pkg/types"
)

func sampleResult() *types.RunResult {
	return &types.RunResult{
		SourcePDF: "entrada/curso.pdf",
		StartedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		Pages: []types.PageResolution{
			{Page: 1, Name: "Ana Torres", Origin: types.OriginPattern, OutputFile: "salida/Ana Torres.pdf"},
			{Page: 2, Name: "María López", Origin: types.OriginList, OutputFile: "salida/María López.pdf"},
			{Page: 3, Name: "certificado_003", Origin: types.OriginGenerated, Error: "disk full"},
		},
	}
}

func TestRecordAndExport(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Record(ctx, sampleResult()))
	require.NoError(t, s.ExportYAML(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "last-run.yaml"))
	require.NoError(t, err)

	var run ExportRun
	require.NoError(t, yaml.Unmarshal(data, &run))

	assert.Equal(t, "entrada/curso.pdf", run.SourcePDF)
	assert.Equal(t, 3, run.TotalPages)
	assert.Equal(t, 1, run.Matched)
	assert.Equal(t, 1, run.FromList)
	assert.Equal(t, 0, run.Generated) // the generated page failed to write
	assert.Equal(t, 1, run.Failed)

	require.Len(t, run.Pages, 3)
	assert.Equal(t, "Ana Torres", run.Pages[0].Name)
	assert.Equal(t, "pattern", run.Pages[0].Origin)
	assert.Equal(t, "disk full", run.Pages[2].Error)
}

func TestExportYAML_LatestRunWins(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Record(ctx, sampleResult()))

	second := sampleResult()
	second.SourcePDF = "entrada/otro.pdf"
	require.NoError(t, s.Record(ctx, second))
	require.NoError(t, s.ExportYAML(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "last-run.yaml"))
	require.NoError(t, err)

	var run ExportRun
	require.NoError(t, yaml.Unmarshal(data, &run))
	assert.Equal(t, "entrada/otro.pdf", run.SourcePDF)
}

func TestExportYAML_EmptyStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.ExportYAML(context.Background()))
	_, err = os.Stat(filepath.Join(dir, "last-run.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewStore_ReopensExistingDatabase(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), sampleResult()))
	require.NoError(t, s.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	run, err := s2.lastRun(context.Background())
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 3, run.TotalPages)
}
