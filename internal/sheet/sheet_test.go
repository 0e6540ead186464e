// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadWorkbookWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slr.xlsx")
	writeWorkbook(t, path, [][]any{
		{"ID", "Title", "Year"},
		{"1", "First paper", 2019},
		{"2", "Second paper"},
	})

	tbl, err := Load(path, Options{MinWidth: 3, Logger: zap.NewNop()})
	require.NoError(t, err)

	assert.True(t, tbl.HasHeader())
	assert.Equal(t, []string{"ID", "Title", "Year"}, tbl.Header)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 3, tbl.Width)

	v, err := tbl.Row(0).Cell(2)
	require.NoError(t, err)
	assert.Equal(t, "2019", v)

	// Inside the table width but past the stored cells: empty, not an error.
	v, err = tbl.Row(1).Cell(2)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = tbl.Row(1).Cell(3)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestLoadFallsBackWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.xlsx")
	writeWorkbook(t, path, [][]any{
		{"a", "b"},
		{"c", "d"},
	})

	tbl, err := Load(path, Options{MinWidth: 33})
	require.NoError(t, err)

	assert.False(t, tbl.HasHeader())
	assert.Equal(t, 2, tbl.Len())
	v, err := tbl.Row(0).Cell(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = tbl.Row(0).Cell(32)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slr.csv")
	writeFile(t, path, "h1,h2,h3\n\"Smith, J\",Title,2020\nshort\n")

	tbl, err := Load(path, Options{MinWidth: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	v, err := tbl.Row(0).Cell(0)
	require.NoError(t, err)
	assert.Equal(t, "Smith, J", v)

	v, err = tbl.Row(1).Cell(2)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestLoadSelectsSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Extraction")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "wrong"))
	require.NoError(t, f.SetCellValue("Extraction", "A1", "header"))
	require.NoError(t, f.SetCellValue("Extraction", "A2", "right"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path, Options{Sheet: "Extraction", MinWidth: 1})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	v, err := tbl.Row(0).Cell(0)
	require.NoError(t, err)
	assert.Equal(t, "right", v)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.xlsx"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	legacy := filepath.Join(dir, "old.xls")
	writeFile(t, legacy, "binary")
	_, err = Load(legacy, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		want    string
		wantErr error
	}{
		{"xlsx before csv", []string{"b.csv", "b.xlsx", "a.xlsx"}, "a.xlsx", nil},
		{"xls before csv", []string{"a.csv", "z.xls"}, "z.xls", nil},
		{"skips lock files", []string{"~$a.xlsx", "b.xlsx"}, "b.xlsx", nil},
		{"csv only", []string{"data.csv", "notes.txt"}, "data.csv", nil},
		{"nothing", []string{"notes.txt"}, "", ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.files {
				writeFile(t, filepath.Join(dir, name), "")
			}
			got, err := Discover(dir)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), got)
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve("given.xlsx", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "given.xlsx", got)
}
