// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet loads the survey table from an xlsx workbook or a CSV file
// and exposes its rows by zero-based column position.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	// ErrNoInput is returned when no spreadsheet path was given and none was found.
	ErrNoInput = errors.New("no spreadsheet found")

	// ErrUnsupportedFormat is returned for file types the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

	// ErrColumnOutOfRange is returned by Row.Cell for positions outside the table.
	ErrColumnOutOfRange = errors.New("column out of range")
)

// Table is a rectangular view over the loaded rows.
type Table struct {
	// Source is the path the table was read from.
	Source string

	// Header holds the first sheet row when it was used as a header.
	Header []string

	// Width is the number of addressable columns.
	Width int

	rows [][]string
}

// HasHeader reports whether the first sheet row was consumed as a header.
func (t *Table) HasHeader() bool {
	return t.Header != nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the data row at zero-based index i.
func (t *Table) Row(i int) Row {
	return Row{Index: i, cells: t.rows[i], width: t.Width}
}

// Row is one data row. Cells past the row's stored length but inside the
// table width read as empty.
type Row struct {
	Index int
	cells []string
	width int
}

// Cell returns the text at zero-based column col.
func (r Row) Cell(col int) (string, error) {
	if col < 0 || col >= r.width {
		return "", fmt.Errorf("row %d column %d (width %d): %w", r.Index, col, r.width, ErrColumnOutOfRange)
	}
	if col >= len(r.cells) {
		return "", nil
	}
	return r.cells[col], nil
}

// Options controls Load.
type Options struct {
	// Sheet names the worksheet to read; empty selects the first sheet.
	Sheet string

	// MinWidth is the table width the caller needs. When the table loaded
	// with a header row is narrower, it is reloaded without one.
	MinWidth int

	Logger *zap.Logger
}

// Load reads path and builds a table, treating the first row as a header
// unless that leaves the table narrower than opts.MinWidth.
func Load(path string, opts Options) (*Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input %s: %w", path, err)
	}

	records, err := readRecords(path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	t := build(path, records, true)
	if t.Width < opts.MinWidth {
		logger.Debug("table narrower than required, reloading without header",
			zap.String("path", path),
			zap.Int("width", t.Width),
			zap.Int("required", opts.MinWidth))
		t = build(path, records, false)
	}

	logger.Debug("loaded table",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("width", t.Width),
		zap.Bool("header", t.HasHeader()))
	return t, nil
}

func build(path string, records [][]string, header bool) *Table {
	t := &Table{Source: path}
	data := records
	if header && len(records) > 0 {
		t.Header = records[0]
		if t.Header == nil {
			t.Header = []string{}
		}
		t.Width = len(t.Header)
		data = records[1:]
	}
	for _, r := range data {
		if len(r) > t.Width {
			t.Width = len(r)
		}
	}
	t.rows = data
	return t
}

func readRecords(path, sheetName string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheetName)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%s: %w (%q)", path, ErrUnsupportedFormat, ext)
	}
}

func readWorkbook(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheetName, path, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// discoveryPatterns are tried in order; matches within a pattern are sorted.
var discoveryPatterns = []string{"*.xlsx", "*.xls", "*.csv"}

// Discover returns the first spreadsheet in dir: xlsx files first, then
// xls, then csv, each group in name order. Office lock files are skipped.
func Discover(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	for _, pattern := range discoveryPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", fmt.Errorf("searching %s: %w", dir, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if strings.HasPrefix(filepath.Base(m), "~$") {
				continue
			}
			return m, nil
		}
	}
	return "", fmt.Errorf("%w in %s: pass one with --input <file.xlsx>", ErrNoInput, dir)
}

// Resolve returns path when set, otherwise the discovered spreadsheet in dir.
func Resolve(path, dir string) (string, error) {
	if path != "" {
		return path, nil
	}
	return Discover(dir)
}
