// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions controls ReadCSV.
//   - Target  — name (with header) or zero-based index of the target column;
//     "" means the last column.
//   - Comma   — field delimiter; 0 means ','.
//   - NoHeader — the first record is data, columns are named X0…Xn.
type CSVOptions struct {
	Target   string
	Comma    rune
	NoHeader bool
}

// Table is a loaded training set: features, target and the feature names
// in column order (Names[f] labels variable X<f>).
type Table struct {
	X     *Frame
	Y     []float64
	Names []string
}

// ReadCSV parses numeric CSV into a Table, splitting off the target column.
//
// Stages:
//  1. Read all records (encoding/csv enforces a constant field count).
//  2. Resolve the header and the target column.
//  3. Parse every cell as float64; NaN/Inf are rejected.
//
// Errors: ErrEmpty, ErrUnknownColumn, ErrParse, ErrNaNInf, or the csv reader's error.
// Complexity: O(rows*cols).
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	var cr = csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	var header []string
	if !opts.NoHeader && len(records) > 0 {
		header, records = records[0], records[1:]
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("ReadCSV: %w", ErrEmpty)
	}
	var width = len(records[0])
	if header == nil {
		header = make([]string, width)
		for j := range header {
			header[j] = "X" + strconv.Itoa(j)
		}
	}

	target, err := resolveTarget(header, opts.Target)
	if err != nil {
		return nil, err
	}

	var (
		rows  = len(records)
		names = make([]string, 0, width-1)
		y     = make([]float64, rows)
	)
	X, err := NewFrame(rows, width-1)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	for j, name := range header {
		if j != target {
			names = append(names, strings.TrimSpace(name))
		}
	}

	for i, rec := range records {
		var col int
		for j, cell := range rec {
			v, perr := parseCell(cell)
			if perr != nil {
				return nil, fmt.Errorf("ReadCSV: row %d column %q: %w", i+1, header[j], perr)
			}
			if j == target {
				y[i] = v
				continue
			}
			X.data[col*rows+i] = v
			col++
		}
	}
	return &Table{X: X, Y: y, Names: names}, nil
}

// LoadCSV opens path and calls ReadCSV.
func LoadCSV(path string, opts CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, opts)
}

// resolveTarget maps a column name or index to a column position.
func resolveTarget(header []string, target string) (int, error) {
	var key = strings.TrimSpace(target)
	if key == "" {
		return len(header) - 1, nil
	}
	for j, name := range header {
		if strings.TrimSpace(name) == key {
			return j, nil
		}
	}
	if j, err := strconv.Atoi(key); err == nil && j >= 0 && j < len(header) {
		return j, nil
	}
	return 0, fmt.Errorf("ReadCSV: target %q: %w", target, ErrUnknownColumn)
}

func parseCell(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrNaNInf
		}
		return 0, fmt.Errorf("%q: %w", cell, ErrParse)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNaNInf
	}
	return v, nil
}
