// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Frame is a column-major matrix of float64 feature values: column f holds
// all rows of feature f contiguously, so data[f*rows+row] is (row, f).
type Frame struct {
	rows, cols int       // number of rows and feature columns
	data       []float64 // flat backing storage, length == rows*cols
}

// frameErrorf wraps an underlying error with Frame method context.
func frameErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Frame.%s(%d,%d): %w", method, row, col, err)
}

// NewFrame creates a rows×cols Frame initialized to zeros.
// A frame with zero columns is allowed (constant-only programs need no features).
// Complexity: O(rows*cols) time and memory.
func NewFrame(rows, cols int) (*Frame, error) {
	if rows <= 0 || cols < 0 {
		return nil, fmt.Errorf("NewFrame(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Frame{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromColumns copies equally long, finite columns into a new Frame.
//
// Errors: ErrBadShape (no rows), ErrDimensionMismatch (ragged), ErrNaNInf.
// Complexity: O(rows*cols).
func FromColumns(columns [][]float64) (*Frame, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("FromColumns: %w", ErrBadShape)
	}
	var rows = len(columns[0])
	var f = &Frame{rows: rows, cols: len(columns), data: make([]float64, 0, rows*len(columns))}
	for j, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has %d rows, want %d: %w", j, len(col), rows, ErrDimensionMismatch)
		}
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, frameErrorf("FromColumns", i, j, ErrNaNInf)
			}
		}
		f.data = append(f.data, col...)
	}
	return f, nil
}

// FromRows transposes row-major records into a column-major Frame.
// Complexity: O(rows*cols).
func FromRows(records [][]float64) (*Frame, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	var cols = len(records[0])
	var f, err = NewFrame(len(records), cols)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rec), cols, ErrDimensionMismatch)
		}
		for j, v := range rec {
			if err = f.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of feature columns.
func (f *Frame) Cols() int { return f.cols }

// Column returns feature j as a read-only view into the backing storage.
// Panics on an out-of-range index; evaluation validates feature indices up front.
// Complexity: O(1).
func (f *Frame) Column(j int) []float64 {
	return f.data[j*f.rows : (j+1)*f.rows : (j+1)*f.rows]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (f *Frame) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return 0, frameErrorf(method, row, col, ErrOutOfRange)
	}
	return col*f.rows + row, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (f *Frame) At(row, col int) (float64, error) {
	idx, err := f.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return f.data[idx], nil
}

// Set assigns a finite value v at (row, col).
// Complexity: O(1).
func (f *Frame) Set(row, col int, v float64) error {
	idx, err := f.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return frameErrorf("Set", row, col, ErrNaNInf)
	}
	f.data[idx] = v
	return nil
}

// Clone returns a deep copy of the Frame.
// Complexity: O(rows*cols).
func (f *Frame) Clone() *Frame {
	var data = make([]float64, len(f.data))
	copy(data, f.data)
	return &Frame{rows: f.rows, cols: f.cols, data: data}
}

// String implements fmt.Stringer, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	for i := 0; i < f.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < f.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", f.data[j*f.rows+i])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
