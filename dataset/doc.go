// SPDX-License-Identifier: MIT

// Package dataset holds the numeric training data programs are evaluated on.
//
// Layout contract: features are column-major. Frame.Column(f) is the
// contiguous slice of feature f over all rows, which is what the evaluation
// kernel copies when it meets Variable(f).
//
// ✨ Contents:
//   - Frame     — column-major float64 matrix (NewFrame, FromColumns, FromRows).
//   - ReadCSV   — numeric CSV with optional header, split into features + target.
//   - LoadCSV   — ReadCSV from a file path.
//
// All values are finite: constructors and Set reject NaN/±Inf with ErrNaNInf.
package dataset
