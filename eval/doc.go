// SPDX-License-Identifier: MIT

// Package eval runs programs over column-major data with a stack machine.
//
// 🚀 Kernel:
//
//	The prefix layout is scanned from the last node to the first. Terminals
//	push a row buffer (constant fill or a copy of a feature column); a
//	function pops its operands, applies a NodeFunc row by row and pushes the
//	result. One buffer remains at the end: the program's predictions.
//
//	    sub(X0, X1):  push X1, push X0, pop X0 (first), pop X1 (second) → X0−X1
//
// ✨ Entry points:
//   - Evaluate     — one program, custom NodeFunc, caller-owned output row.
//   - Execute      — a batch, sequential, out laid out program by program.
//   - ExecuteBatch — the same batch over an errgroup worker pool.
//   - Predict      — one program into a fresh slice.
//   - Apply        — the default protected NodeFunc (total, never NaN/Inf).
//
// Concurrency:
//
//	Programs never share state, so ExecuteBatch hands each program to its own
//	task; every task writes a disjoint region of out. Results are identical
//	to Execute for any worker count.
package eval
