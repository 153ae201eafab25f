// SPDX-License-Identifier: MIT

package program

import (
	"fmt"
	"strings"
)

// Op identifies a function node's operator. Its numeric semantics live
// outside this package (see eval.Apply); here an Op only carries a name
// and an arity.
type Op uint8

// Binary operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMax
	OpMin
	OpAtan2
	OpFdim
)

// Unary operators.
const (
	OpAbs Op = iota + OpFdim + 1
	OpAcos
	OpAcosh
	OpAsin
	OpAsinh
	OpAtan
	OpAtanh
	OpCbrt
	OpCos
	OpCosh
	OpCube
	OpExp
	OpInv
	OpLog
	OpNeg
	OpRsqrt
	OpSin
	OpSinh
	OpSq
	OpSqrt
	OpTan
	OpTanh

	numOps
)

type opInfo struct {
	name  string
	arity int
}

var opTable = [numOps]opInfo{
	OpAdd:   {"add", 2},
	OpSub:   {"sub", 2},
	OpMul:   {"mul", 2},
	OpDiv:   {"div", 2},
	OpPow:   {"pow", 2},
	OpMax:   {"max", 2},
	OpMin:   {"min", 2},
	OpAtan2: {"atan2", 2},
	OpFdim:  {"fdim", 2},
	OpAbs:   {"abs", 1},
	OpAcos:  {"acos", 1},
	OpAcosh: {"acosh", 1},
	OpAsin:  {"asin", 1},
	OpAsinh: {"asinh", 1},
	OpAtan:  {"atan", 1},
	OpAtanh: {"atanh", 1},
	OpCbrt:  {"cbrt", 1},
	OpCos:   {"cos", 1},
	OpCosh:  {"cosh", 1},
	OpCube:  {"cube", 1},
	OpExp:   {"exp", 1},
	OpInv:   {"inv", 1},
	OpLog:   {"log", 1},
	OpNeg:   {"neg", 1},
	OpRsqrt: {"rsqrt", 1},
	OpSin:   {"sin", 1},
	OpSinh:  {"sinh", 1},
	OpSq:    {"sq", 1},
	OpSqrt:  {"sqrt", 1},
	OpTan:   {"tan", 1},
	OpTanh:  {"tanh", 1},
}

// Valid reports whether o is in the catalog.
func (o Op) Valid() bool { return o < numOps }

// Arity returns the number of operands o consumes (1 or 2), or 0 for an
// invalid Op.
func (o Op) Arity() int {
	if !o.Valid() {
		return 0
	}
	return opTable[o].arity
}

// String returns the lowercase operator name, e.g. "add".
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("op(%d)", uint8(o))
	}
	return opTable[o].name
}

// ParseOp maps a name (case-insensitive) back to its Op.
func ParseOp(name string) (Op, error) {
	var key = strings.ToLower(strings.TrimSpace(name))
	for i := Op(0); i < numOps; i++ {
		if opTable[i].name == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("ParseOp(%q): %w", name, ErrUnknownOp)
}

// Ops returns every catalog operator in declaration order.
func Ops() []Op {
	var out = make([]Op, 0, numOps)
	for i := Op(0); i < numOps; i++ {
		out = append(out, i)
	}
	return out
}
