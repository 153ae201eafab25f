// SPDX-License-Identifier: MIT

package program

import (
	"fmt"
	"strconv"
)

// Kind discriminates the three Node variants.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a zero Node is never a valid tree element.
	KindInvalid Kind = iota
	// KindFunction marks a nonterminal carrying an Op.
	KindFunction
	// KindVariable marks a terminal reading one feature column.
	KindVariable
	// KindConstant marks a terminal carrying a literal.
	KindConstant
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindConstant:
		return "constant"
	default:
		return "invalid"
	}
}

// Node is an immutable tagged value: Function(op), Variable(feature) or
// Constant(value). Nodes are comparable with ==.
type Node struct {
	kind    Kind
	op      Op
	feature int
	value   float64
}

// Function returns a nonterminal node for op.
func Function(op Op) Node { return Node{kind: KindFunction, op: op} }

// Variable returns a terminal node reading feature column fid.
func Variable(fid int) Node { return Node{kind: KindVariable, feature: fid} }

// Constant returns a terminal node holding v.
func Constant(v float64) Node { return Node{kind: KindConstant, value: v} }

// Kind returns the variant tag.
func (n Node) Kind() Kind { return n.kind }

// Op returns the operator of a function node (meaningless otherwise).
func (n Node) Op() Op { return n.op }

// Feature returns the column index of a variable node (meaningless otherwise).
func (n Node) Feature() int { return n.feature }

// Value returns the literal of a constant node (meaningless otherwise).
func (n Node) Value() float64 { return n.value }

// IsNonterminal reports whether n is a function node.
func (n Node) IsNonterminal() bool { return n.kind == KindFunction }

// IsTerminal reports whether n is a variable or constant.
func (n Node) IsTerminal() bool { return n.kind == KindVariable || n.kind == KindConstant }

// Arity is the number of child slots n opens: op arity for functions, 0 for terminals.
func (n Node) Arity() int {
	if n.kind != KindFunction {
		return 0
	}
	return n.op.Arity()
}

// valid reports whether n can appear in a program.
func (n Node) valid() bool {
	switch n.kind {
	case KindFunction:
		return n.op.Valid()
	case KindVariable:
		return n.feature >= 0
	case KindConstant:
		return true
	default:
		return false
	}
}

// String renders a single node: the op name, "X<fid>", or the constant.
func (n Node) String() string {
	switch n.kind {
	case KindFunction:
		return n.op.String()
	case KindVariable:
		return "X" + strconv.Itoa(n.feature)
	case KindConstant:
		return strconv.FormatFloat(n.value, 'g', -1, 64)
	default:
		return fmt.Sprintf("node(%d)", uint8(n.kind))
	}
}
