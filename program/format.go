// SPDX-License-Identifier: MIT

package program

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type frame struct {
	arity     int
	remaining int
}

// Format renders a prefix tree in functional notation:
//
//	[add, X0, mul, X1, 0.5]  ⇒  "add(X0, mul(X1, 0.5))"
//
// Constants use the shortest exact representation, so Parse(Format(x)) == x.
// Complexity: O(len) time, O(depth) stack.
func Format(nodes []Node) string {
	var (
		b     strings.Builder
		stack = make([]frame, 0, 16)
	)
	for i := range nodes {
		if n := len(stack); n > 0 && stack[n-1].remaining < stack[n-1].arity {
			b.WriteString(", ")
		}
		b.WriteString(nodes[i].String())
		if nodes[i].IsNonterminal() {
			b.WriteByte('(')
			stack = append(stack, frame{arity: nodes[i].Arity(), remaining: nodes[i].Arity()})
			continue
		}
		for len(stack) > 0 {
			stack[len(stack)-1].remaining--
			if stack[len(stack)-1].remaining > 0 {
				break
			}
			stack = stack[:len(stack)-1]
			b.WriteByte(')')
		}
	}
	return b.String()
}

// Parse reads the functional notation produced by Format back into a
// validated Program. Variables are written X<index>; operator names are
// case-insensitive.
//
// Errors: ErrSyntax, ErrUnknownOp, plus the Validate sentinels.
// Complexity: O(len(text)).
func Parse(text string) (Program, error) {
	var toks, err = tokenize(text)
	if err != nil {
		return Program{}, fmt.Errorf("Parse: %w", err)
	}

	var (
		nodes       []Node
		stack       = make([]frame, 0, 16)
		expectValue = true
	)
	for i := 0; i < len(toks); i++ {
		var tok = toks[i]
		switch tok {
		case ",":
			if expectValue || len(stack) == 0 {
				return Program{}, fmt.Errorf("Parse: unexpected ',' at token %d: %w", i, ErrSyntax)
			}
			var top = &stack[len(stack)-1]
			top.remaining--
			if top.remaining == 0 {
				return Program{}, fmt.Errorf("Parse: too many arguments at token %d: %w", i, ErrSyntax)
			}
			expectValue = true
		case ")":
			if expectValue || len(stack) == 0 {
				return Program{}, fmt.Errorf("Parse: unexpected ')' at token %d: %w", i, ErrSyntax)
			}
			if stack[len(stack)-1].remaining != 1 {
				return Program{}, fmt.Errorf("Parse: too few arguments at token %d: %w", i, ErrSyntax)
			}
			stack = stack[:len(stack)-1]
		case "(":
			return Program{}, fmt.Errorf("Parse: unexpected '(' at token %d: %w", i, ErrSyntax)
		default:
			if !expectValue {
				return Program{}, fmt.Errorf("Parse: unexpected %q at token %d: %w", tok, i, ErrSyntax)
			}
			var node, perr = parseNode(tok)
			if perr != nil {
				return Program{}, fmt.Errorf("Parse: %w", perr)
			}
			nodes = append(nodes, node)
			if node.IsNonterminal() {
				if i+1 >= len(toks) || toks[i+1] != "(" {
					return Program{}, fmt.Errorf("Parse: %s needs '(' at token %d: %w", tok, i+1, ErrSyntax)
				}
				i++
				stack = append(stack, frame{arity: node.Arity(), remaining: node.Arity()})
				continue
			}
			expectValue = false
		}
	}
	if expectValue || len(stack) != 0 {
		return Program{}, fmt.Errorf("Parse: unexpected end of input: %w", ErrSyntax)
	}
	return New(nodes)
}

// parseNode maps one identifier or number token to a Node.
func parseNode(tok string) (Node, error) {
	var c = tok[0]
	if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
		var v, err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return Node{}, fmt.Errorf("bad constant %q: %w", tok, ErrSyntax)
		}
		return Constant(v), nil
	}
	if (c == 'X' || c == 'x') && len(tok) > 1 {
		if fid, err := strconv.Atoi(tok[1:]); err == nil && fid >= 0 {
			return Variable(fid), nil
		}
	}
	var op, err = ParseOp(tok)
	if err != nil {
		return Node{}, err
	}
	return Function(op), nil
}

// tokenize splits text into identifiers, numbers and the punctuation "(", ")", ",".
func tokenize(text string) ([]string, error) {
	var (
		toks []string
		rs   = []rune(text)
	)
	for i := 0; i < len(rs); {
		var r = rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')' || r == ',':
			toks = append(toks, string(r))
			i++
		case isNumberStart(r):
			var j = i + 1
			for j < len(rs) && isNumberPart(rs[j], rs[j-1]) {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		case unicode.IsLetter(r) || r == '_':
			var j = i + 1
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q at %d: %w", r, i, ErrSyntax)
		}
	}
	return toks, nil
}

func isNumberStart(r rune) bool {
	return r == '-' || r == '+' || r == '.' || unicode.IsDigit(r)
}

// isNumberPart accepts digits, '.', exponent markers and a sign right after one.
func isNumberPart(r, prev rune) bool {
	switch {
	case unicode.IsDigit(r) || r == '.' || r == 'e' || r == 'E':
		return true
	case r == '-' || r == '+':
		return prev == 'e' || prev == 'E'
	default:
		return false
	}
}
