// SPDX-License-Identifier: MIT

package program_test

import (
	"fmt"

	"github.com/katalvlaran/lvgp/program"
)

// ExampleDepth shows the prefix layout and the arity-stack depth walk.
func ExampleDepth() {
	var nodes = []program.Node{
		program.Function(program.OpAdd),
		program.Function(program.OpMul),
		program.Variable(0),
		program.Variable(1),
		program.Constant(2),
	}
	fmt.Println(program.Format(nodes))
	fmt.Println("depth:", program.Depth(nodes))
	fmt.Println("valid:", program.Validate(nodes) == nil)
	// Output:
	// add(mul(X0, X1), 2)
	// depth: 2
	// valid: true
}

// ExampleParse round-trips the text form.
func ExampleParse() {
	var p, err = program.Parse("sub(X2, sqrt(X0))")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Len(), p.Depth, p)
	// Output:
	// 4 2 sub(X2, sqrt(X0))
}
