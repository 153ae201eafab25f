// SPDX-License-Identifier: MIT

package fitness_test

import (
	"fmt"

	"github.com/katalvlaran/lvgp/fitness"
	"github.com/katalvlaran/lvgp/program"
)

// ExamplePenalized shows the penalty pointing the right way for both
// metric directions.
func ExamplePenalized() {
	var prog, _ = program.Parse("sub(X0, 1)")
	prog.RawFitness = 0.5

	prog.Metric = program.MetricMSE
	fmt.Printf("mse:     %.3f\n", fitness.Penalized(prog, 0.01))
	prog.Metric = program.MetricPearson
	fmt.Printf("pearson: %.3f\n", fitness.Penalized(prog, 0.01))
	// Output:
	// mse:     0.530
	// pearson: 0.470
}
