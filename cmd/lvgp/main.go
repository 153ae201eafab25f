// SPDX-License-Identifier: MIT

// Command lvgp evolves symbolic-regression programs from CSV data and
// scores saved programs.
//
//	lvgp fit  --data train.csv --target y [--config run.yaml] [--metrics-addr :9090] [--trace]
//	lvgp eval --data test.csv  --target y "add(X0, mul(X1, 0.5))"
//	lvgp config > run.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
