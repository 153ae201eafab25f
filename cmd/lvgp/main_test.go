// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvgp/config"
	"github.com/katalvlaran/lvgp/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile puts content under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// sumCSV has y = a + b over 8 rows.
const sumCSV = `a,b,y
1,2,3
2,2,4
3,1,4
0,5,5
4,4,8
-1,2,1
2,-3,-1
6,0,6
`

const smallRun = `engine:
  function_set: [add, sub, mul]
  init_depth: [1, 3]
  max_depth: 6
evolution:
  population_size: 20
  generations: 3
  tournament_size: 3
  stopping_criteria: -1
  seed: 7
  workers: 2
log:
  level: error
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var cmd = newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	var err = cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvgp dev\n", out)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFit(t *testing.T) {
	var (
		data = writeFile(t, "sum.csv", sumCSV)
		conf = writeFile(t, "run.yaml", smallRun)
		best = filepath.Join(t.TempDir(), "best.txt")
	)
	out, _, err := execute(t, "fit", "--config", conf, "--data", data, "--target", "y", "--out", best)
	require.NoError(t, err)

	assert.Contains(t, out, "generations: 3\n")
	assert.Contains(t, out, "best:")
	assert.Contains(t, out, "mae:         ")
	assert.Contains(t, out, "features:    X0=a X1=b\n")

	saved, err := os.ReadFile(best)
	require.NoError(t, err)
	prog, err := program.Parse(strings.TrimSpace(string(saved)))
	require.NoError(t, err)
	assert.LessOrEqual(t, prog.Depth, 6)

	// The saved program scores through eval.
	out, _, err = execute(t, "eval", "--data", data, "--file", best)
	require.NoError(t, err)
	assert.Contains(t, out, "mae: ")
}

func TestFit_FlagOverridesAndLogging(t *testing.T) {
	var (
		data = writeFile(t, "sum.csv", sumCSV)
		conf = writeFile(t, "run.yaml", smallRun)
	)
	out, logs, err := execute(t, "fit", "-c", conf, "-d", data, "-g", "1", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "generations: 1\n")
	assert.Contains(t, logs, `"msg":"evolution finished"`)
}

func TestFit_Errors(t *testing.T) {
	var data = writeFile(t, "sum.csv", sumCSV)

	_, _, err := execute(t, "fit")
	assert.ErrorContains(t, err, "no data")

	_, _, err = execute(t, "fit", "--data", data, "--population", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "fit", "--data", data, "--log-format", "xml", "-g", "1", "-p", "30")
	assert.ErrorContains(t, err, "log format")
}

func TestEval(t *testing.T) {
	var data = writeFile(t, "sum.csv", sumCSV)

	out, _, err := execute(t, "eval", "--data", data, "--metric", "mse", "--predict", "add(X0, X1)")
	require.NoError(t, err)
	assert.Equal(t, "program: add(X0, X1)\nmse: 0\n3\n4\n4\n5\n8\n1\n-1\n6\n", out)

	out, _, err = execute(t, "eval", "--data", data, "--target", "0", "--metric", "mae", "sub(X1, X0)")
	require.NoError(t, err)
	assert.Contains(t, out, "mae: 0\n")
}

func TestEval_Errors(t *testing.T) {
	var (
		data = writeFile(t, "sum.csv", sumCSV)
		prog = writeFile(t, "p.txt", "X0\n")
	)
	_, _, err := execute(t, "eval", "X0")
	assert.ErrorContains(t, err, "no data")

	_, _, err = execute(t, "eval", "--data", data)
	assert.ErrorContains(t, err, "no program")

	_, _, err = execute(t, "eval", "--data", data, "--file", prog, "X0")
	assert.ErrorContains(t, err, "not both")

	_, _, err = execute(t, "eval", "--data", data, "add(X0")
	assert.ErrorIs(t, err, program.ErrSyntax)

	_, _, err = execute(t, "eval", "--data", data, "X7")
	assert.Error(t, err)
}
