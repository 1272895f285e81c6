package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/bench"
	"github.com/katalvlaran/tourkit/tsp"
)

// execute runs the root command with args and returns stdout and the log.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)

	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func TestSolversCommand(t *testing.T) {
	out, _, err := execute(t, "solvers")
	require.NoError(t, err)
	for _, name := range tsp.Names() {
		assert.Contains(t, out, name)
	}
}

func TestSetsCommand(t *testing.T) {
	out, _, err := execute(t, "sets")
	require.NoError(t, err)
	for _, name := range bench.SetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "100 points")
}

func TestRunCommand_Flags(t *testing.T) {
	out, logs, err := execute(t, "run", "--sets", "RandomUniform1", "--solvers", "NearestNeighbor,OriginSort", "--seed", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "NearestNeighbor")
	assert.Contains(t, lines[2], "OriginSort")
	assert.Contains(t, logs, "run finished")
	assert.Contains(t, logs, "Finished 2 runs")
}

func TestRunCommand_ConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sets: [Circle1]\nsolvers: [VerticalSort, HorizontalSort]\n"), 0o600))

	out, _, err := execute(t, "run", "--config", path, "--solvers", "HorizontalSort")
	require.NoError(t, err)
	assert.Contains(t, out, "Circle1")
	assert.Contains(t, out, "HorizontalSort")
	assert.NotContains(t, out, "VerticalSort")
}

func TestRunCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "--solvers", "Genetic")
	assert.ErrorIs(t, err, tsp.ErrUnknownSolver)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "run", "extra")
	assert.Error(t, err)
}

func TestRunCommand_SingleRun(t *testing.T) {
	_, logs, err := execute(t, "run", "--sets", "Circle1", "--solvers", "OriginSort")
	require.NoError(t, err)
	assert.Contains(t, logs, "Finished 1 run")
	assert.NotContains(t, logs, "Finished 1 runs")
	assert.NotContains(t, logs, "generated set")
}

func TestRunCommand_DebugLevelReachesRunner(t *testing.T) {
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	c.SetLogLevel(LogDebug)
	root := c.RootCommand()
	root.SetArgs([]string{"run", "--sets", "Circle1", "--solvers", "OriginSort"})
	root.SetErr(&logs)

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, logs.String(), "generated set")
	assert.Contains(t, out.String(), "OriginSort")
}
