package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, args)
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Help(t *testing.T) {
	out, err := runCLI(t, "-h")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "backtracker")
}

func TestRun_Flags(t *testing.T) {
	out, err := runCLI(t, "-rows", "11", "-cols", "15", "-maze", "prim", "-seed", "3",
		"-alg", "bfs, astar", "-race", "dijkstra,jps", "-visited")
	require.NoError(t, err)
	require.Contains(t, out, "grid 11x15")
	require.Contains(t, out, "== bfs ==")
	require.Contains(t, out, "== astar ==")
	require.Contains(t, out, "== dijkstra vs jps ==")
	require.Contains(t, out, "-- jps --")
	require.Contains(t, out, "winner:")
}

func TestRun_ScenarioFile(t *testing.T) {
	path := writeFile(t, "gap.hcl", `
grid {
  layout = ["S.#..", "..#..", "..#..", "..#..", "....F"]
}
run "plain" {
  algorithm = "bfs"
}
`)
	out, err := runCLI(t, path)
	require.NoError(t, err)
	require.Contains(t, out, "So#..\n.o#..\n.o#..\n.o#..\n.oooF\n")
	require.Contains(t, out, "bfs: visited=")
	require.Contains(t, out, "length=9")

	out, err = runCLI(t, "-render=false", "-scenario", path)
	require.NoError(t, err)
	require.NotContains(t, out, "So#..")
}

func TestRun_Errors(t *testing.T) {
	exitCode := func(t *testing.T, err error) int {
		t.Helper()
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		return exitErr.Code
	}

	_, err := runCLI(t, "-nope")
	require.Equal(t, 2, exitCode(t, err))
	_, err = runCLI(t, "-race", "bfs")
	require.Equal(t, 2, exitCode(t, err))
	_, err = runCLI(t, "-rows", "3")
	require.Equal(t, 2, exitCode(t, err))
	_, err = runCLI(t, "-log-level", "loud")
	require.Equal(t, 2, exitCode(t, err))
	_, err = runCLI(t, "-alg", "")
	require.Equal(t, 2, exitCode(t, err))
	_, err = runCLI(t, "a.hcl", "b.hcl")
	require.Equal(t, 2, exitCode(t, err))

	_, err = runCLI(t, "-alg", "teleport")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	env := writeFile(t, "small.env", "PATHGRID_MAX_CELLS=100\n")
	_, err = runCLI(t, "-env", env)
	require.ErrorIs(t, err, scenario.ErrTooLarge)

	_, err = runCLI(t, "-alg", "astar,a*")
	require.ErrorIs(t, err, scenario.ErrInvalid, "repeated algorithm")

	huge := writeFile(t, "huge.env", "PATHGRID_MAX_CELLS=1048576\n")
	_, err = runCLI(t, "-env", huge, "-rows", "4294967296", "-cols", "4294967296")
	require.ErrorIs(t, err, scenario.ErrTooLarge)

	_, err = runCLI(t, filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, scenario.ErrParse)
}
