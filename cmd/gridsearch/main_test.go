package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const maze = `S.#.
.##.
...E
`

// writeFiles stores the map and, if non-empty, the config in a temp dir and
// returns the arguments pointing at them.
func writeFiles(t *testing.T, mapText, configText string) []string {
	t.Helper()
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte(mapText), 0o600))
	args := []string{"-map", mapPath}
	if configText != "" {
		cfgPath := filepath.Join(dir, "run.hcl")
		require.NoError(t, os.WriteFile(cfgPath, []byte(configText), 0o600))
		args = append(args, "-config", cfgPath)
	}
	return args
}

func runArgs(t *testing.T, args []string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(&out, &logs, args)
	return out.String(), logs.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
	require.Equal(t, code, exitErr.Code)
}

func TestRun_ShortestDefaults(t *testing.T) {
	out, _, err := runArgs(t, writeFiles(t, maze, ""))
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestRun_Diagonal(t *testing.T) {
	out, _, err := runArgs(t, writeFiles(t, maze, "connectivity = 8\n"))
	require.NoError(t, err)
	require.Equal(t, "4\n", out)
}

func TestRun_Reach(t *testing.T) {
	out, _, err := runArgs(t, writeFiles(t, maze, `mode = "reach"`))
	require.NoError(t, err)
	require.Equal(t, "reachable: 9\nmax distance: 7\n", out)
}

func TestRun_MaxCostExpression(t *testing.T) {
	// width + height = 7 leaves the goal (5 away) in range
	out, _, err := runArgs(t, writeFiles(t, maze, "max_cost = width + height\n"))
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	out, _, err = runArgs(t, writeFiles(t, maze, "max_cost = height\n"))
	require.NoError(t, err)
	require.Equal(t, "unreachable\n", out)
}

func TestRun_CustomMarkers(t *testing.T) {
	m := "a~~\n..~\n~.z\n"
	cfg := `
start = "a"
goal  = "z"
walls = "~"
`
	out, _, err := runArgs(t, writeFiles(t, m, cfg))
	require.NoError(t, err)
	require.Equal(t, "4\n", out)
}

func TestRun_Unreachable(t *testing.T) {
	out, _, err := runArgs(t, writeFiles(t, "S#E\n", ""))
	require.NoError(t, err)
	require.Equal(t, "unreachable\n", out)
}

func TestRun_DebugLogs(t *testing.T) {
	args := append(writeFiles(t, maze, ""), "-log-level", "debug", "-log-format", "json")
	_, logs, err := runArgs(t, args)
	require.NoError(t, err)
	require.Contains(t, logs, `"msg":"search: shortest path finished"`)
	require.Contains(t, logs, `"cost":5`)
}

func TestRun_InvalidConfig(t *testing.T) {
	cases := map[string]string{
		"connectivity": "connectivity = 6\n",
		"mode":         `mode = "teleport"`,
		"start":        `start = "SS"`,
		"max_cost":     "max_cost = -1\n",
		"unknown":      `colour = "blue"`,
		"syntax":       "start = \n",
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := runArgs(t, writeFiles(t, maze, cfg))
			requireExitCode(t, err, 2)
		})
	}
}

func TestRun_Flags(t *testing.T) {
	// no map: usage, clean exit
	out, _, err := runArgs(t, nil)
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")

	_, _, err = runArgs(t, append(writeFiles(t, maze, ""), "-log-format", "xml"))
	requireExitCode(t, err, 2)

	_, _, err = runArgs(t, append(writeFiles(t, maze, ""), "-log-level", "loud"))
	requireExitCode(t, err, 2)

	_, _, err = runArgs(t, []string{"-bogus"})
	requireExitCode(t, err, 2)
}

func TestRun_MapErrors(t *testing.T) {
	_, _, err := runArgs(t, []string{"-map", filepath.Join(t.TempDir(), "missing.txt")})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runArgs(t, writeFiles(t, "..E\n", ""))
	require.ErrorIs(t, err, ErrNoStart)

	_, _, err = runArgs(t, writeFiles(t, "", ""))
	require.Error(t, err)
}

func TestRun_InvalidConfigKeepsCause(t *testing.T) {
	_, _, err := runArgs(t, writeFiles(t, maze, "connectivity = 6\n"))
	requireExitCode(t, err, 2)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "connectivity must be 4 or 8")
}
