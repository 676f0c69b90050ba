package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kyopro/input"
	"github.com/katalvlaran/kyopro/internal/cli"
)

// run executes one kyopro invocation against stdin and returns stdout and
// stderr.
func run(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(&cli.Input{}, "test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

// sampleTree: 0-1, 1-2, 1-3, 3-4.
const sampleTree = "5\n0 1\n1 2\n1 3\n3 4\n"

func TestReroot(t *testing.T) {
	cases := []struct {
		name string
		mode string
		want string
	}{
		{"distsum", "distsum", "8\n5\n8\n6\n9\n"},
		{"height", "height", "3\n2\n3\n2\n3\n"},
		{"size", "size", "5\n5\n5\n5\n5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, context.Background(), sampleTree, "reroot", "--mode", tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRerootDefaultsToDistSum(t *testing.T) {
	out, _, err := run(t, context.Background(), sampleTree, "reroot")
	require.NoError(t, err)
	assert.Equal(t, "8\n5\n8\n6\n9\n", out)
}

func TestRerootOneIndexed(t *testing.T) {
	out, _, err := run(t, context.Background(), "5\n1 2\n2 3\n2 4\n4 5\n", "reroot", "--one-indexed")
	require.NoError(t, err)
	assert.Equal(t, "8\n5\n8\n6\n9\n", out)
}

func TestRerootSingleVertex(t *testing.T) {
	out, _, err := run(t, context.Background(), "1\n", "reroot", "-m", "height")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRerootErrors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		msg   string
	}{
		{"unknown mode", sampleTree, []string{"reroot", "-m", "diameter"}, "unknown mode"},
		{"triangle plus isolated", "4\n0 1\n1 2\n2 0\n", []string{"reroot"}, "not a tree"},
		{"vertex range", "2\n0 2\n", []string{"reroot"}, "out of range"},
		{"zero vertices", "0\n", []string{"reroot"}, "at least one vertex"},
		{"short input", "3\n0 1\n", []string{"reroot"}, "EOF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := run(t, context.Background(), tc.stdin, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestOversizedCounts(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"mst edge count", "2 9223372036854775807\n0 1 5\n", []string{"mst"}},
		{"dijkstra vertex count", "9223372036854775807 1\n0 1 5\n", []string{"dijkstra"}},
		{"dsu vertex count", "9223372036854775807 0\n", []string{"dsu"}},
		{"reroot vertex count", "9223372036854775807\n0 1\n", []string{"reroot"}},
		{"hld query count", "-1 0\n9223372036854775807\n0 1\n", []string{"hld"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, _, err = run(t, context.Background(), tc.stdin, tc.args...)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exceeds limit")
		})
	}
}

func TestCountAtLimitFailsOnShortInput(t *testing.T) {
	// An honest count at the limit must not reserve memory for lines that
	// never arrive.
	stdin := fmt.Sprintf("2 %d\n0 1 5\n", cli.MaxCount)
	_, _, err := run(t, context.Background(), stdin, "mst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edge 2")
}

func TestNegativeCount(t *testing.T) {
	_, _, err := run(t, context.Background(), "3 -1\n", "mst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative count")
}

const sampleGraph = "4 4\n0 1 2\n1 2 3\n0 2 10\n2 0 1\n"

func TestDijkstra(t *testing.T) {
	out, _, err := run(t, context.Background(), sampleGraph, "dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "0\n2\n5\n-1\n", out)

	out, _, err = run(t, context.Background(), sampleGraph, "dijkstra", "--undirected")
	require.NoError(t, err)
	assert.Equal(t, "0\n2\n1\n-1\n", out)

	out, _, err = run(t, context.Background(), sampleGraph, "dijkstra", "-s", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n0\n-1\n", out)
}

func TestDijkstraBadSource(t *testing.T) {
	_, _, err := run(t, context.Background(), sampleGraph, "dijkstra", "-s", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--source")
}

func TestDijkstraNegativeWeight(t *testing.T) {
	_, _, err := run(t, context.Background(), "2 1\n0 1 -3\n", "dijkstra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestDijkstraCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := run(t, ctx, sampleGraph, "dijkstra")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMST(t *testing.T) {
	out, _, err := run(t, context.Background(), "4 5\n0 1 7\n0 2 3\n1 2 2\n2 3 9\n1 3 4\n", "mst")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	out, _, err = run(t, context.Background(), "3 1\n0 1 5\n", "mst")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestHLD(t *testing.T) {
	stdin := "12 0 1 2 2 1 0 6 7 7 0 10\n2\n4 9\n11 5\n"
	out, _, err := run(t, context.Background(), stdin, "hld")
	require.NoError(t, err)
	assert.Equal(t, "0 6 [9,9] [4,4] [6,7] [0,2]\n0 4 [5,5] [10,11] [0,1]\n", out)
}

func TestHLDOneIndexed(t *testing.T) {
	// Same tree shifted by one; the root's parent becomes 0.
	stdin := "0 1 2 3 3 2 1 7 8 8 1 11\n1\n5 10\n"
	out, _, err := run(t, context.Background(), stdin, "hld", "--one-indexed")
	require.NoError(t, err)
	assert.Equal(t, "1 6 [9,9] [4,4] [6,7] [0,2]\n", out)
}

func TestHLDBadParents(t *testing.T) {
	_, _, err := run(t, context.Background(), "1 0\n0\n", "hld")
	assert.Error(t, err)
}

func TestDSU(t *testing.T) {
	stdin := "4 5\n0 0 1\n1 0 1\n1 1 2\n0 1 2\n1 0 2\n"
	out, _, err := run(t, context.Background(), stdin, "dsu")
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n1\n", out)

	_, _, err = run(t, context.Background(), "2 1\n2 0 1\n", "dsu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestPrime(t *testing.T) {
	out, _, err := run(t, context.Background(), "2 4\n998244353\n\n1\n18446744073709551557", "prime")
	require.NoError(t, err)
	assert.Equal(t, "Yes\nNo\nYes\nNo\nYes\n", out)

	_, _, err = run(t, context.Background(), "7\nabc\n", "prime")
	assert.ErrorIs(t, err, input.ErrBadToken)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, context.Background(), sampleTree, "reroot")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "tree loaded")

	_, stderr, err = run(t, context.Background(), sampleTree, "reroot", "-v")
	require.NoError(t, err)
	// stderr is not a terminal, so the JSON formatter is used.
	assert.Contains(t, stderr, `"msg":"tree loaded"`)
	assert.Contains(t, stderr, `"mode":"distsum"`)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kyopro.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\none_indexed: true\n"), 0o600))

	out, stderr, err := run(t, context.Background(), "5\n1 2\n2 3\n2 4\n4 5\n", "reroot", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "8\n5\n8\n6\n9\n", out)
	assert.Contains(t, stderr, `"one_indexed":true`)

	// An explicit flag beats the file.
	out, _, err = run(t, context.Background(), sampleTree, "reroot", "--config", path, "--one-indexed=false")
	require.NoError(t, err)
	assert.Equal(t, "8\n5\n8\n6\n9\n", out)
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: shout\n"), 0o600))

	_, _, err := run(t, context.Background(), sampleTree, "reroot", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	_, _, err = run(t, context.Background(), sampleTree, "reroot", "-c", filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestExecuteReturnsError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")
	err := cli.Execute(context.Background(), "test", "reroot", "--config", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}
