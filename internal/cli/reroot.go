package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/rerooting"
	"github.com/katalvlaran/kyopro/tree"
)

const (
	modeSize    = "size"
	modeDistSum = "distsum"
	modeHeight  = "height"
)

func newRerootCommand(in *Input) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "reroot",
		Short: "Compute a per-vertex tree aggregate for every root",
		Long: `Reads N, then N-1 lines "u v" describing a tree, and prints one
answer per vertex:
  size     number of vertices reachable from the vertex (always N)
  distsum  sum of distances to every other vertex
  height   eccentricity: distance to the farthest vertex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return in.runReroot(cmd, mode)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", modeDistSum, "aggregate: size, distsum or height")

	return cmd
}

func (in *Input) runReroot(cmd *cobra.Command, mode string) error {
	j := in.newJob(cmd)
	n, err := j.count("vertex count")
	if err != nil {
		return errors.Wrap(err, "reroot: vertex count")
	}
	if n < 1 {
		return errors.Errorf("reroot: need at least one vertex, got %d", n)
	}
	raw, err := j.edges(n, n-1, false)
	if err != nil {
		return errors.Wrap(err, "reroot")
	}
	pairs := make([][2]int, len(raw))
	for i, e := range raw {
		pairs[i] = [2]int{int(e[0]), int(e[1])}
	}
	adj, err := tree.FromEdges(n, pairs)
	if err != nil {
		return errors.Wrap(err, "reroot")
	}
	in.log().WithField("n", n).WithField("mode", mode).Debug("tree loaded")

	answers, err := rerootAnswers(adj, mode)
	if err != nil {
		return err
	}
	for _, a := range answers {
		j.println(a)
	}

	return j.flush()
}

// rerootAnswers runs the engine with the operator set selected by mode.
func rerootAnswers(adj [][]int, mode string) ([]int64, error) {
	switch mode {
	case modeSize:
		eng, err := rerooting.New(adj, int64(0),
			func(a, b int64) int64 { return a + b },
			func(acc int64, _ int) int64 { return acc + 1 },
		)
		if err != nil {
			return nil, errors.Wrap(err, "reroot")
		}
		return eng.Answers(), nil

	case modeDistSum:
		eng, err := rerooting.Build(adj, distSumOps())
		if err != nil {
			return nil, errors.Wrap(err, "reroot")
		}
		out := make([]int64, eng.Len())
		for v, a := range eng.Answers() {
			out[v] = a.sum
		}
		return out, nil

	case modeHeight:
		eng, err := rerooting.New(adj, int64(-1),
			func(a, b int64) int64 { return max(a, b) },
			func(acc int64, _ int) int64 { return acc + 1 },
		)
		if err != nil {
			return nil, errors.Wrap(err, "reroot")
		}
		return eng.Answers(), nil

	default:
		return nil, fmt.Errorf("reroot: unknown mode %q (want %s, %s or %s)", mode, modeSize, modeDistSum, modeHeight)
	}
}

// countSum is the subtree vertex count and the sum of depths below the
// subtree root.
type countSum struct {
	count, sum int64
}

func distSumOps() rerooting.Operators[countSum] {
	return rerooting.Operators[countSum]{
		Identity: countSum{},
		Merge: func(a, b countSum) countSum {
			return countSum{a.count + b.count, a.sum + b.sum}
		},
		AddRoot: func(acc countSum, _ int) countSum {
			return countSum{acc.count + 1, acc.sum}
		},
		// Crossing an edge pushes every vertex of the subtree one level deeper.
		PutEdge: func(val countSum, _, _ int) countSum {
			return countSum{val.count, val.sum + val.count}
		},
	}
}
