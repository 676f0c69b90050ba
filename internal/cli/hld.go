package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/hld"
	"github.com/katalvlaran/kyopro/tree"
)

func newHLDCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "hld",
		Short: "Answer path queries with heavy-light decomposition",
		Long: `Reads a parent array on one line (the root's parent is -1, or 0 with
--one-indexed), then Q, then Q lines "u v". For each query prints the
LCA, the distance, and the path as closed index ranges of the
decomposition order, e.g. "0 3 [9,9] [4,4] [0,2]".`,
		Args: cobra.NoArgs,
		RunE: in.runHLD,
	}
}

func (in *Input) runHLD(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	parents, err := j.in.Ints()
	if err != nil {
		return errors.Wrap(err, "hld: parents")
	}
	for i := range parents {
		if parents[i] != tree.NoParent {
			parents[i] -= j.shift
		}
	}
	h, err := hld.New(parents)
	if err != nil {
		return errors.Wrap(err, "hld")
	}
	n := h.Len()

	q, err := j.count("query count")
	if err != nil {
		return errors.Wrap(err, "hld: query count")
	}
	in.log().WithField("n", n).WithField("queries", q).Debug("decomposition built")

	var sb strings.Builder
	for i := 0; i < q; i++ {
		a, b, err := j.in.Pair()
		if err != nil {
			return errors.Wrapf(err, "hld: query %d", i+1)
		}
		u, err := j.vertex(a, n)
		if err != nil {
			return errors.Wrapf(err, "hld: query %d", i+1)
		}
		v, err := j.vertex(b, n)
		if err != nil {
			return errors.Wrapf(err, "hld: query %d", i+1)
		}

		sb.Reset()
		fmt.Fprintf(&sb, "%d %d", h.LCA(u, v)+j.shift, h.Distance(u, v))
		for _, s := range h.Path(u, v) {
			fmt.Fprintf(&sb, " [%d,%d]", s.Lo, s.Hi)
		}
		j.println(sb.String())
	}

	return j.flush()
}
