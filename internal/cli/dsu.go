package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/unionfind"
)

const (
	dsuUnite = 0
	dsuSame  = 1
)

func newDSUCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "dsu",
		Short: "Process union-find queries",
		Long: `Reads "N Q", then Q lines "t u v". t=0 unites u and v; t=1 prints 1 if
u and v are connected and 0 otherwise.`,
		Args: cobra.NoArgs,
		RunE: in.runDSU,
	}
}

func (in *Input) runDSU(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, q, err := j.header()
	if err != nil {
		return errors.Wrap(err, "dsu")
	}
	uf := unionfind.New(n)
	for i := 0; i < q; i++ {
		t, a, b, err := j.in.Triple()
		if err != nil {
			return errors.Wrapf(err, "dsu: query %d", i+1)
		}
		u, err := j.vertex(a, n)
		if err != nil {
			return errors.Wrapf(err, "dsu: query %d", i+1)
		}
		v, err := j.vertex(b, n)
		if err != nil {
			return errors.Wrapf(err, "dsu: query %d", i+1)
		}

		switch t {
		case dsuUnite:
			uf.Unite(u, v)
		case dsuSame:
			if uf.Same(u, v) {
				j.println(1)
			} else {
				j.println(0)
			}
		default:
			return errors.Errorf("dsu: query %d: unknown type %d", i+1, t)
		}
	}
	in.log().WithField("components", uf.Count()).Debug("queries done")

	return j.flush()
}
