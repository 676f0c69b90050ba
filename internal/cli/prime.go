package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/primality"
)

func newPrimeCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "prime",
		Short: "Test integers for primality",
		Long:  `Reads unsigned 64-bit integers until end of input and prints Yes or No for each.`,
		Args:  cobra.NoArgs,
		RunE:  in.runPrime,
	}
}

func (in *Input) runPrime(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	count := 0
	for {
		vals, err := j.in.Uint64s()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "prime")
		}
		for _, x := range vals {
			if primality.IsPrime(x) {
				j.println("Yes")
			} else {
				j.println("No")
			}
			count++
		}
		if err := j.ctx.Err(); err != nil {
			return err
		}
	}
	in.log().WithField("tested", count).Debug("done")

	return j.flush()
}
