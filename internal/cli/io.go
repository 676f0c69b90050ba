package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/input"
)

// MaxCount bounds every count read from a header (vertices, edges,
// queries). Larger values are rejected before anything is allocated.
const MaxCount = 1 << 23

// edgePrealloc caps the capacity reserved up front for an edge list; the
// slice grows past it only as lines actually arrive.
const edgePrealloc = 1 << 16

// job carries the per-invocation plumbing shared by every subcommand.
type job struct {
	ctx   context.Context
	in    *input.Scanner
	out   *bufio.Writer
	shift int
}

func (in *Input) newJob(cmd *cobra.Command) *job {
	j := &job{
		ctx: cmd.Context(),
		in:  input.NewScanner(cmd.InOrStdin()),
		out: bufio.NewWriter(cmd.OutOrStdout()),
	}
	if j.ctx == nil {
		j.ctx = context.Background()
	}
	if in.cfg.OneIndexed {
		j.shift = 1
	}

	return j
}

// vertex converts an input id to a 0-based id and checks it against n.
func (j *job) vertex(id, n int) (int, error) {
	v := id - j.shift
	if v < 0 || v >= n {
		return 0, errors.Errorf("line %d: vertex %d out of range [%d, %d)", j.in.LineNo(), id, j.shift, n+j.shift)
	}

	return v, nil
}

// checkCount rejects a count outside [0, MaxCount].
func (j *job) checkCount(what string, c int) error {
	if c < 0 {
		return errors.Errorf("line %d: negative %s %d", j.in.LineNo(), what, c)
	}
	if c > MaxCount {
		return errors.Errorf("line %d: %s %d exceeds limit %d", j.in.LineNo(), what, c, MaxCount)
	}

	return nil
}

// count reads a line holding a single count.
func (j *job) count(what string) (int, error) {
	c, err := j.in.Int()
	if err != nil {
		return 0, err
	}
	if err = j.checkCount(what, c); err != nil {
		return 0, err
	}

	return c, nil
}

// header reads a line with two counts such as "N M".
func (j *job) header() (int, int, error) {
	a, b, err := j.in.Pair()
	if err != nil {
		return 0, 0, errors.Wrap(err, "header")
	}
	if err = j.checkCount("count", a); err != nil {
		return 0, 0, errors.Wrap(err, "header")
	}
	if err = j.checkCount("count", b); err != nil {
		return 0, 0, errors.Wrap(err, "header")
	}

	return a, b, nil
}

// edges reads m lines "u v" (weighted == false) or "u v w".
func (j *job) edges(n, m int, weighted bool) ([][3]int64, error) {
	out := make([][3]int64, 0, min(m, edgePrealloc))
	for i := 0; i < m; i++ {
		if i%4096 == 0 {
			if err := j.ctx.Err(); err != nil {
				return nil, err
			}
		}
		var (
			u, v, w int
			err     error
		)
		if weighted {
			u, v, w, err = j.in.Triple()
		} else {
			u, v, err = j.in.Pair()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i+1)
		}
		if u, err = j.vertex(u, n); err != nil {
			return nil, err
		}
		if v, err = j.vertex(v, n); err != nil {
			return nil, err
		}
		out = append(out, [3]int64{int64(u), int64(v), int64(w)})
	}

	return out, nil
}

func (j *job) println(a ...interface{}) {
	fmt.Fprintln(j.out, a...)
}

func (j *job) flush() error {
	return j.out.Flush()
}

