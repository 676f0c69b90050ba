package cli

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/fenwick"
	"github.com/katalvlaran/kyopro/segtree"
	"github.com/katalvlaran/kyopro/sparsetable"
	"github.com/katalvlaran/kyopro/unionfind"
)

// values reads one line of exactly n int64 tokens.
func (j *job) values(n int) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	a, err := j.in.Int64s()
	if err != nil {
		return nil, err
	}
	if len(a) != n {
		return nil, errors.Errorf("line %d: want %d values, got %d", j.in.LineNo(), n, len(a))
	}

	return a, nil
}

// query reads one query line "t ..." whose arity depends on t.
func (j *job) query(i int, arity map[int64]int) ([]int64, error) {
	q, err := j.in.Int64s()
	if err != nil {
		return nil, errors.Wrapf(err, "query %d", i+1)
	}
	if len(q) == 0 {
		return nil, errors.Errorf("query %d: empty line", i+1)
	}
	want, ok := arity[q[0]]
	if !ok {
		return nil, errors.Errorf("query %d: unknown type %d", i+1, q[0])
	}
	if len(q) != want {
		return nil, errors.Errorf("query %d: type %d takes %d tokens, got %d", i+1, q[0], want, len(q))
	}

	return q, nil
}

// span checks a half-open query range [l, r) against n.
func (j *job) span(l, r int64, n int) (int, int, error) {
	if l < 0 || r > int64(n) || l > r {
		return 0, 0, errors.Errorf("line %d: range [%d, %d) outside [0, %d)", j.in.LineNo(), l, r, n)
	}

	return int(l), int(r), nil
}

func newRSQCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "rsq",
		Short: "Point add, range sum",
		Long: `Reads "N Q", a line of N values, then Q queries:
  0 p x   add x to element p
  1 l r   print the sum of [l, r)
Positions are always 0-based.`,
		Args: cobra.NoArgs,
		RunE: in.runRSQ,
	}
}

func (in *Input) runRSQ(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, q, err := j.header()
	if err != nil {
		return errors.Wrap(err, "rsq")
	}
	a, err := j.values(n)
	if err != nil {
		return errors.Wrap(err, "rsq")
	}
	ft := fenwick.FromSlice(a)
	for i := 0; i < q; i++ {
		qq, err := j.query(i, map[int64]int{0: 3, 1: 3})
		if err != nil {
			return errors.Wrap(err, "rsq")
		}
		if qq[0] == 0 {
			if err = ft.AddE(int(qq[1]), qq[2]); err != nil {
				return errors.Wrapf(err, "rsq: query %d", i+1)
			}
			continue
		}
		l, r, err := j.span(qq[1], qq[2], n)
		if err != nil {
			return errors.Wrapf(err, "rsq: query %d", i+1)
		}
		j.println(ft.Sum(l, r))
	}
	in.log().WithFields(log.Fields{"n": n, "queries": q}).Debug("queries done")

	return j.flush()
}

func newRMQCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "rmq",
		Short: "Static range minimum",
		Long: `Reads "N Q", a line of N values, then Q lines "l r" and prints the
minimum of [l, r) for each. Positions are always 0-based.`,
		Args: cobra.NoArgs,
		RunE: in.runRMQ,
	}
}

func (in *Input) runRMQ(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, q, err := j.header()
	if err != nil {
		return errors.Wrap(err, "rmq")
	}
	a, err := j.values(n)
	if err != nil {
		return errors.Wrap(err, "rmq")
	}
	st, err := sparsetable.New(a, func(x, y int64) int64 { return min(x, y) })
	if err != nil {
		return errors.Wrap(err, "rmq")
	}
	for i := 0; i < q; i++ {
		l, r, err := j.in.Pair()
		if err != nil {
			return errors.Wrapf(err, "rmq: query %d", i+1)
		}
		v, err := st.QueryE(l, r)
		if err != nil {
			return errors.Wrapf(err, "rmq: query %d", i+1)
		}
		j.println(v)
	}

	return j.flush()
}

// sized is a sum that knows how many elements it covers.
type sized struct {
	sum, n int64
}

func newRangeAddCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "raq",
		Short: "Range add, range sum",
		Long: `Reads "N Q", a line of N values, then Q queries:
  0 l r x   add x to every element of [l, r)
  1 l r     print the sum of [l, r)
Positions are always 0-based.`,
		Args: cobra.NoArgs,
		RunE: in.runRangeAdd,
	}
}

func (in *Input) runRangeAdd(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, q, err := j.header()
	if err != nil {
		return errors.Wrap(err, "raq")
	}
	a, err := j.values(n)
	if err != nil {
		return errors.Wrap(err, "raq")
	}
	leaves := make([]sized, n)
	for i, v := range a {
		leaves[i] = sized{sum: v, n: 1}
	}
	lt, err := segtree.NewLazy(leaves, sized{},
		func(x, y sized) sized { return sized{x.sum + y.sum, x.n + y.n} },
		func(x sized, f int64) sized { return sized{x.sum + f*x.n, x.n} },
		func(f, g int64) int64 { return f + g },
	)
	if err != nil {
		return errors.Wrap(err, "raq")
	}
	for i := 0; i < q; i++ {
		qq, err := j.query(i, map[int64]int{0: 4, 1: 3})
		if err != nil {
			return errors.Wrap(err, "raq")
		}
		l, r, err := j.span(qq[1], qq[2], n)
		if err != nil {
			return errors.Wrapf(err, "raq: query %d", i+1)
		}
		if qq[0] == 0 {
			lt.Apply(l, r, qq[3])
			continue
		}
		j.println(lt.Query(l, r).sum)
	}

	return j.flush()
}

func newWeightedDSUCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "wdsu",
		Short: "Union-find with potential differences",
		Long: `Reads "N Q", then Q queries:
  0 u v w   record weight(v) - weight(u) = w; prints 1 if this agrees
            with what is known and 0 on a contradiction
  1 u v     print weight(v) - weight(u), or ? when u and v are unrelated`,
		Args: cobra.NoArgs,
		RunE: in.runWeightedDSU,
	}
}

func (in *Input) runWeightedDSU(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, q, err := j.header()
	if err != nil {
		return errors.Wrap(err, "wdsu")
	}
	w := unionfind.NewWeighted(n, int64(0),
		func(a, b int64) int64 { return a + b },
		func(a, b int64) int64 { return a - b },
	)
	for i := 0; i < q; i++ {
		qq, err := j.query(i, map[int64]int{0: 4, 1: 3})
		if err != nil {
			return errors.Wrap(err, "wdsu")
		}
		u, err := j.vertex(int(qq[1]), n)
		if err != nil {
			return errors.Wrapf(err, "wdsu: query %d", i+1)
		}
		v, err := j.vertex(int(qq[2]), n)
		if err != nil {
			return errors.Wrapf(err, "wdsu: query %d", i+1)
		}

		if qq[0] == 0 {
			if w.Unite(u, v, qq[3]) {
				j.println(1)
			} else if d, _ := w.Diff(u, v); d == qq[3] {
				j.println(1)
			} else {
				j.println(0)
			}
			continue
		}
		if d, ok := w.Diff(u, v); ok {
			j.println(d)
		} else {
			j.println("?")
		}
	}

	return j.flush()
}
