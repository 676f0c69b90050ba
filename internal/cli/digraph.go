package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/dfs"
	"github.com/katalvlaran/kyopro/flow"
)

// arcs reads m lines "u v" into a directed adjacency list on n vertices.
func (j *job) arcs(n, m int) ([][]int, error) {
	raw, err := j.edges(n, m, false)
	if err != nil {
		return nil, err
	}
	g := make([][]int, n)
	for _, e := range raw {
		g[e[0]] = append(g[e[0]], int(e[1]))
	}

	return g, nil
}

func newTopoSortCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "toposort",
		Short: "Topological order of a directed graph",
		Long: `Reads "N M", then M lines "u v" (an arc u->v), and prints a topological
order on one line, or -1 when the graph has a cycle.`,
		Args: cobra.NoArgs,
		RunE: in.runTopoSort,
	}
}

func (in *Input) runTopoSort(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, m, err := j.header()
	if err != nil {
		return errors.Wrap(err, "toposort")
	}
	g, err := j.arcs(n, m)
	if err != nil {
		return errors.Wrap(err, "toposort")
	}

	order, err := dfs.TopologicalSort(g, dfs.WithContext(j.ctx))
	switch {
	case errors.Is(err, dfs.ErrCycleDetected):
		in.log().WithField("n", n).Debug(err.Error())
		j.println(-1)
		return j.flush()
	case err != nil:
		return errors.Wrap(err, "toposort")
	}
	j.println(j.join(order))

	return j.flush()
}

func newSCCCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "scc",
		Short: "Strongly connected components",
		Long: `Reads "N M", then M lines "u v" (an arc u->v). Prints the number of
components K, then K lines "size v1 v2 ...", components in topological
order and vertices ascending.`,
		Args: cobra.NoArgs,
		RunE: in.runSCC,
	}
}

func (in *Input) runSCC(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, m, err := j.header()
	if err != nil {
		return errors.Wrap(err, "scc")
	}
	g, err := j.arcs(n, m)
	if err != nil {
		return errors.Wrap(err, "scc")
	}
	s, err := dfs.StronglyConnected(g, dfs.WithContext(j.ctx))
	if err != nil {
		return errors.Wrap(err, "scc")
	}
	in.log().WithFields(log.Fields{"n": n, "m": m, "components": s.Count()}).Debug("components found")

	j.println(s.Count())
	for _, group := range s.Groups() {
		j.println(len(group), j.join(group))
	}

	return j.flush()
}

// maxFlowAlgorithms maps --algo values to implementations.
var maxFlowAlgorithms = map[string]func(*job, *flow.Network, int, int) (int64, error){
	"dinic": func(j *job, nw *flow.Network, s, t int) (int64, error) {
		return flow.Dinic(j.ctx, nw, s, t, nil)
	},
	"edmonds-karp": func(j *job, nw *flow.Network, s, t int) (int64, error) {
		return flow.EdmondsKarp(j.ctx, nw, s, t, nil)
	},
	"ford-fulkerson": func(j *job, nw *flow.Network, s, t int) (int64, error) {
		return flow.FordFulkerson(j.ctx, nw, s, t, nil)
	},
}

func algorithmNames() string {
	names := make([]string, 0, len(maxFlowAlgorithms))
	for name := range maxFlowAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

type maxFlowFlags struct {
	source, sink int
	algo         string
	edges        bool
}

func newMaxFlowCommand(in *Input) *cobra.Command {
	var f maxFlowFlags
	cmd := &cobra.Command{
		Use:   "maxflow",
		Short: "Maximum flow between two vertices",
		Long: `Reads "N M", then M lines "u v c" (an arc u->v of capacity c >= 0),
and prints the maximum flow from --source to --sink. With --edges, each
arc follows on its own line as "u v flow".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return in.runMaxFlow(cmd, f)
		},
	}
	cmd.Flags().IntVarP(&f.source, "source", "s", -1, "source vertex (default: first vertex)")
	cmd.Flags().IntVarP(&f.sink, "sink", "t", -1, "sink vertex (default: last vertex)")
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "dinic", "algorithm: "+algorithmNames())
	cmd.Flags().BoolVar(&f.edges, "edges", false, "print the flow on every arc")

	return cmd
}

// terminal resolves a --source/--sink flag; a negative value picks def.
func (j *job) terminal(flagValue, def, n int) (int, error) {
	if flagValue < 0 {
		return def, nil
	}

	return j.vertex(flagValue, n)
}

func (in *Input) runMaxFlow(cmd *cobra.Command, f maxFlowFlags) error {
	run, ok := maxFlowAlgorithms[f.algo]
	if !ok {
		return errors.Errorf("maxflow: unknown algorithm %q (want %s)", f.algo, algorithmNames())
	}
	j := in.newJob(cmd)
	n, m, err := j.header()
	if err != nil {
		return errors.Wrap(err, "maxflow")
	}
	if n < 2 {
		return errors.Errorf("maxflow: need at least two vertices, got %d", n)
	}
	raw, err := j.edges(n, m, true)
	if err != nil {
		return errors.Wrap(err, "maxflow")
	}
	nw := flow.NewNetwork(n)
	for i, e := range raw {
		if _, err = nw.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			return errors.Wrapf(err, "maxflow: edge %d", i+1)
		}
	}
	s, err := j.terminal(f.source, 0, n)
	if err != nil {
		return errors.Wrap(err, "maxflow: --source")
	}
	t, err := j.terminal(f.sink, n-1, n)
	if err != nil {
		return errors.Wrap(err, "maxflow: --sink")
	}

	value, err := run(j, nw, s, t)
	if err != nil {
		return errors.Wrap(err, "maxflow")
	}
	in.log().WithFields(log.Fields{"n": n, "m": m, "algo": f.algo, "flow": value}).Debug("flow computed")

	j.println(value)
	if f.edges {
		for _, e := range nw.Edges() {
			j.println(e.From+j.shift, e.To+j.shift, e.Flow)
		}
	}

	return j.flush()
}

// join formats 0-based vertex ids in input numbering, space separated.
func (j *job) join(vs []int) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v+j.shift)
	}

	return sb.String()
}
