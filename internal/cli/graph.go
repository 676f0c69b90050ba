package cli

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/dijkstra"
	"github.com/katalvlaran/kyopro/mst"
)

func newDijkstraCommand(in *Input) *cobra.Command {
	var (
		source     int
		undirected bool
	)
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Single-source shortest path distances",
		Long: `Reads "N M", then M lines "u v w" (an arc u->v of weight w >= 0), and
prints the distance from --source to every vertex, -1 when unreachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return in.runDijkstra(cmd, source, undirected)
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().BoolVarP(&undirected, "undirected", "u", false, "treat every line as an undirected edge")

	return cmd
}

func (in *Input) runDijkstra(cmd *cobra.Command, source int, undirected bool) error {
	j := in.newJob(cmd)
	n, m, err := j.header()
	if err != nil {
		return errors.Wrap(err, "dijkstra")
	}
	raw, err := j.edges(n, m, true)
	if err != nil {
		return errors.Wrap(err, "dijkstra")
	}
	edges := make([]dijkstra.Edge, len(raw))
	for i, e := range raw {
		edges[i] = dijkstra.Edge{From: int(e[0]), To: int(e[1]), Weight: e[2]}
	}
	src, err := j.vertex(source, n)
	if err != nil {
		return errors.Wrap(err, "dijkstra: --source")
	}

	res, err := dijkstra.Dijkstra(dijkstra.FromEdges(n, edges, !undirected), dijkstra.Source(src))
	if err != nil {
		return errors.Wrap(err, "dijkstra")
	}
	in.log().WithFields(log.Fields{"n": n, "m": m, "source": src}).Debug("shortest paths computed")

	for v := 0; v < n; v++ {
		if d, ok := res.DistanceTo(v); ok {
			j.println(d)
		} else {
			j.println(-1)
		}
	}

	return j.flush()
}

func newMSTCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree cost",
		Long: `Reads "N M", then M lines "u v w" (undirected edges), and prints the
minimum spanning tree cost, or -1 when the graph is disconnected.`,
		Args: cobra.NoArgs,
		RunE: in.runMST,
	}
}

func (in *Input) runMST(cmd *cobra.Command, _ []string) error {
	j := in.newJob(cmd)
	n, m, err := j.header()
	if err != nil {
		return errors.Wrap(err, "mst")
	}
	raw, err := j.edges(n, m, true)
	if err != nil {
		return errors.Wrap(err, "mst")
	}
	edges := make([]mst.Edge, len(raw))
	for i, e := range raw {
		edges[i] = mst.Edge{U: int(e[0]), V: int(e[1]), Weight: e[2]}
	}

	f, err := mst.Kruskal(n, edges)
	if err != nil {
		return errors.Wrap(err, "mst")
	}
	in.log().WithFields(log.Fields{"n": n, "m": m, "components": f.Components}).Debug("forest built")

	if !f.IsTree() {
		j.println(-1)
	} else {
		j.println(f.Cost)
	}

	return j.flush()
}
