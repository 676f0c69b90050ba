package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kyopro/gridgraph"
)

type gridFlags struct {
	wall     string
	diagonal bool
	from, to []int
}

func newGridCommand(in *Input) *cobra.Command {
	var f gridFlags
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Connected regions and shortest paths on a character grid",
		Long: `Reads "H W", then H rows of W characters without spaces. Every
character other than --wall is open. Prints the number of connected open
regions, then their sizes on one line in row-major order of their first
cell. With --from x,y --to x,y a third line holds the number of steps on a
shortest open path, or -1 when there is none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return in.runGrid(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.wall, "wall", "w", "#", "wall character")
	cmd.Flags().BoolVarP(&f.diagonal, "diagonal", "d", false, "allow diagonal moves")
	cmd.Flags().IntSliceVar(&f.from, "from", nil, "path start as x,y")
	cmd.Flags().IntSliceVar(&f.to, "to", nil, "path end as x,y")

	return cmd
}

func (in *Input) runGrid(cmd *cobra.Command, f gridFlags) error {
	if len(f.wall) != 1 {
		return errors.Errorf("grid: --wall must be one character, got %q", f.wall)
	}
	if (f.from == nil) != (f.to == nil) {
		return errors.New("grid: --from and --to go together")
	}
	for _, c := range [][]int{f.from, f.to} {
		if c != nil && len(c) != 2 {
			return errors.Errorf("grid: want x,y, got %v", c)
		}
	}

	j := in.newJob(cmd)
	h, w, err := j.header()
	if err != nil {
		return errors.Wrap(err, "grid")
	}
	if h*w > MaxCount {
		return errors.Errorf("grid: %dx%d cells exceeds limit %d", h, w, MaxCount)
	}
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		row, err := j.in.Line()
		if err != nil {
			return errors.Wrapf(err, "grid: row %d", y+1)
		}
		rows = append(rows, row)
	}
	conn := gridgraph.Conn4
	if f.diagonal {
		conn = gridgraph.Conn8
	}
	g, err := gridgraph.FromStrings(rows, f.wall[0], conn)
	if err != nil {
		return errors.Wrap(err, "grid")
	}

	comps := g.ConnectedComponents()
	in.log().WithFields(log.Fields{"width": g.Width, "height": g.Height, "regions": len(comps)}).Debug("grid loaded")
	sizes := make([]string, len(comps))
	for i, c := range comps {
		sizes[i] = strconv.Itoa(len(c))
	}
	j.println(len(comps))
	j.println(strings.Join(sizes, " "))

	if f.from != nil {
		d, _, err := g.ShortestPath(f.from[0]-j.shift, f.from[1]-j.shift, f.to[0]-j.shift, f.to[1]-j.shift)
		switch {
		case errors.Is(err, gridgraph.ErrNoPath):
			j.println(-1)
		case err != nil:
			return errors.Wrap(err, "grid")
		default:
			j.println(d)
		}
	}

	return j.flush()
}
