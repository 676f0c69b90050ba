package hld

import (
	"fmt"

	"github.com/katalvlaran/kyopro/tree"
)

// Segment is a closed interval [Lo, Hi] of positions in Order().
type Segment struct {
	Lo, Hi int
}

// HLD is a heavy-light decomposition. It is immutable after New.
type HLD struct {
	parent []int // tree.NoParent at the root
	depth  []int
	size   []int
	head   []int // topmost vertex of v's heavy chain
	index  []int // position of v in seq
	seq    []int // vertices in decomposition order
	root   int
}

// New decomposes the tree given by a parent array.
// Complexity: O(N) time and memory.
func New(parents []int) (*HLD, error) {
	children, root, err := tree.Children(parents)
	if err != nil {
		return nil, err
	}
	n := len(parents)
	h := &HLD{
		parent: make([]int, n),
		depth:  make([]int, n),
		size:   make([]int, n),
		head:   make([]int, n),
		index:  make([]int, n),
		seq:    make([]int, 0, n),
		root:   root,
	}

	// 1) Breadth-first order from the root gives parents before children.
	bfs := make([]int, 0, n)
	bfs = append(bfs, root)
	h.parent[root] = tree.NoParent
	for i := 0; i < len(bfs); i++ {
		v := bfs[i]
		for _, c := range children[v] {
			h.parent[c] = v
			h.depth[c] = h.depth[v] + 1
			bfs = append(bfs, c)
		}
	}
	if len(bfs) != n {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from root %d", tree.ErrCycle, len(bfs), n, root)
	}

	// 2) Subtree sizes, children before parents.
	for i := n - 1; i >= 0; i-- {
		v := bfs[i]
		h.size[v] = 1
		for _, c := range children[v] {
			h.size[v] += h.size[c]
		}
	}

	// 3) Lay out chains: heavy child is popped right after its parent,
	//    light children start their own chains in children order.
	type frame struct{ v, head int }
	stack := []frame{{root, root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.index[f.v] = len(h.seq)
		h.seq = append(h.seq, f.v)
		h.head[f.v] = f.head

		cs := children[f.v]
		if len(cs) == 0 {
			continue
		}
		heavy := cs[0]
		for _, c := range cs[1:] {
			if h.size[c] > h.size[heavy] {
				heavy = c
			}
		}
		for i := len(cs) - 1; i >= 0; i-- {
			if cs[i] != heavy {
				stack = append(stack, frame{cs[i], cs[i]})
			}
		}
		stack = append(stack, frame{heavy, f.head})
	}

	return h, nil
}

// Len returns the number of vertices.
func (h *HLD) Len() int { return len(h.seq) }

// Root returns the root vertex.
func (h *HLD) Root() int { return h.root }

// Order returns a copy of the decomposition sequence.
func (h *HLD) Order() []int {
	out := make([]int, len(h.seq))
	copy(out, h.seq)

	return out
}

// Index returns v's position in Order().
func (h *HLD) Index(v int) int { return h.index[v] }

// Head returns the top vertex of v's heavy chain.
func (h *HLD) Head(v int) int { return h.head[v] }

// Depth returns the number of edges between v and the root.
func (h *HLD) Depth(v int) int { return h.depth[v] }

// Parent returns v's parent, or tree.NoParent for the root.
func (h *HLD) Parent(v int) int { return h.parent[v] }

// Size returns the number of vertices in v's subtree.
func (h *HLD) Size(v int) int { return h.size[v] }

// Subtree returns the index range of v's subtree.
func (h *HLD) Subtree(v int) Segment {
	return Segment{Lo: h.index[v], Hi: h.index[v] + h.size[v] - 1}
}

// LCA returns the lowest common ancestor of u and v.
// Complexity: O(log N).
func (h *HLD) LCA(u, v int) int {
	for h.head[u] != h.head[v] {
		if h.depth[h.head[u]] > h.depth[h.head[v]] {
			u = h.parent[h.head[u]]
		} else {
			v = h.parent[h.head[v]]
		}
	}
	if h.depth[u] < h.depth[v] {
		return u
	}

	return v
}

// Distance returns the number of edges on the path u–v.
func (h *HLD) Distance(u, v int) int {
	return h.depth[u] + h.depth[v] - 2*h.depth[h.LCA(u, v)]
}

// Path splits the vertex path u–v into closed index segments. Each step
// climbs from whichever chain head is deeper (v's on ties), so segments
// come out bottom-up; the last segment contains the LCA.
// Complexity: O(log N) segments.
func (h *HLD) Path(u, v int) []Segment {
	var out []Segment
	for h.head[u] != h.head[v] {
		hu, hv := h.head[u], h.head[v]
		if h.depth[hu] <= h.depth[hv] {
			out = append(out, Segment{h.index[hv], h.index[v]})
			v = h.parent[hv]
		} else {
			out = append(out, Segment{h.index[hu], h.index[u]})
			u = h.parent[hu]
		}
	}
	lo, hi := h.index[u], h.index[v]
	if lo > hi {
		lo, hi = hi, lo
	}

	return append(out, Segment{lo, hi})
}
