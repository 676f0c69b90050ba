// Package mst computes minimum spanning forests with Kruskal's algorithm.
//
// What & Why
//
//   - Given n vertices and weighted undirected edges, a minimum spanning
//     forest (MSF) connects every component with the least total weight.
//     When the graph is connected the forest is a spanning tree, and
//     Forest.Adjacency feeds it straight into tree algorithms such as
//     rerooting.
//
// Algorithm
//
//   - Sort edges by weight (stable, so ties keep input order), then scan
//     them, keeping an edge iff its endpoints are in different union-find
//     sets. Stop after n-1 kept edges.
//
// Complexity: O(E log E + E α(V)) time, O(V + E) memory.
//
// Errors:
//
//   - ErrNoVertices      n < 1.
//   - ErrVertexOutOfRange an edge endpoint outside [0, n).
package mst
