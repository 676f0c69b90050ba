// Package kyopro is a toolbox of tree and graph algorithms for
// contest-style problems, centered on a generic rerooting engine.
//
// 🚀 What is kyopro?
//
//	A small, dependency-light set of packages that solve the classic
//	"answer this for every vertex" tree questions in linear time, plus
//	the collaborators such problems usually need:
//		• Rerooting: all-roots tree DP over any monoid
//		• Trees: parent-array and edge-list conversion, validation
//		• Union-find (plain and weighted), segment trees (point and lazy),
//		  Fenwick tree, sparse table, heavy-light decomposition
//		• Shortest paths (Dijkstra), minimum spanning forests (Kruskal),
//		  topological order and SCC, maximum flow, grid graphs
//		• Deterministic 64-bit Miller–Rabin and a sieve
//		• A line-based integer reader for stdin-style input
//
// ✨ Why rerooting?
//
//   - One downward pass and one reroot pass give the aggregate at every
//     root in O(N) merges, instead of N separate traversals.
//   - Operators need not commute: neighbor contributions are combined in
//     adjacency order, so sequence and hash aggregates work.
//   - Both passes run on explicit stacks; a path of a million vertices is fine.
//
// Under the hood, everything is organized as one package per algorithm:
//
//	rerooting/   Engine[T], Operators, CheckLaws, Aggregate
//	tree/        FromParents, FromEdges, Validate, Order, Depths
//	unionfind/   disjoint-set forest; Weighted[T] keeps potential differences
//	segtree/     point-update Tree[T] and range-update Lazy[T, F]
//	fenwick/     binary indexed tree: point add, prefix sums, LowerBound
//	sparsetable/ O(1) idempotent range queries on a static slice
//	hld/         heavy-light decomposition: LCA, path and subtree ranges
//	dijkstra/    single-source shortest paths on an indexed adjacency list
//	mst/         Kruskal minimum spanning forest
//	dfs/         TopologicalSort, FindCycle, StronglyConnected
//	flow/        Dinic, EdmondsKarp, FordFulkerson on a residual Network
//	gridgraph/   grids as graphs: components, shortest paths, ExpandIsland
//	primality/   IsPrime, Sieve, Primes
//	input/       Scanner for whitespace-separated integers
//	cmd/kyopro   command-line front end, one subcommand per package
//
// Quick example: sum of distances from every vertex.
//
//	adj, _ := tree.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
//	eng, _ := rerooting.Build(adj, ops) // ops counts vertices and hop sums
//	fmt.Println(eng.Answers())
//
// See each package's doc.go for details, complexity and error semantics.
package kyopro
