// Package linkage links points in space into circuits by closest distance.
//
// The repository is organized as small, independent packages:
//
//	geometry/: fixed-dimension Point, Euclidean distance, coordinate parsing
//	dsu/     : disjoint-set forest (union by size, path compression)
//	pairrank/: closest-pair ranking: full sort or bounded k-smallest heap
//	cluster/ : policies that feed ranked pairs into a dsu.Forest
//	cmd/linkage: command line front end
//
// Quick example:
//
//	points, _ := geometry.ParsePoints(input, geometry.Dim3)
//	groups, _ := cluster.Compute(points, cluster.NewOptions(cluster.WithK(1000)))
//	all, _ := cluster.Compute(points, cluster.NewOptions(cluster.WithMethod(cluster.MethodConnectAll)))
//	fmt.Println(groups.Value, all.Value)
//
// Pair ranking is O(n² log n); the inputs in scope are hundreds to a few
// thousand points.
package linkage
