// Package pathfinder finds shortest paths on unweighted graphs with breadth-first search.
//
// The search is generic over the node type and only needs a neighbor function, so
// it works for grid positions as well as any other comparable state. Neighbors are
// expanded in the order the function returns them and the frontier is strictly
// first-in first-out, which makes the chosen path among equal-length candidates
// deterministic.
package pathfinder
