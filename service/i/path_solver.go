package i

import (
	"github.com/beka-birhanu/gridwalk/grid"
	"github.com/beka-birhanu/gridwalk/pathfinder"
)

// PathSolver answers shortest-path queries on a grid.
type PathSolver interface {
	// Solve searches board for a shortest path from start to target.
	// It returns grid.ErrOutOfBounds if either endpoint lies outside board.
	// An unreachable target is not an error; the result reports Found == false.
	Solve(board *grid.Grid, start, target grid.Position) (pathfinder.Result[grid.Position], error)
}
