// Package agent models a single walker on a grid.
package agent

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/gridwalk/grid"
)

var (
	ErrInvalidMove = errors.New("invalid move request")
)

// Agent tracks the current position of a walker on a fixed grid.
type Agent struct {
	board    *grid.Grid
	position grid.Position
}

// New places an agent on board at start.
func New(board *grid.Grid, start grid.Position) *Agent {
	return &Agent{board: board, position: start}
}

// Position returns where the agent currently stands.
func (a *Agent) Position() grid.Position {
	return a.position
}

// Sense lists the walkable cells next to the agent: up, down, left, right.
func (a *Agent) Sense() []grid.Position {
	return a.board.Neighbors(a.position)
}

// Move steps the agent to to. Staying in place is allowed; any other target
// must be a walkable cell adjacent to the current position.
func (a *Agent) Move(to grid.Position) error {
	if to != a.position && (!to.IsAdjacent(a.position) || !a.board.IsWalkable(to)) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidMove, a.position, to)
	}
	a.position = to
	return nil
}

// Oracle returns a neighbor function that senses the environment from any
// position, as an agent standing there would.
func Oracle(board *grid.Grid) func(grid.Position) []grid.Position {
	return func(pos grid.Position) []grid.Position {
		return New(board, pos).Sense()
	}
}
