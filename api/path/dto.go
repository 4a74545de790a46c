// Package pathapi exposes shortest-path search over HTTP.
package pathapi

import "github.com/google/uuid"

// PositionDTO is a grid coordinate on the wire.
type PositionDTO struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// PathRequest asks for a shortest path across a grid of 0 (open), 1 (blocked) and 2 (target) cells.
type PathRequest struct {
	Grid   [][]int      `json:"grid" binding:"required"`
	Start  *PositionDTO `json:"start" binding:"required"`
	Target *PositionDTO `json:"target"` // defaults to the first cell marked 2
}

// PathResponse is the outcome of a search.
type PathResponse struct {
	ID       uuid.UUID `json:"id"`
	Found    bool      `json:"found"`
	Length   int       `json:"length"` // number of moves
	Expanded int       `json:"expanded"`
	Path     [][2]int  `json:"path"` // [row, col] pairs; empty when not found
}
