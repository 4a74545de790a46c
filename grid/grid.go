/*
Package grid provides the static board an agent searches over.

A Grid is a rectangular, row-major arrangement of cells that are Open, Blocked or
Target. It is built once and never mutated afterwards, so a single value can be
shared by any number of searches.

The package answers bounds and walkability queries, lists the four-connected
neighbors of a position, and renders the board (optionally with a path) as ASCII.
*/
package grid

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	// MaxDimension caps the width and height a grid may have.
	MaxDimension = 1024
)

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrUnknownCell       = errors.New("unknown cell value")
	ErrNoTarget          = errors.New("grid has no target cell")
)

// Grid is an immutable 2D board of cell states.
type Grid struct {
	width  int         // number of columns
	height int         // number of rows
	cells  []CellState // row-major cell storage
}

// New builds a grid from rows of cell states. Rows are copied, so later changes
// to the argument do not affect the grid.
func New(rows [][]CellState) (*Grid, error) {
	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	if width == 0 || max(width, height) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}

	cells := make([]CellState, 0, width*height)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), width)
		}
		for c, state := range row {
			if _, err := ParseCellState(int(state)); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// FromInts builds a grid from the numeric form 0 (open), 1 (blocked), 2 (target).
func FromInts(rows [][]int) (*Grid, error) {
	states := make([][]CellState, len(rows))
	for r, row := range rows {
		states[r] = make([]CellState, len(row))
		for c, v := range row {
			state, err := ParseCellState(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			states[r][c] = state
		}
	}
	return New(states)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// IsWalkable reports whether pos is inside the grid and not blocked.
// It never fails; out-of-range positions are simply not walkable.
func (g *Grid) IsWalkable(pos Position) bool {
	return g.InBounds(pos) && g.at(pos) != Blocked
}

// CellState returns the state of the cell at pos, or ErrOutOfBounds.
func (g *Grid) CellState(pos Position) (CellState, error) {
	if !g.InBounds(pos) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, pos, g.height, g.width)
	}
	return g.at(pos), nil
}

// Neighbors returns the walkable cells adjacent to pos, in the order up, down, left, right.
func (g *Grid) Neighbors(pos Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, dir := range Directions {
		neighbor := pos.Add(dir.Delta)
		if g.IsWalkable(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// Target returns the first cell marked Target in row-major order.
func (g *Grid) Target() (Position, error) {
	for i, state := range g.cells {
		if state == Target {
			return Position{Row: i / g.width, Col: i % g.width}, nil
		}
	}
	return Position{}, ErrNoTarget
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.height)
	for r := range rows {
		rows[r] = append([]CellState(nil), g.cells[r*g.width:(r+1)*g.width]...)
	}
	return rows
}

// Fingerprint identifies the grid layout. Equal layouts give equal fingerprints.
func (g *Grid) Fingerprint() string {
	h := fnv.New64a()
	buf := make([]byte, 0, len(g.cells))
	for _, state := range g.cells {
		buf = append(buf, byte(state))
	}
	_, _ = h.Write(buf)
	return fmt.Sprintf("%dx%d:%016x", g.height, g.width, h.Sum64())
}

func (g *Grid) at(pos Position) CellState {
	return g.cells[pos.Row*g.width+pos.Col]
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.RenderPath(nil)
}

// RenderPath draws the grid with path cells marked. The first path cell is
// drawn as S, the last as T and the cells in between as *.
func (g *Grid) RenderPath(path []Position) string {
	marks := make(map[Position]string, len(path))
	for i, pos := range path {
		switch i {
		case 0:
			marks[pos] = "S"
		case len(path) - 1:
			marks[pos] = "T"
		default:
			marks[pos] = "*"
		}
	}

	var output strings.Builder
	border := "+" + strings.Repeat("---+", g.width) + "\n"
	output.WriteString(border)

	for row := 0; row < g.height; row++ {
		output.WriteString("|")
		for col := 0; col < g.width; col++ {
			pos := Position{Row: row, Col: col}
			glyph, marked := marks[pos]
			if !marked {
				glyph = cellGlyph(g.at(pos))
			}
			output.WriteString(" " + glyph + " |")
		}
		output.WriteString("\n")
		output.WriteString(border)
	}

	return output.String()
}

func cellGlyph(state CellState) string {
	switch state {
	case Blocked:
		return "#"
	case Target:
		return "T"
	default:
		return " "
	}
}
