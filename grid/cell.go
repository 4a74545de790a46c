package grid

import "fmt"

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Open    CellState = iota // Open cells can be walked on.
	Blocked                  // Blocked cells are obstacles.
	Target                   // Target marks the goal cell; it is walkable.
)

// String returns the single-digit form used in scenario files.
func (s CellState) String() string {
	switch s {
	case Open:
		return "0"
	case Blocked:
		return "1"
	case Target:
		return "2"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// ParseCellState converts a scenario digit into a CellState.
func ParseCellState(v int) (CellState, error) {
	if v < int(Open) || v > int(Target) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCell, v)
	}
	return CellState(v), nil
}

// Position represents the position of a cell in the grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Add returns the position shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// IsAdjacent reports whether p and other differ by exactly one step up, down, left or right.
func (p Position) IsAdjacent(other Position) bool {
	dr, dc := p.Row-other.Row, p.Col-other.Col
	return dr*dr+dc*dc == 1
}

// String formats the position as a coordinate pair, e.g. "(2, 3)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction names one of the four moves an agent can make.
type Direction struct {
	Name  string
	Delta Position
}

// Directions lists the moves in expansion order: up, down, left, right.
// Searches rely on this order for reproducible tie-breaks.
var Directions = [4]Direction{
	{Name: "North", Delta: Position{Row: -1, Col: 0}},
	{Name: "South", Delta: Position{Row: 1, Col: 0}},
	{Name: "West", Delta: Position{Row: 0, Col: -1}},
	{Name: "East", Delta: Position{Row: 0, Col: 1}},
}
