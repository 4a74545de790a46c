// Package scenario loads the grid, start and target an agent is run against.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/gridwalk/grid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a board together with the endpoints of a search.
type Scenario struct {
	Name   string
	Grid   *grid.Grid
	Start  grid.Position
	Target grid.Position
}

// document is the YAML form of a scenario.
type document struct {
	Name   string   `yaml:"name"`
	Grid   []string `yaml:"grid"`
	Start  []int    `yaml:"start"`
	Target []int    `yaml:"target"`
}

// sampleRows is the 5x5 board the simulation runs on by default.
var sampleRows = [][]int{
	{0, 1, 0, 0, 0},
	{0, 1, 0, 1, 0},
	{0, 0, 0, 1, 0},
	{1, 0, 1, 0, 0},
	{0, 0, 0, 0, 2},
}

// Default returns the built-in sample: start (0, 0), target (4, 4).
func Default() *Scenario {
	g, err := grid.FromInts(sampleRows)
	if err != nil {
		panic(fmt.Sprintf("scenario: sample grid: %v", err))
	}
	return &Scenario{
		Name:   "sample",
		Grid:   g,
		Start:  grid.Position{Row: 0, Col: 0},
		Target: grid.Position{Row: 4, Col: 4},
	}
}

// Load reads a YAML scenario from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario. The target defaults to the first cell marked 2
// when it is not given explicitly.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	rows, err := parseRows(doc.Grid)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromInts(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	start, err := parsePosition("start", doc.Start)
	if err != nil {
		return nil, err
	}

	var target grid.Position
	if len(doc.Target) == 0 {
		target, err = g.Target()
		if err != nil {
			return nil, fmt.Errorf("%w: no target given: %w", ErrInvalidScenario, err)
		}
	} else if target, err = parsePosition("target", doc.Target); err != nil {
		return nil, err
	}

	for name, pos := range map[string]grid.Position{"start": start, "target": target} {
		if _, err := g.CellState(pos); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, name, err)
		}
	}

	name := doc.Name
	if name == "" {
		name = "unnamed"
	}
	return &Scenario{Name: name, Grid: g, Start: start, Target: target}, nil
}

func parseRows(lines []string) ([][]int, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidScenario)
	}
	rows := make([][]int, len(lines))
	for r, line := range lines {
		fields := strings.Fields(line)
		rows[r] = make([]int, len(fields))
		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not a number", ErrInvalidScenario, r, c, field)
			}
			rows[r][c] = v
		}
	}
	return rows, nil
}

func parsePosition(name string, coords []int) (grid.Position, error) {
	if len(coords) != 2 {
		return grid.Position{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrInvalidScenario, name, coords)
	}
	return grid.Position{Row: coords[0], Col: coords[1]}, nil
}
