package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/gridwalk/agent"
	"github.com/beka-birhanu/gridwalk/grid"
	"github.com/beka-birhanu/gridwalk/scenario"
	"github.com/beka-birhanu/gridwalk/service/i"
	"github.com/google/uuid"
)

var (
	ErrNilScenario = errors.New("scenario is required")
)

// Report summarises one simulation run.
type Report struct {
	RunID uuid.UUID
	Found bool
	Path  []grid.Position
	Steps int // moves the agent made, including the initial placement
}

type SimulationOptions struct {
	Out      io.Writer // Destination for the run transcript
	ShowGrid bool      // Draw the board with the path after the transcript
}

// Simulation places an agent at the scenario start, plans a path to the target
// and walks it, writing a transcript as it goes.
type Simulation struct {
	scenario *scenario.Scenario
	solver   i.PathSolver
	logger   i.Logger
	opts     SimulationOptions
}

// NewSimulation creates a Simulation.
func NewSimulation(s *scenario.Scenario, solver i.PathSolver, logger i.Logger, opts SimulationOptions) (*Simulation, error) {
	if s == nil {
		return nil, ErrNilScenario
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Simulation{
		scenario: s,
		solver:   solver,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Run plans and executes the walk. A missing path is reported in the
// transcript and in Report.Found; it is not an error.
func (sim *Simulation) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	sim.logger.Info(fmt.Sprintf("Starting simulation %q", sim.scenario.Name),
		"run", report.RunID, "start", sim.scenario.Start, "target", sim.scenario.Target)

	walker := agent.New(sim.scenario.Grid, sim.scenario.Start)
	result, err := sim.solver.Solve(sim.scenario.Grid, walker.Position(), sim.scenario.Target)
	if err != nil {
		sim.logger.Error(fmt.Sprintf("Planning path: %v", err), "run", report.RunID)
		return nil, fmt.Errorf("planning path: %w", err)
	}

	if !result.Found {
		fmt.Fprintln(sim.opts.Out, "No path found to the target.")
		sim.logger.Warning("Target unreachable", "run", report.RunID)
		return report, nil
	}

	report.Found = true
	report.Path = result.Path
	fmt.Fprintf(sim.opts.Out, "Path found: %s\n", FormatPath(result.Path))

	for _, step := range result.Path {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := walker.Move(step); err != nil {
			return report, err
		}
		report.Steps++
		fmt.Fprintf(sim.opts.Out, "Agent moved to %s\n", walker.Position())
	}

	if sim.opts.ShowGrid {
		fmt.Fprint(sim.opts.Out, sim.scenario.Grid.RenderPath(result.Path))
	}

	sim.logger.Info("Simulation finished", "run", report.RunID, "steps", report.Steps)
	return report, nil
}

// FormatPath renders a path as a bracketed list of coordinate pairs.
func FormatPath(path []grid.Position) string {
	parts := make([]string, len(path))
	for idx, pos := range path {
		parts[idx] = pos.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
