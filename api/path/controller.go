package pathapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/gridwalk/grid"
	"github.com/beka-birhanu/gridwalk/pathfinder"
	"github.com/beka-birhanu/gridwalk/scenario"
	"github.com/beka-birhanu/gridwalk/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PathController serves shortest-path queries.
type PathController struct {
	solver i.PathSolver
	sample *scenario.Scenario
}

// NewPathController initializes a PathController. sample is solved by GET /paths/sample.
func NewPathController(solver i.PathSolver, sample *scenario.Scenario) (*PathController, error) {
	if sample == nil {
		sample = scenario.Default()
	}
	return &PathController{solver: solver, sample: sample}, nil
}

// RegisterPublic registers public routes.
func (pc *PathController) RegisterPublic(route *gin.RouterGroup) {
	paths := route.Group("/paths")
	{
		paths.POST("", pc.findPath)
		paths.GET("/sample", pc.samplePath)
	}
}

// findPath handles ad-hoc search requests.
func (pc *PathController) findPath(ctx *gin.Context) {
	var request PathRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := grid.FromInts(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := toPosition(request.Start)
	var target grid.Position
	if request.Target != nil {
		target = toPosition(request.Target)
	} else if target, err = board.Target(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.respond(ctx, board, start, target)
}

// samplePath solves the configured scenario.
func (pc *PathController) samplePath(ctx *gin.Context) {
	pc.respond(ctx, pc.sample.Grid, pc.sample.Start, pc.sample.Target)
}

func (pc *PathController) respond(ctx *gin.Context, board *grid.Grid, start, target grid.Position) {
	result, err := pc.solver.Solve(board, start, target)
	if errors.Is(err, grid.ErrOutOfBounds) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while searching path"})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(result))
}

func toPosition(dto *PositionDTO) grid.Position {
	return grid.Position{Row: *dto.Row, Col: *dto.Col}
}

func toResponse(result pathfinder.Result[grid.Position]) *PathResponse {
	path := make([][2]int, len(result.Path))
	for idx, pos := range result.Path {
		path[idx] = [2]int{pos.Row, pos.Col}
	}
	return &PathResponse{
		ID:       uuid.New(),
		Found:    result.Found,
		Length:   result.Edges(),
		Expanded: result.ExpandedNodes,
		Path:     path,
	}
}
