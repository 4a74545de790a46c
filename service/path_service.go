package service

import (
	"fmt"

	"github.com/beka-birhanu/gridwalk/agent"
	"github.com/beka-birhanu/gridwalk/grid"
	"github.com/beka-birhanu/gridwalk/pathfinder"
	"github.com/beka-birhanu/gridwalk/service/i"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultCacheSize = 128
	cacheKeyFmt      = "%s|%d,%d|%d,%d"
)

type PathServiceOptions struct {
	CacheSize int // Solved searches to remember; <= 0 uses the default
}

// PathService solves searches and memoises the results per grid layout and endpoints.
type PathService struct {
	cache  *lru.Cache[string, pathfinder.Result[grid.Position]]
	logger i.Logger
}

// NewPathService creates a PathService.
func NewPathService(logger i.Logger, opts *PathServiceOptions) (*PathService, error) {
	size := defaultCacheSize
	if opts != nil && opts.CacheSize > 0 {
		size = opts.CacheSize
	}

	cache, err := lru.New[string, pathfinder.Result[grid.Position]](size)
	if err != nil {
		return nil, fmt.Errorf("creating path cache: %w", err)
	}

	return &PathService{cache: cache, logger: logger}, nil
}

// Solve implements i.PathSolver.
func (ps *PathService) Solve(board *grid.Grid, start, target grid.Position) (pathfinder.Result[grid.Position], error) {
	for _, pos := range []grid.Position{start, target} {
		if _, err := board.CellState(pos); err != nil {
			return pathfinder.Result[grid.Position]{}, err
		}
	}

	key := fmt.Sprintf(cacheKeyFmt, board.Fingerprint(), start.Row, start.Col, target.Row, target.Col)
	if cached, ok := ps.cache.Get(key); ok {
		ps.logger.Debug("path cache hit", "key", key)
		return copyResult(cached), nil
	}

	result := pathfinder.Search(start, target, agent.Oracle(board))
	ps.logger.Info(fmt.Sprintf("Search %s -> %s finished", start, target),
		"found", result.Found, "edges", result.Edges(), "expanded", result.ExpandedNodes)

	ps.cache.Add(key, result)
	return copyResult(result), nil
}

// Len reports how many results are cached.
func (ps *PathService) Len() int {
	return ps.cache.Len()
}

// copyResult keeps callers from mutating a cached path.
func copyResult(r pathfinder.Result[grid.Position]) pathfinder.Result[grid.Position] {
	if r.Path != nil {
		r.Path = append([]grid.Position(nil), r.Path...)
	}
	return r
}
