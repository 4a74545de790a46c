package pathfinder

// NeighborFunc returns the nodes reachable in one step from node.
type NeighborFunc[NodeType comparable] func(node NodeType) []NodeType

// Result contains the outcome of a search.
type Result[NodeType comparable] struct {
	Path          []NodeType // start to target, both inclusive; nil when not found
	ExpandedNodes int        // nodes dequeued before the search stopped
	Found         bool
}

// Edges returns the number of moves on the path.
func (r Result[NodeType]) Edges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// FindPath returns a shortest path from start to target, or false when the
// target cannot be reached.
func FindPath[NodeType comparable](start, target NodeType, neighbors NeighborFunc[NodeType]) ([]NodeType, bool) {
	result := Search(start, target, neighbors)
	return result.Path, result.Found
}

// Search runs breadth-first search from start until target is dequeued or the
// frontier is exhausted.
func Search[NodeType comparable](start, target NodeType, neighbors NeighborFunc[NodeType]) Result[NodeType] {
	frontier := NewQueue[NodeType](16)
	frontier.Push(start)

	cameFrom := make(map[NodeType]NodeType)
	visited := map[NodeType]struct{}{start: {}}

	expandedNodes := 0
	for {
		current, ok := frontier.Pop()
		if !ok {
			return Result[NodeType]{ExpandedNodes: expandedNodes}
		}
		expandedNodes++

		// The first time the target leaves the queue its path is minimal.
		if current == target {
			return Result[NodeType]{
				Path:          reconstructPath(cameFrom, current, start),
				ExpandedNodes: expandedNodes,
				Found:         true,
			}
		}

		for _, neighbor := range neighbors(current) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			cameFrom[neighbor] = current
			frontier.Push(neighbor)
		}
	}
}

// reconstructPath walks the predecessor map back from current to start.
func reconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
