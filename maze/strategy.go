package maze

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm used to carve a maze.
// See https://en.wikipedia.org/wiki/Maze_generation_algorithm.
type Strategy int

const (
	RandomizedKruskal Strategy = iota
	RandomizedPrim
	DepthFirst
)

// DefaultStrategy is used when no strategy is known, e.g. for loaded mazes.
const DefaultStrategy = RandomizedKruskal

// Strategies lists every supported strategy.
var Strategies = []Strategy{RandomizedKruskal, RandomizedPrim, DepthFirst}

func (s Strategy) String() string {
	switch s {
	case RandomizedKruskal:
		return "kruskal"
	case RandomizedPrim:
		return "prim"
	case DepthFirst:
		return "depth-first"
	default:
		return "unknown"
	}
}

// ParseStrategy reads a strategy name as produced by String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kruskal", "randomized-kruskal":
		return RandomizedKruskal, nil
	case "prim", "randomized-prim":
		return RandomizedPrim, nil
	case "depth-first", "dfs", "backtracker":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
