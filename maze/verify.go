package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Verification errors.
var (
	ErrBoundaryBreached = errors.New("boundary door is open")
	ErrUnmatchedDoor    = errors.New("open door has no open mate")
	ErrNotPerfect       = errors.New("maze is not a spanning tree")
)

// Verify checks that the maze is perfect: no door open toward the outside of
// the grid, every open door mated by the neighbor, and the open door pairs
// forming a spanning tree over all cells.
func (m *Maze) Verify() error {
	size := len(m.cells)
	if size == 0 {
		return nil
	}

	adjacency := make([][]int, size)
	pairs := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			id := m.linear(x, y)
			o := m.probe(x, y)
			for door, open := range m.cells[id].doors {
				if !open {
					continue
				}
				if !o.Available(door) {
					return fmt.Errorf("%w: door %s of cell %dx%d", ErrBoundaryBreached, m.topology.DoorName(door, o.Inverted()), x, y)
				}

				to := m.topology.Neighbor(x, y, door)
				if to < 0 || to >= size {
					return fmt.Errorf("%w: door %d of cell %dx%d leads to cell %d", ErrOutOfRange, door, x, y, to)
				}
				if !m.cells[to].doors[m.topology.Opposite(door, o.Inverted())] {
					tx, ty := m.coords(to)
					return fmt.Errorf("%w: door %s of cell %dx%d toward %dx%d", ErrUnmatchedDoor, m.topology.DoorName(door, o.Inverted()), x, y, tx, ty)
				}

				adjacency[id] = append(adjacency[id], to)
				if to > id {
					pairs++
				}
			}
		}
	}

	if pairs != size-1 {
		return fmt.Errorf("%w: %d open door pairs for %d cells", ErrNotPerfect, pairs, size)
	}

	// With size-1 edges, reaching every cell also rules out cycles.
	visited := mapset.New[int]()
	queue := []int{0}
	visited.Put(0)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, to := range adjacency[id] {
			if visited.Has(to) {
				continue
			}
			visited.Put(to)
			queue = append(queue, to)
		}
	}
	if visited.Size() != size {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, visited.Size(), size)
	}

	return nil
}
