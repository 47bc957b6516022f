package maze

import "fmt"

// Cell holds the door states of a single polygon of the maze.
// Door 0 is the one closest to the east, the others follow around the
// polygon in the order defined by the maze topology.
type Cell struct {
	doors []bool
}

// NewCell creates a cell with the given number of doors, all closed.
func NewCell(doors int) Cell {
	return Cell{doors: make([]bool, doors)}
}

// Doors returns the number of doors of the cell.
func (c Cell) Doors() int {
	return len(c.doors)
}

// Door returns whether the door at the given index is open.
func (c Cell) Door(id int) (bool, error) {
	if id < 0 || id >= len(c.doors) {
		return false, fmt.Errorf("%w: door %d of a cell with %d doors", ErrOutOfRange, id, len(c.doors))
	}
	return c.doors[id], nil
}

// Open opens every door of the cell.
func (c *Cell) Open() {
	for id := range c.doors {
		c.doors[id] = true
	}
}

// Close closes every door of the cell.
func (c *Cell) Close() {
	for id := range c.doors {
		c.doors[id] = false
	}
}

// Toggle sets the state of the door at the given index.
func (c *Cell) Toggle(id int, open bool) error {
	if id < 0 || id >= len(c.doors) {
		return fmt.Errorf("%w: toggling door %d of a cell with %d doors", ErrOutOfRange, id, len(c.doors))
	}
	c.doors[id] = open
	return nil
}

// Each calls fn for every door in canonical order.
func (c Cell) Each(fn func(id int, open bool)) {
	for id, open := range c.doors {
		fn(id, open)
	}
}

// OpenCount returns the number of open doors.
func (c Cell) OpenCount() int {
	count := 0
	for _, open := range c.doors {
		if open {
			count++
		}
	}
	return count
}

// clone returns a copy that does not share door storage with c.
func (c Cell) clone() Cell {
	doors := make([]bool, len(c.doors))
	copy(doors, c.doors)
	return Cell{doors: doors}
}
