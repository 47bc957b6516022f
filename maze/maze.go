/*
Package maze generates perfect mazes over grids of triangular, square or
hexagonal cells.

A Maze owns a row-major grid of Cells and delegates the shape-specific
adjacency rules to a Topology. Generate carves a spanning tree with one of
three randomized strategies (Kruskal, Prim, depth-first backtracker), and the
binary codec saves and restores the door states of every cell.
*/
package maze

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Maze is a width x height grid of cells sharing the same shape.
type Maze struct {
	width    int
	height   int
	strategy Strategy
	topology Topology
	cells    []Cell
	rnd      Random
}

// Option configures a Maze at construction.
type Option func(*Maze)

// WithRandom sets the source of randomness used by Generate.
func WithRandom(r Random) Option {
	return func(m *Maze) {
		m.rnd = r
	}
}

// WithSeed makes generation reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.rnd = rand.New(rand.NewSource(seed))
	}
}

// New creates a maze with every door closed. sides must be 3, 4 or 6.
func New(width, height, sides int, strategy Strategy, opts ...Option) (*Maze, error) {
	if _, ok := generators[strategy]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	topology, err := NewTopology(sides, width, height)
	if err != nil {
		return nil, err
	}
	if width != 0 && height > math.MaxInt/width/sides {
		return nil, fmt.Errorf("%w: %dx%d %s grid is too large", ErrInvalidDimensions, width, height, topology.Name())
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = NewCell(sides)
	}

	m := &Maze{
		width:    width,
		height:   height,
		strategy: strategy,
		topology: topology,
		cells:    cells,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Sides returns the number of doors of each cell.
func (m *Maze) Sides() int {
	return m.topology.Sides()
}

// Strategy returns the generation strategy.
func (m *Maze) Strategy() Strategy {
	return m.strategy
}

// Topology returns the shape rules of the maze.
func (m *Maze) Topology() Topology {
	return m.topology
}

// At returns a copy of the cell at (x, y).
func (m *Maze) At(x, y int) (Cell, error) {
	if !m.contains(x, y) {
		return Cell{}, fmt.Errorf("%w: cell %dx%d in a %dx%d maze", ErrOutOfRange, x, y, m.width, m.height)
	}
	return m.cells[m.linear(x, y)].clone(), nil
}

// Inverted reports whether the cell at (x, y) is mirrored.
func (m *Maze) Inverted(x, y int) (bool, error) {
	if !m.contains(x, y) {
		return false, fmt.Errorf("%w: cell %dx%d in a %dx%d maze", ErrOutOfRange, x, y, m.width, m.height)
	}
	return m.topology.Inverted(x, y), nil
}

// Open opens every door of every cell.
func (m *Maze) Open() {
	for i := range m.cells {
		m.cells[i].Open()
	}
}

// Close closes every door of every cell.
func (m *Maze) Close() {
	for i := range m.cells {
		m.cells[i].Close()
	}
}

// Generate closes the maze and carves a new spanning tree with the maze
// strategy. It does nothing on an empty maze.
func (m *Maze) Generate() error {
	if len(m.cells) == 0 {
		return nil
	}

	m.Close()
	if err := generators[m.strategy](m, m.rnd); err != nil {
		m.Close()
		return fmt.Errorf("generating %dx%d %s maze with %s: %w", m.width, m.height, m.topology.Name(), m.strategy, err)
	}
	return nil
}

// OpenPairs counts the open doors whose mate on the neighbor is open too.
func (m *Maze) OpenPairs() int {
	pairs := 0
	m.eachDoor(func(x, y, door, target, back int) {
		if target > m.linear(x, y) && m.cells[m.linear(x, y)].doors[door] && m.cells[target].doors[back] {
			pairs++
		}
	})
	return pairs
}

// Equal reports whether both mazes have the same dimensions, shape and door
// states. The strategy is ignored.
func (m *Maze) Equal(o *Maze) bool {
	if o == nil {
		return false
	}
	if m.width != o.width || m.height != o.height || m.Sides() != o.Sides() {
		return false
	}
	for i := range m.cells {
		for door, open := range m.cells[i].doors {
			if o.cells[i].doors[door] != open {
				return false
			}
		}
	}
	return true
}

func (m *Maze) contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Maze) linear(x, y int) int {
	return y*m.width + x
}

func (m *Maze) coords(id int) (int, int) {
	return id % m.width, id / m.width
}

// eachDoor calls fn for every door not closed by the boundary rules and
// leading inside the grid, with the neighbor reached and its mating door.
func (m *Maze) eachDoor(fn func(x, y, door, target, back int)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			o := m.probe(x, y)
			for _, door := range o.Candidates() {
				target := m.topology.Neighbor(x, y, door)
				if target < 0 || target >= len(m.cells) {
					continue
				}
				fn(x, y, door, target, m.topology.Opposite(door, o.Inverted()))
			}
		}
	}
}
