package maze

import "fmt"

// grid is the view of a Maze available to the generators: shape queries and
// a single mutation, opening a pair of mating doors.
type grid interface {
	Width() int
	Height() int
	Topology() Topology
	probe(x, y int) *Opening
	openPair(from, door, to, back int) error
}

// generator carves a spanning tree into a closed grid.
type generator func(g grid, r Random) error

var generators = map[Strategy]generator{
	RandomizedKruskal: kruskal,
	RandomizedPrim:    prim,
	DepthFirst:        depthFirst,
}

// probe returns an opening for the cell at (x, y) with boundary doors closed.
func (m *Maze) probe(x, y int) *Opening {
	o := NewOpening(x, y, m.topology.Sides(), m.topology.Inverted(x, y))
	m.topology.PrepareOpening(o)
	return o
}

func (m *Maze) openPair(from, door, to, back int) error {
	if from < 0 || from >= len(m.cells) || to < 0 || to >= len(m.cells) {
		return fmt.Errorf("%w: door pair between cells %d and %d out of %d", ErrOutOfRange, from, to, len(m.cells))
	}
	if err := m.cells[from].Toggle(door, true); err != nil {
		return err
	}
	return m.cells[to].Toggle(back, true)
}

// passage is a door leading from one cell to an in-range neighbor.
type passage struct {
	from, door int
	to, back   int
}

// passages lists the doors of (x, y) left open by the boundary rules. A
// multi-cell grid where a cell has no such door, or where a door leads
// outside of the grid, has a broken topology.
func passages(g grid, x, y int) ([]passage, error) {
	t := g.Topology()
	size := g.Width() * g.Height()
	from := y*g.Width() + x

	o := g.probe(x, y)
	if o.Count() == 0 && size > 1 {
		return nil, fmt.Errorf("%w: %s cell %dx%d is boxed", ErrGenerationInvariant, t.Name(), x, y)
	}

	out := make([]passage, 0, o.Count())
	for _, door := range o.Candidates() {
		to := t.Neighbor(x, y, door)
		if to < 0 || to >= size {
			return nil, fmt.Errorf("%w: door %s of %s cell %dx%d leads to cell %d out of %d",
				ErrGenerationInvariant, t.DoorName(door, o.Inverted()), t.Name(), x, y, to, size)
		}
		out = append(out, passage{
			from: from,
			door: door,
			to:   to,
			back: t.Opposite(door, o.Inverted()),
		})
	}
	return out, nil
}
