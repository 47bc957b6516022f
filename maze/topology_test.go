package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shapes = []int{TriangleSides, SquareSides, HexagonSides}

func TestNewTopology(t *testing.T) {
	t.Run("Supported shapes", func(t *testing.T) {
		for _, sides := range shapes {
			topology, err := NewTopology(sides, 4, 4)
			require.NoError(t, err)
			assert.Equal(t, sides, topology.Sides())
			assert.Equal(t, ShapeName(sides), topology.Name())
		}
	})

	t.Run("Unsupported shapes", func(t *testing.T) {
		for _, sides := range []int{0, 1, 2, PentagonSides, 7, 8} {
			_, err := NewTopology(sides, 4, 4)
			assert.ErrorIs(t, err, ErrUnsupportedShape, "sides %d", sides)
		}
	})

	t.Run("Disconnected triangle column", func(t *testing.T) {
		_, err := NewTopology(TriangleSides, 1, 3)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewTopology(TriangleSides, 1, 2)
		assert.NoError(t, err)
	})

	t.Run("Negative dimensions", func(t *testing.T) {
		_, err := NewTopology(SquareSides, -1, 3)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Shape names", func(t *testing.T) {
		for _, sides := range shapes {
			got, err := SidesFromName(ShapeName(sides))
			require.NoError(t, err)
			assert.Equal(t, sides, got)
		}
		_, err := SidesFromName("pentagon")
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})
}

func TestTopologySymmetry(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 3}, {4, 7}, {7, 4}, {10, 10}}

	for _, sides := range shapes {
		for _, size := range sizes {
			width, height := size[0], size[1]
			t.Run(fmt.Sprintf("%s %dx%d", ShapeName(sides), width, height), func(t *testing.T) {
				m, err := New(width, height, sides, DefaultStrategy, WithSeed(1))
				require.NoError(t, err)
				topology := m.Topology()

				for y := 0; y < height; y++ {
					for x := 0; x < width; x++ {
						o := m.probe(x, y)
						for _, door := range o.Candidates() {
							to := topology.Neighbor(x, y, door)
							require.True(t, to >= 0 && to < width*height, "door %d of %dx%d leads to %d", door, x, y, to)

							tx, ty := m.coords(to)
							back := topology.Opposite(door, o.Inverted())

							assert.Equal(t, m.linear(x, y), topology.Neighbor(tx, ty, back),
								"door %d of %dx%d and door %d of %dx%d", door, x, y, back, tx, ty)
							assert.True(t, m.probe(tx, ty).Available(back),
								"mate door %d of %dx%d is closed by the boundary", back, tx, ty)
							assert.Equal(t, door, topology.Opposite(back, topology.Inverted(tx, ty)))
						}
					}
				}
			})
		}
	}
}

func TestOppositeInvolution(t *testing.T) {
	for _, sides := range shapes {
		topology, err := NewTopology(sides, 3, 3)
		require.NoError(t, err)

		for door := 0; door < sides; door++ {
			for _, inverted := range []bool{false, true} {
				back := topology.Opposite(door, inverted)
				assert.True(t, back >= 0 && back < sides)

				// Only triangles alternate, so the mate has the other orientation.
				mateInverted := inverted
				if sides == TriangleSides {
					mateInverted = !inverted
				}
				assert.Equal(t, door, topology.Opposite(back, mateInverted), "%s door %d", ShapeName(sides), door)
			}
		}
	}
}

func TestTriangleInverted(t *testing.T) {
	topology, err := NewTopology(TriangleSides, 4, 4)
	require.NoError(t, err)

	assert.True(t, topology.Inverted(0, 0))
	assert.False(t, topology.Inverted(1, 0))
	assert.False(t, topology.Inverted(0, 1))
	assert.True(t, topology.Inverted(1, 1))
	assert.True(t, topology.Inverted(2, 2))
	assert.False(t, topology.Inverted(3, 2))
}

func TestPrepareOpening(t *testing.T) {
	t.Run("Square corners", func(t *testing.T) {
		topology, err := NewTopology(SquareSides, 3, 3)
		require.NoError(t, err)

		o := NewOpening(0, 0, SquareSides, false)
		topology.PrepareOpening(o)
		assert.Equal(t, []int{0, 3}, o.Candidates())

		o = NewOpening(2, 2, SquareSides, false)
		topology.PrepareOpening(o)
		assert.Equal(t, []int{1, 2}, o.Candidates())

		o = NewOpening(1, 1, SquareSides, false)
		topology.PrepareOpening(o)
		assert.Equal(t, []int{0, 1, 2, 3}, o.Candidates())
	})

	t.Run("Triangle left border follows orientation", func(t *testing.T) {
		topology, err := NewTopology(TriangleSides, 3, 5)
		require.NoError(t, err)

		// Inverted, left door is 1.
		o := NewOpening(0, 2, TriangleSides, topology.Inverted(0, 2))
		topology.PrepareOpening(o)
		assert.Equal(t, []int{0, 2}, o.Candidates())

		// Upright, left door is 2.
		o = NewOpening(0, 1, TriangleSides, topology.Inverted(0, 1))
		topology.PrepareOpening(o)
		assert.Equal(t, []int{0, 1}, o.Candidates())
	})

	t.Run("Hexagon bottom row", func(t *testing.T) {
		topology, err := NewTopology(HexagonSides, 4, 3)
		require.NoError(t, err)

		even := NewOpening(2, 0, HexagonSides, false)
		topology.PrepareOpening(even)
		assert.Equal(t, []int{3, 4, 5}, even.Candidates())

		odd := NewOpening(1, 0, HexagonSides, false)
		topology.PrepareOpening(odd)
		assert.Equal(t, []int{0, 2, 3, 4, 5}, odd.Candidates())
	})

	t.Run("Hexagon top row", func(t *testing.T) {
		topology, err := NewTopology(HexagonSides, 4, 3)
		require.NoError(t, err)

		odd := NewOpening(1, 2, HexagonSides, false)
		topology.PrepareOpening(odd)
		assert.Equal(t, []int{0, 1, 2}, odd.Candidates())
	})
}

func TestDoorNames(t *testing.T) {
	for _, sides := range shapes {
		topology, err := NewTopology(sides, 2, 2)
		require.NoError(t, err)

		for door := 0; door < sides; door++ {
			assert.NotEqual(t, "unknown", topology.DoorName(door, false))
			assert.NotEqual(t, "unknown", topology.DoorName(door, true))
		}
		assert.Equal(t, "unknown", topology.DoorName(sides, false))
	}
}
