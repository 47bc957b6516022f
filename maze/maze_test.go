package maze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Starts closed", func(t *testing.T) {
		m, err := New(4, 3, HexagonSides, RandomizedPrim)
		require.NoError(t, err)

		assert.Equal(t, 4, m.Width())
		assert.Equal(t, 3, m.Height())
		assert.Equal(t, HexagonSides, m.Sides())
		assert.Equal(t, RandomizedPrim, m.Strategy())

		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				c, err := m.At(x, y)
				require.NoError(t, err)
				assert.Equal(t, HexagonSides, c.Doors())
				assert.Zero(t, c.OpenCount())
			}
		}
	})

	t.Run("Unsupported shape", func(t *testing.T) {
		_, err := New(4, 4, PentagonSides, RandomizedKruskal)
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})

	t.Run("Unknown strategy", func(t *testing.T) {
		_, err := New(4, 4, SquareSides, Strategy(42))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("Negative dimensions", func(t *testing.T) {
		_, err := New(-2, 4, SquareSides, RandomizedKruskal)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Oversized grid", func(t *testing.T) {
		var err error
		assert.NotPanics(t, func() { _, err = New(math.MaxInt/2, 3, SquareSides, RandomizedKruskal) })
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		assert.NotPanics(t, func() { _, err = New(math.MaxInt/4, 2, HexagonSides, DepthFirst) })
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestEqual(t *testing.T) {
	m, err := New(3, 3, SquareSides, RandomizedKruskal, WithSeed(4))
	require.NoError(t, err)
	require.NoError(t, m.Generate())

	assert.False(t, m.Equal(nil))
	assert.True(t, m.Equal(m))

	other, err := New(3, 3, HexagonSides, RandomizedKruskal)
	require.NoError(t, err)
	assert.False(t, m.Equal(other))
}

func TestAt(t *testing.T) {
	m, err := New(3, 2, SquareSides, RandomizedKruskal, WithSeed(2))
	require.NoError(t, err)

	t.Run("Out of range", func(t *testing.T) {
		for _, pos := range [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
			_, err := m.At(pos[0], pos[1])
			assert.ErrorIs(t, err, ErrOutOfRange)

			_, err = m.Inverted(pos[0], pos[1])
			assert.ErrorIs(t, err, ErrOutOfRange)
		}
	})

	t.Run("Returns a copy", func(t *testing.T) {
		c, err := m.At(1, 1)
		require.NoError(t, err)
		c.Open()

		again, err := m.At(1, 1)
		require.NoError(t, err)
		assert.Zero(t, again.OpenCount())
	})
}

func TestInverted(t *testing.T) {
	m, err := New(2, 2, TriangleSides, DepthFirst)
	require.NoError(t, err)

	inverted, err := m.Inverted(0, 0)
	require.NoError(t, err)
	assert.True(t, inverted)

	inverted, err = m.Inverted(1, 0)
	require.NoError(t, err)
	assert.False(t, inverted)
}

func TestVerify(t *testing.T) {
	t.Run("Closed maze is not perfect", func(t *testing.T) {
		m, err := New(3, 3, SquareSides, RandomizedKruskal)
		require.NoError(t, err)
		assert.ErrorIs(t, m.Verify(), ErrNotPerfect)
	})

	t.Run("Single cell is perfect", func(t *testing.T) {
		m, err := New(1, 1, HexagonSides, RandomizedKruskal)
		require.NoError(t, err)
		assert.NoError(t, m.Verify())
	})

	t.Run("Open maze breaches the boundary", func(t *testing.T) {
		m, err := New(3, 3, TriangleSides, RandomizedKruskal)
		require.NoError(t, err)
		m.Open()
		assert.ErrorIs(t, m.Verify(), ErrBoundaryBreached)
	})

	t.Run("Unmatched door", func(t *testing.T) {
		m, err := New(2, 1, SquareSides, RandomizedKruskal)
		require.NoError(t, err)
		require.NoError(t, m.cells[0].Toggle(0, true))
		assert.ErrorIs(t, m.Verify(), ErrUnmatchedDoor)
	})

	t.Run("Extra door pair creates a cycle", func(t *testing.T) {
		m, err := New(3, 3, SquareSides, RandomizedKruskal, WithSeed(4))
		require.NoError(t, err)
		require.NoError(t, m.Generate())

		opened := false
		m.eachDoor(func(x, y, door, target, back int) {
			id := m.linear(x, y)
			if opened || m.cells[id].doors[door] {
				return
			}
			require.NoError(t, m.openPair(id, door, target, back))
			opened = true
		})
		require.True(t, opened)

		assert.Equal(t, 9, m.OpenPairs())
		assert.ErrorIs(t, m.Verify(), ErrNotPerfect)
	})
}

func TestString(t *testing.T) {
	t.Run("Square maze is drawn", func(t *testing.T) {
		m, err := New(2, 1, SquareSides, RandomizedKruskal, WithSeed(1))
		require.NoError(t, err)
		require.NoError(t, m.Generate())

		want := "+---+---+\n" +
			"|       |\n" +
			"+---+---+\n"
		assert.Equal(t, want, m.String())
	})

	t.Run("Other shapes are summarized", func(t *testing.T) {
		m, err := New(2, 2, HexagonSides, RandomizedPrim, WithSeed(1))
		require.NoError(t, err)
		require.NoError(t, m.Generate())

		assert.Equal(t, "2x2 hexagon maze (prim), 3 open door pairs", m.String())
	})
}
