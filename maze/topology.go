package maze

import "fmt"

// Supported cell shapes, identified by their number of sides.
const (
	TriangleSides = 3
	SquareSides   = 4
	PentagonSides = 5 // reserved, not supported
	HexagonSides  = 6
)

// Topology maps a cell position and orientation to its doors and neighbors.
// Rows grow upward: y == 0 is the bottom row and "bottom" doors lead to y-1.
//
// For every door left available by PrepareOpening, Neighbor returns an index
// inside the grid, and the door Opposite(door, inverted) of that neighbor
// leads back to the original cell. Generators rely on it.
type Topology interface {
	// Name is the human readable shape name.
	Name() string

	// Sides is the number of doors per cell.
	Sides() int

	// Inverted reports whether the cell at (x, y) is mirrored relative to
	// its neighbors.
	Inverted(x, y int) bool

	// PrepareOpening closes the doors of the opening that would cross the
	// grid boundary.
	PrepareOpening(o *Opening)

	// Opposite returns the door of the neighbor mating with door.
	Opposite(door int, inverted bool) int

	// Neighbor returns the linear index of the cell reached through door.
	Neighbor(x, y, door int) int

	// DoorName is a diagnostic label for the door.
	DoorName(door int, inverted bool) string
}

// bounds holds the grid dimensions shared by every topology.
type bounds struct {
	width, height int
}

func (b bounds) linear(x, y int) int {
	return y*b.width + x
}

// NewTopology returns the topology for cells with the given number of sides
// on a width x height grid.
func NewTopology(sides, width, height int) (Topology, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	b := bounds{width: width, height: height}
	switch sides {
	case TriangleSides:
		// A single column of triangles only links rows 0 and 1.
		if width == 1 && height > 2 {
			return nil, fmt.Errorf("%w: a %dx%d triangle grid is not connected", ErrInvalidDimensions, width, height)
		}
		return &triangle{b}, nil
	case SquareSides:
		return &square{b}, nil
	case HexagonSides:
		return &hexagon{b}, nil
	default:
		return nil, fmt.Errorf("%w: %d sides", ErrUnsupportedShape, sides)
	}
}

// ShapeName returns the name of the shape with the given number of sides.
func ShapeName(sides int) string {
	switch sides {
	case TriangleSides:
		return "triangle"
	case SquareSides:
		return "square"
	case PentagonSides:
		return "pentagon"
	case HexagonSides:
		return "hexagon"
	default:
		return "unknown"
	}
}

// SidesFromName is the inverse of ShapeName for supported shapes.
func SidesFromName(name string) (int, error) {
	switch name {
	case "triangle":
		return TriangleSides, nil
	case "square":
		return SquareSides, nil
	case "hexagon":
		return HexagonSides, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, name)
	}
}
