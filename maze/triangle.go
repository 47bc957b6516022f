package maze

// triangle alternates orientation in a checkerboard: row 0 starts with an
// inverted triangle (pointing down), row 1 with an upright one, and so on.
//
// Inverted cells have doors right (0), left (1) and top (2); upright cells
// have right (0), bottom (1) and left (2).
type triangle struct {
	bounds
}

func (t *triangle) Name() string {
	return ShapeName(TriangleSides)
}

func (t *triangle) Sides() int {
	return TriangleSides
}

func (t *triangle) Inverted(x, y int) bool {
	return (y%2 == 0) == (x%2 == 0)
}

func (t *triangle) PrepareOpening(o *Opening) {
	if o.X() == 0 {
		if o.Inverted() {
			o.Close(1)
		} else {
			o.Close(2)
		}
	}
	if o.X() == t.width-1 {
		o.Close(0)
	}
	// Only upright triangles have a door toward the row below.
	if o.Y() == 0 && !o.Inverted() {
		o.Close(1)
	}
	// Only inverted triangles have a door toward the row above.
	if o.Y() == t.height-1 && o.Inverted() {
		o.Close(2)
	}
}

func (t *triangle) Opposite(door int, inverted bool) int {
	if inverted {
		return (door + TriangleSides - 1) % TriangleSides
	}
	return (door + 1) % TriangleSides
}

func (t *triangle) Neighbor(x, y, door int) int {
	id := t.linear(x, y)
	inverted := t.Inverted(x, y)

	switch door {
	case 0:
		return id + 1
	case 1:
		if inverted {
			return id - 1
		}
		return id - t.width
	default:
		if inverted {
			return id + t.width
		}
		return id - 1
	}
}

func (t *triangle) DoorName(door int, inverted bool) string {
	switch door {
	case 0:
		return "right"
	case 1:
		if inverted {
			return "left"
		}
		return "bottom"
	case 2:
		if inverted {
			return "top"
		}
		return "left"
	default:
		return "unknown"
	}
}
