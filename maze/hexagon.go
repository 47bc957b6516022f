package maze

// hexagon lays out flat-topped hexagons in columns, even columns sitting half
// a cell lower than odd ones. Doors go clockwise from the bottom right:
// bottom right (0), bottom (1), bottom left (2), top left (3), top (4) and
// top right (5).
type hexagon struct {
	bounds
}

func (h *hexagon) Name() string {
	return ShapeName(HexagonSides)
}

func (h *hexagon) Sides() int {
	return HexagonSides
}

// Inverted is always false, hexagons share a single orientation.
func (h *hexagon) Inverted(x, y int) bool {
	return false
}

func (h *hexagon) PrepareOpening(o *Opening) {
	if o.X() == 0 {
		o.Close(2)
		o.Close(3)
	}
	if o.X() == h.width-1 {
		o.Close(0)
		o.Close(5)
	}
	if o.Y() == 0 {
		o.Close(1)
		// Even columns are lower: their side doors also lead below.
		if o.X()%2 == 0 {
			o.Close(0)
			o.Close(2)
		}
	}
	if o.Y() == h.height-1 {
		o.Close(4)
		// Odd columns are higher: their side doors also lead above.
		if o.X()%2 == 1 {
			o.Close(3)
			o.Close(5)
		}
	}
}

func (h *hexagon) Opposite(door int, inverted bool) int {
	return (door + 3) % HexagonSides
}

func (h *hexagon) Neighbor(x, y, door int) int {
	id := h.linear(x, y)
	odd := x%2 == 1

	switch door {
	case 0:
		if odd {
			return id + 1
		}
		return id - (h.width - 1)
	case 1:
		return id - h.width
	case 2:
		if odd {
			return id - 1
		}
		return id - (h.width + 1)
	case 3:
		if odd {
			return id + (h.width - 1)
		}
		return id - 1
	case 4:
		return id + h.width
	default:
		if odd {
			return id + (h.width + 1)
		}
		return id + 1
	}
}

func (h *hexagon) DoorName(door int, inverted bool) string {
	switch door {
	case 0:
		return "bottom right"
	case 1:
		return "bottom"
	case 2:
		return "bottom left"
	case 3:
		return "top left"
	case 4:
		return "top"
	case 5:
		return "top right"
	default:
		return "unknown"
	}
}
