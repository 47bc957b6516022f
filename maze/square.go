package maze

type square struct {
	bounds
}

func (s *square) Name() string {
	return ShapeName(SquareSides)
}

func (s *square) Sides() int {
	return SquareSides
}

// Inverted is always false, a square has a single orientation.
func (s *square) Inverted(x, y int) bool {
	return false
}

func (s *square) PrepareOpening(o *Opening) {
	if o.X() == 0 {
		o.Close(2)
	}
	if o.X() == s.width-1 {
		o.Close(0)
	}
	if o.Y() == 0 {
		o.Close(1)
	}
	if o.Y() == s.height-1 {
		o.Close(3)
	}
}

func (s *square) Opposite(door int, inverted bool) int {
	return (door + 2) % SquareSides
}

func (s *square) Neighbor(x, y, door int) int {
	id := s.linear(x, y)

	switch door {
	case 0:
		return id + 1
	case 1:
		return id - s.width
	case 2:
		return id - 1
	default:
		return id + s.width
	}
}

func (s *square) DoorName(door int, inverted bool) string {
	switch door {
	case 0:
		return "right"
	case 1:
		return "bottom"
	case 2:
		return "left"
	case 3:
		return "top"
	default:
		return "unknown"
	}
}
