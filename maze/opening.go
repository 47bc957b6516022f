package maze

// Random is the source of randomness used by the generators.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// Opening tracks which doors of a cell are still candidates to be breached
// while a generator probes that cell. It is created for one probe and
// discarded right after.
type Opening struct {
	x, y      int
	doors     []bool
	available int
	inverted  bool
}

// NewOpening creates an opening at (x, y) with every door available.
func NewOpening(x, y, sides int, inverted bool) *Opening {
	doors := make([]bool, sides)
	for i := range doors {
		doors[i] = true
	}
	return &Opening{
		x:         x,
		y:         y,
		doors:     doors,
		available: sides,
		inverted:  inverted,
	}
}

// X returns the column of the probed cell.
func (o *Opening) X() int {
	return o.x
}

// Y returns the row of the probed cell.
func (o *Opening) Y() int {
	return o.y
}

// Inverted reports whether the probed cell is inverted.
func (o *Opening) Inverted() bool {
	return o.inverted
}

// Close removes a door from the candidates. Invalid indices are ignored.
func (o *Opening) Close(door int) {
	if door < 0 || door >= len(o.doors) || !o.doors[door] {
		return
	}
	o.doors[door] = false
	o.available--
}

// Available reports whether the door is still a candidate.
func (o *Opening) Available(door int) bool {
	return door >= 0 && door < len(o.doors) && o.doors[door]
}

// Count returns the number of candidate doors left.
func (o *Opening) Count() int {
	return o.available
}

// Candidates lists the candidate doors in canonical order.
func (o *Opening) Candidates() []int {
	doors := make([]int, 0, o.available)
	for id, ok := range o.doors {
		if ok {
			doors = append(doors, id)
		}
	}
	return doors
}

// Breach picks one of the candidate doors uniformly at random.
// boxed is true when no candidate is left, door is then meaningless.
func (o *Opening) Breach(r Random) (door int, boxed bool) {
	if o.available == 0 {
		return 0, true
	}

	pick := r.Intn(o.available)
	for id, ok := range o.doors {
		if !ok {
			continue
		}
		if pick == 0 {
			return id, false
		}
		pick--
	}

	// Unreachable as long as available matches the flags.
	return 0, true
}
