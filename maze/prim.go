package maze

import "fmt"

// frontier is a bag of walls supporting O(1) insertion and O(1) removal of a
// uniformly random entry. Entries live in slots; used lists the occupied
// slots and free the slots available for reuse.
type frontier struct {
	slots []passage
	used  []int
	free  []int
}

func (f *frontier) len() int {
	return len(f.used)
}

func (f *frontier) push(p passage) {
	var slot int
	if n := len(f.free); n > 0 {
		slot = f.free[n-1]
		f.free = f.free[:n-1]
		f.slots[slot] = p
	} else {
		slot = len(f.slots)
		f.slots = append(f.slots, p)
	}
	f.used = append(f.used, slot)
}

// pop removes and returns a uniformly random entry. The frontier must not be
// empty.
func (f *frontier) pop(r Random) passage {
	i := r.Intn(len(f.used))
	slot := f.used[i]

	last := len(f.used) - 1
	f.used[i] = f.used[last]
	f.used = f.used[:last]
	f.free = append(f.free, slot)

	return f.slots[slot]
}

// prim grows a tree from a random cell, repeatedly breaching a random wall
// between the tree and a cell outside of it.
func prim(g grid, r Random) error {
	width := g.Width()
	size := width * g.Height()
	if size <= 1 {
		return nil
	}

	visited := make([]bool, size)
	f := &frontier{}

	expand := func(id int) error {
		ps, err := passages(g, id%width, id/width)
		if err != nil {
			return err
		}
		for _, p := range ps {
			if !visited[p.to] {
				f.push(p)
			}
		}
		return nil
	}

	start := r.Intn(size)
	visited[start] = true
	reached := 1
	if err := expand(start); err != nil {
		return err
	}

	for f.len() > 0 {
		w := f.pop(r)
		if visited[w.to] {
			continue
		}

		visited[w.to] = true
		reached++
		if err := g.openPair(w.from, w.door, w.to, w.back); err != nil {
			return err
		}
		if err := expand(w.to); err != nil {
			return err
		}
	}

	if reached != size {
		return fmt.Errorf("%w: frontier exhausted after reaching %d of %d cells", ErrGenerationInvariant, reached, size)
	}
	return nil
}
