package maze

import "fmt"

// kruskal merges regions by opening random walls until a single region is
// left. Regions are relabeled by a full scan of the id array on each merge,
// which is linear per merge but keeps the bookkeeping trivial.
func kruskal(g grid, r Random) error {
	size := g.Width() * g.Height()
	if size <= 1 {
		return nil
	}

	// Every physical wall is listed once, from its lower-indexed side.
	var walls []passage
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			ps, err := passages(g, x, y)
			if err != nil {
				return err
			}
			for _, p := range ps {
				if p.to > p.from {
					walls = append(walls, p)
				}
			}
		}
	}

	regions := make([]int, size)
	for id := range regions {
		regions[id] = id
	}

	// walls[:remaining] are the walls not drawn yet.
	remaining := len(walls)
	for merged := 0; merged < size-1; {
		if remaining == 0 {
			return fmt.Errorf("%w: walls exhausted after %d of %d merges", ErrGenerationInvariant, merged, size-1)
		}

		pick := r.Intn(remaining)
		remaining--
		walls[pick], walls[remaining] = walls[remaining], walls[pick]
		w := walls[remaining]

		if regions[w.from] == regions[w.to] {
			continue
		}

		if err := g.openPair(w.from, w.door, w.to, w.back); err != nil {
			return err
		}

		replaced := max(regions[w.from], regions[w.to])
		kept := min(regions[w.from], regions[w.to])
		for id := range regions {
			if regions[id] == replaced {
				regions[id] = kept
			}
		}
		merged++
	}

	return nil
}
