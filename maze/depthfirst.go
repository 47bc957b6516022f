package maze

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// depthFirst is the recursive backtracker: walk to a random unvisited
// neighbor while there is one, backtrack otherwise.
func depthFirst(g grid, r Random) error {
	width := g.Width()
	size := width * g.Height()
	if size <= 1 {
		return nil
	}

	visited := make([]bool, size)
	path := stack.New[int]()

	start := r.Intn(size)
	visited[start] = true
	reached := 1
	path.Push(start)

	for path.Size() > 0 {
		current := path.Peek()
		x, y := current%width, current/width

		ps, err := passages(g, x, y)
		if err != nil {
			return err
		}

		o := g.probe(x, y)
		targets := make(map[int]passage, len(ps))
		for _, p := range ps {
			if visited[p.to] {
				o.Close(p.door)
				continue
			}
			targets[p.door] = p
		}

		door, boxed := o.Breach(r)
		if boxed {
			path.Pop()
			continue
		}

		next := targets[door]
		if err := g.openPair(next.from, next.door, next.to, next.back); err != nil {
			return err
		}
		visited[next.to] = true
		reached++
		path.Push(next.to)
	}

	if reached != size {
		return fmt.Errorf("%w: backtracking ended after reaching %d of %d cells", ErrGenerationInvariant, reached, size)
	}
	return nil
}
