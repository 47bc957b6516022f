package maze

import (
	"fmt"
	"strings"
)

// String provides a textual representation of the maze. Square mazes are
// drawn with the top row first; other shapes only get a summary line.
func (m *Maze) String() string {
	if m.Sides() != SquareSides || len(m.cells) == 0 {
		return fmt.Sprintf("%dx%d %s maze (%s), %d open door pairs", m.width, m.height, m.topology.Name(), m.strategy, m.OpenPairs())
	}

	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := m.height - 1; y >= 0; y-- {
		// Cell row, closed right door draws a wall
		output.WriteString("|")
		for x := 0; x < m.width; x++ {
			if m.cells[m.linear(x, y)].doors[0] {
				output.WriteString("    ")
			} else {
				output.WriteString("   |")
			}
		}
		output.WriteString("\n")

		// Wall row below, closed bottom door draws a wall
		output.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.cells[m.linear(x, y)].doors[1] {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
