package lettuce

import (
	"fmt"
	"strings"
)

// RenderToString returns the grid's characters only, row-major, one
// newline-terminated line per row. Attributes are discarded; this is the
// lossy plain-text form of the screen.
func (t *Terminal) RenderToString() string {
	var sb strings.Builder
	sb.Grow(t.rows * (t.cols + 1))

	for row := 0; row < t.rows; row++ {
		base := row * t.cols
		for col := 0; col < t.cols; col++ {
			sb.WriteRune(t.cells[base+col].Char)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugRender returns the screen like RenderToString but with the cell under
// the cursor wrapped in bracket markers, followed by a trailing line with
// the numeric cursor coordinates. Intended for test assertions and
// diagnostic dumps.
func (t *Terminal) DebugRender() string {
	var sb strings.Builder

	for row := 0; row < t.rows; row++ {
		base := row * t.cols
		for col := 0; col < t.cols; col++ {
			ch := t.cells[base+col].Char
			if row == t.cursor.Row && col == t.cursor.Col {
				sb.WriteByte('[')
				sb.WriteRune(ch)
				sb.WriteByte(']')
			} else {
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "cursor: row=%d col=%d\n", t.cursor.Row, t.cursor.Col)
	return sb.String()
}
