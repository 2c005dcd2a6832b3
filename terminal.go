package lettuce

import "fmt"

const (
	// DefaultRows is the conventional terminal height.
	DefaultRows = 24
	// DefaultCols is the conventional terminal width.
	DefaultCols = 80
)

// tabStride is the fixed tab stop interval. Configurable tab stops are out
// of scope for this core.
const tabStride = 8

// Terminal is a fixed-size character grid with a single cursor. It applies
// print and cursor-motion operations while keeping the cursor inside the
// grid bounds after every operation, no matter how hostile the requested
// coordinates are.
//
// The grid never scrolls: printing past the bottom-right corner pins the
// cursor on the last row and overwrites it in place. A scroll-on-overflow
// policy is a deliberate extension point, not implemented here.
//
// A Terminal is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Terminal struct {
	rows   int
	cols   int
	cells  []Cell // row-major, rows*cols
	cursor Cursor
}

// New creates a terminal grid of the given dimensions with all cells in
// their default state and the cursor at (0, 0). Dimensions below 1x1 are
// rejected: a degenerate grid cannot hold a cursor.
func New(cols, rows int) (*Terminal, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("lettuce: grid must be at least 1x1, got %dx%d", cols, rows)
	}

	t := &Terminal{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range t.cells {
		t.cells[i] = NewCell()
	}
	return t, nil
}

// Rows returns the grid height in character rows.
func (t *Terminal) Rows() int {
	return t.rows
}

// Cols returns the grid width in character columns.
func (t *Terminal) Cols() int {
	return t.cols
}

// Cell returns a copy of the cell at (row, col) and whether the coordinates
// are inside the grid.
func (t *Terminal) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return Cell{}, false
	}
	return t.cells[row*t.cols+col], true
}

// CursorPos returns the current cursor position (0-based).
func (t *Terminal) CursorPos() (row, col int) {
	return t.cursor.Row, t.cursor.Col
}

// Print writes a cell at the cursor, replacing whatever was there, then
// advances one column. Reaching the right edge wraps to column 0 of the
// next row; falling off the bottom pins the cursor on the last row.
func (t *Terminal) Print(ch rune, attrs Attributes) {
	t.cells[t.cursor.Row*t.cols+t.cursor.Col] = Cell{Char: ch, Attrs: attrs}

	t.cursor.Col++
	if t.cursor.Col == t.cols {
		t.cursor.Col = 0
		t.cursor.Row++
		if t.cursor.Row == t.rows {
			t.cursor.Row = t.rows - 1
		}
	}
}

// SetCursorPosition moves the cursor to the given 1-based coordinates, as
// carried by the protocol. A value of 0 is treated as 1 (protocol quirk, not
// an error) and each axis clamps independently into the grid.
func (t *Terminal) SetCursorPosition(row, col int) {
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	t.cursor.Row = clamp(row-1, 0, t.rows-1)
	t.cursor.Col = clamp(col-1, 0, t.cols-1)
}

// CursorUp moves the cursor up n rows, stopping at the top.
func (t *Terminal) CursorUp(n int) {
	t.cursor.Row = clamp(t.cursor.Row-n, 0, t.rows-1)
}

// CursorDown moves the cursor down n rows, stopping at the bottom.
func (t *Terminal) CursorDown(n int) {
	t.cursor.Row = clamp(t.cursor.Row+n, 0, t.rows-1)
}

// CursorForward moves the cursor right n columns, stopping at the last column.
func (t *Terminal) CursorForward(n int) {
	t.cursor.Col = clamp(t.cursor.Col+n, 0, t.cols-1)
}

// CursorBack moves the cursor left n columns, stopping at column 0.
func (t *Terminal) CursorBack(n int) {
	t.cursor.Col = clamp(t.cursor.Col-n, 0, t.cols-1)
}

// Linefeed moves the cursor down one row, pinned at the bottom.
func (t *Terminal) Linefeed() {
	t.CursorDown(1)
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (t *Terminal) CarriageReturn() {
	t.cursor.Col = 0
}

// Backspace moves the cursor one column left, stopping at column 0.
func (t *Terminal) Backspace() {
	t.CursorBack(1)
}

// Tab advances the cursor to the next tab stop (every 8 columns), stopping
// at the last column.
func (t *Terminal) Tab() {
	next := (t.cursor.Col/tabStride + 1) * tabStride
	t.cursor.Col = clamp(next, 0, t.cols-1)
}

// EraseDisplay clears part of the screen without moving the cursor.
// Mode 0 erases from the cursor to the end of the screen, 1 from the start
// of the screen through the cursor, 2 the whole screen. Other modes do
// nothing.
func (t *Terminal) EraseDisplay(mode int) {
	switch mode {
	case 0:
		t.clearRange(t.cursor.Row, t.cursor.Col, t.cols)
		for row := t.cursor.Row + 1; row < t.rows; row++ {
			t.clearRange(row, 0, t.cols)
		}
	case 1:
		for row := 0; row < t.cursor.Row; row++ {
			t.clearRange(row, 0, t.cols)
		}
		t.clearRange(t.cursor.Row, 0, t.cursor.Col+1)
	case 2:
		for row := 0; row < t.rows; row++ {
			t.clearRange(row, 0, t.cols)
		}
	}
}

// EraseLine clears part of the cursor row without moving the cursor, with
// the same mode split as EraseDisplay applied within the line.
func (t *Terminal) EraseLine(mode int) {
	switch mode {
	case 0:
		t.clearRange(t.cursor.Row, t.cursor.Col, t.cols)
	case 1:
		t.clearRange(t.cursor.Row, 0, t.cursor.Col+1)
	case 2:
		t.clearRange(t.cursor.Row, 0, t.cols)
	}
}

// clearRange resets cells in row from startCol (inclusive) to endCol (exclusive).
func (t *Terminal) clearRange(row, startCol, endCol int) {
	if startCol < 0 {
		startCol = 0
	}
	if endCol > t.cols {
		endCol = t.cols
	}
	base := row * t.cols
	for col := startCol; col < endCol; col++ {
		t.cells[base+col].Reset()
	}
}

// Apply projects one decoded event onto the grid. Mode changes, bells, OSC
// payloads, and unhandled sequences have no grid effect and are ignored;
// consumers interested in them read the event stream directly.
func (t *Terminal) Apply(ev Event) {
	switch ev := ev.(type) {
	case PrintEvent:
		t.Print(ev.Char, ev.Attrs)
	case LinefeedEvent:
		t.Linefeed()
	case CarriageReturnEvent:
		t.CarriageReturn()
	case BackspaceEvent:
		t.Backspace()
	case TabEvent:
		t.Tab()
	case CursorPositionEvent:
		t.SetCursorPosition(ev.Row, ev.Col)
	case CursorUpEvent:
		t.CursorUp(ev.N)
	case CursorDownEvent:
		t.CursorDown(ev.N)
	case CursorForwardEvent:
		t.CursorForward(ev.N)
	case CursorBackEvent:
		t.CursorBack(ev.N)
	case EraseDisplayEvent:
		t.EraseDisplay(ev.Mode)
	case EraseLineEvent:
		t.EraseLine(ev.Mode)
	}
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
