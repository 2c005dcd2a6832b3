package lettuce

// Cursor tracks the current write position (0-based coordinates).
// Every Terminal operation keeps it inside the grid bounds.
type Cursor struct {
	Row int
	Col int
}

// NewCursor creates a cursor at (0, 0).
func NewCursor() Cursor {
	return Cursor{}
}
