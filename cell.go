package lettuce

// Cell stores the character and attributes for one grid position.
// Cells are overwritten wholesale on print, never partially mutated.
type Cell struct {
	Char  rune
	Attrs Attributes
}

// NewCell creates a cell initialized with a space character and default attributes.
func NewCell() Cell {
	return Cell{Char: ' '}
}

// Reset returns the cell to its default state.
func (c *Cell) Reset() {
	*c = NewCell()
}
