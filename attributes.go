package lettuce

// Attributes is the set of display attributes applied to printed characters.
// It is a value type: a snapshot attached to a cell or event is copied, so
// later SGR changes never alter cells or events emitted earlier.
// The zero value is the default attribute set (default colors, no styles).
type Attributes struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
}

// DefaultAttributes returns the default attribute set.
func DefaultAttributes() Attributes {
	return Attributes{}
}

// IsDefault returns true if a equals the default attribute set.
func (a Attributes) IsDefault() bool {
	return a == Attributes{}
}
