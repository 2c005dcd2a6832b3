package lettuce

import "image/color"

// Named color indices for the 8 standard colors (and their bright
// counterparts via BrightColor).
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorNamed
	colorBright
	colorIndexed
	colorRGB
)

// Color is one of: the terminal default, a standard named color, its bright
// counterpart, an index into the 256-color palette, or a 24-bit RGB triple.
// Color is a comparable value type; two colors are equal exactly when they
// are the same variant with the same payload. The zero value is the
// "use default" color, which is distinct from black.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// DefaultColor returns the "use terminal default" color.
func DefaultColor() Color {
	return Color{}
}

// NamedColor returns one of the 8 standard colors (Black through White).
// Out-of-range names are reduced modulo 8.
func NamedColor(name int) Color {
	return Color{kind: colorNamed, index: uint8(name & 7)}
}

// BrightColor returns the bright counterpart of a standard color.
func BrightColor(name int) Color {
	return Color{kind: colorBright, index: uint8(name & 7)}
}

// IndexedColor returns an entry of the 256-color palette.
func IndexedColor(index uint8) Color {
	return Color{kind: colorIndexed, index: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsDefault returns true for the "use default" variant.
func (c Color) IsDefault() bool {
	return c.kind == colorDefault
}

// RGBA resolves the color against the default palette. The default variant
// resolves to the default foreground or background depending on fg.
func (c Color) RGBA(fg bool) color.RGBA {
	switch c.kind {
	case colorNamed:
		return DefaultPalette[c.index]
	case colorBright:
		return DefaultPalette[c.index+8]
	case colorIndexed:
		return DefaultPalette[c.index]
	case colorRGB:
		return color.RGBA{R: c.r, G: c.g, B: c.b, A: 255}
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 color cube (16-231) and grayscale ramp (232-255) are generated in init.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the color the default foreground resolves to (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the color the default background resolves to (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}
