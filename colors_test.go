package lettuce

import (
	"image/color"
	"testing"
)

func TestDefaultColorDistinctFromBlack(t *testing.T) {
	if DefaultColor() == NamedColor(Black) {
		t.Error("default color must not equal black")
	}
	if !DefaultColor().IsDefault() {
		t.Error("DefaultColor must report IsDefault")
	}
	if NamedColor(Black).IsDefault() {
		t.Error("black must not report IsDefault")
	}
}

func TestColorEquality(t *testing.T) {
	if NamedColor(Red) != NamedColor(Red) {
		t.Error("equal named colors must compare equal")
	}
	if NamedColor(Red) == BrightColor(Red) {
		t.Error("named and bright variants must differ")
	}
	if IndexedColor(1) == NamedColor(Red) {
		t.Error("indexed and named variants must differ")
	}
	if RGBColor(1, 2, 3) != RGBColor(1, 2, 3) {
		t.Error("equal rgb colors must compare equal")
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		fg   bool
		want color.RGBA
	}{
		{"named red", NamedColor(Red), true, DefaultPalette[1]},
		{"bright red", BrightColor(Red), true, DefaultPalette[9]},
		{"indexed 200", IndexedColor(200), true, DefaultPalette[200]},
		{"rgb passthrough", RGBColor(10, 20, 30), true, color.RGBA{10, 20, 30, 255}},
		{"default fg", DefaultColor(), true, DefaultForeground},
		{"default bg", DefaultColor(), false, DefaultBackground},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(tt.fg); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestPaletteGenerated(t *testing.T) {
	// First cube entry, pure blue corner, and both ends of the gray ramp.
	if DefaultPalette[16] != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("palette[16]: got %v", DefaultPalette[16])
	}
	if DefaultPalette[21] != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("palette[21]: got %v", DefaultPalette[21])
	}
	if DefaultPalette[232] != (color.RGBA{8, 8, 8, 255}) {
		t.Errorf("palette[232]: got %v", DefaultPalette[232])
	}
	if DefaultPalette[255] != (color.RGBA{238, 238, 238, 255}) {
		t.Errorf("palette[255]: got %v", DefaultPalette[255])
	}
}

func TestNamedColorWraps(t *testing.T) {
	if NamedColor(9) != NamedColor(Red) {
		t.Errorf("expected out-of-range name reduced modulo 8")
	}
}

func TestAttributesIsDefault(t *testing.T) {
	if !DefaultAttributes().IsDefault() {
		t.Error("DefaultAttributes must report IsDefault")
	}
	if (Attributes{Bold: true}).IsDefault() {
		t.Error("bold attributes must not report IsDefault")
	}
	if (Attributes{Fg: NamedColor(Red)}).IsDefault() {
		t.Error("colored attributes must not report IsDefault")
	}
}
