package lettuce

import (
	"fmt"
	"strings"
)

// Snapshot represents a complete screen capture with resolved styling.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the grid dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds the cursor position (0-based).
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotLine is a single line: its plain text plus styled segments.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments"`
}

// SnapshotSegment is a run of consecutive cells sharing one attribute set.
// Colors are resolved against the default palette as "#rrggbb"; an empty
// string means the terminal default.
type SnapshotSegment struct {
	Text      string `json:"text"`
	Fg        string `json:"fg,omitempty"`
	Bg        string `json:"bg,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Inverse   bool   `json:"inverse,omitempty"`
}

// Snapshot captures the current screen contents with styling, suitable for
// JSON serialization and regression comparison.
func (t *Terminal) Snapshot() Snapshot {
	snap := Snapshot{
		Size:   SnapshotSize{Rows: t.rows, Cols: t.cols},
		Cursor: SnapshotCursor{Row: t.cursor.Row, Col: t.cursor.Col},
		Lines:  make([]SnapshotLine, 0, t.rows),
	}

	for row := 0; row < t.rows; row++ {
		base := row * t.cols
		var text strings.Builder
		var segments []SnapshotSegment

		segAttrs := t.cells[base].Attrs
		var segText strings.Builder

		flush := func() {
			if segText.Len() == 0 {
				return
			}
			segments = append(segments, SnapshotSegment{
				Text:      segText.String(),
				Fg:        colorHex(segAttrs.Fg, true),
				Bg:        colorHex(segAttrs.Bg, false),
				Bold:      segAttrs.Bold,
				Italic:    segAttrs.Italic,
				Underline: segAttrs.Underline,
				Inverse:   segAttrs.Inverse,
			})
			segText.Reset()
		}

		for col := 0; col < t.cols; col++ {
			cell := t.cells[base+col]
			if cell.Attrs != segAttrs {
				flush()
				segAttrs = cell.Attrs
			}
			text.WriteRune(cell.Char)
			segText.WriteRune(cell.Char)
		}
		flush()

		snap.Lines = append(snap.Lines, SnapshotLine{
			Text:     text.String(),
			Segments: segments,
		})
	}

	return snap
}

// colorHex resolves a color to "#rrggbb", or "" for the default variant.
func colorHex(c Color, fg bool) string {
	if c.IsDefault() {
		return ""
	}
	rgba := c.RGBA(fg)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
