package lettuce

import (
	"bytes"
	"unicode/utf8"
)

// maxParams limits the number of CSI parameter groups. Sequences exceeding
// it are dropped whole.
const maxParams = 32

// maxParamValue caps a single numeric parameter. Larger values drop the
// sequence rather than risking a misread dispatch.
const maxParamValue = 65535

type parserState int

const (
	stateGround    parserState = iota
	stateEscape                // after ESC
	stateCSI                   // after ESC [
	stateOSC                   // after ESC ]
	stateOSCEscape             // ESC inside an OSC payload, possible ST
	stateDCS                   // after ESC P, payload consumed unseen
	stateDCSEscape             // ESC inside a DCS payload, possible ST
)

// Interpreter decodes a terminal byte stream into [Event] values.
//
// It is an incremental state machine: bytes may be fed in arbitrary chunks
// and escape sequences or multi-byte characters straddling a chunk boundary
// are held pending until the remaining bytes arrive. The only side state is
// the current attribute set, mutated by SGR sequences and snapshotted by
// value into every PrintEvent.
//
// Invalid UTF-8 input is skipped: the offending bytes produce no PrintEvent
// and decoding resumes at the next lead byte. Malformed escape sequences are
// dropped without interrupting decoding of subsequent bytes. Write never
// fails; feeding arbitrary bytes is safe by construction.
//
// An Interpreter is not safe for concurrent use; callers that share one
// across goroutines must serialize access.
type Interpreter struct {
	state  parserState
	attrs  Attributes
	events []Event

	// CSI accumulator
	params  [][]int
	group   []int
	num     int
	hasNum  bool
	private byte
	ignore  bool

	// OSC accumulator
	osc []byte

	// Pending multi-byte character
	utf8Buf  []byte
	utf8Need int
}

// NewInterpreter creates an interpreter in the ground state with default
// attributes.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Write advances the interpreter by the given bytes, appending decoded
// events to the pending log. It implements io.Writer and never returns an
// error.
func (in *Interpreter) Write(p []byte) (int, error) {
	for _, b := range p {
		in.advance(b)
	}
	return len(p), nil
}

// WriteString is a convenience wrapper around Write.
func (in *Interpreter) WriteString(s string) (int, error) {
	return in.Write([]byte(s))
}

// Events returns the events decoded since the last call and clears the
// pending log, so the stream can be drained incrementally while bytes keep
// arriving.
func (in *Interpreter) Events() []Event {
	evs := in.events
	in.events = nil
	return evs
}

// Attrs returns the current attribute set, applied to the next printed
// character.
func (in *Interpreter) Attrs() Attributes {
	return in.attrs
}

func (in *Interpreter) emit(ev Event) {
	in.events = append(in.events, ev)
}

func (in *Interpreter) advance(b byte) {
	switch in.state {
	case stateGround:
		in.ground(b)
	case stateEscape:
		in.escape(b)
	case stateCSI:
		in.csi(b)
	case stateOSC:
		in.oscByte(b)
	case stateOSCEscape:
		switch b {
		case '\\':
			in.dispatchOSC()
			in.state = stateGround
		case 0x1B:
			in.dispatchOSC()
			in.state = stateEscape
		default:
			// Not an ST: the ESC terminated the payload and starts a
			// new sequence of its own.
			in.dispatchOSC()
			in.state = stateEscape
			in.escape(b)
		}
	case stateDCS:
		if b == 0x1B {
			in.state = stateDCSEscape
		}
	case stateDCSEscape:
		switch b {
		case '\\':
			in.state = stateGround
		case 0x1B:
			// still waiting for the terminator
		default:
			in.state = stateDCS
		}
	}
}

func (in *Interpreter) ground(b byte) {
	if in.utf8Need > 0 {
		if b&0xC0 == 0x80 {
			in.utf8Buf = append(in.utf8Buf, b)
			in.utf8Need--
			if in.utf8Need == 0 {
				in.finishRune()
			}
			return
		}
		// Interrupted rune: drop the pending bytes and resync on b.
		in.utf8Buf = in.utf8Buf[:0]
		in.utf8Need = 0
	}

	switch {
	case b == 0x1B:
		in.state = stateEscape
	case b < 0x20:
		in.execute(b)
	case b < 0x7F:
		in.emit(PrintEvent{Char: rune(b), Attrs: in.attrs})
	case b == 0x7F:
		// DEL, dropped
	case b&0xE0 == 0xC0:
		in.startRune(b, 1)
	case b&0xF0 == 0xE0:
		in.startRune(b, 2)
	case b&0xF8 == 0xF0:
		in.startRune(b, 3)
	default:
		// Stray continuation or invalid lead byte, dropped.
	}
}

func (in *Interpreter) startRune(b byte, continuations int) {
	in.utf8Buf = append(in.utf8Buf[:0], b)
	in.utf8Need = continuations
}

func (in *Interpreter) finishRune() {
	r, size := utf8.DecodeRune(in.utf8Buf)
	if r != utf8.RuneError && size == len(in.utf8Buf) {
		in.emit(PrintEvent{Char: r, Attrs: in.attrs})
	}
	in.utf8Buf = in.utf8Buf[:0]
}

// execute dispatches a C0 control byte seen outside any escape sequence.
// Only five bytes are recognized; the rest are dropped deliberately.
func (in *Interpreter) execute(b byte) {
	switch b {
	case 0x0A:
		in.emit(LinefeedEvent{})
	case 0x0D:
		in.emit(CarriageReturnEvent{})
	case 0x08:
		in.emit(BackspaceEvent{})
	case 0x09:
		in.emit(TabEvent{})
	case 0x07:
		in.emit(BellEvent{})
	}
}

func (in *Interpreter) escape(b byte) {
	switch b {
	case '[':
		in.state = stateCSI
		in.params = nil
		in.group = nil
		in.num, in.hasNum = 0, false
		in.private = 0
		in.ignore = false
	case ']':
		in.state = stateOSC
		in.osc = nil
	case 'P':
		in.state = stateDCS
	default:
		in.emit(UnhandledEscEvent{Byte: b})
		in.state = stateGround
	}
}

func (in *Interpreter) csi(b byte) {
	switch {
	case b >= '0' && b <= '9':
		in.num = in.num*10 + int(b-'0')
		if in.num > maxParamValue {
			in.num = maxParamValue
			in.ignore = true
		}
		in.hasNum = true
	case b == ':':
		// Sub-value separator within the current group.
		in.group = append(in.group, in.num)
		in.num, in.hasNum = 0, false
	case b == ';':
		in.endGroup()
	case b >= 0x3C && b <= 0x3F:
		// Private markers ('<', '=', '>', '?') are valid only before any
		// parameter bytes.
		if in.hasNum || len(in.group) > 0 || len(in.params) > 0 {
			in.ignore = true
		} else {
			in.private = b
		}
	case b >= 0x20 && b <= 0x2F:
		// Intermediate bytes select sequences this core does not model.
		in.ignore = true
	case b >= 0x40 && b <= 0x7E:
		in.endGroup()
		if !in.ignore {
			in.dispatchCSI(b)
		}
		in.state = stateGround
	case b == 0x1B:
		// Abandoned sequence; the ESC starts over.
		in.state = stateEscape
	default:
		// C0 or high bytes inside a sequence, dropped.
	}
}

func (in *Interpreter) endGroup() {
	if in.hasNum || len(in.group) > 0 {
		in.group = append(in.group, in.num)
	}
	if len(in.params) >= maxParams {
		in.ignore = true
	} else {
		in.params = append(in.params, in.group)
	}
	in.group = nil
	in.num, in.hasNum = 0, false
}

func (in *Interpreter) dispatchCSI(action byte) {
	params := in.params
	switch action {
	case 'm':
		in.handleSGR(params)
	case 'H', 'f':
		in.emit(CursorPositionEvent{Row: paramOr(params, 0, 1), Col: paramOr(params, 1, 1)})
	case 'A':
		in.emit(CursorUpEvent{N: countOr1(params, 0)})
	case 'B':
		in.emit(CursorDownEvent{N: countOr1(params, 0)})
	case 'C':
		in.emit(CursorForwardEvent{N: countOr1(params, 0)})
	case 'D':
		in.emit(CursorBackEvent{N: countOr1(params, 0)})
	case 'J':
		in.emit(EraseDisplayEvent{Mode: paramOr(params, 0, 0)})
	case 'K':
		in.emit(EraseLineEvent{Mode: paramOr(params, 0, 0)})
	case 'h':
		in.emit(SetModeEvent{Modes: flatten(params)})
	case 'l':
		in.emit(ResetModeEvent{Modes: flatten(params)})
	default:
		in.emit(UnhandledCSIEvent{Action: action, Params: flatten(params)})
	}
}

// handleSGR applies a Select Graphic Rendition sequence to the current
// attributes, one parameter group at a time, left to right. It emits no
// event. Unknown codes are ignored.
func (in *Interpreter) handleSGR(params [][]int) {
	for i := 0; i < len(params); i++ {
		g := params[i]
		code := 0
		if len(g) > 0 {
			code = g[0]
		}
		switch {
		case code == 0:
			in.attrs = DefaultAttributes()
		case code == 1:
			in.attrs.Bold = true
		case code == 3:
			in.attrs.Italic = true
		case code == 4:
			in.attrs.Underline = true
		case code == 7:
			in.attrs.Inverse = true
		case code == 22:
			in.attrs.Bold = false
		case code == 23:
			in.attrs.Italic = false
		case code == 24:
			in.attrs.Underline = false
		case code == 27:
			in.attrs.Inverse = false
		case code >= 30 && code <= 37:
			in.attrs.Fg = NamedColor(code - 30)
		case code == 38:
			c, skip, ok := extendedColor(params, i, g)
			if ok {
				in.attrs.Fg = c
			}
			i += skip
		case code >= 40 && code <= 47:
			in.attrs.Bg = NamedColor(code - 40)
		case code == 48:
			c, skip, ok := extendedColor(params, i, g)
			if ok {
				in.attrs.Bg = c
			}
			i += skip
		case code == 49:
			in.attrs.Bg = DefaultColor()
		case code >= 90 && code <= 97:
			in.attrs.Fg = BrightColor(code - 90)
		}
	}
}

// extendedColor parses the 38/48 extended-color forms: "38;5;N", "38;2;R;G;B"
// (consuming following groups) or the colon variants "38:5:N", "38:2:R:G:B"
// (self-contained in one group). A bare "38" selects the default color.
// It reports the parsed color, how many following groups were consumed, and
// whether a color was produced; malformed forms consume what they can and
// produce nothing.
func extendedColor(params [][]int, i int, g []int) (Color, int, bool) {
	if len(g) > 1 {
		switch g[1] {
		case 5:
			if len(g) >= 3 && g[2] <= 255 {
				return IndexedColor(uint8(g[2])), 0, true
			}
		case 2:
			if len(g) >= 5 {
				return RGBColor(clamp8(g[2]), clamp8(g[3]), clamp8(g[4])), 0, true
			}
		}
		return Color{}, 0, false
	}

	if i+1 >= len(params) {
		// "38" alone: reset to the default color.
		return DefaultColor(), 0, true
	}

	switch paramOr(params, i+1, -1) {
	case 5:
		if i+2 < len(params) {
			if n := paramOr(params, i+2, -1); n >= 0 && n <= 255 {
				return IndexedColor(uint8(n)), 2, true
			}
			return Color{}, 2, false
		}
		return Color{}, 1, false
	case 2:
		if i+4 < len(params) {
			r := paramOr(params, i+2, 0)
			gr := paramOr(params, i+3, 0)
			b := paramOr(params, i+4, 0)
			return RGBColor(clamp8(r), clamp8(gr), clamp8(b)), 4, true
		}
		return Color{}, len(params) - i - 1, false
	}
	return Color{}, 0, false
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// paramOr returns the first value of group i, or def when the group is
// absent or empty.
func paramOr(params [][]int, i, def int) int {
	if i >= len(params) || len(params[i]) == 0 {
		return def
	}
	return params[i][0]
}

// countOr1 reads a repeat count: absent, empty, and zero all mean one.
func countOr1(params [][]int, i int) int {
	if v := paramOr(params, i, 1); v > 0 {
		return v
	}
	return 1
}

// flatten concatenates every value of every group in order.
func flatten(params [][]int) []int {
	var out []int
	for _, g := range params {
		out = append(out, g...)
	}
	return out
}

func (in *Interpreter) oscByte(b byte) {
	switch {
	case b == 0x07:
		in.dispatchOSC()
		in.state = stateGround
	case b == 0x1B:
		in.state = stateOSCEscape
	case b < 0x20:
		// Other C0 bytes inside an OSC payload are dropped.
	default:
		in.osc = append(in.osc, b)
	}
}

func (in *Interpreter) dispatchOSC() {
	in.emit(OSCEvent{Params: bytes.Split(in.osc, []byte{';'})})
	in.osc = nil
}
