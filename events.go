package lettuce

// Event is one decoded unit of terminal input, produced by [Interpreter] in
// the order the corresponding bytes appeared in the stream. The set of
// implementations is closed: consumers can switch over the concrete types
// exhaustively.
type Event interface {
	isEvent()
}

// PrintEvent is a printable character together with the attribute snapshot
// that was current when it was decoded.
type PrintEvent struct {
	Char  rune
	Attrs Attributes
}

// LinefeedEvent is the LF control byte (0x0A).
type LinefeedEvent struct{}

// CarriageReturnEvent is the CR control byte (0x0D).
type CarriageReturnEvent struct{}

// BackspaceEvent is the BS control byte (0x08).
type BackspaceEvent struct{}

// TabEvent is the HT control byte (0x09).
type TabEvent struct{}

// BellEvent is the BEL control byte (0x07).
type BellEvent struct{}

// CursorPositionEvent is an absolute cursor position (CSI H / CSI f).
// Row and Col are the 1-based protocol values; absent parameters default to 1.
type CursorPositionEvent struct {
	Row int
	Col int
}

// CursorUpEvent moves the cursor up N rows (CSI A).
type CursorUpEvent struct {
	N int
}

// CursorDownEvent moves the cursor down N rows (CSI B).
type CursorDownEvent struct {
	N int
}

// CursorForwardEvent moves the cursor right N columns (CSI C).
type CursorForwardEvent struct {
	N int
}

// CursorBackEvent moves the cursor left N columns (CSI D).
type CursorBackEvent struct {
	N int
}

// EraseDisplayEvent clears part of the screen (CSI J).
// Mode 0 erases from the cursor to the end, 1 from the start to the cursor,
// 2 the whole screen.
type EraseDisplayEvent struct {
	Mode int
}

// EraseLineEvent clears part of the cursor row (CSI K), with the same mode
// split as [EraseDisplayEvent] applied within the line.
type EraseLineEvent struct {
	Mode int
}

// SetModeEvent enables terminal modes (CSI h, including private "?" modes).
// Modes holds every numeric value from every parameter group, flattened in order.
type SetModeEvent struct {
	Modes []int
}

// ResetModeEvent disables terminal modes (CSI l), mirroring [SetModeEvent].
type ResetModeEvent struct {
	Modes []int
}

// UnhandledCSIEvent is any CSI sequence whose final byte has no dedicated
// event. It carries the final action byte and the flattened parameter list.
type UnhandledCSIEvent struct {
	Action byte
	Params []int
}

// UnhandledEscEvent is a single-byte escape sequence (ESC followed by one
// byte other than '[', ']' or 'P'). None are interpreted by this core.
type UnhandledEscEvent struct {
	Byte byte
}

// OSCEvent is an Operating System Command. Params holds the raw byte-string
// parameters (the payload split on ';'), unparsed; consumers decide how to
// interpret them.
type OSCEvent struct {
	Params [][]byte
}

func (PrintEvent) isEvent()          {}
func (LinefeedEvent) isEvent()       {}
func (CarriageReturnEvent) isEvent() {}
func (BackspaceEvent) isEvent()      {}
func (TabEvent) isEvent()            {}
func (BellEvent) isEvent()           {}
func (CursorPositionEvent) isEvent() {}
func (CursorUpEvent) isEvent()       {}
func (CursorDownEvent) isEvent()     {}
func (CursorForwardEvent) isEvent()  {}
func (CursorBackEvent) isEvent()     {}
func (EraseDisplayEvent) isEvent()   {}
func (EraseLineEvent) isEvent()      {}
func (SetModeEvent) isEvent()        {}
func (ResetModeEvent) isEvent()      {}
func (UnhandledCSIEvent) isEvent()   {}
func (UnhandledEscEvent) isEvent()   {}
func (OSCEvent) isEvent()            {}
