package lettuce

import (
	"reflect"
	"testing"
)

// drain feeds the input in one write and returns every decoded event.
func drain(t *testing.T, input string) []Event {
	t.Helper()
	in := NewInterpreter()
	in.WriteString(input)
	return in.Events()
}

func TestPrintASCII(t *testing.T) {
	events := drain(t, "AB")

	want := []Event{
		PrintEvent{Char: 'A'},
		PrintEvent{Char: 'B'},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestPrintUnicode(t *testing.T) {
	events := drain(t, "héllo")

	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d: %v", len(events), events)
	}
	if ev := events[1].(PrintEvent); ev.Char != 'é' {
		t.Errorf("expected 'é', got %q", ev.Char)
	}
}

func TestSGRBoldRed(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[1;31mX")

	attrs := in.Attrs()
	if !attrs.Bold {
		t.Error("expected bold to be set")
	}
	if attrs.Fg != NamedColor(Red) {
		t.Errorf("expected red foreground, got %v", attrs.Fg)
	}

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %v", len(events), events)
	}
	ev, ok := events[0].(PrintEvent)
	if !ok {
		t.Fatalf("expected PrintEvent, got %T", events[0])
	}
	if ev.Char != 'X' || !ev.Attrs.Bold || ev.Attrs.Fg != NamedColor(Red) {
		t.Errorf("print event did not carry bold red: %+v", ev)
	}
}

func TestSGRSnapshotNotRetroactive(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[31mX\x1b[32mY")

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if fg := events[0].(PrintEvent).Attrs.Fg; fg != NamedColor(Red) {
		t.Errorf("expected first print to stay red, got %v", fg)
	}
	if fg := events[1].(PrintEvent).Attrs.Fg; fg != NamedColor(Green) {
		t.Errorf("expected second print green, got %v", fg)
	}
}

func TestSGRLaterCodeWins(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[31;32m")

	if fg := in.Attrs().Fg; fg != NamedColor(Green) {
		t.Errorf("expected green (later code wins), got %v", fg)
	}
}

func TestSGRResetIdempotent(t *testing.T) {
	for _, seq := range []string{"\x1b[0m", "\x1b[m"} {
		in := NewInterpreter()
		in.WriteString("\x1b[1;3;4;7;31;44m")
		in.WriteString(seq)

		if attrs := in.Attrs(); !attrs.IsDefault() {
			t.Errorf("%q: expected default attributes, got %+v", seq, attrs)
		}
	}
}

func TestSGRClearFlags(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[1;3;4;7m")
	in.WriteString("\x1b[22;23;24;27m")

	attrs := in.Attrs()
	if attrs.Bold || attrs.Italic || attrs.Underline || attrs.Inverse {
		t.Errorf("expected all flags cleared, got %+v", attrs)
	}
}

func TestSGRIndexedColor(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[38;5;200mx")

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if fg := events[0].(PrintEvent).Attrs.Fg; fg != IndexedColor(200) {
		t.Errorf("expected palette index 200, got %v", fg)
	}
}

func TestSGRColonForm(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[38:5:200m")

	if fg := in.Attrs().Fg; fg != IndexedColor(200) {
		t.Errorf("expected palette index 200, got %v", fg)
	}

	in.WriteString("\x1b[48:2:10:20:30m")
	if bg := in.Attrs().Bg; bg != RGBColor(10, 20, 30) {
		t.Errorf("expected rgb(10,20,30) background, got %v", bg)
	}
}

func TestSGRRGB(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[38;2;10;20;30m")

	if fg := in.Attrs().Fg; fg != RGBColor(10, 20, 30) {
		t.Errorf("expected rgb(10,20,30), got %v", fg)
	}
}

func TestSGRBackground(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[41m")
	if bg := in.Attrs().Bg; bg != NamedColor(Red) {
		t.Errorf("expected red background, got %v", bg)
	}

	in.WriteString("\x1b[49m")
	if bg := in.Attrs().Bg; !bg.IsDefault() {
		t.Errorf("expected default background, got %v", bg)
	}

	in.WriteString("\x1b[48;5;17m")
	if bg := in.Attrs().Bg; bg != IndexedColor(17) {
		t.Errorf("expected palette index 17, got %v", bg)
	}
}

func TestSGRBare38ResetsForeground(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[31m\x1b[38m")

	if fg := in.Attrs().Fg; !fg.IsDefault() {
		t.Errorf("expected default foreground, got %v", fg)
	}
}

func TestSGRBrightForeground(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[97m")

	if fg := in.Attrs().Fg; fg != BrightColor(White) {
		t.Errorf("expected bright white, got %v", fg)
	}
}

func TestSGRUnknownCodeIgnored(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[1m\x1b[99m")

	attrs := in.Attrs()
	if !attrs.Bold || !attrs.Fg.IsDefault() {
		t.Errorf("unknown code should not change attributes: %+v", attrs)
	}
}

func TestSetMode(t *testing.T) {
	events := drain(t, "\x1b[?25h")

	want := []Event{SetModeEvent{Modes: []int{25}}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestResetModeMultiple(t *testing.T) {
	events := drain(t, "\x1b[?1049;2004l")

	want := []Event{ResetModeEvent{Modes: []int{1049, 2004}}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestCursorPositionDefaults(t *testing.T) {
	events := drain(t, "\x1b[H\x1b[5;10H\x1b[;5f")

	want := []Event{
		CursorPositionEvent{Row: 1, Col: 1},
		CursorPositionEvent{Row: 5, Col: 10},
		CursorPositionEvent{Row: 1, Col: 5},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestRelativeMoves(t *testing.T) {
	events := drain(t, "\x1b[A\x1b[3B\x1b[0C\x1b[2D")

	want := []Event{
		CursorUpEvent{N: 1},
		CursorDownEvent{N: 3},
		CursorForwardEvent{N: 1},
		CursorBackEvent{N: 2},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestEraseEvents(t *testing.T) {
	events := drain(t, "\x1b[J\x1b[2J\x1b[1K")

	want := []Event{
		EraseDisplayEvent{Mode: 0},
		EraseDisplayEvent{Mode: 2},
		EraseLineEvent{Mode: 1},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestUnhandledCSI(t *testing.T) {
	events := drain(t, "\x1b[5;2S")

	want := []Event{UnhandledCSIEvent{Action: 'S', Params: []int{5, 2}}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestUnhandledEsc(t *testing.T) {
	events := drain(t, "\x1b7")

	want := []Event{UnhandledEscEvent{Byte: '7'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestC0Dispatch(t *testing.T) {
	events := drain(t, "\r\n\x08\t\x07")

	want := []Event{
		CarriageReturnEvent{},
		LinefeedEvent{},
		BackspaceEvent{},
		TabEvent{},
		BellEvent{},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestUnrecognizedC0Dropped(t *testing.T) {
	events := drain(t, "A\x00\x0b\x0cB")

	want := []Event{
		PrintEvent{Char: 'A'},
		PrintEvent{Char: 'B'},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestOrderPreservedAcrossChunks(t *testing.T) {
	whole := NewInterpreter()
	whole.WriteString("AB\x1b[31mCD")
	want := whole.Events()

	split := NewInterpreter()
	split.WriteString("AB")
	got := split.Events()
	split.WriteString("\x1b[31mCD")
	got = append(got, split.Events()...)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("split feed diverged: expected %v, got %v", want, got)
	}
}

func TestCSIStraddlesChunkBoundary(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("\x1b[1;3")
	if events := in.Events(); len(events) != 0 {
		t.Fatalf("expected no events mid-sequence, got %v", events)
	}
	in.WriteString("1mX")

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %v", len(events), events)
	}
	ev := events[0].(PrintEvent)
	if !ev.Attrs.Bold || ev.Attrs.Fg != NamedColor(Red) {
		t.Errorf("expected bold red after straddled sequence, got %+v", ev.Attrs)
	}
}

func TestUTF8StraddlesChunkBoundary(t *testing.T) {
	in := NewInterpreter()
	in.Write([]byte{0xC3})
	if events := in.Events(); len(events) != 0 {
		t.Fatalf("expected no events mid-rune, got %v", events)
	}
	in.Write([]byte{0xA9})

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if ev := events[0].(PrintEvent); ev.Char != 'é' {
		t.Errorf("expected 'é', got %q", ev.Char)
	}
}

func TestInvalidUTF8Skipped(t *testing.T) {
	events := drain(t, "\xff\x80A")

	want := []Event{PrintEvent{Char: 'A'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected invalid bytes skipped, got %v", events)
	}
}

func TestInterruptedRuneDropped(t *testing.T) {
	events := drain(t, "\xc3A")

	want := []Event{PrintEvent{Char: 'A'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected pending rune dropped, got %v", events)
	}
}

func TestOSCBelTerminated(t *testing.T) {
	events := drain(t, "\x1b]0;hi there\x07A")

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(events), events)
	}
	osc, ok := events[0].(OSCEvent)
	if !ok {
		t.Fatalf("expected OSCEvent, got %T", events[0])
	}
	if len(osc.Params) != 2 || string(osc.Params[0]) != "0" || string(osc.Params[1]) != "hi there" {
		t.Errorf("unexpected OSC params: %q", osc.Params)
	}
	if ev := events[1].(PrintEvent); ev.Char != 'A' {
		t.Errorf("expected decoding to continue after OSC, got %v", events[1])
	}
}

func TestOSCStTerminated(t *testing.T) {
	events := drain(t, "\x1b]2;title\x1b\\")

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %v", len(events), events)
	}
	osc := events[0].(OSCEvent)
	if len(osc.Params) != 2 || string(osc.Params[1]) != "title" {
		t.Errorf("unexpected OSC params: %q", osc.Params)
	}
}

func TestDCSConsumedSilently(t *testing.T) {
	events := drain(t, "\x1bPq some sixel payload\x1b\\A")

	want := []Event{PrintEvent{Char: 'A'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected DCS payload to produce no events, got %v", events)
	}
}

func TestTooManyParamsDropsSequence(t *testing.T) {
	seq := "\x1b["
	for i := 0; i < 40; i++ {
		seq += "1;"
	}
	seq += "1mA"

	in := NewInterpreter()
	in.WriteString(seq)

	if attrs := in.Attrs(); !attrs.IsDefault() {
		t.Errorf("overlong sequence should be dropped, got %+v", attrs)
	}
	events := in.Events()
	want := []Event{PrintEvent{Char: 'A'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected decoding to continue after dropped sequence, got %v", events)
	}
}

func TestIntermediateByteDropsSequence(t *testing.T) {
	events := drain(t, "\x1b[1 qA")

	want := []Event{PrintEvent{Char: 'A'}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected sequence with intermediate dropped, got %v", events)
	}
}

func TestEventsDrains(t *testing.T) {
	in := NewInterpreter()
	in.WriteString("A")

	if events := in.Events(); len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events := in.Events(); len(events) != 0 {
		t.Errorf("expected drained log to be empty, got %v", events)
	}
}
