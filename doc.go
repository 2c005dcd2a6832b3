// Package lettuce is the core of a terminal emulator: it decodes a raw byte
// stream (literal text intermixed with ECMA-48/ANSI/xterm control sequences)
// into a structured event stream, and maintains an in-memory character grid
// as those events are applied.
//
// The package has two halves:
//
//   - [Interpreter]: an incremental byte-to-event decoder. Feed it byte
//     chunks in any split and drain [Event] values as they are produced.
//     It owns no grid; its only side state is the current attribute set
//     that SGR sequences mutate.
//   - [Terminal]: a fixed-size cell grid with one cursor, mutated by events
//     (or equivalent direct calls) while the cursor stays in bounds after
//     every operation.
//
// # Quick start
//
// Decode bytes produced by a child process and project them onto a grid:
//
//	term, _ := lettuce.New(80, 24)
//	in := lettuce.NewInterpreter()
//
//	in.WriteString("\x1b[1;31mhello\x1b[0m world")
//	for _, ev := range in.Events() {
//	    term.Apply(ev)
//	}
//	fmt.Print(term.RenderToString())
//
// Neither type performs I/O; acquiring bytes from a pseudo terminal and
// writing input back belongs to the pty subpackage (or any io.Reader the
// caller prefers). Neither type is safe for concurrent use: a given
// Interpreter/Terminal pair must be driven from one goroutine at a time.
//
// The decoder is crash-free on arbitrary input: malformed sequences are
// dropped, invalid UTF-8 is skipped, and unrecognized CSI/ESC sequences
// surface as events so callers can extend behavior without touching the
// state machine.
package lettuce
