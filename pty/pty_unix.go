//go:build !windows

package pty

import (
	"os/exec"

	"github.com/creack/pty"
)

// Start launches the command behind a new pseudo terminal sized to
// cols x rows. The child becomes a session leader with the terminal as its
// controlling tty. The session's dimensions should match the grid the
// output is applied to.
func Start(cols, rows uint16, name string, args ...string) (*Session, error) {
	cmd := exec.Command(name, args...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	if err != nil {
		return nil, err
	}

	return &Session{cmd: cmd, ptmx: ptmx}, nil
}

// Resize changes the terminal dimensions reported to the child and sends it
// a window-change signal.
func (s *Session) Resize(cols, rows uint16) error {
	return pty.Setsize(s.ptmx, &pty.Winsize{Rows: rows, Cols: cols})
}
