// Package pty runs a child process behind a pseudo terminal, supplying the
// byte stream the lettuce core consumes and carrying input bytes back. It
// owns all process and file descriptor lifecycle; the core stays pure.
package pty

import (
	"os"
	"os/exec"
)

// Session is a running child process attached to a pseudo terminal. Reads
// return bytes the child wrote to its terminal, in order; writes feed the
// child's input.
type Session struct {
	cmd  *exec.Cmd
	ptmx *os.File
}

// Read pulls output bytes from the child as they become available. It
// returns an error once the child side is closed.
func (s *Session) Read(p []byte) (int, error) {
	return s.ptmx.Read(p)
}

// Write pushes input bytes to the child.
func (s *Session) Write(p []byte) (int, error) {
	return s.ptmx.Write(p)
}

// Close releases the terminal. The child receives a hangup if still running.
func (s *Session) Close() error {
	return s.ptmx.Close()
}

// Wait blocks until the child exits and returns its exit error, if any.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Pid returns the child's process id.
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}
