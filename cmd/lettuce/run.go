package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rommeld/lettuce"
	"github.com/rommeld/lettuce/pty"
)

var (
	flagRunCols  int
	flagRunRows  int
	flagRunDebug bool
)

var runCmd = &cobra.Command{
	Use:   "run [command ...]",
	Short: "Run a command behind a pseudo terminal and print the final screen",
	Long: `Run the given command (or the configured shell) behind a pseudo terminal
sized to the grid, apply its output to the grid, and print the resulting
screen once the command exits.

Standard input is forwarded to the child, so interactive commands keep
working; the screen is printed after the child exits.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunCols, "cols", 0, "Grid width (default: controlling terminal, else 80)")
	runCmd.Flags().IntVar(&flagRunRows, "rows", 0, "Grid height (default: controlling terminal, else 24)")
	runCmd.Flags().BoolVar(&flagRunDebug, "debug", false, "Print the debug overlay with the cursor marked")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	cols, rows := resolveSize(cfg)
	name, rest := resolveCommand(cfg, args)

	grid, err := lettuce.New(cols, rows)
	if err != nil {
		return err
	}
	in := lettuce.NewInterpreter()

	sess, err := pty.Start(uint16(cols), uint16(rows), name, rest...)
	if err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	defer sess.Close()
	log.Debug("child started", "command", name, "pid", sess.Pid(), "cols", cols, "rows", rows)

	// Forward stdin so interactive children keep working. Raw mode avoids
	// local echo and line buffering getting in the child's way.
	var restore func()
	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		if oldState, rawErr := term.MakeRaw(stdinFd); rawErr == nil {
			restore = func() { _ = term.Restore(stdinFd, oldState) }
		}
	}
	go func() {
		_, _ = io.Copy(sess, os.Stdin)
	}()

	buf := make([]byte, 4096)
	for {
		n, readErr := sess.Read(buf)
		if n > 0 {
			_, _ = in.Write(buf[:n])
			applyEvents(grid, in)
		}
		if readErr != nil {
			// EOF, or EIO once the child side hangs up.
			break
		}
	}

	if waitErr := sess.Wait(); waitErr != nil {
		log.Debug("child exited", "err", waitErr)
	}
	if restore != nil {
		restore()
	}

	if flagRunDebug {
		fmt.Print(grid.DebugRender())
	} else {
		fmt.Print(grid.RenderToString())
	}
	return nil
}

// applyEvents drains the interpreter into the grid, logging the out-of-band
// events the grid ignores.
func applyEvents(grid *lettuce.Terminal, in *lettuce.Interpreter) {
	for _, ev := range in.Events() {
		switch ev := ev.(type) {
		case lettuce.BellEvent:
			log.Debug("bell")
		case lettuce.OSCEvent:
			if len(ev.Params) >= 2 {
				cmd := string(ev.Params[0])
				if cmd == "0" || cmd == "2" {
					log.Debug("title changed", "title", string(ev.Params[1]))
				}
			}
		}
		grid.Apply(ev)
	}
}

// resolveSize picks grid dimensions: flags, then config, then the
// controlling terminal, then 80x24.
func resolveSize(cfg Config) (cols, rows int) {
	cols, rows = flagRunCols, flagRunRows
	if cols == 0 {
		cols = cfg.Cols
	}
	if rows == 0 {
		rows = cfg.Rows
	}
	if cols == 0 || rows == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if cols == 0 {
				cols = w
			}
			if rows == 0 {
				rows = h
			}
		}
	}
	if cols <= 0 {
		cols = lettuce.DefaultCols
	}
	if rows <= 0 {
		rows = lettuce.DefaultRows
	}
	return cols, rows
}

// resolveCommand picks what to run: arguments, then the configured shell,
// then $SHELL, then /bin/sh.
func resolveCommand(cfg Config, args []string) (string, []string) {
	if len(args) > 0 {
		return args[0], args[1:]
	}
	if cfg.Shell != "" {
		return cfg.Shell, nil
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, nil
	}
	return "/bin/sh", nil
}
