package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rommeld/lettuce"
)

var (
	flagReplayCols  int
	flagReplayRows  int
	flagReplayDebug bool
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Feed recorded terminal output through the emulator and print the screen",
	Long: `Read raw bytes previously captured from a terminal session, decode them,
apply them to a grid, and print the resulting screen. Replays are
deterministic, which makes them useful for regression capture.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayCols, "cols", 0, "Grid width (default: config, else 80)")
	replayCmd.Flags().IntVar(&flagReplayRows, "rows", 0, "Grid height (default: config, else 24)")
	replayCmd.Flags().BoolVar(&flagReplayDebug, "debug", false, "Print the debug overlay with the cursor marked")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	cols := firstPositive(flagReplayCols, cfg.Cols, lettuce.DefaultCols)
	rows := firstPositive(flagReplayRows, cfg.Rows, lettuce.DefaultRows)

	grid, err := lettuce.New(cols, rows)
	if err != nil {
		return err
	}

	in := lettuce.NewInterpreter()
	_, _ = in.Write(data)
	events := in.Events()
	for _, ev := range events {
		grid.Apply(ev)
	}
	log.Debug("replay applied", "bytes", len(data), "events", len(events))

	if flagReplayDebug {
		fmt.Print(grid.DebugRender())
	} else {
		fmt.Print(grid.RenderToString())
	}
	return nil
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
