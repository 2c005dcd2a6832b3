// lettuce captures what a command draws to its terminal. It runs the
// command behind a pseudo terminal, decodes the output stream, applies it to
// an in-memory grid, and prints the final screen.
//
// Usage:
//
//	lettuce run [command ...]   - Run a command and print its final screen
//	lettuce replay FILE         - Feed recorded output bytes and print the screen
//
// Global flags:
//
//	--config <path>  - Config YAML with default cols/rows/shell
//	--verbose        - Enable debug logging to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lettuce",
	Short: "Headless terminal emulation for capturing command output",
	Long: `lettuce runs commands behind a pseudo terminal and captures the screen
they would have drawn, after all escape sequences are applied.

Examples:
  lettuce run ls --color=force
  lettuce run --cols 120 --rows 40 htop
  lettuce replay session.raw --debug`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
}
