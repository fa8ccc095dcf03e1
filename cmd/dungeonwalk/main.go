// dungeonwalk is a terminal roguelike skeleton: walk the player around a fixed dungeon.
//
// Usage:
//
//	dungeonwalk              - Start the game
//	dungeonwalk layouts      - List the built-in map layouts
//
// Controls: arrow keys or h/j/k/l to move, Alt+Enter to toggle fullscreen, Esc to quit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLayout    string
	flagLogFile   string
	flagLogLevel  string
	flagNoVi      bool
	flagTelemetry bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeonwalk",
	Short: "Walk a tiny dungeon in your terminal",
	Long: `DungeonWalk draws a player and a tile map in the terminal and lets you
walk around it.

Controls:
  Arrows / h j k l  - Move
  Alt+Enter         - Toggle fullscreen (center the map)
  Esc / Ctrl+C      - Quit

Examples:
  dungeonwalk
  dungeonwalk --layout open
  dungeonwalk --config ./my-config.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagLayout, "layout", "", "Map layout ID (see 'dungeonwalk layouts')")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagNoVi, "no-vi", false, "Disable h/j/k/l movement")
	rootCmd.Flags().BoolVar(&flagTelemetry, "telemetry", false, "Export traces to Honeycomb")

	rootCmd.AddCommand(layoutsCmd)
}
