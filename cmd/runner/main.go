// runner is a terminal endless-runner game: sprint across the desert,
// jump the cacti, survive as long as you can.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner replays           - Browse and watch recorded runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set display refresh rate (default: from config)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set recordings database path
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Dash - an endless runner for your terminal",
	Long: `Dino Dash is a terminal endless-runner. Jump over cacti, rack up
score, and watch the world speed up the longer you survive.

Available commands:
  play     - Play in the current terminal
  replays  - Browse, watch, and verify recorded runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --record
  runner play --seed 42
  runner replays
  runner replays --verify 3
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags. Zero values mean "use the config file".
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display refresh rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to recordings database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(serveCmd)
}
