// iedie is a terminal rendition of "IE, Die!": shapes fall from the top of
// the screen, hostile ones must be destroyed before they land and friendly
// ones must be left alone.
//
// Usage:
//
//	iedie                    - Open the menu and play
//	iedie play               - Play, optionally skipping the menu
//	iedie levels             - Show the difficulty profiles
//	iedie scores [level]     - Show high scores
//	iedie serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.iedie/scores.db)
//	--config <path>     - Load a custom game config YAML
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iedie",
	Short: "IE, Die! - destroy the falling browsers in your terminal",
	Long: `IE, Die! is a terminal arcade game. Shapes fall from the top of the
screen: click the hostile ones before they land, leave the friendly
ones alone.

Available commands:
  play     - Play (default when no command is given)
  levels   - Show the difficulty profiles
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  iedie
  iedie play --difficulty hard
  iedie scores medium
  iedie serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger returns a logger writing to --log-file, or a silent one.
// The terminal belongs to the game while it runs, so logs never go there.
func openLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "iedie",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
