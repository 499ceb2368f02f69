package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ie-die/internal/assets"
	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/core"
	"github.com/vovakirdan/ie-die/internal/platform/tui"
	"github.com/vovakirdan/ie-die/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play IE, Die!",
	Long: `Open the menu and play. With --difficulty the menu is skipped.

Controls:
  1/2/3 or E/M/H  - Start Easy, Medium or Hard from the menu
  Click/Drag      - Destroy every shape under the pointer
  Tab             - High scores (menu only)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Examples:
  iedie play
  iedie play --difficulty hard
  iedie play --seed 42 --config ./my-iedie.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start right away: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	var start *config.Level
	if flagDifficulty != "" {
		level, err := config.ParseLevel(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'iedie levels' to see available difficulties.")
			os.Exit(1)
		}
		start = &level
	}

	cfg := loadConfig()

	logger, closeLog := openLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sheet, err := assets.DefaultSheet()
	if err != nil {
		logger.Warn("could not load sprite sheet", "error", err)
	}

	runErr := tui.Run(tui.ModelOptions{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:  store,
		Sheet:  sheet,
		Logger: logger,
		Start:  start,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
