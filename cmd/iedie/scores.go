package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/platform/tui"
	"github.com/vovakirdan/ie-die/internal/storage"
)

var (
	flagInteractive bool
	flagSessions    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty (easy by default).

Examples:
  iedie scores
  iedie scores hard
  iedie scores --interactive
  iedie scores --sessions 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagSessions, "sessions", 0, "Also list the N most recent sessions")
}

func runScores(_ *cobra.Command, args []string) {
	level := config.LevelEasy
	if len(args) == 1 {
		parsed, err := config.ParseLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'iedie levels' to see available difficulties.")
			os.Exit(1)
		}
		level = parsed
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, level, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	gameID := storage.GameID(level)
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", level.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'iedie play --difficulty %s' to set the first high score!\n", level)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		fmt.Println()
		if highScore, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	if flagSessions > 0 {
		printSessions(store, flagSessions)
	}
}

func printSessions(store *storage.Store, limit int) {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	if len(sessions) == 0 {
		fmt.Println("  none")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-9s  %-8s  %s\n", "Session", "Level", "Score", "Ended", "Length", "Where")
	for _, s := range sessions {
		where := "local"
		if s.Remote {
			where = "ssh"
		}
		fmt.Printf("  %-8s  %-8s  %-6d  %-9s  %-8s  %s\n",
			shortID(s.SessionID), s.Level, s.Score, s.EndReason,
			time.Duration(s.Duration)*time.Second, where)
	}
}

// shortID trims a uuid to its first group.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
