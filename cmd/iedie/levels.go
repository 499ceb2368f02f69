package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ie-die/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the difficulty profiles",
	Long:  `Shows the lives, fall speeds and hostile share of every difficulty, as loaded from the active config.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulty levels:")
	fmt.Println()

	fmt.Printf("  %-8s  %-5s  %-9s  %s\n", "Level", "Lives", "Speed", "Hostile")
	fmt.Printf("  %-8s  %-5s  %-9s  %s\n", "-----", "-----", "-----", "-------")

	for _, level := range config.Levels() {
		p := cfg.Profiles.For(level)
		speed := fmt.Sprintf("%d-%d", p.MinSpeed, p.MaxSpeed)
		fmt.Printf("  %-8s  %-5d  %-9s  %d%%\n", level, p.Lives, speed, p.EnemyChance)
	}

	fmt.Println()
	fmt.Printf("A new shape every %v, the board advances every %v.\n", cfg.Timing.Spawn(), cfg.Timing.Tick())
	fmt.Println("Run 'iedie play --difficulty <level>' to start one directly.")
}
