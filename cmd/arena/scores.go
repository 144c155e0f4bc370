package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arena/internal/registry"
	"github.com/vovakirdan/tile-arena/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs and the high score for a mode.

Examples:
  arena scores
  arena scores arena_hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	modeID, err := modeFromArgs(args)
	if err != nil {
		return err
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q; run 'arena list' to see available modes", modeID)
	}

	title := modeID
	for _, info := range registry.List() {
		if info.ID == modeID {
			title = info.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopScores(modeID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		secs := int(r.Duration)
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Kills,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if high, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}
