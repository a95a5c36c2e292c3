package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and best campaign runs.

Examples:
  platformer scores
  platformer scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "santa"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Santa Platformer")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Presents", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	// Best runs, when any have been recorded
	runs, err := store.BestRuns(gameID, 5)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Best Runs")
	fmt.Printf("  %-4s  %-10s  %-16s  %-8s  %s\n", "Rank", "Presents", "Level", "Diff", "Done")
	fmt.Printf("  %-4s  %-10s  %-16s  %-8s  %s\n", "----", "--------", "-----", "----", "----")
	for i, r := range runs {
		done := "no"
		if r.Completed {
			done = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-16s  %-8s  %s\n", i+1, r.Presents, r.LevelID, r.Difficulty, done)
	}
}
