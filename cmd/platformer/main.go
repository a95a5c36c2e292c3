// platformer is a terminal side-scrolling platformer: guide Santa through
// snowy levels, collect every present, and reach the tree.
//
// Usage:
//
//	platformer play              - Play the campaign
//	platformer levels            - List campaign levels
//	platformer scores            - Show high scores
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-platformer/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Santa Platformer - A terminal side-scroller",
	Long: `Santa Platformer is a terminal side-scrolling platformer. Collect
every present in a level, dodge the patrolling snowmen, grab timed powerups,
and reach the tree to move on.

Available commands:
  play     - Play the campaign
  levels   - List campaign levels
  scores   - View high scores and best runs
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --difficulty hard --level 2
  platformer levels
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
