package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagCampaign   string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the platformer campaign.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save screenshot

Difficulty options:
  easy   - 5 lives, slower enemies, longer powerups
  normal - 3 lives, baseline speeds and durations
  hard   - 2 lives, faster enemies, shorter powerups

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --level 2
  platformer play --config ./my-config.yaml --campaign ./my-campaign.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagCampaign, "campaign", "", "Path to custom campaign YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at level index (0-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	game.SetConfigPath(flagConfig)
	game.SetCampaignPath(flagCampaign)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartLevel(flagLevel)

	// Create game instance
	g, err := registry.Create("santa")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
