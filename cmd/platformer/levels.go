package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var flagLevelsCampaign string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the levels of the campaign in play order, with size and
present count for each.

Examples:
  platformer levels
  platformer levels --campaign ./my-campaign.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsCampaign, "campaign", "", "Path to custom campaign YAML")
}

func runLevels(cmd *cobra.Command, args []string) {
	campaign, diag := levels.Load(flagLevelsCampaign)
	if diag != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using builtin campaign)\n", diag)
	}

	fmt.Printf("Campaign: %s\n", campaign.Title)
	if campaign.Description != "" {
		fmt.Println(campaign.Description)
	}
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range campaign.Levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-11s  %s\n", "#", maxNameLen, "Name", "Size", "Presents")
	fmt.Printf("  %-3s  %-*s  %-11s  %s\n", "---", maxNameLen, "----", "----", "--------")

	for i, l := range campaign.Levels {
		fmt.Printf("  %-3d  %-*s  %-11s  %d\n",
			i, maxNameLen, l.Name, fmt.Sprintf("%dx%d", l.Width, l.Height), len(l.Presents))
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <#>' to start at a level.")
}
