package levels

import (
	_ "embed"
)

//go:embed campaigns/story.yaml
var storyCampaignYAML []byte

// FallbackCampaign returns a small single-level campaign used when the
// campaign document cannot be read or fails validation.
func FallbackCampaign() CampaignData {
	return CampaignData{
		Title:       "Fallback Holiday",
		Description: "Default campaign used when the story file cannot be read.",
		Levels: []LevelData{
			{
				ID:          "fallback_village",
				Name:        "Snowy Village",
				Width:       1600,
				Height:      600,
				PlayerStart: []int{80, 480},
				Goal:        []int{1500, 480, 60, 80},
				Ground:      []int{0, 560, 1600, 40},
				Platforms: [][]int{
					{200, 430, 160, 20},
					{420, 330, 160, 20},
					{700, 460, 200, 20},
					{1100, 380, 200, 20},
					{1350, 300, 180, 20},
				},
				Presents: [][]int{
					{220, 400, 30, 30},
					{460, 300, 30, 30},
					{760, 430, 30, 30},
					{1120, 350, 30, 30},
					{1370, 270, 30, 30},
				},
				Enemies: [][]float64{
					{600, 520, 40, 40, 500, 740, 2.0},
					{1300, 340, 40, 40, 1250, 1450, 1.5},
				},
				Powerups: []PowerupDef{
					{Rect: []int{520, 480, 24, 24}, Type: "double_jump"},
					{Rect: []int{900, 420, 24, 24}, Type: "speed_boost"},
				},
				Story: StoryDef{
					Intro: []DialogueLine{
						{Speaker: "Narrator", Speed: 30, Text: "Welcome to the fallback story. Collect presents and reach the tree!"},
					},
					Outro: []DialogueLine{
						{Speaker: "Narrator", Speed: 30, Text: "Well done!"},
					},
				},
			},
		},
	}
}
