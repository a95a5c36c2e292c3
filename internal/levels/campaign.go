// Package levels provides campaign document loading for the platformer.
// This package depends on nothing in the game core; the core consumes the
// parsed definitions when building runtime levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CampaignData is an ordered sequence of level definitions plus metadata.
type CampaignData struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Levels      []LevelData `yaml:"levels"`
}

// LevelData is the authored definition of a single level.
// Rectangles are [x, y, w, h]; points are [x, y];
// enemies are [x, y, w, h, patrol_min, patrol_max, speed].
type LevelData struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Width       int             `yaml:"width"`
	Height      int             `yaml:"height"`
	PlayerStart []int           `yaml:"player_start"`
	Goal        []int           `yaml:"goal"`
	Ground      []int           `yaml:"ground"`
	Platforms   [][]int         `yaml:"platforms"`
	Presents    [][]int         `yaml:"presents"`
	Powerups    []PowerupDef    `yaml:"powerups"`
	Enemies     [][]float64     `yaml:"enemies"`
	Checkpoints []CheckpointDef `yaml:"checkpoints"`
	Events      []EventDef      `yaml:"events"`
	Story       StoryDef        `yaml:"story"`
}

// PowerupDef places a typed powerup pickup in a level.
type PowerupDef struct {
	Rect []int  `yaml:"rect"`
	Type string `yaml:"type"`
}

// CheckpointDef places a checkpoint with its respawn point.
type CheckpointDef struct {
	ID      string `yaml:"id"`
	Rect    []int  `yaml:"rect"`
	Respawn []int  `yaml:"respawn"`
	Story   string `yaml:"story"`
}

// EventDef is a scripted one-shot level mutation.
// Trigger is "presents_collected:N", "checkpoint_reached:<id>", or a bare
// trigger name for unconditional events.
type EventDef struct {
	Trigger string       `yaml:"trigger"`
	Effect  string       `yaml:"effect"`
	Payload EventPayload `yaml:"payload"`
}

// EventPayload carries the effect arguments. Which fields apply depends on
// the effect: spawn_powerup uses Rect+Type, spawn_platforms uses Platforms.
type EventPayload struct {
	Rect      []int   `yaml:"rect"`
	Type      string  `yaml:"type"`
	Platforms [][]int `yaml:"platforms"`
}

// StoryDef holds the dialogue sequences attached to a level.
// The core only carries these; sequencing/rendering is the platform's.
type StoryDef struct {
	Intro      []DialogueLine `yaml:"intro"`
	Outro      []DialogueLine `yaml:"outro"`
	Interludes []InterludeDef `yaml:"interludes"`
}

// DialogueLine is a single line of dialogue.
type DialogueLine struct {
	Speaker  string `yaml:"speaker"`
	Portrait string `yaml:"portrait"`
	Speed    int    `yaml:"speed"`
	Text     string `yaml:"text"`
}

// InterludeDef names a dialogue sequence referenced by checkpoints.
type InterludeDef struct {
	ID       string         `yaml:"id"`
	Sequence []DialogueLine `yaml:"sequence"`
}

// campaignDocument allows the file to either contain {campaign: {...}} or
// the campaign fields directly at the root.
type campaignDocument struct {
	Campaign *CampaignData `yaml:"campaign"`
	CampaignData          `yaml:",inline"`
}

// ParseYAML parses a campaign document and validates the levels array.
func ParseYAML(data []byte) (CampaignData, error) {
	var doc campaignDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return CampaignData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	campaign := doc.CampaignData
	if doc.Campaign != nil {
		campaign = *doc.Campaign
	}

	if len(campaign.Levels) == 0 {
		return CampaignData{}, fmt.Errorf("campaign must define a non-empty 'levels' array")
	}

	for i, lvl := range campaign.Levels {
		if err := validateLevel(lvl); err != nil {
			return CampaignData{}, fmt.Errorf("level %d (%s): %w", i, lvl.ID, err)
		}
	}

	return campaign, nil
}

// validateLevel checks the array shapes a level definition must satisfy.
func validateLevel(lvl LevelData) error {
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return fmt.Errorf("width/height must be positive")
	}
	if len(lvl.PlayerStart) < 2 {
		return fmt.Errorf("player_start must be [x, y]")
	}
	if len(lvl.Goal) < 4 {
		return fmt.Errorf("goal must be [x, y, w, h]")
	}
	for _, p := range lvl.Platforms {
		if len(p) < 4 {
			return fmt.Errorf("platform entries must be [x, y, w, h]")
		}
	}
	for _, p := range lvl.Presents {
		if len(p) < 4 {
			return fmt.Errorf("present entries must be [x, y, w, h]")
		}
	}
	for _, pu := range lvl.Powerups {
		if len(pu.Rect) < 4 || pu.Type == "" {
			return fmt.Errorf("powerup entries must have rect [x, y, w, h] and a type")
		}
	}
	for _, e := range lvl.Enemies {
		if len(e) < 7 {
			return fmt.Errorf("enemy entries must be [x, y, w, h, patrol_min, patrol_max, speed]")
		}
	}
	return nil
}

// LevelNames returns the display names of all levels in order.
func (c CampaignData) LevelNames() []string {
	names := make([]string, len(c.Levels))
	for i, lvl := range c.Levels {
		if lvl.Name != "" {
			names[i] = lvl.Name
		} else {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}
	return names
}
