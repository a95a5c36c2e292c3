package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalLevel = `
levels:
  - id: test_level
    name: Test Level
    width: 1600
    height: 600
    player_start: [100, 400]
    goal: [1500, 440, 60, 120]
    presents:
      - [300, 420, 30, 30]
      - [500, 300, 30, 30]
`

func TestParseYAMLRootLevel(t *testing.T) {
	campaign, err := ParseYAML([]byte(minimalLevel))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if len(campaign.Levels) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(campaign.Levels))
	}

	lvl := campaign.Levels[0]
	if lvl.ID != "test_level" {
		t.Errorf("ID = %q, expected test_level", lvl.ID)
	}
	if lvl.Width != 1600 || lvl.Height != 600 {
		t.Errorf("Size = %dx%d, expected 1600x600", lvl.Width, lvl.Height)
	}
	if len(lvl.Presents) != 2 {
		t.Errorf("Expected 2 presents, got %d", len(lvl.Presents))
	}
}

func TestParseYAMLNestedCampaignKey(t *testing.T) {
	doc := `
campaign:
  title: Nested
` + indent(minimalLevel, "  ")

	campaign, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if campaign.Title != "Nested" {
		t.Errorf("Title = %q, expected Nested", campaign.Title)
	}
	if len(campaign.Levels) != 1 {
		t.Errorf("Expected 1 level, got %d", len(campaign.Levels))
	}
}

func TestParseYAMLFullLevel(t *testing.T) {
	doc := `
title: Full
levels:
  - id: full
    name: Full Level
    width: 2000
    height: 600
    player_start: [100, 400]
    goal: [1900, 440, 60, 120]
    ground: [0, 560, 2000, 40]
    platforms:
      - [300, 450, 150, 20]
    presents:
      - [350, 410, 30, 30]
    powerups:
      - rect: [600, 400, 30, 30]
        type: double_jump
    enemies:
      - [800, 510, 40, 50, 700, 1000, 1.5]
    checkpoints:
      - id: mid
        rect: [1000, 400, 40, 160]
        respawn: [1010, 450]
        story: mid_story
    events:
      - trigger: "presents_collected:1"
        effect: spawn_powerup
        payload:
          rect: [1200, 400, 30, 30]
          type: invincibility
    story:
      intro:
        - speaker: Santa
          text: "Off we go!"
      interludes:
        - id: mid_story
          sequence:
            - speaker: Elf
              text: "Halfway there."
`

	campaign, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	lvl := campaign.Levels[0]
	if len(lvl.Powerups) != 1 || lvl.Powerups[0].Type != "double_jump" {
		t.Errorf("Powerups not parsed: %+v", lvl.Powerups)
	}
	if len(lvl.Enemies) != 1 || len(lvl.Enemies[0]) != 7 {
		t.Errorf("Enemies not parsed: %+v", lvl.Enemies)
	}
	if len(lvl.Checkpoints) != 1 || lvl.Checkpoints[0].Story != "mid_story" {
		t.Errorf("Checkpoints not parsed: %+v", lvl.Checkpoints)
	}
	if len(lvl.Events) != 1 || lvl.Events[0].Trigger != "presents_collected:1" {
		t.Errorf("Events not parsed: %+v", lvl.Events)
	}
	if len(lvl.Story.Intro) != 1 || lvl.Story.Intro[0].Speaker != "Santa" {
		t.Errorf("Story intro not parsed: %+v", lvl.Story.Intro)
	}
	if len(lvl.Story.Interludes) != 1 || lvl.Story.Interludes[0].ID != "mid_story" {
		t.Errorf("Interludes not parsed: %+v", lvl.Story.Interludes)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "{{{{"},
		{"empty levels", "levels: []"},
		{"no levels key", "title: Nothing"},
		{
			"missing player_start",
			`
levels:
  - id: bad
    width: 800
    height: 600
    goal: [700, 440, 60, 120]
`,
		},
		{
			"short goal rect",
			`
levels:
  - id: bad
    width: 800
    height: 600
    player_start: [100, 400]
    goal: [700, 440]
`,
		},
		{
			"short enemy tuple",
			`
levels:
  - id: bad
    width: 800
    height: 600
    player_start: [100, 400]
    goal: [700, 440, 60, 120]
    enemies:
      - [800, 510, 40, 50]
`,
		},
		{
			"zero dimensions",
			`
levels:
  - id: bad
    width: 0
    height: 600
    player_start: [100, 400]
    goal: [700, 440, 60, 120]
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.doc)); err == nil {
				t.Error("ParseYAML should fail")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "campaign.yaml")
	if err := os.WriteFile(path, []byte(minimalLevel), 0o600); err != nil {
		t.Fatalf("writing temp campaign: %v", err)
	}

	campaign, diag := Load(path)
	if diag != nil {
		t.Fatalf("Load() returned diagnostic: %v", diag)
	}
	if len(campaign.Levels) != 1 || campaign.Levels[0].ID != "test_level" {
		t.Errorf("Loaded wrong campaign: %+v", campaign.Levels)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("levels: []"), 0o600); err != nil {
		t.Fatalf("writing temp campaign: %v", err)
	}

	campaign, diag := Load(path)
	if diag == nil {
		t.Error("Load() of a broken campaign should return a diagnostic")
	}
	// Never fails the caller: a playable fallback is substituted
	if len(campaign.Levels) == 0 {
		t.Fatal("fallback campaign should have at least one level")
	}
	if campaign.Levels[0].ID != FallbackCampaign().Levels[0].ID {
		t.Errorf("expected the fallback campaign, got %q", campaign.Levels[0].ID)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	campaign, diag := Load("/nonexistent/campaign.yaml")
	if diag == nil {
		t.Error("Load() of a missing campaign should return a diagnostic")
	}
	if len(campaign.Levels) == 0 {
		t.Fatal("fallback campaign should have at least one level")
	}
}

func TestFallbackCampaignIsValid(t *testing.T) {
	campaign := FallbackCampaign()

	if len(campaign.Levels) == 0 {
		t.Fatal("fallback campaign must have levels")
	}
	for i, lvl := range campaign.Levels {
		if lvl.Width <= 0 || lvl.Height <= 0 {
			t.Errorf("level %d has invalid size %dx%d", i, lvl.Width, lvl.Height)
		}
		if len(lvl.PlayerStart) < 2 {
			t.Errorf("level %d missing player_start", i)
		}
		if len(lvl.Goal) < 4 {
			t.Errorf("level %d missing goal", i)
		}
	}
}

func TestEmbeddedCampaignParses(t *testing.T) {
	campaign, err := ParseYAML(storyCampaignYAML)
	if err != nil {
		t.Fatalf("embedded campaign must parse: %v", err)
	}
	if len(campaign.Levels) < 2 {
		t.Errorf("embedded campaign should have multiple levels, got %d", len(campaign.Levels))
	}
}

func TestLevelNames(t *testing.T) {
	c := CampaignData{
		Levels: []LevelData{
			{Name: "First"},
			{}, // unnamed
		},
	}

	names := c.LevelNames()
	if names[0] != "First" {
		t.Errorf("names[0] = %q, expected First", names[0])
	}
	if names[1] != "Level 2" {
		t.Errorf("names[1] = %q, expected Level 2", names[1])
	}
}

// indent prefixes every non-empty line, for nesting YAML snippets.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
