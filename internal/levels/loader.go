package levels

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load loads the campaign document.
// Search order: customPath -> ~/.platformer/campaigns/story.yaml ->
// ./campaigns/story.yaml -> embedded story campaign.
//
// A malformed or missing document never fails the caller: the builtin
// fallback campaign is substituted and the returned error carries the
// diagnostic for operator-facing logging.
func Load(customPath string) (CampaignData, error) {
	if customPath != "" {
		campaign, err := LoadFile(customPath)
		if err != nil {
			return FallbackCampaign(), err
		}
		return campaign, nil
	}

	if userPath := userCampaignPath("story.yaml"); userPath != "" {
		if campaign, err := LoadFile(userPath); err == nil {
			return campaign, nil
		}
	}

	if campaign, err := LoadFile(filepath.Join("campaigns", "story.yaml")); err == nil {
		return campaign, nil
	}

	campaign, err := ParseYAML(storyCampaignYAML)
	if err != nil {
		return FallbackCampaign(), fmt.Errorf("embedded campaign: %w", err)
	}
	return campaign, nil
}

// LoadFile loads and parses a single campaign file.
func LoadFile(path string) (CampaignData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CampaignData{}, fmt.Errorf("reading campaign %s: %w", path, err)
	}

	campaign, err := ParseYAML(data)
	if err != nil {
		return CampaignData{}, fmt.Errorf("parsing campaign %s: %w", path, err)
	}
	return campaign, nil
}

// userCampaignPath returns the path to a user campaign file, or empty if
// home is unavailable.
func userCampaignPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "campaigns", filename)
}
