package game

// PowerupStatus is the HUD view of one powerup type.
type PowerupStatus struct {
	Type         PowerupType
	RemainingSec float64 // 0 if inactive
}

// HUDData is the read-only per-tick view the platform renders: lives, level
// progress, active powerup timers, and the current transient message.
type HUDData struct {
	Lives         int
	Presents      int // collected on the current level
	TotalPresents int
	TotalScore    int // presents collected across the whole run
	LevelIndex    int
	LevelName     string
	Powerups      [3]PowerupStatus
	Message       string
	LevelComplete bool
	CampaignDone  bool
}

// HUD returns the current HUD values.
func (g *Game) HUD() HUDData {
	now := g.now()

	hud := HUDData{
		Lives:      g.lives,
		TotalScore: g.totalScore,
	}
	if g.level != nil {
		hud.Presents = g.levelScore
		hud.TotalPresents = g.level.TotalPresents
		hud.LevelIndex = g.level.Index
		hud.LevelName = g.level.Name
		hud.LevelComplete = g.level.Completed
	}
	hud.CampaignDone = g.campaignDone
	hud.Message = g.messages.Current(now)

	if g.player != nil {
		for i := PowerupType(0); i < powerupCount; i++ {
			hud.Powerups[i] = PowerupStatus{
				Type:         i,
				RemainingSec: float64(g.player.PowerupRemainingMS(i, now)) / 1000.0,
			}
		}
	}

	return hud
}
