package game

// Snapshot captures the complete game state for determinism testing and
// replay. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         int64
	LevelIndex   int
	Lives        int
	LevelScore   int
	TotalScore   int
	Paused       bool
	GameOver     bool
	CampaignDone bool
	Completed    bool

	// Player state (positions in world pixels; velocity in fixed-point
	// thousandths to stay integer).
	PlayerX        int
	PlayerY        int
	PlayerVX       int
	PlayerVY       int
	OnGround       bool
	JumpsRemaining int
	MaxJumps       int
	FacingRight    bool

	CameraX int
	CameraY int

	PresentsLeft int
	PowerupsLeft int
	PlatformN    int
	EnemyN       int

	// Enemy positions (each enemy is 2 ints: X, Y)
	EnemyData []int

	RNGState uint64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Lives:        g.lives,
		LevelScore:   g.levelScore,
		TotalScore:   g.totalScore,
		Paused:       g.paused,
		GameOver:     g.gameOver,
		CampaignDone: g.campaignDone,
	}

	if g.rng != nil {
		snap.RNGState = g.rng.state
	}

	if g.level != nil {
		snap.LevelIndex = g.level.Index
		snap.Completed = g.level.Completed
		snap.PresentsLeft = len(g.level.Presents)
		snap.PowerupsLeft = len(g.level.Powerups)
		snap.PlatformN = len(g.level.Platforms)
		snap.EnemyN = len(g.level.Enemies)

		snap.EnemyData = make([]int, 0, len(g.level.Enemies)*2)
		for _, e := range g.level.Enemies {
			snap.EnemyData = append(snap.EnemyData, e.Rect.X, e.Rect.Y)
		}
	}

	if g.player != nil {
		snap.PlayerX = g.player.Rect.X
		snap.PlayerY = g.player.Rect.Y
		snap.PlayerVX = int(g.player.VX * 1000)
		snap.PlayerVY = int(g.player.VY * 1000)
		snap.OnGround = g.player.OnGround
		snap.JumpsRemaining = g.player.JumpsRemaining
		snap.MaxJumps = g.player.MaxJumps
		snap.FacingRight = g.player.FacingRight
	}

	if g.camera != nil {
		snap.CameraX = g.camera.X
		snap.CameraY = g.camera.Y
	}

	return snap
}
