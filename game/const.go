package game

// Constants for the playfield. All game code works in these logical units;
// hosts scale them to their surface.
const (
	WIDTH  = 480
	HEIGHT = 640

	// Margin bounds horizontal movement of the player and the formation.
	Margin = 12.0
	// BorderInset is where the playfield border is painted.
	BorderInset = 10.0

	StarCount     = 70
	InvaderPoints = 100
	StartingLives = 3
)

// Player constants
const (
	PlayerWidth        = 36.0
	PlayerHeight       = 16.0
	PlayerSpeed        = 220.0
	PlayerBottomOffset = 48.0
)

// Invader constants
const (
	InvaderWidth    = 30.0
	InvaderHeight   = 20.0
	InvaderSpacingX = 44.0
	InvaderSpacingY = 34.0
	InvaderStartY   = 80.0
)

// Projectile constants
const (
	BulletWidth        = 4.0
	BulletHeight       = 10.0
	PlayerBulletSpeed  = 420.0
	InvaderBulletSpeed = 240.0

	// PlayerBulletHitY parks a player bullet above the screen after a hit so
	// it is culled next frame and cannot score twice.
	PlayerBulletHitY = -20.0
	// InvaderBulletHitOffset parks an invader bullet below the screen after a hit.
	InvaderBulletHitOffset = 40.0
	// InvaderBulletCullOffset is how far past the bottom edge invader
	// bullets travel before being culled.
	InvaderBulletCullOffset = 20.0
)

// Starfield constants
const (
	StarMinSize    = 1.0
	StarSizeRange  = 1.5
	StarMinSpeed   = 6.0
	StarSpeedRange = 20.0
	StarRespawnY   = -5.0
)

// Attract-mode preview
const (
	PreviewRows  = 3
	PreviewCols  = 7
	PromptOffset = 80.0
	PromptText   = "Press Enter to start"
)
