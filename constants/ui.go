package constants

// Colors in "#RRGGBB" form, parsed into core.RGB at startup
const (
	BackgroundColor = "#E6E6F5"
	MarkingColor    = "#FFFFFF"

	PlayerBodyColor  = "#2F6FDD"
	EnemyBodyColor   = "#D64545"
	WindshieldColor  = "#A9D6F5"
	WheelColor       = "#222222"
	HUDBackground    = "#1A1B26"
	BannerBackground = "#1A1B26"
	BannerForeground = "#FFFFFF"
)

// Tracked key names, the W3C key identifiers for the arrow keys
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
)

// TrackedKeys is the key set handed to every key input subscription
var TrackedKeys = []string{KeyLeft, KeyRight}

// File locations
const (
	AppName        = "lane-racer"
	ConfigFileName = "config.toml"
	ScoreFileName  = "highscore.toml"
	EnvPrefix      = "LANE_RACER_"
)

// HUDHeight is the number of terminal rows above the field
const HUDHeight = 1

// Config defaults
const (
	DefaultAudioOn   = true
	DefaultVolume    = 0.5
	DefaultCollision = "bounds"
)
