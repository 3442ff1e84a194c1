// Package config loads the lane-racer settings from defaults, a TOML file,
// LANE_RACER_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/physics"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// FieldConfig is the play field geometry in map units
type FieldConfig struct {
	MapWidth    float64 `toml:"map_width"`
	MapHeight   float64 `toml:"map_height"`
	CarWidth    float64 `toml:"car_width"`
	CarHeight   float64 `toml:"car_height"`
	LateralStep float64 `toml:"lateral_step"`
}

// SpawnConfig holds the spawn delay numerators, delay = constant / speed ms
type SpawnConfig struct {
	EnemyConstant      float64 `toml:"enemy_constant"`
	DecorationConstant float64 `toml:"decoration_constant"`
}

// SpeedConfig describes the linear speed curve
type SpeedConfig struct {
	Base float64 `toml:"base"`
	Gain float64 `toml:"gain"`
	Max  float64 `toml:"max"`
}

type GameConfig struct {
	Collision  string `toml:"collision"`
	Background string `toml:"background"`
	Seed       uint64 `toml:"seed"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type ScoreConfig struct {
	// Path of the high score file, empty selects the user config directory
	Path string `toml:"path"`
}

// Config is the complete host configuration
type Config struct {
	Field FieldConfig `toml:"field"`
	Spawn SpawnConfig `toml:"spawn"`
	Speed SpeedConfig `toml:"speed"`
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Score ScoreConfig `toml:"score"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			MapWidth:    constants.MapWidth,
			MapHeight:   constants.MapHeight,
			CarWidth:    constants.CarWidth,
			CarHeight:   constants.CarHeight,
			LateralStep: constants.LateralStep,
		},
		Spawn: SpawnConfig{
			EnemyConstant:      constants.EnemySpawnConstant,
			DecorationConstant: constants.DecorationSpawnConstant,
		},
		Speed: SpeedConfig{
			Base: constants.SpeedBase,
			Gain: constants.SpeedGain,
			Max:  constants.SpeedMax,
		},
		Game: GameConfig{
			Collision:  constants.DefaultCollision,
			Background: constants.BackgroundColor,
		},
		Audio: AudioConfig{
			Enabled: constants.DefaultAudioOn,
			Volume:  constants.DefaultVolume,
		},
	}
}

// Dir returns the per-user configuration directory of the game
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// DefaultPath returns the config file looked up when no path is given
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// Load builds the configuration from defaults, the file at path and the environment
// An empty path reads the default file when it exists, an explicit missing path is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		err := cfg.LoadFile(path)
		switch {
		case err == nil:
			log.Printf("config: loaded %s", path)
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile overlays the keys present in a TOML file, unknown keys are rejected
func (c *Config) LoadFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays LANE_RACER_* variables, malformed values are ignored
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	get := func(name string) (string, bool) {
		v, ok := lookup(constants.EnvPrefix + name)
		return v, ok && v != ""
	}

	if v, ok := get("AUDIO_ENABLED"); ok {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v, ok := get("MASTER_VOLUME"); ok {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = core.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if v, ok := get("COLLISION"); ok {
		c.Game.Collision = v
	}

	if v, ok := get("SEED"); ok {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = val
		}
	}

	if v, ok := get("SCORE_PATH"); ok {
		c.Score.Path = v
	}
}

// ScorePath resolves the high score file location
func (c *Config) ScorePath() (string, error) {
	if c.Score.Path != "" {
		return c.Score.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ScoreFileName), nil
}

// Validate checks value ranges that the engine does not know about and then the engine view
func (c *Config) Validate() error {
	switch {
	case c.Spawn.DecorationConstant >= c.Spawn.EnemyConstant:
		return fmt.Errorf("%w: decoration constant %v must be below enemy constant %v",
			ErrInvalid, c.Spawn.DecorationConstant, c.Spawn.EnemyConstant)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}

	ec, err := c.EngineOptions()
	if err != nil {
		return err
	}
	return ec.Validate()
}

// EngineOptions maps the configuration onto the simulation config
func (c *Config) EngineOptions() (engine.Config, error) {
	ec := engine.DefaultConfig()

	mode, err := physics.ParseCollisionMode(c.Game.Collision)
	if err != nil {
		return ec, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	bg, err := core.ParseHex(c.Game.Background)
	if err != nil {
		return ec, fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}

	ec.MapWidth = c.Field.MapWidth
	ec.MapHeight = c.Field.MapHeight
	ec.CarWidth = c.Field.CarWidth
	ec.CarHeight = c.Field.CarHeight
	ec.LateralStep = c.Field.LateralStep
	ec.EnemySpawnConstant = c.Spawn.EnemyConstant
	ec.DecorationSpawnConstant = c.Spawn.DecorationConstant
	ec.SpeedCurve = physics.LinearCurve{Base: c.Speed.Base, Gain: c.Speed.Gain, Max: c.Speed.Max}
	ec.Collision = mode
	ec.Palette.Background = bg
	ec.Seed = c.Game.Seed
	return ec, nil
}
