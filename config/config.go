package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hollow/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings such as "15s" or "250ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the runtime tunables; unset keys keep parameter defaults
type Config struct {
	Movement MovementConfig `toml:"movement"`
	Pursuit  PursuitConfig  `toml:"pursuit"`
	Dungeon  DungeonConfig  `toml:"dungeon"`
	Audio    AudioConfig    `toml:"audio"`
}

type MovementConfig struct {
	EntitySpeed float64 `toml:"entity_speed"`
}

type PursuitConfig struct {
	Enabled          bool     `toml:"enabled"`
	StartRoom        int      `toml:"start_room"`
	SpeedFactor      float64  `toml:"speed_factor"`
	MoveInterval     Duration `toml:"move_interval"`
	MoveChance       float64  `toml:"move_chance"`
	AlignDelay       Duration `toml:"align_delay"`
	ChaseDistance    float64  `toml:"chase_distance"`
	CatchCooldown    Duration `toml:"catch_cooldown"`
	RelocateCooldown Duration `toml:"relocate_cooldown"`
}

type DungeonConfig struct {
	// RoomsDir overrides the embedded dungeon when set
	RoomsDir  string `toml:"rooms_dir"`
	StartRoom int    `toml:"start_room"`
	// Seed 0 asks the launcher to seed from the clock
	Seed      int64  `toml:"seed"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// Default returns the configuration built from parameter constants
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			EntitySpeed: parameter.EntitySpeed,
		},
		Pursuit: PursuitConfig{
			Enabled:          true,
			StartRoom:        parameter.MonsterStartRoom,
			SpeedFactor:      parameter.MonsterSpeedFactor,
			MoveInterval:     Duration{parameter.MonsterMoveInterval},
			MoveChance:       parameter.MonsterMoveChance,
			AlignDelay:       Duration{parameter.MonsterAlignDelay},
			ChaseDistance:    parameter.MonsterChaseDistance,
			CatchCooldown:    Duration{parameter.MonsterCatchCooldown},
			RelocateCooldown: Duration{parameter.MonsterRelocateCooldown},
		},
		Dungeon: DungeonConfig{
			StartRoom: parameter.StartRoom,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges of every tunable
func (c *Config) Validate() error {
	if c.Movement.EntitySpeed <= 0 {
		return fmt.Errorf("%w: movement.entity_speed must be positive", ErrInvalid)
	}
	if c.Pursuit.SpeedFactor <= 0 || c.Pursuit.SpeedFactor > 1 {
		return fmt.Errorf("%w: pursuit.speed_factor must be in (0, 1]", ErrInvalid)
	}
	if c.Pursuit.MoveChance < 0 || c.Pursuit.MoveChance > 1 {
		return fmt.Errorf("%w: pursuit.move_chance must be in [0, 1]", ErrInvalid)
	}
	if !validRoom(c.Pursuit.StartRoom) {
		return fmt.Errorf("%w: pursuit.start_room %d outside 1..%d", ErrInvalid, c.Pursuit.StartRoom, parameter.RoomCount)
	}
	if !validRoom(c.Dungeon.StartRoom) {
		return fmt.Errorf("%w: dungeon.start_room %d outside 1..%d", ErrInvalid, c.Dungeon.StartRoom, parameter.RoomCount)
	}
	for name, d := range map[string]Duration{
		"move_interval":     c.Pursuit.MoveInterval,
		"align_delay":       c.Pursuit.AlignDelay,
		"catch_cooldown":    c.Pursuit.CatchCooldown,
		"relocate_cooldown": c.Pursuit.RelocateCooldown,
	} {
		if d.Duration < 0 {
			return fmt.Errorf("%w: pursuit.%s must not be negative", ErrInvalid, name)
		}
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1]", ErrInvalid)
	}
	return nil
}

func validRoom(id int) bool {
	return id >= 1 && id <= parameter.RoomCount
}
