package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Player movement.
	MoveSpeed float64 `yaml:"move_speed"` // acceleration per second while a move key is held
	RotSpeed  float64 `yaml:"rot_speed"`  // radians per second
	Friction  float64 `yaml:"friction"`   // per-frame velocity multiplier, < 1

	// Player resources.
	PlayerHealth int `yaml:"player_health"`
	PlayerAmmo   int `yaml:"player_ammo"`
	AmmoPerShot  int `yaml:"ammo_per_shot"` // 0 = unlimited

	// Hitscan.
	HitscanDamage         int     `yaml:"hitscan_damage"`
	EnemyHitRadius        float64 `yaml:"enemy_hit_radius"`
	HitscanBlockedByWalls bool    `yaml:"hitscan_blocked_by_walls"`

	// Enemy AI.
	EnemyHP            int     `yaml:"enemy_hp"`
	EnemySpeed         float64 `yaml:"enemy_speed"`
	ActivationRadius   float64 `yaml:"activation_radius"`    // IDLE -> CHASE below this
	AttackEnterRadius  float64 `yaml:"attack_enter_radius"`  // CHASE -> ATTACK at or below this
	AttackExitRadius   float64 `yaml:"attack_exit_radius"`   // ATTACK -> CHASE above this
	AttackCooldownMS   float64 `yaml:"attack_cooldown_ms"`   // minimum gap between shots
	AttackFlashMS      float64 `yaml:"attack_flash_ms"`      // attack sprite shown this long after a shot
	EnemyCollidesWalls bool    `yaml:"enemy_collides_walls"` // slide along walls; off by default, imps fly through them

	// Projectiles.
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	ContactRadius    float64 `yaml:"contact_radius"`

	// Frame clamp.
	MaxFrameStep time.Duration `yaml:"max_frame_step"`
}

// DefaultConfig returns the tuning of the shipped demo.
func DefaultConfig() Config {
	return Config{
		MoveSpeed: 15.0,
		RotSpeed:  2.5,
		Friction:  0.8,

		PlayerHealth: 100,
		PlayerAmmo:   50,
		AmmoPerShot:  0,

		HitscanDamage:  10,
		EnemyHitRadius: 1.5,

		EnemyHP:            30,
		EnemySpeed:         3.0,
		ActivationRadius:   20,
		AttackEnterRadius:  5,
		AttackExitRadius:   8,
		AttackCooldownMS:   1000,
		AttackFlashMS:      500,
		EnemyCollidesWalls: false,

		ProjectileSpeed:  20,
		ProjectileDamage: 10,
		ContactRadius:    1,

		MaxFrameStep: 100 * time.Millisecond,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("move_speed must be >= 0, got %v", c.MoveSpeed))
	}
	if c.RotSpeed < 0 {
		errs = append(errs, fmt.Errorf("rot_speed must be >= 0, got %v", c.RotSpeed))
	}
	if c.Friction < 0 || c.Friction >= 1 {
		errs = append(errs, fmt.Errorf("friction must be in [0,1), got %v", c.Friction))
	}
	if c.PlayerHealth <= 0 {
		errs = append(errs, fmt.Errorf("player_health must be > 0, got %d", c.PlayerHealth))
	}
	if c.AmmoPerShot < 0 || c.PlayerAmmo < 0 {
		errs = append(errs, errors.New("ammo values must be >= 0"))
	}
	if c.EnemyHP <= 0 {
		errs = append(errs, fmt.Errorf("enemy_hp must be > 0, got %d", c.EnemyHP))
	}
	if c.EnemyHitRadius <= 0 || c.ContactRadius <= 0 {
		errs = append(errs, errors.New("hit and contact radii must be > 0"))
	}
	if c.EnemySpeed < 0 {
		errs = append(errs, fmt.Errorf("enemy_speed must be >= 0, got %v", c.EnemySpeed))
	}
	if c.ActivationRadius <= 0 {
		errs = append(errs, fmt.Errorf("activation_radius must be > 0, got %v", c.ActivationRadius))
	}
	if c.AttackExitRadius <= c.AttackEnterRadius {
		errs = append(errs, fmt.Errorf("attack_exit_radius (%v) must be above attack_enter_radius (%v)",
			c.AttackExitRadius, c.AttackEnterRadius))
	}
	if c.AttackCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("attack_cooldown_ms must be >= 0, got %v", c.AttackCooldownMS))
	}
	if c.ProjectileSpeed <= 0 {
		errs = append(errs, fmt.Errorf("projectile_speed must be > 0, got %v", c.ProjectileSpeed))
	}
	if c.MaxFrameStep <= 0 {
		errs = append(errs, fmt.Errorf("max_frame_step must be > 0, got %s", c.MaxFrameStep))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML file over DefaultConfig. Keys that are absent keep
// their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err = ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
