package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_MatchesTuning(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15.0, cfg.MoveSpeed)
	assert.Equal(t, 2.5, cfg.RotSpeed)
	assert.Equal(t, 0.8, cfg.Friction)
	assert.Equal(t, 100, cfg.PlayerHealth)
	assert.Equal(t, 10, cfg.HitscanDamage)
	assert.Equal(t, 30, cfg.EnemyHP)
	assert.Equal(t, 3.0, cfg.EnemySpeed)
	assert.Equal(t, 20.0, cfg.ActivationRadius)
	assert.Equal(t, 5.0, cfg.AttackEnterRadius)
	assert.Equal(t, 8.0, cfg.AttackExitRadius)
	assert.Equal(t, 1000.0, cfg.AttackCooldownMS)
	assert.Equal(t, 20.0, cfg.ProjectileSpeed)
	assert.Equal(t, 10, cfg.ProjectileDamage)
	assert.Equal(t, 1.0, cfg.ContactRadius)
	assert.Equal(t, 100*time.Millisecond, cfg.MaxFrameStep)
	assert.False(t, cfg.EnemyCollidesWalls, "imps ignore walls unless configured")
}

func TestParseConfig_Overrides(t *testing.T) {
	data := []byte(`
move_speed: 20
enemy_hp: 50
hitscan_blocked_by_walls: true
max_frame_step: 50ms
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.MoveSpeed)
	assert.Equal(t, 50, cfg.EnemyHP)
	assert.True(t, cfg.HitscanBlockedByWalls)
	assert.Equal(t, 50*time.Millisecond, cfg.MaxFrameStep)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.8, cfg.Friction)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_UnknownKey(t *testing.T) {
	_, err := ParseConfig([]byte("move_sped: 20\n"))
	require.Error(t, err)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("friction: 1.2\nenemy_hp: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "friction")
	assert.Contains(t, err.Error(), "enemy_hp")

	for _, tc := range []struct {
		yaml string
		key  string
	}{
		{"attack_exit_radius: 5\n", "attack_exit_radius"},
		{"enemy_speed: -3\n", "enemy_speed"},
		{"projectile_speed: -20\n", "projectile_speed"},
		{"projectile_speed: 0\n", "projectile_speed"},
		{"attack_cooldown_ms: -1\n", "attack_cooldown_ms"},
		{"rot_speed: -2.5\n", "rot_speed"},
		{"activation_radius: 0\n", "activation_radius"},
	} {
		_, err := ParseConfig([]byte(tc.yaml))
		if assert.Error(t, err, tc.yaml) {
			assert.Contains(t, err.Error(), tc.key)
		}
	}
}

func TestValidate_AttackRadii(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AttackExitRadius = 4
	assert.Error(t, cfg.Validate())

	cfg.AttackExitRadius = cfg.AttackEnterRadius
	assert.Error(t, cfg.Validate(), "equal radii leave no hysteresis band")
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "raider.yaml")
	require.NoError(t, os.WriteFile(file, []byte("rot_speed: 3\n"), 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.RotSpeed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_ExampleFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.AmmoPerShot)
	assert.True(t, cfg.HitscanBlockedByWalls)
	assert.Equal(t, 100*time.Millisecond, cfg.MaxFrameStep)
}
