package game

import (
	"fmt"
	"math"
)

// EnemyState is the enemy AI state.
type EnemyState int

const (
	EnemyIdle   EnemyState = iota // waiting for the player to come near
	EnemyChase                    // closing distance
	EnemyAttack                   // in range, firing on cooldown
	EnemyDead                     // terminal; kept for rendering
)

func (es EnemyState) String() string {
	switch es {
	case EnemyIdle:
		return "idle"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is one sprite monster. Dead enemies stay in the enemy slice so the
// renderer can keep drawing the corpse.
type Enemy struct {
	ID         int
	X, Z       float64
	HP         int
	State      EnemyState
	LastAttack float64 // sim clock (ms) of the last shot
}

// NewEnemy creates an idle enemy at (x,z).
func NewEnemy(id int, x, z float64, cfg Config) *Enemy {
	return &Enemy{
		ID:    id,
		X:     x,
		Z:     z,
		HP:    cfg.EnemyHP,
		State: EnemyIdle,
	}
}

// Label is the short tag used in logs, e.g. "E3".
func (e *Enemy) Label() string {
	return fmt.Sprintf("E%d", e.ID)
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.State != EnemyDead
}

// DistanceTo returns the planar distance to (x,z).
func (e *Enemy) DistanceTo(x, z float64) float64 {
	return math.Hypot(x-e.X, z-e.Z)
}

// bearingTo returns the unit vector from the enemy toward (x,z), using the
// atan2(dx,dz) convention the sprite movement was tuned with.
func (e *Enemy) bearingTo(x, z float64) (bx, bz float64) {
	a := math.Atan2(x-e.X, z-e.Z)
	return math.Sin(a), math.Cos(a)
}

// TakeDamage applies hitscan damage. Being shot always alerts the enemy; at
// zero HP it dies. Damage to a dead enemy is ignored.
func (e *Enemy) TakeDamage(dmg int) {
	if !e.Alive() {
		return
	}
	e.HP -= dmg
	e.State = EnemyChase
	if e.HP <= 0 {
		e.State = EnemyDead
	}
}

// Think advances the enemy's state machine one frame. clockMS is the sim
// clock used for the attack cooldown; fire is called once per shot.
func (e *Enemy) Think(dt, clockMS float64, p *Player, gm *GridMap, cfg Config, fire func(Projectile)) {
	if !e.Alive() {
		return
	}
	dist := e.DistanceTo(p.X, p.Z)

	switch e.State {
	case EnemyIdle:
		if dist < cfg.ActivationRadius {
			e.State = EnemyChase
		}

	case EnemyChase:
		if dist > cfg.AttackEnterRadius {
			bx, bz := e.bearingTo(p.X, p.Z)
			dx := bx * cfg.EnemySpeed * dt
			dz := bz * cfg.EnemySpeed * dt
			if cfg.EnemyCollidesWalls {
				e.X, e.Z, _, _ = gm.slideMove(e.X, e.Z, dx, dz)
			} else {
				e.X += dx
				e.Z += dz
			}
		} else {
			e.State = EnemyAttack
		}

	case EnemyAttack:
		if clockMS-e.LastAttack > cfg.AttackCooldownMS {
			bx, bz := e.bearingTo(p.X, p.Z)
			fire(Projectile{
				X:     e.X,
				Z:     e.Z,
				VelX:  bx * cfg.ProjectileSpeed,
				VelZ:  bz * cfg.ProjectileSpeed,
				Owner: OwnerEnemy,
			})
			e.LastAttack = clockMS
		}
		if dist > cfg.AttackExitRadius {
			e.State = EnemyChase
		}
	}
}
