package game

import "math"

// Owner tags who fired a projectile.
type Owner uint8

const (
	OwnerEnemy Owner = iota
	OwnerPlayer
)

func (o Owner) String() string {
	switch o {
	case OwnerEnemy:
		return "enemy"
	case OwnerPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Projectile is a travelling shot. Enemies fire these; the player's weapon is
// hitscan and never spawns one, but player-owned projectiles are honoured.
type Projectile struct {
	X, Z       float64
	VelX, VelZ float64
	Owner      Owner
}

// projectileOutcome is how one projectile resolved this frame.
type projectileOutcome uint8

const (
	projectileFlying projectileOutcome = iota
	projectileHitPlayer
	projectileHitWall
)

// stepProjectile integrates one projectile and resolves collisions. Player
// contact is tested before walls and wins if both apply.
func stepProjectile(pr *Projectile, dt float64, p *Player, gm *GridMap, cfg Config) projectileOutcome {
	pr.X += pr.VelX * dt
	pr.Z += pr.VelZ * dt

	if pr.Owner == OwnerEnemy && math.Hypot(pr.X-p.X, pr.Z-p.Z) < cfg.ContactRadius {
		p.Health -= cfg.ProjectileDamage
		return projectileHitPlayer
	}
	if gm.IsSolid(pr.X, pr.Z) {
		return projectileHitWall
	}
	return projectileFlying
}

// StepProjectiles advances every projectile and drops the ones that
// resolved. The returned slice reuses projs' backing array. hits counts
// projectiles that struck the player.
func StepProjectiles(dt float64, projs []Projectile, p *Player, gm *GridMap, cfg Config) (kept []Projectile, hits, walls int) {
	kept = projs[:0]
	for i := range projs {
		pr := projs[i]
		switch stepProjectile(&pr, dt, p, gm, cfg) {
		case projectileHitPlayer:
			hits++
		case projectileHitWall:
			walls++
		default:
			kept = append(kept, pr)
		}
	}
	return kept, hits, walls
}
