package game

import "math"

// HitResult describes the outcome of one hitscan shot.
type HitResult struct {
	Hit    bool
	Enemy  *Enemy
	Dist   float64    // distance along the ray to the impact
	Prev   EnemyState // target state before the hit
	Killed bool
}

// ResolveHitscan casts a ray from the player along its facing and damages
// the nearest live enemy it touches. Each enemy is a camera-facing billboard,
// which in the plane is a circle of radius cfg.EnemyHitRadius.
func ResolveHitscan(p *Player, enemies []*Enemy, gm *GridMap, cfg Config) HitResult {
	fx, fz := p.Forward()
	// Unlimited range; only a wall, when walls block, cuts the ray short.
	maxDist := math.Inf(1)
	if cfg.HitscanBlockedByWalls {
		if d, ok := gm.firstWallHit(p.X, p.Z, fx, fz, gm.Extent()); ok {
			maxDist = d
		}
	}

	var target *Enemy
	best := math.Inf(1)
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		t, ok := rayCircleHitT(p.X, p.Z, fx, fz, e.X, e.Z, cfg.EnemyHitRadius)
		if !ok || t > maxDist {
			continue
		}
		if t < best {
			best = t
			target = e
		}
	}
	if target == nil {
		return HitResult{}
	}

	prev := target.State
	target.TakeDamage(cfg.HitscanDamage)
	return HitResult{
		Hit:    true,
		Enemy:  target,
		Dist:   best,
		Prev:   prev,
		Killed: !target.Alive(),
	}
}
