package game

// Sprite names the image the presentation layer should use for an entity.
type Sprite string

const (
	SpriteImp       Sprite = "imp"
	SpriteImpAttack Sprite = "imp_attack"
	SpriteImpDead   Sprite = "imp_dead"
	SpriteFireball  Sprite = "fireball"
)

// PlayerView is the renderer's copy of the player pose.
type PlayerView struct {
	X, Z     float64
	Dir      float64
	FwdX     float64
	FwdZ     float64
	Speed    float64
	Shooting bool
}

// EnemyView is the renderer's copy of one enemy.
type EnemyView struct {
	ID     int
	X, Z   float64
	HP     int
	State  EnemyState
	Sprite Sprite
}

// ProjectileView is the renderer's copy of one projectile.
type ProjectileView struct {
	X, Z   float64
	Owner  Owner
	Sprite Sprite
}

// Snapshot is everything a presentation layer needs to draw one frame. It
// holds copies, so it stays valid after later Steps.
type Snapshot struct {
	Frame       int
	ClockMS     float64
	Phase       Phase
	Cleared     bool
	Player      PlayerView
	HUD         HUD
	Enemies     []EnemyView
	Projectiles []ProjectileView
}

// enemySprite picks the sprite from state alone: the attack pose is shown for
// a short window after each shot.
func enemySprite(e *Enemy, clockMS float64, cfg Config) Sprite {
	switch {
	case e.State == EnemyDead:
		return SpriteImpDead
	case e.State == EnemyAttack && e.LastAttack > 0 && clockMS-e.LastAttack < cfg.AttackFlashMS:
		return SpriteImpAttack
	default:
		return SpriteImp
	}
}

// Snapshot captures the current state for rendering.
func (s *Sim) Snapshot() Snapshot {
	p := s.Player
	fx, fz := p.Forward()
	snap := Snapshot{
		Frame:   s.frame,
		ClockMS: s.clockMS,
		Phase:   s.phase,
		Cleared: s.cleared,
		Player: PlayerView{
			X: p.X, Z: p.Z, Dir: p.Dir,
			FwdX: fx, FwdZ: fz,
			Speed:    p.Speed(),
			Shooting: p.shooting,
		},
		HUD:         s.HUD(),
		Enemies:     make([]EnemyView, 0, len(s.Enemies)),
		Projectiles: make([]ProjectileView, 0, len(s.Projectiles)),
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:     e.ID,
			X:      e.X,
			Z:      e.Z,
			HP:     e.HP,
			State:  e.State,
			Sprite: enemySprite(e, s.clockMS, s.cfg),
		})
	}
	for _, pr := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:      pr.X,
			Z:      pr.Z,
			Owner:  pr.Owner,
			Sprite: SpriteFireball,
		})
	}
	return snap
}
