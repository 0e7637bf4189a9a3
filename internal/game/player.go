package game

import "math"

// WeaponID names the equipped weapon. Both weapons currently deal the same
// hitscan damage; the identifier drives the weapon sprite.
type WeaponID uint8

const (
	WeaponPistol WeaponID = iota
	WeaponShotgun
)

func (w WeaponID) String() string {
	switch w {
	case WeaponPistol:
		return "pistol"
	case WeaponShotgun:
		return "shotgun"
	default:
		return "unknown"
	}
}

// Player is the single locally controlled actor.
type Player struct {
	X, Z       float64 // plane position
	Dir        float64 // facing, radians; 0 looks down -Z
	VelX, VelZ float64
	Health     int
	Ammo       int
	Weapon     WeaponID

	shooting bool // fire latch: set on the press edge, cleared on release
}

// NewPlayer places a player at (x,z) with the configured resources.
func NewPlayer(x, z float64, cfg Config) *Player {
	return &Player{
		X:      x,
		Z:      z,
		Health: cfg.PlayerHealth,
		Ammo:   cfg.PlayerAmmo,
		Weapon: WeaponPistol,
	}
}

// Forward returns the unit facing vector in the plane.
func (p *Player) Forward() (fx, fz float64) {
	return -math.Sin(p.Dir), -math.Cos(p.Dir)
}

// Speed returns the magnitude of the player's velocity.
func (p *Player) Speed() float64 {
	return math.Hypot(p.VelX, p.VelZ)
}

// triggerResult is what the fire input produced this frame.
type triggerResult uint8

const (
	triggerNone triggerResult = iota
	triggerFired
	triggerDry // pressed with too little ammo
)

// Advance moves the player one frame. It returns true when a shot should be
// resolved this frame.
func (p *Player) Advance(dt float64, in InputState, gm *GridMap, cfg Config) bool {
	return p.advance(dt, in, gm, cfg) == triggerFired
}

func (p *Player) advance(dt float64, in InputState, gm *GridMap, cfg Config) triggerResult {
	// Rotation. Both keys may apply.
	if in.Held(ActionTurnLeft) {
		p.Dir += cfg.RotSpeed * dt
	}
	if in.Held(ActionTurnRight) {
		p.Dir -= cfg.RotSpeed * dt
	}

	// Acceleration along the facing vector.
	fx, fz := p.Forward()
	if in.Held(ActionMoveForward) {
		p.VelX += fx * cfg.MoveSpeed * dt
		p.VelZ += fz * cfg.MoveSpeed * dt
	}
	if in.Held(ActionMoveBackward) {
		p.VelX -= fx * cfg.MoveSpeed * dt
		p.VelZ -= fz * cfg.MoveSpeed * dt
	}

	// Damping, applied every frame.
	p.VelX *= cfg.Friction
	p.VelZ *= cfg.Friction

	var blockedX, blockedZ bool
	p.X, p.Z, blockedX, blockedZ = gm.slideMove(p.X, p.Z, p.VelX*dt, p.VelZ*dt)
	if blockedX {
		p.VelX = 0
	}
	if blockedZ {
		p.VelZ = 0
	}

	// Weapon select.
	if in.Held(ActionWeapon1) {
		p.Weapon = WeaponPistol
	} else if in.Held(ActionWeapon2) {
		p.Weapon = WeaponShotgun
	}

	// Edge-triggered fire.
	if !in.Held(ActionFire) {
		p.shooting = false
		return triggerNone
	}
	if p.shooting {
		return triggerNone
	}
	p.shooting = true
	if cfg.AmmoPerShot > 0 {
		if p.Ammo < cfg.AmmoPerShot {
			return triggerDry
		}
		p.Ammo -= cfg.AmmoPerShot
	}
	return triggerFired
}
