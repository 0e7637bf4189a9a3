package view

import (
	"image/color"
	"math"

	"github.com/Garsondee/Grid-Raider/internal/game"
)

const (
	recoilDecay = 6.0  // recoil units per second
	hurtDecay   = 2.0  // damage flash units per second
	bobRate     = 4.0  // weapon bob radians per unit of distance walked
	recoilKick  = 14.0 // pixels the weapon jumps on a shot
	bobAmp      = 3.0  // pixels
)

// Anim holds presentation-only animation state: weapon recoil and bob, and
// the red flash when the player is burned. The simulation never reads it.
type Anim struct {
	Recoil float64 // 1 right after a shot, decays to 0
	Hurt   float64 // 1 right after a hit, decays to 0
	Bob    float64 // phase
}

// Apply reacts to the events of one frame.
func (a *Anim) Apply(res game.StepResult) {
	if res.Fired {
		a.Recoil = 1
	}
	if res.Has(game.EventPlayerHit) {
		a.Hurt = 1
	}
}

// Tick decays the effects over dt seconds and advances the bob by the
// distance walked at speed.
func (a *Anim) Tick(dt, speed float64) {
	a.Recoil = math.Max(0, a.Recoil-recoilDecay*dt)
	a.Hurt = math.Max(0, a.Hurt-hurtDecay*dt)
	a.Bob = math.Mod(a.Bob+speed*dt*bobRate, 2*math.Pi)
}

// WeaponOffset is the on-screen displacement of the weapon sprite.
func (a *Anim) WeaponOffset() (dx, dy float64) {
	return math.Cos(a.Bob) * bobAmp, a.Recoil*recoilKick + math.Abs(math.Sin(a.Bob))*bobAmp
}

// HurtAlpha is the opacity of the damage overlay.
func (a *Anim) HurtAlpha() uint8 {
	return uint8(a.Hurt * 96)
}

// HurtColor is the damage overlay colour. It is non-premultiplied so the red
// fades with the alpha.
func (a *Anim) HurtColor() color.Color {
	return color.NRGBA{R: 160, A: a.HurtAlpha()}
}
