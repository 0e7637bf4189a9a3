package game

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Phase is the top-level session state.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseGameOver       // player health hit zero; Step no longer advances anything
)

func (ph Phase) String() string {
	switch ph {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SessionStats are running totals for reports.
type SessionStats struct {
	Shots            int
	DryFires         int
	Hits             int
	Kills            int
	ProjectilesFired int
	PlayerHits       int
	DamageTaken      int
}

// Sim is the simulation context: it owns the player, the enemies and the
// projectiles, and advances them in a fixed order each frame. It is not safe
// for concurrent use.
type Sim struct {
	cfg       Config
	levelName string

	Map         *GridMap
	Player      *Player
	Enemies     []*Enemy // every enemy ever spawned, dead ones included
	Projectiles []Projectile
	SimLog      *SimLog

	live    []*Enemy // enemies still taking part; rebuilt when one dies
	log     *logrus.Entry
	frame   int
	clockMS float64
	phase   Phase
	cleared bool
	stats   SessionStats
}

// NewSim builds a simulation for lvl. A nil log discards output.
func NewSim(lvl *Level, cfg Config, log *logrus.Entry) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	s := &Sim{
		cfg:       cfg,
		levelName: lvl.Name,
		Map:       lvl.Map,
		Player:    NewPlayer(lvl.SpawnX, lvl.SpawnZ, cfg),
		SimLog:    NewSimLog(false),
		log:       log.WithField("component", "sim"),
	}
	for _, sp := range lvl.EnemySpawns {
		s.addEnemy(sp[0], sp[1])
	}
	s.log.WithFields(logrus.Fields{
		"level":   lvl.Name,
		"grid":    fmt.Sprintf("%dx%d", lvl.Map.Cols, lvl.Map.Rows),
		"enemies": len(s.Enemies),
	}).Debug("simulation created")
	return s, nil
}

// addEnemy spawns an idle enemy and registers it as live.
func (s *Sim) addEnemy(x, z float64) *Enemy {
	e := NewEnemy(len(s.Enemies), x, z, s.cfg)
	s.Enemies = append(s.Enemies, e)
	s.live = append(s.live, e)
	return e
}

// Config returns the configuration the sim runs with.
func (s *Sim) Config() Config { return s.cfg }

// LevelName returns the name of the loaded level.
func (s *Sim) LevelName() string { return s.levelName }

// Frame returns the number of frames stepped.
func (s *Sim) Frame() int { return s.frame }

// ClockMS returns the sim clock in milliseconds.
func (s *Sim) ClockMS() float64 { return s.clockMS }

// Phase returns the session phase.
func (s *Sim) Phase() Phase { return s.phase }

// Stats returns the running session totals.
func (s *Sim) Stats() SessionStats { return s.stats }

// LiveEnemies returns the enemies still in play. The slice is owned by the
// sim and only valid until the next Step.
func (s *Sim) LiveEnemies() []*Enemy { return s.live }

// HUD returns the values the heads-up display shows.
func (s *Sim) HUD() HUD {
	return HUD{Health: s.Player.Health, Ammo: s.Player.Ammo, Weapon: s.Player.Weapon}
}

// Step advances the simulation by one frame. elapsed is the wall-clock time
// since the previous call; the simulated step is clamped to MaxFrameStep so
// a stall does not teleport anything. The order is fixed: player, hitscan
// (if the player fired), enemy AI, projectiles.
func (s *Sim) Step(elapsed time.Duration, in InputState) StepResult {
	if s.phase == PhaseGameOver {
		return StepResult{Frame: s.frame, GameOver: true}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	step := elapsed
	if step > s.cfg.MaxFrameStep {
		step = s.cfg.MaxFrameStep
	}
	dt := step.Seconds()
	s.frame++
	s.clockMS += float64(elapsed) / float64(time.Millisecond)

	res := StepResult{Frame: s.frame, DT: dt}
	before := s.HUD()

	// 1. PLAYER
	switch s.Player.advance(dt, in, s.Map, s.cfg) {
	case triggerFired:
		res.Fired = true
		s.stats.Shots++
		res.Events = append(res.Events, Event{Kind: EventFired, Enemy: -1})
		s.SimLog.Add(s.frame, "P", "player", "fire", s.Player.Weapon.String(), 0)

		// 2. HITSCAN
		res.Hit = ResolveHitscan(s.Player, s.live, s.Map, s.cfg)
		s.recordHit(&res)
	case triggerDry:
		s.stats.DryFires++
		res.Events = append(res.Events, Event{Kind: EventDryFire, Enemy: -1, Value: s.Player.Ammo})
		s.SimLog.Add(s.frame, "P", "player", "dry_fire", fmt.Sprintf("ammo=%d", s.Player.Ammo), 0)
	}
	s.SimLog.AddVerbose(s.frame, "P", "move", "position",
		fmt.Sprintf("(%.2f,%.2f)", s.Player.X, s.Player.Z), s.Player.Speed())

	// 3. ENEMY AI
	for _, e := range s.live {
		prev := e.State
		e.Think(dt, s.clockMS, s.Player, s.Map, s.cfg, func(pr Projectile) {
			s.Projectiles = append(s.Projectiles, pr)
			s.stats.ProjectilesFired++
			res.Events = append(res.Events, Event{Kind: EventEnemyAttacked, Enemy: e.ID})
			s.SimLog.Add(s.frame, e.Label(), "enemy", "attack",
				fmt.Sprintf("fireball from (%.1f,%.1f)", pr.X, pr.Z), 0)
		})
		s.stateChanged(&res, e, prev)
	}

	// 4. PROJECTILES
	var hits, walls int
	s.Projectiles, hits, walls = StepProjectiles(dt, s.Projectiles, s.Player, s.Map, s.cfg)
	for i := 0; i < hits; i++ {
		res.Events = append(res.Events, Event{Kind: EventPlayerHit, Enemy: -1, Value: s.cfg.ProjectileDamage})
		s.SimLog.Add(s.frame, "P", "projectile", "player_hit", fmt.Sprintf("-%d", s.cfg.ProjectileDamage), float64(s.cfg.ProjectileDamage))
	}
	for i := 0; i < walls; i++ {
		res.Events = append(res.Events, Event{Kind: EventProjectileWall, Enemy: -1})
	}
	s.stats.PlayerHits += hits
	s.stats.DamageTaken += hits * s.cfg.ProjectileDamage

	s.finishFrame(&res, before)
	return res
}

// recordHit turns a hitscan result into events and keeps the live list
// current.
func (s *Sim) recordHit(res *StepResult) {
	h := res.Hit
	if !h.Hit {
		s.SimLog.Add(s.frame, "P", "hitscan", "miss", "", 0)
		return
	}
	s.stats.Hits++
	res.Events = append(res.Events, Event{Kind: EventEnemyHit, Enemy: h.Enemy.ID, Value: h.Enemy.HP})
	s.SimLog.Add(s.frame, h.Enemy.Label(), "hitscan", "hit",
		fmt.Sprintf("hp=%d dist=%.1f", h.Enemy.HP, h.Dist), h.Dist)
	s.stateChanged(res, h.Enemy, h.Prev)
	if !h.Killed {
		return
	}
	s.stats.Kills++
	res.Events = append(res.Events, Event{Kind: EventEnemyKilled, Enemy: h.Enemy.ID})
	s.SimLog.Add(s.frame, h.Enemy.Label(), "enemy", "killed", "", 0)
	s.log.WithField("enemy", h.Enemy.ID).Debug("enemy killed")
	s.compactLive()
}

// stateChanged records an AI transition if e left prev this frame.
func (s *Sim) stateChanged(res *StepResult, e *Enemy, prev EnemyState) {
	if e.State == prev {
		return
	}
	res.Events = append(res.Events, Event{Kind: EventEnemyStateChanged, Enemy: e.ID, From: prev, To: e.State})
	s.SimLog.Add(s.frame, e.Label(), "enemy", "state_change", fmt.Sprintf("%s → %s", prev, e.State), 0)
	s.log.WithFields(logrus.Fields{"enemy": e.ID, "from": prev, "to": e.State}).Debug("enemy state change")
}

// compactLive drops dead enemies from the live list.
func (s *Sim) compactLive() {
	kept := s.live[:0]
	for _, e := range s.live {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.live); i++ {
		s.live[i] = nil
	}
	s.live = kept
}

// finishFrame emits HUD change events and applies the end-of-session rules.
func (s *Sim) finishFrame(res *StepResult, before HUD) {
	p := s.Player
	if p.Health <= 0 {
		p.Health = 0
	}
	if p.Health != before.Health {
		res.Events = append(res.Events, Event{Kind: EventHealthChanged, Enemy: -1, Value: p.Health})
	}
	if p.Ammo != before.Ammo {
		res.Events = append(res.Events, Event{Kind: EventAmmoChanged, Enemy: -1, Value: p.Ammo})
	}
	if p.Weapon != before.Weapon {
		res.Events = append(res.Events, Event{Kind: EventWeaponChanged, Enemy: -1, Value: int(p.Weapon)})
		s.SimLog.Add(s.frame, "P", "player", "weapon", fmt.Sprintf("%s → %s", before.Weapon, p.Weapon), 0)
	}

	if !s.cleared && len(s.Enemies) > 0 && len(s.live) == 0 {
		s.cleared = true
		res.Events = append(res.Events, Event{Kind: EventLevelCleared, Enemy: -1})
		s.SimLog.Add(s.frame, "--", "session", "cleared", "", 0)
		s.log.WithField("frame", s.frame).Info("level cleared")
	}

	if p.Health == 0 {
		s.phase = PhaseGameOver
		res.GameOver = true
		res.Events = append(res.Events, Event{Kind: EventGameOver, Enemy: -1})
		s.SimLog.Add(s.frame, "--", "session", "game_over", fmt.Sprintf("clock=%.0fms", s.clockMS), s.clockMS)
		s.log.WithFields(logrus.Fields{
			"frame": s.frame,
			"kills": s.stats.Kills,
		}).Info("player died, game over")
	}
}
