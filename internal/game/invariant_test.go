package game

import (
	"math/rand"
	"testing"
)

// --- Invariant helpers ---

// allowedTransition lists the AI edges the state machine may take. Hits can
// force any live state to chase or dead; nothing leaves dead.
func allowedTransition(from, to EnemyState) bool {
	switch from {
	case EnemyIdle:
		return to == EnemyChase || to == EnemyDead
	case EnemyChase:
		return to == EnemyAttack || to == EnemyDead
	case EnemyAttack:
		return to == EnemyChase || to == EnemyDead
	default:
		return false
	}
}

// randomScript returns a seeded script that holds random action sets for
// random stretches of frames.
func randomScript(seed int64) InputScript {
	rng := rand.New(rand.NewSource(seed))
	var cur InputState
	left := 0
	return func(int) InputState {
		if left == 0 {
			cur = InputState{}
			for _, a := range Actions() {
				if rng.Intn(3) == 0 {
					cur.Set(a, true)
				}
			}
			if rng.Intn(2) == 0 {
				cur.Set(ActionMoveForward, true)
				cur.Set(ActionMoveBackward, false)
			}
			left = 5 + rng.Intn(40)
		}
		left--
		return cur
	}
}

// checkFrame asserts the per-frame invariants after one Step.
func checkFrame(t *testing.T, ts *TestSim, res StepResult, prevHealth int) {
	t.Helper()
	cfg := ts.Config()
	p := ts.Player

	if ts.Map.IsSolid(p.X, p.Z) {
		t.Fatalf("F=%d: player inside a wall at (%.2f,%.2f)", res.Frame, p.X, p.Z)
	}
	if p.Health < 0 || p.Health > cfg.PlayerHealth {
		t.Fatalf("F=%d: health %d out of range", res.Frame, p.Health)
	}
	if p.Health > prevHealth || (prevHealth-p.Health)%cfg.ProjectileDamage != 0 && p.Health != 0 {
		t.Fatalf("F=%d: health went %d → %d", res.Frame, prevHealth, p.Health)
	}
	if p.Ammo < 0 || p.Ammo > cfg.PlayerAmmo {
		t.Fatalf("F=%d: ammo %d out of range", res.Frame, p.Ammo)
	}
	for _, pr := range ts.Projectiles {
		if ts.Map.IsSolid(pr.X, pr.Z) {
			t.Fatalf("F=%d: projectile left inside a wall at (%.2f,%.2f)", res.Frame, pr.X, pr.Z)
		}
	}
	for _, e := range ts.LiveEnemies() {
		if !e.Alive() {
			t.Fatalf("F=%d: dead enemy %s still live", res.Frame, e.Label())
		}
	}
	for _, ev := range res.Events {
		if ev.Kind == EventEnemyStateChanged && !allowedTransition(ev.From, ev.To) {
			t.Fatalf("F=%d: E%d illegal transition %s → %s", res.Frame, ev.Enemy, ev.From, ev.To)
		}
	}
	if res.Count(EventFired) > 1 {
		t.Fatalf("F=%d: more than one shot in a frame", res.Frame)
	}
}

func TestInvariant_RandomPlay(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		ts := NewTestSim(func() SimOption {
			cfg := DefaultConfig()
			cfg.AmmoPerShot = 1
			return WithConfig(cfg)
		}())
		script := randomScript(seed)

		prevFire := false
		prevHealth := ts.Player.Health
		dead := map[int]bool{}
		for i := 0; i < 3000 && ts.Phase() == PhasePlaying; i++ {
			in := script(ts.Frame() + 1)
			res := ts.Step(ts.FrameTime, in)
			checkFrame(t, ts, res, prevHealth)

			if res.Fired && (prevFire || !in.Held(ActionFire)) {
				t.Fatalf("seed %d F=%d: shot without a fresh press", seed, res.Frame)
			}
			for _, e := range ts.Enemies {
				if dead[e.ID] && e.State != EnemyDead {
					t.Fatalf("seed %d F=%d: %s came back to life", seed, res.Frame, e.Label())
				}
				if e.State == EnemyDead {
					dead[e.ID] = true
				}
			}
			prevFire = in.Held(ActionFire)
			prevHealth = ts.Player.Health
		}
		st := ts.Stats()
		if st.Shots+st.DryFires == 0 {
			t.Fatalf("seed %d: random play never pulled the trigger", seed)
		}
		if ts.Player.Ammo != ts.Config().PlayerAmmo-st.Shots {
			t.Fatalf("seed %d: ammo %d does not match %d shots", seed, ts.Player.Ammo, st.Shots)
		}
		t.Logf("seed %d: %+v outcome=%s", seed, st, ts.Outcome().Outcome)
	}
}

func TestInvariant_ClockMonotonic(t *testing.T) {
	ts := NewTestSim()
	script := randomScript(99)
	prev := ts.ClockMS()
	for i := 0; i < 600; i++ {
		ts.Step(ts.FrameTime, script(i+1))
		if ts.ClockMS() < prev {
			t.Fatalf("clock went backwards: %.2f → %.2f", prev, ts.ClockMS())
		}
		prev = ts.ClockMS()
	}
}

func TestInvariant_DamageIgnoredOnceDead(t *testing.T) {
	ts := newDuelSim(t)
	ts.Enemies[0].HP = 10
	ts.Step(ts.FrameTime, Input(ActionFire))
	if ts.Enemies[0].State != EnemyDead {
		t.Fatal("expected the imp to die")
	}
	hp := ts.Enemies[0].HP
	for i := 0; i < 5; i++ {
		ts.Step(ts.FrameTime, InputState{})
		res := ts.Step(ts.FrameTime, Input(ActionFire))
		if res.Hit.Hit {
			t.Fatal("hitscan hit a corpse")
		}
	}
	if ts.Enemies[0].HP != hp {
		t.Fatalf("corpse hp changed %d → %d", hp, ts.Enemies[0].HP)
	}
}
