package game

import (
	"strings"
	"testing"
)

func TestDetermineOutcome(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(0, 0, cfg)
	a, b := NewEnemy(0, 0, 0, cfg), NewEnemy(1, 0, 0, cfg)

	if o := DetermineOutcome(p, []*Enemy{a, b}).Outcome; o != OutcomeInProgress {
		t.Fatalf("outcome=%s, want in_progress", o)
	}
	a.TakeDamage(100)
	b.TakeDamage(100)
	r := DetermineOutcome(p, []*Enemy{a, b})
	if r.Outcome != OutcomeCleared || r.EnemiesAlive != 0 || r.EnemiesTotal != 2 {
		t.Fatalf("got %+v, want cleared", r)
	}
	p.Health = 0
	if o := DetermineOutcome(p, []*Enemy{a, b}).Outcome; o != OutcomePlayerDead {
		t.Fatalf("dying on the clearing frame is still a loss, got %s", o)
	}
	p.Health = 50
	if o := DetermineOutcome(p, nil).Outcome; o != OutcomeInProgress {
		t.Fatalf("a level without enemies is never cleared, got %s", o)
	}
}

func TestSessionReport(t *testing.T) {
	ts := newDuelSim(t)
	ts.Enemies[0].HP = 15
	ts.Step(ts.FrameTime, Input(ActionFire))
	ts.Step(ts.FrameTime, InputState{})
	ts.Step(ts.FrameTime, Input(ActionFire))

	report := ts.SessionReport(50)
	for _, want := range []string{
		"session report",
		"shots=2 hits=2 accuracy=100% kills=1",
		"outcome=cleared",
		"E0",
		"killed",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSessionReport_EmptySession(t *testing.T) {
	ts := NewTestSim(WithoutEnemies())
	report := ts.SessionReport(0)
	if !strings.Contains(report, "(no events)") {
		t.Fatalf("expected an empty log tail:\n%s", report)
	}
	if !strings.Contains(report, "accuracy=0%") {
		t.Fatalf("zero shots should report 0%% accuracy:\n%s", report)
	}
}
