package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// TestSim is a headless harness around Sim used by tests and the headless
// report. It drives frames at a fixed elapsed time and logs to the sim's
// SimLog.
type TestSim struct {
	*Sim
	FrameTime time.Duration

	level   *Level
	cfg     Config
	verbose bool
	log     *logrus.Entry
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // level, config, verbose: applied before the sim exists
	simOptActor                      // player/enemy placement: applied after the sim is built
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithLevel uses a prebuilt level instead of the default map.
func WithLevel(lvl *Level) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.level = lvl
	}}
}

// WithLayout builds the level from ASCII rows (see LayoutFromRows). It
// panics on a malformed layout; this is test setup.
func WithLayout(tileSize float64, rows ...string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		lvl, err := LayoutFromRows(tileSize, rows...).Build()
		if err != nil {
			panic(fmt.Sprintf("WithLayout: %v", err))
		}
		ts.level = lvl
	}}
}

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithVerbose enables per-frame verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithFrameTime sets the elapsed time fed to each Step.
func WithFrameTime(d time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.FrameTime = d
	}}
}

// WithLogger routes the sim's structured logs to log.
func WithLogger(log *logrus.Entry) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.log = log
	}}
}

// WithPlayerAt moves the player to (x,z) facing dir.
func WithPlayerAt(x, z, dir float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Player.X, ts.Player.Z, ts.Player.Dir = x, z, dir
	}}
}

// WithEnemyAt spawns an extra enemy at (x,z) in the given state.
func WithEnemyAt(x, z float64, state EnemyState) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		e := ts.addEnemy(x, z)
		e.State = state
		if state == EnemyDead {
			e.HP = 0
			ts.compactLive()
		}
	}}
}

// WithoutEnemies removes every enemy spawned by the level.
func WithoutEnemies() SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Enemies = nil
		ts.live = nil
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes: infrastructure, then actors.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		FrameTime: time.Second / 60,
		cfg:       DefaultConfig(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.level == nil {
		ts.level = DefaultLevel()
	}
	sim, err := NewSim(ts.level, ts.cfg, ts.log)
	if err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	sim.SimLog = NewSimLog(ts.verbose)
	ts.Sim = sim
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

// InputScript returns the input for a given frame (1-based).
type InputScript func(frame int) InputState

// Hold returns a script that holds the same actions every frame.
func Hold(actions ...Action) InputScript {
	in := Input(actions...)
	return func(int) InputState { return in }
}

// RunFrames advances the simulation n frames with the given script.
// Returns the results of every frame.
func (ts *TestSim) RunFrames(n int, script InputScript) []StepResult {
	out := make([]StepResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ts.Step(ts.FrameTime, script(ts.Frame()+1)))
	}
	return out
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int, script InputScript) int {
	for i := 0; i < maxFrames; i++ {
		ts.Step(ts.FrameTime, script(ts.Frame()+1))
		if predicate(ts) {
			return ts.Frame()
		}
	}
	return -1
}

// EnemyByID returns the enemy with the given ID, or nil.
func (ts *TestSim) EnemyByID(id int) *Enemy {
	for _, e := range ts.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
