package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Grid-Raider/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	frames   int
	clockMS  float64

	firstAlertFrame     int
	firstKillFrame      int
	firstPlayerHitFrame int
	endFrame            int

	stateChanges int
	enemyAttacks int
	wallHits     int

	stats   game.SessionStats
	outcome game.OutcomeReason
}

// scenarios maps a scenario name to a builder for its input script.
var scenarios = map[string]func(rng *rand.Rand) game.InputScript{
	"idle": func(*rand.Rand) game.InputScript {
		return game.Hold()
	},
	// strafe-fire walks forward while sweeping left and right, tapping fire.
	"strafe-fire": func(rng *rand.Rand) game.InputScript {
		period := 8 + rng.Intn(8)
		return func(frame int) game.InputState {
			turn := game.ActionTurnLeft
			if (frame/90)%2 == 1 {
				turn = game.ActionTurnRight
			}
			if frame%period == 0 {
				return game.Input(game.ActionMoveForward, turn, game.ActionFire)
			}
			return game.Input(game.ActionMoveForward, turn)
		}
	},
	// turret spins in place and fires on a fixed cadence.
	"turret": func(rng *rand.Rand) game.InputScript {
		period := 5 + rng.Intn(10)
		return func(frame int) game.InputState {
			if frame%period == 0 {
				return game.Input(game.ActionTurnLeft, game.ActionFire)
			}
			return game.Input(game.ActionTurnLeft)
		}
	},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var scenario string
	var levelName string
	var replayFile string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 3600, "frames per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "strafe-fire", "scenario name ("+strings.Join(scenarioNames(), ", ")+")")
	flag.StringVar(&levelName, "level", "default", "builtin level name")
	flag.StringVar(&replayFile, "replay", "", "report on a recorded replay instead of running scenarios")
	flag.Parse()

	if replayFile != "" {
		rs, err := runReplay(replayFile)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("=== Headless Replay Report ===\n")
		fmt.Printf("replay=%s\n\n", replayFile)
		printRun(rs)
		return
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if _, ok := scenarios[scenario]; !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, strings.Join(scenarioNames(), ", "))
		return
	}
	lvl, err := game.BuiltinLevel(levelName)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("scenario=%s level=%s runs=%d frames=%d seed_base=%d seed_step=%d\n\n", scenario, levelName, runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(scenario, lvl, i+1, seed, frames)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runScenario plays one session. The seed picks the scenario's cadence and
// jitters every frame's elapsed time between 10ms and 33ms, like a browser
// frame loop under load.
func runScenario(scenario string, lvl *game.Level, runIndex int, seed int64, frames int) runStats {
	rng := rand.New(rand.NewSource(seed))
	script := scenarios[scenario](rng)
	ts := game.NewTestSim(game.WithLevel(lvl))

	for i := 0; i < frames && ts.Phase() == game.PhasePlaying; i++ {
		elapsed := time.Duration(10+rng.Intn(24)) * time.Millisecond
		ts.Step(elapsed, script(ts.Frame()+1))
		if ts.Outcome().Outcome == game.OutcomeCleared {
			break
		}
	}
	return collectStats(ts, runIndex, seed)
}

func runReplay(file string) (runStats, error) {
	rp, err := game.LoadReplay(file)
	if err != nil {
		return runStats{}, err
	}
	lvl, err := game.BuiltinLevel(rp.Level)
	if err != nil {
		return runStats{}, fmt.Errorf("replay level: %w", err)
	}
	ts := game.NewTestSim(game.WithLevel(lvl), game.WithConfig(rp.Config))
	rp.Drive(ts.Sim)
	return collectStats(ts, 1, 0), nil
}

func collectStats(ts *game.TestSim, runIndex int, seed int64) runStats {
	entries := ts.SimLog.Entries()
	end := firstFrame(entries, "session", "cleared", "")
	if end < 0 {
		end = firstFrame(entries, "session", "game_over", "")
	}
	return runStats{
		runIndex:            runIndex,
		seed:                seed,
		frames:              ts.Frame(),
		clockMS:             ts.ClockMS(),
		firstAlertFrame:     firstFrame(entries, "enemy", "state_change", "idle → chase"),
		firstKillFrame:      firstFrame(entries, "enemy", "killed", ""),
		firstPlayerHitFrame: firstFrame(entries, "projectile", "player_hit", ""),
		endFrame:            end,
		stateChanges:        ts.SimLog.CountCategory("enemy", "state_change"),
		enemyAttacks:        ts.SimLog.CountCategory("enemy", "attack"),
		wallHits:            wallHits(ts),
		stats:               ts.Stats(),
		outcome:             ts.Outcome(),
	}
}

// wallHits counts projectiles lost to walls: every enemy shot that did not
// reach the player and is no longer in flight.
func wallHits(ts *game.TestSim) int {
	fired := ts.SimLog.CountCategory("enemy", "attack")
	hit := ts.SimLog.CountCategory("projectile", "player_hit")
	return max(0, fired-hit-len(ts.Projectiles))
}

func firstFrame(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Frame
		}
	}
	return -1
}

func accuracy(s game.SessionStats) float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots) * 100
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s frames=%d clock=%.0fms end_frame=%d\n", rs.outcome.Outcome, rs.frames, rs.clockMS, rs.endFrame)
	fmt.Printf("phase_markers: first_alert=%d first_kill=%d first_player_hit=%d\n",
		rs.firstAlertFrame, rs.firstKillFrame, rs.firstPlayerHitFrame)
	fmt.Printf("player: shots=%d dry_fires=%d hits=%d kills=%d accuracy=%.0f%% damage_taken=%d\n",
		rs.stats.Shots, rs.stats.DryFires, rs.stats.Hits, rs.stats.Kills, accuracy(rs.stats), rs.stats.DamageTaken)
	fmt.Printf("enemies: attacks=%d projectiles_on_target=%d projectiles_lost=%d state_changes=%d\n",
		rs.enemyAttacks, rs.stats.PlayerHits, rs.wallHits, rs.stateChanges)
	fmt.Printf("summary: %s\n", rs.outcome.Description)
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	totalShots := 0
	totalHits := 0
	totalKills := 0
	totalDamage := 0
	totalAttacks := 0
	alertFrames := make([]int, 0, len(all))
	killFrames := make([]int, 0, len(all))
	endFrames := make([]int, 0, len(all))

	for _, rs := range all {
		outcomes[rs.outcome.Outcome.String()]++
		totalShots += rs.stats.Shots
		totalHits += rs.stats.Hits
		totalKills += rs.stats.Kills
		totalDamage += rs.stats.DamageTaken
		totalAttacks += rs.enemyAttacks
		if rs.firstAlertFrame >= 0 {
			alertFrames = append(alertFrames, rs.firstAlertFrame)
		}
		if rs.firstKillFrame >= 0 {
			killFrames = append(killFrames, rs.firstKillFrame)
		}
		if rs.endFrame >= 0 {
			endFrames = append(endFrames, rs.endFrame)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes=[%s]\n", len(all), joinCounts(outcomes))
	fmt.Printf("avg_per_run: shots=%.1f hits=%.1f kills=%.1f damage_taken=%.1f enemy_attacks=%.1f\n",
		avg(totalShots, len(all)), avg(totalHits, len(all)), avg(totalKills, len(all)), avg(totalDamage, len(all)), avg(totalAttacks, len(all)))
	overall := 0.0
	if totalShots > 0 {
		overall = float64(totalHits) / float64(totalShots) * 100
	}
	fmt.Printf("overall_accuracy=%.1f%%\n", overall)
	fmt.Printf("phase_marker_avg_frames: first_alert=%s first_kill=%s session_end=%s\n",
		avgFrameString(alertFrames), avgFrameString(killFrames), avgFrameString(endFrames))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
