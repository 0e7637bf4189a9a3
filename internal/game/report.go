package game

import (
	"fmt"
	"strings"
)

// SessionReport builds the plain-text debug report for a session: totals,
// outcome, current state and the last lastFrames frames of the SimLog.
func (s *Sim) SessionReport(lastFrames int) string {
	if lastFrames <= 0 {
		lastFrames = 120
	}
	toFrame := s.frame
	fromFrame := toFrame - lastFrames + 1
	if fromFrame < 0 {
		fromFrame = 0
	}

	st := s.stats
	out := s.Outcome()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Grid-Raider session report ---\n")
	fmt.Fprintf(&b, "level=%s frames=%d clock=%.1fs phase=%s\n", s.levelName, s.frame, s.clockMS/1000, s.phase)
	fmt.Fprintf(&b, "outcome=%s (%s)\n\n", out.Outcome, out.Description)

	accuracy := 0.0
	if st.Shots > 0 {
		accuracy = float64(st.Hits) / float64(st.Shots) * 100
	}
	b.WriteString("== totals ==\n")
	fmt.Fprintf(&b, "shots=%d hits=%d accuracy=%.0f%% kills=%d dry=%d\n", st.Shots, st.Hits, accuracy, st.Kills, st.DryFires)
	fmt.Fprintf(&b, "enemy_projectiles=%d player_hits=%d damage_taken=%d\n\n", st.ProjectilesFired, st.PlayerHits, st.DamageTaken)

	b.WriteString("== state ==\n")
	b.WriteString(s.SimLog.Summary(s.frame, s.Player, s.Enemies, len(s.Projectiles)))
	for _, e := range s.Enemies {
		fmt.Fprintf(&b, "  %-4s %-6s hp=%3d pos=(%.1f,%.1f) dist=%.1f\n",
			e.Label(), e.State, e.HP, e.X, e.Z, e.DistanceTo(s.Player.X, s.Player.Z))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "== log F=%d..%d ==\n", fromFrame, toFrame)
	tail := s.SimLog.FormatRange(fromFrame, toFrame)
	if tail == "" {
		b.WriteString("(no events)\n")
	} else {
		b.WriteString(tail)
	}
	return b.String()
}
