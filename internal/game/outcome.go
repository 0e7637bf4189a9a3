package game

import "fmt"

type SessionOutcome int

const (
	OutcomeInProgress SessionOutcome = iota
	OutcomeCleared
	OutcomePlayerDead
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeCleared:
		return "cleared"
	case OutcomePlayerDead:
		return "player_dead"
	default:
		return "unknown"
	}
}

type OutcomeReason struct {
	Outcome      SessionOutcome
	EnemiesTotal int
	EnemiesAlive int
	Health       int
	Description  string
}

// DetermineOutcome classifies a session from the player and the enemy set.
// A dead player outranks a cleared level: dying on the frame the last enemy
// falls is still a loss.
func DetermineOutcome(p *Player, enemies []*Enemy) OutcomeReason {
	alive := 0
	for _, e := range enemies {
		if e.Alive() {
			alive++
		}
	}
	r := OutcomeReason{
		EnemiesTotal: len(enemies),
		EnemiesAlive: alive,
		Health:       p.Health,
	}
	switch {
	case p.Health <= 0:
		r.Outcome = OutcomePlayerDead
		r.Description = fmt.Sprintf("player died with %d/%d enemies remaining", alive, len(enemies))
	case len(enemies) > 0 && alive == 0:
		r.Outcome = OutcomeCleared
		r.Description = fmt.Sprintf("all %d enemies dead, player at %d health", len(enemies), p.Health)
	default:
		r.Outcome = OutcomeInProgress
		r.Description = fmt.Sprintf("%d/%d enemies alive, player at %d health", alive, len(enemies), p.Health)
	}
	return r
}

// Outcome reports how the session currently stands.
func (s *Sim) Outcome() OutcomeReason {
	return DetermineOutcome(s.Player, s.Enemies)
}
