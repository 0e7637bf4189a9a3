package game

// EventKind classifies something observable that happened during a frame.
type EventKind uint8

const (
	EventFired             EventKind = iota // player pulled the trigger
	EventDryFire                            // trigger pulled without enough ammo
	EventEnemyHit                           // hitscan struck an enemy
	EventEnemyKilled                        // an enemy reached zero HP
	EventEnemyStateChanged                  // AI transition
	EventEnemyAttacked                      // an enemy fired a projectile
	EventPlayerHit                          // a projectile struck the player
	EventProjectileWall                     // a projectile struck a wall
	EventHealthChanged                      // HUD: player health differs from last frame
	EventAmmoChanged                        // HUD: ammo differs from last frame
	EventWeaponChanged                      // HUD: equipped weapon differs from last frame
	EventLevelCleared                       // last enemy died
	EventGameOver                           // player health reached zero
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventDryFire:
		return "dry_fire"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemyStateChanged:
		return "enemy_state"
	case EventEnemyAttacked:
		return "enemy_attacked"
	case EventPlayerHit:
		return "player_hit"
	case EventProjectileWall:
		return "projectile_wall"
	case EventHealthChanged:
		return "health_changed"
	case EventAmmoChanged:
		return "ammo_changed"
	case EventWeaponChanged:
		return "weapon_changed"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one entry in a StepResult. Enemy is -1 when no enemy is involved.
type Event struct {
	Kind  EventKind
	Enemy int
	From  EnemyState // EventEnemyStateChanged only
	To    EnemyState // EventEnemyStateChanged only
	Value int        // new HP / health / ammo / weapon, depending on Kind
}

// HUD is the set of values the heads-up display shows.
type HUD struct {
	Health int
	Ammo   int
	Weapon WeaponID
}

// StepResult reports what one Step did.
type StepResult struct {
	Frame    int
	DT       float64 // clamped seconds actually simulated
	Events   []Event
	Fired    bool
	Hit      HitResult
	GameOver bool
}

// Has reports whether the result contains at least one event of kind k.
func (r StepResult) Has(k EventKind) bool {
	return r.Count(k) > 0
}

// Count returns how many events of kind k the result contains.
func (r StepResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
