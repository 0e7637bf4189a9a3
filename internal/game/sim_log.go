package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Frame    int
	Actor    string  // "P" for the player, "E0".."En" for enemies, "--" for global events
	Category string  // player, enemy, hitscan, projectile, session, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] E1   enemy      state_change     chase → attack
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-4s %-10s %-16s %s",
		e.Frame, e.Actor, e.Category, e.Key, e.Value)
}

// is reports whether the entry has the given category and key. Empty
// arguments match anything.
func (e SimLogEntry) is(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// SimLog collects structured events during a simulation. It is unbounded and
// machine-readable; the on-screen feed in the view package is the bounded one.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame movement entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{frame, actor, category, key, value, numVal})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, actor, category, key, value string, numVal float64) {
	if sl.verbose {
		sl.Add(frame, actor, category, key, value, numVal)
	}
}

// Entries returns all recorded entries in the order they were added.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// where returns the entries keep accepts, in order.
func (sl *SimLog) where(keep func(SimLogEntry) bool) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries matching category and key; empty matches any.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.is(category, key) })
}

// FilterActor returns entries for one actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Actor == label })
}

// CountCategory returns how many entries match category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.is(category, key) {
			n++
		}
	}
	return n
}

// HasEntry reports whether some entry matches category and key and has
// valueSubstr in its value.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.is(category, key) && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

func writeEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format renders the whole log for t.Log output.
func (sl *SimLog) Format() string {
	return writeEntries(sl.entries)
}

// FormatRange renders the entries of frames [from, to].
func (sl *SimLog) FormatRange(from, to int) string {
	return writeEntries(sl.where(func(e SimLogEntry) bool { return e.Frame >= from && e.Frame <= to }))
}

// Summary describes the player, the enemy states and the projectiles in
// flight at a frame.
func (sl *SimLog) Summary(frame int, p *Player, enemies []*Enemy, projectiles int) string {
	var counts [EnemyDead + 1]int
	for _, e := range enemies {
		counts[e.State]++
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- F=%04d ---\n", frame)
	fmt.Fprintf(&sb, "player   (%.1f,%.1f) dir=%.2f health=%d ammo=%d %s\n",
		p.X, p.Z, p.Dir, p.Health, p.Ammo, p.Weapon)
	sb.WriteString("enemies ")
	for st, n := range counts {
		if n > 0 {
			fmt.Fprintf(&sb, " %s=%d", EnemyState(st), n)
		}
	}
	fmt.Fprintf(&sb, "\nin flight %d\n", projectiles)
	return sb.String()
}
