package view

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Grid-Raider/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	feedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 11
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Actor   string // "P", "E2", "--"
	Kind    game.EventKind
	Message string
}

// Feed is a ring buffer of recent gameplay events rendered beside the map.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (f *Feed) Add(frame int, actor string, kind game.EventKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Frame:   frame,
		Actor:   actor,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Len returns the number of stored entries.
func (f *Feed) Len() int { return f.count }

// AddStep records the interesting events of one frame. HUD bookkeeping and
// wall impacts are left out; they would drown everything else.
func (f *Feed) AddStep(res game.StepResult) {
	for _, ev := range res.Events {
		actor := "P"
		if ev.Enemy >= 0 {
			actor = fmt.Sprintf("E%d", ev.Enemy)
		}
		var msg string
		switch ev.Kind {
		case game.EventFired:
			if res.Hit.Hit {
				continue // reported as the hit
			}
			msg = "shot misses"
		case game.EventDryFire:
			msg = "click: out of ammo"
		case game.EventEnemyHit:
			msg = fmt.Sprintf("hit, hp %d", ev.Value)
		case game.EventEnemyKilled:
			msg = "down"
		case game.EventEnemyStateChanged:
			if ev.To == game.EnemyDead {
				continue // reported as the kill
			}
			msg = fmt.Sprintf("%s → %s", ev.From, ev.To)
		case game.EventEnemyAttacked:
			msg = "throws a fireball"
		case game.EventPlayerHit:
			msg = fmt.Sprintf("burned for %d", ev.Value)
		case game.EventWeaponChanged:
			msg = fmt.Sprintf("switches to %s", game.WeaponID(ev.Value))
		case game.EventLevelCleared:
			actor, msg = "--", "level cleared"
		case game.EventGameOver:
			actor, msg = "--", "game over"
		default:
			continue
		}
		f.Add(res.Frame, actor, ev.Kind, msg)
	}
}

// feedColor picks the marker colour for an entry.
func feedColor(k game.EventKind) color.Color {
	switch k {
	case game.EventPlayerHit, game.EventGameOver:
		return colornames.Orangered
	case game.EventEnemyHit, game.EventEnemyKilled:
		return colornames.Limegreen
	case game.EventLevelCleared:
		return colornames.Gold
	case game.EventEnemyAttacked, game.EventEnemyStateChanged:
		return colornames.Mediumpurple
	default:
		return colornames.Lightsteelblue
	}
}

// Draw renders the feed panel at panelX, filling the panel height.
func (f *Feed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 70, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 30, G: 20, B: 30, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+feedPanelWidth), 16, 1.0, color.RGBA{R: 80, G: 60, B: 80, A: 200}, false)

	entries := f.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / feedLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 40, G: 30, B: 40, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, feedColor(e.Kind), false)
		line := fmt.Sprintf("%5d [%s] %s", e.Frame, e.Actor, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += feedLineHeight
	}
}
