package view

import (
	"sort"

	"github.com/Garsondee/Grid-Raider/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyMap binds physical keys to simulation actions. Several keys may map to
// the same action.
type KeyMap map[ebiten.Key]game.Action

// DefaultKeyMap is the classic layout: arrows to move and turn, space to
// fire, 1/2 to switch weapons. WASD is bound as well.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ebiten.KeyArrowLeft:  game.ActionTurnLeft,
		ebiten.KeyArrowRight: game.ActionTurnRight,
		ebiten.KeyArrowUp:    game.ActionMoveForward,
		ebiten.KeyArrowDown:  game.ActionMoveBackward,
		ebiten.KeyA:          game.ActionTurnLeft,
		ebiten.KeyD:          game.ActionTurnRight,
		ebiten.KeyW:          game.ActionMoveForward,
		ebiten.KeyS:          game.ActionMoveBackward,
		ebiten.KeySpace:      game.ActionFire,
		ebiten.KeyDigit1:     game.ActionWeapon1,
		ebiten.KeyDigit2:     game.ActionWeapon2,
	}
}

// Poll builds the input snapshot for this frame. pressed reports whether a
// key is currently held; the game passes ebiten.IsKeyPressed.
func (km KeyMap) Poll(pressed func(ebiten.Key) bool) game.InputState {
	var in game.InputState
	for k, a := range km {
		if pressed(k) {
			in.Set(a, true)
		}
	}
	return in
}

// KeysFor lists the keys bound to an action, sorted.
func (km KeyMap) KeysFor(a game.Action) []ebiten.Key {
	var keys []ebiten.Key
	for k, act := range km {
		if act == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
