package game

import "strings"

// Action is a logical input the simulation understands. The set is closed;
// mapping physical keys onto actions is the presentation layer's job.
type Action uint8

const (
	ActionTurnLeft Action = iota
	ActionTurnRight
	ActionMoveForward
	ActionMoveBackward
	ActionFire
	ActionWeapon1
	ActionWeapon2
	actionCount // sentinel
)

var actionNames = [actionCount]string{
	ActionTurnLeft:     "turn_left",
	ActionTurnRight:    "turn_right",
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionFire:         "fire",
	ActionWeapon1:      "weapon_1",
	ActionWeapon2:      "weapon_2",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// InputState is a snapshot of which actions are held this frame.
type InputState struct {
	held [actionCount]bool
}

// Input builds a snapshot with the given actions held.
func Input(actions ...Action) InputState {
	var in InputState
	for _, a := range actions {
		in.Set(a, true)
	}
	return in
}

// Set marks an action held or released.
func (in *InputState) Set(a Action, down bool) {
	if a >= actionCount {
		return
	}
	in.held[a] = down
}

// Held reports whether an action is held.
func (in InputState) Held(a Action) bool {
	if a >= actionCount {
		return false
	}
	return in.held[a]
}

// Bits packs the snapshot into a bitmask (bit i = Action i). Used by replays.
func (in InputState) Bits() uint8 {
	var b uint8
	for i, h := range in.held {
		if h {
			b |= 1 << uint(i)
		}
	}
	return b
}

// InputFromBits is the inverse of Bits.
func InputFromBits(b uint8) InputState {
	var in InputState
	for i := range in.held {
		in.held[i] = b&(1<<uint(i)) != 0
	}
	return in
}

// String lists held actions, e.g. "move_forward+fire", or "-" for none.
func (in InputState) String() string {
	var names []string
	for i, h := range in.held {
		if h {
			names = append(names, Action(i).String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "+")
}
