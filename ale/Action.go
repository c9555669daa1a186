// Package ale defines the types exchanged with an Arcade Learning
// Environment style emulator: joystick actions and raw palette-coded
// screens.
package ale

import (
	"fmt"
	"strings"
)

// Action is a joystick action for player A
type Action int

// The full ALE action set. Games usually expose a subset of these as
// their legal actions.
const (
	Noop Action = iota
	Fire
	Up
	Right
	Left
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpFire
	RightFire
	LeftFire
	DownFire
	UpRightFire
	UpLeftFire
	DownRightFire
	DownLeftFire
)

// NamePrefixA prefixes the name of each player A action
const NamePrefixA = "PLAYER_A_"

var actionNames = [...]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN", "UPRIGHT", "UPLEFT",
	"DOWNRIGHT", "DOWNLEFT", "UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

// Minimal returns the minimal action set shared by all games
func Minimal() []Action {
	return []Action{Noop, Fire, Right, Left}
}

// Full returns the complete ALE action set
func Full() []Action {
	actions := make([]Action, len(actionNames))
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// Valid returns whether a is one of the ALE actions
func (a Action) Valid() bool {
	return a >= 0 && int(a) < len(actionNames)
}

// String returns the emulator name of the action, e.g. PLAYER_A_FIRE
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("%vUNKNOWN(%d)", NamePrefixA, int(a))
	}
	return NamePrefixA + actionNames[a]
}

// ParseAction parses an action from its name. Both the prefixed
// emulator name (PLAYER_A_FIRE) and the short name (FIRE) are accepted.
func ParseAction(name string) (Action, error) {
	short := strings.TrimPrefix(strings.ToUpper(name), NamePrefixA)
	for i, n := range actionNames {
		if n == short {
			return Action(i), nil
		}
	}
	return Noop, fmt.Errorf("parseAction: no such action %q", name)
}

// MarshalText implements encoding.TextMarshaler so that actions appear
// by name in configuration files
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("marshalText: invalid action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
