// Package action defines the commands a player may submit to the table.
package action

import (
	"encoding/json"
	"fmt"
)

// Type identifies an action a player can take
type Type string

// action type constants
const (
	Call  Type = "call"
	Fold  Type = "fold"
	Raise Type = "raise"
)

var allowedTypes = map[Type]bool{
	Call:  true,
	Fold:  true,
	Raise: true,
}

// Action is a tagged command submitted by a player.
// Amount is only meaningful for a raise.
type Action struct {
	Type   Type
	Amount int
}

// FromString returns an action type for the given string
func FromString(s string) (Type, error) {
	if _, ok := allowedTypes[Type(s)]; ok {
		return Type(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (t Type) String() string {
	switch t {
	case Call:
		return "Call"
	case Fold:
		return "Fold"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action type into JSON
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(t),
		Name: t.String(),
	})
}

// LogMessage returns a message formatted for the game log
func (t Type) LogMessage(amount int) string {
	switch t {
	case Call:
		return "called"
	case Fold:
		return "folded"
	case Raise:
		return fmt.Sprintf("raised by %d", amount)
	}

	return ""
}
