package game

import "fmt"

// UserError is an error that is safe to return in a response.
// No rejection mutates table state.
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// caller-visible, recoverable error conditions
const (
	// ErrNotYourTurn happens when a player acts out of turn
	ErrNotYourTurn = UserError("it is not your turn")

	// ErrGameNotInProgress happens when an action arrives and no hand is being played
	ErrGameNotInProgress = UserError("game is not in progress")

	// ErrInsufficientChips happens when an action costs more than the player's stack
	ErrInsufficientChips = UserError("not enough chips")

	// ErrInvalidAmount happens when a raise amount is missing or below the minimum
	ErrInvalidAmount = UserError("invalid raise amount")

	// ErrUnknownAction happens when an action's type is not one the table knows
	ErrUnknownAction = UserError("unknown action")

	// ErrPlayerNotSeated happens when the player is not a member of the lobby
	ErrPlayerNotSeated = UserError("player is not seated at this table")

	// ErrLobbyFull happens when a player tries to join a lobby at max capacity
	ErrLobbyFull = UserError("lobby is full")

	// ErrLobbyNotFound happens when the named lobby does not exist
	ErrLobbyNotFound = UserError("lobby not found")

	// ErrLobbyAlreadyExists happens when creating a lobby whose name is taken
	ErrLobbyAlreadyExists = UserError("lobby already exists")

	// ErrAlreadySeated happens when a player joins a lobby twice
	ErrAlreadySeated = UserError("player is already seated at this table")

	// ErrHandInProgress happens when a hand is started while one is being played
	ErrHandInProgress = UserError("a hand is already in progress")

	// ErrNotEnoughPlayers happens when a hand is started with fewer than two funded seats
	ErrNotEnoughPlayers = UserError("at least two players with chips are required")
)

// InternalConsistencyError is an unexpected state corruption, i.e., an
// unparseable stored card string. It is logged and surfaced, never silently
// turned into wrong cards.
type InternalConsistencyError struct {
	Reason string
	Err    error
}

func (e *InternalConsistencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal consistency error: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("internal consistency error: %s", e.Reason)
}

// Unwrap supports errors.Is/As
func (e *InternalConsistencyError) Unwrap() error {
	return e.Err
}
