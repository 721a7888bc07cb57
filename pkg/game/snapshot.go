package game

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/game/potledger"
)

// Snapshot is a read-only projection of a table. It carries no behavior and
// is safe to serialize over any transport. Hole cards are only populated for
// the seat belonging to the requesting viewer.
type Snapshot struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Status      Status `json:"status"`
	RoundNumber int `json:"roundNumber,omitempty"`
	// Street is nil when no hand is in progress
	Street *Street `json:"street,omitempty"`
	// DealerPosition is -1 when no hand is in progress
	DealerPosition int             `json:"dealerPosition"`
	Pot            int             `json:"pot"`
	CurrentBet     int             `json:"currentBet"`
	SmallBlind     int             `json:"smallBlind"`
	BigBlind       int             `json:"bigBlind"`
	Community      deck.Hand       `json:"community"`
	CommunityText  string          `json:"communityText"`
	Pots           []potledger.Pot `json:"pots,omitempty"`
	Seats          []SeatSnapshot  `json:"seats"`
}

// SeatSnapshot is the public view of a seat, plus the viewer's own hole cards
type SeatSnapshot struct {
	PlayerID    int64     `json:"playerId"`
	DisplayName string    `json:"displayName"`
	Position    int       `json:"position"`
	Chips       int       `json:"chips"`
	Bet         int       `json:"currentBet"`
	Active      bool      `json:"active"`
	Folded      bool      `json:"folded"`
	AllIn       bool      `json:"allIn"`
	IsTurn      bool      `json:"isTurn"`
	HoleCards   deck.Hand `json:"holeCards,omitempty"`
}

// Snapshot returns the table state as seen by the viewer.
// A zero viewerID produces the fully public projection.
func (t *Table) Snapshot(viewerID int64) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.buildSnapshot(viewerID)
}

// buildSnapshot must be called with the table lock held
func (t *Table) buildSnapshot(viewerID int64) Snapshot {
	snapshot := Snapshot{
		UUID:           t.UUID,
		Name:           t.Name,
		Status:         t.status,
		DealerPosition: -1,
		CurrentBet:     t.currentBet,
		SmallBlind:     t.options.SmallBlind,
		BigBlind:       t.options.BigBlind,
		Community:      deck.Hand{},
		Seats:          make([]SeatSnapshot, len(t.seats)),
	}

	if t.round != nil {
		street := t.round.Street
		snapshot.RoundNumber = t.round.Number
		snapshot.Street = &street
		snapshot.DealerPosition = t.round.DealerPosition
		snapshot.Pot = t.round.Pot()
		snapshot.Community = t.round.Community.Clone()
		snapshot.CommunityText = t.round.Community.String()
		snapshot.Pots = t.round.ledger.Pots()
	}

	for i, seat := range t.seats {
		ss := SeatSnapshot{
			PlayerID:    seat.PlayerID,
			DisplayName: seat.DisplayName,
			Position:    seat.Position,
			Chips:       seat.chips,
			Bet:         seat.bet,
			Active:      seat.active,
			Folded:      seat.folded,
			AllIn:       seat.allIn,
			IsTurn:      seat.turn,
		}

		if seat.PlayerID == viewerID {
			ss.HoleCards = seat.holeCards.Clone()
		}

		snapshot.Seats[i] = ss
	}

	return snapshot
}
