package game

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/game/potledger"
)

// Round is a single hand. It exclusively owns its deck and community cards;
// players are referenced through the table by seat position.
type Round struct {
	// Number increases monotonically per table
	Number int
	Street Street
	// DealerPosition is the seat position holding the button for this hand
	DealerPosition int
	Community      deck.Hand
	SmallBlind     int
	BigBlind       int

	deck   *deck.Deck
	ledger *potledger.Ledger
}

func newRound(number, dealerPosition, smallBlind, bigBlind int) *Round {
	d := deck.New()
	d.Shuffle(0)

	return &Round{
		Number:         number,
		Street:         StreetPreFlop,
		DealerPosition: dealerPosition,
		Community:      make(deck.Hand, 0, 5),
		SmallBlind:     smallBlind,
		BigBlind:       bigBlind,
		deck:           d,
		ledger:         potledger.New(),
	}
}

// Pot returns the total chips committed to the hand so far
func (r *Round) Pot() int {
	return r.ledger.Total()
}

// dealCommunity draws the street's community cards from the round's deck
func (r *Round) dealCommunity(street Street) {
	r.Community.AddCards(r.deck.Deal(communityCards[street]))
}
