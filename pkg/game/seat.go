package game

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// Seat is a player seated at a table. Chips persist across hands; the folded,
// turn, and bet fields reset every hand (bet also resets every street).
type Seat struct {
	PlayerID    int64
	DisplayName string
	// Position is fixed for the lifetime of the seat
	Position int

	chips  int
	bet    int
	active bool
	folded bool
	turn   bool
	acted  bool
	allIn  bool
	// left seats keep their position so live hands aren't renumbered, but
	// they are invisible to lookups and never dealt in again
	left bool

	holeCards deck.Hand

	handAnalyzer         *poker.HandAnalyzer
	handAnalyzerCacheKey string
}

func newSeat(playerID int64, displayName string, position, chips int) *Seat {
	return &Seat{
		PlayerID:    playerID,
		DisplayName: displayName,
		Position:    position,
		chips:       chips,
		active:      true,
		holeCards:   make(deck.Hand, 0, 2),
	}
}

// Chips returns the seat's current stack
func (s *Seat) Chips() int {
	return s.chips
}

// Bet returns the seat's current-street commitment
func (s *Seat) Bet() int {
	return s.bet
}

// IsTurn returns true if the seat is on the clock
func (s *Seat) IsTurn() bool {
	return s.turn
}

// HoleCards returns the seat's hole cards
func (s *Seat) HoleCards() deck.Hand {
	return s.holeCards
}

// canAct returns true if the seat may still take an action this hand
func (s *Seat) canAct() bool {
	return s.active && !s.folded && !s.allIn
}

// inHand returns true if the seat is still competing for the pot
func (s *Seat) inHand() bool {
	return s.active && !s.folded
}

// newStreet resets the per-street state
func (s *Seat) newStreet() {
	s.bet = 0
	s.acted = false
	s.turn = false
}

// newHand resets the per-hand state
func (s *Seat) newHand() {
	s.newStreet()
	s.folded = false
	s.allIn = false
	s.holeCards = make(deck.Hand, 0, 2)
	s.handAnalyzer = nil
	s.handAnalyzerCacheKey = ""
}

func (s *Seat) getHandAnalyzer(community deck.Hand) *poker.HandAnalyzer {
	if len(s.holeCards) == 0 {
		return nil
	}

	hand := append(s.holeCards.Clone(), community...)
	key := hand.String()
	if s.handAnalyzerCacheKey != key {
		s.handAnalyzer = poker.New(hand)
		s.handAnalyzerCacheKey = key
	}

	return s.handAnalyzer
}
