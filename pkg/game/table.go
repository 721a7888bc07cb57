package game

import (
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/game/action"
)

// Options configures how a table plays Texas Hold'em
type Options struct {
	SmallBlind    int
	BigBlind      int
	StartingChips int
	MinPlayers    int
	MaxPlayers    int
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		SmallBlind:    10,
		BigBlind:      20,
		StartingChips: 1000,
		MinPlayers:    2,
		MaxPlayers:    6,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 || opts.BigBlind < opts.SmallBlind {
		return UserError("blinds must be positive and the big blind must cover the small blind")
	}

	if opts.MinPlayers < 2 {
		return UserError("tables require at least two players")
	}

	if opts.MaxPlayers < opts.MinPlayers || opts.MaxPlayers > 9 {
		return UserError("max players must be between min players and nine")
	}

	return nil
}

// Table is a lobby: a fixed set of seats playing consecutive hands of
// Texas Hold'em. All mutable state is in memory and owned by the table's
// mutex; every action and every read is serialized through it.
type Table struct {
	UUID string
	Name string
	// CreatorID is the player who created the lobby
	CreatorID int64

	mu      sync.Mutex
	log     logrus.FieldLogger
	options Options

	seats      []*Seat
	status     Status
	currentBet int
	round      *Round

	// handsPlayed is used to number the next round
	handsPlayed int

	// afterSettle, if set, receives a snapshot after every settled hand.
	// It is invoked on its own goroutine and must not touch table state.
	afterSettle func(Snapshot)
}

// NewTable returns a new table with no seated players
func NewTable(logger logrus.FieldLogger, uuid, name string, creatorID int64, opts Options) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Table{
		UUID:      uuid,
		Name:      name,
		CreatorID: creatorID,
		log: logger.WithFields(logrus.Fields{
			"lobby": name,
			"uuid":  uuid,
		}),
		options: opts,
		seats:   make([]*Seat, 0, opts.MaxPlayers),
		status:  StatusWaiting,
	}, nil
}

// Join seats a player at the next open position.
// A player joining mid-hand sits out until the next hand.
func (t *Table) Join(playerID int64, displayName string, chips int) (*Seat, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seatByPlayerID(playerID) != nil {
		return nil, ErrAlreadySeated
	}

	if t.countSeated() >= t.options.MaxPlayers {
		return nil, ErrLobbyFull
	}

	seat := newSeat(playerID, displayName, len(t.seats), chips)
	if t.status == StatusInProgress {
		seat.folded = true
	}

	t.seats = append(t.seats, seat)
	t.log.WithField("playerId", playerID).Info("player seated")

	return seat, nil
}

// Leave removes a player from the table. If a hand is in progress the seat is
// folded first; the seat's chips are returned to the caller.
func (t *Table) Leave(playerID int64) (chips int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seat := t.seatByPlayerID(playerID)
	if seat == nil {
		return 0, ErrPlayerNotSeated
	}

	wasInHand := t.status == StatusInProgress && seat.inHand()
	hadTurn := seat.turn

	// deactivate first so a hand settled by this fold won't deal the seat
	// back in
	seat.active = false
	seat.left = true
	seat.holeCards = nil

	if wasInHand {
		t.applyFold(seat)
		if hadTurn {
			t.resolveAfterAction(seat)
		} else if survivor := t.soleSurvivor(); survivor != nil {
			t.settleFoldWin(survivor)
		}
	}

	chips = seat.chips
	seat.chips = 0

	t.log.WithField("playerId", playerID).Info("player left")
	return chips, nil
}

// StartHand starts the first hand for the table
func (t *Table) StartHand() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status == StatusInProgress {
		return ErrHandInProgress
	}

	if t.countActiveFunded() < t.options.MinPlayers {
		return ErrNotEnoughPlayers
	}

	t.status = StatusInProgress
	t.startHand(-1)
	return nil
}

// Act applies a player action. Rejected actions leave the table unchanged.
func (t *Table) Act(playerID int64, act action.Action) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != StatusInProgress {
		return ErrGameNotInProgress
	}

	seat := t.seatByPlayerID(playerID)
	if seat == nil {
		return ErrPlayerNotSeated
	}

	if !seat.turn {
		return ErrNotYourTurn
	}

	switch act.Type {
	case action.Call:
		cost := t.currentBet - seat.bet
		if cost > seat.chips {
			// the short-stack call is rejected rather than converted to an
			// all-in; see the design notes before changing this
			return ErrInsufficientChips
		}

		t.commit(seat, cost)
	case action.Raise:
		if act.Amount <= 0 || act.Amount < t.currentBet {
			return ErrInvalidAmount
		}

		cost := (t.currentBet - seat.bet) + act.Amount
		if cost > seat.chips {
			return ErrInsufficientChips
		}

		t.commit(seat, cost)
		t.currentBet = seat.bet

		// a raise reopens the action for everyone else
		for _, other := range t.seats {
			if other != seat && other.canAct() {
				other.acted = false
			}
		}
	case action.Fold:
		t.applyFold(seat)
	default:
		return ErrUnknownAction
	}

	seat.turn = false
	seat.acted = true

	t.log.WithFields(logrus.Fields{
		"playerId": playerID,
		"round":    t.round.Number,
		"street":   t.round.Street.String(),
	}).Debug(act.Type.LogMessage(act.Amount))

	t.resolveAfterAction(seat)
	return nil
}

// applyFold marks the seat folded and forfeits its contribution
func (t *Table) applyFold(seat *Seat) {
	seat.folded = true
	seat.turn = false
	if t.round != nil {
		t.round.ledger.Fold(seat.Position)
	}
}

// commit moves chips from the seat into the pot
func (t *Table) commit(seat *Seat, amount int) {
	seat.chips -= amount
	seat.bet += amount
	t.round.ledger.Add(seat.Position, amount)

	if seat.chips == 0 {
		seat.allIn = true
		t.round.ledger.AllIn(seat.Position)
	}
}

// resolveAfterAction decides what happens once a seat's turn completes:
// a lone survivor wins the hand, a finished street advances, or the turn
// flag moves to the next eligible seat.
func (t *Table) resolveAfterAction(actor *Seat) {
	if t.round == nil {
		return
	}

	if survivor := t.soleSurvivor(); survivor != nil {
		t.settleFoldWin(survivor)
		return
	}

	if t.streetComplete() {
		t.advanceStreets()
		return
	}

	next := t.nextSeat(actor.Position, func(s *Seat) bool {
		return s.canAct() && (!s.acted || s.bet < t.currentBet)
	})
	if next == nil {
		// streetComplete was false, so an eligible seat must exist
		panic("no eligible seat to act")
	}

	next.turn = true
}

// streetComplete returns true when every seat that can still act has acted
// and matched the current bet
func (t *Table) streetComplete() bool {
	for _, seat := range t.seats {
		if !seat.canAct() {
			continue
		}

		if !seat.acted || seat.bet != t.currentBet {
			return false
		}
	}

	return true
}

// advanceStreets deals the next street, or runs the board out to showdown
// when fewer than two seats can still bet
func (t *Table) advanceStreets() {
	for {
		if t.round.Street >= StreetRiver {
			t.round.Street = StreetShowdown
			t.settleShowdown()
			return
		}

		t.round.Street++
		t.round.dealCommunity(t.round.Street)
		t.newStreetReset()

		if t.countCanAct() >= 2 {
			opener := t.nextSeat(t.round.DealerPosition, (*Seat).canAct)
			opener.turn = true
			return
		}
	}
}

// newStreetReset clears per-street commitments and the table bet
func (t *Table) newStreetReset() {
	t.currentBet = 0
	for _, seat := range t.seats {
		seat.newStreet()
	}
}

// startHand begins a new hand: fresh deck, hole cards, blinds, and turn.
// prevDealer is the previous dealer position, or -1 for the table's first hand.
func (t *Table) startHand(prevDealer int) {
	t.handsPlayed++

	for _, seat := range t.seats {
		if seat.active && seat.chips > 0 {
			seat.newHand()
		}
	}

	dealer := t.nextSeat(prevDealer, (*Seat).canAct).Position
	t.round = newRound(t.handsPlayed, dealer, t.options.SmallBlind, t.options.BigBlind)

	for _, seat := range t.seats {
		if seat.canAct() {
			seat.holeCards.AddCards(t.round.deck.Deal(2))
		}
	}

	smallBlind := t.nextSeat(dealer, (*Seat).canAct)
	t.postBlind(smallBlind, t.options.SmallBlind)

	bigBlind := t.nextSeat(smallBlind.Position, (*Seat).canAct)
	t.postBlind(bigBlind, t.options.BigBlind)

	t.currentBet = t.options.BigBlind

	opener := t.nextSeat(bigBlind.Position, (*Seat).canAct)
	if opener == nil {
		// both blinds went all-in; run the board out
		t.advanceStreets()
		return
	}

	opener.turn = true

	t.log.WithFields(logrus.Fields{
		"round":  t.round.Number,
		"dealer": dealer,
	}).Info("hand started")
}

// postBlind posts a forced bet, going all-in when the blind covers the stack
func (t *Table) postBlind(seat *Seat, amount int) {
	if amount > seat.chips {
		amount = seat.chips
	}

	t.commit(seat, amount)
}

// nextSeat returns the first seat matching the predicate strictly after the
// given position, wrapping around; nil when no seat matches
func (t *Table) nextSeat(after int, match func(*Seat) bool) *Seat {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		seat := t.seats[(after+i+n)%n]
		if match(seat) {
			return seat
		}
	}

	return nil
}

// soleSurvivor returns the only seat left in the hand, or nil if more than one remains
func (t *Table) soleSurvivor() *Seat {
	var survivor *Seat
	for _, seat := range t.seats {
		if !seat.inHand() {
			continue
		}

		if survivor != nil {
			return nil
		}

		survivor = seat
	}

	return survivor
}

func (t *Table) seatByPlayerID(playerID int64) *Seat {
	for _, seat := range t.seats {
		if seat.PlayerID == playerID && !seat.left {
			return seat
		}
	}

	return nil
}

func (t *Table) countSeated() int {
	count := 0
	for _, seat := range t.seats {
		if !seat.left {
			count++
		}
	}

	return count
}

func (t *Table) countActiveFunded() int {
	count := 0
	for _, seat := range t.seats {
		if seat.active && seat.chips > 0 {
			count++
		}
	}

	return count
}

func (t *Table) countCanAct() int {
	count := 0
	for _, seat := range t.seats {
		if seat.canAct() {
			count++
		}
	}

	return count
}
