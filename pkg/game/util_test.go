package game

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/deck"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestTable seats one player per stack, with IDs 1..n and names p1..pN
func newTestTable(t *testing.T, stacks ...int) *Table {
	t.Helper()

	opts := DefaultOptions()
	tbl, err := NewTable(testLogger(), "uuid", "test-lobby", 1, opts)
	require.NoError(t, err)

	names := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	for i, stack := range stacks {
		_, err := tbl.Join(int64(i+1), names[i], stack)
		require.NoError(t, err)
	}

	return tbl
}

func cards(t *testing.T, s string) deck.Hand {
	t.Helper()

	hand, err := deck.CardsFromString(s)
	require.NoError(t, err)
	return deck.Hand(hand)
}

// stackBoard rigs the round's deck so the hand plays out the given board.
// The string lists the five community cards in dealt order: three flop cards,
// then the turn card, then the river card.
func stackBoard(t *testing.T, tbl *Table, board string) {
	t.Helper()

	hand := cards(t, board)
	require.Equal(t, 5, len(hand))

	// Deal pulls from the end of the deck, so lay the cards down in reverse:
	// river at the bottom, flop on top
	tbl.round.deck.Cards = []*deck.Card{hand[4], hand[3], hand[0], hand[1], hand[2]}
}

func setHoleCards(t *testing.T, tbl *Table, position int, s string) {
	t.Helper()
	tbl.seats[position].holeCards = cards(t, s)
}

// assertOneTurn verifies at most one seat holds the turn flag
func assertOneTurn(t *testing.T, tbl *Table) {
	t.Helper()

	count := 0
	for _, seat := range tbl.seats {
		if seat.turn {
			count++
		}
	}

	require.LessOrEqual(t, count, 1, "more than one seat on the clock")
}

// totalChips sums every stack plus the live pot; it must never change while
// a table plays
func totalChips(tbl *Table) int {
	total := 0
	for _, seat := range tbl.seats {
		total += seat.chips
	}

	if tbl.round != nil {
		total += tbl.round.Pot()
	}

	return total
}

// settleCapture wires a channel into the table's settle hook
func settleCapture(tbl *Table) chan Snapshot {
	ch := make(chan Snapshot, 4)
	tbl.afterSettle = func(s Snapshot) {
		ch <- s
	}

	return ch
}
