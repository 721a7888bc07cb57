package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/deck"
)

func cards(t *testing.T, s string) []*deck.Card {
	t.Helper()

	c, err := deck.CardsFromString(s)
	require.NoError(t, err)
	return c
}

func TestHandAnalyzer_Categories(t *testing.T) {
	runTest := func(t *testing.T, expected Hand, hand string) {
		t.Helper()

		h := New(cards(t, hand))
		assert.Equal(t, expected, h.GetHand(), "%s should be a %s", hand, expected)
		assert.Equal(t, 5, len(h.BestFive()))
	}

	runTest(t, StraightFlush, "9♠,10♠,J♠,Q♠,K♠,2♥,3♦")
	runTest(t, StraightFlush, "A♠,K♠,Q♠,J♠,10♠")
	runTest(t, FourOfAKind, "A♠,A♥,A♦,A♣,K♠")
	runTest(t, FourOfAKind, "A♠,A♥,A♦,A♣,K♠,2♥,3♦")
	runTest(t, FullHouse, "K♠,K♥,K♦,A♣,A♠")
	runTest(t, FullHouse, "K♠,K♥,K♦,A♣,A♠,2♥,3♦")
	runTest(t, Flush, "A♠,K♠,Q♠,J♠,9♠")
	runTest(t, Straight, "9♠,8♥,7♦,6♣,5♠")
	runTest(t, Straight, "9♠,8♥,7♦,6♣,5♠,5♥,2♦")
	runTest(t, ThreeOfAKind, "7♠,7♥,7♦,K♣,2♠")
	runTest(t, TwoPair, "7♠,7♥,4♦,4♣,2♠")
	runTest(t, OnePair, "7♠,7♥,K♦,4♣,2♠")
	runTest(t, HighCard, "A♠,K♥,9♦,4♣,2♠")
}

func TestHandAnalyzer_AceLowStraightIsNotRecognized(t *testing.T) {
	// ranks are indexed linearly from 2 through ace, so the wheel does not play
	h := New(cards(t, "A♠,2♥,3♦,4♣,5♠"))
	assert.Equal(t, HighCard, h.GetHand())

	h = New(cards(t, "A♠,2♠,3♠,4♠,5♠"))
	assert.Equal(t, Flush, h.GetHand())
}

func TestHandAnalyzer_FlushBeatsLowerCategories(t *testing.T) {
	a := assert.New(t)

	// seven cards holding both a flush and a straight: flush wins
	h := New(cards(t, "A♠,K♠,Q♠,J♠,9♠,10♥,2♦"))
	a.Equal(Flush, h.GetHand())

	// the straight flush check is restricted per suit
	h = New(cards(t, "A♠,K♠,Q♠,J♠,9♠,10♠,2♦"))
	a.Equal(StraightFlush, h.GetHand())
}

func TestHandAnalyzer_TwoTripsIsNotAFullHouse(t *testing.T) {
	// the pair check requires exactly two of a rank; a second set of trips
	// does not fill the house
	h := New(cards(t, "K♠,K♥,K♦,7♣,7♠,7♥,2♦"))
	assert.Equal(t, ThreeOfAKind, h.GetHand())
}

func TestHandAnalyzer_BestFive(t *testing.T) {
	a := assert.New(t)

	h := New(cards(t, "A♠,A♥,A♦,A♣,K♠,2♥,3♦"))
	a.Equal(FourOfAKind, h.GetHand())
	a.Equal("A♠,A♥,A♦,A♣,K♠", h.BestFive().String())

	h = New(cards(t, "7♠,7♥,K♦,4♣,2♠"))
	a.Equal("7♠,7♥,K♦,4♣,2♠", h.BestFive().String())
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Straight Flush", StraightFlush.String())
	a.Equal("High Card", HighCard.String())
	a.PanicsWithValue("unknown hand: -1", func() {
		_ = Hand(-1).String()
	})
}
