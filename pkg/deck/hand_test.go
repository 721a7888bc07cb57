package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	hand := make(Hand, 0, 2)
	hand.AddCard(&Card{Rank: Ace, Suit: Spades})
	hand.AddCards([]*Card{
		{Rank: King, Suit: Hearts},
		{Rank: 10, Suit: Diamonds},
	})

	a.Equal(3, len(hand))
	a.Equal("A♠,K♥,10♦", hand.String())

	a.True(hand.HasCard(&Card{Rank: King, Suit: Hearts}))
	a.False(hand.HasCard(&Card{Rank: King, Suit: Spades}))
	a.False(hand.HasCard(&Card{Rank: 2, Suit: Clubs}))
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand{{Rank: 2, Suit: Clubs}}
	clone := hand.Clone()
	clone.AddCard(&Card{Rank: 3, Suit: Clubs})

	a.Equal(1, len(hand))
	a.Equal(2, len(clone))
}
