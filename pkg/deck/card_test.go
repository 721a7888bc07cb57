package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	a.Equal("10♥", (&Card{Rank: 10, Suit: Hearts}).String())
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("J♦", (&Card{Rank: Jack, Suit: Diamonds}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("A♠")
	a.NoError(err)
	a.Equal(&Card{Rank: Ace, Suit: Spades}, card)

	card, err = CardFromString("10♥")
	a.NoError(err)
	a.Equal(&Card{Rank: 10, Suit: Hearts}, card)

	card, err = CardFromString("Q♦")
	a.NoError(err)
	a.Equal(&Card{Rank: Queen, Suit: Diamonds}, card)

	for _, bad := range []string{"", "A", "♠", "1♠", "11♠", "X♥", "AA♣"} {
		card, err = CardFromString(bad)
		a.Error(err, "expected error for %q", bad)
		a.Nil(card)
	}
}

func TestCardsRoundTrip(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("")
	a.NoError(err)
	a.Equal([]*Card{}, cards)

	original := []*Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Hearts},
		{Rank: 10, Suit: Diamonds},
		{Rank: 2, Suit: Clubs},
	}

	serialized := CardsToString(original)
	a.Equal("A♠,K♥,10♦,2♣", serialized)

	parsed, err := CardsFromString(serialized)
	a.NoError(err)
	a.Equal(original, parsed)

	_, err = CardsFromString("A♠,bogus")
	a.Error(err)
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True((&Card{Rank: 5, Suit: Clubs}).Equal(&Card{Rank: 5, Suit: Clubs}))
	a.False((&Card{Rank: 5, Suit: Clubs}).Equal(&Card{Rank: 5, Suit: Hearts}))
	a.False((&Card{Rank: 5, Suit: Clubs}).Equal(&Card{Rank: 6, Suit: Clubs}))
}

func TestCard_UnmarshalJSON(t *testing.T) {
	a := assert.New(t)

	var card Card
	a.NoError(json.Unmarshal([]byte(`{"rank":14,"suit":"spades"}`), &card))
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	// a corrupt record must fail, not render a nonsense card
	for _, bad := range []string{
		`{"rank":99,"suit":"spades"}`,
		`{"rank":1,"suit":"hearts"}`,
		`{"rank":0,"suit":"clubs"}`,
		`{"rank":7,"suit":"stars"}`,
		`{"rank":7}`,
	} {
		a.Error(json.Unmarshal([]byte(bad), &card), "expected error for %s", bad)
	}
}
