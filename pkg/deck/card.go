package deck

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits are all four suits in a fixed order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c *Card) String() string {
	return fmt.Sprintf("%s%s", rankString(c.Rank), suitSymbol(c.Suit))
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// UnmarshalJSON decodes JSON, rejecting values no real deck could produce.
// Cards round-trip through stored snapshots, so a corrupt record must fail
// loudly here rather than render a nonsense card.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rank int  `json:"rank"`
		Suit Suit `json:"suit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Rank < 2 || raw.Rank > Ace {
		return fmt.Errorf("invalid card rank: %d", raw.Rank)
	}

	if !validSuit(raw.Suit) {
		return fmt.Errorf("invalid card suit: %q", raw.Suit)
	}

	c.Rank = raw.Rank
	c.Suit = raw.Suit
	return nil
}

func validSuit(suit Suit) bool {
	for _, s := range Suits {
		if suit == s {
			return true
		}
	}

	return false
}

func rankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

func suitSymbol(suit Suit) string {
	switch suit {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}

	panic("unknown suit")
}

// CardFromString returns a Card from a string in the <rank><suit> format (i.e., "10♠" or "A♥").
// Unlike the serializer, the parser must never panic: card strings round-trip through storage,
// and a corrupt value is a caller-visible consistency error.
func CardFromString(s string) (*Card, error) {
	var suit Suit
	var symbol string
	for _, candidate := range Suits {
		if sym := suitSymbol(candidate); strings.HasSuffix(s, sym) {
			suit = candidate
			symbol = sym
			break
		}
	}

	if suit == "" {
		return nil, fmt.Errorf("could not parse card %q: missing suit", s)
	}

	rank, err := rankFromString(strings.TrimSuffix(s, symbol))
	if err != nil {
		return nil, fmt.Errorf("could not parse card %q: %v", s, err)
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

func rankFromString(s string) (int, error) {
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	rank, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if rank < 2 || rank > 10 {
		return 0, fmt.Errorf("rank %d out of range", rank)
	}

	return rank, nil
}

// CardsFromString will return a slice of cards from a comma-separated string.
// An empty string yields an empty slice.
func CardsFromString(s string) ([]*Card, error) {
	if s == "" {
		return []*Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, cardString := range cardStrings {
		card, err := CardFromString(cardString)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardToString converts a card (Ace of Spades) to a string (A♠)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return card.String()
}

// CardsToString will convert a slice of cards to a string in the format of 2♣,3♥,4♠,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
