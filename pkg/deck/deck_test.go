package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[card.String()] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	unshuffled := d.HashCode()

	d.Shuffle(0)
	a.NotEqual(unshuffled, d.HashCode())
	a.Equal(52, d.CardsLeft())

	// same seed, same order
	d1 := New()
	d1.Shuffle(42)
	d2 := New()
	d2.Shuffle(42)
	a.Equal(d1.HashCode(), d2.HashCode())

	// different seeds should not correlate
	d2.Shuffle(43)
	a.NotEqual(d1.HashCode(), d2.HashCode())

	a.Equal(int64(43), d2.GetSeed())

	// a zero seed draws a fresh one from the crypto source
	d3 := New()
	d3.Shuffle(0)
	a.Greater(d3.GetSeed(), int64(0))
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	last := d.Cards[51].String()
	dealt := d.Deal(2)
	a.Equal(2, len(dealt))
	a.Equal(50, d.CardsLeft())
	a.Equal(last, dealt[1].String())

	// no card is dealt twice
	seen := make(map[string]bool)
	for d.CardsLeft() > 0 {
		for _, card := range d.Deal(5) {
			a.False(seen[card.String()])
			seen[card.String()] = true
		}
	}
	a.Equal(50, len(seen))
}

func TestDeck_DealExhaustion(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(2)
	d.Deal(49)

	a.False(d.CanDeal(5))

	// a short deck returns what it has; exhaustion is not an error
	dealt := d.Deal(5)
	a.Equal(3, len(dealt))
	a.Equal(0, d.CardsLeft())

	a.Equal(0, len(d.Deal(1)))
}
