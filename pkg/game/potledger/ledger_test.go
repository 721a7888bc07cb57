package potledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_SinglePot(t *testing.T) {
	a := assert.New(t)

	l := New()
	l.Add(0, 20)
	l.Add(1, 20)
	l.Add(2, 20)
	l.Fold(2)

	a.Equal(60, l.Total())

	pots := l.Pots()
	a.Equal(1, len(pots))
	a.Equal(60, pots[0].Amount)
	a.Equal([]int{0, 1}, pots[0].Eligible)
}

func TestLedger_AllInSidePot(t *testing.T) {
	a := assert.New(t)

	// seat 1 is all-in for 100; seats 0 and 2 keep betting to 150
	l := New()
	l.Add(0, 150)
	l.Add(1, 100)
	l.AllIn(1)
	l.Add(2, 150)

	a.Equal(400, l.Total())

	pots := l.Pots()
	a.Equal(2, len(pots))

	// main pot capped at 100 per contributor, eligible to everyone
	a.Equal(300, pots[0].Amount)
	a.Equal([]int{0, 1, 2}, pots[0].Eligible)

	// the excess forms a layer excluding the all-in seat
	a.Equal(100, pots[1].Amount)
	a.Equal([]int{0, 2}, pots[1].Eligible)
}

func TestLedger_MultipleAllIns(t *testing.T) {
	a := assert.New(t)

	l := New()
	l.Add(0, 50)
	l.AllIn(0)
	l.Add(1, 120)
	l.AllIn(1)
	l.Add(2, 200)
	l.Add(3, 200)
	l.Fold(3)

	a.Equal(570, l.Total())

	pots := l.Pots()
	a.Equal(3, len(pots))

	a.Equal(200, pots[0].Amount) // 50 from each of four seats
	a.Equal([]int{0, 1, 2}, pots[0].Eligible)

	a.Equal(210, pots[1].Amount) // 70 from seats 1, 2, and 3
	a.Equal([]int{1, 2}, pots[1].Eligible)

	a.Equal(160, pots[2].Amount) // 80 from seats 2 and 3
	a.Equal([]int{2}, pots[2].Eligible)
}

func TestLedger_AllInMatchingBetDoesNotSplit(t *testing.T) {
	a := assert.New(t)

	// an all-in that exactly matches everyone else leaves a single pot
	l := New()
	l.Add(0, 100)
	l.Add(1, 100)
	l.AllIn(1)
	l.Add(2, 100)

	pots := l.Pots()
	a.Equal(1, len(pots))
	a.Equal(300, pots[0].Amount)
	a.Equal([]int{0, 1, 2}, pots[0].Eligible)
}

func TestSplit(t *testing.T) {
	a := assert.New(t)

	a.Equal(map[int]int{2: 100}, Split(100, []int{2}))
	a.Equal(map[int]int{0: 50, 3: 50}, Split(100, []int{0, 3}))

	// the integer remainder goes to the first winner in seat order
	a.Equal(map[int]int{1: 34, 2: 33, 4: 33}, Split(100, []int{1, 2, 4}))

	a.Equal(map[int]int{}, Split(100, nil))
}
