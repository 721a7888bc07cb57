// Package potledger tracks every chip committed to a hand and carves the total
// into pots when seats go all-in for less than the table's bet level.
package potledger

import (
	"sort"
)

// Ledger accumulates contributions by seat position for a single hand
type Ledger struct {
	contributed map[int]int
	folded      map[int]bool
	// caps are the distinct hand-total commitments at which a seat went all-in.
	// Each cap closes a pot layer: chips above it belong to later layers.
	caps map[int]bool
}

// New returns an empty ledger for a fresh hand
func New() *Ledger {
	return &Ledger{
		contributed: make(map[int]int),
		folded:      make(map[int]bool),
		caps:        make(map[int]bool),
	}
}

// Add records a payment into the pot by the seat at the given position
func (l *Ledger) Add(position, amount int) {
	l.contributed[position] += amount
}

// Fold marks the seat's contribution as forfeited. The chips stay in the pot,
// but the seat is no longer eligible to win any layer.
func (l *Ledger) Fold(position int) {
	l.folded[position] = true
}

// AllIn caps the seat at its current total contribution, splitting off a side
// pot for any chips other seats commit beyond that amount.
func (l *Ledger) AllIn(position int) {
	l.caps[l.contributed[position]] = true
}

// Contributed returns the seat's total contribution for the hand
func (l *Ledger) Contributed(position int) int {
	return l.contributed[position]
}

// Total returns the combined total of all pots
func (l *Ledger) Total() int {
	total := 0
	for _, amount := range l.contributed {
		total += amount
	}

	return total
}

// Pot is a single pot layer with the seats eligible to win it
type Pot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// Pots returns the pot layers, most all-in-constrained layer first.
// With no all-ins there is a single pot eligible to every non-folded contributor.
func (l *Ledger) Pots() []Pot {
	caps := make([]int, 0, len(l.caps))
	for cap := range l.caps {
		caps = append(caps, cap)
	}
	sort.Ints(caps)

	positions := l.sortedPositions()

	pots := make([]Pot, 0, len(caps)+1)
	prevCap := 0
	for _, cap := range caps {
		pots = append(pots, l.layer(positions, prevCap, cap))
		prevCap = cap
	}

	// the unconstrained layer above the largest all-in
	top := l.layer(positions, prevCap, maxInt)
	if top.Amount > 0 || len(pots) == 0 {
		pots = append(pots, top)
	}

	return pots
}

// layer collects each seat's contribution between the previous cap and this cap.
// Eligibility requires matching the full layer and not having folded.
func (l *Ledger) layer(positions []int, prevCap, cap int) Pot {
	amount := 0
	eligible := make([]int, 0, len(positions))
	for _, position := range positions {
		contributed := l.contributed[position]
		if contributed > cap {
			contributed = cap
		}

		if contributed > prevCap {
			amount += contributed - prevCap
		}

		if l.folded[position] {
			continue
		}

		// the top layer has no cap to match; any contribution beyond the
		// previous cap qualifies
		if l.contributed[position] >= cap || (cap == maxInt && l.contributed[position] > prevCap) {
			eligible = append(eligible, position)
		}
	}

	return Pot{
		Amount:   amount,
		Eligible: eligible,
	}
}

func (l *Ledger) sortedPositions() []int {
	positions := make([]int, 0, len(l.contributed))
	for position := range l.contributed {
		positions = append(positions, position)
	}
	sort.Ints(positions)

	return positions
}

const maxInt = int(^uint(0) >> 1)

// Split divides a pot amount evenly among the winners, assigning the integer
// remainder to the first winner in seat order. Winners must be sorted.
func Split(amount int, winners []int) map[int]int {
	if len(winners) == 0 {
		return map[int]int{}
	}

	share := amount / len(winners)
	remainder := amount % len(winners)

	payouts := make(map[int]int, len(winners))
	for i, position := range winners {
		payout := share
		if i == 0 {
			payout += remainder
		}

		payouts[position] = payout
	}

	return payouts
}
