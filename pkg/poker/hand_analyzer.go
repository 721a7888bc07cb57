package poker

import (
	"sort"

	"holdem-server/pkg/deck"
)

// HandAnalyzer finds the best five-card poker hand in a set of five to seven cards.
//
// Categories are checked top-down; the first match wins. Hands of the same category
// are equal as far as this analyzer is concerned: kicker comparison across equal
// categories is deliberately not part of the contract. Ranks are indexed linearly
// from 2 through ace, so the ace only ever plays high and A-2-3-4-5 is not a
// straight.
type HandAnalyzer struct {
	cards []*deck.Card

	hand     Hand
	bestFive deck.Hand
}

// New returns a new HandAnalyzer instance for the provided cards
func New(cards []*deck.Card) *HandAnalyzer {
	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	sortDescending(newCards)

	h := &HandAnalyzer{
		cards: newCards,
	}

	h.calculateHand()
	return h
}

// GetHand will return the best possible hand category the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// BestFive returns the five cards forming the best hand
func (h *HandAnalyzer) BestFive() deck.Hand {
	return h.bestFive
}

func (h *HandAnalyzer) calculateHand() {
	if five, ok := h.checkStraightFlush(); ok {
		h.hand, h.bestFive = StraightFlush, five
	} else if five, ok := h.checkFourOfAKind(); ok {
		h.hand, h.bestFive = FourOfAKind, five
	} else if five, ok := h.checkFullHouse(); ok {
		h.hand, h.bestFive = FullHouse, five
	} else if five, ok := h.checkFlush(); ok {
		h.hand, h.bestFive = Flush, five
	} else if five, ok := checkStraight(h.cards); ok {
		h.hand, h.bestFive = Straight, five
	} else if five, ok := h.checkThreeOfAKind(); ok {
		h.hand, h.bestFive = ThreeOfAKind, five
	} else if five, ok := h.checkTwoPair(); ok {
		h.hand, h.bestFive = TwoPair, five
	} else if five, ok := h.checkPair(); ok {
		h.hand, h.bestFive = OnePair, five
	} else {
		h.hand = HighCard
		h.bestFive = h.topCards(5, -1)
	}
}

func (h *HandAnalyzer) checkStraightFlush() (deck.Hand, bool) {
	for _, suit := range deck.Suits {
		suited := make([]*deck.Card, 0, len(h.cards))
		for _, card := range h.cards {
			if card.Suit == suit {
				suited = append(suited, card)
			}
		}

		if len(suited) < 5 {
			continue
		}

		if five, ok := checkStraight(suited); ok {
			return five, true
		}
	}

	return nil, false
}

func (h *HandAnalyzer) checkFourOfAKind() (deck.Hand, bool) {
	rank, ok := h.rankWithCount(4)
	if !ok {
		return nil, false
	}

	five := h.cardsOfRank(rank)
	return append(five, h.topCards(1, rank)...), true
}

func (h *HandAnalyzer) checkFullHouse() (deck.Hand, bool) {
	trips, ok := h.rankWithCount(3)
	if !ok {
		return nil, false
	}

	pair, ok := h.rankWithCountExcluding(2, trips)
	if !ok {
		return nil, false
	}

	return append(h.cardsOfRank(trips), h.cardsOfRank(pair)...), true
}

func (h *HandAnalyzer) checkFlush() (deck.Hand, bool) {
	for _, suit := range deck.Suits {
		suited := make(deck.Hand, 0, len(h.cards))
		for _, card := range h.cards {
			if card.Suit == suit {
				suited = append(suited, card)
			}
		}

		// cards are already sorted by descending rank
		if len(suited) >= 5 {
			return suited[:5], true
		}
	}

	return nil, false
}

// checkStraight looks for five consecutive rank indices. Only one representative per
// rank participates; duplicate ranks do not break a run.
func checkStraight(cards []*deck.Card) (deck.Hand, bool) {
	distinct := make([]*deck.Card, 0, len(cards))
	seen := make(map[int]bool)
	for _, card := range cards {
		if !seen[card.Rank] {
			seen[card.Rank] = true
			distinct = append(distinct, card)
		}
	}

	// descending rank order, so the first qualifying run is the best one
	sortDescending(distinct)

	for i := 0; i+5 <= len(distinct); i++ {
		if distinct[i].Rank-distinct[i+4].Rank == 4 {
			return deck.Hand(distinct[i : i+5]), true
		}
	}

	return nil, false
}

func (h *HandAnalyzer) checkThreeOfAKind() (deck.Hand, bool) {
	rank, ok := h.rankWithCount(3)
	if !ok {
		return nil, false
	}

	return append(h.cardsOfRank(rank), h.topCards(2, rank)...), true
}

func (h *HandAnalyzer) checkTwoPair() (deck.Hand, bool) {
	high, ok := h.rankWithCount(2)
	if !ok {
		return nil, false
	}

	low, ok := h.rankWithCountExcluding(2, high)
	if !ok {
		return nil, false
	}

	five := append(h.cardsOfRank(high), h.cardsOfRank(low)...)
	for _, card := range h.cards {
		if card.Rank != high && card.Rank != low {
			return append(five, card), true
		}
	}

	return five, true
}

func (h *HandAnalyzer) checkPair() (deck.Hand, bool) {
	rank, ok := h.rankWithCount(2)
	if !ok {
		return nil, false
	}

	return append(h.cardsOfRank(rank), h.topCards(3, rank)...), true
}

// rankWithCount returns the highest rank appearing exactly count times
func (h *HandAnalyzer) rankWithCount(count int) (int, bool) {
	return h.rankWithCountExcluding(count, -1)
}

func (h *HandAnalyzer) rankWithCountExcluding(count, excludeRank int) (int, bool) {
	// cards are sorted by descending rank, so runs are contiguous
	run := 0
	prevRank := -1
	for _, card := range h.cards {
		if card.Rank == prevRank {
			run++
		} else {
			if run == count && prevRank != excludeRank {
				return prevRank, true
			}

			run = 1
			prevRank = card.Rank
		}
	}

	if run == count && prevRank != excludeRank {
		return prevRank, true
	}

	return 0, false
}

func (h *HandAnalyzer) cardsOfRank(rank int) deck.Hand {
	cards := make(deck.Hand, 0, 4)
	for _, card := range h.cards {
		if card.Rank == rank {
			cards = append(cards, card)
		}
	}

	return cards
}

// topCards returns the n highest cards, skipping the excluded rank
func (h *HandAnalyzer) topCards(n, excludeRank int) deck.Hand {
	cards := make(deck.Hand, 0, n)
	for _, card := range h.cards {
		if card.Rank == excludeRank {
			continue
		}

		cards = append(cards, card)
		if len(cards) == n {
			break
		}
	}

	return cards
}

// sortDescending orders cards by descending rank. Equal ranks fall back to a
// fixed suit order so analysis is deterministic.
func sortDescending(cards []*deck.Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank > cards[j].Rank
		}

		return suitIndex(cards[i].Suit) < suitIndex(cards[j].Suit)
	})
}

func suitIndex(suit deck.Suit) int {
	for i, s := range deck.Suits {
		if s == suit {
			return i
		}
	}

	return len(deck.Suits)
}
