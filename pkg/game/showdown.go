package game

import (
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/game/potledger"
	"holdem-server/pkg/poker"
)

// settleFoldWin awards the entire pot to the last seat standing and
// immediately starts the next hand
func (t *Table) settleFoldWin(survivor *Seat) {
	pot := t.round.Pot()
	survivor.chips += pot

	t.log.WithFields(logrus.Fields{
		"round":    t.round.Number,
		"playerId": survivor.PlayerID,
		"winnings": pot,
	}).Info("hand won by fold")

	t.finishHand()
}

// settleShowdown evaluates every surviving hand and pays out each pot layer,
// most all-in-constrained layer first. Hands are ranked by category only;
// kickers never break ties, so equal categories split the layer with any
// remainder going to the first winner in seat order.
func (t *Table) settleShowdown() {
	categories := make(map[int]poker.Hand)
	for _, seat := range t.seats {
		if !seat.inHand() {
			continue
		}

		analyzer := seat.getHandAnalyzer(t.round.Community)
		if analyzer == nil {
			continue
		}

		categories[seat.Position] = analyzer.GetHand()

		t.log.WithFields(logrus.Fields{
			"round":    t.round.Number,
			"playerId": seat.PlayerID,
			"hand":     analyzer.GetHand().String(),
			"cards":    analyzer.BestFive().String(),
		}).Debug("showdown hand")
	}

	for _, pot := range t.round.ledger.Pots() {
		winners := bestCategory(pot.Eligible, categories)
		for position, payout := range potledger.Split(pot.Amount, winners) {
			seat := t.seats[position]
			seat.chips += payout

			t.log.WithFields(logrus.Fields{
				"round":    t.round.Number,
				"playerId": seat.PlayerID,
				"hand":     categories[position].String(),
				"winnings": payout,
			}).Info("pot awarded")
		}
	}

	t.finishHand()
}

// bestCategory filters the eligible positions down to those holding the
// strongest hand category
func bestCategory(eligible []int, categories map[int]poker.Hand) []int {
	best := poker.Hand(-1)
	winners := make([]int, 0, len(eligible))
	for _, position := range eligible {
		category, ok := categories[position]
		if !ok {
			continue
		}

		if category > best {
			best = category
			winners = winners[:0]
		}

		if category == best {
			winners = append(winners, position)
		}
	}

	return winners
}

// finishHand resets per-hand state, retires busted seats, and either starts
// the next hand or ends the game when fewer than two funded seats remain
func (t *Table) finishHand() {
	prevDealer := t.round.DealerPosition

	for _, seat := range t.seats {
		seat.turn = false
		seat.bet = 0
		if seat.active && seat.chips == 0 {
			seat.active = false
			t.log.WithField("playerId", seat.PlayerID).Info("player busted")
		}
	}

	settled := t.buildSnapshot(0)
	if t.afterSettle != nil {
		// write-behind: persistence never blocks the table
		go t.afterSettle(settled)
	}

	if t.countActiveFunded() < t.options.MinPlayers {
		t.round = nil
		t.currentBet = 0
		t.status = StatusFinished
		t.log.Info("game finished")
		return
	}

	t.startHand(prevDealer)
}
