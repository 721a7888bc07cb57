package mux

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/account"
	"holdem-server/pkg/game"
	"holdem-server/pkg/game/action"
)

var validLobbyNameRx = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{2,39}\z`)

type lobbyPayload struct {
	Name string `json:"name"`
}

func (m *Mux) getLobby() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables := m.manager.Tables()

		snapshots := make([]game.Snapshot, len(tables))
		for i, tbl := range tables {
			snapshots[i] = tbl.Snapshot(0)
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}

func (m *Mux) postLobby() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)

		var payload lobbyPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if !validLobbyNameRx.MatchString(payload.Name) {
			writeJSONError(w, http.StatusBadRequest, errors.New("lobby name must be 3-40 lowercase letters, numbers, or hyphens"))
			return
		}

		tbl, err := m.manager.CreateTable(payload.Name, player.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		// write-behind: the lobby record is not load-bearing
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := m.history.SaveLobby(ctx, tbl.UUID, tbl.Name, tbl.CreatorID); err != nil {
				logrus.WithError(err).WithField("lobby", tbl.Name).Error("could not save lobby")
			}
		}()

		writeJSON(w, http.StatusCreated, tbl.Snapshot(player.ID))
	}
}

func (m *Mux) getLobbyName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		writeJSON(w, http.StatusOK, tbl.Snapshot(player.ID))
	}
}

type joinPayload struct {
	BuyIn int `json:"buyIn"`
}

func (m *Mux) postLobbyNameJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		payload := joinPayload{BuyIn: m.manager.Options().StartingChips}
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.BuyIn <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("buy-in must be greater than zero"))
			return
		}

		// the buy-in comes out of the player's bank up front
		if _, err := account.AdjustChips(r.Context(), player.ID, -payload.BuyIn); err != nil {
			if err == sql.ErrNoRows {
				writeJSONError(w, http.StatusBadRequest, errors.New("not enough banked chips for the buy-in"))
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if _, err := tbl.Join(player.ID, player.DisplayName, payload.BuyIn); err != nil {
			// seat rejected: return the buy-in
			if _, refundErr := account.AdjustChips(r.Context(), player.ID, payload.BuyIn); refundErr != nil {
				logrus.WithError(refundErr).WithField("playerId", player.ID).Error("could not refund buy-in")
			}

			writeGameError(w, err)
			return
		}

		m.hub.broadcast(tbl)
		writeJSON(w, http.StatusOK, tbl.Snapshot(player.ID))
	}
}

func (m *Mux) postLobbyNameLeave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		chips, err := tbl.Leave(player.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		if chips > 0 {
			if _, err := account.AdjustChips(r.Context(), player.ID, chips); err != nil {
				// the seat is already gone; this must not be lost silently
				logrus.WithError(err).WithFields(logrus.Fields{
					"playerId": player.ID,
					"chips":    chips,
				}).Error("could not bank chips after leaving")
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		m.hub.broadcast(tbl)
		writeJSON(w, http.StatusOK, statusOK)
	}
}

func (m *Mux) postLobbyNameStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		if err := tbl.StartHand(); err != nil {
			writeGameError(w, err)
			return
		}

		m.hub.broadcast(tbl)
		writeJSON(w, http.StatusOK, tbl.Snapshot(player.ID))
	}
}

type actionPayload struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

func (m *Mux) postLobbyNameAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		var payload actionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		actionType, err := action.FromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := tbl.Act(player.ID, action.Action{Type: actionType, Amount: payload.Amount}); err != nil {
			writeGameError(w, err)
			return
		}

		m.hub.broadcast(tbl)
		writeJSON(w, http.StatusOK, tbl.Snapshot(player.ID))
	}
}

// getAdminLobby lists persisted lobby records, including lobbies no longer
// live in the manager
func (m *Mux) getAdminLobby() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		lobbies, err := m.history.GetLobbies(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, lobbies)
	}
}

func (m *Mux) getLobbyNameHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)

		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := m.history.GetHands(r.Context(), tbl.UUID, offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}
