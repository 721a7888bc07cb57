// Package mux provides the HTTP surface of the hold'em server: player
// accounts, lobby management, and the game actions themselves.
package mux

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/internal/jwt"
	"holdem-server/pkg/account"
	"holdem-server/pkg/game"
	"holdem-server/pkg/history"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxLobbyKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    muxConfig
	version   string
	recaptcha recaptcha
	manager   *game.Manager
	history   *history.Store
	hub       *lobbyHub

	// store for testing purposes
	authRouter  *gmux.Router
	adminRouter *gmux.Router
}

type muxConfig struct {
	// playerCreateDelay is the minimum duration between two player create events from a single remote address
	playerCreateDelay time.Duration
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	store := history.NewStore(logrus.StandardLogger())
	manager := game.NewManager(logrus.StandardLogger(), gameOptions(cfg), store)

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		manager: manager,
		history: store,
		hub:     newLobbyHub(),
		config: muxConfig{
			playerCreateDelay: time.Second * time.Duration(cfg.PlayerCreateDelay),
		},
		recaptcha: newRecaptcha(),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	this.adminRouter = this.authRouter.NewRoute().Subrouter()
	this.adminRouter.Use(this.adminMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
		r.Methods(http.MethodPost).Path("/player/auth").Handler(this.postPlayerAuth())
		r.Methods(http.MethodGet).Path("/player/auth/{jwt:.*}").Handler(this.getPlayerAuthJWT())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/player/{id:[0-9]+}").Handler(this.postPlayerID())

		r.Methods(http.MethodGet).Path("/lobby").Handler(this.getLobby())
		r.Methods(http.MethodPost).Path("/lobby").Handler(this.postLobby())

		lr := r.PathPrefix("/lobby/{name:[a-z0-9][a-z0-9-]*}").Subrouter()
		lr.Use(this.lobbyMiddleware)

		lr.Methods(http.MethodGet).Path("").Handler(this.getLobbyName())
		lr.Methods(http.MethodGet).Path("/ws").Handler(this.getLobbyNameWS())
		lr.Methods(http.MethodGet).Path("/hands").Handler(this.getLobbyNameHands())
		lr.Methods(http.MethodPost).Path("/join").Handler(this.postLobbyNameJoin())
		lr.Methods(http.MethodPost).Path("/leave").Handler(this.postLobbyNameLeave())
		lr.Methods(http.MethodPost).Path("/start").Handler(this.postLobbyNameStart())
		lr.Methods(http.MethodPost).Path("/action").Handler(this.postLobbyNameAction())
	}

	// requires admin access
	// depends on authMiddleware
	{
		r := this.adminRouter
		r.Methods(http.MethodGet).Path("/player").Handler(this.getPlayer())
		r.Methods(http.MethodGet).Path("/admin/lobby").Handler(this.getAdminLobby())
		r.Methods(http.MethodPost).Path("/admin/player/{id:[0-9]+}").Handler(this.postAdminPlayerID())
	}

	return this
}

func gameOptions(cfg config.Config) game.Options {
	return game.Options{
		SmallBlind:    cfg.Game.SmallBlind,
		BigBlind:      cfg.Game.BigBlind,
		StartingChips: cfg.Game.StartingChips,
		MinPlayers:    cfg.Game.MinPlayers,
		MaxPlayers:    cfg.Game.MaxPlayers,
	}
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidPlayerID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := account.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("HoldemServer-PlayerID", strconv.FormatInt(player.ID, 10))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// adminMiddleware requires authMiddleware to execute first
func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		if !player.IsSiteAdmin {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// lobbyMiddleware resolves {name} into a live table
func (m *Mux) lobbyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := gmux.Vars(r)["name"]
		tbl, err := m.manager.Table(name)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxLobbyKey, tbl)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
