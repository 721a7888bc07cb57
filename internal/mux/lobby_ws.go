package mux

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/account"
	"holdem-server/pkg/game"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsClient is one websocket subscriber to a lobby. Each client sees the
// table through its own eyes: hole cards are only ever its own.
type wsClient struct {
	conn     *websocket.Conn
	playerID int64
	send     chan game.Snapshot
}

// lobbyHub fans table state out to websocket subscribers, keyed by lobby name
type lobbyHub struct {
	mu      sync.Mutex
	clients map[string]map[*wsClient]bool
}

func newLobbyHub() *lobbyHub {
	return &lobbyHub{
		clients: make(map[string]map[*wsClient]bool),
	}
}

func (h *lobbyHub) subscribe(lobby string, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[lobby] == nil {
		h.clients[lobby] = make(map[*wsClient]bool)
	}

	h.clients[lobby][client] = true
}

func (h *lobbyHub) unsubscribe(lobby string, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients[lobby], client)
	if len(h.clients[lobby]) == 0 {
		delete(h.clients, lobby)
	}
}

// broadcast pushes a per-viewer snapshot to every subscriber of the table's
// lobby. A slow consumer misses this update and catches up on the next one.
func (h *lobbyHub) broadcast(tbl *game.Table) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[tbl.Name] {
		select {
		case client.send <- tbl.Snapshot(client.playerID):
		default:
		}
	}
}

func (m *Mux) getLobbyNameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		tbl := r.Context().Value(ctxLobbyKey).(*game.Table)
		player := r.Context().Value(ctxPlayerKey).(*account.Player)

		client := &wsClient{
			conn:     conn,
			playerID: player.ID,
			send:     make(chan game.Snapshot, 8),
		}

		m.hub.subscribe(tbl.Name, client)
		defer func() {
			m.hub.unsubscribe(tbl.Name, client)
			_ = conn.Close()
		}()

		// the subscriber starts with the current state
		client.send <- tbl.Snapshot(player.ID)

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(client)
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case snapshot := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(snapshot); err != nil {
				logrus.WithError(err).Error("could not write snapshot")
				return
			}
		}
	}
}

// webSocketReadLoop consumes the connection until it closes. Clients act
// through the HTTP endpoints, not the socket.
func (m *Mux) webSocketReadLoop(client *wsClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}
	}
}
