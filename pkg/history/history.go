// Package history persists lobbies and settled hands. The in-memory tables
// are the source of truth; everything here is written behind the game and is
// only ever read back for display.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/db"
	"holdem-server/pkg/game"
)

// saveTimeout bounds a single write-behind insert
const saveTimeout = 10 * time.Second

// Store writes game history to postgres. It implements game.SnapshotSaver.
type Store struct {
	log logrus.FieldLogger
}

// NewStore returns a history store
func NewStore(logger logrus.FieldLogger) *Store {
	return &Store{
		log: logger,
	}
}

// LobbyRecord is a record in the `lobbies` table
type LobbyRecord struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	CreatorID int64     `json:"creatorId"`
	Created   time.Time `json:"created"`
}

// HandRecord is a record in the `hands` table: one settled hand's snapshot
type HandRecord struct {
	ID          int64         `json:"id"`
	LobbyUUID   string        `json:"lobbyUuid"`
	RoundNumber int           `json:"roundNumber"`
	Snapshot    game.Snapshot `json:"snapshot"`
	Created     time.Time     `json:"created"`
}

// SaveLobby records the lobby's creation
func (s *Store) SaveLobby(ctx context.Context, uuid, name string, creatorID int64) error {
	const query = `
INSERT INTO lobbies (uuid, name, creator_id)
VALUES ($1, $2, $3)
ON CONFLICT (uuid) DO NOTHING`

	_, err := db.Instance().ExecContext(ctx, query, uuid, name, creatorID)
	return err
}

// SaveSnapshot stores a settled hand. It runs on the table's write-behind
// goroutine, so failures are logged rather than returned.
func (s *Store) SaveSnapshot(snapshot game.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		s.log.WithError(err).Error("could not marshal snapshot")
		return
	}

	const query = `
INSERT INTO hands (lobby_uuid, round_number, snapshot)
VALUES ($1, $2, $3)`

	if _, err := db.Instance().ExecContext(ctx, query, snapshot.UUID, snapshot.RoundNumber, raw); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"lobby": snapshot.Name,
			"round": snapshot.RoundNumber,
		}).Error("could not save hand")
		return
	}

	s.log.WithFields(logrus.Fields{
		"lobby": snapshot.Name,
		"round": snapshot.RoundNumber,
	}).Debug("hand saved")
}

// decodeSnapshot reads back a stored snapshot. A record that no longer
// decodes — a corrupt card, an unreadable document — is a consistency
// failure, never a wrong-but-plausible snapshot.
func decodeSnapshot(raw []byte, snapshot *game.Snapshot) error {
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return &game.InternalConsistencyError{
			Reason: "stored hand snapshot is corrupt",
			Err:    err,
		}
	}

	return nil
}

// GetHands returns the settled hands for a lobby, most recent first
func (s *Store) GetHands(ctx context.Context, lobbyUUID string, offset int64, limit int) ([]*HandRecord, error) {
	const query = `
SELECT id, lobby_uuid, round_number, snapshot, created
FROM hands
WHERE lobby_uuid = $1
ORDER BY id DESC
OFFSET $2
LIMIT $3`

	rows, err := db.Instance().QueryContext(ctx, query, lobbyUUID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*HandRecord, 0)
	for rows.Next() {
		var record HandRecord
		var raw []byte
		if err := rows.Scan(&record.ID, &record.LobbyUUID, &record.RoundNumber, &raw, &record.Created); err != nil {
			return nil, err
		}

		if err := decodeSnapshot(raw, &record.Snapshot); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, nil
}

// GetLobbies returns persisted lobbies, most recent first
func (s *Store) GetLobbies(ctx context.Context, offset int64, limit int) ([]*LobbyRecord, error) {
	const query = `
SELECT uuid, name, creator_id, created
FROM lobbies
ORDER BY created DESC
OFFSET $1
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*LobbyRecord, 0)
	for rows.Next() {
		var record LobbyRecord
		if err := rows.Scan(&record.UUID, &record.Name, &record.CreatorID, &record.Created); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, nil
}
