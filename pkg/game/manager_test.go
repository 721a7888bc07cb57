package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/game/action"
)

type fakeSaver struct {
	saved chan Snapshot
}

func (f *fakeSaver) SaveSnapshot(snapshot Snapshot) {
	f.saved <- snapshot
}

func TestManager_CreateTable(t *testing.T) {
	a := assert.New(t)
	m := NewManager(testLogger(), DefaultOptions(), nil)

	tbl, err := m.CreateTable("friday-night", 1)
	a.NoError(err)
	a.Equal("friday-night", tbl.Name)
	a.Equal(int64(1), tbl.CreatorID)
	a.NotEmpty(tbl.UUID)

	_, err = m.CreateTable("friday-night", 2)
	a.Equal(ErrLobbyAlreadyExists, err)
}

func TestManager_TableLookup(t *testing.T) {
	a := assert.New(t)
	m := NewManager(testLogger(), DefaultOptions(), nil)

	_, err := m.Table("nope")
	a.Equal(ErrLobbyNotFound, err)

	created, err := m.CreateTable("alpha", 1)
	require.NoError(t, err)

	found, err := m.Table("alpha")
	a.NoError(err)
	a.Same(created, found)

	m.RemoveTable("alpha")
	_, err = m.Table("alpha")
	a.Equal(ErrLobbyNotFound, err)
}

func TestManager_TablesSorted(t *testing.T) {
	a := assert.New(t)
	m := NewManager(testLogger(), DefaultOptions(), nil)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		_, err := m.CreateTable(name, 1)
		require.NoError(t, err)
	}

	tables := m.Tables()
	require.Equal(t, 3, len(tables))
	a.Equal("alpha", tables[0].Name)
	a.Equal("mike", tables[1].Name)
	a.Equal("zulu", tables[2].Name)
}

func TestManager_SaverReceivesSettledHands(t *testing.T) {
	a := assert.New(t)
	saver := &fakeSaver{saved: make(chan Snapshot, 4)}
	m := NewManager(testLogger(), DefaultOptions(), saver)

	tbl, err := m.CreateTable("persisted", 1)
	require.NoError(t, err)

	_, err = tbl.Join(1, "p1", 1000)
	require.NoError(t, err)
	_, err = tbl.Join(2, "p2", 1000)
	require.NoError(t, err)
	require.NoError(t, tbl.StartHand())

	// the small blind opens heads-up; its fold settles the hand and the
	// snapshot lands on the saver
	require.NoError(t, tbl.Act(2, action.Action{Type: action.Fold}))

	snapshot := <-saver.saved
	a.Equal("persisted", snapshot.Name)
	a.Equal(tbl.UUID, snapshot.UUID)
	a.Equal(1, snapshot.RoundNumber)
	a.Equal(2, len(snapshot.Seats))
}
