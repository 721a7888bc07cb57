package game

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SnapshotSaver persists a settled-hand snapshot. Implementations run on a
// write-behind goroutine and are never the source of truth for the game.
type SnapshotSaver interface {
	SaveSnapshot(snapshot Snapshot)
}

// Manager owns every table on the server. Tables are independent units of
// state; the manager's lock only guards the registry itself.
type Manager struct {
	mu      sync.RWMutex
	log     logrus.FieldLogger
	options Options
	tables  map[string]*Table
	saver   SnapshotSaver
}

// NewManager returns a manager with no tables.
// The saver may be nil when persistence is not wanted.
func NewManager(logger logrus.FieldLogger, opts Options, saver SnapshotSaver) *Manager {
	return &Manager{
		log:     logger,
		options: opts,
		tables:  make(map[string]*Table),
		saver:   saver,
	}
}

// CreateTable creates a lobby with a unique name
func (m *Manager) CreateTable(name string, creatorID int64) (*Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[name]; ok {
		return nil, ErrLobbyAlreadyExists
	}

	table, err := NewTable(m.log, uuid.New().String(), name, creatorID, m.options)
	if err != nil {
		return nil, err
	}

	if m.saver != nil {
		table.afterSettle = m.saver.SaveSnapshot
	}

	m.tables[name] = table
	m.log.WithFields(logrus.Fields{
		"lobby":    name,
		"playerId": creatorID,
	}).Info("lobby created")

	return table, nil
}

// Table returns the lobby with the given name
func (m *Manager) Table(name string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	table, ok := m.tables[name]
	if !ok {
		return nil, ErrLobbyNotFound
	}

	return table, nil
}

// Tables returns every lobby, sorted by name
func (m *Manager) Tables() []*Table {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tables := make([]*Table, 0, len(m.tables))
	for _, table := range m.tables {
		tables = append(tables, table)
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Name < tables[j].Name
	})

	return tables
}

// RemoveTable deletes an empty or finished lobby from the registry
func (m *Manager) RemoveTable(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tables, name)
}

// Options returns the table options the manager creates tables with
func (m *Manager) Options() Options {
	return m.options
}
