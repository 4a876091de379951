package registry

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/internal/logger"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrInvalidRoomCode   = errors.New("invalid room code")
	ErrInvalidHostName   = errors.New("host name must not be empty")
)

// Manager handles room lifecycle. It is the only component that may add
// or remove registry entries; everything else mutates rooms through the
// handles it returns.
type Manager struct {
	rooms map[string]*engine.Room
	mu    sync.RWMutex
}

// NewManager creates a new room manager
func NewManager() *Manager {
	return &Manager{
		rooms: make(map[string]*engine.Room),
	}
}

// Create registers a new room under the given code with the host seated
// as the first player. An empty code gets a generated one. The host name
// must not be empty.
func (m *Manager) Create(code string, config *engine.GameConfig, hostName, connID string) (*engine.Room, error) {
	if hostName == "" {
		return nil, ErrInvalidHostName
	}
	if code == "" {
		code = m.generateRoomCode()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.rooms[code]; exists {
		return nil, ErrRoomAlreadyExists
	}

	room := engine.NewRoom(code, hostName, connID, config)
	m.rooms[code] = room

	return room, nil
}

// Get retrieves a room by code.
func (m *Manager) Get(code string) (*engine.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	room, exists := m.rooms[code]
	if !exists {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// List returns all active rooms.
func (m *Manager) List() []*engine.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*engine.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		result = append(result, room)
	}
	return result
}

// Delete removes a room. Removal is idempotent: deleting an absent room
// is not an error. The return value reports whether an entry was removed.
func (m *Manager) Delete(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.rooms[code]; !exists {
		return false
	}
	delete(m.rooms, code)
	return true
}

// Count returns the number of active rooms.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// ScheduleDelete arms a one-shot timer that removes the room after the
// given delay. The timer is not cancellable; if the room is gone by the
// time it fires, the deletion is a no-op. A room recreated under the same
// code inside the window is torn down with it.
func (m *Manager) ScheduleDelete(code string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if m.Delete(code) {
			logger.Info("Room removed after cleanup delay", logger.Fields{
				"roomCode": code,
				"delay":    delay.String(),
			})
		}
	})
}

// generateRoomCode generates a random 4-character room code
func (m *Manager) generateRoomCode() string {
	bytes := make([]byte, engine.RoomCodeLength/2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
