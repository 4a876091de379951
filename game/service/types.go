package service

import (
	"time"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
)

// RoomInfo provides information about a room, including the state
// snapshot to broadcast after the operation that produced it.
type RoomInfo struct {
	RoomCode   string            `json:"roomcode"`
	Host       string            `json:"host"`
	ConfigName string            `json:"config_name"`
	CreatedAt  time.Time         `json:"created_at"`
	State      *engine.RoomState `json:"state"`
}

// PassResult contains the result of a card pass: who receives the card,
// which card moved, and the updated room snapshot.
type PassResult struct {
	NextPlayer string            `json:"nextplayer"`
	Chitti     engine.Card       `json:"chitti"`
	State      *engine.RoomState `json:"state"`
}

// WinResult contains the outcome of a win check. Won is only true for
// VerdictWinner; Reason carries the text for the requesting player on a
// failed check.
type WinResult struct {
	Verdict engine.Verdict    `json:"-"`
	Code    string            `json:"code"`
	Won     bool              `json:"won"`
	Winner  string            `json:"winner,omitempty"`
	Reason  string            `json:"reason,omitempty"`
	State   *engine.RoomState `json:"state,omitempty"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for room creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	DeckSize    int    `json:"deck_size"`
	WinHandSize int    `json:"win_hand_size"`
}
