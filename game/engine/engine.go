package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrGameOver      = errors.New("game is already over")
	ErrUnknownPlayer = errors.New("player not found in room")
	ErrInvalidIndex  = errors.New("chitti index out of range")
)

// Room is the state of one game session. All mutations are serialized
// through the internal mutex, so a Room is safe for concurrent use by the
// gateway, the REST API, and the cleanup timer.
type Room struct {
	mu        sync.Mutex
	code      string
	host      string
	players   []*Player
	gameOver  bool
	winner    string
	config    *GameConfig
	createdAt time.Time
}

// NewRoom creates a room with the host seated as the first player. A nil
// config selects the built-in classic ruleset.
func NewRoom(code, hostName, connID string, config *GameConfig) *Room {
	if config == nil {
		config = DefaultGameConfig()
	}

	return &Room{
		code: code,
		host: hostName,
		players: []*Player{
			{ConnID: connID, Name: hostName, Chittis: []Card{}},
		},
		config:    config,
		createdAt: time.Now(),
	}
}

// Code returns the room code.
func (r *Room) Code() string {
	return r.code
}

// Host returns the name of the player who created the room.
func (r *Room) Host() string {
	return r.host
}

// Config returns the ruleset the room was created with.
func (r *Room) Config() *GameConfig {
	return r.config
}

// CreatedAt returns when the room was created.
func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}

// IsGameOver reports whether a winner has been declared.
func (r *Room) IsGameOver() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gameOver
}

// Winner returns the winning player's name, or "" while the game is open.
func (r *Room) Winner() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winner
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Join seats a new player with an empty hand at the end of the turn order.
// Joining under an existing name is a no-op that keeps the original seat,
// hand, and connection handle; it returns false in that case.
func (r *Room) Join(name, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(name) >= 0 {
		// Re-join by name. The stored connection handle is intentionally
		// left untouched; see DESIGN.md for the staleness trade-off.
		return false
	}

	r.players = append(r.players, &Player{ConnID: connID, Name: name, Chittis: []Card{}})
	return true
}

// Deal appends card to every player's hand. When hostExtra is set, the
// host receives a second copy of the same card. Returns false without
// touching any hand once the game is over.
func (r *Room) Deal(card Card, hostExtra bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameOver {
		return false
	}

	for _, p := range r.players {
		p.Chittis = append(p.Chittis, card)
		if hostExtra && p.Name == r.host {
			p.Chittis = append(p.Chittis, card)
		}
	}

	return true
}

// Pass moves the card at cardIndex from the named player's hand to the next
// player in join order, wrapping circularly. It returns the receiving
// player's name and the card that moved. There is no "whose turn" gate:
// any player may pass at any time, targeting whoever sits next.
func (r *Room) Pass(fromName string, cardIndex int) (string, Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameOver {
		return "", "", ErrGameOver
	}

	p := r.indexOf(fromName)
	if p < 0 {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownPlayer, fromName)
	}

	hand := r.players[p].Chittis
	if cardIndex < 0 || cardIndex >= len(hand) {
		return "", "", fmt.Errorf("%w: %d", ErrInvalidIndex, cardIndex)
	}

	card := hand[cardIndex]
	if card == "" {
		// An empty slot behaves like an out-of-range index.
		return "", "", fmt.Errorf("%w: %d", ErrInvalidIndex, cardIndex)
	}

	// Splice out of the source hand before appending to the destination:
	// in a one-player room the next seat is the passer's own, and the two
	// hands alias the same slice.
	next := (p + 1) % len(r.players)
	r.players[p].Chittis = append(hand[:cardIndex], hand[cardIndex+1:]...)
	r.players[next].Chittis = append(r.players[next].Chittis, card)

	return r.players[next].Name, card, nil
}

// CheckWin evaluates the named player's hand against the win predicate.
// A winning check flips the room to game over and records the winner; the
// gameOver flag and winner are set atomically under the room lock.
//
// The game-over gate is evaluated before the player lookup, so a stale
// check in a finished room answers VerdictGameAlreadyOver even for a name
// that never joined.
func (r *Room) CheckWin(name string) Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameOver {
		return VerdictGameAlreadyOver
	}

	p := r.indexOf(name)
	if p < 0 {
		return VerdictNotFound
	}

	hand := r.players[p].Chittis
	if len(hand) != r.config.WinHandSize {
		return VerdictHandSize
	}

	for _, card := range hand {
		if card != hand[0] {
			return VerdictNotAllSame
		}
	}

	r.gameOver = true
	r.winner = name
	return VerdictWinner
}

// Snapshot returns a deep copy of the room state for broadcast. Later
// mutations of the room never show through a snapshot.
func (r *Room) Snapshot() *RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]Player, len(r.players))
	for i, p := range r.players {
		hand := make([]Card, len(p.Chittis))
		copy(hand, p.Chittis)
		players[i] = Player{ConnID: p.ConnID, Name: p.Name, Chittis: hand}
	}

	return &RoomState{
		RoomCode: r.code,
		Host:     r.host,
		Players:  players,
		GameOver: r.gameOver,
		Winner:   r.winner,
	}
}

// WinReason maps a failed verdict to the message sent back to the
// requesting player. Winning verdicts have no reason text.
func (r *Room) WinReason(v Verdict) string {
	switch v {
	case VerdictGameAlreadyOver:
		return "Game already finished"
	case VerdictHandSize:
		return fmt.Sprintf("you must have exactly %d chittis", r.config.WinHandSize)
	case VerdictNotAllSame:
		return "Not all chittis are same"
	default:
		return ""
	}
}

// indexOf returns the seat position of the named player, or -1.
// Callers must hold r.mu.
func (r *Room) indexOf(name string) int {
	for i, p := range r.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}
