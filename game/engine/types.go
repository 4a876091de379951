package engine

// Card represents a single chitti token. Cards are opaque values; equality
// is the only operation the game ever performs on them.
type Card string

const (
	// DefaultWinHandSize is the classic rule: four identical chittis win.
	DefaultWinHandSize = 4

	// DefaultCleanupDelaySeconds is how long a finished room stays visible
	// so clients can observe the final state before teardown.
	DefaultCleanupDelaySeconds = 10

	// RoomCodeLength is the length of generated room codes.
	RoomCodeLength = 4
)

// Player is one seat at the table. ConnID is the transport connection
// handle owned by the gateway; the engine stores it but never uses it.
type Player struct {
	ConnID  string `json:"id"`
	Name    string `json:"name"`
	Chittis []Card `json:"chitti"`
}

// RoomState is an immutable snapshot of a room, broadcast to all members
// after every accepted mutation. Field names mirror the wire format.
type RoomState struct {
	RoomCode string   `json:"roomcode"`
	Host     string   `json:"host"`
	Players  []Player `json:"players"`
	GameOver bool     `json:"gameOver"`
	Winner   string   `json:"winner"`
}

// TotalCards returns the number of chittis across all hands in the snapshot.
func (s *RoomState) TotalCards() int {
	total := 0
	for _, p := range s.Players {
		total += len(p.Chittis)
	}
	return total
}

// Verdict is the outcome of a win check.
type Verdict int

const (
	// VerdictWinner means the hand met the win predicate; the room is now
	// game over with the checking player as winner.
	VerdictWinner Verdict = iota

	// VerdictGameAlreadyOver means another player already won.
	VerdictGameAlreadyOver

	// VerdictNotFound means the named player is not in the room.
	VerdictNotFound

	// VerdictHandSize means the hand does not hold exactly the required
	// number of chittis.
	VerdictHandSize

	// VerdictNotAllSame means the hand is full but the chittis differ.
	VerdictNotAllSame
)

// String returns a short machine-friendly code for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictWinner:
		return "winner"
	case VerdictGameAlreadyOver:
		return "game_already_over"
	case VerdictNotFound:
		return "player_not_found"
	case VerdictHandSize:
		return "hand_size_mismatch"
	case VerdictNotAllSame:
		return "not_all_same"
	default:
		return "unknown"
	}
}
