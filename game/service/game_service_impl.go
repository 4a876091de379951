package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/internal/logger"
)

var (
	ErrMissingCardIndex  = errors.New("card index is required")
	ErrMissingPlayerName = errors.New("player name is required")
)

// GameServiceImpl implements the GameService interface
type GameServiceImpl struct {
	registry RoomRegistry
	configs  ConfigManager
}

// NewGameService creates a new game service
func NewGameService(registry RoomRegistry, configs ConfigManager) *GameServiceImpl {
	return &GameServiceImpl{
		registry: registry,
		configs:  configs,
	}
}

// CreateRoom creates a new room with the host seated as the first player.
// An empty configName selects the default ruleset.
func (s *GameServiceImpl) CreateRoom(ctx context.Context, roomCode, hostName, connID, configName string) (*RoomInfo, error) {
	config, err := s.resolveConfig(configName)
	if err != nil {
		return nil, err
	}

	room, err := s.registry.Create(roomCode, config, hostName, connID)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	logger.Info("Room created", logger.Fields{
		"roomCode": room.Code(),
		"host":     hostName,
		"config":   config.Name,
	})

	return s.roomInfo(room, configName), nil
}

// JoinRoom seats a player in an existing room. Joining under a name that
// is already seated is a no-op and still succeeds, so a player who
// reconnects can re-issue the join without disturbing their hand.
func (s *GameServiceImpl) JoinRoom(ctx context.Context, roomCode, playerName, connID string) (*RoomInfo, error) {
	if playerName == "" {
		return nil, ErrMissingPlayerName
	}

	room, err := s.registry.Get(roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	if room.Join(playerName, connID) {
		logger.Info("Player joined room", logger.Fields{
			"roomCode": roomCode,
			"player":   playerName,
		})
	}

	return s.roomInfo(room, ""), nil
}

// GetRoom returns a snapshot of a room.
func (s *GameServiceImpl) GetRoom(ctx context.Context, roomCode string) (*RoomInfo, error) {
	room, err := s.registry.Get(roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return s.roomInfo(room, ""), nil
}

// ListRooms returns snapshots of all active rooms.
func (s *GameServiceImpl) ListRooms(ctx context.Context) ([]*RoomInfo, error) {
	rooms := s.registry.List()
	infos := make([]*RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		infos = append(infos, s.roomInfo(room, ""))
	}
	return infos, nil
}

// DeleteRoom removes a room immediately.
func (s *GameServiceImpl) DeleteRoom(ctx context.Context, roomCode string) error {
	if !s.registry.Delete(roomCode) {
		return fmt.Errorf("failed to delete room: %w", errors.New("room not found"))
	}
	logger.Info("Room deleted", logger.Fields{"roomCode": roomCode})
	return nil
}

// DealCard appends a card to every player's hand, with an extra copy for
// the host when hostExtra is set. Dealing into a finished game fails.
func (s *GameServiceImpl) DealCard(ctx context.Context, roomCode string, card engine.Card, hostExtra bool) (*RoomInfo, error) {
	room, err := s.registry.Get(roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to deal card: %w", err)
	}

	if !room.Deal(card, hostExtra) {
		return nil, fmt.Errorf("failed to deal card: %w", engine.ErrGameOver)
	}

	return s.roomInfo(room, ""), nil
}

// PassCard moves one card from a player's hand to the next player in join
// order. A nil cardIndex is a malformed request.
func (s *GameServiceImpl) PassCard(ctx context.Context, roomCode, fromPlayer string, cardIndex *int) (*PassResult, error) {
	if cardIndex == nil {
		return nil, ErrMissingCardIndex
	}

	room, err := s.registry.Get(roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to pass card: %w", err)
	}

	nextPlayer, card, err := room.Pass(fromPlayer, *cardIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to pass card: %w", err)
	}

	return &PassResult{
		NextPlayer: nextPlayer,
		Chitti:     card,
		State:      room.Snapshot(),
	}, nil
}

// CheckWin evaluates a player's hand against the win condition. Winning
// finishes the game and schedules the room for removal after the
// configured cleanup delay. A failed check is not an error: the verdict
// and reason come back in the WinResult.
func (s *GameServiceImpl) CheckWin(ctx context.Context, roomCode, playerName string) (*WinResult, error) {
	if playerName == "" {
		return nil, ErrMissingPlayerName
	}

	room, err := s.registry.Get(roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check win: %w", err)
	}

	verdict := room.CheckWin(playerName)
	result := &WinResult{
		Verdict: verdict,
		Code:    verdict.String(),
	}

	if verdict == engine.VerdictWinner {
		result.Won = true
		result.Winner = playerName
		result.State = room.Snapshot()

		delay := room.Config().CleanupDelay()
		s.registry.ScheduleDelete(roomCode, delay)

		logger.Info("Game won", logger.Fields{
			"roomCode":     roomCode,
			"winner":       playerName,
			"cleanupDelay": delay.String(),
		})
	} else {
		result.Reason = room.WinReason(verdict)
	}

	return result, nil
}

// ListConfigs returns information about all available configurations.
func (s *GameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration.
func (s *GameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig validates and persists a game configuration.
func (s *GameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return s.configs.SaveConfig(configName, config)
}

func (s *GameServiceImpl) resolveConfig(configName string) (*engine.GameConfig, error) {
	if configName == "" {
		return s.configs.GetDefault(), nil
	}
	config, err := s.configs.LoadConfig(configName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configName, err)
	}
	return config, nil
}

func (s *GameServiceImpl) roomInfo(room *engine.Room, configName string) *RoomInfo {
	if configName == "" {
		configName = room.Config().Name
	}
	return &RoomInfo{
		RoomCode:   room.Code(),
		Host:       room.Host(),
		ConfigName: configName,
		CreatedAt:  room.CreatedAt(),
		State:      room.Snapshot(),
	}
}
