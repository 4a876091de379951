package service

import (
	"context"
	"time"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Room lifecycle
	CreateRoom(ctx context.Context, roomCode, hostName, connID, configName string) (*RoomInfo, error)
	JoinRoom(ctx context.Context, roomCode, playerName, connID string) (*RoomInfo, error)
	GetRoom(ctx context.Context, roomCode string) (*RoomInfo, error)
	ListRooms(ctx context.Context) ([]*RoomInfo, error)
	DeleteRoom(ctx context.Context, roomCode string) error

	// Game operations
	DealCard(ctx context.Context, roomCode string, card engine.Card, hostExtra bool) (*RoomInfo, error)
	PassCard(ctx context.Context, roomCode, fromPlayer string, cardIndex *int) (*PassResult, error)
	CheckWin(ctx context.Context, roomCode, playerName string) (*WinResult, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// RoomRegistry defines room storage operations
type RoomRegistry interface {
	Create(code string, config *engine.GameConfig, hostName, connID string) (*engine.Room, error)
	Get(code string) (*engine.Room, error)
	List() []*engine.Room
	Delete(code string) bool
	Count() int
	ScheduleDelete(code string, delay time.Duration)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}
