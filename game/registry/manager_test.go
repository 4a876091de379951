package registry

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
)

func createTestConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:                "Registry Test Config",
		Description:         "Configuration for registry tests",
		Cards:               []string{"1", "2", "3"},
		WinHandSize:         4,
		CleanupDelaySeconds: 10,
	}
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()

	room, err := manager.Create("R1", createTestConfig(), "Alice", "conn-1")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if room.Code() != "R1" {
		t.Errorf("Expected room code 'R1', got '%s'", room.Code())
	}
	if room.Host() != "Alice" {
		t.Errorf("Expected host 'Alice', got '%s'", room.Host())
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 room, got %d", manager.Count())
	}
}

func TestManager_Create_Duplicate(t *testing.T) {
	manager := NewManager()

	if _, err := manager.Create("R1", createTestConfig(), "Alice", "conn-1"); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := manager.Create("R1", createTestConfig(), "Bob", "conn-2")
	if !errors.Is(err, ErrRoomAlreadyExists) {
		t.Errorf("Expected ErrRoomAlreadyExists, got %v", err)
	}

	// The original room must be untouched.
	room, err := manager.Get("R1")
	if err != nil {
		t.Fatalf("Get after duplicate create failed: %v", err)
	}
	if room.Host() != "Alice" {
		t.Errorf("Expected host to remain 'Alice', got '%s'", room.Host())
	}
}

func TestManager_Create_GeneratedCode(t *testing.T) {
	manager := NewManager()

	room, err := manager.Create("", createTestConfig(), "Alice", "conn-1")
	if err != nil {
		t.Fatalf("Failed to create room with generated code: %v", err)
	}
	if len(room.Code()) != engine.RoomCodeLength {
		t.Errorf("Expected a %d-character code, got '%s'", engine.RoomCodeLength, room.Code())
	}
}

func TestManager_Create_EmptyHost(t *testing.T) {
	manager := NewManager()

	_, err := manager.Create("R1", createTestConfig(), "", "conn-1")
	if !errors.Is(err, ErrInvalidHostName) {
		t.Errorf("Expected ErrInvalidHostName for empty host name, got %v", err)
	}

	// The code itself was fine, so it must remain available.
	if _, err := manager.Create("R1", createTestConfig(), "Alice", "conn-1"); err != nil {
		t.Errorf("Expected the code to stay usable after a rejected create, got %v", err)
	}
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	manager.Create("R1", createTestConfig(), "Alice", "conn-1")

	room, err := manager.Get("R1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if room.Code() != "R1" {
		t.Errorf("Expected room 'R1', got '%s'", room.Code())
	}

	if _, err := manager.Get("nope"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	manager.Create("R1", createTestConfig(), "Alice", "conn-1")

	if !manager.Delete("R1") {
		t.Error("Expected Delete to remove the room")
	}
	if _, err := manager.Get("R1"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected room to be gone, got %v", err)
	}

	// Idempotent: a second delete is a quiet no-op.
	if manager.Delete("R1") {
		t.Error("Expected second Delete to be a no-op")
	}
}

func TestManager_List(t *testing.T) {
	manager := NewManager()
	manager.Create("R1", createTestConfig(), "Alice", "conn-1")
	manager.Create("R2", createTestConfig(), "Bob", "conn-2")

	rooms := manager.List()
	if len(rooms) != 2 {
		t.Errorf("Expected 2 rooms, got %d", len(rooms))
	}
}

func TestManager_ScheduleDelete(t *testing.T) {
	manager := NewManager()
	manager.Create("R1", createTestConfig(), "Alice", "conn-1")

	manager.ScheduleDelete("R1", 20*time.Millisecond)

	// Still reachable before the delay elapses.
	if _, err := manager.Get("R1"); err != nil {
		t.Errorf("Room should still exist before the delay: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := manager.Get("R1"); errors.Is(err, ErrRoomNotFound) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Room was not removed after the cleanup delay")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestManager_ScheduleDelete_AlreadyRemoved(t *testing.T) {
	manager := NewManager()
	manager.Create("R1", createTestConfig(), "Alice", "conn-1")

	manager.ScheduleDelete("R1", 10*time.Millisecond)
	manager.Delete("R1")

	// The timer must fire without effect.
	time.Sleep(30 * time.Millisecond)
	if _, err := manager.Get("R1"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected room to stay removed, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()

	var wg sync.WaitGroup
	codes := []string{"A1", "B2", "C3", "D4", "E5"}

	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			manager.Create(code, createTestConfig(), "host-"+code, "conn-"+code)
			manager.Get(code)
			manager.List()
		}(code)
	}
	wg.Wait()

	if manager.Count() != len(codes) {
		t.Errorf("Expected %d rooms, got %d", len(codes), manager.Count())
	}
}
