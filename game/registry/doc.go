// Package registry provides room lifecycle management for the Ayhuna
// chitti server.
//
// The registry package implements:
//   - Thread-safe room storage and retrieval keyed by room code
//   - Room code generation for callers that do not pick one
//   - Idempotent removal
//   - One-shot deferred deletion after a game ends
//
// Core Types:
//
// Manager is the single owner of the room table. Rooms themselves are
// engine.Room values; all game-state mutation goes through the returned
// room handle, never through the registry.
//
// Room Codes:
//
// Players normally choose their own short codes. When a caller passes an
// empty code, the manager generates a 4-character hex code using
// cryptographic randomness.
//
// Concurrency:
//
// The manager is safe for concurrent use. Operations on different rooms
// proceed fully in parallel; only the table itself is guarded. Deferred
// deletions run on their own timers and tolerate rooms that were already
// removed by another path.
//
// Usage:
//
//	manager := registry.NewManager()
//
//	room, err := manager.Create("R1", config, "Alice", connID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	room, err = manager.Get("R1")
//
//	// After a win:
//	manager.ScheduleDelete("R1", config.CleanupDelay())
package registry
