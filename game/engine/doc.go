// Package engine provides the core game logic for the Ayhuna chitti game.
//
// The engine package implements the game mechanics including:
//   - Room state: host, turn-ordered players, per-player hands
//   - Card distribution (deal) with the host extra-copy rule
//   - Turn-based card passing with circular wraparound
//   - Win detection (a full hand of identical chittis) and the
//     game-over transition
//
// Core Types:
//
// Room holds the complete state of one game session and serializes all
// mutations through an internal mutex. Player is one seat at the table,
// Card is an opaque chitti token, and GameConfig defines the tunable
// rules loaded from JSON files.
//
// Usage:
//
//	room := engine.NewRoom("R1", "Alice", connID, nil)
//	room.Join("Bob", otherConnID)
//	room.Deal("5", false)
//
//	next, card, err := room.Pass("Alice", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	verdict := room.CheckWin("Alice")
//
// Game Rules:
//
// Cards are dealt to every player; the host receives an extra copy on a
// host deal. Any player may pass one card from their hand to the next
// player in join order (the order wraps circularly; there is no enforced
// "current turn" pointer). A player wins by holding win_hand_size
// identical chittis, which freezes the room and schedules its removal.
package engine
