// Package websocket provides the real-time transport for the Ayhuna
// chitti server.
//
// The websocket package implements:
//   - Real-time bidirectional communication
//   - Room-aware connections with per-room broadcasting
//   - The fire-and-forget game protocol
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// connections. Each client connection is handled by a pair of goroutines
// for reading and writing; all room membership changes and broadcasts
// flow through the hub's event loop so no locking is needed on the room
// tables.
//
// Message Protocol:
//
// Frames are JSON envelopes of the form {"event": "...", "data": {...}}.
// Clients send game actions:
//   - create-room: {player, roomcode}
//   - join-room: {player, roomcode}
//   - chitti-into: {roomcode, chitti, ishost}
//   - pass-chitti: {roomcode, player, index}
//   - winner-check: {roomcode, player}
//
// The server answers with:
//   - room-created, room-error (to the requesting client)
//   - room-update, next-player, game-over (to the whole room)
//   - not-winner (to the requesting client)
//
// Error Policy:
//
// The protocol is fire-and-forget. Apart from room-error on a duplicate
// create and not-winner on a failed win check, invalid requests are
// dropped without a reply: unknown rooms, unknown players, bad card
// indexes and actions against a finished game all fall into this bucket.
// Clients resynchronize from the next room-update.
//
// Usage:
//
//	hub := websocket.NewHub(gameService)
//	go hub.Run()
//
//	router.HandleFunc("/ws", hub.ServeWS)
package websocket
