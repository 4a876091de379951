// Package api provides the HTTP REST surface of the Ayhuna chitti server.
//
// The api package implements:
//   - RESTful endpoints for room and game operations
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - A health check endpoint
//
// Endpoints:
//
// Room Management:
//   - POST /api/rooms - Create a room
//   - GET /api/rooms - List rooms
//   - GET /api/rooms/{code} - Get a room snapshot
//   - DELETE /api/rooms/{code} - Remove a room
//
// Game Operations:
//   - POST /api/rooms/{code}/join - Seat a player
//   - POST /api/rooms/{code}/deal - Deal a card to every hand
//   - POST /api/rooms/{code}/pass - Pass a card to the next player
//   - POST /api/rooms/{code}/check-win - Evaluate a player's hand
//
// Configuration:
//   - GET /api/configs - List available rulesets
//   - POST /api/configs - Save a ruleset
//   - GET /api/configs/{name} - Get a ruleset
//
// Real-time:
//   - GET /ws - WebSocket upgrade
//   - GET /healthz - Health check
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Mutating room endpoints mirror
// the WebSocket payload field names (player, roomcode, chitti, ishost,
// index) so both transports share one vocabulary.
//
// Unlike the fire-and-forget WebSocket protocol, REST callers get status
// codes: 404 for unknown rooms or players, 409 for duplicate rooms and
// actions against a finished game, 400 for malformed requests. Mutations
// made over REST are still broadcast to WebSocket clients in the room.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
