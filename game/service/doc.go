// Package service defines the application-facing operations of the Ayhuna
// chitti server and their result types.
//
// GameService is the single entry point used by every transport (REST,
// WebSocket gateway, MCP). It locates rooms through a RoomRegistry,
// resolves rulesets through a ConfigManager, and returns snapshot-carrying
// results so that transports can broadcast without reaching into game
// state themselves.
//
// Error Policy:
//
// Room-or-player-missing failures are returned as wrapped sentinel errors;
// the WebSocket gateway drops them silently (fire-and-forget, matching the
// real-time protocol) while the REST API maps them to status codes. Failed
// win checks are not errors at all: they come back as a WinResult carrying
// the verdict and the reason text for the requesting player.
package service
