// Package mcp provides an MCP (Model Context Protocol) interface to the
// Ayhuna chitti server.
//
// The package implements a thin client that proxies every tool call to
// the REST API, so MCP-driven agents and human players over WebSocket
// share one authoritative game state.
//
// Tools:
//   - create_room, join_room: room lifecycle
//   - deal_card, pass_chitti, check_win: game operations
//   - get_room, list_rooms, delete_room: inspection and cleanup
//   - list_configs: available rulesets
//   - game_instructions: rules of the chitti game
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
