package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Ayhuna Chitti Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Ayhuna Chitti Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Collect four identical chittis (cards) in your hand and call a winner
check before anyone else does.

AVAILABLE TOOLS:
- create_room: Create a room and seat the host
- join_room: Seat a player in an existing room
- deal_card: Deal a chitti to every player's hand
- pass_chitti: Pass one of a player's chittis to the next player
- check_win: Check whether a player's hand wins
- get_room: Inspect a room's current state
- list_rooms: List all active rooms
- delete_room: Remove a room immediately
- list_configs: List available rulesets
- game_instructions: Get the complete rules

NOTE: Passing is not turn-gated; any seated player may pass at any time.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Room lifecycle
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_room",
		Description: "Create a new room with the given player as host",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Host player name",
				},
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code to create (optional, generated when omitted)",
				},
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Ruleset to use (optional)",
				},
			},
			Required: []string{"player"},
		},
	}, c.handleCreateRoom)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "join_room",
		Description: "Seat a player in an existing room",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code to join",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Player name",
				},
			},
			Required: []string{"roomcode", "player"},
		},
	}, c.handleJoinRoom)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_room",
		Description: "Get the current state of a room",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code",
				},
			},
			Required: []string{"roomcode"},
		},
	}, c.handleGetRoom)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rooms",
		Description: "List all active rooms",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRooms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_room",
		Description: "Remove a room immediately",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code to remove",
				},
			},
			Required: []string{"roomcode"},
		},
	}, c.handleDeleteRoom)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "deal_card",
		Description: "Deal a chitti to every player's hand, with an optional extra copy for the host",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code",
				},
				"chitti": map[string]interface{}{
					"type":        "string",
					"description": "Card symbol to deal",
				},
				"ishost": map[string]interface{}{
					"type":        "boolean",
					"description": "Deal an extra copy to the host",
				},
			},
			Required: []string{"roomcode", "chitti"},
		},
	}, c.handleDealCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pass_chitti",
		Description: "Pass one of a player's chittis to the next player in join order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Player passing the chitti",
				},
				"index": map[string]interface{}{
					"type":        "integer",
					"description": "Index of the chitti in the player's hand (0-based)",
				},
			},
			Required: []string{"roomcode", "player", "index"},
		},
	}, c.handlePassChitti)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_win",
		Description: "Check whether a player's hand meets the win condition",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"roomcode": map[string]interface{}{
					"type":        "string",
					"description": "Room code",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Player to check",
				},
			},
			Required: []string{"roomcode", "player"},
		},
	}, c.handleCheckWin)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game rulesets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete rules of the chitti game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	player, _ := args["player"].(string)
	roomCode, _ := args["roomcode"].(string)
	configID, _ := args["config_id"].(string)

	body := map[string]string{"player": player}
	if roomCode != "" {
		body["roomcode"] = roomCode
	}
	if configID != "" {
		body["config_id"] = configID
	}

	var info service.RoomInfo
	err := c.apiCall("POST", "/api/rooms", body, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created room: %s\nHost: %s\nConfig: %s\n", info.RoomCode, info.Host, info.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleJoinRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)
	player, _ := args["player"].(string)

	var info service.RoomInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/join", roomCode), map[string]string{"player": player}, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Joined room %s as %s\n\n%s", roomCode, player, formatRoomState(info.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)

	var info service.RoomInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/rooms/%s", roomCode), nil, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatRoomInfo(&info)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                `json:"count"`
		Rooms []service.RoomInfo `json:"rooms"`
	}

	err := c.apiCall("GET", "/api/rooms", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Rooms (%d):\n\n", response.Count)
	for _, r := range response.Rooms {
		players := 0
		if r.State != nil {
			players = len(r.State.Players)
		}
		result += fmt.Sprintf("- %s (Host: %s, Players: %d, Created: %s)\n",
			r.RoomCode, r.Host, players, r.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDeleteRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)

	err := c.apiCall("DELETE", fmt.Sprintf("/api/rooms/%s", roomCode), nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Room %s deleted", roomCode)), nil
}

func (c *Client) handleDealCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)
	chitti, _ := args["chitti"].(string)
	isHost, _ := args["ishost"].(bool)

	body := map[string]interface{}{
		"chitti": chitti,
		"ishost": isHost,
	}

	var info service.RoomInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/deal", roomCode), body, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Dealt chitti %q\n\n%s", chitti, formatRoomState(info.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePassChitti(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)
	player, _ := args["player"].(string)

	indexFloat, ok := args["index"].(float64)
	if !ok {
		return mcp.NewToolResultError("index is required"), nil
	}
	index := int(indexFloat)

	body := map[string]interface{}{
		"player": player,
		"index":  index,
	}

	var result service.PassResult
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/pass", roomCode), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Passed chitti %q from %s to %s\n\n%s",
		result.Chitti, player, result.NextPlayer, formatRoomState(result.State))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleCheckWin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomCode, _ := args["roomcode"].(string)
	player, _ := args["player"].(string)

	body := map[string]string{"player": player}

	var result service.WinResult
	err := c.apiCall("POST", fmt.Sprintf("/api/rooms/%s/check-win", roomCode), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Won {
		response := fmt.Sprintf("🎉 %s wins!\n\n%s", result.Winner, formatRoomState(result.State))
		return mcp.NewToolResultText(response), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Not a winner: %s", result.Reason)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Deck: %d symbols, win with %d of a kind\n\n",
			config.Name, config.ConfigID, config.Description, config.DeckSize, config.WinHandSize)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎴 Ayhuna Chitti Game - Complete Rules

GAME OBJECTIVE:
Be the first player to hold four identical chittis (cards) and call a
winner check.

SETUP:
• One player creates a room and becomes the host
• Other players join the room by its code
• Seating order is join order; it never changes
• The host deals chittis: each deal adds one card to every hand, and
  the host may take an extra copy of a dealt card

PLAY:
• Any player may pass one chitti from their hand at any time; there are
  no turns
• A passed chitti always goes to the next player in join order, wrapping
  from the last seat back to the first
• Hands grow and shrink as chittis circulate; the total number of
  chittis in the room never changes during passing

WINNING:
• Call check_win when you think your hand wins
• A winning hand holds exactly four chittis, all identical
• A failed check tells you why: wrong hand size, mixed chittis, or the
  game already finished
• The first successful check ends the game for the room

AFTER THE WIN:
• The room stays visible for a short cleanup window so everyone can see
  the result, then it is removed automatically

TOOLS:
- create_room / join_room to set up
- deal_card to build hands (host decides the deal)
- pass_chitti to circulate cards
- check_win to call a win
- get_room to inspect hands and state`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatRoomInfo(info *service.RoomInfo) string {
	return fmt.Sprintf("Room: %s\nHost: %s\nConfig: %s\nCreated: %s\n\n%s",
		info.RoomCode, info.Host, info.ConfigName,
		info.CreatedAt.Format("2006-01-02 15:04:05"),
		formatRoomState(info.State))
}

func formatRoomState(state *engine.RoomState) string {
	if state == nil {
		return "No room state available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Players (%d):\n", len(state.Players)))
	for i, p := range state.Players {
		marker := " "
		if p.Name == state.Host {
			marker = "*"
		}
		hand := make([]string, len(p.Chittis))
		for j, card := range p.Chittis {
			hand[j] = string(card)
		}
		result.WriteString(fmt.Sprintf("%s %d. %s [%s]\n", marker, i+1, p.Name, strings.Join(hand, " ")))
	}

	if state.GameOver {
		result.WriteString(fmt.Sprintf("\n🏁 Game over, winner: %s", state.Winner))
	}

	return result.String()
}
