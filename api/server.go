package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/game/registry"
	"github.com/gurutej08/Ayhuna-backend/game/service"
	"github.com/gurutej08/Ayhuna-backend/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Room management
	api.HandleFunc("/rooms", s.handleCreateRoom).Methods("POST")
	api.HandleFunc("/rooms", s.handleListRooms).Methods("GET")
	api.HandleFunc("/rooms/{code}", s.handleGetRoom).Methods("GET")
	api.HandleFunc("/rooms/{code}", s.handleDeleteRoom).Methods("DELETE")

	// Game operations
	api.HandleFunc("/rooms/{code}/join", s.handleJoinRoom).Methods("POST")
	api.HandleFunc("/rooms/{code}/deal", s.handleDealCard).Methods("POST")
	api.HandleFunc("/rooms/{code}/pass", s.handlePassCard).Methods("POST")
	api.HandleFunc("/rooms/{code}/check-win", s.handleCheckWin).Methods("POST")

	// Configuration
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs", s.handleCreateConfig).Methods("POST")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	// WebSocket
	if s.hub != nil {
		s.router.HandleFunc("/ws", s.hub.ServeWS)
	}

	// Health check
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, registry.ErrRoomNotFound),
		errors.Is(err, engine.ErrUnknownPlayer):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrRoomAlreadyExists),
		errors.Is(err, engine.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, registry.ErrInvalidRoomCode),
		errors.Is(err, registry.ErrInvalidHostName),
		errors.Is(err, engine.ErrInvalidIndex),
		errors.Is(err, service.ErrMissingCardIndex),
		errors.Is(err, service.ErrMissingPlayerName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Room Handlers

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomCode string `json:"roomcode,omitempty"`
		Player   string `json:"player"`
		ConfigID string `json:"config_id,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Player == "" {
		respondError(w, http.StatusBadRequest, "Player name is required")
		return
	}

	info, err := s.service.CreateRoom(r.Context(), req.RoomCode, req.Player, "", req.ConfigID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, info)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.service.ListRooms(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	order := query.Get("order") // "asc", "desc" (default: "desc")
	if order == "" {
		order = "desc"
	}

	sort.Slice(rooms, func(i, j int) bool {
		if order == "asc" {
			return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
		}
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})

	limit := len(rooms)
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(rooms) {
			limit = l
		}
	}
	rooms = rooms[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rooms),
		"rooms": rooms,
		"order": order,
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	info, err := s.service.GetRoom(r.Context(), roomCode)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	if err := s.service.DeleteRoom(r.Context(), roomCode); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Room %s deleted", roomCode),
	})
}

// Game Operation Handlers

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	var req struct {
		Player string `json:"player"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := s.service.JoinRoom(r.Context(), roomCode, req.Player, "")
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	// Broadcast to WebSocket clients
	if s.hub != nil {
		s.hub.BroadcastRoomUpdate(roomCode, info.State)
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleDealCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	var req struct {
		Chitti engine.Card `json:"chitti"`
		IsHost bool        `json:"ishost,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Chitti == "" {
		respondError(w, http.StatusBadRequest, "Chitti is required")
		return
	}

	info, err := s.service.DealCard(r.Context(), roomCode, req.Chitti, req.IsHost)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	// Broadcast to WebSocket clients
	if s.hub != nil {
		s.hub.BroadcastRoomUpdate(roomCode, info.State)
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handlePassCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	var req struct {
		Player string `json:"player"`
		Index  *int   `json:"index"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.PassCard(r.Context(), roomCode, req.Player, req.Index)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	// Broadcast to WebSocket clients, receiver announcement first
	if s.hub != nil {
		s.hub.BroadcastEvent(roomCode, "next-player", map[string]interface{}{
			"nextplayer": result.NextPlayer,
			"chitti":     result.Chitti,
		})
		s.hub.BroadcastRoomUpdate(roomCode, result.State)
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheckWin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomCode := vars["code"]

	var req struct {
		Player string `json:"player"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.CheckWin(r.Context(), roomCode, req.Player)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	// The gateway drops this case silently; REST callers get a signal.
	if result.Verdict == engine.VerdictNotFound {
		respondError(w, http.StatusNotFound, engine.ErrUnknownPlayer.Error())
		return
	}

	// Broadcast to WebSocket clients
	if s.hub != nil && result.Won {
		s.hub.BroadcastEvent(roomCode, "game-over", map[string]string{
			"winner": result.Winner,
		})
	}

	respondJSON(w, http.StatusOK, result)
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	configName := vars["name"]

	// Remove .json extension if present
	configName = strings.TrimSuffix(configName, ".json")

	config, err := s.service.LoadConfig(r.Context(), configName)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, config)
}

func (s *Server) handleCreateConfig(w http.ResponseWriter, r *http.Request) {
	var gameConfig engine.GameConfig

	if err := json.NewDecoder(r.Body).Decode(&gameConfig); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if gameConfig.Name == "" {
		respondError(w, http.StatusBadRequest, "Config name is required")
		return
	}

	if err := s.service.SaveConfig(r.Context(), gameConfig.Name, &gameConfig); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save config: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Configuration saved successfully",
		"config_id": gameConfig.Name,
	})
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
