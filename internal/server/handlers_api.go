package server

import (
	"errors"
	"log"
	"net/http"
)

type createRoomRequest struct {
	Name string `json:"name"`
}

type joinRequest struct {
	Name string `json:"name"`
}

type leaveRequest struct {
	PlayerID string `json:"player_id"`
}

type startRequest struct {
	PlayerID     string `json:"player_id"`
	NumImpostors int    `json:"num_impostors"`
}

type resetRequest struct {
	PlayerID string `json:"player_id"`
}

type kickRequest struct {
	PlayerID string `json:"player_id"`
	TargetID string `json:"target_id"`
}

type hostRequest struct {
	PlayerID  string `json:"player_id"`
	NewHostID string `json:"new_host_id"`
}

type settingsRequest struct {
	PlayerID     string `json:"player_id"`
	GameMode     string `json:"game_mode"`
	WordCategory string `json:"word_category"`
}

// writeDomainError maps sentinel errors onto HTTP statuses. Anything
// unrecognized is an internal error; the message still goes to the client
// because nothing sensitive ever rides on these errors.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNotHost), errors.Is(err, ErrCannotRemoveSelf):
		status = http.StatusForbidden
	case errors.Is(err, ErrInsufficientPlayers),
		errors.Is(err, ErrInvalidImpostorCount),
		errors.Is(err, ErrRoundConflict),
		errors.Is(err, ErrNoWordsAvailable),
		errors.Is(err, ErrAlreadyHost),
		errors.Is(err, ErrRoomActive):
		status = http.StatusConflict
	case errors.Is(err, ErrCodeGenerationExhausted),
		errors.Is(err, ErrBackendUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	room, host, err := s.store.CreateRoom(name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.persistRoom(room, host); err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("room created room_id=%s code=%s host_id=%s", room.ID, room.Code, host.ID)
	writeJSON(w, http.StatusCreated, map[string]string{
		"room_id":   room.ID,
		"code":      room.Code,
		"player_id": host.ID,
	})
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	summaries := s.store.ListRoomSummaries()
	payload := make([]map[string]any, 0, len(summaries))
	for _, summary := range summaries {
		payload = append(payload, map[string]any{
			"room_id": summary.ID,
			"code":    summary.Code,
			"status":  summary.Status,
			"players": summary.Players,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": payload})
}

func (s *Server) handleRoomSubroutes(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if roomID, playerID, ok := parsePlayerWordPath(r.URL.Path); ok {
			s.handlePlayerWord(w, r, roomID, playerID)
			return
		}
	}

	roomID, action, ok := parseRoomPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		switch action {
		case "":
			s.handleGetRoom(w, r, roomID)
		case "players":
			s.handlePlayers(w, r, roomID)
		default:
			http.NotFound(w, r)
		}
	case http.MethodPost:
		switch action {
		case "join":
			s.handleJoin(w, r, roomID)
		case "leave":
			s.handleLeave(w, r, roomID)
		case "start":
			s.handleStart(w, r, roomID)
		case "reset":
			s.handleReset(w, r, roomID)
		case "kick":
			s.handleKick(w, r, roomID)
		case "host":
			s.handleHost(w, r, roomID)
		case "settings":
			s.handleSettings(w, r, roomID)
		default:
			http.NotFound(w, r)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleGetRoom resolves by room id or join code, so a player holding only
// the 4-character code lands on the same snapshot.
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request, idOrCode string) {
	room, ok := s.store.GetRoom(idOrCode)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, snapshot(room))
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request, idOrCode string) {
	room, ok := s.store.GetRoom(idOrCode)
	if !ok {
		http.NotFound(w, r)
		return
	}
	players := sortedPlayers(room.Players)
	payload := make([]map[string]any, 0, len(players))
	for _, player := range players {
		payload = append(payload, map[string]any{
			"id":        player.ID,
			"name":      player.Name,
			"is_host":   player.IsHost,
			"joined_at": player.JoinedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room_id": room.ID,
		"players": payload,
	})
}

// handlePlayerWord serves the caller's word for the current round. A 404
// with an in-progress room means the word row is not visible yet; clients
// retry with backoff.
func (s *Server) handlePlayerWord(w http.ResponseWriter, r *http.Request, idOrCode, playerID string) {
	room, ok := s.store.GetRoom(idOrCode)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, _, found := s.store.GetPlayer(room.ID, playerID); !found {
		http.NotFound(w, r)
		return
	}
	if room.RoundNumber == 0 {
		writeError(w, http.StatusConflict, "round not started")
		return
	}
	entry, found := wordForPlayer(room, playerID)
	if !found {
		writeError(w, http.StatusNotFound, "word not assigned")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room_id":      room.ID,
		"player_id":    playerID,
		"round_number": entry.RoundNumber,
		"word":         entry.Word,
		"is_impostor":  entry.IsImpostor,
	})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request, idOrCode string) {
	var req joinRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	room, player, err := s.store.AddPlayer(idOrCode, name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.persistPlayer(room, player); err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("player joined room_id=%s player_id=%s player_name=%s", room.ID, player.ID, name)
	writeJSON(w, http.StatusOK, map[string]string{
		"room_id":   room.ID,
		"code":      room.Code,
		"player_id": player.ID,
	})
	s.broadcastRoomUpdate(room)
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request, roomID string) {
	var req leaveRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := s.LeaveRoom(room.ID, req.PlayerID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request, roomID string) {
	var req startRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	round, err := s.StartRound(room.ID, req.PlayerID, req.NumImpostors)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room_id":      room.ID,
		"round_number": round,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, roomID string) {
	var req resetRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	round, err := s.ResetRound(room.ID, req.PlayerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room_id":      room.ID,
		"round_number": round,
	})
}

func (s *Server) handleKick(w http.ResponseWriter, r *http.Request, roomID string) {
	var req kickRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" || req.TargetID == "" {
		writeError(w, http.StatusBadRequest, "player_id and target_id are required")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := s.RemovePlayer(room.ID, req.PlayerID, req.TargetID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot(room))
}

func (s *Server) handleHost(w http.ResponseWriter, r *http.Request, roomID string) {
	var req hostRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" || req.NewHostID == "" {
		writeError(w, http.StatusBadRequest, "player_id and new_host_id are required")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := s.DelegateHost(room.ID, req.PlayerID, req.NewHostID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot(room))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request, roomID string) {
	var req settingsRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	if req.GameMode != "" && !validGameMode(req.GameMode) {
		writeError(w, http.StatusBadRequest, "invalid game mode")
		return
	}
	if req.WordCategory != "" && !validWordCategory(req.WordCategory) {
		writeError(w, http.StatusBadRequest, "invalid word category")
		return
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := s.UpdateSettings(room.ID, req.PlayerID, req.GameMode, req.WordCategory); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot(room))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]string, 0, len(wordCategories)+1)
	categories = append(categories, categoryAll)
	categories = append(categories, wordCategories...)
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
