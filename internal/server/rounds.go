package server

import (
	"log"
	"math/rand"
)

// roundPlan captures one committed round transition for the row mirror.
type roundPlan struct {
	RoomID           string
	RoundNumber      int
	Entries          []WordEntry
	Pair             WordPair
	NumImpostors     int
	StartingPlayerID string
	Started          bool // start vs reset, event naming only
}

// StartRound runs the host-initiated round transition: pick a word pair,
// partition players into impostors and crewmates, write one word per player,
// then flip the room's visible round number.
func (s *Server) StartRound(roomID, actorID string, numImpostors int) (int, error) {
	return s.transitionRound(roomID, actorID, numImpostors, true)
}

// ResetRound starts the next round reusing the room's impostor count,
// clamped into [1, players-1].
func (s *Server) ResetRound(roomID, actorID string) (int, error) {
	return s.transitionRound(roomID, actorID, 0, false)
}

func (s *Server) transitionRound(roomID, actorID string, numImpostors int, start bool) (int, error) {
	// Plan against a stable read of the room. The commit below re-checks the
	// round number so a concurrent transition loses instead of interleaving.
	var expectedRound int
	var category string
	var excluded map[uint]struct{}
	room, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		if room.HostPlayerID != actorID {
			return ErrNotHost
		}
		if len(room.Players) < minPlayers {
			return ErrInsufficientPlayers
		}
		if start && (numImpostors < 1 || numImpostors >= len(room.Players)) {
			return ErrInvalidImpostorCount
		}
		expectedRound = room.RoundNumber
		category = room.WordCategory
		excluded = excludedPairIDs(room)
		return nil
	})
	if err != nil {
		return 0, err
	}

	pair, err := s.selectWordPair(category, excluded)
	if err != nil {
		return 0, err
	}

	var plan roundPlan
	_, err = s.store.UpdateRoom(room.ID, func(room *Room) error {
		if room.RoundNumber != expectedRound {
			return ErrRoundConflict
		}
		if len(room.Players) < minPlayers {
			return ErrInsufficientPlayers
		}
		count := numImpostors
		if !start {
			count = room.NumImpostors
			if count < 1 {
				count = 1
			}
			if count >= len(room.Players) {
				count = len(room.Players) - 1
			}
		}
		if count < 1 || count >= len(room.Players) {
			return ErrInvalidImpostorCount
		}

		players := shuffledCopy(room.Players)
		impostors, err := assignRoles(len(players), count)
		if err != nil {
			return err
		}
		startingPlayer := players[rand.Intn(len(players))]

		newRound := room.RoundNumber + 1
		entries := make([]WordEntry, 0, len(players))
		seen := make(map[string]struct{}, len(players))
		for index, player := range players {
			if _, dup := seen[player.ID]; dup {
				return ErrDuplicateAssignment
			}
			seen[player.ID] = struct{}{}
			word := pair.CrewmateWord
			_, isImpostor := impostors[index]
			if isImpostor {
				word = pair.ImpostorWord
			}
			entries = append(entries, WordEntry{
				PlayerID:    player.ID,
				RoundNumber: newRound,
				Word:        word,
				IsImpostor:  isImpostor,
			})
		}

		room.RoundNumber = newRound
		// a plain reset never touches status; only start flips it
		if start {
			room.Status = statusInProgress
		}
		room.Word = pair.CrewmateWord
		room.ImpostorWord = pair.ImpostorWord
		room.StartingPlayerID = startingPlayer.ID
		room.NumImpostors = count
		room.Words = entries
		room.History = capHistory(append(room.History, pair.ID), s.cfg.WordHistoryLimit)

		plan = roundPlan{
			RoomID:           room.ID,
			RoundNumber:      newRound,
			Entries:          entries,
			Pair:             pair,
			NumImpostors:     count,
			StartingPlayerID: startingPlayer.ID,
			Started:          start,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := s.persistRound(room, plan); err != nil {
		return 0, err
	}

	event := "round_reset"
	if plan.Started {
		event = "round_started"
	}
	log.Printf("%s room_id=%s round=%d players=%d impostors=%d",
		event, room.ID, plan.RoundNumber, len(plan.Entries), plan.NumImpostors)
	s.broadcastRoomUpdate(room)
	return plan.RoundNumber, nil
}

// RemovePlayer is the host-only kick. A game in progress is forced back to
// the lobby (word rows wiped, round number zeroed) before the row is deleted.
func (s *Server) RemovePlayer(roomID, actorID, targetID string) error {
	forced := false
	room, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		if room.HostPlayerID != actorID {
			return ErrNotHost
		}
		if targetID == actorID {
			return ErrCannotRemoveSelf
		}
		if _, ok := s.store.FindPlayer(room, targetID); !ok {
			return ErrPlayerNotFound
		}
		if room.Status == statusInProgress {
			forced = true
			forceLobby(room)
		}
		for i := range room.Players {
			if room.Players[i].ID == targetID {
				room.Players = append(room.Players[:i], room.Players[i+1:]...)
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.persistPlayerRemoval(room, targetID, forced); err != nil {
		return err
	}
	log.Printf("player removed room_id=%s target_id=%s forced_reset=%t", room.ID, targetID, forced)
	s.broadcastRoomUpdate(room)
	return nil
}

// LeaveRoom deletes the caller's own player row. The room itself is left
// as-is, matching the observed behavior of the original client.
func (s *Server) LeaveRoom(roomID, playerID string) error {
	room, ok := s.store.RemovePlayer(roomID, playerID)
	if room == nil {
		return ErrRoomNotFound
	}
	if !ok {
		return ErrPlayerNotFound
	}
	if err := s.persistPlayerDelete(room, playerID); err != nil {
		return err
	}
	log.Printf("player left room_id=%s player_id=%s", room.ID, playerID)
	s.broadcastRoomUpdate(room)
	return nil
}

// DelegateHost moves the host flag between two player rows and repoints the
// room's host reference.
func (s *Server) DelegateHost(roomID, actorID, newHostID string) error {
	room, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		if room.HostPlayerID != actorID {
			return ErrNotHost
		}
		if newHostID == actorID {
			return ErrAlreadyHost
		}
		newHost, ok := s.store.FindPlayer(room, newHostID)
		if !ok {
			return ErrPlayerNotFound
		}
		if oldHost, ok := s.store.FindPlayer(room, actorID); ok {
			oldHost.IsHost = false
		}
		newHost.IsHost = true
		room.HostPlayerID = newHostID
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.persistHostDelegation(room, actorID, newHostID); err != nil {
		return err
	}
	log.Printf("host delegated room_id=%s from=%s to=%s", room.ID, actorID, newHostID)
	s.broadcastRoomUpdate(room)
	return nil
}

// UpdateSettings applies host-only lobby settings (game mode, word category).
func (s *Server) UpdateSettings(roomID, actorID, gameMode, wordCategory string) error {
	room, err := s.store.UpdateRoom(roomID, func(room *Room) error {
		if room.HostPlayerID != actorID {
			return ErrNotHost
		}
		if gameMode != "" {
			room.GameMode = gameMode
		}
		if wordCategory != "" {
			room.WordCategory = wordCategory
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.persistSettings(room); err != nil {
		return err
	}
	log.Printf("settings updated room_id=%s game_mode=%s word_category=%s",
		room.ID, room.GameMode, room.WordCategory)
	s.broadcastRoomUpdate(room)
	return nil
}

// capHistory keeps only the most recent entries, matching the exclusion
// window the word source applies.
func capHistory(history []uint, limit int) []uint {
	if limit > 0 && len(history) > limit {
		return history[len(history)-limit:]
	}
	return history
}

// forceLobby rewinds a room to its pre-game state.
func forceLobby(room *Room) {
	room.Status = statusLobby
	room.RoundNumber = 0
	room.Word = ""
	room.ImpostorWord = ""
	room.StartingPlayerID = ""
	room.Words = nil
}

func wordForPlayer(room *Room, playerID string) (WordEntry, bool) {
	for _, entry := range room.Words {
		if entry.PlayerID == playerID && entry.RoundNumber == room.RoundNumber {
			return entry, true
		}
	}
	return WordEntry{}, false
}
