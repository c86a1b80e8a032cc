package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/iorran/impostor/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// The database is a mirror of the in-memory store: every persist function
// no-ops when the server runs without a connection, and each mutation is
// mirrored in a fixed order so readers of the rows never observe a round
// number whose word rows are missing.

func (s *Server) persistRoom(room *Room, host *Player) error {
	if s.db == nil {
		return nil
	}
	roomID, hostID, err := rowIDs(room.ID, host.ID)
	if err != nil {
		return err
	}
	ctx, cancel := s.backendContext()
	defer cancel()
	conn := s.db.WithContext(ctx)

	record := db.Room{
		ID:           roomID,
		Code:         room.Code,
		HostPlayerID: &hostID,
		Status:       room.Status,
		RoundNumber:  room.RoundNumber,
		NumImpostors: room.NumImpostors,
		GameMode:     room.GameMode,
		WordCategory: room.WordCategory,
	}
	if err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("%w: create room row: %v", ErrBackendUnavailable, err)
	}
	hostRow := db.Player{
		ID:       hostID,
		RoomID:   roomID,
		Name:     host.Name,
		IsHost:   true,
		JoinedAt: host.JoinedAt,
	}
	if err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&hostRow).Error; err != nil {
		return fmt.Errorf("%w: create host row: %v", ErrBackendUnavailable, err)
	}
	s.persistEvent(room, "room_created", EventPayload{
		RoomCode:   room.Code,
		PlayerID:   host.ID,
		PlayerName: host.Name,
	})
	return nil
}

func (s *Server) persistPlayer(room *Room, player *Player) error {
	if s.db == nil {
		return nil
	}
	roomID, playerID, err := rowIDs(room.ID, player.ID)
	if err != nil {
		return err
	}
	ctx, cancel := s.backendContext()
	defer cancel()

	record := db.Player{
		ID:       playerID,
		RoomID:   roomID,
		Name:     player.Name,
		IsHost:   player.IsHost,
		JoinedAt: player.JoinedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if !isUniqueViolation(err) {
			return fmt.Errorf("%w: create player row: %v", ErrBackendUnavailable, err)
		}
	}
	s.persistEvent(room, "player_joined", EventPayload{
		PlayerID:   player.ID,
		PlayerName: player.Name,
	})
	return nil
}

// persistRound mirrors a committed round transition. Order matters: stale
// word rows go first, the new batch second, and the rooms row update last,
// because a bumped round_number is the external signal that words are ready.
func (s *Server) persistRound(room *Room, plan roundPlan) error {
	if s.db == nil {
		return nil
	}
	roomID, err := uuid.Parse(plan.RoomID)
	if err != nil {
		return fmt.Errorf("parse room id: %w", err)
	}
	ctx, cancel := s.backendContext()
	defer cancel()
	conn := s.db.WithContext(ctx)

	if err := conn.Where("room_id = ?", roomID).Delete(&db.PlayerWord{}).Error; err != nil {
		return fmt.Errorf("%w: delete stale word rows: %v", ErrBackendUnavailable, err)
	}

	rows := make([]db.PlayerWord, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		playerID, err := uuid.Parse(entry.PlayerID)
		if err != nil {
			return fmt.Errorf("parse player id: %w", err)
		}
		rows = append(rows, db.PlayerWord{
			RoomID:      roomID,
			RoundNumber: entry.RoundNumber,
			PlayerID:    playerID,
			Word:        entry.Word,
			IsImpostor:  entry.IsImpostor,
		})
	}
	if err := conn.Create(&rows).Error; err != nil {
		return fmt.Errorf("%w: insert word rows: %v", ErrBackendUnavailable, err)
	}

	updates := map[string]any{
		"round_number":  plan.RoundNumber,
		"word":          plan.Pair.CrewmateWord,
		"impostor_word": plan.Pair.ImpostorWord,
		"num_impostors": plan.NumImpostors,
	}
	if plan.Started {
		updates["status"] = statusInProgress
	}
	if startingID, err := uuid.Parse(plan.StartingPlayerID); err == nil {
		updates["starting_player_id"] = startingID
	}
	if err := conn.Model(&db.Room{}).Where("id = ?", roomID).Updates(updates).Error; err != nil {
		return fmt.Errorf("%w: update room row: %v", ErrBackendUnavailable, err)
	}

	// History and events are advisory; a failure here must not fail a round
	// that players can already see.
	history := db.RoomWordHistory{
		RoomID:      roomID,
		RoundNumber: plan.RoundNumber,
		WordPairID:  plan.Pair.ID,
	}
	if err := conn.Create(&history).Error; err != nil {
		log.Printf("persist word history failed room_id=%s err=%v", room.ID, err)
	} else if err := db.PruneWordHistory(conn, roomID, s.cfg.WordHistoryLimit); err != nil {
		log.Printf("prune word history failed room_id=%s err=%v", room.ID, err)
	}

	event := "round_reset"
	if plan.Started {
		event = "round_started"
	}
	s.persistEvent(room, event, EventPayload{
		RoundNumber:  plan.RoundNumber,
		NumImpostors: plan.NumImpostors,
		WordPairID:   plan.Pair.ID,
	})
	return nil
}

// persistPlayerRemoval mirrors a kick. A forced reset rewinds the rooms row
// before the player row disappears, same order as the in-memory transition.
func (s *Server) persistPlayerRemoval(room *Room, targetID string, forced bool) error {
	if s.db == nil {
		return nil
	}
	roomID, playerID, err := rowIDs(room.ID, targetID)
	if err != nil {
		return err
	}
	ctx, cancel := s.backendContext()
	defer cancel()
	conn := s.db.WithContext(ctx)

	if forced {
		if err := conn.Where("room_id = ?", roomID).Delete(&db.PlayerWord{}).Error; err != nil {
			return fmt.Errorf("%w: delete word rows: %v", ErrBackendUnavailable, err)
		}
		updates := map[string]any{
			"status":             statusLobby,
			"round_number":       0,
			"word":               "",
			"impostor_word":      "",
			"starting_player_id": nil,
		}
		if err := conn.Model(&db.Room{}).Where("id = ?", roomID).Updates(updates).Error; err != nil {
			return fmt.Errorf("%w: rewind room row: %v", ErrBackendUnavailable, err)
		}
	}
	if err := conn.Where("id = ? AND room_id = ?", playerID, roomID).Delete(&db.Player{}).Error; err != nil {
		return fmt.Errorf("%w: delete player row: %v", ErrBackendUnavailable, err)
	}
	s.persistEvent(room, "player_removed", EventPayload{
		PlayerID:    targetID,
		ForcedReset: forced,
	})
	return nil
}

func (s *Server) persistPlayerDelete(room *Room, playerID string) error {
	if s.db == nil {
		return nil
	}
	roomID, rowID, err := rowIDs(room.ID, playerID)
	if err != nil {
		return err
	}
	ctx, cancel := s.backendContext()
	defer cancel()

	if err := s.db.WithContext(ctx).
		Where("id = ? AND room_id = ?", rowID, roomID).
		Delete(&db.Player{}).Error; err != nil {
		return fmt.Errorf("%w: delete player row: %v", ErrBackendUnavailable, err)
	}
	s.persistEvent(room, "player_left", EventPayload{PlayerID: playerID})
	return nil
}

func (s *Server) persistHostDelegation(room *Room, oldHostID, newHostID string) error {
	if s.db == nil {
		return nil
	}
	roomID, newID, err := rowIDs(room.ID, newHostID)
	if err != nil {
		return err
	}
	oldID, err := uuid.Parse(oldHostID)
	if err != nil {
		return fmt.Errorf("parse player id: %w", err)
	}
	ctx, cancel := s.backendContext()
	defer cancel()
	conn := s.db.WithContext(ctx)

	if err := conn.Model(&db.Room{}).Where("id = ?", roomID).
		Update("host_player_id", newID).Error; err != nil {
		return fmt.Errorf("%w: update room host: %v", ErrBackendUnavailable, err)
	}
	if err := conn.Model(&db.Player{}).Where("id = ?", oldID).
		Update("is_host", false).Error; err != nil {
		return fmt.Errorf("%w: clear host flag: %v", ErrBackendUnavailable, err)
	}
	if err := conn.Model(&db.Player{}).Where("id = ?", newID).
		Update("is_host", true).Error; err != nil {
		return fmt.Errorf("%w: set host flag: %v", ErrBackendUnavailable, err)
	}
	s.persistEvent(room, "host_delegated", EventPayload{
		PlayerID:  oldHostID,
		NewHostID: newHostID,
	})
	return nil
}

func (s *Server) persistSettings(room *Room) error {
	if s.db == nil {
		return nil
	}
	roomID, err := uuid.Parse(room.ID)
	if err != nil {
		return fmt.Errorf("parse room id: %w", err)
	}
	ctx, cancel := s.backendContext()
	defer cancel()

	updates := map[string]any{
		"game_mode":     room.GameMode,
		"word_category": room.WordCategory,
	}
	if err := s.db.WithContext(ctx).Model(&db.Room{}).
		Where("id = ?", roomID).Updates(updates).Error; err != nil {
		return fmt.Errorf("%w: update settings: %v", ErrBackendUnavailable, err)
	}
	s.persistEvent(room, "settings_updated", EventPayload{
		GameMode:     room.GameMode,
		WordCategory: room.WordCategory,
	})
	return nil
}

// persistEvent appends to the audit log. Failures are logged, never surfaced.
func (s *Server) persistEvent(room *Room, eventType string, payload EventPayload) {
	if s.db == nil {
		return
	}
	roomID, err := uuid.Parse(room.ID)
	if err != nil {
		log.Printf("persist event skipped room_id=%s err=%v", room.ID, err)
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("persist event skipped room_id=%s err=%v", room.ID, err)
		return
	}
	ctx, cancel := s.backendContext()
	defer cancel()

	event := db.Event{
		RoomID:   roomID,
		PlayerID: eventPlayerID(payload),
		Type:     eventType,
		Payload:  datatypes.JSON(data),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		log.Printf("persist event failed room_id=%s type=%s err=%v", room.ID, eventType, err)
	}
}

func eventPlayerID(payload EventPayload) *uuid.UUID {
	if payload.PlayerID == "" {
		return nil
	}
	id, err := uuid.Parse(payload.PlayerID)
	if err != nil {
		return nil
	}
	return &id
}

func rowIDs(roomID, playerID string) (uuid.UUID, uuid.UUID, error) {
	room, err := uuid.Parse(roomID)
	if err != nil {
		return uuid.UUID{}, uuid.UUID{}, fmt.Errorf("parse room id: %w", err)
	}
	player, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.UUID{}, uuid.UUID{}, fmt.Errorf("parse player id: %w", err)
	}
	return room, player, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
