package server

import (
	"errors"
	"log"

	"github.com/iorran/impostor/internal/db"

	"gorm.io/gorm"
)

// RestoreRooms rebuilds the in-memory store from database rows at boot, so a
// restart does not strand rooms whose players still hold their ids. Word rows
// for the current round and the recent pair history come back with the room;
// older rounds do not matter once their round number is stale.
func (s *Server) RestoreRooms() error {
	if s.db == nil {
		return nil
	}
	ctx, cancel := s.backendContext()
	defer cancel()
	conn := s.db.WithContext(ctx)

	var records []db.Room
	if err := conn.Order("created_at asc").Find(&records).Error; err != nil {
		return err
	}
	restored := 0
	for _, record := range records {
		room, err := s.buildRoom(conn, record)
		if err != nil {
			log.Printf("restore skipped room_id=%s err=%v", record.ID, err)
			continue
		}
		if err := s.store.RestoreRoom(room); err != nil {
			if !errors.Is(err, ErrRoomActive) {
				log.Printf("restore skipped room_id=%s err=%v", record.ID, err)
			}
			continue
		}
		restored++
	}
	if restored > 0 {
		log.Printf("rooms restored count=%d", restored)
	}
	return nil
}

func (s *Server) buildRoom(conn *gorm.DB, record db.Room) (*Room, error) {
	var playerRecords []db.Player
	if err := conn.Where("room_id = ?", record.ID).
		Order("joined_at asc").Find(&playerRecords).Error; err != nil {
		return nil, err
	}
	var wordRecords []db.PlayerWord
	if record.RoundNumber > 0 {
		if err := conn.Where("room_id = ? AND round_number = ?", record.ID, record.RoundNumber).
			Order("id asc").Find(&wordRecords).Error; err != nil {
			return nil, err
		}
	}
	// Pruning of history rows is best-effort, so cap the read here too; the
	// in-memory exclusion set never grows past the configured limit.
	var historyRecords []db.RoomWordHistory
	historyQuery := conn.Where("room_id = ?", record.ID).Order("round_number desc")
	if limit := s.cfg.WordHistoryLimit; limit > 0 {
		historyQuery = historyQuery.Limit(limit)
	}
	if err := historyQuery.Find(&historyRecords).Error; err != nil {
		return nil, err
	}

	room := &Room{
		ID:           record.ID.String(),
		Code:         record.Code,
		Status:       record.Status,
		RoundNumber:  record.RoundNumber,
		Word:         record.Word,
		ImpostorWord: record.ImpostorWord,
		NumImpostors: record.NumImpostors,
		GameMode:     record.GameMode,
		WordCategory: record.WordCategory,
	}
	if record.HostPlayerID != nil {
		room.HostPlayerID = record.HostPlayerID.String()
	}
	if record.StartingPlayerID != nil {
		room.StartingPlayerID = record.StartingPlayerID.String()
	}
	for _, player := range playerRecords {
		room.Players = append(room.Players, Player{
			ID:       player.ID.String(),
			Name:     player.Name,
			IsHost:   player.IsHost,
			JoinedAt: player.JoinedAt,
		})
	}
	for _, word := range wordRecords {
		room.Words = append(room.Words, WordEntry{
			PlayerID:    word.PlayerID.String(),
			RoundNumber: word.RoundNumber,
			Word:        word.Word,
			IsImpostor:  word.IsImpostor,
			DBID:        word.ID,
		})
	}
	for i := len(historyRecords) - 1; i >= 0; i-- {
		room.History = append(room.History, historyRecords[i].WordPairID)
	}
	room.History = capHistory(room.History, s.cfg.WordHistoryLimit)
	return room, nil
}
