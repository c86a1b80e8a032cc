package db

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wordPairRecord struct {
	Category     string
	CrewmateWord string
	ImpostorWord string
}

// LoadWordPairs reads word pairs from a CSV (category,crewmate_word,impostor_word)
// and upserts them into the word_pairs table.
func LoadWordPairs(conn *gorm.DB, path string) (int, error) {
	if conn == nil {
		return 0, nil
	}
	records, err := readWordPairs(path)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, record := range records {
		entry := WordPair{
			Category:     record.Category,
			CrewmateWord: record.CrewmateWord,
			ImpostorWord: record.ImpostorWord,
		}
		if err := conn.FirstOrCreate(&entry, WordPair{
			CrewmateWord: entry.CrewmateWord,
			ImpostorWord: entry.ImpostorWord,
		}).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// PruneWordHistory removes history rows older than the newest keep rounds of a room.
func PruneWordHistory(conn *gorm.DB, roomID uuid.UUID, keep int) error {
	if conn == nil || keep <= 0 {
		return nil
	}
	var cutoff RoomWordHistory
	err := conn.Where("room_id = ?", roomID).
		Order("round_number desc").
		Offset(keep - 1).
		First(&cutoff).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return conn.Where("room_id = ? AND round_number < ?", roomID, cutoff.RoundNumber).
		Delete(&RoomWordHistory{}).Error
}

func readWordPairs(path string) ([]wordPairRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []wordPairRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 3 {
			continue
		}
		category := strings.TrimSpace(row[0])
		crewmate := strings.TrimSpace(row[1])
		impostor := strings.TrimSpace(row[2])
		if category == "" || crewmate == "" || impostor == "" {
			continue
		}
		records = append(records, wordPairRecord{
			Category:     category,
			CrewmateWord: crewmate,
			ImpostorWord: impostor,
		})
	}
	return records, nil
}
