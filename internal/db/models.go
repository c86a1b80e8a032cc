package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Room struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code             string     `gorm:"size:4;uniqueIndex;not null"`
	HostPlayerID     *uuid.UUID `gorm:"type:uuid"`
	Status           string     `gorm:"size:32;not null"`
	RoundNumber      int        `gorm:"not null;default:0"`
	Word             string     `gorm:"size:64"`
	ImpostorWord     string     `gorm:"size:64"`
	NumImpostors     int        `gorm:"not null;default:1"`
	GameMode         string     `gorm:"size:16;not null;default:'normal'"`
	WordCategory     string     `gorm:"size:32;not null;default:'all'"`
	StartingPlayerID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
	Players          []Player
	Words            []PlayerWord
	History          []RoomWordHistory
	Events           []Event
}

type Player struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"size:20;not null"`
	IsHost    bool      `gorm:"not null;default:false"`
	JoinedAt  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PlayerWord struct {
	ID          uint      `gorm:"primaryKey"`
	RoomID      uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_player_words_room_round_player"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_player_words_room_round_player"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_words_room_round_player"`
	Word        string    `gorm:"size:64;not null"`
	IsImpostor  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

type WordPair struct {
	ID           uint      `gorm:"primaryKey"`
	CrewmateWord string    `gorm:"size:64;not null;uniqueIndex:idx_word_pairs_pair"`
	ImpostorWord string    `gorm:"size:64;not null;uniqueIndex:idx_word_pairs_pair"`
	Category     string    `gorm:"size:32;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

type RoomWordHistory struct {
	ID          uint      `gorm:"primaryKey"`
	RoomID      uuid.UUID `gorm:"type:uuid;index;not null"`
	RoundNumber int       `gorm:"not null"`
	WordPairID  uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (RoomWordHistory) TableName() string {
	return "room_word_history"
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	RoomID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	PlayerID  *uuid.UUID     `gorm:"type:uuid;index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
