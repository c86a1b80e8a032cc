package server

import "time"

const (
	statusLobby      = "lobby"
	statusInProgress = "in_progress"
)

const (
	modeNormal    = "normal"
	modeAnonymous = "anonymous"
)

const categoryAll = "all"

// minPlayers is the smallest room that can start a round.
const minPlayers = 3

type RoomSummary struct {
	ID      string
	Code    string
	Status  string
	Players int
}

type Room struct {
	ID               string
	Code             string
	HostPlayerID     string
	Status           string
	RoundNumber      int
	Word             string
	ImpostorWord     string
	NumImpostors     int
	GameMode         string
	WordCategory     string
	StartingPlayerID string
	Players          []Player
	Words            []WordEntry
	History          []uint // word pair ids of recent rounds, most recent last
}

type Player struct {
	ID       string
	Name     string
	IsHost   bool
	JoinedAt time.Time
}

// WordEntry is one player's word assignment for the room's current round.
type WordEntry struct {
	PlayerID    string
	RoundNumber int
	Word        string
	IsImpostor  bool
	DBID        uint
}

type WordPair struct {
	ID           uint
	CrewmateWord string
	ImpostorWord string
	Category     string
}
