package server

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the authoritative in-memory copy of all live rooms. Postgres
// rows are a mirror written by the persistence layer after each mutation.
type Store struct {
	mu           sync.Mutex
	codeAttempts int
	rooms        map[string]*Room
}

func NewStore(codeAttempts int) *Store {
	if codeAttempts <= 0 {
		codeAttempts = 100
	}
	return &Store{
		codeAttempts: codeAttempts,
		rooms:        make(map[string]*Room),
	}
}

// CreateRoom allocates a room with a unique join code and its host player.
func (s *Store) CreateRoom(hostName string) (*Room, *Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.uniqueCode()
	if err != nil {
		return nil, nil, err
	}

	host := Player{
		ID:       uuid.NewString(),
		Name:     hostName,
		IsHost:   true,
		JoinedAt: timeNowUTC(),
	}
	room := &Room{
		ID:           uuid.NewString(),
		Code:         code,
		HostPlayerID: host.ID,
		Status:       statusLobby,
		RoundNumber:  0,
		NumImpostors: 1,
		GameMode:     modeNormal,
		WordCategory: categoryAll,
		Players:      []Player{host},
	}
	s.rooms[room.ID] = room
	return room, &room.Players[0], nil
}

func (s *Store) uniqueCode() (string, error) {
	for attempt := 0; attempt < s.codeAttempts; attempt++ {
		code := newRoomCode()
		if _, taken := s.findByCode(code); !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}

// GetRoom resolves a room by id, falling back to join code lookup.
func (s *Store) GetRoom(idOrCode string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[idOrCode]; ok {
		return room, true
	}
	return s.findByCode(idOrCode)
}

func (s *Store) FindRoomByCode(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByCode(code)
}

func (s *Store) findByCode(code string) (*Room, bool) {
	code = strings.ToUpper(code)
	for _, room := range s.rooms {
		if room.Code == code {
			return room, true
		}
	}
	return nil, false
}

// UpdateRoom runs update under the store lock; any error leaves the room
// untouched only if the closure itself mutates nothing before failing.
func (s *Store) UpdateRoom(id string, update func(room *Room) error) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if err := update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// AddPlayer appends a new player to a room found by id or join code.
func (s *Store) AddPlayer(idOrCode, name string) (*Room, *Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[idOrCode]
	if !ok {
		room, ok = s.findByCode(idOrCode)
	}
	if !ok {
		return nil, nil, ErrRoomNotFound
	}

	player := Player{
		ID:       uuid.NewString(),
		Name:     name,
		JoinedAt: timeNowUTC(),
	}
	room.Players = append(room.Players, player)
	return room, &room.Players[len(room.Players)-1], nil
}

// RemovePlayer deletes a player row from the room, if present.
func (s *Store) RemovePlayer(roomID, playerID string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			return room, true
		}
	}
	return room, false
}

// RestoreRoom registers a room rebuilt from database rows.
func (s *Store) RestoreRoom(room *Room) error {
	if room == nil {
		return ErrRoomNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.ID]; ok {
		return ErrRoomActive
	}
	if _, ok := s.findByCode(room.Code); ok {
		return ErrRoomActive
	}
	s.rooms[room.ID] = room
	return nil
}

func (s *Store) GetPlayer(roomID, playerID string) (*Room, *Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, nil, false
	}
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			return room, &room.Players[i], true
		}
	}
	return room, nil, false
}

func (s *Store) FindPlayer(room *Room, playerID string) (*Player, bool) {
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			return &room.Players[i], true
		}
	}
	return nil, false
}

func (s *Store) ListRoomSummaries() []RoomSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]RoomSummary, 0, len(s.rooms))
	for _, room := range s.rooms {
		list = append(list, RoomSummary{
			ID:      room.ID,
			Code:    room.Code,
			Status:  room.Status,
			Players: len(room.Players),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})
	return list
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
