package server

import (
	"strings"
	"testing"
)

func TestCreateRoomDefaults(t *testing.T) {
	store := NewStore(100)
	room, host, err := store.CreateRoom("Ana")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if room.Status != statusLobby {
		t.Fatalf("expected status %q, got %q", statusLobby, room.Status)
	}
	if room.RoundNumber != 0 {
		t.Fatalf("expected round 0, got %d", room.RoundNumber)
	}
	if room.NumImpostors != 1 {
		t.Fatalf("expected 1 impostor default, got %d", room.NumImpostors)
	}
	if room.GameMode != modeNormal {
		t.Fatalf("expected mode %q, got %q", modeNormal, room.GameMode)
	}
	if room.WordCategory != categoryAll {
		t.Fatalf("expected category %q, got %q", categoryAll, room.WordCategory)
	}
	if !host.IsHost {
		t.Fatalf("expected creator flagged as host")
	}
	if room.HostPlayerID != host.ID {
		t.Fatalf("expected host pointer %q, got %q", host.ID, room.HostPlayerID)
	}
	if len(room.Code) != 4 {
		t.Fatalf("expected 4 character code, got %q", room.Code)
	}
	for _, r := range room.Code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("code %q contains character outside alphabet", room.Code)
		}
	}
}

func TestCreateRoomUniqueCodes(t *testing.T) {
	store := NewStore(100)
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		room, _, err := store.CreateRoom("Ana")
		if err != nil {
			t.Fatalf("create room %d: %v", i, err)
		}
		if _, dup := seen[room.Code]; dup {
			t.Fatalf("duplicate code %q", room.Code)
		}
		seen[room.Code] = struct{}{}
	}
}

func TestGetRoomByCodeCaseInsensitive(t *testing.T) {
	store := NewStore(100)
	room, _, err := store.CreateRoom("Ana")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	found, ok := store.GetRoom(strings.ToLower(room.Code))
	if !ok || found.ID != room.ID {
		t.Fatalf("expected lookup by lowercase code to find room")
	}
}

func TestAddPlayerUnknownRoom(t *testing.T) {
	store := NewStore(100)
	if _, _, err := store.AddPlayer("nope", "Bruno"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRemovePlayer(t *testing.T) {
	store := NewStore(100)
	room, _, err := store.CreateRoom("Ana")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	_, player, err := store.AddPlayer(room.ID, "Bruno")
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if _, ok := store.RemovePlayer(room.ID, player.ID); !ok {
		t.Fatalf("expected removal to succeed")
	}
	if _, ok := store.RemovePlayer(room.ID, player.ID); ok {
		t.Fatalf("expected second removal to fail")
	}
	if len(room.Players) != 1 {
		t.Fatalf("expected 1 player left, got %d", len(room.Players))
	}
}

func TestRestoreRoomRejectsActiveCode(t *testing.T) {
	store := NewStore(100)
	room, _, err := store.CreateRoom("Ana")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	clone := &Room{ID: "other-id", Code: room.Code}
	if err := store.RestoreRoom(clone); err != ErrRoomActive {
		t.Fatalf("expected ErrRoomActive, got %v", err)
	}
}

func TestListRoomSummariesSorted(t *testing.T) {
	store := NewStore(100)
	for i := 0; i < 5; i++ {
		if _, _, err := store.CreateRoom("Ana"); err != nil {
			t.Fatalf("create room %d: %v", i, err)
		}
	}
	list := store.ListRoomSummaries()
	if len(list) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Code > list[i].Code {
			t.Fatalf("summaries not sorted by code: %q > %q", list[i-1].Code, list[i].Code)
		}
	}
}
