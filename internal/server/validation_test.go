package server

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Ana", "Ana", false},
		{"  Ana   Clara  ", "Ana Clara", false},
		{"João", "João", false},
		{"", "", true},
		{"   ", "", true},
		{strings.Repeat("a", maxNameLength), strings.Repeat("a", maxNameLength), false},
		{strings.Repeat("a", maxNameLength+1), "", true},
		{"<script>", "", true},
	}
	for _, tc := range cases {
		got, err := validateName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("validateName(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("validateName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("validateName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidGameMode(t *testing.T) {
	if !validGameMode(modeNormal) || !validGameMode(modeAnonymous) {
		t.Fatalf("expected built-in modes to be valid")
	}
	if validGameMode("hardcore") {
		t.Fatalf("expected unknown mode to be invalid")
	}
}

func TestParseRoomPath(t *testing.T) {
	cases := []struct {
		path   string
		roomID string
		action string
		ok     bool
	}{
		{"/api/rooms/abc", "abc", "", true},
		{"/api/rooms/abc/start", "abc", "start", true},
		{"/api/rooms/abc/start/extra", "", "", false},
		{"/api/rooms/", "", "", false},
		{"/api/other/abc", "", "", false},
	}
	for _, tc := range cases {
		roomID, action, ok := parseRoomPath(tc.path)
		if ok != tc.ok || roomID != tc.roomID || action != tc.action {
			t.Fatalf("parseRoomPath(%q) = (%q, %q, %t), want (%q, %q, %t)",
				tc.path, roomID, action, ok, tc.roomID, tc.action, tc.ok)
		}
	}
}

func TestParsePlayerWordPath(t *testing.T) {
	roomID, playerID, ok := parsePlayerWordPath("/api/rooms/r1/players/p1/word")
	if !ok || roomID != "r1" || playerID != "p1" {
		t.Fatalf("expected (r1, p1, true), got (%q, %q, %t)", roomID, playerID, ok)
	}
	if _, _, ok := parsePlayerWordPath("/api/rooms/r1/players/p1"); ok {
		t.Fatalf("expected short path to fail")
	}
	if _, _, ok := parsePlayerWordPath("/api/rooms/r1/words/p1/word"); ok {
		t.Fatalf("expected wrong segment to fail")
	}
}
