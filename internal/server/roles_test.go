package server

import "testing"

func TestAssignRolesExactCounts(t *testing.T) {
	for count := minPlayers; count <= 8; count++ {
		for impostors := 1; impostors < count; impostors++ {
			roles, err := assignRoles(count, impostors)
			if err != nil {
				t.Fatalf("count=%d impostors=%d: %v", count, impostors, err)
			}
			if len(roles) != impostors {
				t.Fatalf("count=%d impostors=%d: got %d impostor slots", count, impostors, len(roles))
			}
			for index := range roles {
				if index < 0 || index >= count {
					t.Fatalf("impostor index %d out of range [0,%d)", index, count)
				}
			}
		}
	}
}

func TestAssignRolesRejectsInvalidCounts(t *testing.T) {
	cases := []struct {
		count     int
		impostors int
	}{
		{2, 1},
		{3, 0},
		{3, 3},
		{5, -1},
		{5, 5},
	}
	for _, tc := range cases {
		if _, err := assignRoles(tc.count, tc.impostors); err == nil {
			t.Fatalf("count=%d impostors=%d: expected error", tc.count, tc.impostors)
		}
	}
}
