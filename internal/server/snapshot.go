package server

import "sort"

// snapshot is the public view of a room: everything a lobby or game screen
// needs except the per-player words, which are served only to their owner.
// The crewmate and impostor words never appear here.
func snapshot(room *Room) map[string]any {
	players := sortedPlayers(room.Players)
	payload := make([]map[string]any, 0, len(players))
	for _, player := range players {
		payload = append(payload, map[string]any{
			"id":        player.ID,
			"name":      player.Name,
			"is_host":   player.IsHost,
			"joined_at": player.JoinedAt,
		})
	}
	return map[string]any{
		"room_id":            room.ID,
		"code":               room.Code,
		"status":             room.Status,
		"round_number":       room.RoundNumber,
		"num_impostors":      room.NumImpostors,
		"game_mode":          room.GameMode,
		"word_category":      room.WordCategory,
		"host_player_id":     room.HostPlayerID,
		"starting_player_id": room.StartingPlayerID,
		"players":            payload,
		"player_count":       len(players),
		"can_start":          room.Status == statusLobby && len(players) >= minPlayers,
	}
}

func sortedPlayers(players []Player) []Player {
	list := make([]Player, len(players))
	copy(list, players)
	sort.Slice(list, func(i, j int) bool {
		if list[i].JoinedAt.Equal(list[j].JoinedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].JoinedAt.Before(list[j].JoinedAt)
	})
	return list
}
