package server

type EventPayload struct {
	RoomCode     string `json:"room_code,omitempty"`
	PlayerName   string `json:"player,omitempty"`
	PlayerID     string `json:"player_id,omitempty"`
	NewHostID    string `json:"new_host_id,omitempty"`
	RoundNumber  int    `json:"round_number,omitempty"`
	NumImpostors int    `json:"num_impostors,omitempty"`
	WordPairID   uint   `json:"word_pair_id,omitempty"`
	GameMode     string `json:"game_mode,omitempty"`
	WordCategory string `json:"word_category,omitempty"`
	ForcedReset  bool   `json:"forced_reset,omitempty"`
}
