package entity

// Snapshot is the stored form of a single browser session's game.
type Snapshot struct {
	ID            string `json:"id"`
	Board         Board  `json:"board"`
	UserTeam      Team   `json:"user_team"`
	IsPlayersTurn bool   `json:"is_players_turn"`
	IsOver        bool   `json:"is_over"`
	Winner        Team   `json:"winner"`
	IsDraw        bool   `json:"is_draw"`
}
