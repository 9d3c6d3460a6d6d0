package entity

// TurnState is the session-level state machine position.
type TurnState uint8

const (
	PlayerTurn TurnState = iota
	ComputerTurn
	GameOver
	Draw
)

func (that TurnState) String() string {
	switch that {
	case PlayerTurn:
		return "player_turn"
	case ComputerTurn:
		return "computer_turn"
	case GameOver:
		return "game_over"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves are accepted until a reset.
func (that TurnState) IsTerminal() bool {
	return that == GameOver || that == Draw
}

// Status is the turn/outcome signal shown to the player.
type Status string

const (
	StatusPlayerTurn   Status = "player_turn"
	StatusComputerTurn Status = "computer_turn"
	StatusPlayerWon    Status = "player_won"
	StatusComputerWon  Status = "computer_won"
	StatusDraw         Status = "draw"
)

var statusLabels = map[Status]string{
	StatusPlayerTurn:   "Your Turn!",
	StatusComputerTurn: "Computer's Turn!",
	StatusPlayerWon:    "You Win!!!",
	StatusComputerWon:  "Computer Wins!!!",
	StatusDraw:         "It's a Draw!",
}

// Label returns the text shown in the turn indicator.
func (that Status) Label() string {
	return statusLabels[that]
}
