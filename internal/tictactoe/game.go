package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

var (
	ErrInvalidCell      = errors.New("invalid cell")
	ErrInvalidTeam      = errors.New("invalid team")
	ErrNoAvailableMoves = errors.New("no available moves")

	// WinLines are checked in this order; the first complete line decides the winner.
	WinLines = [8][3]entity.Cell{
		{{Col: 0, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 2}}, // main diagonal
		{{Col: 2, Row: 0}, {Col: 1, Row: 1}, {Col: 0, Row: 2}}, // anti diagonal
		{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 0, Row: 2}}, // column 0
		{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}}, // row 0
		{{Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 2, Row: 2}}, // column 2
		{{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}}, // row 2
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}}, // row 1
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}}, // column 1
	}
)

// Game is the state of one session against the computer: the board, the human's team,
// whose turn it is and whether the game has ended.
type Game struct {
	board         entity.Board
	userTeam      entity.Team
	isPlayersTurn bool
	isOver        bool
	winner        entity.Team
	isDraw        bool

	intn func(n int) int
}

type Option func(*Game)

// WithIntn replaces the random source used to pick the computer's cell.
func WithIntn(intn func(n int) int) Option {
	return func(game *Game) {
		game.intn = intn
	}
}

// NewGame - creates a game with an empty board where the human plays X and moves first.
func NewGame(opts ...Option) *Game {
	game := &Game{
		userTeam:      entity.TeamX,
		isPlayersTurn: true,
		intn:          rand.Intn, //nolint: gosec // it's ok
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Restore - rebuilds a game from a stored snapshot.
func Restore(snapshot *entity.Snapshot, opts ...Option) (*Game, error) {
	if !snapshot.UserTeam.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTeam, uint8(snapshot.UserTeam))
	}

	game := NewGame(opts...)
	game.board = snapshot.Board
	game.userTeam = snapshot.UserTeam
	game.isPlayersTurn = snapshot.IsPlayersTurn
	game.isOver = snapshot.IsOver
	game.winner = snapshot.Winner
	game.isDraw = snapshot.IsDraw

	return game, nil
}

// Snapshot - copies the game state for storage under the given session ID.
func (that *Game) Snapshot(id string) *entity.Snapshot {
	return &entity.Snapshot{
		ID:            id,
		Board:         that.board,
		UserTeam:      that.userTeam,
		IsPlayersTurn: that.isPlayersTurn,
		IsOver:        that.isOver,
		Winner:        that.winner,
		IsDraw:        that.isDraw,
	}
}

// ResetGame - clears the board and hands the first move to whoever plays X.
func (that *Game) ResetGame() {
	that.board = entity.Board{}
	that.isOver = false
	that.winner = entity.TeamNone
	that.isDraw = false
	that.isPlayersTurn = that.userTeam == entity.TeamX
}

// IsPiecePlayableAt - checks that the cell is on the board and empty.
func (that *Game) IsPiecePlayableAt(cell entity.Cell) bool {
	return cell.IsValid() && that.board.At(cell) == entity.EmptyCell
}

// PlayPieceAt - writes the team into the cell. Occupancy is not checked here:
// callers validate with IsPiecePlayableAt first.
func (that *Game) PlayPieceAt(cell entity.Cell, team entity.Team) error {
	if !team.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidTeam, uint8(team))
	}

	if !cell.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCell, cell)
	}

	that.board[cell.Row][cell.Col] = team

	return nil
}

// CheckAndGetWinner - returns the team holding the first complete line, or TeamNone.
func (that *Game) CheckAndGetWinner() entity.Team {
	for _, line := range WinLines {
		a, b, c := that.board.At(line[0]), that.board.At(line[1]), that.board.At(line[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.TeamNone
}

// SetTeam - assigns the human's team and starts a new game.
func (that *Game) SetTeam(team entity.Team) error {
	if !team.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidTeam, uint8(team))
	}

	that.userTeam = team
	that.ResetGame()

	return nil
}

func (that *Game) GetTeam() entity.Team {
	return that.userTeam
}

// ComputerTeam is always the opposite of the human's current team.
func (that *Game) ComputerTeam() entity.Team {
	return that.userTeam.Opponent()
}

// GetRandomUnusedBoardLocation - picks one of the empty cells uniformly at random.
func (that *Game) GetRandomUnusedBoardLocation() (entity.Cell, error) {
	availableCells := that.board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}

// CompleteTurn - settles the move just played: a completed line ends the game,
// a full board ends it in a draw, otherwise the turn passes to the other side.
func (that *Game) CompleteTurn() entity.TurnState {
	if winner := that.CheckAndGetWinner(); winner != entity.TeamNone {
		that.isOver = true
		that.winner = winner

		return entity.GameOver
	}

	if that.board.IsFull() {
		that.isOver = true
		that.isDraw = true

		return entity.Draw
	}

	that.isPlayersTurn = !that.isPlayersTurn

	return that.State()
}

// State - reports the current position of the turn state machine.
func (that *Game) State() entity.TurnState {
	switch {
	case that.isDraw:
		return entity.Draw
	case that.isOver:
		return entity.GameOver
	case that.isPlayersTurn:
		return entity.PlayerTurn
	default:
		return entity.ComputerTurn
	}
}

func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) IsBoardFull() bool {
	return that.board.IsFull()
}

func (that *Game) IsOver() bool {
	return that.isOver
}

func (that *Game) IsPlayersTurn() bool {
	return that.isPlayersTurn
}

func (that *Game) Winner() entity.Team {
	return that.winner
}

func (that *Game) IsDraw() bool {
	return that.isDraw
}
