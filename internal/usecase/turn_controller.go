package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe3d/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/tictactoe"
)

// View renders what the controller decides. Calls are made while the controller
// holds its lock, so implementations must not call back into the controller.
type View interface {
	SpawnPieceAt(team entity.Team, cell entity.Cell)
	RemoveAllSpawnedPieces()
	SetStatus(status entity.Status)
}

type sessionStore interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
}

// TurnController drives one session: the human's moves, the computer's delayed reply
// and the resets in between.
type TurnController struct {
	logger    *slog.Logger
	sessionID string

	game  *tictactoe.Game
	view  View
	store sessionStore

	computerDelay time.Duration

	mu                 sync.Mutex
	closed             bool
	lifetime           context.Context
	stop               context.CancelFunc
	cancelComputerTurn context.CancelFunc
	pending            sync.WaitGroup
}

func NewTurnController(
	logger *slog.Logger,
	sessionID string,
	game *tictactoe.Game,
	view View,
	store sessionStore,
	computerDelay time.Duration,
) *TurnController {
	lifetime, stop := context.WithCancel(context.Background())

	return &TurnController{
		logger:    logger.With("component", "turn_controller", "session", sessionID),
		sessionID: sessionID,

		game:  game,
		view:  view,
		store: store,

		computerDelay: computerDelay,

		lifetime: lifetime,
		stop:     stop,
	}
}

// Start - rebuilds the view from the board and resumes the computer's turn if it is pending.
func (that *TurnController) Start(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.view.RemoveAllSpawnedPieces()

	board := that.game.Board()
	for _, cell := range entity.AllCells() {
		if team := board.At(cell); team != entity.EmptyCell {
			that.view.SpawnPieceAt(team, cell)
		}
	}

	that.afterTurn(ctx)
}

// SelectCell - plays the human's piece at the selected cell.
func (that *TurnController) SelectCell(ctx context.Context, cell entity.Cell) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.game.State() {
	case entity.GameOver, entity.Draw:
		return apperror.ErrGameFinished
	case entity.ComputerTurn:
		return apperror.ErrNotYourTurn
	case entity.PlayerTurn:
	}

	if !cell.IsValid() {
		return fmt.Errorf("%w: %s", tictactoe.ErrInvalidCell, cell)
	}

	if !that.game.IsPiecePlayableAt(cell) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	if err := that.placePiece(that.game.GetTeam(), cell); err != nil {
		return err
	}

	state := that.game.CompleteTurn()
	that.logger.Debug("player moved", "cell", cell.String(), "state", state.String())

	that.afterTurn(ctx)

	return nil
}

// Reset - abandons the current game and starts a new one with the same teams.
func (that *TurnController) Reset(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset(ctx)
}

// SelectTeam - switches the human to the given team and starts a new game.
func (that *TurnController) SelectTeam(ctx context.Context, team entity.Team) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.game.SetTeam(team); err != nil {
		return fmt.Errorf("failed to set team: %w", err)
	}

	that.reset(ctx)

	return nil
}

func (that *TurnController) Status() entity.Status {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.status()
}

// Close - cancels the pending computer move and waits for it to stop. Safe to call twice.
func (that *TurnController) Close() {
	that.mu.Lock()
	that.closed = true
	that.cancelPendingTurn()
	that.mu.Unlock()

	that.stop()
	that.pending.Wait()
}

func (that *TurnController) reset(ctx context.Context) {
	that.cancelPendingTurn()

	that.game.ResetGame()
	that.view.RemoveAllSpawnedPieces()

	that.logger.Debug("game reset", "team", that.game.GetTeam().String())

	that.afterTurn(ctx)
}

func (that *TurnController) placePiece(team entity.Team, cell entity.Cell) error {
	if err := that.game.PlayPieceAt(cell, team); err != nil {
		return fmt.Errorf("failed to play piece: %w", err)
	}

	that.view.SpawnPieceAt(team, cell)

	return nil
}

func (that *TurnController) afterTurn(ctx context.Context) {
	that.view.SetStatus(that.status())

	if that.game.State() == entity.ComputerTurn {
		that.scheduleComputerTurn()
	}

	that.saveSession(ctx)
}

func (that *TurnController) status() entity.Status {
	switch that.game.State() {
	case entity.Draw:
		return entity.StatusDraw
	case entity.GameOver:
		if that.game.Winner() == that.game.GetTeam() {
			return entity.StatusPlayerWon
		}
		return entity.StatusComputerWon
	case entity.PlayerTurn:
		return entity.StatusPlayerTurn
	default:
		return entity.StatusComputerTurn
	}
}

// scheduleComputerTurn - runs the computer's move after the configured delay unless
// it is cancelled first. Must be called with the lock held.
func (that *TurnController) scheduleComputerTurn() {
	if that.closed {
		return
	}

	that.cancelPendingTurn()

	ctx, cancel := context.WithCancel(that.lifetime)
	that.cancelComputerTurn = cancel

	that.pending.Add(1)
	go func() {
		defer that.pending.Done()

		timer := time.NewTimer(that.computerDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
			that.executeComputerTurn(ctx)
		}
	}()
}

func (that *TurnController) cancelPendingTurn() {
	if that.cancelComputerTurn != nil {
		that.cancelComputerTurn()
		that.cancelComputerTurn = nil
	}
}

func (that *TurnController) executeComputerTurn(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// the move was cancelled while waiting for the lock
	if ctx.Err() != nil {
		return
	}

	that.cancelPendingTurn()

	log := that.logger.With("method", "executeComputerTurn")

	if that.game.State() != entity.ComputerTurn {
		log.Warn("computer turn fired out of turn", "state", that.game.State().String())
		return
	}

	cell, err := that.game.GetRandomUnusedBoardLocation()
	if err != nil {
		log.Error("failed to pick a cell", "error", err)
		return
	}

	if err = that.placePiece(that.game.ComputerTeam(), cell); err != nil {
		log.Error("computer failed to make turn", "error", err)
		return
	}

	state := that.game.CompleteTurn()
	log.Debug("computer moved", "cell", cell.String(), "state", state.String())

	that.afterTurn(that.lifetime)
}

func (that *TurnController) saveSession(ctx context.Context) {
	if err := that.store.CreateOrUpdate(ctx, that.game.Snapshot(that.sessionID)); err != nil {
		that.logger.Error("failed to save session", "error", err)
	}
}
