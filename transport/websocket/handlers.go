package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

var ErrCellRequired = errors.New("cell is required")

func (that *Server) handleCellSelect(ctx context.Context, controller *usecase.TurnController, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Cell == nil {
		return ErrCellRequired
	}

	return controller.SelectCell(ctx, *payload.Cell)
}

func (that *Server) handleGameReset(ctx context.Context, controller *usecase.TurnController, _ *Message) error {
	controller.Reset(ctx)
	that.logger.Debug("game reset by player")

	return nil
}

func (that *Server) handleTeamSet(ctx context.Context, controller *usecase.TurnController, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if err = controller.SelectTeam(ctx, payload.Team); err != nil {
		return fmt.Errorf("team %q: %w", payload.Team.String(), err)
	}

	return nil
}
