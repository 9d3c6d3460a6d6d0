package websocket

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

const sendBufferSize = 64

// socketView - forwards what the turn controller renders to the browser. It never blocks:
// when the buffer is full the message is dropped and logged.
type socketView struct {
	logger *slog.Logger
	send   chan []byte
}

func newSocketView(logger *slog.Logger) *socketView {
	return &socketView{
		logger: logger,
		send:   make(chan []byte, sendBufferSize),
	}
}

func (that *socketView) SpawnPieceAt(team entity.Team, cell entity.Cell) {
	that.push(actionPieceRender, &Payload{Team: team, Cell: &cell})
}

func (that *socketView) RemoveAllSpawnedPieces() {
	that.push(actionPiecesClear, nil)
}

func (that *socketView) SetStatus(status entity.Status) {
	that.push(actionStatus, &Payload{Status: status, Label: status.Label()})
}

func (that *socketView) SendError(err error) {
	that.push(actionError, &Payload{Error: err.Error()})
}

func (that *socketView) push(action string, payload *Payload) {
	message, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	select {
	case that.send <- message:
	default:
		that.logger.Warn("send buffer is full, message dropped", "action", action)
	}
}

// close - must be called once nothing can render anymore.
func (that *socketView) close() {
	close(that.send)
}
