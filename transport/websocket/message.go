package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

const (
	actionCellSelect = "cell:select"
	actionGameReset  = "game:reset"
	actionTeamSet    = "team:set"

	actionPieceRender = "piece:render"
	actionPiecesClear = "pieces:clear"
	actionStatus      = "status"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Cell   *entity.Cell  `json:"cell,omitempty"`
	Team   entity.Team   `json:"team,omitempty"`
	Status entity.Status `json:"status,omitempty"`
	Label  string        `json:"label,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func encodeMessage(action string, payload *Payload) ([]byte, error) {
	message := Message{Action: action}

	if payload != nil {
		payloadJSON, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}

		message.Payload = payloadJSON
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return messageJSON, nil
}

func decodePayload(message *Message) (*Payload, error) {
	var payload Payload

	if len(message.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
