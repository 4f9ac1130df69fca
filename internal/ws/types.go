package ws

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/librechess-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeResign    MessageType = "resign"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage wraps v as the payload of a message of type t.
func NewMessage(t MessageType, v any) (Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: payload}, nil
}

// ErrorMessage never fails: a string always marshals.
func ErrorMessage(errorMsg string) Message {
	msg, _ := NewMessage(MessageTypeError, ErrorPayload{Error: errorMsg})
	return msg
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// MovePayload is a move as sent by a client, over the socket or the REST API.
// Squares use board coordinates such as "E2"; promotion takes a piece name or
// letter and may be left empty.
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (p MovePayload) Request() (model.MoveRequest, error) {
	from, ok := model.ParsePosition(p.From)
	if !ok {
		return model.MoveRequest{}, fmt.Errorf("invalid square %q", p.From)
	}
	to, ok := model.ParsePosition(p.To)
	if !ok {
		return model.MoveRequest{}, fmt.Errorf("invalid square %q", p.To)
	}
	req := model.MoveRequest{From: from, To: to}
	if p.Promotion != "" {
		if req.Promotion, ok = model.ParsePromotion(p.Promotion); !ok {
			return model.MoveRequest{}, fmt.Errorf("invalid promotion %q", p.Promotion)
		}
	}
	return req, nil
}
