package service

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/ws"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	closed   bool
	fail     bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) WriteMessage(int, []byte) error {
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []ws.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ws.Message{}, c.messages...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// lastState decodes the most recent gameState message sent to c.
func lastState(t *testing.T, c *fakeConn) GameView {
	t.Helper()
	msgs := c.received()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Type != ws.MessageTypeGameState {
			continue
		}
		var view GameView
		if err := json.Unmarshal(msgs[i].Payload, &view); err != nil {
			t.Fatalf("decode state: %v", err)
		}
		return view
	}
	t.Fatalf("no gameState message received")
	return GameView{}
}

// seatedGame creates a standard game with "alice" as white and "bob" as black.
func seatedGame(t *testing.T) (*GameManager, string) {
	t.Helper()
	gm := NewGameManager(model.StandardChess())
	const gameID = "game-1"
	if err := gm.CreateGame(gameID); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	for _, id := range []string{"alice", "bob"} {
		if _, err := gm.AddPlayerToGame(gameID, id); err != nil {
			t.Fatalf("AddPlayerToGame(%s): %v", id, err)
		}
	}
	return gm, gameID
}

func request(from, to string) model.MoveRequest {
	return model.MoveRequest{From: model.MustParsePosition(from), To: model.MustParsePosition(to)}
}
