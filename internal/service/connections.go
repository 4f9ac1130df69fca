package service

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/librechess-backend/internal/ws"
)

// Conn is the part of a websocket connection the service writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// client serialises writes; a websocket connection allows one writer at a time.
type client struct {
	conn Conn
	mu   sync.Mutex
}

func (c *client) send(msg ws.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// GameConnections tracks the open sockets of one game, at most one per player.
type GameConnections struct {
	clients map[string]*client // playerID -> connection
	mu      sync.RWMutex
}

func newGameConnections() *GameConnections {
	return &GameConnections{clients: make(map[string]*client)}
}

// register keeps an existing connection and turns the new one away.
func (gc *GameConnections) register(playerID string, conn Conn) error {
	gc.mu.Lock()
	if _, exists := gc.clients[playerID]; exists {
		gc.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		conn.Close()
		return ErrDuplicateConnection
	}
	gc.clients[playerID] = &client{conn: conn}
	gc.mu.Unlock()
	log.Debugf("registered connection %p for player %s", conn, playerID)
	return nil
}

// unregister only drops conn if it is still the player's current connection.
func (gc *GameConnections) unregister(playerID string, conn Conn) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if c, exists := gc.clients[playerID]; exists && c.conn == conn {
		delete(gc.clients, playerID)
		log.Debugf("unregistered connection %p for player %s", conn, playerID)
	}
}

func (gc *GameConnections) count() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.clients)
}

// broadcast sends msg to every connection. Connections that fail to take it
// are dropped.
func (gc *GameConnections) broadcast(msg ws.Message) {
	gc.mu.RLock()
	active := make(map[string]*client, len(gc.clients))
	for playerID, c := range gc.clients {
		active[playerID] = c
	}
	gc.mu.RUnlock()

	for playerID, c := range active {
		if err := c.send(msg); err != nil {
			log.Warnf("failed to send %s to player %s: %v", msg.Type, playerID, err)
			gc.unregister(playerID, c.conn)
		}
	}
}

func (gc *GameConnections) send(playerID string, msg ws.Message) error {
	gc.mu.RLock()
	c, ok := gc.clients[playerID]
	gc.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no connection for player %s", playerID)
	}
	return c.send(msg)
}
