package service

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/ws"
)

// Seats maps each colour to the player sitting on it; empty while open.
type Seats struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// GameView is what clients see of a game: the rules state plus who plays it.
type GameView struct {
	model.GameState
	Players Seats `json:"players"`
}

// Session is a game together with its players and observers.
type Session struct {
	game        *model.Game
	mu          sync.Mutex
	seats       map[model.Color]string
	connections *GameConnections
}

func newSession(game *model.Game) *Session {
	return &Session{
		game:        game,
		seats:       make(map[model.Color]string),
		connections: newGameConnections(),
	}
}

func (s *Session) Game() *model.Game {
	return s.game
}

// AddPlayer seats playerID on the first open colour, white first. A player
// already seated gets their colour back.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	for _, c := range []model.Color{model.White, model.Black} {
		if s.seats[c] == "" {
			s.seats[c] = playerID
			return c, nil
		}
	}
	return "", ErrGameFull
}

func (s *Session) ColorOf(playerID string) (model.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorOf(playerID)
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	for c, id := range s.seats {
		if id == playerID {
			return c, true
		}
	}
	return "", false
}

func (s *Session) Seats() Seats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Seats{White: s.seats[model.White], Black: s.seats[model.Black]}
}

func (s *Session) View() GameView {
	return GameView{GameState: s.game.GetState(), Players: s.Seats()}
}

func (s *Session) stateMessage() (ws.Message, error) {
	return ws.NewMessage(ws.MessageTypeGameState, s.View())
}

func (s *Session) broadcastState() {
	msg, err := s.stateMessage()
	if err != nil {
		log.Errorf("game %s: %v", s.game.ID, err)
		return
	}
	s.connections.broadcast(msg)
}
