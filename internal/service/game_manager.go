package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/perft"
	"github.com/benbeisheim/librechess-backend/internal/ws"
)

// Match tells a queued player where to play.
type Match struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}

type MatchState string

const (
	MatchIdle    MatchState = "idle"
	MatchQueued  MatchState = "queued"
	MatchMatched MatchState = "matched"
)

type MatchStatus struct {
	Status MatchState `json:"status"`
	Match  *Match     `json:"match,omitempty"`
}

type GameManager struct {
	sessions map[string]*Session
	queue    *Queue
	matches  map[string]Match // playerID -> game found by matchmaking
	mode     model.GameMode
	mu       sync.RWMutex
}

func NewGameManager(mode model.GameMode) *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
		queue:    NewQueue(),
		matches:  make(map[string]Match),
		mode:     mode,
	}
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("matchmaking stopped")
			return
		case <-ticker.C:
			gm.matchPlayers()
		}
	}
}

// matchPlayers starts a game for each pair in the queue and returns how many
// games it started.
func (gm *GameManager) matchPlayers() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	started := 0
	for {
		player1, player2, ok := gm.queue.NextPair()
		if !ok {
			return started
		}

		gameID := uuid.New().String()
		session, err := gm.createSession(gameID)
		if err != nil {
			log.Errorf("matchmaking: %v", err)
			return started
		}
		p1Color, _ := session.AddPlayer(player1.PlayerID)
		p2Color, _ := session.AddPlayer(player2.PlayerID)
		gm.matches[player1.PlayerID] = Match{GameID: gameID, Color: p1Color}
		gm.matches[player2.PlayerID] = Match{GameID: gameID, Color: p2Color}
		log.Infof("matched %s (%s) and %s (%s) in game %s",
			player1.PlayerID, p1Color, player2.PlayerID, p2Color, gameID)
		started++
	}
}

// createSession must be called with gm.mu held.
func (gm *GameManager) createSession(gameID string) (*Session, error) {
	if _, exists := gm.sessions[gameID]; exists {
		return nil, ErrGameExists
	}
	game, err := model.NewGame(gameID, gm.mode)
	if err != nil {
		return nil, fmt.Errorf("new game %s: %w", gameID, err)
	}
	session := newSession(game)
	gm.sessions[gameID] = session
	return session, nil
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	_, err := gm.createSession(gameID)
	return err
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return "", err
	}
	color, err := session.AddPlayer(playerID)
	if err != nil {
		return "", err
	}
	log.Infof("player %s joined game %s as %s", playerID, gameID, color)
	session.broadcastState()
	return color, nil
}

// JoinMatchmaking queues the player. A match found earlier is forgotten.
func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.queue.AddPlayer(playerID); err != nil {
		return err
	}
	delete(gm.matches, playerID)
	return nil
}

func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.queue.RemovePlayer(playerID)
}

func (gm *GameManager) MatchmakingStatus(playerID string) MatchStatus {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	if m, ok := gm.matches[playerID]; ok {
		return MatchStatus{Status: MatchMatched, Match: &m}
	}
	if gm.queue.Contains(playerID) {
		return MatchStatus{Status: MatchQueued}
	}
	return MatchStatus{Status: MatchIdle}
}

func (gm *GameManager) GetGameState(gameID string) (GameView, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return session.View(), nil
}

// LegalMoves lists the movements of the piece on from. An empty square or a
// finished game has none.
func (gm *GameManager) LegalMoves(gameID string, from model.Position) ([]model.Movement, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	game := session.Game()
	piece, ok := game.Board().Get(from)
	if !ok || game.Resolve() != nil {
		return []model.Movement{}, nil
	}
	moves := game.Player(piece.Color).Moves[from]
	if moves == nil {
		moves = []model.Movement{}
	}
	return moves, nil
}

// MakeMove plays req for playerID, who must hold the colour to move.
func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) (model.Movement, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return model.Movement{}, err
	}
	color, ok := session.ColorOf(playerID)
	if !ok {
		return model.Movement{}, ErrNotSeated
	}
	game := session.Game()
	if game.Turn() != color {
		return model.Movement{}, &model.IllegalMoveError{
			Move:   model.Movement{From: req.From, To: req.To, Promotion: req.Promotion},
			Reason: model.ErrNotYourTurn,
		}
	}

	m, err := game.Move(req)
	if err != nil {
		return model.Movement{}, err
	}
	log.Debugf("game %s: %s played %s", gameID, color, m.UCI())
	if r := game.Resolve(); r != nil {
		log.Infof("game %s over: %s, winner %q", gameID, r.Reason, r.Winner)
	}
	session.broadcastState()
	return m, nil
}

func (gm *GameManager) Resign(gameID string, playerID string) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	color, ok := session.ColorOf(playerID)
	if !ok {
		return ErrNotSeated
	}
	if err := session.Game().Resign(color); err != nil {
		return err
	}
	log.Infof("game %s: %s resigned", gameID, color)
	session.broadcastState()
	return nil
}

func (gm *GameManager) Perft(gameID string, depth int) (perft.Result, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return perft.Result{}, err
	}
	return perft.Compare(session.Game(), depth)
}

// RegisterConnection attaches a socket to a game and sends it the current
// state. Anyone may watch; only seated players may move.
func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	if err := session.connections.register(playerID, conn); err != nil {
		return err
	}
	msg, err := session.stateMessage()
	if err != nil {
		return err
	}
	return session.connections.send(playerID, msg)
}

// SendToPlayer writes msg to the player's socket in a game.
func (gm *GameManager) SendToPlayer(gameID string, playerID string, msg ws.Message) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	return session.connections.send(playerID, msg)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return
	}
	session.connections.unregister(playerID, conn)
}
