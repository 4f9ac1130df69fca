package model

import "sync"

// Ply is a history entry enriched for display.
type Ply struct {
	Movement
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Notation       string          `json:"notation"`
}

// MoveRequest is a from/to pair as picked by a user.
type MoveRequest struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

type Reason string

const (
	ReasonCheckmate   Reason = "checkmate"
	ReasonStalemate   Reason = "stalemate"
	ReasonResignation Reason = "resignation"
)

// Resolution is how a finished game ended. Winner is empty for a draw.
type Resolution struct {
	Reason Reason `json:"reason"`
	Winner Color  `json:"winner,omitempty"`
}

// Game is one game from its initial layout on. All methods are safe for
// concurrent use; ApplyMove holds the game exclusively while it runs.
type Game struct {
	ID            string
	mu            sync.Mutex
	mode          GameMode
	board         *Board
	history       []Movement
	plies         []Ply
	players       map[Color]*PlayerState
	halfmoveClock int
	resolve       *Resolution
}

type GameState struct {
	ID             string         `json:"id"`
	Mode           string         `json:"mode"`
	Bounds         Bounds         `json:"bounds"`
	Board          []Square       `json:"board"`
	ToMove         Color          `json:"toMove"`
	MoveHistory    []Ply          `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	Status         Status         `json:"status"`
	LegalMoves     MoveMap        `json:"legalMoves"`
	LastMove       *Movement      `json:"lastMove"`
	Resolve        *Resolution    `json:"resolve"`
	FEN            string         `json:"fen,omitempty"`
}

func NewGame(id string, mode GameMode) (*Game, error) {
	board, err := mode.initialBoard()
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:      id,
		mode:    mode,
		board:   board,
		history: make([]Movement, 0),
		plies:   make([]Ply, 0),
		players: map[Color]*PlayerState{
			White: newPlayerState(White),
			Black: newPlayerState(Black),
		},
	}
	g.refresh()
	return g, nil
}

// refresh recomputes the derived state of both players.
func (g *Game) refresh() {
	for c, player := range g.players {
		player.Moves = LegalMoves(g.board, g.mode.Bounds, g.history, c)
		player.Menace = Menace(g.board, g.mode.Bounds, c)
	}
}

// ApplyMove validates m against the legal moves of the side to move and plays it.
// On failure the game is unchanged and the error is an *IllegalMoveError.
func (g *Game) ApplyMove(m Movement) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.applyMove(m)
}

// Move resolves a from/to pair to a legal movement and plays it. Promotions
// default to a queen.
func (g *Game) Move(req MoveRequest) (Movement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	attempt := Movement{From: req.From, To: req.To, Promotion: req.Promotion}
	if g.resolve != nil {
		return Movement{}, &IllegalMoveError{Move: attempt, Reason: ErrGameOver}
	}
	turn := Turn(g.history)
	piece, ok := g.board.Get(req.From)
	if !ok {
		return Movement{}, &IllegalMoveError{Move: attempt, Reason: ErrMoveNotLegal}
	}
	if piece.Color != turn {
		return Movement{}, &IllegalMoveError{Move: attempt, Reason: ErrNotYourTurn}
	}
	m, ok := g.players[turn].Moves.Find(req.From, req.To, req.Promotion)
	if !ok {
		return Movement{}, &IllegalMoveError{Move: attempt, Reason: ErrMoveNotLegal}
	}
	return m, g.applyMove(m)
}

func (g *Game) applyMove(m Movement) error {
	if g.resolve != nil {
		return &IllegalMoveError{Move: m, Reason: ErrGameOver}
	}
	turn := Turn(g.history)
	if m.Piece.Color != turn {
		return &IllegalMoveError{Move: m, Reason: ErrNotYourTurn}
	}
	mover := g.players[turn]
	if !mover.Moves.Contains(m) {
		return &IllegalMoveError{Move: m, Reason: ErrMoveNotLegal}
	}

	ply := Ply{Movement: m, Notation: notation(g.board, mover.Moves, m)}
	captured, took := applyToBoard(g.board, g.mode.Bounds, m)
	if took {
		mover.Captured = append(mover.Captured, captured)
		ply.CapturedPiece = &captured
	}
	if m.Kind == MoveCastling {
		from, to := m.castleRook(g.mode.Bounds)
		ply.CastleRookMove = &CastleRookMove{From: from, To: to}
	}
	if took || m.Piece.Type == Pawn {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	g.history = append(g.history, m)
	g.refresh()

	next := Turn(g.history)
	switch statusOf(g.board, g.mode.Bounds, next, g.players[next].Moves) {
	case StatusCheckmate:
		ply.Notation += "#"
		g.resolve = &Resolution{Reason: ReasonCheckmate, Winner: turn}
	case StatusStalemate:
		g.resolve = &Resolution{Reason: ReasonStalemate}
	case StatusCheck:
		ply.Notation += "+"
	}
	g.plies = append(g.plies, ply)
	return nil
}

// Resign ends the game in favour of color's opponent.
func (g *Game) Resign(c Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resolve != nil {
		return ErrGameOver
	}
	g.resolve = &Resolution{Reason: ReasonResignation, Winner: c.Opponent()}
	return nil
}

func (g *Game) Turn() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Turn(g.history)
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

func (g *Game) History() []Movement {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Movement{}, g.history...)
}

// Player returns a copy of color's derived state.
func (g *Game) Player(c Color) PlayerState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.players[c].clone()
}

// Snapshot returns independent copies of everything the rules functions need.
func (g *Game) Snapshot() (*Board, Bounds, []Movement) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone(), g.mode.Bounds, append([]Movement{}, g.history...)
}

func (g *Game) Resolve() *Resolution {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resolve == nil {
		return nil
	}
	r := *g.resolve
	return &r
}

func (g *Game) FEN() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fen(g.board, g.mode.Bounds, g.history, g.halfmoveClock)
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	turn := Turn(g.history)
	state := GameState{
		ID:          g.ID,
		Mode:        g.mode.Name,
		Bounds:      g.mode.Bounds,
		Board:       g.board.Squares(),
		ToMove:      turn,
		MoveHistory: append([]Ply{}, g.plies...),
		CapturedPieces: CapturedPieces{
			White: append([]Piece{}, g.players[White].Captured...),
			Black: append([]Piece{}, g.players[Black].Captured...),
		},
		IsCheck:    InCheck(g.board, g.mode.Bounds, turn),
		Status:     statusOf(g.board, g.mode.Bounds, turn, g.players[turn].Moves),
		LegalMoves: g.players[turn].clone().Moves,
	}
	if g.resolve != nil {
		r := *g.resolve
		state.Resolve = &r
		state.LegalMoves = MoveMap{}
	}
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		state.LastMove = &last
	}
	if f, err := fen(g.board, g.mode.Bounds, g.history, g.halfmoveClock); err == nil {
		state.FEN = f
	}
	return state
}
