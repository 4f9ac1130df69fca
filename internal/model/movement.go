package model

import "fmt"

type MoveKind string

const (
	MoveNormal    MoveKind = "normal"
	MoveCapture   MoveKind = "capture"
	MoveCastling  MoveKind = "castling"
	MoveEnPassant MoveKind = "enPassant"
	MovePromotion MoveKind = "promotion"
)

// Movement is an immutable record of one ply. Promotion is only set for MovePromotion.
type Movement struct {
	Piece     Piece     `json:"piece"`
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Kind      MoveKind  `json:"kind"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func (m Movement) String() string {
	s := fmt.Sprintf("%s%s%s", m.Piece, m.From, m.To)
	if m.Kind == MovePromotion {
		s += "=" + m.Promotion.Notation()
	}
	return s
}

// UCI writes the movement in long algebraic form, e.g. e2e4 or e7e8q.
func (m Movement) UCI() string {
	s := m.From.squareNotation() + m.To.squareNotation()
	if m.Kind == MovePromotion {
		s += string(m.Promotion.fenLetter())
	}
	return s
}

// CapturedAt is the square of the piece the movement takes, if any is there.
// En passant takes the pawn beside the capturing pawn, not the one on To.
func (m Movement) CapturedAt() Position {
	if m.Kind == MoveEnPassant {
		return Position{Col: m.To.Col, Row: m.From.Row}
	}
	return m.To
}

// castleRook returns where the rook involved in a castling movement starts and lands.
func (m Movement) castleRook(bounds Bounds) (from, to Position) {
	if m.To.Col > m.From.Col {
		return Position{Col: bounds.X2, Row: m.From.Row}, Position{Col: m.To.Col - 1, Row: m.From.Row}
	}
	return Position{Col: bounds.X1, Row: m.From.Row}, Position{Col: m.To.Col + 1, Row: m.From.Row}
}

// CastleRookMove is the rook half of a castling movement.
type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Turn derives the side to move from history length parity.
func Turn(history []Movement) Color {
	if len(history)%2 == 0 {
		return White
	}
	return Black
}

// applyToBoard performs m on board and returns the captured piece, if any.
// m must describe a piece that is actually on From.
func applyToBoard(board *Board, bounds Bounds, m Movement) (Piece, bool) {
	piece, ok := board.Remove(m.From)
	if !ok || piece != m.Piece {
		panic(fmt.Sprintf("model: movement %s does not match board", m))
	}
	captured, took := board.Remove(m.CapturedAt())
	if m.Kind == MovePromotion {
		piece.Type = m.Promotion
	}
	board.Insert(m.To, piece)
	if m.Kind == MoveCastling {
		rookFrom, rookTo := m.castleRook(bounds)
		rook, ok := board.Remove(rookFrom)
		if !ok {
			panic(fmt.Sprintf("model: castling %s without rook on %s", m, rookFrom))
		}
		board.Insert(rookTo, rook)
	}
	return captured, took
}

// appendMovement returns history with m appended without touching history's backing array.
func appendMovement(history []Movement, m Movement) []Movement {
	return append(history[:len(history):len(history)], m)
}
