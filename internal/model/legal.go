package model

// MoveMap holds, for each square of one side, the legal movements of its piece.
type MoveMap map[Position][]Movement

var promotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// Destinations lists where the piece on from may go.
func (mm MoveMap) Destinations(from Position) []Position {
	set := PositionSet{}
	for _, m := range mm[from] {
		set.Add(m.To)
	}
	return set.Sorted()
}

// Contains reports whether m is one of the legal movements.
func (mm MoveMap) Contains(m Movement) bool {
	for _, legal := range mm[m.From] {
		if legal == m {
			return true
		}
	}
	return false
}

// Find resolves a from/to pair to a legal movement. promotion is only
// consulted when the pair is a promotion.
func (mm MoveMap) Find(from, to Position, promotion PieceType) (Movement, bool) {
	if promotion == "" {
		promotion = Queen
	}
	for _, m := range mm[from] {
		if m.To != to {
			continue
		}
		if m.Kind == MovePromotion && m.Promotion != promotion {
			continue
		}
		return m, true
	}
	return Movement{}, false
}

// Count is the total number of legal movements.
func (mm MoveMap) Count() int {
	n := 0
	for _, moves := range mm {
		n += len(moves)
	}
	return n
}

// LegalMoves assembles the legal movements of color. Every square occupied by
// color is a key, mapped to an empty slice when its piece cannot move.
func LegalMoves(board *Board, bounds Bounds, history []Movement, c Color) MoveMap {
	moves := MoveMap{}
	for _, sq := range board.Squares() {
		if sq.Piece.Color != c {
			continue
		}
		legal := []Movement{}
		for _, m := range candidateMoves(board, bounds, history, sq.Position, sq.Piece) {
			if keepsKingSafe(board, bounds, m) {
				legal = append(legal, m)
			}
		}
		moves[sq.Position] = legal
	}
	return moves
}

// candidateMoves are the pseudo-legal movements of the piece plus the special
// movements its type allows.
func candidateMoves(board *Board, bounds Bounds, history []Movement, pos Position, piece Piece) []Movement {
	var moves []Movement
	for _, to := range PseudoLegalMoves(board, bounds, pos).Sorted() {
		if piece.Type == Pawn && to.Row == bounds.lastRow(piece.Color) {
			for _, promotion := range promotionTypes {
				moves = append(moves, Movement{Piece: piece, From: pos, To: to, Kind: MovePromotion, Promotion: promotion})
			}
			continue
		}
		kind := MoveNormal
		if _, occupied := board.Get(to); occupied {
			kind = MoveCapture
		}
		moves = append(moves, Movement{Piece: piece, From: pos, To: to, Kind: kind})
	}

	switch piece.Type {
	case King:
		moves = append(moves, castlingMoves(board, bounds, history, pos)...)
	case Pawn:
		moves = append(moves, enPassantMoves(board, bounds, history, pos)...)
	}
	return moves
}

// keepsKingSafe plays m on a scratch board and checks the mover is not in check.
func keepsKingSafe(board *Board, bounds Bounds, m Movement) bool {
	scratch := board.Clone()
	applyToBoard(scratch, bounds, m)
	return !InCheck(scratch, bounds, m.Piece.Color)
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// GameStatus classifies the position for the side to move.
func GameStatus(board *Board, bounds Bounds, history []Movement) Status {
	turn := Turn(history)
	return statusOf(board, bounds, turn, LegalMoves(board, bounds, history, turn))
}

func statusOf(board *Board, bounds Bounds, turn Color, moves MoveMap) Status {
	check := InCheck(board, bounds, turn)
	switch {
	case moves.Count() == 0 && check:
		return StatusCheckmate
	case moves.Count() == 0:
		return StatusStalemate
	case check:
		return StatusCheck
	}
	return StatusOngoing
}
