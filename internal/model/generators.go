package model

import "fmt"

type direction struct {
	dCol int
	dRow int
}

var (
	rookDirections   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]direction{}, rookDirections...), bishopDirections...)
	knightOffsets    = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets      = queenDirections
)

// step moves p by d and reports whether the result is on the board.
func step(bounds Bounds, p Position, d direction) (Position, bool) {
	next, ok := p.Offset(d.dCol, d.dRow)
	if !ok || !bounds.Contains(next) {
		return Position{}, false
	}
	return next, true
}

func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRow(bounds Bounds, c Color) uint8 {
	if c == White {
		return bounds.Y1 + 1
	}
	return bounds.Y2 - 1
}

// PseudoLegalMoves returns the destinations of the piece on pos following its
// movement shape and board occupancy, ignoring history and check.
func PseudoLegalMoves(board *Board, bounds Bounds, pos Position) PositionSet {
	piece, ok := board.Get(pos)
	if !ok {
		return PositionSet{}
	}
	switch piece.Type {
	case Pawn:
		return pawnMoves(board, bounds, pos, piece)
	case Knight:
		return offsetMoves(board, bounds, pos, piece, knightOffsets)
	case Bishop:
		return slidingMoves(board, bounds, pos, piece, bishopDirections)
	case Rook:
		return slidingMoves(board, bounds, pos, piece, rookDirections)
	case Queen:
		return slidingMoves(board, bounds, pos, piece, queenDirections)
	case King:
		return offsetMoves(board, bounds, pos, piece, kingOffsets)
	}
	panic(fmt.Sprintf("model: unknown piece type %q", piece.Type))
}

func slidingMoves(board *Board, bounds Bounds, pos Position, piece Piece, directions []direction) PositionSet {
	moves := PositionSet{}
	for _, d := range directions {
		target, ok := step(bounds, pos, d)
		for ok {
			occupant, occupied := board.Get(target)
			if occupied {
				if occupant.Color != piece.Color {
					moves.Add(target)
				}
				break
			}
			moves.Add(target)
			target, ok = step(bounds, target, d)
		}
	}
	return moves
}

func offsetMoves(board *Board, bounds Bounds, pos Position, piece Piece, offsets []direction) PositionSet {
	moves := PositionSet{}
	for _, d := range offsets {
		target, ok := step(bounds, pos, d)
		if !ok {
			continue
		}
		if occupant, occupied := board.Get(target); occupied && occupant.Color == piece.Color {
			continue
		}
		moves.Add(target)
	}
	return moves
}

func pawnMoves(board *Board, bounds Bounds, pos Position, piece Piece) PositionSet {
	moves := PositionSet{}
	forward := pawnForward(piece.Color)

	if one, ok := step(bounds, pos, direction{0, forward}); ok {
		if _, occupied := board.Get(one); !occupied {
			moves.Add(one)
			if pos.Row == pawnStartRow(bounds, piece.Color) {
				if two, ok := step(bounds, one, direction{0, forward}); ok {
					if _, occupied := board.Get(two); !occupied {
						moves.Add(two)
					}
				}
			}
		}
	}

	for _, target := range pawnCaptureSquares(bounds, pos, piece.Color) {
		if occupant, occupied := board.Get(target); occupied && occupant.Color != piece.Color {
			moves.Add(target)
		}
	}
	return moves
}

// pawnCaptureSquares are the forward diagonals of a pawn of color on pos.
func pawnCaptureSquares(bounds Bounds, pos Position, c Color) []Position {
	var squares []Position
	forward := pawnForward(c)
	for _, dCol := range []int{-1, 1} {
		if target, ok := step(bounds, pos, direction{dCol, forward}); ok {
			squares = append(squares, target)
		}
	}
	return squares
}
