package model

import "fmt"

// MenaceOfPiece returns the squares the piece on pos could capture on. Unlike its
// moves, a pawn menaces both forward diagonals whether or not they are occupied,
// and every piece menaces the first occupied square in its way, friend or foe.
func MenaceOfPiece(board *Board, bounds Bounds, pos Position) PositionSet {
	piece, ok := board.Get(pos)
	if !ok {
		return PositionSet{}
	}
	switch piece.Type {
	case Pawn:
		return NewPositionSet(pawnCaptureSquares(bounds, pos, piece.Color)...)
	case Knight:
		return offsetMenace(bounds, pos, knightOffsets)
	case Bishop:
		return slidingMenace(board, bounds, pos, bishopDirections)
	case Rook:
		return slidingMenace(board, bounds, pos, rookDirections)
	case Queen:
		return slidingMenace(board, bounds, pos, queenDirections)
	case King:
		return offsetMenace(bounds, pos, kingOffsets)
	}
	panic(fmt.Sprintf("model: unknown piece type %q", piece.Type))
}

func slidingMenace(board *Board, bounds Bounds, pos Position, directions []direction) PositionSet {
	menace := PositionSet{}
	for _, d := range directions {
		target, ok := step(bounds, pos, d)
		for ok {
			menace.Add(target)
			if _, occupied := board.Get(target); occupied {
				break
			}
			target, ok = step(bounds, target, d)
		}
	}
	return menace
}

func offsetMenace(bounds Bounds, pos Position, offsets []direction) PositionSet {
	menace := PositionSet{}
	for _, d := range offsets {
		if target, ok := step(bounds, pos, d); ok {
			menace.Add(target)
		}
	}
	return menace
}

// Menace is the union of the squares menaced by every piece of color.
func Menace(board *Board, bounds Bounds, c Color) PositionSet {
	menace := PositionSet{}
	for p, piece := range board.pieces {
		if piece.Color == c {
			menace.Union(MenaceOfPiece(board, bounds, p))
		}
	}
	return menace
}

// InCheck reports whether color's king stands on a square its opponent menaces.
// A side without a king is never in check.
func InCheck(board *Board, bounds Bounds, c Color) bool {
	king, ok := board.King(c)
	if !ok {
		return false
	}
	return Menace(board, bounds, c.Opponent()).Has(king)
}
