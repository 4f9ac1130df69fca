package model

// touched reports whether any movement in history left from or arrived on p.
func touched(history []Movement, p Position) bool {
	for _, m := range history {
		if m.From == p || m.To == p {
			return true
		}
	}
	return false
}

// castlingMoves returns the castling movements available to the king on pos.
// Castling toward either corner of the king's home row requires both pieces
// unmoved, an empty path and no menaced square on the king's way.
func castlingMoves(board *Board, bounds Bounds, history []Movement, pos Position) []Movement {
	king, ok := board.Get(pos)
	if !ok || king.Type != King || pos.Row != bounds.homeRow(king.Color) || touched(history, pos) {
		return nil
	}

	var menace PositionSet
	var moves []Movement
	for _, side := range []struct {
		dir     int
		rookCol uint8
	}{{1, bounds.X2}, {-1, bounds.X1}} {
		rookPos := Position{Col: side.rookCol, Row: pos.Row}
		rook, ok := board.Get(rookPos)
		if !ok || rook != (Piece{Color: king.Color, Type: Rook}) || touched(history, rookPos) {
			continue
		}
		distance := int(side.rookCol) - int(pos.Col)
		if distance*side.dir < 3 {
			continue
		}
		if !pathIsEmpty(board, pos, rookPos, side.dir) {
			continue
		}
		if menace == nil {
			menace = Menace(board, bounds, king.Color.Opponent())
		}
		passed, _ := pos.Offset(side.dir, 0)
		landed, _ := pos.Offset(2*side.dir, 0)
		if menace.Has(pos) || menace.Has(passed) || menace.Has(landed) {
			continue
		}
		moves = append(moves, Movement{Piece: king, From: pos, To: landed, Kind: MoveCastling})
	}
	return moves
}

func pathIsEmpty(board *Board, from, to Position, dir int) bool {
	for p, _ := from.Offset(dir, 0); p != to; p, _ = p.Offset(dir, 0) {
		if _, occupied := board.Get(p); occupied {
			return false
		}
	}
	return true
}

// enPassantMoves returns the en passant capture of the pawn on pos, available
// only right after an adjacent enemy pawn double stepped past it.
func enPassantMoves(board *Board, bounds Bounds, history []Movement, pos Position) []Movement {
	pawn, ok := board.Get(pos)
	if !ok || pawn.Type != Pawn || len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Piece != (Piece{Color: pawn.Color.Opponent(), Type: Pawn}) || !isDoubleStep(last) {
		return nil
	}
	if last.To.Row != pos.Row || absDiff(last.To.Col, pos.Col) != 1 {
		return nil
	}
	if occupant, ok := board.Get(last.To); !ok || occupant != last.Piece {
		return nil
	}
	target := Position{Col: last.To.Col, Row: uint8((int(last.From.Row) + int(last.To.Row)) / 2)}
	if !bounds.Contains(target) {
		return nil
	}
	if _, occupied := board.Get(target); occupied {
		return nil
	}
	return []Movement{{Piece: pawn, From: pos, To: target, Kind: MoveEnPassant}}
}

func isDoubleStep(m Movement) bool {
	return m.Piece.Type == Pawn && m.From.Col == m.To.Col && absDiff(m.From.Row, m.To.Row) == 2
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
