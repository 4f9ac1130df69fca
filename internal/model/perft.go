package model

// Perft counts the leaf nodes of the legal move tree depth plies deep.
func Perft(board *Board, bounds Bounds, history []Movement, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, moves := range LegalMoves(board, bounds, history, Turn(history)) {
		if depth == 1 {
			nodes += uint64(len(moves))
			continue
		}
		for _, m := range moves {
			next := board.Clone()
			applyToBoard(next, bounds, m)
			nodes += Perft(next, bounds, appendMovement(history, m), depth-1)
		}
	}
	return nodes
}

// PerftDivide is Perft split by root movement.
func PerftDivide(board *Board, bounds Bounds, history []Movement, depth int) map[Movement]uint64 {
	divide := make(map[Movement]uint64)
	if depth <= 0 {
		return divide
	}
	for _, moves := range LegalMoves(board, bounds, history, Turn(history)) {
		for _, m := range moves {
			next := board.Clone()
			applyToBoard(next, bounds, m)
			divide[m] = Perft(next, bounds, appendMovement(history, m), depth-1)
		}
	}
	return divide
}
