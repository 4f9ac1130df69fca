package model

import "fmt"

// notation writes m in algebraic notation without the check suffix.
// It must be called before m is applied to board.
func notation(board *Board, moves MoveMap, m Movement) string {
	if m.Kind == MoveCastling {
		if m.To.Col > m.From.Col {
			return "O-O"
		}
		return "O-O-O"
	}

	capture := ""
	if _, occupied := board.Get(m.To); occupied || m.Kind == MoveEnPassant {
		capture = "x"
	}

	prefix := m.Piece.Type.Notation()
	if m.Piece.Type == Pawn {
		if capture != "" {
			prefix = fileNotation(m.From.Col)
		}
	} else {
		prefix += disambiguation(moves, m)
	}

	suffix := ""
	if m.Kind == MovePromotion {
		suffix = "=" + m.Promotion.Notation()
	}
	return fmt.Sprintf("%s%s%s%s", prefix, capture, m.To.squareNotation(), suffix)
}

// disambiguation adds the file, rank or both when another piece of the same
// type could also reach the destination.
func disambiguation(moves MoveMap, m Movement) string {
	var rivals []Position
	for from, legal := range moves {
		if from == m.From {
			continue
		}
		for _, other := range legal {
			if other.Piece == m.Piece && other.To == m.To {
				rivals = append(rivals, from)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.Col == m.From.Col {
			sameFile = true
		}
		if r.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return fileNotation(m.From.Col)
	case !sameRank:
		return fmt.Sprintf("%d", int(m.From.Row)+1)
	}
	return m.From.squareNotation()
}
