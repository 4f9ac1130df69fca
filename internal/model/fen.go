package model

import (
	"fmt"
	"strings"
)

// fen writes the position in Forsyth-Edwards Notation. Castling rights and the
// en passant square are derived from history.
func fen(board *Board, bounds Bounds, history []Movement, halfmoveClock int) (string, error) {
	if bounds != StandardBounds {
		return "", ErrFENUnsupported
	}

	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			piece, ok := board.Get(Position{Col: uint8(col), Row: uint8(row)})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(piece.fenLetter())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if Turn(history) == Black {
		side = "b"
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), side, castlingRights(board, bounds, history), enPassantSquare(history),
		halfmoveClock, len(history)/2+1), nil
}

func castlingRights(board *Board, bounds Bounds, history []Movement) string {
	rights := ""
	for _, c := range []Color{White, Black} {
		king, ok := board.King(c)
		if !ok || king.Row != bounds.homeRow(c) || touched(history, king) {
			continue
		}
		for _, side := range []struct {
			col    uint8
			letter byte
		}{{bounds.X2, 'k'}, {bounds.X1, 'q'}} {
			rookPos := Position{Col: side.col, Row: king.Row}
			if rook, ok := board.Get(rookPos); !ok || rook != (Piece{Color: c, Type: Rook}) || touched(history, rookPos) {
				continue
			}
			letter := side.letter
			if c == White {
				letter = letter - 'a' + 'A'
			}
			rights += string(letter)
		}
	}
	if rights == "" {
		return "-"
	}
	return rights
}

func enPassantSquare(history []Movement) string {
	if len(history) == 0 {
		return "-"
	}
	last := history[len(history)-1]
	if !isDoubleStep(last) {
		return "-"
	}
	behind := Position{Col: last.To.Col, Row: uint8((int(last.From.Row) + int(last.To.Row)) / 2)}
	return behind.squareNotation()
}
