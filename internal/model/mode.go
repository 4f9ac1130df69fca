package model

import "fmt"

// GameMode describes how a game starts: the playable bounds and the initial
// layout as literal rows, top row first.
type GameMode struct {
	Name   string   `json:"name"`
	Bounds Bounds   `json:"bounds"`
	Rows   []string `json:"rows"`
}

func StandardChess() GameMode {
	return GameMode{
		Name:   "standard",
		Bounds: StandardBounds,
		Rows: []string{
			"♜♞♝♛♚♝♞♜",
			"♟♟♟♟♟♟♟♟",
			"        ",
			"        ",
			"        ",
			"        ",
			"♙♙♙♙♙♙♙♙",
			"♖♘♗♕♔♗♘♖",
		},
	}
}

// initialBoard parses the layout and checks each side has exactly one king.
func (m GameMode) initialBoard() (*Board, error) {
	board, err := ParseBoard(m.Bounds, m.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	for _, c := range []Color{White, Black} {
		kings := 0
		for _, sq := range board.Squares() {
			if sq.Piece == (Piece{Color: c, Type: King}) {
				kings++
			}
		}
		if kings != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidMode, c, kings)
		}
	}
	return board, nil
}
