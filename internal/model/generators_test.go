package model

import "testing"

func TestPseudoLegalMovesOnEmptyBoard(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		at    string
		want  string
	}{
		{"rook center", Piece{White, Rook}, "D4", "A4 B4 C4 D1 D2 D3 D5 D6 D7 D8 E4 F4 G4 H4"},
		{"king corner", Piece{Black, King}, "H8", "G7 G8 H7"},
		{"knight corner", Piece{White, Knight}, "A1", "B3 C2"},
		{"bishop corner", Piece{White, Bishop}, "A1", "B2 C3 D4 E5 F6 G7 H8"},
		{"white pawn start", Piece{White, Pawn}, "E2", "E3 E4"},
		{"white pawn advanced", Piece{White, Pawn}, "E3", "E4"},
		{"black pawn start", Piece{Black, Pawn}, "E7", "E5 E6"},
		{"white pawn last rank", Piece{White, Pawn}, "E8", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard()
			board.Insert(pos(tt.at), tt.piece)
			if got := squares(PseudoLegalMoves(board, StandardBounds, pos(tt.at))); got != tt.want {
				t.Fatalf("moves = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRookHasFourteenMovesFromD4(t *testing.T) {
	board := NewBoard()
	board.Insert(pos("D4"), Piece{White, Rook})
	if n := len(PseudoLegalMoves(board, StandardBounds, pos("D4"))); n != 14 {
		t.Fatalf("expected 14 destinations, got %d", n)
	}
}

func TestQueenMovesAreRookAndBishopMoves(t *testing.T) {
	board := NewBoard()
	board.Insert(pos("D4"), Piece{White, Queen})
	if n := len(PseudoLegalMoves(board, StandardBounds, pos("D4"))); n != 27 {
		t.Fatalf("expected 27 destinations, got %d", n)
	}
}

func TestSlidingStopsAtPieces(t *testing.T) {
	board := MustParseBoard(StandardBounds,
		"        ",
		"        ",
		"   ♟    ",
		"        ",
		"   ♖  ♙ ",
		"        ",
		"        ",
		"        ",
	)
	got := squares(PseudoLegalMoves(board, StandardBounds, pos("D4")))
	want := "A4 B4 C4 D1 D2 D3 D5 D6 E4 F4"
	if got != want {
		t.Fatalf("moves = %q, want %q", got, want)
	}
}

func TestPawnBlockedAndCaptures(t *testing.T) {
	board := MustParseBoard(StandardBounds,
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"   ♞♟♙  ",
		"    ♙   ",
		"        ",
	)
	got := squares(PseudoLegalMoves(board, StandardBounds, pos("E2")))
	if got != "D3" {
		t.Fatalf("blocked pawn moves = %q, want only the capture on D3", got)
	}

	board = MustParseBoard(StandardBounds,
		"        ",
		"        ",
		"        ",
		"        ",
		"    ♟   ",
		"        ",
		"    ♙   ",
		"        ",
	)
	if got := squares(PseudoLegalMoves(board, StandardBounds, pos("E2"))); got != "E3" {
		t.Fatalf("double push through to occupied square: got %q, want E3", got)
	}
}

func TestPseudoLegalMovesRespectCustomBounds(t *testing.T) {
	bounds := Bounds{X1: 2, Y1: 2, X2: 4, Y2: 4}
	board := NewBoard()
	board.Insert(pos("D4"), Piece{White, King})
	if got := squares(PseudoLegalMoves(board, bounds, pos("D4"))); got != "C3 C4 C5 D3 D5 E3 E4 E5" {
		t.Fatalf("moves = %q", got)
	}
	board = NewBoard()
	board.Insert(pos("C3"), Piece{White, King})
	if got := squares(PseudoLegalMoves(board, bounds, pos("C3"))); got != "C4 D3 D4" {
		t.Fatalf("corner moves = %q", got)
	}
}

func TestPseudoLegalMovesOfEmptySquare(t *testing.T) {
	if n := len(PseudoLegalMoves(NewBoard(), StandardBounds, pos("A1"))); n != 0 {
		t.Fatalf("expected no moves, got %d", n)
	}
}
