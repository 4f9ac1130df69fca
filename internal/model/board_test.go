package model

import (
	"errors"
	"testing"
)

func TestParseBoardStandard(t *testing.T) {
	board, err := ParseBoard(StandardBounds, StandardChess().Rows)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if board.Len() != 32 {
		t.Fatalf("expected 32 pieces, got %d", board.Len())
	}
	tests := map[string]Piece{
		"A8": {Black, Rook},
		"E8": {Black, King},
		"D8": {Black, Queen},
		"H7": {Black, Pawn},
		"A2": {White, Pawn},
		"B1": {White, Knight},
		"E1": {White, King},
		"F1": {White, Bishop},
	}
	for square, want := range tests {
		got, ok := board.Get(MustParsePosition(square))
		if !ok || got != want {
			t.Fatalf("%s = %+v %v, want %+v", square, got, ok, want)
		}
	}
	if _, ok := board.Get(MustParsePosition("E4")); ok {
		t.Fatalf("E4 should be empty")
	}
}

func TestParseBoardCustomBounds(t *testing.T) {
	bounds := Bounds{X1: 10, Y1: 10, X2: 13, Y2: 13}
	board, err := ParseBoard(bounds, []string{" ♛♚ ", "    ", "    ", " ♕♔ "})
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	want := map[string]Piece{
		"L14": {Black, Queen},
		"M14": {Black, King},
		"L11": {White, Queen},
		"M11": {White, King},
	}
	if board.Len() != len(want) {
		t.Fatalf("expected %d pieces, got %d", len(want), board.Len())
	}
	for square, piece := range want {
		if got, ok := board.Get(MustParsePosition(square)); !ok || got != piece {
			t.Fatalf("%s = %+v %v, want %+v", square, got, ok, piece)
		}
	}
	if got := board.Format(bounds); got != " ♛♚ \n    \n    \n ♕♔ \n" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestParseBoardErrors(t *testing.T) {
	rows := StandardChess().Rows
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"ascii letters", append([]string{"RNBQKBNR", "PPPPPPPP"}, rows[2:]...), ErrInvalidGlyph},
		{"short row", append([]string{"♜♞♝♛♚♝♞"}, rows[1:]...), ErrInvalidLength},
		{"missing row", rows[1:], ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBoard(StandardBounds, tt.rows); !errors.Is(err, tt.want) {
				t.Fatalf("ParseBoard error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBoardFormatIsInverseOfParse(t *testing.T) {
	rows := StandardChess().Rows
	board := MustParseBoard(StandardBounds, rows...)
	want := ""
	for _, row := range rows {
		want += row + "\n"
	}
	if got := board.Format(StandardBounds); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestBoardInsertRemove(t *testing.T) {
	board := NewBoard()
	e4 := MustParsePosition("E4")
	board.Insert(e4, Piece{White, Queen})
	board.Insert(e4, Piece{Black, Knight})
	if board.Len() != 1 {
		t.Fatalf("a square holds one piece, got %d", board.Len())
	}
	removed, ok := board.Remove(e4)
	if !ok || removed != (Piece{Black, Knight}) {
		t.Fatalf("Remove = %+v %v", removed, ok)
	}
	if _, ok := board.Remove(e4); ok {
		t.Fatalf("second Remove should find nothing")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	board := MustParseBoard(StandardBounds, StandardChess().Rows...)
	clone := board.Clone()
	clone.Remove(MustParsePosition("E2"))
	if _, ok := board.Get(MustParsePosition("E2")); !ok {
		t.Fatalf("removing from the clone changed the original")
	}
	if board.Equal(clone) {
		t.Fatalf("boards should differ")
	}
}
