package model

import "encoding/json"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation is the letter used for the piece type in algebraic notation.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

func (p PieceType) fenLetter() byte {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return '?'
}

// ParsePromotion accepts the full type name or its notation letter.
func ParsePromotion(s string) (PieceType, bool) {
	switch s {
	case "queen", "Q", "q":
		return Queen, true
	case "rook", "R", "r":
		return Rook, true
	case "bishop", "B", "b":
		return Bishop, true
	case "knight", "N", "n":
		return Knight, true
	}
	return "", false
}

type Piece struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

var glyphs = map[Piece]rune{
	{White, King}:   '♔',
	{White, Queen}:  '♕',
	{White, Rook}:   '♖',
	{White, Bishop}: '♗',
	{White, Knight}: '♘',
	{White, Pawn}:   '♙',
	{Black, King}:   '♚',
	{Black, Queen}:  '♛',
	{Black, Rook}:   '♜',
	{Black, Bishop}: '♝',
	{Black, Knight}: '♞',
	{Black, Pawn}:   '♟',
}

var piecesByGlyph = func() map[rune]Piece {
	m := make(map[rune]Piece, len(glyphs))
	for piece, glyph := range glyphs {
		m[glyph] = piece
	}
	return m
}()

// ParsePiece returns the piece drawn by glyph.
func ParsePiece(glyph rune) (Piece, bool) {
	piece, ok := piecesByGlyph[glyph]
	return piece, ok
}

// Glyph returns the unicode chess symbol of the piece.
func (p Piece) Glyph() rune {
	return glyphs[p]
}

func (p Piece) String() string {
	return string(p.Glyph())
}

func (p Piece) fenLetter() byte {
	letter := p.Type.fenLetter()
	if p.Color == White {
		return letter - 'a' + 'A'
	}
	return letter
}

// marshalPositions keeps JSON output of position lists in one place.
func marshalPositions(positions []Position) ([]byte, error) {
	if positions == nil {
		positions = []Position{}
	}
	return json.Marshal(positions)
}
