package model

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

var (
	ErrInvalidGlyph  = errors.New("board rows must only contain piece glyphs or spaces")
	ErrInvalidLength = errors.New("board rows and columns must match the bounds")
)

// Bounds is the inclusive rectangle of playable squares.
type Bounds struct {
	X1 uint8 `json:"x1"`
	Y1 uint8 `json:"y1"`
	X2 uint8 `json:"x2"`
	Y2 uint8 `json:"y2"`
}

// StandardBounds covers A1..H8.
var StandardBounds = Bounds{X1: 0, Y1: 0, X2: 7, Y2: 7}

func (b Bounds) Contains(p Position) bool {
	return p.Col >= b.X1 && p.Col <= b.X2 && p.Row >= b.Y1 && p.Row <= b.Y2
}

func (b Bounds) Width() int {
	return int(b.X2) - int(b.X1) + 1
}

func (b Bounds) Height() int {
	return int(b.Y2) - int(b.Y1) + 1
}

// homeRow is the row the pieces of color start on.
func (b Bounds) homeRow(c Color) uint8 {
	if c == White {
		return b.Y1
	}
	return b.Y2
}

// lastRow is the row pawns of color promote on.
func (b Bounds) lastRow(c Color) uint8 {
	return b.homeRow(c.Opponent())
}

type Square struct {
	Position Position `json:"position"`
	Piece    Piece    `json:"piece"`
}

// Board is a sparse mapping of squares to pieces. It does no bounds checking;
// callers interpret it against the active Bounds.
type Board struct {
	pieces map[Position]Piece
}

func NewBoard() *Board {
	return &Board{pieces: make(map[Position]Piece)}
}

func (b *Board) Get(p Position) (Piece, bool) {
	piece, ok := b.pieces[p]
	return piece, ok
}

func (b *Board) Remove(p Position) (Piece, bool) {
	piece, ok := b.pieces[p]
	if ok {
		delete(b.pieces, p)
	}
	return piece, ok
}

func (b *Board) Insert(p Position, piece Piece) {
	b.pieces[p] = piece
}

func (b *Board) Len() int {
	return len(b.pieces)
}

// Squares returns every occupied square. The order is stable but carries no meaning.
func (b *Board) Squares() []Square {
	positions := maps.Keys(b.pieces)
	sortPositions(positions)
	squares := make([]Square, 0, len(positions))
	for _, p := range positions {
		squares = append(squares, Square{Position: p, Piece: b.pieces[p]})
	}
	return squares
}

func (b *Board) Clone() *Board {
	return &Board{pieces: maps.Clone(b.pieces)}
}

// King returns the square of color's king.
func (b *Board) King(c Color) (Position, bool) {
	for p, piece := range b.pieces {
		if piece.Color == c && piece.Type == King {
			return p, true
		}
	}
	return Position{}, false
}

func (b *Board) Equal(other *Board) bool {
	return maps.Equal(b.pieces, other.pieces)
}

// ParseBoard builds a board from literal rows, top row first. A space is an
// empty square and any other rune must be a piece glyph.
func ParseBoard(bounds Bounds, rows []string) (*Board, error) {
	for _, row := range rows {
		for _, r := range row {
			if r == ' ' {
				continue
			}
			if _, ok := ParsePiece(r); !ok {
				return nil, ErrInvalidGlyph
			}
		}
	}
	if len(rows) != bounds.Height() {
		return nil, ErrInvalidLength
	}
	for _, row := range rows {
		if utf8.RuneCountInString(row) != bounds.Width() {
			return nil, ErrInvalidLength
		}
	}

	board := NewBoard()
	for i, row := range rows {
		col := bounds.X1
		for _, r := range row {
			if piece, ok := ParsePiece(r); ok {
				board.Insert(Position{Col: col, Row: bounds.Y2 - uint8(i)}, piece)
			}
			col++
		}
	}
	return board, nil
}

// MustParseBoard is ParseBoard for literals known to be valid.
func MustParseBoard(bounds Bounds, rows ...string) *Board {
	board, err := ParseBoard(bounds, rows)
	if err != nil {
		panic(err)
	}
	return board
}

// Format renders the board in the literal form read by ParseBoard, one line per row.
func (b *Board) Format(bounds Bounds) string {
	var sb strings.Builder
	for row := int(bounds.Y2); row >= int(bounds.Y1); row-- {
		for col := int(bounds.X1); col <= int(bounds.X2); col++ {
			if piece, ok := b.Get(Position{Col: uint8(col), Row: uint8(row)}); ok {
				sb.WriteRune(piece.Glyph())
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
