package model

// PlayerState is derived from the board and history after every move; it holds
// no state of its own except the captured pieces, which are append-only.
type PlayerState struct {
	Color    Color       `json:"color"`
	Captured []Piece     `json:"captured"`
	Menace   PositionSet `json:"menace"`
	Moves    MoveMap     `json:"moves"`
}

func newPlayerState(c Color) *PlayerState {
	return &PlayerState{
		Color:    c,
		Captured: make([]Piece, 0),
		Menace:   PositionSet{},
		Moves:    MoveMap{},
	}
}

func (p *PlayerState) clone() PlayerState {
	moves := make(MoveMap, len(p.Moves))
	for from, legal := range p.Moves {
		moves[from] = append([]Movement{}, legal...)
	}
	menace := make(PositionSet, len(p.Menace))
	menace.Union(p.Menace)
	return PlayerState{
		Color:    p.Color,
		Captured: append([]Piece{}, p.Captured...),
		Menace:   menace,
		Moves:    moves,
	}
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}
