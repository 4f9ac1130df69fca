// Package perft counts move-tree nodes for a game and checks the counts
// against dragontoothmg, an independent bitboard move generator.
package perft

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/benbeisheim/librechess-backend/internal/model"
)

// Result holds the node counts of both generators at one depth.
type Result struct {
	FEN       string `json:"fen"`
	Depth     int    `json:"depth"`
	Nodes     uint64 `json:"nodes"`
	Reference uint64 `json:"reference"`
}

func (r Result) Match() bool {
	return r.Nodes == r.Reference
}

// DivideLine is the count below a single root move.
type DivideLine struct {
	Move      string `json:"move"`
	Nodes     uint64 `json:"nodes"`
	Reference uint64 `json:"reference"`
}

func (l DivideLine) Match() bool {
	return l.Nodes == l.Reference
}

// Compare runs perft on the game's current position with both generators.
// Only standard 8x8 games can be compared since the reference needs a FEN.
func Compare(g *model.Game, depth int) (Result, error) {
	fen, err := g.FEN()
	if err != nil {
		return Result{}, fmt.Errorf("compare perft: %w", err)
	}
	board, bounds, history := g.Snapshot()
	ref := dragontoothmg.ParseFen(fen)
	return Result{
		FEN:       fen,
		Depth:     depth,
		Nodes:     model.Perft(board, bounds, history, depth),
		Reference: referencePerft(&ref, depth),
	}, nil
}

// Divide splits the comparison by root move, keyed by UCI notation.
// A move only one generator produces shows up with a zero on the other side.
func Divide(g *model.Game, depth int) ([]DivideLine, error) {
	fen, err := g.FEN()
	if err != nil {
		return nil, fmt.Errorf("divide perft: %w", err)
	}
	board, bounds, history := g.Snapshot()

	lines := make(map[string]*DivideLine)
	line := func(move string) *DivideLine {
		l, ok := lines[move]
		if !ok {
			l = &DivideLine{Move: move}
			lines[move] = l
		}
		return l
	}

	for m, n := range model.PerftDivide(board, bounds, history, depth) {
		line(m.UCI()).Nodes = n
	}

	ref := dragontoothmg.ParseFen(fen)
	if depth > 0 {
		for _, m := range ref.GenerateLegalMoves() {
			unapply := ref.Apply(m)
			line(m.String()).Reference = referencePerft(&ref, depth-1)
			unapply()
		}
	}

	out := make([]DivideLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Move < out[j].Move })
	return out, nil
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
