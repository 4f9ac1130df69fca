package model

import (
	"sort"
	"strings"
	"testing"
)

var pos = MustParsePosition

func squares(set PositionSet) string {
	names := make([]string, 0, len(set))
	for p := range set {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func destinations(moves MoveMap, from string) string {
	names := []string{}
	for _, p := range moves.Destinations(pos(from)) {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func hasMove(moves MoveMap, from, to string) bool {
	for _, m := range moves[pos(from)] {
		if m.To == pos(to) {
			return true
		}
	}
	return false
}

func mustGame(t *testing.T, mode GameMode) *Game {
	t.Helper()
	g, err := NewGame("test", mode)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to := pos(mv[:2]), pos(mv[2:])
		if _, err := g.Move(MoveRequest{From: from, To: to}); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
	}
}

func customMode(rows ...string) GameMode {
	return GameMode{Name: "custom", Bounds: StandardBounds, Rows: rows}
}
