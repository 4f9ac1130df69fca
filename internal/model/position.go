package model

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
)

// Position is a square on the board. Col 0 is file A and Row 0 is rank 1.
type Position struct {
	Col uint8
	Row uint8
}

const maxCoordinate = 255

// Offset returns the position shifted by the given number of columns and rows.
// It fails instead of wrapping when the result would leave the coordinate range.
func (p Position) Offset(dCol, dRow int) (Position, bool) {
	col := int(p.Col) + dCol
	row := int(p.Row) + dRow
	if col < 0 || col > maxCoordinate || row < 0 || row > maxCoordinate {
		return Position{}, false
	}
	return Position{Col: uint8(col), Row: uint8(row)}, true
}

func (p Position) String() string {
	return columnName(p.Col) + strconv.Itoa(int(p.Row)+1)
}

// squareNotation is the lower case form used in move notation.
func (p Position) squareNotation() string {
	return fmt.Sprintf("%s%d", fileNotation(p.Col), int(p.Row)+1)
}

func fileNotation(col uint8) string {
	name := []byte(columnName(col))
	for i := range name {
		name[i] += 'a' - 'A'
	}
	return string(name)
}

// columnName encodes a column in bijective base 26: A..Z, AA..AZ, BA...
func columnName(col uint8) string {
	n := int(col) + 1
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

// ParsePosition parses the form produced by Position.String, e.g. "E4" or "AA12".
func ParsePosition(s string) (Position, bool) {
	i := 0
	col := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		if col > maxCoordinate+1 {
			return Position{}, false
		}
		i++
	}
	if i == 0 || i == len(s) {
		return Position{}, false
	}
	digits := s[i:]
	if digits[0] == '0' {
		return Position{}, false
	}
	row := 0
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return Position{}, false
		}
		row = row*10 + int(digits[j]-'0')
		if row > maxCoordinate+1 {
			return Position{}, false
		}
	}
	return Position{Col: uint8(col - 1), Row: uint8(row - 1)}, true
}

// MustParsePosition is ParsePosition for literals known to be valid.
func MustParsePosition(s string) Position {
	p, ok := ParsePosition(s)
	if !ok {
		panic(fmt.Sprintf("model: invalid position %q", s))
	}
	return p
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	parsed, ok := ParsePosition(string(text))
	if !ok {
		return fmt.Errorf("invalid position %q", text)
	}
	*p = parsed
	return nil
}

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

func NewPositionSet(positions ...Position) PositionSet {
	set := make(PositionSet, len(positions))
	for _, p := range positions {
		set.Add(p)
	}
	return set
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Union(other PositionSet) {
	for p := range other {
		s.Add(p)
	}
}

// Sorted returns the members ordered by row, then column.
func (s PositionSet) Sorted() []Position {
	positions := maps.Keys(s)
	sortPositions(positions)
	return positions
}

func (s PositionSet) MarshalJSON() ([]byte, error) {
	return marshalPositions(s.Sorted())
}

func sortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		return positionLess(positions[i], positions[j])
	})
}

func positionLess(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
