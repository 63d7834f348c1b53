package position

import (
	"errors"
)

const (
	// Size is the number of ranks and files on the board.
	Size = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square addresses one board cell. Row 0 is the top rank (rank 8) and row 7
// the bottom rank (rank 1); Col 0 is file a.
type Square struct {
	Row int
	Col int
}

func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return Square{}, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return Square{}, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return Square{}, err
	}
	return Square{Row: row, Col: col}, nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return s.NotationFile() + s.NotationRank()
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return 0 <= s.Row && s.Row < Size && 0 <= s.Col && s.Col < Size
}

// Offset returns the square shifted by dr rows and dc columns. The result
// may lie off the board; callers filter with Valid.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidNotation
	}
	return []byte(s.Notation()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := NewSquareFromNotation(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

func (s Square) NotationFile() string {
	if s.Col < 0 || Size <= s.Col {
		return ""
	}
	return string(rune('a' + s.Col))
}

func (s Square) NotationRank() string {
	if s.Row < 0 || Size <= s.Row {
		return ""
	}
	return string(rune('0' + Size - s.Row))
}

func notationToCol(f byte) (int, error) {
	col := int(f - 'a')
	if col < 0 || Size <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (int, error) {
	rank := int(r - '0')
	if rank < 1 || Size < rank {
		return 0, ErrInvalidNotation
	}
	return Size - rank, nil
}
