package board

import (
	"errors"
	"fmt"
	"strings"

	"patzer/position"
)

const (
	Width  = position.Size
	Height = position.Size
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
)

// Board is an 8x8 mailbox grid. Row 0 holds Black's back rank, row 7
// White's. Each cell owns at most one piece, and a piece's Pos always
// equals the cell holding it; MovePiece is the only mutator after setup.
type Board struct {
	grid [Height][Width]*Piece
}

type boardConfig struct {
	custom bool
	pieces []Piece
}

type BoardOption func(*boardConfig)

// WithPieces builds the board from the given pieces instead of the standard
// starting layout. WithPieces() alone yields an empty board.
func WithPieces(pieces ...Piece) BoardOption {
	return func(cfg *boardConfig) {
		cfg.custom = true
		cfg.pieces = append(cfg.pieces, pieces...)
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if !cfg.custom {
		b.setupStartingPosition()
		return b, nil
	}
	for _, p := range cfg.pieces {
		if err := b.place(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) setupStartingPosition() {
	backRank := []Kind{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}
	for col, k := range backRank {
		b.put(SideBlack, k, position.Square{Row: 0, Col: col})
		b.put(SideWhite, k, position.Square{Row: Height - 1, Col: col})
	}
	for col := 0; col < Width; col++ {
		b.put(SideBlack, KindPawn, position.Square{Row: 1, Col: col})
		b.put(SideWhite, KindPawn, position.Square{Row: Height - 2, Col: col})
	}
}

func (b *Board) put(s Side, k Kind, sq position.Square) {
	b.grid[sq.Row][sq.Col] = &Piece{Side: s, Kind: k, Pos: sq}
}

func (b *Board) place(p Piece) error {
	if p.Side != SideWhite && p.Side != SideBlack {
		return fmt.Errorf("%w: unknown side", ErrInvalidPlacement)
	}
	if p.Kind < KindPawn || KindKing < p.Kind {
		return fmt.Errorf("%w: unknown kind", ErrInvalidPlacement)
	}
	if !p.Pos.Valid() {
		return fmt.Errorf("%w: square off board", ErrInvalidPlacement)
	}
	if b.grid[p.Pos.Row][p.Pos.Col] != nil {
		return fmt.Errorf("%w: %s already occupied", ErrInvalidPlacement, p.Pos.Notation())
	}
	pc := p
	b.grid[p.Pos.Row][p.Pos.Col] = &pc
	return nil
}

// At returns the piece occupying sq, or nil for empty or off-board squares.
func (b *Board) At(sq position.Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.grid[sq.Row][sq.Col]
}

// MovePiece transfers the piece at from onto to, discarding whatever
// occupied to, and reports whether that was a capture. Pos and Moved are
// updated here and nowhere else. Moving from an empty square is a no-op.
func (b *Board) MovePiece(from, to position.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	pc := b.grid[from.Row][from.Col]
	if pc == nil {
		return false
	}
	captured := b.grid[to.Row][to.Col] != nil
	b.grid[from.Row][from.Col] = nil
	b.grid[to.Row][to.Col] = pc
	pc.Pos = to
	pc.Moved = true
	return captured
}

func (b *Board) Clone() *Board {
	bb := &Board{}
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if pc := b.grid[row][col]; pc != nil {
				cp := *pc
				bb.grid[row][col] = &cp
			}
		}
	}
	return bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := 0; row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", Height-row))
		for col := 0; col < Width; col++ {
			sym := " "
			if pc := b.grid[row][col]; pc != nil {
				sym = pc.Kind.SymbolFEN(pc.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.Square{Row: Height - 1, Col: col}.NotationFile()))
	}
	return builder.String()
}
