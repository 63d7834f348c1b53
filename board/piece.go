package board

import (
	"fmt"

	"patzer/position"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// SymbolAlgebra is the piece letter used in move notation. Pawns have none.
func (k Kind) SymbolAlgebra() string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolFEN(SideWhite)
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindPawn:
		return []byte("pawn"), nil
	case KindBishop:
		return []byte("bishop"), nil
	case KindKnight:
		return []byte("knight"), nil
	case KindRook:
		return []byte("rook"), nil
	case KindQueen:
		return []byte("queen"), nil
	case KindKing:
		return []byte("king"), nil
	default:
		return nil, fmt.Errorf("cannot encode kind %d", uint8(k))
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pawn":
		*k = KindPawn
	case "bishop":
		*k = KindBishop
	case "knight":
		*k = KindKnight
	case "rook":
		*k = KindRook
	case "queen":
		*k = KindQueen
	case "king":
		*k = KindKing
	default:
		return fmt.Errorf("unknown piece kind %q", text)
	}
	return nil
}

// Piece is one piece on the grid. The cell holding it is the authority for
// its location; Pos mirrors that cell and is kept in sync by the single
// board mutator. Moved turns true on the piece's first move and never
// reverts; only pawn double-step eligibility consumes it.
type Piece struct {
	Side  Side
	Kind  Kind
	Pos   position.Square
	Moved bool
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Side, p.Kind, p.Pos.Notation())
}
