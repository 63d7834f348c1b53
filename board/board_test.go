package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patzer/position"
)

func TestNewBoardStartingPosition(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		notation string
		side     Side
		kind     Kind
	}{
		{notation: "a8", side: SideBlack, kind: KindRook},
		{notation: "b8", side: SideBlack, kind: KindKnight},
		{notation: "c8", side: SideBlack, kind: KindBishop},
		{notation: "d8", side: SideBlack, kind: KindQueen},
		{notation: "e8", side: SideBlack, kind: KindKing},
		{notation: "h8", side: SideBlack, kind: KindRook},
		{notation: "b7", side: SideBlack, kind: KindPawn},
		{notation: "e2", side: SideWhite, kind: KindPawn},
		{notation: "a1", side: SideWhite, kind: KindRook},
		{notation: "d1", side: SideWhite, kind: KindQueen},
		{notation: "e1", side: SideWhite, kind: KindKing},
		{notation: "g1", side: SideWhite, kind: KindKnight},
	}
	for _, tt := range tests {
		sq, err := position.NewSquareFromNotation(tt.notation)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pc := b.At(sq)
		if pc == nil {
			t.Fatalf("no piece at %s", tt.notation)
		}
		if pc.Side != tt.side || pc.Kind != tt.kind {
			t.Errorf("unexpected piece at %s: got=%s %s want=%s %s", tt.notation, pc.Side, pc.Kind, tt.side, tt.kind)
		}
		if pc.Moved {
			t.Errorf("piece at %s already marked moved", tt.notation)
		}
	}

	var count int
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			pc := b.grid[row][col]
			if pc == nil {
				continue
			}
			count++
			if want := (position.Square{Row: row, Col: col}); pc.Pos != want {
				t.Errorf("piece position out of sync: got=%v want=%v", pc.Pos, want)
			}
		}
	}
	if count != 32 {
		t.Errorf("unexpected piece count: got=%d want=32", count)
	}
}

func TestNewBoardWithPieces(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pieces  []Piece
		wantErr error
	}{
		{
			name:   "empty board",
			pieces: nil,
		},
		{
			name: "single piece",
			pieces: []Piece{
				{Side: SideWhite, Kind: KindRook, Pos: position.Square{Row: 4, Col: 4}},
			},
		},
		{
			name: "off board",
			pieces: []Piece{
				{Side: SideWhite, Kind: KindRook, Pos: position.Square{Row: 8, Col: 0}},
			},
			wantErr: ErrInvalidPlacement,
		},
		{
			name: "occupied square",
			pieces: []Piece{
				{Side: SideWhite, Kind: KindRook, Pos: position.Square{Row: 4, Col: 4}},
				{Side: SideBlack, Kind: KindQueen, Pos: position.Square{Row: 4, Col: 4}},
			},
			wantErr: ErrInvalidPlacement,
		},
		{
			name: "unknown side",
			pieces: []Piece{
				{Kind: KindRook, Pos: position.Square{Row: 4, Col: 4}},
			},
			wantErr: ErrInvalidPlacement,
		},
		{
			name: "unknown kind",
			pieces: []Piece{
				{Side: SideWhite, Pos: position.Square{Row: 4, Col: 4}},
			},
			wantErr: ErrInvalidPlacement,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithPieces(tt.pieces...))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, p := range tt.pieces {
				pc := b.At(p.Pos)
				if pc == nil || pc.Side != p.Side || pc.Kind != p.Kind {
					t.Errorf("piece not placed at %v", p.Pos)
				}
			}
		})
	}
}

func TestMovePiece(t *testing.T) {
	t.Parallel()
	from := position.Square{Row: 6, Col: 4}
	to := position.Square{Row: 4, Col: 4}

	t.Run("plain move", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, Piece{Side: SideWhite, Kind: KindPawn, Pos: from})
		if captured := b.MovePiece(from, to); captured {
			t.Error("unexpected capture")
		}
		if b.At(from) != nil {
			t.Error("source square not cleared")
		}
		pc := b.At(to)
		if pc == nil {
			t.Fatal("piece missing from destination")
		}
		if pc.Pos != to {
			t.Errorf("position not synced: got=%v want=%v", pc.Pos, to)
		}
		if !pc.Moved {
			t.Error("moved flag not set")
		}
	})

	t.Run("capture discards occupant", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t,
			Piece{Side: SideWhite, Kind: KindRook, Pos: from},
			Piece{Side: SideBlack, Kind: KindKnight, Pos: to},
		)
		if captured := b.MovePiece(from, to); !captured {
			t.Error("capture not reported")
		}
		pc := b.At(to)
		if pc == nil || pc.Kind != KindRook || pc.Side != SideWhite {
			t.Errorf("unexpected occupant after capture: %v", pc)
		}
	})

	t.Run("empty source is a no-op", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, Piece{Side: SideBlack, Kind: KindKing, Pos: to})
		if captured := b.MovePiece(from, to); captured {
			t.Error("unexpected capture")
		}
		if pc := b.At(to); pc == nil || pc.Kind != KindKing {
			t.Error("destination disturbed by no-op move")
		}
	})
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bb := b.Clone()
	if diff := cmp.Diff(b.Dump(), bb.Dump()); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	e2 := position.Square{Row: 6, Col: 4}
	e4 := position.Square{Row: 4, Col: 4}
	bb.MovePiece(e2, e4)

	if b.At(e2) == nil {
		t.Error("mutating clone disturbed original source square")
	}
	if b.At(e4) != nil {
		t.Error("mutating clone disturbed original destination square")
	}
	if pc := b.At(e2); pc != nil && pc.Moved {
		t.Error("mutating clone disturbed original piece flags")
	}
}
