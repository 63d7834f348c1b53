package game

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patzer/board"
	"patzer/position"
)

func mustSquare(t *testing.T, notation string) position.Square {
	t.Helper()
	sq, err := position.NewSquareFromNotation(notation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sq
}

func mustBoard(t *testing.T, pieces ...board.Piece) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithPieces(pieces...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestNewGame(t *testing.T) {
	t.Parallel()
	g := NewGame(ModeMultiplayer)

	if got := g.Turn(); got != board.SideWhite {
		t.Errorf("unexpected starting turn: got=%s want=%s", got, board.SideWhite)
	}
	if got := g.Mode(); got != ModeMultiplayer {
		t.Errorf("unexpected mode: got=%s want=%s", got, ModeMultiplayer)
	}
	if got := g.History(); len(got) != 0 {
		t.Errorf("unexpected history: %v", got)
	}
	if _, ok := g.Selected(); ok {
		t.Error("fresh game has a selection")
	}
	if pc, ok := g.PieceAt(mustSquare(t, "e1")); !ok || pc.Kind != board.KindKing {
		t.Errorf("unexpected piece at e1: %v", pc)
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		square   string
		want     bool
		wantDest []string
	}{
		{
			name:     "own pawn",
			square:   "e2",
			want:     true,
			wantDest: []string{"e3", "e4"},
		},
		{
			name:     "own knight",
			square:   "g1",
			want:     true,
			wantDest: []string{"f3", "h3"},
		},
		{
			name:   "empty square",
			square: "e4",
			want:   false,
		},
		{
			name:   "opposing piece",
			square: "e7",
			want:   false,
		},
		{
			name:   "boxed in rook",
			square: "a1",
			want:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame(ModeMultiplayer)
			sq := mustSquare(t, tt.square)

			if got := g.Select(sq); got != tt.want {
				t.Fatalf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if !tt.want {
				if _, ok := g.Selected(); ok {
					t.Error("failed select left a selection behind")
				}
				return
			}
			if got, _ := g.Selected(); got != sq {
				t.Errorf("unexpected selection: got=%v want=%v", got, sq)
			}
			var got []string
			for _, d := range g.LegalDestinations() {
				got = append(got, d.Notation())
			}
			if diff := cmp.Diff(tt.wantDest, got); diff != "" {
				t.Errorf("unexpected destinations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectReplacesSelection(t *testing.T) {
	t.Parallel()
	g := NewGame(ModeMultiplayer)

	if !g.Select(mustSquare(t, "e2")) {
		t.Fatal("select e2 failed")
	}
	if !g.Select(mustSquare(t, "g1")) {
		t.Fatal("select g1 failed")
	}
	if got, _ := g.Selected(); got != mustSquare(t, "g1") {
		t.Errorf("unexpected selection: got=%v", got)
	}
	want := []string{"f3", "h3"}
	var got []string
	for _, d := range g.LegalDestinations() {
		got = append(got, d.Notation())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cache not refreshed (-want +got):\n%s", diff)
	}
}

func TestMoveOpening(t *testing.T) {
	t.Parallel()
	g := NewGame(ModeMultiplayer)

	if !g.Select(mustSquare(t, "e2")) {
		t.Fatal("select e2 failed")
	}
	if !g.Move(mustSquare(t, "e4")) {
		t.Fatal("move e4 failed")
	}

	if got := g.History(); len(got) != 1 || got[len(got)-1] != "e4" {
		t.Errorf("unexpected history: %v", got)
	}
	if got := g.Turn(); got != board.SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.SideBlack)
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection not cleared after move")
	}
	if got := g.LegalDestinations(); len(got) != 0 {
		t.Errorf("destination cache not cleared: %v", got)
	}
	if _, ok := g.PieceAt(mustSquare(t, "e2")); ok {
		t.Error("source square still occupied")
	}
	pc, ok := g.PieceAt(mustSquare(t, "e4"))
	if !ok || pc.Kind != board.KindPawn || !pc.Moved {
		t.Errorf("unexpected piece at e4: %v", pc)
	}
}

func TestMoveRejections(t *testing.T) {
	t.Parallel()

	t.Run("no selection", func(t *testing.T) {
		t.Parallel()
		g := NewGame(ModeMultiplayer)
		if g.Move(mustSquare(t, "e4")) {
			t.Fatal("move without selection succeeded")
		}
		if got := g.Turn(); got != board.SideWhite {
			t.Errorf("turn changed: %s", got)
		}
	})

	t.Run("illegal destination keeps everything", func(t *testing.T) {
		t.Parallel()
		g := NewGame(ModeMultiplayer)
		if !g.Select(mustSquare(t, "e2")) {
			t.Fatal("select e2 failed")
		}
		before := g.Snapshot()

		if g.Move(mustSquare(t, "e5")) {
			t.Fatal("illegal move succeeded")
		}
		if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
			t.Errorf("rejected move mutated state (-before +after):\n%s", diff)
		}
		if got, ok := g.Selected(); !ok || got != mustSquare(t, "e2") {
			t.Error("selection lost after rejected move")
		}
	})
}

func TestMoveCaptureNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		pieces []board.Piece
		from   string
		to     string
		want   string
	}{
		{
			name: "pawn capture",
			pieces: []board.Piece{
				{Side: board.SideWhite, Kind: board.KindPawn, Pos: position.Square{Row: 4, Col: 4}, Moved: true},
				{Side: board.SideBlack, Kind: board.KindPawn, Pos: position.Square{Row: 3, Col: 3}, Moved: true},
			},
			from: "e4",
			to:   "d5",
			want: "exd5",
		},
		{
			name: "knight capture",
			pieces: []board.Piece{
				{Side: board.SideWhite, Kind: board.KindKnight, Pos: position.Square{Row: 5, Col: 5}},
				{Side: board.SideBlack, Kind: board.KindPawn, Pos: position.Square{Row: 3, Col: 4}, Moved: true},
			},
			from: "f3",
			to:   "e5",
			want: "Nxe5",
		},
		{
			name: "rook slide without capture",
			pieces: []board.Piece{
				{Side: board.SideWhite, Kind: board.KindRook, Pos: position.Square{Row: 7, Col: 0}},
			},
			from: "a1",
			to:   "a6",
			want: "Ra6",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame(ModeMultiplayer, WithBoard(mustBoard(t, tt.pieces...)))

			if !g.Select(mustSquare(t, tt.from)) {
				t.Fatalf("select %s failed", tt.from)
			}
			if !g.Move(mustSquare(t, tt.to)) {
				t.Fatalf("move %s failed", tt.to)
			}
			got := g.History()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("unexpected history: got=%v want=[%s]", got, tt.want)
			}
		})
	}
}

func TestAutoMove(t *testing.T) {
	t.Parallel()

	t.Run("plays one move through the shared path", func(t *testing.T) {
		t.Parallel()
		g := NewGame(ModeSinglePlayer, WithRand(rand.New(rand.NewSource(7))))
		if !g.AutoMove() {
			t.Fatal("automove failed on the starting position")
		}
		if got := g.History(); len(got) != 1 {
			t.Errorf("unexpected history: %v", got)
		}
		if got := g.Turn(); got != board.SideBlack {
			t.Errorf("unexpected turn: got=%s", got)
		}
		if _, ok := g.Selected(); ok {
			t.Error("automove left a selection behind")
		}
	})

	t.Run("reproducible with a fixed source", func(t *testing.T) {
		t.Parallel()
		a := NewGame(ModeSinglePlayer, WithRand(rand.New(rand.NewSource(42))))
		b := NewGame(ModeSinglePlayer, WithRand(rand.New(rand.NewSource(42))))
		for i := 0; i < 6; i++ {
			if !a.AutoMove() || !b.AutoMove() {
				t.Fatalf("automove %d failed", i)
			}
		}
		if diff := cmp.Diff(a.History(), b.History()); diff != "" {
			t.Errorf("same seed diverged (-a +b):\n%s", diff)
		}
	})

	t.Run("no moves available", func(t *testing.T) {
		t.Parallel()
		g := NewGame(ModeSinglePlayer, WithBoard(mustBoard(t,
			board.Piece{Side: board.SideWhite, Kind: board.KindKing, Pos: position.Square{Row: 7, Col: 4}},
		)))
		if !g.Select(mustSquare(t, "e1")) || !g.Move(mustSquare(t, "e2")) {
			t.Fatal("white king move failed")
		}

		if g.AutoMove() {
			t.Fatal("automove succeeded with no black pieces")
		}
		if got := g.Turn(); got != board.SideBlack {
			t.Errorf("failed automove changed the turn: %s", got)
		}
		if got := g.History(); len(got) != 1 {
			t.Errorf("failed automove touched history: %v", got)
		}
	})
}

func TestAutomatedToMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		mode  Mode
		moves [][2]string
		want  bool
	}{
		{
			name: "single player white to move",
			mode: ModeSinglePlayer,
			want: false,
		},
		{
			name:  "single player black to move",
			mode:  ModeSinglePlayer,
			moves: [][2]string{{"e2", "e4"}},
			want:  true,
		},
		{
			name:  "multiplayer black to move",
			mode:  ModeMultiplayer,
			moves: [][2]string{{"e2", "e4"}},
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame(tt.mode)
			for _, mv := range tt.moves {
				if !g.Select(mustSquare(t, mv[0])) || !g.Move(mustSquare(t, mv[1])) {
					t.Fatalf("move %v failed", mv)
				}
			}
			if got := g.AutomatedToMove(); got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()
	g := NewGame(ModeSinglePlayer)
	if !g.Select(mustSquare(t, "e2")) {
		t.Fatal("select e2 failed")
	}

	snap := g.Snapshot()
	if snap.Selected == nil || *snap.Selected != mustSquare(t, "e2") {
		t.Errorf("unexpected selected square: %v", snap.Selected)
	}
	if len(snap.Legal) != 2 {
		t.Errorf("unexpected legal destinations: %v", snap.Legal)
	}

	snap.Grid[6][4] = nil
	snap.History = append(snap.History, "bogus")
	*snap.Selected = position.Square{Row: 0, Col: 0}

	if _, ok := g.PieceAt(mustSquare(t, "e2")); !ok {
		t.Error("mutating snapshot grid reached the game")
	}
	if got := g.History(); len(got) != 0 {
		t.Error("mutating snapshot history reached the game")
	}
	if got, _ := g.Selected(); got != mustSquare(t, "e2") {
		t.Error("mutating snapshot selection reached the game")
	}
}

func TestDeselect(t *testing.T) {
	t.Parallel()
	g := NewGame(ModeMultiplayer)
	if !g.Select(mustSquare(t, "e2")) {
		t.Fatal("select e2 failed")
	}
	g.Deselect()
	if _, ok := g.Selected(); ok {
		t.Error("selection survived deselect")
	}
	if got := g.LegalDestinations(); len(got) != 0 {
		t.Errorf("destination cache survived deselect: %v", got)
	}
}
