package game

import (
	"math/rand"
	"time"

	"patzer/board"
	"patzer/position"
)

// Game is one caller-owned chess game: the board plus turn, selection
// state, move log, and play mode. Methods are not safe for concurrent use;
// callers serialize access, one mutation at a time.
type Game struct {
	board    *board.Board
	turn     board.Side
	selected *position.Square
	legal    []position.Square
	history  []string
	mode     Mode
	rng      *rand.Rand
}

type gameConfig struct {
	board *board.Board
	rng   *rand.Rand
}

type GameOption func(*gameConfig)

// WithBoard starts the game from a custom position instead of the standard
// starting layout.
func WithBoard(b *board.Board) GameOption {
	return func(cfg *gameConfig) {
		cfg.board = b
	}
}

// WithRand injects the randomness source used by AutoMove.
func WithRand(rng *rand.Rand) GameOption {
	return func(cfg *gameConfig) {
		cfg.rng = rng
	}
}

// NewGame starts a fresh game in the given mode with White to move.
func NewGame(mode Mode, opts ...GameOption) *Game {
	cfg := &gameConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.board == nil {
		// the standard layout cannot fail to place
		cfg.board, _ = board.NewBoard()
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		board:   cfg.board,
		turn:    board.SideWhite,
		history: []string{},
		mode:    mode,
		rng:     cfg.rng,
	}
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) Mode() Mode {
	return g.mode
}

// PieceAt returns a copy of the piece on sq.
func (g *Game) PieceAt(sq position.Square) (board.Piece, bool) {
	pc := g.board.At(sq)
	if pc == nil {
		return board.Piece{}, false
	}
	return *pc, true
}

func (g *Game) Selected() (position.Square, bool) {
	if g.selected == nil {
		return position.Square{}, false
	}
	return *g.selected, true
}

// LegalDestinations returns a copy of the destinations cached by the last
// successful Select.
func (g *Game) LegalDestinations() []position.Square {
	return append([]position.Square(nil), g.legal...)
}

// History returns a copy of the move log, oldest first.
func (g *Game) History() []string {
	return append([]string{}, g.history...)
}

// Select picks the piece on sq for the side to move and caches its legal
// destinations. It reports false and changes nothing when sq is empty or
// holds an opposing piece.
func (g *Game) Select(sq position.Square) bool {
	pc := g.board.At(sq)
	if pc == nil || pc.Side != g.turn {
		return false
	}
	g.selected = &sq
	g.legal = g.board.LegalDestinations(sq)
	return true
}

// Deselect clears the selection and its cached destinations.
func (g *Game) Deselect() {
	g.selected = nil
	g.legal = nil
}

// Move plays the selected piece to the given square. It reports false and
// changes nothing unless a piece is selected and to is among its cached
// destinations. On success the move is applied as one transition: grid
// transfer, notation appended to the log, turn flipped, selection cleared.
func (g *Game) Move(to position.Square) bool {
	if g.selected == nil || !g.isLegalDestination(to) {
		return false
	}
	from := *g.selected
	pc := g.board.At(from)
	mv := board.Move{
		From:      from,
		To:        to,
		Side:      pc.Side,
		Kind:      pc.Kind,
		IsCapture: g.board.At(to) != nil,
	}
	g.board.MovePiece(from, to)
	g.history = append(g.history, mv.Algebra())
	g.turn = g.turn.Opposite()
	g.selected = nil
	g.legal = nil
	return true
}

func (g *Game) isLegalDestination(to position.Square) bool {
	for _, sq := range g.legal {
		if sq == to {
			return true
		}
	}
	return false
}

// Moves enumerates all legal moves for the side to move, in the same
// deterministic order AutoMove draws from.
func (g *Game) Moves() []board.Move {
	return g.board.GenerateMoves(g.turn)
}

// Cell is one occupied square in a Snapshot.
type Cell struct {
	Side  board.Side `json:"color"`
	Kind  board.Kind `json:"kind"`
	Moved bool       `json:"has_moved"`
}

// Snapshot is a plain-data copy of the visible game state for renderers
// and transports. Mutating a snapshot does not affect the game.
type Snapshot struct {
	Grid     [position.Size][position.Size]*Cell `json:"board"`
	Turn     board.Side                          `json:"turn"`
	Mode     Mode                                `json:"mode"`
	Selected *position.Square                    `json:"selected,omitempty"`
	Legal    []position.Square                   `json:"legal_destinations,omitempty"`
	History  []string                            `json:"move_history"`
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:    g.turn,
		Mode:    g.mode,
		History: g.History(),
	}
	for row := 0; row < position.Size; row++ {
		for col := 0; col < position.Size; col++ {
			if pc := g.board.At(position.Square{Row: row, Col: col}); pc != nil {
				snap.Grid[row][col] = &Cell{Side: pc.Side, Kind: pc.Kind, Moved: pc.Moved}
			}
		}
	}
	if g.selected != nil {
		sq := *g.selected
		snap.Selected = &sq
	}
	snap.Legal = g.LegalDestinations()
	return snap
}
