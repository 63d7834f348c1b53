package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"patzer/board"
	"patzer/position"
)

const (
	// DefaultSaveFile is where Save and Load look when the caller passes
	// no path of its own.
	DefaultSaveFile = "chess_save.json"
)

var (
	ErrInvalidSave = errors.New("invalid save file")
)

type savedPiece struct {
	Color    board.Side `json:"color"`
	Type     board.Kind `json:"type"`
	HasMoved bool       `json:"has_moved"`
}

type savedGame struct {
	Board         [][]*savedPiece `json:"board"`
	CurrentPlayer board.Side      `json:"current_player"`
	GameMode      *int            `json:"game_mode"`
	MoveHistory   []string        `json:"move_history"`
}

// Save writes the full game state to path as an indented JSON document.
func (g *Game) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.document()); err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}
	return nil
}

// Load replaces the game wholesale with the state stored at path. The
// swap happens only after the entire document parses and rebuilds cleanly;
// on any error the live game is left untouched. A null game_mode in the
// document keeps the game's current mode.
func (g *Game) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read save file: %w", err)
	}

	var doc savedGame
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}

	if len(doc.Board) != position.Size {
		return fmt.Errorf("%w: board must have %d rows", ErrInvalidSave, position.Size)
	}
	var pieces []board.Piece
	for row, cells := range doc.Board {
		if len(cells) != position.Size {
			return fmt.Errorf("%w: row %d must have %d cells", ErrInvalidSave, row, position.Size)
		}
		for col, cell := range cells {
			if cell == nil {
				continue
			}
			pieces = append(pieces, board.Piece{
				Side:  cell.Color,
				Kind:  cell.Type,
				Pos:   position.Square{Row: row, Col: col},
				Moved: cell.HasMoved,
			})
		}
	}
	b, err := board.NewBoard(board.WithPieces(pieces...))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}

	if doc.CurrentPlayer != board.SideWhite && doc.CurrentPlayer != board.SideBlack {
		return fmt.Errorf("%w: missing current player", ErrInvalidSave)
	}

	mode := g.mode
	if doc.GameMode != nil {
		switch *doc.GameMode {
		case 0:
			mode = ModeSinglePlayer
		case 1:
			mode = ModeMultiplayer
		default:
			return fmt.Errorf("%w: unknown game mode %d", ErrInvalidSave, *doc.GameMode)
		}
	}

	g.board = b
	g.turn = doc.CurrentPlayer
	g.mode = mode
	g.history = append([]string{}, doc.MoveHistory...)
	g.selected = nil
	g.legal = nil
	return nil
}

func (g *Game) document() savedGame {
	cells := make([][]*savedPiece, position.Size)
	for row := range cells {
		cells[row] = make([]*savedPiece, position.Size)
		for col := range cells[row] {
			pc := g.board.At(position.Square{Row: row, Col: col})
			if pc == nil {
				continue
			}
			cells[row][col] = &savedPiece{Color: pc.Side, Type: pc.Kind, HasMoved: pc.Moved}
		}
	}
	return savedGame{
		Board:         cells,
		CurrentPlayer: g.turn,
		GameMode:      g.mode.saveValue(),
		MoveHistory:   g.History(),
	}
}

func (m Mode) saveValue() *int {
	var v int
	switch m {
	case ModeSinglePlayer:
		v = 0
	case ModeMultiplayer:
		v = 1
	default:
		return nil
	}
	return &v
}
