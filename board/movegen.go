package board

import "patzer/position"

// Movement tables. Order is load-bearing: LegalDestinations walks these
// front to back, so enumeration is reproducible for identical positions.
var (
	rookDirections = [][2]int{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	}
	bishopDirections = [][2]int{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	queenDirections = [][2]int{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [][2]int{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	pawnCaptureCols = []int{-1, 1}
)

// LegalDestinations returns every square the piece at sq may move to under
// movement rules alone; there is no notion of check in this ruleset, so a
// move exposing one's own king is still listed. Empty and off-board squares
// yield nil.
func (b *Board) LegalDestinations(sq position.Square) []position.Square {
	pc := b.At(sq)
	if pc == nil {
		return nil
	}
	switch pc.Kind {
	case KindPawn:
		return b.pawnDestinations(pc)
	case KindBishop:
		return b.rayDestinations(pc, bishopDirections)
	case KindKnight:
		return b.offsetDestinations(pc, knightOffsets)
	case KindRook:
		return b.rayDestinations(pc, rookDirections)
	case KindQueen:
		return b.rayDestinations(pc, queenDirections)
	case KindKing:
		return b.offsetDestinations(pc, kingOffsets)
	default:
		return nil
	}
}

// GenerateMoves enumerates all legal moves for a side, scanning the grid in
// row-major order and keeping each piece's destination order.
func (b *Board) GenerateMoves(s Side) []Move {
	var mvs []Move
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			pc := b.grid[row][col]
			if pc == nil || pc.Side != s {
				continue
			}
			for _, to := range b.LegalDestinations(pc.Pos) {
				mvs = append(mvs, Move{
					From:      pc.Pos,
					To:        to,
					Side:      s,
					Kind:      pc.Kind,
					IsCapture: b.grid[to.Row][to.Col] != nil,
				})
			}
		}
	}
	return mvs
}

func (b *Board) pawnDestinations(pc *Piece) []position.Square {
	var dst []position.Square
	dir := -1
	if pc.Side == SideBlack {
		dir = 1
	}

	fwd := pc.Pos.Offset(dir, 0)
	if fwd.Valid() && b.At(fwd) == nil {
		dst = append(dst, fwd)
		if !pc.Moved {
			jump := pc.Pos.Offset(2*dir, 0)
			if jump.Valid() && b.At(jump) == nil {
				dst = append(dst, jump)
			}
		}
	}

	for _, dc := range pawnCaptureCols {
		cap := pc.Pos.Offset(dir, dc)
		if !cap.Valid() {
			continue
		}
		if target := b.At(cap); target != nil && target.Side != pc.Side {
			dst = append(dst, cap)
		}
	}
	return dst
}

func (b *Board) rayDestinations(pc *Piece, dirs [][2]int) []position.Square {
	var dst []position.Square
	for _, d := range dirs {
		for sq := pc.Pos.Offset(d[0], d[1]); sq.Valid(); sq = sq.Offset(d[0], d[1]) {
			target := b.At(sq)
			if target == nil {
				dst = append(dst, sq)
				continue
			}
			if target.Side != pc.Side {
				dst = append(dst, sq)
			}
			break
		}
	}
	return dst
}

func (b *Board) offsetDestinations(pc *Piece, offsets [][2]int) []position.Square {
	var dst []position.Square
	for _, o := range offsets {
		sq := pc.Pos.Offset(o[0], o[1])
		if !sq.Valid() {
			continue
		}
		if target := b.At(sq); target == nil || target.Side != pc.Side {
			dst = append(dst, sq)
		}
	}
	return dst
}
