package game

import "patzer/board"

// AutoMove plays one uniformly random legal move for the side to move,
// driving it through the same Select and Move path as interactive play so
// notation, history, and turn handling are shared. It reports false when
// the side has no legal moves, leaving the game unchanged.
func (g *Game) AutoMove() bool {
	mvs := g.board.GenerateMoves(g.turn)
	if len(mvs) == 0 {
		return false
	}
	mv := mvs[g.rng.Intn(len(mvs))]
	return g.Select(mv.From) && g.Move(mv.To)
}

// AutomatedToMove reports whether the automated side is to move: Black in
// single player mode. Multiplayer games have no automated side.
func (g *Game) AutomatedToMove() bool {
	return g.mode == ModeSinglePlayer && g.turn == board.SideBlack
}
