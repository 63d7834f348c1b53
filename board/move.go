package board

import "patzer/position"

type Move struct {
	From, To position.Square
	Side     Side
	Kind     Kind

	IsCapture bool
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra renders the move in the short algebraic form used by the move
// log: pawn pushes by destination alone ("e4"), pawn captures by source
// file ("exd5"), everything else by piece letter ("Nf3", "Nxf3"). There is
// no disambiguation and no check or mate suffix.
func (m Move) Algebra() string {
	nt := m.Kind.SymbolAlgebra()
	if m.IsCapture {
		if m.Kind == KindPawn {
			nt += m.From.NotationFile()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	return nt
}
