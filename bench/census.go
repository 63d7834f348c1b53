package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"patzer/board"
)

// Census walks the movement tree from the standard starting position to
// the given depth, counting positions and captures along the last ply.
// With verbose set it streams a per-opening-move breakdown to out before
// the summary line.
func Census(depth int, parallel, verbose bool, out chan string) error {
	if depth < 0 {
		return fmt.Errorf("invalid census depth %d", depth)
	}
	b, err := board.NewBoard()
	if err != nil {
		return err
	}

	var run censusFunc
	if parallel {
		run = runCensusParallel
	} else {
		run = runCensus
	}

	var positions, captures uint64
	start := time.Now()
	run(b, board.SideWhite, depth, true, verbose, out, &positions, &captures)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d positions=%d rate=%dp/s captures=%d (%.3fs elapsed)",
			depth, positions, int(float64(positions)/end.Sub(start).Seconds()), captures, end.Sub(start).Seconds())

	return nil
}

type censusFunc func(b *board.Board, side board.Side, d int, root, verbose bool, out chan string, positions, captures *uint64) uint64

func runCensus(b *board.Board, side board.Side, d int, root, verbose bool, out chan string, positions, captures *uint64) uint64 {
	if d == 0 {
		*positions++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves(side) {
		var child uint64
		if d == 1 {
			// final ply, the move itself is the position
			child = 1
			*positions++
			if mv.IsCapture {
				*captures++
			}
		} else {
			bb := b.Clone()
			bb.MovePiece(mv.From, mv.To)
			child = runCensus(bb, side.Opposite(), d-1, false, verbose, out, positions, captures)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.Algebra(), child)
		}
		sum += child
	}
	return sum
}

func runCensusParallel(b *board.Board, side board.Side, d int, root, verbose bool, out chan string, positions, captures *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(positions, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves(side) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				child = 1
				atomic.AddUint64(positions, 1)
				if mv.IsCapture {
					atomic.AddUint64(captures, 1)
				}
			} else {
				bb := b.Clone()
				bb.MovePiece(mv.From, mv.To)
				child = runCensusParallel(bb, side.Opposite(), d-1, false, verbose, out, positions, captures)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.Algebra(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
