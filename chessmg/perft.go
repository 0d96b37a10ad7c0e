package chessmg

import "chess-rules/internal/worker"

// Perft counts the leaf positions reachable from p in exactly depth plies.
// Depth 0 counts p itself. p is not modified.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	// Prepare a small pool of per-depth buffers
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(&p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.LegalMovesInto(pc.bufFor(depth))
	// Keep the (possibly grown) buffer for the next visit at this depth.
	pc.bufs[depth] = moves[:0]
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := p.MakeMove(m)
		nodes += perftRec(p, depth-1, pc)
		p.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns, for each legal move from p, the number of leaf
// positions reachable after it at the given total depth.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		result[m] = Perft(p.Apply(m), depth-1)
	}
	return result
}

// ParallelPerftDivide is PerftDivide with the root moves spread over the given
// number of workers. Each worker searches its own copy of the position.
func ParallelPerftDivide(p Position, depth, workers int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	moves := p.LegalMoves()
	counts := worker.Map(moves, workers, func(m Move) uint64 {
		return Perft(p.Apply(m), depth-1)
	})
	for i, m := range moves {
		result[m] = counts[i]
	}
	return result
}
