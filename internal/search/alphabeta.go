/*
 * vareng - a variant chess engine
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 vareng contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"context"

	"github.com/tpeters/vareng/internal/config"
	"github.com/tpeters/vareng/internal/eval"
	"github.com/tpeters/vareng/internal/movegen"
	"github.com/tpeters/vareng/internal/moveslice"
	"github.com/tpeters/vareng/internal/position"
	. "github.com/tpeters/vareng/internal/types"
)

// nodeCheckMask bounds how often negamax and quiescence pay for a ctx.Done
// check: once every 2^20 nodes, following the reference engine's pattern of
// checking wall-clock time only periodically rather than on every node.
const nodeCheckMask = 1<<20 - 1

// negamax searches pos to the given depth from ply plies below the root,
// returning a score from the side-to-move's perspective. ply 0 is the root.
func (s *Searcher) negamax(ctx context.Context, p *position.Position, depth, ply int, alpha, beta Value, isPV bool) Value {
	s.pv[ply] = s.pv[ply][:0]

	if ply > 0 {
		if isDrawByRepetitionOr50(p) {
			return ValueDraw
		}
		if leaderWasCaptured(p) {
			return -ValueCheckMate + Value(ply)
		}
	}

	if depth <= 0 || ply >= MaxDepth {
		if !config.Settings.Search.UseQuiescence {
			return s.eval.Evaluate(p)
		}
		return s.quiescence(ctx, p, ply, alpha, beta)
	}

	if ply > 0 {
		// Mate distance pruning: don't bother looking for a mate longer
		// than one we already know about at a shallower ply.
		if a := -ValueCheckMate + Value(ply); alpha < a {
			alpha = a
		}
		if b := ValueCheckMate - Value(ply); beta > b {
			beta = b
		}
		if alpha >= beta {
			return alpha
		}
	}

	s.nodes++
	if s.nodes&nodeCheckMask == 0 && s.outOfTime(ctx) {
		return ValueNA
	}

	alphaOrig := alpha

	var ttMove Move
	if config.Settings.Search.UseTT {
		if e, found := s.tt.Probe(p.ZobristKey()); found {
			if config.Settings.Search.UseTTMove {
				ttMove = e.Move
			}
			if config.Settings.Search.UseTTValue && int(e.Depth) >= depth {
				v := valueFromTT(e.Value, ply)
				switch {
				case e.ValueType == ValueTypeExact:
					return v
				case e.ValueType == ValueTypeLowerBound && v >= beta:
					return v
				case e.ValueType == ValueTypeUpperBound && v <= alpha:
					return v
				}
			}
		}
	}

	inCheck := movegen.InCheck(p)

	// Null move pruning: if passing the turn entirely still leaves the
	// opponent unable to beat beta, a real move will almost certainly do
	// better, so the rest of this node can be skipped.
	if config.Settings.Search.UseNullMove &&
		!isPV &&
		!inCheck &&
		depth > config.Settings.Search.NmpDepth &&
		eval.CanDoNullMove(p) {

		p.MakeNullMove()
		s.nodes++
		nullValue := -s.negamax(ctx, p, depth-1-config.Settings.Search.NmpReduction, ply+1, -beta, -beta+1, false)
		p.UnmakeNullMove()

		if s.stop {
			return ValueNA
		}
		if nullValue >= beta {
			return beta
		}
	}

	mover := p.SideToMove()
	moves := movegen.PseudoMoves(p)
	scores := s.scoreMoves(p, moves, ttMove, ply)
	ms := moveslice.MoveSlice(moves)
	ms.SortBy(scores)

	bestValue := ValueNA
	bestMove := MoveNone
	movesSearched := 0

	for _, m := range moves {
		if !movegen.MakeMoveIfLegal(p, m) {
			continue
		}

		givesCheck := movegen.InCheck(p)
		newDepth := depth - 1
		if givesCheck {
			// Check extension: don't let giving check cost search depth.
			newDepth = depth
		}

		var value Value
		switch {
		case movesSearched == 0 || !config.Settings.Search.UsePVS:
			value = -s.negamax(ctx, p, newDepth, ply+1, -beta, -alpha, isPV)
		default:
			reducedDepth := newDepth
			if config.Settings.Search.UseLmr &&
				depth >= config.Settings.Search.LmrDepth &&
				movesSearched >= config.Settings.Search.LmrMovesSearched &&
				!givesCheck &&
				m.CapturedType() == PieceTypeNone &&
				!m.MoveType().IsPromotion() {
				reducedDepth = newDepth - 1
				if reducedDepth < 0 {
					reducedDepth = 0
				}
			}
			// Null-window search first: we only need to know whether this
			// move beats alpha, not by how much.
			value = -s.negamax(ctx, p, reducedDepth, ply+1, -alpha-1, -alpha, false)
			if value > alpha && reducedDepth < newDepth && !s.stop {
				// The reduced search looked promising; confirm at full depth.
				value = -s.negamax(ctx, p, newDepth, ply+1, -alpha-1, -alpha, false)
			}
			if value > alpha && value < beta && !s.stop {
				// It really does beat alpha within the window: this is a
				// new PV candidate and needs the full window to get an
				// accurate score.
				value = -s.negamax(ctx, p, newDepth, ply+1, -beta, -alpha, true)
			}
		}

		movesSearched++
		p.UnmakeMove()

		if s.stop {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.savePV(ply, m)
				if alpha >= beta {
					if m.CapturedType() == PieceTypeNone {
						if config.Settings.Search.UseKiller {
							s.storeKiller(ply, m)
						}
						if config.Settings.Search.UseHistory {
							s.hist.Update(mover, m.From(), m.To(), depth)
						}
					}
					break
				}
			}
		}
	}

	if movesSearched == 0 {
		if inCheck || p.Rules().StalemateLoses {
			bestValue = -ValueCheckMate + Value(ply)
		} else {
			bestValue = ValueDraw
		}
	}

	if config.Settings.Search.UseTT && !s.stop {
		valueType := ValueTypeExact
		switch {
		case bestValue <= alphaOrig:
			valueType = ValueTypeUpperBound
		case bestValue >= beta:
			valueType = ValueTypeLowerBound
		}
		s.tt.Put(p.ZobristKey(), bestMove, int8(depth), valueToTT(bestValue, ply), valueType, bestValue)
	}

	return bestValue
}

// quiescence extends the search along captures (and, when in check, every
// legal reply) past the nominal horizon, so the searcher doesn't misjudge a
// position in the middle of a capture sequence. It never writes to the
// transposition table: its results are cheap to recompute and depth-tagging
// them meaningfully would require tracking the capture chain depth
// separately from the main search's depth.
func (s *Searcher) quiescence(ctx context.Context, p *position.Position, ply int, alpha, beta Value) Value {
	s.nodes++
	if s.nodes&nodeCheckMask == 0 && s.outOfTime(ctx) {
		return ValueNA
	}
	if ply >= MaxDepth {
		return s.eval.Evaluate(p)
	}

	inCheck := movegen.InCheck(p)
	best := Value(-ValueInf)

	if !inCheck {
		standPat := s.eval.Evaluate(p)
		best = standPat
		if config.Settings.Search.UseQSStandpat {
			if standPat >= beta {
				return standPat
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	var moves []Move
	if inCheck {
		moves = movegen.PseudoMoves(p)
	} else {
		moves = movegen.CaptureMoves(p)
	}
	scores := s.scoreMoves(p, moves, MoveNone, ply)
	ms := moveslice.MoveSlice(moves)
	ms.SortBy(scores)

	legalCount := 0
	for _, m := range moves {
		if !movegen.MakeMoveIfLegal(p, m) {
			continue
		}
		legalCount++

		value := -s.quiescence(ctx, p, ply+1, -beta, -alpha)
		p.UnmakeMove()

		if s.stop {
			return ValueNA
		}

		if value > best {
			best = value
			if value > alpha {
				alpha = value
				if alpha >= beta {
					break
				}
			}
		}
	}

	if inCheck && legalCount == 0 {
		return -ValueCheckMate + Value(ply)
	}

	return best
}

// scoreMoves assigns each move in moves an ordering score: the
// transposition-table move first, then captures by victim value minus
// attacker value, then the two killer moves (tied), then quiet moves by
// history score.
func (s *Searcher) scoreMoves(p *position.Position, moves []Move, ttMove Move, ply int) []int64 {
	scores := make([]int64, len(moves))
	mover := p.SideToMove()

	var killer1, killer2 Move
	if config.Settings.Search.UseKiller && ply < MaxDepth {
		killer1, killer2 = s.killers[ply][0], s.killers[ply][1]
	}

	for i, m := range moves {
		switch {
		case ttMove != MoveNone && m == ttMove:
			scores[i] = 1 << 40
		case m.CapturedType() != PieceTypeNone:
			var victimValue, attackerValue int64
			if victim := p.Registry().Get(m.CapturedType()); victim != nil {
				victimValue = int64(victim.Value)
			}
			if attackerID, _ := p.PieceAt(m.From()); attackerID != PieceTypeNone {
				if attacker := p.Registry().Get(attackerID); attacker != nil {
					attackerValue = int64(attacker.Value)
				}
			}
			scores[i] = int64(config.Settings.Search.CaptureBase) + victimValue - attackerValue
		case m == killer1:
			scores[i] = int64(config.Settings.Search.KillerMoveScore)
		case m == killer2:
			scores[i] = int64(config.Settings.Search.KillerMoveScore)
		case config.Settings.Search.UseHistory:
			scores[i] = s.hist.Score(mover, m.From(), m.To())
		}
	}
	return scores
}

// storeKiller records m as the most recent quiet move to cause a beta
// cutoff at ply, keeping the previous most-recent as the second slot.
func (s *Searcher) storeKiller(ply int, m Move) {
	if ply >= MaxDepth || s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// savePV records m as the best move at ply, followed by the PV already
// found one ply deeper.
func (s *Searcher) savePV(ply int, m Move) {
	s.pv[ply] = append(s.pv[ply][:0], m)
	if ply+1 < len(s.pv) {
		s.pv[ply] = append(s.pv[ply], s.pv[ply+1]...)
	}
}

func (s *Searcher) outOfTime(ctx context.Context) bool {
	if s.stop {
		return true
	}
	select {
	case <-ctx.Done():
		s.stop = true
	default:
	}
	return s.stop
}

// valueToTT rebases a checkmate score from "plies from this node" to
// "plies from the position actually stored", so a mate score found deep in
// one search remains correct when reused at a different ply by another.
func valueToTT(v Value, ply int) Value {
	if !v.IsCheckMateValue() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// valueFromTT is the inverse of valueToTT, applied when a stored value is
// read back at the current ply.
func valueFromTT(v Value, ply int) Value {
	if !v.IsCheckMateValue() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}
