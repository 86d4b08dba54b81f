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

// Package eval scores a Position in centipawns from the side-to-move's
// point of view. The reference engine's evaluator (internal/evaluator)
// leans on fixed piece-square tables and pawn-structure heuristics that
// only make sense for a fixed 6-piece 8x8 board; a declarative ruleset has
// no such fixed tables to draw on, so this evaluator keeps the teacher's
// overall shape - init once per call, sum independently-toggleable terms,
// flip sign for the side to move at the end - while every term is computed
// directly off whatever the loaded Registry declares, not off compiled-in
// per-piece-type logic.
package eval

import (
	"github.com/tpeters/vareng/internal/config"
	"github.com/tpeters/vareng/internal/movegen"
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// Evaluator scores positions, reusing the same instance across a search so
// its small scratch state isn't reallocated at every node.
type Evaluator struct {
	pos *position.Position
	us  Color
	them Color
}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores pos from the side-to-move's perspective.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	e.pos = pos
	e.us = pos.SideToMove()
	e.them = e.us.Flip()

	var score Value

	if config.Settings.Eval.UseMaterial {
		score += e.material(e.us) - e.material(e.them)
	}

	score += Value(config.Settings.Eval.Tempo)

	if config.Settings.Eval.UseMobility {
		score += Value(config.Settings.Eval.MobilityBonus) * Value(e.mobility(e.us)-e.mobility(e.them))
	}

	endgame := e.nonLeaderMaterial(e.us)+e.nonLeaderMaterial(e.them) < Value(config.Settings.Eval.EndgameThreshold)

	if config.Settings.Eval.UseCastlingBonus && !endgame {
		score += Value(config.Settings.Eval.CastlingBonus) * Value(boolToInt(pos.HasCastled(e.us))-boolToInt(pos.HasCastled(e.them)))
	}

	if config.Settings.Eval.UseLeaderSafety {
		score += e.leaderSafety(e.us) - e.leaderSafety(e.them)
	}

	return score
}

// material sums value*count over every declared piece type color c holds,
// multiplying a leader piece's declared Value by LeaderValueMultiplier so
// that losing it dominates the score well before the searcher's own
// terminal-node check fires - the generalization of the reference engine's
// PieceType.ValueOf() table plus its separate, hardcoded king safety
// scoring, folded into one per-piece-type loop driven by the Registry.
func (e *Evaluator) material(c Color) Value {
	var total Value
	for _, pd := range e.pos.Registry().All() {
		count := Value(e.pos.Pieces(c).Bb(pd.ID).PopCount())
		if count == 0 {
			continue
		}
		value := pd.Value
		if pd.IsLeader {
			value *= Value(config.Settings.Eval.LeaderValueMultiplier)
		}
		total += count * value
	}
	return total
}

// nonLeaderMaterial sums value*count over every declared non-leader piece
// type, used both for the endgame-phase flag and CanDoNullMove.
func (e *Evaluator) nonLeaderMaterial(c Color) Value {
	var total Value
	for _, pd := range e.pos.Registry().All() {
		if pd.IsLeader {
			continue
		}
		total += Value(e.pos.Pieces(c).Bb(pd.ID).PopCount()) * pd.Value
	}
	return total
}

// mobility counts color c's pseudo-legal moves - the reference engine's
// attacks.Attacks.Mobility field, computed here directly from the move
// generator instead of a precomputed attack-set cache, since the
// generalized move generator has no equivalent cache to draw on. Scoring
// the side not to move requires a null move to flip whose turn it is,
// immediately undone so the position is left exactly as found.
func (e *Evaluator) mobility(c Color) int {
	if e.pos.SideToMove() == c {
		return len(movegen.PseudoMoves(e.pos))
	}
	e.pos.MakeNullMove()
	n := len(movegen.PseudoMoves(e.pos))
	e.pos.UnmakeNullMove()
	return n
}

// leaderSafety scores how exposed color c's leader currently is: a malus
// if it's under attack right now, a bonus if it has already castled (a
// castled leader is usually tucked behind a shield of its own pieces).
// The reference engine's evalKing instead inspects a static pawn-shield
// bitboard in front of the king's rank; that has no equivalent once a
// ruleset's leader and its shielding pieces aren't declared, so this
// leans on the one structural fact every ruleset does expose: whether the
// leader is currently attacked.
func (e *Evaluator) leaderSafety(c Color) Value {
	leaderSq := e.pos.LeaderSquare(c)
	if leaderSq == SqNone {
		return Value(config.Settings.Eval.CheckmateBase)
	}
	var score Value
	if movegen.IsSquareAttacked(e.pos, leaderSq, c.Flip()) {
		score -= Value(config.Settings.Eval.LeaderRingMalus)
	}
	if e.pos.HasCastled(c) {
		score += Value(config.Settings.Eval.LeaderShieldBonus)
	}
	return score
}

// CanDoNullMove reports whether the side to move has enough non-leader
// material left to safely try a null-move cut, guarding against zugzwang
// positions (endgames with only a leader and a handful of pawns) where
// skipping a move can give an illegally optimistic score.
func CanDoNullMove(pos *position.Position) bool {
	e := &Evaluator{pos: pos}
	return e.nonLeaderMaterial(pos.SideToMove()) > Value(config.Settings.Search.NullMoveThreshold)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
