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

// Package movegen produces pseudo-legal and legal moves for a Position.
// The reference engine's movegen.go hardcodes per-piece-type generation
// (generatePawnMoves/generateKingMoves/generateCastling plus a generic
// generateMoves loop over Knight..Queen with precomputed attack tables);
// here the same shape - enumerate attack targets for captures, translate
// targets for quiet moves, then the special pawn-like and castling cases -
// is generalized to loop over whatever piece types a ruleset's Registry
// declares, using their declared MovePatterns instead of a fixed type
// switch.
package movegen

import (
	"github.com/tpeters/vareng/internal/attack"
	"github.com/tpeters/vareng/internal/bitboard"
	"github.com/tpeters/vareng/internal/piece"
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// GenMode selects which subsets of pseudo-legal moves GeneratePseudoLegalMoves
// produces, mirroring the reference engine's GenCap/GenNonCap/GenAll bitflags.
type GenMode uint8

const (
	GenCap GenMode = 1 << iota
	GenNonCap
	GenAll = GenCap | GenNonCap
)

// Generator generates moves for a Position, reusing an internal buffer
// across calls the way the reference engine's Movegen struct reuses its
// pseudoLegalMoves slice to avoid reallocating on every search node.
type Generator struct {
	buf []Move
}

// NewGenerator returns a Generator with a small pre-sized move buffer.
func NewGenerator() *Generator {
	return &Generator{buf: make([]Move, 0, 64)}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move of the given
// kind(s) for the side to move, applying the ruleset's CapturingIsForced
// tie-break rule (dropping all non-captures when at least one capture was
// generated).
func (g *Generator) GeneratePseudoLegalMoves(pos *position.Position, mode GenMode) []Move {
	g.buf = g.buf[:0]

	color := pos.SideToMove()
	occ := pos.Occupied()
	enemy := pos.Pieces(color.Flip()).All
	empty := pos.BoardMask().AndNot(occ)

	for _, pd := range pos.Registry().All() {
		bb := pos.Pieces(color).Bb(pd.ID)
		for !bb.IsEmpty() {
			from := bb.PopLsb()
			if mode&GenCap != 0 {
				g.genAttacks(pos, pd, color, from, occ, enemy)
			}
			if mode&GenNonCap != 0 {
				g.genTranslates(pd, color, from, occ, empty)
				g.genDoubleJump(pd, color, from, empty)
			}
		}
		if pd.IsLeader && mode&GenNonCap != 0 {
			g.genCastling(pos, color, pos.LeaderSquare(color))
		}
	}

	if mode&GenCap != 0 && pos.Rules().CapturingIsForced {
		g.filterToCapturesIfAnyExist()
	}

	out := make([]Move, len(g.buf))
	copy(out, g.buf)
	return out
}

func (g *Generator) filterToCapturesIfAnyExist() {
	anyCapture := false
	for _, m := range g.buf {
		if m.MoveType().IsCapture() {
			anyCapture = true
			break
		}
	}
	if !anyCapture {
		return
	}
	filtered := g.buf[:0]
	for _, m := range g.buf {
		if m.MoveType().IsCapture() {
			filtered = append(filtered, m)
		}
	}
	g.buf = filtered
}

// genAttacks emits capturing moves for the piece at from, including an
// en-passant-style double-jump capture when the piece can reach the
// position's EpSquare.
func (g *Generator) genAttacks(pos *position.Position, pd *piece.PieceDefinition, color Color, from Square, occ, enemy bitboard.Bitboard) {
	reach := reachableSquares(pd.AttackPattern(color), from, occ)

	captures := reach.And(enemy)
	for !captures.IsEmpty() {
		to := captures.PopLsb()
		g.emitCapture(pos, pd, color, from, to, to)
	}

	if ep := pos.EpSquare(); ep != SqNone && reach.Has(ep) {
		target := pos.EpVictim()
		if capturedID, capturedColor := pos.PieceAt(target); capturedID != PieceTypeNone && capturedColor == color.Flip() {
			g.buf = append(g.buf, CreateCaptureMove(from, ep, target, Capture, PieceTypeNone, capturedID))
		}
	}
}

func (g *Generator) emitCapture(pos *position.Position, pd *piece.PieceDefinition, color Color, from, to, target Square) {
	capturedID, _ := pos.PieceAt(target)
	if containsSquare(pd.PromotionSquares[color], to) {
		for _, promo := range pd.PromotionTargets[color] {
			g.buf = append(g.buf, CreateCaptureMove(from, to, target, PromotionCapture, promo, capturedID))
		}
		return
	}
	g.buf = append(g.buf, CreateCaptureMove(from, to, target, Capture, PieceTypeNone, capturedID))
}

// genTranslates emits quiet (non-capturing) moves for the piece at from.
func (g *Generator) genTranslates(pd *piece.PieceDefinition, color Color, from Square, occ, empty bitboard.Bitboard) {
	reach := reachableSquares(pd.TranslatePattern(color), from, occ).And(empty)
	for !reach.IsEmpty() {
		to := reach.PopLsb()
		g.emitQuiet(pd, color, from, to)
	}
}

func (g *Generator) emitQuiet(pd *piece.PieceDefinition, color Color, from, to Square) {
	if containsSquare(pd.PromotionSquares[color], to) {
		for _, promo := range pd.PromotionTargets[color] {
			g.buf = append(g.buf, CreateCaptureMove(from, to, to, Promotion, promo, PieceTypeNone))
		}
		return
	}
	g.buf = append(g.buf, CreateMove(from, to, Quiet))
}

// genDoubleJump emits a two-square non-capturing move from a declared
// double-jump origin, provided the intermediate square - the one that
// becomes the position's EpSquare - and the destination are both empty.
func (g *Generator) genDoubleJump(pd *piece.PieceDefinition, color Color, from Square, empty bitboard.Bitboard) {
	if !containsSquare(pd.DoubleJumpOrigins[color], from) {
		return
	}
	for _, d := range pd.TranslatePattern(color).JumpDeltas {
		mid := d.Apply(from)
		if mid == SqNone || !empty.Has(mid) {
			continue
		}
		to := d.Apply(mid)
		if to == SqNone || !empty.Has(to) {
			continue
		}
		g.buf = append(g.buf, CreateMove(from, to, DoubleJump))
	}
}

// genCastling emits a castling move for each side whose rights are still
// intact, whose king/rook path is clear, and whose leader does not pass
// through or land on an attacked square. Unlike the reference engine,
// which hardcodes e1/g1/f1/h1-style squares, the rook's destination file
// and the leader's transit squares are derived from the loaded
// RookHomeSquare and the file-sign arithmetic Position itself uses for
// MakeMove/UnmakeMove.
func (g *Generator) genCastling(pos *position.Position, color Color, from Square) {
	if from == SqNone {
		return
	}
	occ := pos.Occupied()
	for side := 0; side < 2; side++ {
		if !pos.CastlingRights().Has(ForSide(color, side)) {
			continue
		}
		rookSq := pos.RookHomeSquare(color, side)
		if rookSq == SqNone {
			continue
		}
		dir := sign(int(rookSq.FileOf()) - int(from.FileOf()))
		if dir == 0 {
			continue
		}
		leaderTo := SquareOf(File(int(from.FileOf())+2*dir), from.RankOf())

		clear := true
		for _, sq := range squaresBetweenOnRank(from, rookSq) {
			if occ.Has(sq) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		opponent := color.Flip()
		safe := !IsSquareAttacked(pos, from, opponent) && !IsSquareAttacked(pos, leaderTo, opponent)
		if safe {
			for _, sq := range squaresBetweenOnRank(from, leaderTo) {
				if IsSquareAttacked(pos, sq, opponent) {
					safe = false
					break
				}
			}
		}
		if !safe {
			continue
		}

		mt := CastleKingside
		if side == 1 {
			mt = CastleQueenside
		}
		g.buf = append(g.buf, CreateMove(from, leaderTo, mt))
	}
}

// reachableSquares returns every square a piece with the given movement
// pattern could step to from, given occupancy occ, ignoring whether the
// destination is friendly, enemy or empty - callers intersect with the
// relevant occupancy bitboard afterwards.
func reachableSquares(mp piece.MovePattern, from Square, occ bitboard.Bitboard) bitboard.Bitboard {
	var reach bitboard.Bitboard
	if len(mp.Directions) > 0 {
		reach = reach.Or(attack.SlidingMoves(from, occ, mp.Directions))
	}
	for _, d := range mp.JumpDeltas {
		if to := d.Apply(from); to != SqNone {
			reach = reach.Push(to)
		}
	}
	return reach
}

// IsSquareAttacked reports whether sq is attacked by any piece of byColor.
// For each declared piece type it anchors at sq and traces the type's
// attack pattern in the reverse directions/deltas, then intersects with
// that type's actual occupancy - the same reverse-lookup trick the
// reference engine's attack-table lookups use (GetPseudoAttacks indexed by
// the target square), generalized from a fixed six-type switch to
// whatever the Registry declares.
func IsSquareAttacked(pos *position.Position, sq Square, byColor Color) bool {
	occ := pos.Occupied()
	for _, pd := range pos.Registry().All() {
		pattern := pd.AttackPattern(byColor)
		if pattern.IsEmpty() {
			continue
		}
		attackers := attackersOfSquareForPattern(sq, occ, pattern)
		if !attackers.And(pos.Pieces(byColor).Bb(pd.ID)).IsEmpty() {
			return true
		}
	}
	return false
}

func attackersOfSquareForPattern(sq Square, occ bitboard.Bitboard, pattern piece.MovePattern) bitboard.Bitboard {
	var result bitboard.Bitboard
	if len(pattern.Directions) > 0 {
		reversed := make([]Direction, len(pattern.Directions))
		for i, d := range pattern.Directions {
			reversed[i] = -d
		}
		result = result.Or(attack.SlidingMoves(sq, occ, reversed))
	}
	for _, d := range pattern.JumpDeltas {
		if s := (piece.Offset{DFile: -d.DFile, DRank: -d.DRank}).Apply(sq); s != SqNone {
			result = result.Push(s)
		}
	}
	return result
}

// InCheck reports whether the side to move's leader is currently attacked.
// A side whose leader has already been captured is not "in check" by this
// definition - that terminal condition is the searcher's concern, not the
// generator's.
func InCheck(pos *position.Position) bool {
	color := pos.SideToMove()
	leaderSq := pos.LeaderSquare(color)
	if leaderSq == SqNone {
		return false
	}
	return IsSquareAttacked(pos, leaderSq, color.Flip())
}

// PseudoMoves returns every pseudo-legal move (captures and quiet moves)
// for the side to move.
func PseudoMoves(pos *position.Position) []Move {
	return NewGenerator().GeneratePseudoLegalMoves(pos, GenAll)
}

// CaptureMoves returns every pseudo-legal capturing move for the side to
// move, for use by quiescence search.
func CaptureMoves(pos *position.Position) []Move {
	return NewGenerator().GeneratePseudoLegalMoves(pos, GenCap)
}

// MakeMoveIfLegal commits m to pos and reports whether it was legal: the
// mover's leader must not be left attacked afterward, and (when the
// ruleset's CheckIsForbidden rule is set) the move must not itself give
// check. An illegal move is unmade before returning false, leaving pos
// unchanged either way from the caller's perspective.
func MakeMoveIfLegal(pos *position.Position, m Move) bool {
	mover := pos.SideToMove()
	pos.MakeMove(m)

	leaderSq := pos.LeaderSquare(mover)
	illegal := leaderSq != SqNone && IsSquareAttacked(pos, leaderSq, mover.Flip())
	if !illegal && pos.Rules().CheckIsForbidden {
		illegal = InCheck(pos)
	}
	if illegal {
		pos.UnmakeMove()
		return false
	}
	return true
}

// LegalMoves returns every legal move for the side to move: every
// pseudo-legal move that survives MakeMoveIfLegal.
func LegalMoves(pos *position.Position) []Move {
	pseudo := PseudoMoves(pos)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if MakeMoveIfLegal(pos, m) {
			legal = append(legal, m)
			pos.UnmakeMove()
		}
	}
	return legal
}

// CountLegalMoves returns len(LegalMoves(pos)) without retaining the move
// list itself - used by the searcher to detect checkmate/stalemate.
func CountLegalMoves(pos *position.Position) int {
	return len(LegalMoves(pos))
}

// IsWinningMove reports whether m moves a piece onto one of its declared
// WinSquares for the mover's color (e.g. a king-of-the-hill center square
// or a racing variant's goal rank), per the ruleset's WinSquares tie-break
// rule.
func IsWinningMove(pos *position.Position, m Move) bool {
	id, color := pos.PieceAt(m.From())
	pd := pos.Registry().Get(id)
	if pd == nil {
		return false
	}
	return containsSquare(pd.WinSquares[color], m.To())
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// squaresBetweenOnRank returns the squares strictly between a and b along
// their shared rank, in ascending file order. Both squares must be on the
// same rank; castling is the only caller and always satisfies that.
func squaresBetweenOnRank(a, b Square) []Square {
	rank := a.RankOf()
	fa, fb := int(a.FileOf()), int(b.FileOf())
	if fa > fb {
		fa, fb = fb, fa
	}
	var out []Square
	for f := fa + 1; f < fb; f++ {
		out = append(out, SquareOf(File(f), rank))
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
