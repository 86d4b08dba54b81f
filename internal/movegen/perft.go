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

package movegen

import (
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// Perft counts leaf nodes of the full game tree to a fixed depth, the
// standard move-generator correctness check: known node counts for known
// starting positions catch both under- and over-generation bugs that a
// single test position can't. Generalizes the reference engine's Perft
// (movegen/perft.go), dropping its FEN-driven entry point (this engine has
// no wire notation to parse) and on-demand-generation variant in favor of
// a single recursive walk over a Position the caller already built.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Run drives perft from pos to the given depth, mutating and restoring pos
// via MakeMove/UnmakeMove rather than cloning it.
func (p *Perft) Run(pos *position.Position, depth int) uint64 {
	*p = Perft{}
	if depth <= 0 {
		depth = 1
	}
	p.Nodes = p.walk(pos, depth)
	return p.Nodes
}

func (p *Perft) walk(pos *position.Position, depth int) uint64 {
	var total uint64
	for _, m := range PseudoMoves(pos) {
		if depth > 1 {
			if MakeMoveIfLegal(pos, m) {
				total += p.walk(pos, depth-1)
				pos.UnmakeMove()
			}
			continue
		}
		wasCapture := m.MoveType().IsCapture()
		wasCastle := m.MoveType() == CastleKingside || m.MoveType() == CastleQueenside
		wasPromotion := m.MoveType().IsPromotion()
		if MakeMoveIfLegal(pos, m) {
			total++
			if wasCapture {
				p.Captures++
			}
			if wasCastle {
				p.Castles++
			}
			if wasPromotion {
				p.Promotions++
			}
			if InCheck(pos) {
				p.Checks++
			}
			pos.UnmakeMove()
		}
	}
	return total
}
