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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStandardPerft validates the move generator against the orthodox
// chess node counts from https://www.chessprogramming.org/Perft_Results,
// starting from the declarative standardChessStart fixture rather than the
// reference engine's FEN-parsed StartFen - this engine has no FEN loader,
// so the known-good starting position is built from a Registry the same
// way any other ruleset would be.
func TestStandardPerft(t *testing.T) {
	var results = [5][4]uint64{
		// depth       Nodes    Captures    Checks
		{0, 1, 0, 0},
		{1, 20, 0, 0},
		{2, 400, 0, 0},
		{3, 8_902, 34, 12},
		{4, 197_281, 1_576, 469},
	}

	for _, r := range results {
		depth, nodes, captures, checks := int(r[0]), r[1], r[2], r[3]
		if depth == 0 {
			continue
		}
		pos := mustLoad(t, standardChessStart())
		var perft Perft
		got := perft.Run(pos, depth)
		assert.Equalf(t, nodes, got, "depth %d nodes", depth)
		assert.Equalf(t, captures, perft.Captures, "depth %d captures", depth)
		assert.Equalf(t, checks, perft.Checks, "depth %d checks", depth)
	}
}

// TestPerftDepthOneFromStart cross-checks the depth-1 leaf count against
// PseudoMoves directly, pinning down that every one of the 20 opening moves
// (16 pawn pushes, 4 knight jumps) survives MakeMoveIfLegal untouched -
// none of them can expose the mover's own leader to attack.
func TestPerftDepthOneFromStart(t *testing.T) {
	pos := mustLoad(t, standardChessStart())
	var perft Perft
	assert.Equal(t, uint64(20), perft.Run(pos, 1))
	assert.Equal(t, uint64(0), perft.Captures)
	assert.Equal(t, uint64(0), perft.Checks)
}
