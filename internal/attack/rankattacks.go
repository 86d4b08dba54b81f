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

// Package attack precomputes sliding-piece attack tables for the 16x16
// grid. The reference engine (internal/types/bitboard.go) answers sliding
// queries with Stockfish-style magic bitboards (GetAttacksBb, bishopMagics/
// rookMagics) plus a set of rotated-bitboard helpers (RotateL90/RotateR45/
// RotateL45) it otherwise deprecates in favor of the magics. Neither
// generalizes to a 16-wide board: magic numbers are found by search for a
// fixed 64-bit occupancy domain, and the rotation tricks only work because
// an 8x8 board's diagonals happen to fit back into a single 64-bit word
// after a bit-permutation. This package instead builds the "first rank"
// occluded-fill table the reference engine's own GetMovesOnRank describes
// as the historically-first technique (the one GetAttacksBb replaced), and
// generalizes it from an 8-wide to a 16-wide line, then reuses that single
// table for files and both diagonals via explicit gather/scatter masks
// instead of bit rotation.
package attack

import (
	. "github.com/tpeters/vareng/internal/types"
)

// lineAttack[sInLine][occ16] is the 16-bit attack pattern (bit i set means
// "line position i is attacked") for a slider at line position sInLine
// given the 16-bit occupancy occ16 of blocking pieces elsewhere on the
// line. Built once at init by brute-force ray walking - 16 * 65536 entries
// of 16 bits, matching the size the first-rank trick is named for.
var lineAttack [BoardDim][1 << BoardDim]uint16

func init() {
	for s := 0; s < BoardDim; s++ {
		for occ := 0; occ < (1 << BoardDim); occ++ {
			lineAttack[s][occ] = computeLineAttack(s, uint16(occ))
		}
	}
}

// computeLineAttack walks outward from position s in both directions of a
// 16-cell line, stopping after (and including) the first blocker found in
// occ16, exactly the occluded-fill construction the reference engine's
// first-rank-attack comment describes for an 8-cell line.
func computeLineAttack(s int, occ16 uint16) uint16 {
	var attacks uint16
	for i := s + 1; i < BoardDim; i++ {
		attacks |= 1 << uint(i)
		if occ16&(1<<uint(i)) != 0 {
			break
		}
	}
	for i := s - 1; i >= 0; i-- {
		attacks |= 1 << uint(i)
		if occ16&(1<<uint(i)) != 0 {
			break
		}
	}
	return attacks
}
