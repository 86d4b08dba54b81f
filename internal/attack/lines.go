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

package attack

import (
	"github.com/tpeters/vareng/internal/bitboard"
	. "github.com/tpeters/vareng/internal/types"
)

// family identifies one of the four line directions a slider can move
// along. Each line's position index along the 16-cell line happens to
// equal either the square's file or its rank, so no separate index table
// is needed - the reference engine's rotated-bitboard helpers instead
// permute whole boards to make this true; here it falls out for free
// because every line family has exactly 16 cells by construction.
type family int

const (
	familyRank family = iota
	familyFile
	familyDiagUp   // "/" - constant rank-file
	familyDiagDown // "\" - constant rank+file
	familyLength
)

// MaskHandler holds, per square, the squares lying along each of the four
// line families (SqNone where the 16-wide line runs off the 16x16 grid,
// which only happens for the two diagonal families near the corners), the
// square's position index within each line, and the upper/lower half-line
// bitmasks used to restrict a line attack to squares on one particular
// side of the slider. This is the explicit gather/scatter replacement for
// the reference engine's RotateL90/RotateR45/RotateL45 bit-rotation
// tricks, which only work for an 8-wide board.
type MaskHandler struct {
	lineSquares [familyLength][BoardDim*BoardDim][BoardDim]Square
	position    [familyLength][BoardDim * BoardDim]int
	upperMask   [BoardDim]uint16
	lowerMask   [BoardDim]uint16
}

// Masks is the single package-wide MaskHandler instance, built once at
// init alongside the line-attack table.
var Masks MaskHandler

func init() {
	for p := 0; p < BoardDim; p++ {
		var upper, lower uint16
		for i := p + 1; i < BoardDim; i++ {
			upper |= 1 << uint(i)
		}
		for i := 0; i < p; i++ {
			lower |= 1 << uint(i)
		}
		Masks.upperMask[p] = upper
		Masks.lowerMask[p] = lower
	}

	for f := 0; f < BoardDim; f++ {
		for r := 0; r < BoardDim; r++ {
			sq := int(SquareOf(File(f), Rank(r)))

			for i := 0; i < BoardDim; i++ {
				Masks.lineSquares[familyRank][sq][i] = SquareOf(File(i), Rank(r))
				Masks.lineSquares[familyFile][sq][i] = SquareOf(File(f), Rank(i))
			}
			Masks.position[familyRank][sq] = f
			Masks.position[familyFile][sq] = r

			// diagUp: constant k = r - f. Cell at file i has rank i+k.
			k := r - f
			for i := 0; i < BoardDim; i++ {
				ri := i + k
				if ri < 0 || ri >= BoardDim {
					Masks.lineSquares[familyDiagUp][sq][i] = SqNone
					continue
				}
				Masks.lineSquares[familyDiagUp][sq][i] = SquareOf(File(i), Rank(ri))
			}
			Masks.position[familyDiagUp][sq] = f

			// diagDown: constant k = r + f. Cell at file i has rank k-i.
			k = r + f
			for i := 0; i < BoardDim; i++ {
				ri := k - i
				if ri < 0 || ri >= BoardDim {
					Masks.lineSquares[familyDiagDown][sq][i] = SqNone
					continue
				}
				Masks.lineSquares[familyDiagDown][sq][i] = SquareOf(File(i), Rank(ri))
			}
			Masks.position[familyDiagDown][sq] = f
		}
	}
}

// gather builds the 16-bit local occupancy for the given line: bit i is
// set when the line runs off the grid at position i (treated as a
// permanent blocker, since the ray cannot continue past the grid edge) or
// when occ has the corresponding square set.
func gather(line *[BoardDim]Square, occ bitboard.Bitboard) uint16 {
	var occ16 uint16
	for i, sq := range line {
		if sq == SqNone || occ.Has(sq) {
			occ16 |= 1 << uint(i)
		}
	}
	return occ16
}

// scatter maps a 16-bit local attack pattern back onto the board using the
// given line, skipping off-grid slots.
func scatter(line *[BoardDim]Square, local uint16) bitboard.Bitboard {
	var b bitboard.Bitboard
	for i := 0; i < BoardDim; i++ {
		if local&(1<<uint(i)) == 0 {
			continue
		}
		sq := line[i]
		if sq == SqNone {
			continue
		}
		b = b.Push(sq)
	}
	return b
}
