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

// Package bitboard implements a 256-bit set over the 16x16 grid every
// Position is addressed over. The reference engine's types.Bitboard is a
// single uint64, one bit per one of the 64 squares of an 8x8 board; this
// widens the same idea to four uint64 lanes, one bit per one of the 256
// squares of a 16x16 board, following the same method-by-method shape
// (PushSquare/PopSquare/Has/ShiftBitboard/Lsb/PopCount/String) but unable to
// reuse the reference engine's single-word bit tricks (a shift can now
// carry bits across a lane boundary, which the reference engine never had
// to deal with).
package bitboard

import (
	"math/bits"
	"strings"

	. "github.com/tpeters/vareng/internal/types"
)

// lanes is the number of uint64 words that make up one Bitboard (256/64).
const lanes = 4

// squaresPerLane is how many board squares one lane covers (4 full ranks).
const squaresPerLane = 64

// Bitboard is a 256-bit set with one bit per square of the 16x16 grid.
// Lane i covers squares [64*i, 64*i+64).
type Bitboard [lanes]uint64

// BbZero is the empty bitboard.
var BbZero Bitboard

// laneAndBit splits a square into its lane index and in-lane bit position.
func laneAndBit(sq Square) (int, uint) {
	return int(sq) / squaresPerLane, uint(sq) % squaresPerLane
}

// FromSquare returns a bitboard with exactly one bit, at sq, set.
func FromSquare(sq Square) Bitboard {
	var b Bitboard
	if !sq.IsValid() {
		return b
	}
	lane, bit := laneAndBit(sq)
	b[lane] = 1 << bit
	return b
}

// FromSquares returns a bitboard with the given squares set.
func FromSquares(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b = b.Push(sq)
	}
	return b
}

// Push returns b with sq set.
func (b Bitboard) Push(sq Square) Bitboard {
	if !sq.IsValid() {
		return b
	}
	lane, bit := laneAndBit(sq)
	b[lane] |= 1 << bit
	return b
}

// Pop returns b with sq cleared.
func (b Bitboard) Pop(sq Square) Bitboard {
	if !sq.IsValid() {
		return b
	}
	lane, bit := laneAndBit(sq)
	b[lane] &^= 1 << bit
	return b
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	if !sq.IsValid() {
		return false
	}
	lane, bit := laneAndBit(sq)
	return b[lane]&(1<<bit) != 0
}

// And returns the bitwise AND (intersection) of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	var r Bitboard
	for i := 0; i < lanes; i++ {
		r[i] = b[i] & o[i]
	}
	return r
}

// Or returns the bitwise OR (union) of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	var r Bitboard
	for i := 0; i < lanes; i++ {
		r[i] = b[i] | o[i]
	}
	return r
}

// Xor returns the bitwise XOR of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	var r Bitboard
	for i := 0; i < lanes; i++ {
		r[i] = b[i] ^ o[i]
	}
	return r
}

// Not returns the bitwise complement of b (all 256 bits, board-masking is
// the caller's responsibility - see Position.BoardMask).
func (b Bitboard) Not() Bitboard {
	var r Bitboard
	for i := 0; i < lanes; i++ {
		r[i] = ^b[i]
	}
	return r
}

// AndNot returns b &^ o (b with every bit also set in o cleared).
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	var r Bitboard
	for i := 0; i < lanes; i++ {
		r[i] = b[i] &^ o[i]
	}
	return r
}

// IsEmpty reports whether no bit is set.
func (b Bitboard) IsEmpty() bool {
	return b == BbZero
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	n := 0
	for i := 0; i < lanes; i++ {
		n += bits.OnesCount64(b[i])
	}
	return n
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	for i := 0; i < lanes; i++ {
		if b[i] != 0 {
			return Square(i*squaresPerLane + bits.TrailingZeros64(b[i]))
		}
	}
	return SqNone
}

// Msb returns the highest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	for i := lanes - 1; i >= 0; i-- {
		if b[i] != 0 {
			return Square(i*squaresPerLane + 63 - bits.LeadingZeros64(b[i]))
		}
	}
	return SqNone
}

// PopLsb clears and returns the lowest-indexed set square. Returns SqNone
// without modifying *b if it is already empty.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b = b.Pop(sq)
	return sq
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// reapplying a board mask afterwards to erase bits that would otherwise
// wrap around a file edge - the same discipline the reference engine's
// ShiftBitboard uses, generalized to four lanes and an arbitrary
// direction delta instead of a switch over eight hardcoded shift amounts.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	shifted := shiftLanes(b, int(d))
	return shifted.And(fileWrapMask(d))
}

// shiftLanes shifts the 256-bit value logically by n bits (positive =
// toward higher squares), carrying bits across lane boundaries.
func shiftLanes(b Bitboard, n int) Bitboard {
	var r Bitboard
	if n == 0 {
		return b
	}
	if n > 0 {
		wordShift := n / 64
		bitShift := uint(n % 64)
		for i := lanes - 1; i >= 0; i-- {
			src := i - wordShift
			if src < 0 {
				continue
			}
			r[i] |= b[src] << bitShift
			if bitShift != 0 && src-1 >= 0 {
				r[i] |= b[src-1] >> (64 - bitShift)
			}
		}
		return r
	}
	n = -n
	wordShift := n / 64
	bitShift := uint(n % 64)
	for i := 0; i < lanes; i++ {
		src := i + wordShift
		if src >= lanes {
			continue
		}
		r[i] |= b[src] >> bitShift
		if bitShift != 0 && src+1 < lanes {
			r[i] |= b[src+1] << (64 - bitShift)
		}
	}
	return r
}

// fileWrapMask returns the mask that erases bits which shifting in
// direction d would have wrapped from one edge of the grid to the other.
func fileWrapMask(d Direction) Bitboard {
	switch d {
	case East, Northeast, Southeast:
		return NotFileAMask
	case West, Northwest, Southwest:
		return NotFilePMask
	default:
		return FullMask
	}
}

// String renders the bitboard as a 16x16 grid of '1'/'.' with rank 16 on
// top, the same top-down orientation the reference engine's StringBoard
// uses for its 8x8 grid.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(BoardDim - 1); ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f < File(BoardDim); f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
