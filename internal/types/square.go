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

package types

import (
	"fmt"

	"github.com/tpeters/vareng/internal/assert"
)

// Square is a linear index into the 16x16 grid every position is addressed
// over, regardless of the actual playing area configured for a game. Unlike
// the reference engine's 8x8-only Square (a uint8, 0-63), this widens to
// uint16 so that index 255 (p16) is representable and SqNone can sit one
// past it.
type Square uint16

// SqNone is the sentinel "no square" value, one past the last valid index.
const SqNone Square = BoardDim * BoardDim

// SquareOf returns the square for the given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(r)*BoardDim + Square(f)
}

// IsValid checks if sq is a valid square index (0..255).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file the square lies on.
func (sq Square) FileOf() File {
	return File(sq % BoardDim)
}

// RankOf returns the rank the square lies on.
func (sq Square) RankOf() Rank {
	return Rank(sq / BoardDim)
}

// To steps sq one square in direction d, returning SqNone if the result
// would wrap around the edge of the 16x16 grid or fall outside it. Whether
// the destination lies within the game's actually configured board is the
// caller's concern (checked against the BoardMask), not this method's.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	next := int(sq) + int(d)
	if next < 0 || next >= int(SqNone) {
		return SqNone
	}
	// reject wrap-around: a single step must never change file by more
	// than one.
	fileDist := int(sq.FileOf()) - int(Square(next).FileOf())
	if fileDist < -1 || fileDist > 1 {
		return SqNone
	}
	return Square(next)
}

// MakeSquare parses a square string like "a1" or "p16" into a Square. It
// panics in debug builds (via assert) if s is not a well-formed square
// string; callers on untrusted input should validate beforehand.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) >= 2 && len(s) <= 3, "invalid square string: %s", s)
	}
	fileChar := s[0]
	if fileChar < 'a' || fileChar > 'p' {
		return SqNone
	}
	f := File(fileChar - 'a')
	rankNum := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return SqNone
		}
		rankNum = rankNum*10 + int(c-'0')
	}
	if rankNum < 1 || rankNum > BoardDim {
		return SqNone
	}
	return SquareOf(f, Rank(rankNum-1))
}

// String returns the square in file+rank notation, e.g. "e4" or "a16".
// Returns "-" for SqNone or an otherwise invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
