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

package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tpeters/vareng/internal/types"
)

func TestPushPopHas(t *testing.T) {
	b := BbZero
	b = b.Push(MakeSquare("e4"))
	assert.True(t, b.Has(MakeSquare("e4")))
	assert.Equal(t, 1, b.PopCount())
	b = b.Pop(MakeSquare("e4"))
	assert.True(t, b.IsEmpty())
}

func TestLaneBoundaryCrossing(t *testing.T) {
	// rank 4 (index 3) is the last rank of lane 0; rank 5 (index 4) is the
	// first rank of lane 1 - a bit set on e4 and shifted North must land
	// exactly on e5, crossing the 64-bit lane boundary cleanly.
	e4 := MakeSquare("e4")
	e5 := MakeSquare("e5")
	b := FromSquare(e4)
	shifted := ShiftBitboard(b, North)
	assert.True(t, shifted.Has(e5))
	assert.Equal(t, 1, shifted.PopCount())
}

func TestShiftEdgeDoesNotWrap(t *testing.T) {
	p1 := MakeSquare("p1")
	b := FromSquare(p1)
	shifted := ShiftBitboard(b, East)
	assert.True(t, shifted.IsEmpty())

	a16 := MakeSquare("a16")
	b2 := FromSquare(a16)
	assert.True(t, ShiftBitboard(b2, West).IsEmpty())
	assert.True(t, ShiftBitboard(b2, North).IsEmpty())
}

func TestLsbMsbPopLsb(t *testing.T) {
	b := FromSquares(MakeSquare("a1"), MakeSquare("h8"), MakeSquare("p16"))
	assert.Equal(t, MakeSquare("a1"), b.Lsb())
	assert.Equal(t, MakeSquare("p16"), b.Msb())
	first := b.PopLsb()
	assert.Equal(t, MakeSquare("a1"), first)
	assert.Equal(t, 2, b.PopCount())
}

func TestBoardMask(t *testing.T) {
	m8 := BoardMask(8, 8)
	assert.True(t, m8.Has(MakeSquare("h8")))
	assert.False(t, m8.Has(MakeSquare("i1")))
	assert.False(t, m8.Has(MakeSquare("a9")))

	m16 := BoardMask(16, 16)
	assert.Equal(t, FullMask, m16)
}

func TestAndOrXorNot(t *testing.T) {
	a := FromSquares(MakeSquare("a1"), MakeSquare("b2"))
	b := FromSquares(MakeSquare("b2"), MakeSquare("c3"))
	assert.True(t, a.And(b).Has(MakeSquare("b2")))
	assert.Equal(t, 1, a.And(b).PopCount())
	assert.Equal(t, 3, a.Or(b).PopCount())
	assert.Equal(t, 2, a.Xor(b).PopCount())
	assert.False(t, a.AndNot(b).Has(MakeSquare("b2")))
}
