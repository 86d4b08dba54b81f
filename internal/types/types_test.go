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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.True(t, White.IsValid())
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestFileRankBounds(t *testing.T) {
	assert.True(t, FileA.IsValid())
	assert.True(t, FileP.IsValid())
	assert.False(t, FileNone.IsValid())
	assert.Equal(t, "a", FileA.String())
	assert.Equal(t, "p", FileP.String())

	assert.True(t, Rank1.IsValid())
	assert.True(t, Rank16.IsValid())
	assert.False(t, RankNone.IsValid())
	assert.Equal(t, "1", Rank1.String())
	assert.Equal(t, "16", Rank16.String())
}

func TestSquareRoundTrip(t *testing.T) {
	for f := FileA; f <= FileP; f++ {
		for r := Rank1; r <= Rank16; r++ {
			sq := SquareOf(f, r)
			assert.True(t, sq.IsValid())
			assert.Equal(t, f, sq.FileOf())
			assert.Equal(t, r, sq.RankOf())
		}
	}
	assert.Equal(t, SqNone, Square(256))
	assert.False(t, SqNone.IsValid())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SquareOf(FileA, Rank1), MakeSquare("a1"))
	assert.Equal(t, SquareOf(FileE, Rank4), MakeSquare("e4"))
	assert.Equal(t, SquareOf(FileP, Rank16), MakeSquare("p16"))
	assert.Equal(t, "e4", MakeSquare("e4").String())
}

func TestSquareTo(t *testing.T) {
	e4 := MakeSquare("e4")
	assert.Equal(t, MakeSquare("e5"), e4.To(North))
	assert.Equal(t, MakeSquare("e3"), e4.To(South))
	assert.Equal(t, MakeSquare("f4"), e4.To(East))
	assert.Equal(t, MakeSquare("d4"), e4.To(West))

	// stepping east off the h-file edge (well, p-file edge) must not wrap
	// to the next rank's a-file.
	p1 := MakeSquare("p1")
	assert.Equal(t, SqNone, p1.To(East))
	a1 := MakeSquare("a1")
	assert.Equal(t, SqNone, a1.To(West))
	assert.Equal(t, SqNone, a1.To(South))
}

func TestValueSentinelsAndMate(t *testing.T) {
	assert.True(t, ValueZero.IsValid())
	assert.True(t, ValueMax.IsValid())
	assert.True(t, ValueMin.IsValid())
	assert.True(t, ValueNA.IsValid())
	assert.True(t, ValueCheckMate.IsCheckMateValue())

	mateIn3 := ValueCheckMate - 3
	assert.True(t, mateIn3.IsCheckMateValue())
	assert.Contains(t, mateIn3.String(), "mate")

	cp := Value(150)
	assert.False(t, cp.IsCheckMateValue())
	assert.Equal(t, "cp 150", cp.String())
}

func TestMoveEncoding(t *testing.T) {
	from := MakeSquare("e2")
	to := MakeSquare("e4")
	m := CreateMove(from, to, DoubleJump)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, DoubleJump, m.MoveType())
	assert.True(t, m.IsValid())

	capFrom := MakeSquare("d4")
	capTo := MakeSquare("e5")
	cm := CreateCaptureMove(capFrom, capTo, capTo, Capture, PieceTypeNone, PieceTypeID(5))
	assert.Equal(t, PieceTypeID(5), cm.CapturedType())
	assert.True(t, cm.MoveType().IsCapture())

	nm := CreateNullMove()
	assert.True(t, nm.IsValid())
	assert.Equal(t, Null, nm.MoveType())

	assert.False(t, MoveNone.IsValid())
}

func TestPieceTypeID(t *testing.T) {
	assert.True(t, PieceTypeNone.IsValid())
	assert.True(t, PieceTypeID(MaxPieceTypes).IsValid())
}
