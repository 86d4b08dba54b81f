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
	. "github.com/tpeters/vareng/internal/types"
)

// FullMask has every one of the 256 addressable bits set. The reference
// engine never needs this (its Bitboard already covers exactly the 64
// squares of an 8x8 board); here the full 16x16 address space can exceed
// the actually configured board, so a "no mask" identity is needed.
var FullMask Bitboard

// FileMask[f] has every square of file f set, across all 16 ranks.
var FileMask [BoardDim]Bitboard

// RankMask[r] has every square of rank r set, across all 16 files.
var RankMask [BoardDim]Bitboard

// NotFileAMask/NotFilePMask are FullMask with file a / file p cleared,
// used by ShiftBitboard to erase bits that would otherwise wrap around the
// left/right edge of the grid - the 16-wide generalization of the
// reference engine's FileAMask/FileHMask edge masks.
var NotFileAMask Bitboard
var NotFilePMask Bitboard

func init() {
	for lane := 0; lane < lanes; lane++ {
		FullMask[lane] = ^uint64(0)
	}
	for f := FileA; f < File(BoardDim); f++ {
		for r := Rank1; r < Rank(BoardDim); r++ {
			FileMask[f] = FileMask[f].Push(SquareOf(f, r))
			RankMask[r] = RankMask[r].Push(SquareOf(f, r))
		}
	}
	NotFileAMask = FullMask.AndNot(FileMask[FileA])
	NotFilePMask = FullMask.AndNot(FileMask[File(BoardDim-1)])
}

// BoardMask builds the mask of legal squares for a board of the given
// width and height (both <= BoardDim), anchored at file a / rank 1. Every
// Position operation that could otherwise see bits belonging to the unused
// part of the 16x16 address space ANDs its result with this mask, mirroring
// the reference engine's file-mask-after-shift discipline but applied once
// per loaded board instead of being baked into fixed 8-wide constants.
func BoardMask(width, height int) Bitboard {
	var m Bitboard
	for f := 0; f < width && f < BoardDim; f++ {
		for r := 0; r < height && r < BoardDim; r++ {
			m = m.Push(SquareOf(File(f), Rank(r)))
		}
	}
	return m
}
