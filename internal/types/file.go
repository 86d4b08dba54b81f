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

// BoardDim is the fixed addressing width of the grid every Square, File and
// Rank is defined over. The spec caps playable boards at 16x16; boards
// smaller than that are represented by a BoardMask that narrows the full
// 16x16 address space rather than by a narrower File/Rank type.
const BoardDim = 16

// File represents a board file, a - p.
type File uint8

// Files a through p, plus the FileNone sentinel.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileI
	FileJ
	FileK
	FileL
	FileM
	FileN
	FileO
	FileP
	FileNone
)

// IsValid checks if f represents a valid file on the full 16-wide grid.
func (f File) IsValid() bool {
	return f < FileNone
}

const fileLabels string = "abcdefghijklmnop"

// String returns a string letter for the file (e.g. a - p).
// If f is not a valid file returns "-".
func (f File) String() string {
	if f >= FileNone {
		return "-"
	}
	return string(fileLabels[f])
}
