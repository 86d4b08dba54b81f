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

// Package history holds the move-ordering history table the searcher
// updates on every beta cutoff caused by a quiet move.
package history

import (
	. "github.com/tpeters/vareng/internal/types"
)

// sqLength is the number of addressable squares on the largest supported
// board (16x16) - the reference engine's [2][64][64]int64 widened from a
// fixed 64-square board to this engine's variable, up-to-256-square one.
const sqLength = int(SqNone)

// History is the move-ordering history table updated during search:
// Count[color][from][to] accumulates depth whenever a quiet move causes a
// beta cutoff, so later searches try previously-successful quiet moves
// earlier.
type History struct {
	Count [ColorLength][sqLength][sqLength]int64
}

// NewHistory creates an empty History table.
func NewHistory() *History {
	return &History{}
}

// Update adds depth to the history score of a quiet move that caused a
// cutoff.
func (h *History) Update(c Color, from, to Square, depth int) {
	h.Count[c][from][to] += int64(depth)
}

// Score returns the accumulated history score for a quiet move, used to
// order otherwise-unranked moves.
func (h *History) Score(c Color, from, to Square) int64 {
	return h.Count[c][from][to]
}
