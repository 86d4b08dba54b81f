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

package tt

import (
	. "github.com/tpeters/vareng/internal/types"
)

// TtEntry is one slot of a cluster. The reference engine bit-packs an entry
// into 16 bytes with a 16-bit move and 16-bit value/eval fields; this move
// needs up to 43 bits and Value is backed by int32 to hold a wide
// CheckmateBase, so neither fits the reference layout. Rather than
// shrinking them back down, entries here use plain-width fields and give up
// on the 16-byte guarantee - a deliberate, documented trade of memory
// density for correctness on a board that can be far larger than 8x8.
type TtEntry struct {
	Key       Key
	Move      Move
	Value     Value
	Eval      Value
	Depth     int8
	ValueType ValueType
	// Ancient marks an entry as belonging to a previous iterative-deepening
	// iteration, toggled in bulk by Table.AgeEntries. A fresh write always
	// clears it.
	Ancient bool
}

// empty reports whether the slot has never been written, or was cleared.
func (e *TtEntry) empty() bool {
	return e.ValueType == ValueTypeEmpty
}
