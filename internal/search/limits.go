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

package search

import "time"

// Limits bounds one call to Run: a fixed iterative-deepening depth, a time
// budget, or both - whichever is hit first stops the search. The reference
// engine's Limits also carries UCI-style per-side clocks, pondering and
// mate-search flags; none of that applies without a protocol handler driving
// the search, so this keeps only the two controls Run actually honors.
type Limits struct {
	// Depth caps iterative deepening. Zero (or a value above the configured
	// Settings.Search.MaxDepth) means "use the configured maximum".
	Depth int

	// MoveTime, if positive, is the wall-clock budget for the whole call.
	// Zero means no time limit - Depth alone decides when Run returns.
	MoveTime time.Duration
}
