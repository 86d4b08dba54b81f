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

	"github.com/tpeters/vareng/internal/util"
)

// Value is a centipawn-valued score. The reference engine backs Value with
// int16, which is enough for a fixed 6-piece 8x8 chess evaluation, but this
// engine's evaluator works with a configurable CheckmateBase (see
// internal/config's evalConfiguration) that reference engines typically set
// around -1,000,000 - an order of magnitude beyond what int16 can hold.
// Value is backed by int32 instead so that a checkmate score and its
// surrounding search window never overflow, at the cost of deviating from
// the reference engine's exact width.
type Value int32

// Sentinel values, widened proportionally to the int32 backing: ValueInf
// bounds every legal score, ValueNA marks "no value computed", and
// ValueCheckMate is assigned at the mating node with ValueCheckMateThreshold
// marking the cutoff below which a score is considered "some mate, N plies
// out" rather than a plain evaluation.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueOne   Value = 1
	ValueInf   Value = 2_000_000
	ValueNA    Value = -ValueInf - 1
	ValueMax   Value = 1_000_000
	ValueMin   Value = -ValueMax
	MaxDepth   int   = 128
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth) - 1
)

// IsValid checks if v is within the legal value range (or is ValueNA).
func (v Value) IsValid() bool {
	return (v >= ValueMin && v <= ValueMax) || v == ValueNA
}

// IsCheckMateValue checks if v represents a forced mate in some number of
// plies rather than a plain positional score.
func (v Value) IsCheckMateValue() bool {
	return v != ValueNA && util.Abs(int(v)) >= int(ValueCheckMateThreshold)
}

// String returns a human readable representation of the value: "N/A" for
// ValueNA, "mate N" / "mate -N" for forced mate scores (N plies until/since
// mate), and a plain centipawn number otherwise.
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		plies := ValueCheckMate - Value(util.Abs(int(v)))
		if v < 0 {
			return fmt.Sprintf("mate -%d", plies)
		}
		return fmt.Sprintf("mate %d", plies)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
