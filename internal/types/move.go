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

import "fmt"

// Move is a 64-bit unsigned int encoding a single ply, following the
// reference engine's packed-Move approach (pkg/types/move.go) but widened
// for a 256-square board and carrying a distinct "target" square so that a
// captured piece need not sit on the destination square - required for
// double-jump captures and piece explosions, neither of which exist in the
// reference engine.
//
//	BITMAP 64-bit (bits 43-63 unused)
//	|-unused--------------|-capt-|-prom-|-mtyp-|--target-|---from--|----to---|
//	 63                 43 42  37 36  31 30  27 26     18 17      9 8       0
type Move uint64

// MoveNone is the empty, non valid move.
const MoveNone Move = 0

const (
	toShift     uint = 0
	fromShift   uint = 9
	targetShift uint = 18
	typeShift   uint = 27
	promShift   uint = 31
	captShift   uint = 37

	squareMask Move = 0x1FF // 9 bits, 0-511

	toMask     Move = squareMask << toShift
	fromMask   Move = squareMask << fromShift
	targetMask Move = squareMask << targetShift
	typeMask   Move = 0xF << typeShift   // 4 bits
	promMask   Move = 0x3F << promShift  // 6 bits
	captMask   Move = 0x3F << captShift  // 6 bits
)

// CreateMove returns a Move with no capture and no promotion, i.e. a plain
// quiet move, double-jump or castle.
func CreateMove(from, to Square, mt MoveType) Move {
	return CreateCaptureMove(from, to, to, mt, PieceTypeNone, PieceTypeNone)
}

// CreateCaptureMove returns a fully specified Move. target is the square of
// the piece removed by the move (equal to `to` for ordinary captures,
// different from `to` for double-jump captures), promo is the piece type id
// promoted to (PieceTypeNone if mt is not a promotion type) and captured is
// the piece type id removed (PieceTypeNone if mt is not a capture type).
func CreateCaptureMove(from, to, target Square, mt MoveType, promo, captured PieceTypeID) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(target)<<targetShift |
		Move(mt)<<typeShift |
		Move(promo)<<promShift |
		Move(captured)<<captShift
}

// CreateNullMove returns the distinguished Move used by null-move pruning.
func CreateNullMove() Move {
	return Move(Null) << typeShift
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// Target returns the square of the piece removed by the move, which may
// differ from To() for double-jump captures and explosions.
func (m Move) Target() Square {
	return Square((m & targetMask) >> targetShift)
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the piece type id promoted to; only meaningful
// when MoveType().IsPromotion() is true.
func (m Move) PromotionType() PieceTypeID {
	return PieceTypeID((m & promMask) >> promShift)
}

// CapturedType returns the piece type id removed by the move; only
// meaningful when MoveType().IsCapture() is true.
func (m Move) CapturedType() PieceTypeID {
	return PieceTypeID((m & captMask) >> captShift)
}

// IsValid checks whether the move has valid squares and a valid move type.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if m.MoveType() == Null {
		return true
	}
	return m.From().IsValid() &&
		m.To().IsValid() &&
		m.Target().IsValid() &&
		m.MoveType().IsValid() &&
		m.PromotionType().IsValid() &&
		m.CapturedType().IsValid()
}

// String returns a debug representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{ none }"
	}
	if m.MoveType() == Null {
		return "Move{ null }"
	}
	return fmt.Sprintf("Move{ %s%s target:%s type:%s prom:%d capt:%d }",
		m.From(), m.To(), m.Target(), m.MoveType(), m.PromotionType(), m.CapturedType())
}
