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

// MoveType classifies what a Move does to the position beyond a plain
// relocation, generalizing the reference engine's Normal/Promotion/
// EnPassant/Castling set to the variant rules this engine supports
// (double-jumps instead of a pawn-only en-passant rule, two castling sides,
// and an explicit Null move used by null-move pruning).
type MoveType uint8

// The move types a Move can carry.
const (
	Quiet MoveType = iota
	Capture
	DoubleJump
	CastleKingside
	CastleQueenside
	Promotion
	PromotionCapture
	Null
	moveTypeLength
)

// IsValid checks if mt is one of the declared move types.
func (mt MoveType) IsValid() bool {
	return mt < moveTypeLength
}

var moveTypeToString = [moveTypeLength]string{
	"quiet", "capture", "doublejump", "O-O", "O-O-O", "promotion", "promotioncapture", "null",
}

// String returns a short label for the move type.
func (mt MoveType) String() string {
	if !mt.IsValid() {
		return "invalid"
	}
	return moveTypeToString[mt]
}

// IsCapture reports whether the move type removes an opposing piece,
// regardless of whether the captured square equals the destination square
// (it does not for en-passant-style double-jump captures or explosions).
func (mt MoveType) IsCapture() bool {
	return mt == Capture || mt == PromotionCapture
}

// IsPromotion reports whether the move type carries a promotion piece id.
func (mt MoveType) IsPromotion() bool {
	return mt == Promotion || mt == PromotionCapture
}
