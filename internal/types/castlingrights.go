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

// CastlingRights encodes, per color, whether each of a leader's two
// declared castling partners (side 0, typically the "kingside" rook;
// side 1, typically the "queenside" rook) is still available.
//
//	CastlingNone             CastlingRights = 0  // 0000
//	CastlingWhiteSide0       CastlingRights = 1  // 0001
//	CastlingWhiteSide1                      = CastlingWhiteSide0 << 1  // 0010
//	CastlingWhite                           = CastlingWhiteSide0 | CastlingWhiteSide1  // 0011
//	CastlingBlackSide0                      = CastlingWhiteSide0 << 2  // 0100
//	CastlingBlackSide1                      = CastlingBlackSide0 << 1  // 1000
//	CastlingBlack                           = CastlingBlackSide0 | CastlingBlackSide1  // 1100
//	CastlingAny                             = CastlingWhite | CastlingBlack  // 1111
//	CastlingRightsLength     CastlingRights = 16
type CastlingRights uint8

const (
	CastlingNone       CastlingRights = 0
	CastlingWhiteSide0 CastlingRights = 1
	CastlingWhiteSide1                = CastlingWhiteSide0 << 1
	CastlingWhite                     = CastlingWhiteSide0 | CastlingWhiteSide1
	CastlingBlackSide0                = CastlingWhiteSide0 << 2
	CastlingBlackSide1                = CastlingBlackSide0 << 1
	CastlingBlack                     = CastlingBlackSide0 | CastlingBlackSide1
	CastlingAny                       = CastlingWhite | CastlingBlack

	CastlingRightsLength CastlingRights = 16
)

// forColor returns the two-bit mask belonging to color c (CastlingWhite
// or CastlingBlack).
func forColor(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// ForSide returns the single bit for color c's side-th castling partner
// (side 0 or 1, matching PieceDefinition.CastleRookFile's indexing).
func ForSide(c Color, side int) CastlingRights {
	bit := CastlingWhiteSide0
	if side == 1 {
		bit = CastlingWhiteSide1
	}
	if c == Black {
		bit <<= 2
	}
	return bit
}

// Has reports whether every bit of rhs is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs && rhs != 0
}

// Remove clears the bits of rhs from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the bits of rhs in cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// RemoveColor clears every right belonging to color c, as happens when
// c's leader moves off its start square for any reason other than
// castling itself.
func (cr *CastlingRights) RemoveColor(c Color) CastlingRights {
	return cr.Remove(forColor(c))
}

// String renders cr as its four bits, high to low (black side 1, black
// side 0, white side 1, white side 0), with "-" for an unset bit.
func (cr CastlingRights) String() string {
	bit := func(mask CastlingRights, glyph string) string {
		if cr.Has(mask) {
			return glyph
		}
		return "-"
	}
	return bit(CastlingBlackSide1, "b") + bit(CastlingBlackSide0, "B") +
		bit(CastlingWhiteSide1, "q") + bit(CastlingWhiteSide0, "k")
}
