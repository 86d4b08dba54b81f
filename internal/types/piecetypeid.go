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

// PieceTypeID identifies a piece type within a ruleset. Unlike the
// reference engine's PieceType, which is a fixed enum of the six standard
// chess pieces, a variant ruleset declares an arbitrary, ordered list of
// PieceDefinitions at load time and a piece is referred to by its index in
// that list plus PieceTypeOffset. PieceTypeNone is reserved as the "no
// piece"/"no promotion"/"no capture" sentinel.
type PieceTypeID uint8

// PieceTypeNone marks "no piece type" - an empty square, a non-promotion
// move, or a non-capturing move's captured-piece field.
const PieceTypeNone PieceTypeID = 0

// PieceTypeOffset is the first valid id a loaded ruleset may assign to a
// real piece definition; ids below it are reserved sentinels.
const PieceTypeOffset PieceTypeID = 1

// MaxPieceTypes bounds how many distinct piece definitions a ruleset may
// declare - chosen so a PieceTypeID, a Move's 6-bit promotion/capture
// fields and a Zobrist table index all agree on the same range.
const MaxPieceTypes = 63

// IsValid checks if id is either PieceTypeNone or within the declarable
// range of piece type ids.
func (id PieceTypeID) IsValid() bool {
	return id <= MaxPieceTypes
}
