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

package piece

import (
	"github.com/tpeters/vareng/internal/bitboard"
	. "github.com/tpeters/vareng/internal/types"
)

// Set is the per-player piece state Position.pieces[c] holds: one
// bitboard of occupied squares per declared piece type, a cached union of
// all of them, and a cached material total. The reference engine instead
// keeps one array of six PieceType bitboards per color
// (position.Position's pieces field) since its piece-type count is
// compile-time fixed; Set is sized by the loaded Registry instead.
type Set struct {
	byType   []bitboard.Bitboard // indexed by PieceTypeID - PieceTypeOffset
	All      bitboard.Bitboard
	Material Value
}

// NewSet returns an empty Set sized for the given registry.
func NewSet(reg *Registry) *Set {
	return &Set{byType: make([]bitboard.Bitboard, reg.Len())}
}

// Bb returns the occupied-squares bitboard for piece type id.
func (s *Set) Bb(id PieceTypeID) bitboard.Bitboard {
	if id < PieceTypeOffset || int(id-PieceTypeOffset) >= len(s.byType) {
		return bitboard.BbZero
	}
	return s.byType[id-PieceTypeOffset]
}

// Add places a piece of type id on sq, updating All. Material is not
// touched here - callers (Position.MakeMove) update it alongside Zobrist
// so the two stay in lockstep during undo.
func (s *Set) Add(id PieceTypeID, sq Square) {
	i := id - PieceTypeOffset
	s.byType[i] = s.byType[i].Push(sq)
	s.All = s.All.Push(sq)
}

// Remove clears a piece of type id from sq, updating All.
func (s *Set) Remove(id PieceTypeID, sq Square) {
	i := id - PieceTypeOffset
	s.byType[i] = s.byType[i].Pop(sq)
	s.All = s.All.Pop(sq)
}

// PieceAt returns the piece type id occupying sq in this set, or
// PieceTypeNone if the set has nothing there.
func (s *Set) PieceAt(sq Square) PieceTypeID {
	if !s.All.Has(sq) {
		return PieceTypeNone
	}
	for i, bb := range s.byType {
		if bb.Has(sq) {
			return PieceTypeOffset + PieceTypeID(i)
		}
	}
	return PieceTypeNone
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	c := &Set{
		byType:   make([]bitboard.Bitboard, len(s.byType)),
		All:      s.All,
		Material: s.Material,
	}
	copy(c.byType, s.byType)
	return c
}
