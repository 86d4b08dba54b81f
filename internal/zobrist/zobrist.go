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

// Package zobrist builds the random key tables used to maintain a
// Position's incremental hash. The reference engine's position/zobrist.go
// builds one fixed-size table sized for 16 piece values (PieceLength) and
// 64 squares (SqLength) at package init. A variant ruleset does not know
// its piece-type count until a PieceDefinition list is loaded, so this
// package exposes a constructor instead of package-level state and is
// otherwise a direct port of the reference engine's table shape and
// seeding approach.
package zobrist

import (
	"math/rand"

	. "github.com/tpeters/vareng/internal/types"
)

// CastlingRightsLength covers every combination of the four castling-right
// bits this engine supports (kingside/queenside per player), regardless of
// board size - a variant board always has at most two castling sides per
// player, only the rook/king file pair differs.
const CastlingRightsLength = 16

// seed is the deterministic seed the reference engine's zobrist table is
// built with (position/zobrist.go: NewRandom(1070372)), kept unchanged so
// that the hash of a given loaded position is reproducible across runs.
const seed = 1070372

// Table holds the random keys a Position xors in and out incrementally.
// pieces is indexed [color][pieceTypeID][square].
type Table struct {
	pieces         [ColorLength][]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [BoardDim]Key
	sideToMove     Key
}

// NewTable builds a Table sized for numPieceTypes piece definitions (plus
// the PieceTypeNone sentinel at index 0), seeded deterministically so
// repeated runs of the same ruleset produce identical keys.
func NewTable(numPieceTypes int) *Table {
	r := rand.New(rand.NewSource(seed))
	t := &Table{}
	size := numPieceTypes + 1
	for c := White; c <= Black; c++ {
		t.pieces[c] = make([]Key, size*int(SqNone))
	}
	for c := White; c <= Black; c++ {
		for pt := 0; pt < size; pt++ {
			for sq := Square(0); sq < SqNone; sq++ {
				t.pieces[c][pt*int(SqNone)+int(sq)] = Key(r.Uint64())
			}
		}
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		t.castlingRights[cr] = Key(r.Uint64())
	}
	for f := 0; f < BoardDim; f++ {
		t.enPassantFile[f] = Key(r.Uint64())
	}
	t.sideToMove = Key(r.Uint64())
	return t
}

// Piece returns the key term for a piece of type pt and color c standing
// on sq. Passing PieceTypeNone yields a (never-used) term of zero
// significance - callers only xor terms for squares that actually hold a
// piece.
func (t *Table) Piece(c Color, pt PieceTypeID, sq Square) Key {
	return t.pieces[c][int(pt)*int(SqNone)+int(sq)]
}

// CastlingRights returns the key term for the given castling-rights
// bitmask (bit 0: white kingside, bit 1: white queenside, bit 2: black
// kingside, bit 3: black queenside).
func (t *Table) CastlingRights(rights int) Key {
	return t.castlingRights[rights&(CastlingRightsLength-1)]
}

// EnPassantFile returns the key term for an en-passant-capturable file.
func (t *Table) EnPassantFile(f File) Key {
	return t.enPassantFile[f]
}

// SideToMove returns the key term xor'd in whenever it is black's move.
func (t *Table) SideToMove() Key {
	return t.sideToMove
}
