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

package position

import (
	. "github.com/tpeters/vareng/internal/types"
)

// exploded records one piece cleared from the board by an explosion, in
// addition to the piece captured directly at the move's target square.
type exploded struct {
	square Square
	piece  PieceTypeID
	color  Color
}

// properties is the single-parent undo-chain node the reference engine's
// historyState plays in position/position.go, widened with the bookkeeping
// an atomic-style explosion needs that plain chess undo never has to
// restore: the set of incidentally destroyed pieces and whether the mover
// itself was destroyed instead of landing on the destination square.
type properties struct {
	zobristKey     Key
	movePlayed     Move
	castlingRights CastlingRights
	epSquare       Square
	epVictim       Square
	halfMoveClock  int
	hasCastled     [ColorLength]bool

	// moverPiece is the piece type that stood on movePlayed.From() before
	// the move, needed by UnmakeMove to restore it exactly - for a
	// promotion it differs from what now sits on To(); for an exploded
	// mover it differs from PieceTypeNone, the only other trace left of it.
	moverPiece PieceTypeID

	capturedPiece PieceTypeID // PieceTypeNone if movePlayed captured nothing
	capturedColor Color

	exploded      []exploded
	moverExploded bool

	previous *properties
}
