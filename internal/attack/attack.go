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

package attack

import (
	"github.com/tpeters/vareng/internal/bitboard"
	. "github.com/tpeters/vareng/internal/types"
)

// dirInfo maps a single compass direction to the line family that carries
// it and whether it is the "upper" (increasing position index) or "lower"
// half of that family's line.
type dirInfo struct {
	fam   family
	upper bool
}

var directionFamily = map[Direction]dirInfo{
	East:      {familyRank, true},
	West:      {familyRank, false},
	North:     {familyFile, true},
	South:     {familyFile, false},
	Northeast: {familyDiagUp, true},
	Southwest: {familyDiagUp, false},
	Southeast: {familyDiagDown, true},
	Northwest: {familyDiagDown, false},
}

// SlidingMoves returns the union of attacked squares for a slider on
// square, given the occupancy occ, restricted to the requested set of
// directions. Disabled directions contribute nothing, which keeps variant
// pieces whose rays only run in a subset of the eight compass directions
// (e.g. a rook-like piece that may only move North and East) correct
// without any special-casing beyond the direction set passed in - the
// single public entry point described for AttackTables.
func SlidingMoves(square Square, occ bitboard.Bitboard, directions []Direction) bitboard.Bitboard {
	var result bitboard.Bitboard
	sq := int(square)
	for _, d := range directions {
		info, ok := directionFamily[d]
		if !ok {
			continue
		}
		line := &Masks.lineSquares[info.fam][sq]
		pos := Masks.position[info.fam][sq]
		occ16 := gather(line, occ)
		local := lineAttack[pos][occ16]
		if info.upper {
			local &= Masks.upperMask[pos]
		} else {
			local &= Masks.lowerMask[pos]
		}
		result = result.Or(scatter(line, local))
	}
	return result
}

// AllDirections is the full eight-direction set, used by pieces (rooks,
// bishops, queens and the like) whose rays are unrestricted.
var AllDirections = Directions[:]

// RankFileDirections is the four orthogonal directions, used by
// rook-like pieces.
var RankFileDirections = []Direction{North, East, South, West}

// DiagonalDirections is the four diagonal directions, used by
// bishop-like pieces.
var DiagonalDirections = []Direction{Northeast, Northwest, Southeast, Southwest}
