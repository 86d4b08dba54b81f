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
	"fmt"

	. "github.com/tpeters/vareng/internal/types"
)

// Placement pins one piece of a declared type to a starting square for a
// given color.
type Placement struct {
	Piece  PieceTypeID
	Color  Color
	Square Square
}

// EpInfo names an already-pending en-passant capture at load time: Square
// is the square a double-jumping piece skipped over (what Position
// records as its en-passant square after a DoubleJump), Victim is the square the piece that
// just double-jumped actually occupies. Loading mid-game state (as
// opposed to a fresh starting position) needs both explicitly - unlike a
// DoubleJump made during play, where Position derives Victim itself from
// the move just played, a loader has no move to derive it from.
type EpInfo struct {
	Square Square
	Victim Square
}

// InitialState bundles everything a ruleset load needs to build a
// Position: the board dimensions, the declared piece types and global
// rules, the starting placements, and the starting game state that isn't
// derivable from the placements alone. The reference engine has no
// equivalent - its position.Position.SetupWhiteBoard/SetupBlackBoard
// methods hardcode the standard chess start position directly, since it
// has no notion of a loadable ruleset.
type InitialState struct {
	Width  int
	Height int

	// InvalidSquares carves squares out of the rectangular Width x Height
	// grid that the board simply does not have - a non-rectangular board
	// (e.g. a cross- or hex-projected-onto-square-grid board), as opposed
	// to Non-goal board shapes this engine never claimed to support. An
	// empty slice (the common case) leaves the board fully rectangular.
	InvalidSquares []Square

	Registry    *Registry
	GlobalRules GlobalRules

	Placements []Placement

	NextPlayer     Color
	CastlingRights CastlingRights

	// EpSquareAndVictim records an en-passant capture already available
	// at load time, or nil if none is pending.
	EpSquareAndVictim *EpInfo
}

// Validate reports whether the state is self-consistent: board
// dimensions fit within the 16x16 addressable grid, every placement and
// invalid square targets a square inside those dimensions, every
// placement names a piece type the registry actually declares, no two
// placements target the same square, no placement sits on a declared
// invalid square, and any loaded en-passant state targets occupied,
// in-bounds squares.
func (is *InitialState) Validate() error {
	if is.Width <= 0 || is.Width > BoardDim || is.Height <= 0 || is.Height > BoardDim {
		return fmt.Errorf("initial state: board dimensions %dx%d out of range", is.Width, is.Height)
	}
	if is.Registry == nil || is.Registry.Len() == 0 {
		return fmt.Errorf("initial state: a non-empty piece registry is required")
	}

	invalid := make(map[Square]bool, len(is.InvalidSquares))
	for _, sq := range is.InvalidSquares {
		if !is.inBounds(sq) {
			return fmt.Errorf("initial state: invalid square %s falls outside the %dx%d board", sq, is.Width, is.Height)
		}
		invalid[sq] = true
	}

	seen := make(map[Square]bool, len(is.Placements))
	for _, p := range is.Placements {
		if is.Registry.Get(p.Piece) == nil {
			return fmt.Errorf("initial state: placement references undeclared piece type %d", p.Piece)
		}
		if !is.inBounds(p.Square) {
			return fmt.Errorf("initial state: placement on %s falls outside the %dx%d board", p.Square, is.Width, is.Height)
		}
		if invalid[p.Square] {
			return fmt.Errorf("initial state: placement on %s falls on a declared invalid square", p.Square)
		}
		if seen[p.Square] {
			return fmt.Errorf("initial state: duplicate placement on %s", p.Square)
		}
		seen[p.Square] = true
	}

	if is.EpSquareAndVictim != nil {
		ep := is.EpSquareAndVictim
		if !is.inBounds(ep.Square) || invalid[ep.Square] {
			return fmt.Errorf("initial state: en-passant square %s is not a playable square", ep.Square)
		}
		if !seen[ep.Victim] {
			return fmt.Errorf("initial state: en-passant victim square %s has no placement", ep.Victim)
		}
	}

	return nil
}

func (is *InitialState) inBounds(sq Square) bool {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	return f < is.Width && r < is.Height
}
