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

// Package piece declares the data shape of a variant ruleset's pieces. The
// reference engine hardcodes six piece types as an enum
// (pkg/types/piecetype.go: King/Pawn/Knight/Bishop/Rook/Queen) with
// movement baked directly into the move generator and a fixed value/
// game-phase table per type. Here the movement, promotion, castling and
// explosion behavior of every piece a ruleset declares is instead data, so
// a PieceDefinition plays the role the reference engine's PieceType enum
// and the move generator's per-piece-type switch statements play together.
package piece

import (
	. "github.com/tpeters/vareng/internal/types"
)

// Offset is a fixed (file, rank) displacement, used for jump deltas (e.g.
// a knight-like (±1, ±2) jump) and explosion deltas (the ring of squares
// cleared around a capture).
type Offset struct {
	DFile int
	DRank int
}

// Apply returns the square offset by o from sq, or SqNone if that would
// leave the addressable 16x16 grid.
func (o Offset) Apply(sq Square) Square {
	f := int(sq.FileOf()) + o.DFile
	r := int(sq.RankOf()) + o.DRank
	if f < 0 || f >= BoardDim || r < 0 || r >= BoardDim {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// MovePattern is the shape shared by a piece's attack (capturing) and
// translate (quiet-move) capability: a set of enabled compass directions
// it may slide along indefinitely, plus a list of fixed jump offsets.
type MovePattern struct {
	Directions []Direction
	JumpDeltas []Offset
}

// IsEmpty reports a pattern with no sliding directions and no jumps - a
// piece whose attack pattern is empty cannot capture at all (though it may
// still have a non-empty Translate pattern, or vice versa).
func (mp MovePattern) IsEmpty() bool {
	return len(mp.Directions) == 0 && len(mp.JumpDeltas) == 0
}

// PieceDefinition is the immutable, declarative description of one piece
// type within a loaded ruleset.
type PieceDefinition struct {
	ID PieceTypeID

	// Glyph holds the display glyph per player (index by Color).
	Glyph [ColorLength]string

	// Value is this piece type's baseline material worth in centipawns,
	// cached incrementally into Set.Material by Position.MakeMove/UnmakeMove
	// as pieces are added and removed. The reference engine's equivalent,
	// PieceType.ValueOf(), is a package-level constant table indexed by its
	// fixed six-entry enum; here it is ruleset data like everything else a
	// PieceDefinition declares. The evaluator (internal/eval) applies an
	// additional large multiplier on top of this for IsLeader pieces so
	// that leader capture dominates any positional score.
	Value Value

	// IsLeader marks this as a loss/win-condition target (a king-like
	// piece): a player with no leader piece left on the board has lost,
	// unless GlobalRules says otherwise.
	IsLeader bool

	// CastleRookFile[c] is the file this piece (a leader) castles with on
	// the kingside (index 0) and queenside (index 1) for player c; only
	// meaningful when IsLeader is true.
	CastleRookFile [ColorLength][2]File
	// IsCastleRook marks this piece type as eligible to be the partner
	// rook in a castling move.
	IsCastleRook bool

	// Explodes marks that a capture BY this piece type clears every
	// non-immune piece within ExplosionDeltas of the captured square, in
	// addition to the normal capture (as in Atomic chess).
	Explodes          bool
	ExplosionDeltas   []Offset
	ImmuneToExplosion bool

	// PromotionSquares[c] lists the squares a piece of color c promotes
	// on; PromotionTargets[c] lists the piece types it may promote to.
	PromotionSquares [ColorLength][]Square
	PromotionTargets [ColorLength][]PieceTypeID

	// DoubleJumpOrigins[c] lists the squares from which a piece of color
	// c may make a two-square non-capturing first move (a pawn-like
	// double-step), provided the intermediate square is empty.
	DoubleJumpOrigins [ColorLength][]Square

	// Attack is the capturing movement pattern; Translate is the
	// non-capturing movement pattern, both declared from White's point of
	// view. Most pieces share the same shape for both (a rook moves and
	// captures identically); a pawn-like piece typically has disjoint
	// Attack (diagonal jumps) and Translate (forward slide/jump) patterns.
	// Black's patterns are not declared separately: Registry mirrors both
	// through the board center (every direction and jump delta negated)
	// into blackAttack/blackTranslate when the definition is registered, so
	// one declaration serves a piece type symmetric under that point
	// reflection (which includes every asymmetric pawn-like piece, since a
	// forward-for-white direction negates into the corresponding
	// forward-for-black one).
	Attack    MovePattern
	Translate MovePattern

	blackAttack    MovePattern
	blackTranslate MovePattern

	// WinSquares[c] lists squares that, when a piece of this type
	// belonging to color c steps onto them, end the game in color c's
	// favor (e.g. a king-of-the-hill center square, or the far rank in a
	// racing variant).
	WinSquares [ColorLength][]Square
}

// IsSlider reports whether the piece's attack or translate pattern
// includes at least one sliding direction.
func (pd *PieceDefinition) IsSlider() bool {
	return len(pd.Attack.Directions) > 0 || len(pd.Translate.Directions) > 0
}

// AttackPattern returns the capturing movement pattern for color c.
func (pd *PieceDefinition) AttackPattern(c Color) MovePattern {
	if c == White {
		return pd.Attack
	}
	return pd.blackAttack
}

// TranslatePattern returns the non-capturing movement pattern for color c.
func (pd *PieceDefinition) TranslatePattern(c Color) MovePattern {
	if c == White {
		return pd.Translate
	}
	return pd.blackTranslate
}

// mirror reflects a movement pattern through the board center: every
// sliding direction and jump delta is negated. A direction declared as
// forward-for-White negates into forward-for-Black (e.g. Northeast, a
// white pawn's capture direction, negates to Southwest - paired with
// Northwest negating to Southeast, the two form exactly a black pawn's
// capture set).
func mirror(mp MovePattern) MovePattern {
	if mp.IsEmpty() {
		return MovePattern{}
	}
	var dirs []Direction
	if len(mp.Directions) > 0 {
		dirs = make([]Direction, len(mp.Directions))
		for i, d := range mp.Directions {
			dirs[i] = -d
		}
	}
	var deltas []Offset
	if len(mp.JumpDeltas) > 0 {
		deltas = make([]Offset, len(mp.JumpDeltas))
		for i, o := range mp.JumpDeltas {
			deltas[i] = Offset{DFile: -o.DFile, DRank: -o.DRank}
		}
	}
	return MovePattern{Directions: dirs, JumpDeltas: deltas}
}

// GlobalRules are the ruleset-wide, piece-independent win/loss conditions
// a loaded Position carries.
type GlobalRules struct {
	// CapturingIsForced: if true and at least one capture is available to
	// the side to move, every non-capturing pseudo-legal move is
	// filtered out of move generation.
	CapturingIsForced bool
	// StalemateLoses: if true, a side to move with no legal moves and not
	// in check loses instead of drawing.
	StalemateLoses bool
	// InvertWins: if true, reaching a win condition loses the game for
	// the mover instead of winning it (misère-style variants).
	InvertWins bool
	// CheckIsForbidden: if true, a move that leaves the opponent's leader
	// attacked is illegal rather than a checking move, as in some variants
	// where giving check is disallowed.
	CheckIsForbidden bool
}
