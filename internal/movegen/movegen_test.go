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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpeters/vareng/internal/piece"
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// standardChessRegistry declares the six standard chess piece types as a
// Registry, the way a ruleset loader would build one from a config file.
// It is the fixture every test in this package exercises movegen against:
// a declarative ruleset that happens to reconstruct orthodox chess, rather
// than a hardcoded board the way the reference engine's NewPositionFen
// would give it.
func standardChessRegistry() (*piece.Registry, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition) {
	king := &piece.PieceDefinition{
		Glyph:    [ColorLength]string{"K", "k"},
		IsLeader: true,
		CastleRookFile: [ColorLength][2]File{
			White: {FileH, FileA},
			Black: {FileH, FileA},
		},
		Attack:    piece.MovePattern{JumpDeltas: kingDeltas},
		Translate: piece.MovePattern{JumpDeltas: kingDeltas},
	}
	queen := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"Q", "q"},
		Attack:    piece.MovePattern{Directions: Directions[:]},
		Translate: piece.MovePattern{Directions: Directions[:]},
	}
	rook := &piece.PieceDefinition{
		Glyph:        [ColorLength]string{"R", "r"},
		IsCastleRook: true,
		Attack:       piece.MovePattern{Directions: []Direction{North, South, East, West}},
		Translate:    piece.MovePattern{Directions: []Direction{North, South, East, West}},
	}
	bishop := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"B", "b"},
		Attack:    piece.MovePattern{Directions: []Direction{Northeast, Northwest, Southeast, Southwest}},
		Translate: piece.MovePattern{Directions: []Direction{Northeast, Northwest, Southeast, Southwest}},
	}
	knight := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"N", "n"},
		Attack:    piece.MovePattern{JumpDeltas: knightDeltas},
		Translate: piece.MovePattern{JumpDeltas: knightDeltas},
	}
	pawn := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"P", "p"},
		Attack:    piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 1, DRank: 1}, {DFile: -1, DRank: 1}}},
		Translate: piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}}},
		DoubleJumpOrigins: [ColorLength][]Square{
			White: rankSquares(Rank2),
			Black: rankSquares(Rank7),
		},
		PromotionSquares: [ColorLength][]Square{
			White: rankSquares(Rank8),
			Black: rankSquares(Rank1),
		},
	}

	reg, err := piece.NewRegistry([]*piece.PieceDefinition{king, queen, rook, bishop, knight, pawn})
	if err != nil {
		panic(err)
	}
	pawn.PromotionTargets = [ColorLength][]PieceTypeID{
		White: {queen.ID, rook.ID, bishop.ID, knight.ID},
		Black: {queen.ID, rook.ID, bishop.ID, knight.ID},
	}
	return reg, king, queen, rook, bishop, knight, pawn
}

var kingDeltas = []piece.Offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var knightDeltas = []piece.Offset{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}

func rankSquares(r Rank) []Square {
	out := make([]Square, 0, 8)
	for f := FileA; f <= FileH; f++ {
		out = append(out, SquareOf(f, r))
	}
	return out
}

// standardChessStart builds the orthodox chess starting position as an
// InitialState using standardChessRegistry.
func standardChessStart() *piece.InitialState {
	reg, king, queen, rook, bishop, knight, pawn := standardChessRegistry()

	back := []PieceTypeID{rook.ID, knight.ID, bishop.ID, queen.ID, king.ID, bishop.ID, knight.ID, rook.ID}
	var placements []piece.Placement
	for f := FileA; f <= FileH; f++ {
		placements = append(placements,
			piece.Placement{Piece: back[f], Color: White, Square: SquareOf(f, Rank1)},
			piece.Placement{Piece: pawn.ID, Color: White, Square: SquareOf(f, Rank2)},
			piece.Placement{Piece: pawn.ID, Color: Black, Square: SquareOf(f, Rank7)},
			piece.Placement{Piece: back[f], Color: Black, Square: SquareOf(f, Rank8)},
		)
	}

	return &piece.InitialState{
		Width:          8,
		Height:         8,
		Registry:       reg,
		Placements:     placements,
		NextPlayer:     White,
		CastlingRights: CastlingAny,
	}
}

func mustLoad(t *testing.T, is *piece.InitialState) *position.Position {
	t.Helper()
	pos, err := position.Load(is)
	assert.NoError(t, err)
	return pos
}

func TestPseudoMovesFromStartingPosition(t *testing.T) {
	pos := mustLoad(t, standardChessStart())
	moves := PseudoMoves(pos)
	// 16 pawn moves (8 single + 8 double) + 4 knight moves = 20, no captures.
	assert.Len(t, moves, 20)
	for _, m := range moves {
		assert.False(t, m.MoveType().IsCapture())
	}
}

func TestInCheckDetectsAttackedLeader(t *testing.T) {
	reg, king, _, rook, _, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:    8,
		Height:   8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("e1")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("e8")},
			{Piece: rook.ID, Color: Black, Square: MakeSquare("e5")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)
	assert.True(t, InCheck(pos))
}

func TestCastlingRequiresClearAndSafePath(t *testing.T) {
	reg, king, _, rook, _, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:    8,
		Height:   8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("e1")},
			{Piece: rook.ID, Color: White, Square: MakeSquare("h1")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("e8")},
		},
		NextPlayer:     White,
		CastlingRights: CastlingWhite,
	}
	pos := mustLoad(t, is)
	moves := PseudoMoves(pos)
	found := false
	for _, m := range moves {
		if m.MoveType() == CastleKingside {
			found = true
			assert.Equal(t, MakeSquare("g1"), m.To())
		}
	}
	assert.True(t, found)

	// Put a black rook attacking f1, the king's transit square: castling
	// must no longer be generated.
	is.Placements = append(is.Placements, piece.Placement{Piece: rook.ID, Color: Black, Square: MakeSquare("f8")})
	pos = mustLoad(t, is)
	moves = PseudoMoves(pos)
	for _, m := range moves {
		assert.NotEqual(t, CastleKingside, m.MoveType())
	}
}

func TestDoubleJumpThenEnPassantCapture(t *testing.T) {
	reg, king, _, _, _, _, pawn := standardChessRegistry()
	is := &piece.InitialState{
		Width:    8,
		Height:   8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("e1")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("e8")},
			{Piece: pawn.ID, Color: White, Square: MakeSquare("e2")},
			{Piece: pawn.ID, Color: Black, Square: MakeSquare("d4")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)

	var doubleJump Move
	for _, m := range PseudoMoves(pos) {
		if m.MoveType() == DoubleJump {
			doubleJump = m
		}
	}
	assert.True(t, doubleJump.IsValid())
	assert.True(t, MakeMoveIfLegal(pos, doubleJump))
	assert.Equal(t, MakeSquare("e3"), pos.EpSquare())

	var epCapture Move
	for _, m := range PseudoMoves(pos) {
		if m.MoveType() == Capture && m.To() == MakeSquare("e3") {
			epCapture = m
		}
	}
	assert.True(t, epCapture.IsValid())
	assert.Equal(t, MakeSquare("e4"), epCapture.Target())
	assert.True(t, MakeMoveIfLegal(pos, epCapture))
	captured, _ := pos.PieceAt(MakeSquare("e4"))
	assert.Equal(t, PieceTypeNone, captured)
}

func TestPromotionGeneratesAllTargets(t *testing.T) {
	reg, king, queen, rook, bishop, knight, pawn := standardChessRegistry()
	is := &piece.InitialState{
		Width:    8,
		Height:   8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("e1")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("e8")},
			{Piece: pawn.ID, Color: White, Square: MakeSquare("a7")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)

	var promos []Move
	for _, m := range PseudoMoves(pos) {
		if m.MoveType() == Promotion {
			promos = append(promos, m)
		}
	}
	assert.Len(t, promos, 4)
	seen := map[PieceTypeID]bool{}
	for _, m := range promos {
		seen[m.PromotionType()] = true
	}
	assert.True(t, seen[queen.ID])
	assert.True(t, seen[rook.ID])
	assert.True(t, seen[bishop.ID])
	assert.True(t, seen[knight.ID])
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	reg, king, _, rook, bishop, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:    8,
		Height:   8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("e1")},
			{Piece: bishop.ID, Color: White, Square: MakeSquare("e2")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("e8")},
			{Piece: rook.ID, Color: Black, Square: MakeSquare("e5")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)
	for _, m := range LegalMoves(pos) {
		assert.NotEqual(t, MakeSquare("e2"), m.From())
	}
}

// TestCapturingIsForcedFiltersQuietMoves builds a position where White's
// rook has both a capture and several quiet moves available, and checks
// that GlobalRules.CapturingIsForced drops every non-capturing move once a
// capture exists - the tie-break rule spec.md names as "capture is
// forced".
func TestCapturingIsForcedFiltersQuietMoves(t *testing.T) {
	reg, king, _, rook, _, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:       8,
		Height:      8,
		Registry:    reg,
		GlobalRules: piece.GlobalRules{CapturingIsForced: true},
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("a1")},
			{Piece: rook.ID, Color: White, Square: MakeSquare("d4")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("h8")},
			{Piece: rook.ID, Color: Black, Square: MakeSquare("d7")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)

	moves := PseudoMoves(pos)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.True(t, m.MoveType().IsCapture(), "quiet move %s survived a forced-capture position", m.String())
	}
}

// TestCapturingIsForcedLeavesQuietMovesWhenNoCaptureExists confirms the
// forced-capture filter only fires once a capture actually exists: with
// none available, every pseudo-legal move (all quiet) still comes through.
func TestCapturingIsForcedLeavesQuietMovesWhenNoCaptureExists(t *testing.T) {
	reg, king, _, rook, _, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:       8,
		Height:      8,
		Registry:    reg,
		GlobalRules: piece.GlobalRules{CapturingIsForced: true},
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("a1")},
			{Piece: rook.ID, Color: White, Square: MakeSquare("d4")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)

	moves := PseudoMoves(pos)
	assert.NotEmpty(t, moves)
	quiet := 0
	for _, m := range moves {
		if !m.MoveType().IsCapture() {
			quiet++
		}
	}
	assert.Equal(t, len(moves), quiet)
}

// TestCheckIsForbiddenRejectsCheckingMoves builds a position where White's
// rook can check Black's king, and confirms GlobalRules.CheckIsForbidden
// makes MakeMoveIfLegal reject that move outright, rather than merely
// allowing it as an ordinary checking move.
func TestCheckIsForbiddenRejectsCheckingMoves(t *testing.T) {
	reg, king, _, rook, _, _, _ := standardChessRegistry()
	is := &piece.InitialState{
		Width:       8,
		Height:      8,
		Registry:    reg,
		GlobalRules: piece.GlobalRules{CheckIsForbidden: true},
		Placements: []piece.Placement{
			{Piece: king.ID, Color: White, Square: MakeSquare("a1")},
			{Piece: rook.ID, Color: White, Square: MakeSquare("d4")},
			{Piece: king.ID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos := mustLoad(t, is)

	checkingMove := CreateMove(MakeSquare("d4"), MakeSquare("h4"), Quiet)
	assert.False(t, MakeMoveIfLegal(pos, checkingMove))
	id, _ := pos.PieceAt(MakeSquare("d4"))
	assert.Equal(t, rook.ID, id, "a rejected move must leave the position unchanged")

	quietMove := CreateMove(MakeSquare("d4"), MakeSquare("d5"), Quiet)
	assert.True(t, MakeMoveIfLegal(pos, quietMove))
}
