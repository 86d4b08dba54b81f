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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpeters/vareng/internal/apperrors"
	"github.com/tpeters/vareng/internal/movegen"
	"github.com/tpeters/vareng/internal/piece"
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// leaderAndRookRegistry mirrors internal/search's test fixture: a
// one-step-orthogonal leader and a four-direction slider, enough to build
// both ordinary and terminal positions without orthodox chess's full
// piece set.
func leaderAndRookRegistry() *piece.Registry {
	leader := &piece.PieceDefinition{
		IsLeader: true,
		Value:    10_000,
		Attack:   piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}}},
	}
	leader.Translate = leader.Attack
	rook := &piece.PieceDefinition{
		IsCastleRook: true,
		Value:        500,
		Attack:       piece.MovePattern{Directions: []Direction{North, South, East, West}},
	}
	rook.Translate = rook.Attack
	reg, err := piece.NewRegistry([]*piece.PieceDefinition{leader, rook})
	if err != nil {
		panic(err)
	}
	return reg
}

func leaderAndQueenRegistry() *piece.Registry {
	leader := &piece.PieceDefinition{
		IsLeader: true,
		Value:    10_000,
		Attack:   piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}}},
	}
	leader.Translate = leader.Attack
	queen := &piece.PieceDefinition{
		Value:  900,
		Attack: piece.MovePattern{Directions: Directions[:]},
	}
	queen.Translate = queen.Attack
	reg, err := piece.NewRegistry([]*piece.PieceDefinition{leader, queen})
	if err != nil {
		panic(err)
	}
	return reg
}

// atomicRegistry declares a leader and an Explodes piece that clears every
// non-leader-immune piece within one square of its capture square, the
// same atomic-chess mechanic position.go's explode() implements.
func atomicRegistry() *piece.Registry {
	leader := &piece.PieceDefinition{
		IsLeader: true,
		Value:    10_000,
		Attack:   piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}}},
	}
	leader.Translate = leader.Attack
	bomber := &piece.PieceDefinition{
		Value: 300,
		Attack: piece.MovePattern{JumpDeltas: []piece.Offset{
			{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0},
			{DFile: 1, DRank: 1}, {DFile: 1, DRank: -1}, {DFile: -1, DRank: 1}, {DFile: -1, DRank: -1},
		}},
		Explodes: true,
		ExplosionDeltas: []piece.Offset{
			{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0},
			{DFile: 1, DRank: 1}, {DFile: 1, DRank: -1}, {DFile: -1, DRank: 1}, {DFile: -1, DRank: -1},
		},
	}
	bomber.Translate = piece.MovePattern{JumpDeltas: bomber.Attack.JumpDeltas}
	reg, err := piece.NewRegistry([]*piece.PieceDefinition{leader, bomber})
	if err != nil {
		panic(err)
	}
	return reg
}

func findMove(t *testing.T, pos *position.Position, from, to Square) Move {
	t.Helper()
	for _, m := range movegen.PseudoMoves(pos) {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	t.Fatalf("no pseudo-legal move %s-%s", from, to)
	return Move(0)
}

func TestMakeMoveAppliesLegalQuietMove(t *testing.T) {
	reg := leaderAndRookRegistry()
	leaderID, rookID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("e1")},
			{Piece: rookID, Color: White, Square: MakeSquare("a1")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("e8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("a1"), MakeSquare("a4"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, Ok, res.Status)
	assert.False(t, res.HasWinner)
	rookBb := pos.Pieces(White).Bb(rookID)
	assert.Equal(t, MakeSquare("a4"), rookBb.PopLsb())
	assert.Equal(t, Black, pos.SideToMove())
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	reg := leaderAndRookRegistry()
	leaderID, rookID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("e1")},
			{Piece: rookID, Color: White, Square: MakeSquare("a1")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("e8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)
	keyBefore := pos.ZobristKey()

	// The rook cannot jump to a square it has no line to.
	bogus := CreateMove(MakeSquare("a1"), MakeSquare("b2"), Quiet)
	res, err := MakeMove(pos, bogus)
	assert.ErrorIs(t, err, apperrors.ErrIllegalMove)
	assert.Equal(t, IllegalMove, res.Status)
	assert.Equal(t, keyBefore, pos.ZobristKey())
	assert.Equal(t, White, pos.SideToMove())
}

// TestMakeMoveDetectsCheckmate builds the classic two-rook ladder mate and
// checks that the delivering move is reported as Checkmate with the
// mover as winner.
func TestMakeMoveDetectsCheckmate(t *testing.T) {
	reg := leaderAndRookRegistry()
	leaderID, rookID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("a1")},
			{Piece: rookID, Color: White, Square: MakeSquare("a8")},
			{Piece: rookID, Color: White, Square: MakeSquare("b6")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("b6"), MakeSquare("b7"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, Checkmate, res.Status)
	assert.True(t, res.HasWinner)
	assert.Equal(t, White, res.Winner)
}

// TestMakeMoveDetectsStalemate builds the classic king-and-queen
// stalemate trick (White to move delivers Qb6, Black to move next has no
// legal moves and is not in check).
func TestMakeMoveDetectsStalemate(t *testing.T) {
	reg := leaderAndQueenRegistry()
	leaderID, queenID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("c7")},
			{Piece: queenID, Color: White, Square: MakeSquare("b1")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("a8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("b1"), MakeSquare("b6"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, Stalemate, res.Status)
	assert.False(t, res.HasWinner)
}

// TestMakeMoveStalemateLosesWhenRuleSet checks the StalemateLoses global
// rule turns the same stalemating move into a loss for the stalemated
// side instead of a draw.
func TestMakeMoveStalemateLosesWhenRuleSet(t *testing.T) {
	reg := leaderAndQueenRegistry()
	leaderID, queenID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:      8,
		Height:     8,
		Registry:   reg,
		GlobalRules: piece.GlobalRules{StalemateLoses: true},
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("c7")},
			{Piece: queenID, Color: White, Square: MakeSquare("b1")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("a8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("b1"), MakeSquare("b6"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, Stalemate, res.Status)
	assert.True(t, res.HasWinner)
	assert.Equal(t, White, res.Winner)
}

// TestMakeMoveInvertsWinnerWhenRuleSet checks the misere-style InvertWins
// global rule: the same checkmating move that would normally hand White
// the win instead hands it to Black, the side that just got checkmated.
func TestMakeMoveInvertsWinnerWhenRuleSet(t *testing.T) {
	reg := leaderAndRookRegistry()
	leaderID, rookID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:       8,
		Height:      8,
		Registry:    reg,
		GlobalRules: piece.GlobalRules{InvertWins: true},
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("a1")},
			{Piece: rookID, Color: White, Square: MakeSquare("a8")},
			{Piece: rookID, Color: White, Square: MakeSquare("b6")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("b6"), MakeSquare("b7"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, Checkmate, res.Status)
	assert.True(t, res.HasWinner)
	assert.Equal(t, Black, res.Winner, "InvertWins hands the win to the checkmated side, not the mover")
}

// TestMakeMoveDetectsLeaderCapturedByExplosion places Black's leader next
// to a capture square a White bomber will land on: the capture itself
// targets an unrelated Black piece, but the resulting explosion also
// clears the adjacent Black leader square, which is exactly the kind of
// leader loss that isn't a checkmate (no check was ever given).
func TestMakeMoveDetectsLeaderCapturedByExplosion(t *testing.T) {
	reg := atomicRegistry()
	leaderID, bomberID := reg.All()[0].ID, reg.All()[1].ID
	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("a1")},
			{Piece: bomberID, Color: White, Square: MakeSquare("d4")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("e5")},
			{Piece: bomberID, Color: Black, Square: MakeSquare("d5")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("d4"), MakeSquare("d5"))
	assert.True(t, m.MoveType().IsCapture())
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, LeaderCaptured, res.Status)
	assert.True(t, res.HasWinner)
	assert.Equal(t, White, res.Winner)
	assert.Equal(t, SqNone, pos.LeaderSquare(Black))
}

// TestMakeMoveDetectsPieceInWinSquare checks a king-of-the-hill-style
// WinSquares declaration ends the game the moment the leader steps there,
// independent of material or check.
func TestMakeMoveDetectsPieceInWinSquare(t *testing.T) {
	leader := &piece.PieceDefinition{
		IsLeader: true,
		Value:    10_000,
		Attack:   piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}}},
		WinSquares: [ColorLength][]Square{
			White: {MakeSquare("d4")},
		},
	}
	leader.Translate = leader.Attack
	reg, err := piece.NewRegistry([]*piece.PieceDefinition{leader})
	assert.NoError(t, err)
	leaderID := reg.All()[0].ID

	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("d3")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	m := findMove(t, pos, MakeSquare("d3"), MakeSquare("d4"))
	res, err := MakeMove(pos, m)
	assert.NoError(t, err)
	assert.Equal(t, PieceInWinSquare, res.Status)
	assert.True(t, res.HasWinner)
	assert.Equal(t, White, res.Winner)
}

// TestMakeMoveDetectsRepetition shuffles a lone leader back and forth
// between two squares until the starting position recurs a third time.
func TestMakeMoveDetectsRepetition(t *testing.T) {
	leader := &piece.PieceDefinition{
		IsLeader: true,
		Value:    10_000,
		Attack:   piece.MovePattern{JumpDeltas: []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}}},
	}
	leader.Translate = leader.Attack
	reg, err := piece.NewRegistry([]*piece.PieceDefinition{leader})
	assert.NoError(t, err)
	leaderID := reg.All()[0].ID

	is := &piece.InitialState{
		Width:  8,
		Height: 8,
		Registry: reg,
		Placements: []piece.Placement{
			{Piece: leaderID, Color: White, Square: MakeSquare("a1")},
			{Piece: leaderID, Color: Black, Square: MakeSquare("h8")},
		},
		NextPlayer: White,
	}
	pos, err := position.Load(is)
	assert.NoError(t, err)

	shuffle := [][2]string{
		{"a1", "a2"}, {"h8", "h7"},
		{"a2", "a1"}, {"h7", "h8"},
		{"a1", "a2"}, {"h8", "h7"},
		{"a2", "a1"}, {"h7", "h8"},
		{"a1", "a2"}, {"h8", "h7"},
		{"a2", "a1"}, {"h7", "h8"},
	}
	var last Result
	for _, leg := range shuffle {
		m := findMove(t, pos, MakeSquare(leg[0]), MakeSquare(leg[1]))
		last, err = MakeMove(pos, m)
		assert.NoError(t, err)
	}
	assert.Equal(t, Repetition, last.Status)
}
