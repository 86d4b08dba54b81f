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

// Package game is the play-by-play layer atop Position and movegen: it
// classifies what a single move *means* for the game's outcome, the way
// treepeck-chego's game.Game wraps a raw Position with PushMove plus
// IsCheckmate/IsThreefoldRepetition for a caller that has to narrate why a
// game ended rather than just search it. internal/search only ever needs
// to know a position is terminal (no legal moves, or no leader); a UI or
// room server needs to know *which* terminal condition fired and who won.
package game

import (
	"github.com/tpeters/vareng/internal/apperrors"
	"github.com/tpeters/vareng/internal/movegen"
	"github.com/tpeters/vareng/internal/position"

	. "github.com/tpeters/vareng/internal/types"
)

// Status enumerates the outcomes MakeMove can report for a single move,
// mirroring the game-play layer's MakeMoveResult: Ok, IllegalMove,
// Checkmate, LeaderCaptured, PieceInWinSquare, CheckLimit, Stalemate,
// Repetition.
type Status int

const (
	// Ok means the move was applied and the game continues.
	Ok Status = iota
	// IllegalMove means m was not a member of the legal move set; pos is
	// left unchanged.
	IllegalMove
	// Checkmate means the mover delivered checkmate: the side now to move
	// has no legal moves and its leader is attacked.
	Checkmate
	// LeaderCaptured means the move left the opponent without its leader
	// piece, whether by capturing it or by an explosion that removed it (a
	// leader-capture variant, as opposed to checkmate).
	LeaderCaptured
	// PieceInWinSquare means the moved piece stepped onto one of its
	// declared WinSquares, an instant win independent of material.
	PieceInWinSquare
	// CheckLimit means the mover's opponent has now been placed in check
	// at least as many times as the ruleset's check-limit threshold
	// allows (an "N-check" variant rule). No loaded ruleset in this
	// engine currently sets such a threshold, so this status is never
	// produced today; it exists so callers can match on it exhaustively
	// once a ruleset adds one.
	CheckLimit
	// Stalemate means the side now to move has no legal moves and is not
	// in check. Winner/HasWinner are set only when the ruleset's
	// StalemateLoses rule turns this into a loss for that side rather
	// than a draw.
	Stalemate
	// Repetition means the resulting position has now occurred three or
	// more times; the game is drawn.
	Repetition
)

// String names a Status the way internal/types.Color.String names a
// color, for log lines and test failure messages.
func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case IllegalMove:
		return "IllegalMove"
	case Checkmate:
		return "Checkmate"
	case LeaderCaptured:
		return "LeaderCaptured"
	case PieceInWinSquare:
		return "PieceInWinSquare"
	case CheckLimit:
		return "CheckLimit"
	case Stalemate:
		return "Stalemate"
	case Repetition:
		return "Repetition"
	default:
		return "Unknown"
	}
}

// Result is what MakeMove reports back about the move it was asked to
// play.
type Result struct {
	Status    Status
	Winner    Color
	HasWinner bool
}

// MakeMove plays m on pos if (and only if) m is a legal move for the side
// to move, and classifies the resulting position per the game-play
// layer's terminal-condition rules. On IllegalMove, pos is left
// completely unchanged and apperrors.ErrIllegalMove is returned; every
// other Status leaves pos updated to reflect m having been played.
//
// Precedence when more than one terminal condition could apply to the
// same move (e.g. a move that both steps onto a win square and captures
// the enemy leader): PieceInWinSquare is checked first, then
// LeaderCaptured, then repetition, then checkmate/stalemate - reaching a
// declared win square ends the game outright regardless of what else the
// move also did.
func MakeMove(pos *position.Position, m Move) (Result, error) {
	if !isLegalMove(pos, m) {
		return Result{Status: IllegalMove}, apperrors.ErrIllegalMove
	}

	mover := pos.SideToMove()
	wins := movegen.IsWinningMove(pos, m)

	pos.MakeMove(m)

	if wins {
		return Result{Status: PieceInWinSquare, Winner: winnerOf(pos, mover), HasWinner: true}, nil
	}

	opponent := mover.Flip()
	if pos.LeaderSquare(opponent) == SqNone {
		return Result{Status: LeaderCaptured, Winner: winnerOf(pos, mover), HasWinner: true}, nil
	}

	if pos.NumRepetitions() >= 3 {
		return Result{Status: Repetition}, nil
	}

	if movegen.CountLegalMoves(pos) > 0 {
		return Result{Status: Ok}, nil
	}

	if movegen.InCheck(pos) {
		return Result{Status: Checkmate, Winner: winnerOf(pos, mover), HasWinner: true}, nil
	}
	if pos.Rules().StalemateLoses {
		return Result{Status: Stalemate, Winner: winnerOf(pos, mover), HasWinner: true}, nil
	}
	return Result{Status: Stalemate}, nil
}

// winnerOf resolves who actually wins a game-ending move made by mover,
// honoring the ruleset's InvertWins rule (misere-style variants where
// reaching what would normally be a win loses instead).
func winnerOf(pos *position.Position, mover Color) Color {
	if pos.Rules().InvertWins {
		return mover.Flip()
	}
	return mover
}

func isLegalMove(pos *position.Position, m Move) bool {
	for _, legal := range movegen.LegalMoves(pos) {
		if legal.From() == m.From() && legal.To() == m.To() &&
			legal.MoveType() == m.MoveType() && legal.PromotionType() == m.PromotionType() {
			return true
		}
	}
	return false
}
