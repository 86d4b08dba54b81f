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

// Package position represents the mutable state of a game in progress: a
// board of declared pieces, whose move it is, castling/en-passant state,
// and a single-parent undo chain that lets MakeMove be reverted exactly by
// UnmakeMove. It uses a flat piece/color board plus per-piece-type
// bitboards, a Zobrist hash updated incrementally, and a history chain for
// undo and repetition detection - the same structure as the reference
// engine's position/position.go, generalized from fixed 8x8 chess to a
// ruleset loaded at runtime.
package position

import (
	"fmt"
	"strings"

	"github.com/tpeters/vareng/internal/apperrors"
	"github.com/tpeters/vareng/internal/assert"
	"github.com/tpeters/vareng/internal/bitboard"
	"github.com/tpeters/vareng/internal/piece"
	"github.com/tpeters/vareng/internal/zobrist"

	. "github.com/tpeters/vareng/internal/types"
)

// Position is the mutable game state a MoveGenerator and Searcher operate
// on. Create one with Load.
type Position struct {
	width, height int
	boardMask     bitboard.Bitboard

	registry     *piece.Registry
	rules        piece.GlobalRules
	zobristTable *zobrist.Table

	sideToMove Color
	pieces     [ColorLength]*piece.Set

	pieceAt [SqNone]PieceTypeID
	colorAt [SqNone]Color

	leaderSquare [ColorLength]Square
	// rookHomeSquare[c][0|1] is the square a castling-eligible rook for
	// color c started on for side 0 ("kingside"-equivalent) / side 1
	// ("queenside"-equivalent), fixed at Load time. SqNone if the loaded
	// ruleset's leader has no declared partner for that side.
	rookHomeSquare [ColorLength][2]Square

	castlingRights CastlingRights
	epSquare       Square
	epVictim       Square
	halfMoveClock  int
	zobristKey     Key
	hasCastled     [ColorLength]bool

	properties *properties
}

// Load builds a Position from a ruleset's initial state. It returns an
// error if the state fails piece.InitialState.Validate.
func Load(initial *piece.InitialState) (*Position, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPosition, err)
	}

	boardMask := bitboard.BoardMask(initial.Width, initial.Height)
	for _, sq := range initial.InvalidSquares {
		boardMask = boardMask.Pop(sq)
	}

	p := &Position{
		width:        initial.Width,
		height:       initial.Height,
		boardMask:    boardMask,
		registry:     initial.Registry,
		rules:        initial.GlobalRules,
		zobristTable: zobrist.NewTable(initial.Registry.Len()),
		sideToMove:   initial.NextPlayer,
		epSquare:     SqNone,
		epVictim:     SqNone,
	}
	if initial.EpSquareAndVictim != nil {
		p.epSquare = initial.EpSquareAndVictim.Square
		p.epVictim = initial.EpSquareAndVictim.Victim
	}
	p.pieces[White] = piece.NewSet(initial.Registry)
	p.pieces[Black] = piece.NewSet(initial.Registry)
	for sq := Square(0); sq < SqNone; sq++ {
		p.pieceAt[sq] = PieceTypeNone
	}
	p.leaderSquare[White] = SqNone
	p.leaderSquare[Black] = SqNone

	for _, pl := range initial.Placements {
		p.putPiece(pl.Color, pl.Piece, pl.Square)
	}

	p.computeRookHomeSquares(initial)

	p.castlingRights = initial.CastlingRights
	p.zobristKey ^= p.zobristTable.CastlingRights(int(p.castlingRights))
	if p.epSquare != SqNone {
		p.zobristKey ^= p.zobristTable.EnPassantFile(p.epSquare.FileOf())
	}
	if p.sideToMove == Black {
		p.zobristKey ^= p.zobristTable.SideToMove()
	}

	return p, nil
}

// computeRookHomeSquares records, for each color and castling side, the
// square a declared castling-rook partner starts on - the square that
// must stay undisturbed for that side's right to remain valid. The
// reference engine hardcodes these as SqA1/SqH1/SqA8/SqH8; here the file
// comes from the leader's own PieceDefinition and the rank from wherever
// the leader was actually placed, so it generalizes to any board size or
// starting rank a ruleset declares.
func (p *Position) computeRookHomeSquares(initial *piece.InitialState) {
	for c := White; c <= Black; c++ {
		p.rookHomeSquare[c][0] = SqNone
		p.rookHomeSquare[c][1] = SqNone
		leaderSq := p.leaderSquare[c]
		if leaderSq == SqNone {
			continue
		}
		leaderDef := p.registry.Get(p.pieceAt[leaderSq])
		if leaderDef == nil || !leaderDef.IsLeader {
			continue
		}
		rank := leaderSq.RankOf()
		for side := 0; side < 2; side++ {
			file := leaderDef.CastleRookFile[c][side]
			if file == FileNone {
				continue
			}
			sq := SquareOf(file, rank)
			if p.pieceAt[sq] != PieceTypeNone && p.colorAt[sq] == c && p.registry.Get(p.pieceAt[sq]).IsCastleRook {
				p.rookHomeSquare[c][side] = sq
			}
		}
	}
}

// ////////////////////////////////////////////////////////////
// Read-only accessors
// ////////////////////////////////////////////////////////////

// Width and Height return the loaded board's dimensions.
func (p *Position) Width() int  { return p.width }
func (p *Position) Height() int { return p.height }

// BoardMask returns the bitmask of squares that belong to the loaded
// board (see bitboard.BoardMask).
func (p *Position) BoardMask() bitboard.Bitboard { return p.boardMask }

// Registry returns the loaded piece-type registry.
func (p *Position) Registry() *piece.Registry { return p.registry }

// Rules returns the loaded ruleset's global win/loss rules.
func (p *Position) Rules() piece.GlobalRules { return p.rules }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// PieceAt returns the piece type and color occupying sq, or
// (PieceTypeNone, White) if sq is empty.
func (p *Position) PieceAt(sq Square) (PieceTypeID, Color) {
	return p.pieceAt[sq], p.colorAt[sq]
}

// Pieces returns the PieceSet for color c.
func (p *Position) Pieces(c Color) *piece.Set {
	return p.pieces[c]
}

// Occupied returns the union of both colors' occupied squares.
func (p *Position) Occupied() bitboard.Bitboard {
	return p.pieces[White].All.Or(p.pieces[Black].All)
}

// LeaderSquare returns the current square of color c's leader piece, or
// SqNone if it has already been captured.
func (p *Position) LeaderSquare(c Color) Square {
	return p.leaderSquare[c]
}

// RookHomeSquare returns the fixed castling-partner square for color c's
// given side (0 or 1), or SqNone if that ruleset declares none.
func (p *Position) RookHomeSquare(c Color, side int) Square {
	return p.rookHomeSquare[c][side]
}

// CastlingRights returns the current castling-rights bitmask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// HasCastled reports whether color c has completed a castling move at any
// point so far in the game, for the evaluator's castling bonus.
func (p *Position) HasCastled(c Color) bool { return p.hasCastled[c] }

// EpSquare returns the current en-passant-capturable square, or SqNone.
func (p *Position) EpSquare() Square { return p.epSquare }

// EpVictim returns the square of the piece a capture of EpSquare would
// remove, or SqNone if no en-passant capture is currently available.
func (p *Position) EpVictim() Square { return p.epVictim }

// ZobristKey returns the position's current incremental hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// HalfMoveClock returns the number of plies since the last irreversible
// move (capture, double-jump or promotion; castling does not reset it), used to bound the
// repetition scan in NumRepetitions.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// LastMove returns the most recently made move, or MoveNone if the undo
// chain is empty.
func (p *Position) LastMove() Move {
	if p.properties == nil {
		return MoveNone
	}
	return p.properties.movePlayed
}

// LastCapturedPiece returns the piece type and color captured by the last
// move, or (PieceTypeNone, White) if the last move did not capture or
// there is no history.
func (p *Position) LastCapturedPiece() (PieceTypeID, Color) {
	if p.properties == nil {
		return PieceTypeNone, White
	}
	return p.properties.capturedPiece, p.properties.capturedColor
}

// WasCapturingMove reports whether the last move captured a piece.
func (p *Position) WasCapturingMove() bool {
	id, _ := p.LastCapturedPiece()
	return id != PieceTypeNone
}

// NumRepetitions counts occurrences of the current Zobrist key among
// earlier positions with the same side to move, stopping at the most
// recent irreversible move - mirroring the reference engine's
// Position.CheckRepetitions, generalized to report a count rather than a
// threshold test.
func (p *Position) NumRepetitions() int {
	count := 0
	node := p.properties
	if node != nil {
		node = node.previous
	}
	lastHalfMove := p.halfMoveClock
	for node != nil {
		if node.halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = node.halfMoveClock
		if node.zobristKey == p.zobristKey {
			count++
		}
		if node.previous == nil {
			break
		}
		node = node.previous.previous
	}
	return count
}

// ////////////////////////////////////////////////////////////
// Mutation
// ////////////////////////////////////////////////////////////

// MakeMove commits m to the position. The caller is responsible for
// having generated m as at least pseudo-legal; no legality check is
// performed here (see internal/movegen for that).
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	mover := p.pieceAt[from]
	moverColor := p.colorAt[from]
	pd := p.registry.Get(mover)

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position: MakeMove called with invalid move %s", m.String())
		assert.Assert(mover != PieceTypeNone, "position: MakeMove: no piece on %s for move %s", from.String(), m.String())
	}

	prev := &properties{
		zobristKey:     p.zobristKey,
		movePlayed:     m,
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		epVictim:       p.epVictim,
		halfMoveClock:  p.halfMoveClock,
		hasCastled:     p.hasCastled,
		moverPiece:     mover,
		capturedPiece:  PieceTypeNone,
		previous:       p.properties,
	}

	if p.epSquare != SqNone {
		p.zobristKey ^= p.zobristTable.EnPassantFile(p.epSquare.FileOf())
		p.epSquare = SqNone
		p.epVictim = SqNone
	}

	switch m.MoveType() {
	case Quiet:
		p.updateCastlingRightsOnMoveFrom(moverColor, pd, from)
		p.halfMoveClock++
		p.relocatePiece(from, to)

	case DoubleJump:
		p.updateCastlingRightsOnMoveFrom(moverColor, pd, from)
		p.halfMoveClock = 0
		p.relocatePiece(from, to)
		mid := intermediateSquare(from, to)
		p.epSquare = mid
		p.epVictim = to
		p.zobristKey ^= p.zobristTable.EnPassantFile(mid.FileOf())

	case Capture:
		target := m.Target()
		capturedID, capturedColor := p.removePiece(target)
		prev.capturedPiece = capturedID
		prev.capturedColor = capturedColor
		p.updateCastlingRightsOnCapture(capturedColor, target)
		p.updateCastlingRightsOnMoveFrom(moverColor, pd, from)
		p.halfMoveClock = 0
		if pd.Explodes {
			p.removePiece(from)
			prev.moverExploded = true
			prev.exploded = p.explode(to, pd)
		} else {
			p.relocatePiece(from, to)
		}

	case Promotion:
		p.updateCastlingRightsOnMoveFrom(moverColor, pd, from)
		p.removePiece(from)
		p.putPiece(moverColor, m.PromotionType(), to)
		p.halfMoveClock = 0

	case PromotionCapture:
		target := m.Target()
		capturedID, capturedColor := p.removePiece(target)
		prev.capturedPiece = capturedID
		prev.capturedColor = capturedColor
		p.updateCastlingRightsOnCapture(capturedColor, target)
		p.updateCastlingRightsOnMoveFrom(moverColor, pd, from)
		p.removePiece(from)
		p.putPiece(moverColor, m.PromotionType(), to)
		p.halfMoveClock = 0

	case CastleKingside, CastleQueenside:
		side := 0
		if m.MoveType() == CastleQueenside {
			side = 1
		}
		rookSq := p.rookHomeSquare[moverColor][side]
		rookID, _ := p.removePiece(rookSq)
		p.relocatePiece(from, to)
		rookDestSq := SquareOf(castleRookDestFile(from, to, rookSq), to.RankOf())
		p.putPiece(moverColor, rookID, rookDestSq)
		p.clearCastlingRights(colorRightsMask(moverColor))
		p.hasCastled[moverColor] = true
		p.halfMoveClock++

	case Null:
		// no board change
	}

	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= p.zobristTable.SideToMove()
	p.properties = prev
}

// UnmakeMove reverts the effect of the last MakeMove call.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(p.properties != nil, "position: UnmakeMove called with empty undo chain")
	}
	prev := p.properties
	m := prev.movePlayed
	from, to := m.From(), m.To()
	moverColor := p.sideToMove.Flip()

	switch m.MoveType() {
	case Quiet, DoubleJump:
		p.relocatePiece(to, from)

	case Capture:
		if prev.moverExploded {
			for _, e := range prev.exploded {
				p.putPiece(e.color, e.piece, e.square)
			}
			p.putPiece(prev.capturedColor, prev.capturedPiece, m.Target())
			p.putPiece(moverColor, prev.moverPiece, from)
		} else {
			p.relocatePiece(to, from)
			p.putPiece(prev.capturedColor, prev.capturedPiece, m.Target())
		}

	case Promotion:
		p.removePiece(to)
		p.putPiece(moverColor, prev.moverPiece, from)

	case PromotionCapture:
		p.removePiece(to)
		p.putPiece(moverColor, prev.moverPiece, from)
		p.putPiece(prev.capturedColor, prev.capturedPiece, m.Target())

	case CastleKingside, CastleQueenside:
		side := 0
		if m.MoveType() == CastleQueenside {
			side = 1
		}
		rookSq := p.rookHomeSquare[moverColor][side]
		rookDestSq := SquareOf(castleRookDestFile(from, to, rookSq), to.RankOf())
		p.relocatePiece(rookDestSq, rookSq)
		p.relocatePiece(to, from)

	case Null:
		// no board change
	}

	p.sideToMove = moverColor
	p.zobristKey = prev.zobristKey
	p.castlingRights = prev.castlingRights
	p.epSquare = prev.epSquare
	p.epVictim = prev.epVictim
	p.halfMoveClock = prev.halfMoveClock
	p.hasCastled = prev.hasCastled
	p.properties = prev.previous
}

// MakeNullMove flips the side to move without changing the board, for
// use by the searcher's null-move pruning.
func (p *Position) MakeNullMove() {
	prev := &properties{
		zobristKey:     p.zobristKey,
		movePlayed:     CreateNullMove(),
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		epVictim:       p.epVictim,
		halfMoveClock:  p.halfMoveClock,
		hasCastled:     p.hasCastled,
		moverPiece:     PieceTypeNone,
		capturedPiece:  PieceTypeNone,
		previous:       p.properties,
	}
	if p.epSquare != SqNone {
		p.zobristKey ^= p.zobristTable.EnPassantFile(p.epSquare.FileOf())
		p.epSquare = SqNone
		p.epVictim = SqNone
	}
	p.halfMoveClock++
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= p.zobristTable.SideToMove()
	p.properties = prev
}

// UnmakeNullMove reverts MakeNullMove.
func (p *Position) UnmakeNullMove() {
	if assert.DEBUG {
		assert.Assert(p.properties != nil, "position: UnmakeNullMove called with empty undo chain")
	}
	prev := p.properties
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey = prev.zobristKey
	p.castlingRights = prev.castlingRights
	p.epSquare = prev.epSquare
	p.epVictim = prev.epVictim
	p.halfMoveClock = prev.halfMoveClock
	p.properties = prev.previous
}

// ////////////////////////////////////////////////////////////
// Internal board bookkeeping
// ////////////////////////////////////////////////////////////

func (p *Position) putPiece(c Color, id PieceTypeID, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.pieceAt[sq] == PieceTypeNone, "position: putPiece on occupied square %s", sq.String())
	}
	pd := p.registry.Get(id)
	p.pieces[c].Add(id, sq)
	p.pieceAt[sq] = id
	p.colorAt[sq] = c
	p.zobristKey ^= p.zobristTable.Piece(c, id, sq)
	p.pieces[c].Material += pd.Value
	if pd.IsLeader {
		p.leaderSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) (PieceTypeID, Color) {
	id := p.pieceAt[sq]
	c := p.colorAt[sq]
	if assert.DEBUG {
		assert.Assert(id != PieceTypeNone, "position: removePiece from empty square %s", sq.String())
	}
	pd := p.registry.Get(id)
	p.pieces[c].Remove(id, sq)
	p.pieceAt[sq] = PieceTypeNone
	p.zobristKey ^= p.zobristTable.Piece(c, id, sq)
	p.pieces[c].Material -= pd.Value
	if pd.IsLeader && p.leaderSquare[c] == sq {
		p.leaderSquare[c] = SqNone
	}
	return id, c
}

func (p *Position) relocatePiece(from, to Square) {
	id, c := p.removePiece(from)
	p.putPiece(c, id, to)
}

// explode clears every non-immune piece within capturingPd's explosion
// deltas of center, recording each one for UnmakeMove to restore.
func (p *Position) explode(center Square, capturingPd *piece.PieceDefinition) []exploded {
	var out []exploded
	for _, d := range capturingPd.ExplosionDeltas {
		sq := d.Apply(center)
		if sq == SqNone || !p.boardMask.Has(sq) {
			continue
		}
		id := p.pieceAt[sq]
		if id == PieceTypeNone {
			continue
		}
		def := p.registry.Get(id)
		if def.ImmuneToExplosion {
			continue
		}
		color := p.colorAt[sq]
		out = append(out, exploded{square: sq, piece: id, color: color})
		p.removePiece(sq)
	}
	return out
}

func (p *Position) clearCastlingRights(mask CastlingRights) {
	if p.castlingRights&mask == 0 {
		return
	}
	p.zobristKey ^= p.zobristTable.CastlingRights(int(p.castlingRights))
	p.castlingRights.Remove(mask)
	p.zobristKey ^= p.zobristTable.CastlingRights(int(p.castlingRights))
}

func (p *Position) updateCastlingRightsOnMoveFrom(c Color, pd *piece.PieceDefinition, from Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	if pd.IsLeader {
		p.clearCastlingRights(colorRightsMask(c))
		return
	}
	if !pd.IsCastleRook {
		return
	}
	if from == p.rookHomeSquare[c][0] {
		p.clearCastlingRights(ForSide(c, 0))
	}
	if from == p.rookHomeSquare[c][1] {
		p.clearCastlingRights(ForSide(c, 1))
	}
}

func (p *Position) updateCastlingRightsOnCapture(capturedColor Color, sq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	if sq == p.rookHomeSquare[capturedColor][0] {
		p.clearCastlingRights(ForSide(capturedColor, 0))
	}
	if sq == p.rookHomeSquare[capturedColor][1] {
		p.clearCastlingRights(ForSide(capturedColor, 1))
	}
}

func colorRightsMask(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// castleRookDestFile returns the file the castling rook lands on: the
// file adjacent to the leader's destination, on the side the rook came
// from (the square the leader passed over).
func castleRookDestFile(leaderFrom, leaderTo, rookFrom Square) File {
	dir := sign(int(rookFrom.FileOf()) - int(leaderFrom.FileOf()))
	return File(int(leaderTo.FileOf()) - dir)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// intermediateSquare returns the square a double-jump passes over - the
// midpoint of a straight file or rank move - the square a DoubleJump's
// resulting en-passant target refers to.
func intermediateSquare(from, to Square) Square {
	ff, fr := int(from.FileOf()), int(from.RankOf())
	tf, tr := int(to.FileOf()), int(to.RankOf())
	return SquareOf(File((ff+tf)/2), Rank((fr+tr)/2))
}

// String renders the board as a rank-descending grid with each square's
// piece glyph, followed by a short state summary - the generalized
// counterpart of the reference engine's Position.String/StringBoard
// (which hardcode an 8x8 chessboard and FEN string that have no
// equivalent for a ruleset with no standard notation).
func (p *Position) String() string {
	var sb strings.Builder
	for r := p.height - 1; r >= 0; r-- {
		for f := 0; f < p.width; f++ {
			sq := SquareOf(File(f), Rank(r))
			id, c := p.pieceAt[sq], p.colorAt[sq]
			sb.WriteString("| ")
			if id == PieceTypeNone {
				sb.WriteString(".")
			} else {
				sb.WriteString(p.registry.Get(id).Glyph[c])
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(fmt.Sprintf("side to move: %s  castling: %s  ep: %s\n",
		p.sideToMove.String(), p.castlingRights.String(), p.epSquare.String()))
	return sb.String()
}
