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

// Command vareng is a small demonstration and benchmarking binary: it
// loads the standard chess starting position and runs one search on it,
// either to a fixed depth or for a fixed amount of time, and prints the
// result. It is not a UCI or XBoard engine - there is no protocol loop
// here, just a single search invocation driven by command line flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tpeters/vareng/internal/config"
	"github.com/tpeters/vareng/internal/logging"
	"github.com/tpeters/vareng/internal/piece"
	"github.com/tpeters/vareng/internal/position"
	"github.com/tpeters/vareng/internal/search"

	. "github.com/tpeters/vareng/internal/types"
)

// engineVersion has no build-time injection machinery behind it - the
// reference engine's internal/version package stamps this from git tags
// via ldflags, but nothing in this repository's build sets those flags,
// so this is a plain constant instead.
const engineVersion = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "print version and exit")
	depth := flag.Int("depth", 0, "fixed search depth\nif zero, -movetime is used instead")
	moveTime := flag.Float64("movetime", 3.0, "search time in seconds\nignored if -depth is set")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	pos, err := position.Load(standardChessStart())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load starting position:", err)
		os.Exit(1)
	}

	s := search.NewSearcher()

	var pv []Move
	var scoreCp, depthReached int
	start := time.Now()
	if *depth > 0 {
		pv, scoreCp, depthReached = s.BestMoveFixedDepth(pos, *depth)
	} else {
		pv, scoreCp, depthReached = s.BestMoveTime(pos, *moveTime)
	}
	elapsed := time.Since(start)

	out.Println("vareng", engineVersion)
	out.Printf("depth reached : %d\n", depthReached)
	out.Printf("score (cp)    : %d\n", scoreCp)
	out.Printf("time          : %s\n", elapsed.Round(time.Millisecond))
	out.Print("principal variation :")
	for _, m := range pv {
		out.Printf(" %s", m.String())
	}
	out.Println()
}

// standardChessRegistry declares the six standard chess piece types as a
// Registry, the same declarative fixture internal/movegen's tests build
// orthodox chess out of.
func standardChessRegistry() (*piece.Registry, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition, *piece.PieceDefinition) {
	kingDeltas := []piece.Offset{{DFile: 0, DRank: 1}, {DFile: 0, DRank: -1}, {DFile: 1, DRank: 0}, {DFile: -1, DRank: 0}, {DFile: 1, DRank: 1}, {DFile: 1, DRank: -1}, {DFile: -1, DRank: 1}, {DFile: -1, DRank: -1}}
	knightDeltas := []piece.Offset{{DFile: 1, DRank: 2}, {DFile: 2, DRank: 1}, {DFile: -1, DRank: 2}, {DFile: -2, DRank: 1}, {DFile: 1, DRank: -2}, {DFile: 2, DRank: -1}, {DFile: -1, DRank: -2}, {DFile: -2, DRank: -1}}

	king := &piece.PieceDefinition{
		Glyph:    [ColorLength]string{"K", "k"},
		IsLeader: true,
		CastleRookFile: [ColorLength][2]File{
			White: {FileH, FileA},
			Black: {FileH, FileA},
		},
		Value:     20_000,
		Attack:    piece.MovePattern{JumpDeltas: kingDeltas},
		Translate: piece.MovePattern{JumpDeltas: kingDeltas},
	}
	queen := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"Q", "q"},
		Value:     900,
		Attack:    piece.MovePattern{Directions: Directions[:]},
		Translate: piece.MovePattern{Directions: Directions[:]},
	}
	rook := &piece.PieceDefinition{
		Glyph:        [ColorLength]string{"R", "r"},
		IsCastleRook: true,
		Value:        500,
		Attack:       piece.MovePattern{Directions: []Direction{North, South, East, West}},
		Translate:    piece.MovePattern{Directions: []Direction{North, South, East, West}},
	}
	bishop := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"B", "b"},
		Value:     330,
		Attack:    piece.MovePattern{Directions: []Direction{Northeast, Northwest, Southeast, Southwest}},
		Translate: piece.MovePattern{Directions: []Direction{Northeast, Northwest, Southeast, Southwest}},
	}
	knight := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"N", "n"},
		Value:     320,
		Attack:    piece.MovePattern{JumpDeltas: knightDeltas},
		Translate: piece.MovePattern{JumpDeltas: knightDeltas},
	}
	pawn := &piece.PieceDefinition{
		Glyph:     [ColorLength]string{"P", "p"},
		Value:     100,
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

func printVersionInfo() {
	out.Printf("vareng %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
