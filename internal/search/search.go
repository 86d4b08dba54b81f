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

// Package search implements the engine's move search: iterative-deepening
// negamax alpha-beta with quiescence, transposition-table memoization,
// null-move pruning, principal-variation search with late move reductions,
// and killer/history move ordering. It follows the reference engine's
// internal/search in shape - a long-lived Searcher holding a TT, a history
// table and an evaluator across iterations, gated so only one search runs
// at a time - but drops everything that exists there only to serve a UCI
// protocol handler: the opening book, pondering, multi-PV, MTD(f) and
// aspiration-window root search, and the time-control machinery that reads
// engine-clock-style limits. This engine's callers ask for a fixed depth or
// a move-time budget directly, not through a protocol.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/tpeters/vareng/internal/config"
	"github.com/tpeters/vareng/internal/eval"
	"github.com/tpeters/vareng/internal/history"
	myLogging "github.com/tpeters/vareng/internal/logging"
	"github.com/tpeters/vareng/internal/position"
	"github.com/tpeters/vareng/internal/tt"
	. "github.com/tpeters/vareng/internal/types"
)

// Result is what one Run call produces: the best line found, its score from
// the side-to-move's perspective, and how deep iterative deepening reached
// before it was asked to stop.
type Result struct {
	BestMove Move
	PV       []Move
	Score    Value
	Depth    int
	Nodes    uint64
	Time     time.Duration
}

// Searcher holds the state that is worth keeping across searches: the
// transposition table and history heuristics both improve move ordering in
// later searches of the same game, so NewSearcher is meant to be called
// once per game, not once per move.
type Searcher struct {
	log *logging.Logger

	tt   *tt.Table
	hist *history.History
	eval *eval.Evaluator

	running *semaphore.Weighted

	killers [MaxDepth][2]Move
	pv      [MaxDepth + 1][]Move

	nodes uint64
	stop  bool
}

// NewSearcher builds a Searcher with a transposition table sized per
// Settings.Search.TableSize/EntriesPerCluster and a fresh history table.
func NewSearcher() *Searcher {
	return &Searcher{
		log:     myLogging.GetLog(),
		tt:      tt.NewTable(config.Settings.Search.TableSize, config.Settings.Search.EntriesPerCluster),
		hist:    history.NewHistory(),
		eval:    eval.NewEvaluator(),
		running: semaphore.NewWeighted(1),
	}
}

// NewGame resets the transposition table and history heuristics, for use
// when the Searcher is reused across an unrelated game.
func (s *Searcher) NewGame() {
	s.tt.Clear()
	s.hist = history.NewHistory()
}

// IsSearching reports whether a Run call currently holds the search lock.
func (s *Searcher) IsSearching() bool {
	if !s.running.TryAcquire(1) {
		return true
	}
	s.running.Release(1)
	return false
}

// BestMoveFixedDepth searches pos to the given depth, stopping at a shallower
// depth once an iteration finds a mate score, and returns the principal
// variation, its score in centipawns, and the depth reached.
func (s *Searcher) BestMoveFixedDepth(pos *position.Position, depth int) (pv []Move, scoreCp int, depthReached int) {
	res := s.Run(context.Background(), pos, Limits{Depth: depth})
	return res.PV, int(res.Score), res.Depth
}

// BestMoveTime searches pos for up to the given number of seconds, using
// iterative deepening to return the best result found before the budget
// runs out.
func (s *Searcher) BestMoveTime(pos *position.Position, seconds float64) (pv []Move, scoreCp int, depthReached int) {
	res := s.Run(context.Background(), pos, Limits{MoveTime: time.Duration(seconds * float64(time.Second))})
	return res.PV, int(res.Score), res.Depth
}

// Run performs one iterative-deepening search of pos under the given
// limits, blocking until any other Run call on this Searcher has finished.
// It stops early when ctx is cancelled or limits.MoveTime elapses, in which
// case it returns the best complete iteration found so far - at least one
// full depth-1 search is always completed before an early stop can apply.
func (s *Searcher) Run(ctx context.Context, pos *position.Position, limits Limits) Result {
	_ = s.running.Acquire(context.Background(), 1)
	defer s.running.Release(1)

	runCtx := ctx
	if limits.MoveTime > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, limits.MoveTime)
		defer cancel()
	}

	s.stop = false
	s.nodes = 0
	s.killers = [MaxDepth][2]Move{}
	for i := range s.pv {
		s.pv[i] = s.pv[i][:0]
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > config.Settings.Search.MaxDepth {
		maxDepth = config.Settings.Search.MaxDepth
	}

	start := time.Now()
	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		value := s.negamax(runCtx, pos, depth, 0, -ValueInf, ValueInf, true)
		if value == ValueNA {
			break
		}
		line := append([]Move(nil), s.pv[0]...)
		best = Result{PV: line, Score: value, Depth: depth, Nodes: s.nodes, Time: time.Since(start)}
		if len(line) > 0 {
			best.BestMove = line[0]
		}
		s.tt.AgeEntries()
		if value.IsCheckMateValue() || s.stop {
			break
		}
	}
	s.log.Debug("search finished: depth ", best.Depth, " score ", best.Score, " nodes ", best.Nodes)
	return best
}

func leaderWasCaptured(p *position.Position) bool {
	if !p.WasCapturingMove() {
		return false
	}
	capturedID, _ := p.LastCapturedPiece()
	pd := p.Registry().Get(capturedID)
	return pd != nil && pd.IsLeader
}

func isDrawByRepetitionOr50(p *position.Position) bool {
	return p.NumRepetitions() >= 2 || p.HalfMoveClock() >= 100
}
