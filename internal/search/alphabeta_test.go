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

package search

import (
	"context"
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"

	. "github.com/tpeters/vareng/internal/types"
)

// TestTimingProfile runs a deeper search under pprof's CPU profiler, the
// same defer profile.Start().Stop() pattern the reference engine's
// TestTiming uses to find negamax/quiescence hot spots. It writes a
// cpu.pprof into a temporary directory from t.TempDir; skip it in short mode since
// it searches several plies deeper than the other fixed-depth tests here.
func TestTimingProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CPU profile run in short mode")
	}

	defer profile.Start(profile.ProfilePath(t.TempDir())).Stop()

	pos := twoRookEndgamePosition(t)
	s := NewSearcher()
	res := s.Run(context.Background(), pos, Limits{Depth: 5})

	assert.NotEqual(t, MoveNone, res.BestMove)
	assert.Greater(t, res.Nodes, uint64(0))
}
