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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool

	// Move ordering
	UsePVS      bool
	UseKiller   bool
	KillerPlies int
	UseHistory  bool

	CaptureBase     int
	KillerMoveScore int

	// Transposition Table
	UseTT             bool
	TableSize         int
	EntriesPerCluster int
	UseTTMove         bool
	UseTTValue        bool
	UseQSTT           bool

	// Null move pruning
	UseNullMove       bool
	NmpDepth          int
	NmpReduction      int
	NullMoveThreshold int

	// Late move reductions
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int

	// Iterative deepening
	MaxDepth int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.KillerPlies = 64
	Settings.Search.UseHistory = true

	Settings.Search.CaptureBase = 10_000
	Settings.Search.KillerMoveScore = 9_000

	Settings.Search.UseTT = true
	Settings.Search.TableSize = 1_500_000
	Settings.Search.EntriesPerCluster = 4
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true

	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2
	Settings.Search.NullMoveThreshold = 500

	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3

	Settings.Search.MaxDepth = 64
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.TableSize <= 0 {
		Settings.Search.TableSize = 1_500_000
	}
	if Settings.Search.EntriesPerCluster <= 0 {
		Settings.Search.EntriesPerCluster = 4
	}
	if Settings.Search.KillerPlies <= 0 {
		Settings.Search.KillerPlies = 64
	}
	if Settings.Search.MaxDepth <= 0 {
		Settings.Search.MaxDepth = 64
	}
}
