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

// evalConfiguration holds the tunable bonuses and maluses the evaluator
// applies on top of raw material. Unlike the teacher engine this does not
// assume pawns, bishops or a fixed board size - bonuses are named after the
// generic piece concepts the rules layer exposes (leaders, jumpers, sliders).
type evalConfiguration struct {
	Tempo int

	UseMaterial bool
	// LeaderValueMultiplier scales a leader piece's declared Value in the
	// material score, over and above what it's worth to ordinary capture
	// accounting, so that losing the leader dominates the score well
	// before the searcher detects the terminal condition directly.
	LeaderValueMultiplier int

	UseMobility   bool
	MobilityBonus int

	UseCastlingBonus bool
	CastlingBonus    int

	UseLeaderSafety    bool
	LeaderRingMalus    int
	LeaderShieldBonus  int

	EndgameThreshold int
	CheckmateBase    int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 10

	Settings.Eval.UseMaterial = true
	Settings.Eval.LeaderValueMultiplier = 1_000

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 2

	Settings.Eval.UseCastlingBonus = true
	Settings.Eval.CastlingBonus = 15

	Settings.Eval.UseLeaderSafety = true
	Settings.Eval.LeaderRingMalus = 10
	Settings.Eval.LeaderShieldBonus = 8

	Settings.Eval.EndgameThreshold = 3_000
	Settings.Eval.CheckmateBase = -1_000_000
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
	if Settings.Eval.EndgameThreshold <= 0 {
		Settings.Eval.EndgameThreshold = 3_000
	}
	if Settings.Eval.CheckmateBase == 0 {
		Settings.Eval.CheckmateBase = -1_000_000
	}
	if Settings.Eval.LeaderValueMultiplier <= 0 {
		Settings.Eval.LeaderValueMultiplier = 1_000
	}
}
