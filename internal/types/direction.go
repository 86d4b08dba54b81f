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

package types

// Direction is a linear-index delta on the 16-wide board grid used to step a
// Square one cell in a cardinal or diagonal direction. Unlike the reference
// engine's 8-wide Direction (North == 8), this board is always addressed as
// if it were 16 wide regardless of the configured playing area, so North is
// always a step of BoardDim squares - the playable rectangle is enforced by
// callers (Square.To and the attack tables), not by the direction deltas
// themselves.
type Direction int16

// The eight cardinal and diagonal directions a slider or jumper can move in.
const (
	North     Direction = BoardDim
	South     Direction = -North
	East      Direction = 1
	West      Direction = -East
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// Directions lists all eight compass directions in a stable order, used
// whenever attack tables or piece definitions need to iterate over all of
// them.
var Directions = [8]Direction{North, East, South, West, Northeast, Northwest, Southeast, Southwest}

// String returns a short label for the direction, mainly for debug logging.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Northwest:
		return "NW"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	default:
		return "-"
	}
}
