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

package piece

import (
	"fmt"

	. "github.com/tpeters/vareng/internal/types"
)

// Registry is the ordered set of PieceDefinitions a loaded ruleset
// declares, assigning each one a PieceTypeID starting at
// PieceTypeOffset. It plays the role the reference engine's fixed
// PieceType enum and its pieceTypeValue/pieceTypeToString package-level
// arrays play, but built at load time instead of compiled in.
type Registry struct {
	defs []*PieceDefinition
}

// NewRegistry builds a Registry from an ordered list of definitions,
// assigning IDs in list order. Returns an error if the list is empty or
// exceeds MaxPieceTypes.
func NewRegistry(defs []*PieceDefinition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("piece registry: at least one piece definition is required")
	}
	if len(defs) > MaxPieceTypes {
		return nil, fmt.Errorf("piece registry: %d piece definitions exceeds the maximum of %d", len(defs), MaxPieceTypes)
	}
	r := &Registry{defs: make([]*PieceDefinition, len(defs))}
	for i, d := range defs {
		d.ID = PieceTypeOffset + PieceTypeID(i)
		d.blackAttack = mirror(d.Attack)
		d.blackTranslate = mirror(d.Translate)
		r.defs[i] = d
	}
	return r, nil
}

// Len returns the number of declared piece types.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Get returns the definition for id, or nil if id is PieceTypeNone or out
// of range.
func (r *Registry) Get(id PieceTypeID) *PieceDefinition {
	if id < PieceTypeOffset || int(id-PieceTypeOffset) >= len(r.defs) {
		return nil
	}
	return r.defs[id-PieceTypeOffset]
}

// All returns every declared definition in registration order.
func (r *Registry) All() []*PieceDefinition {
	return r.defs
}

// LeaderID returns the piece type id marked IsLeader for quick lookup by
// Position/MoveGenerator, or PieceTypeNone if no piece is so marked.
func (r *Registry) LeaderID() PieceTypeID {
	for _, d := range r.defs {
		if d.IsLeader {
			return d.ID
		}
	}
	return PieceTypeNone
}
