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

// Package tt implements the search's transposition table: a fixed number of
// buckets, each a small cluster of entries, indexed by Zobrist key modulo
// the bucket count. The reference engine (internal/transpositiontable)
// stores one entry per hash slot despite its config already naming an
// EntriesPerCluster; this package makes that clustering real, since a wide
// variant board produces far more distinct positions per fixed table size
// than 8x8 chess does and benefits more from a few alternative slots per
// index.
package tt

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/tpeters/vareng/internal/logging"
	. "github.com/tpeters/vareng/internal/types"
)

// maxLocks bounds how many stripe locks Table allocates; bucket writes
// striped across this many mutexes instead of one per bucket, mirroring
// the reference engine's lock-striping comments in transpositiontable/tt.go
// even though the reference implementation itself never actually stripes
// (it has no concurrent writers to protect against).
const maxLocks = 1024

// bucket is one cluster of entries sharing the same table index.
type bucket struct {
	entries []TtEntry
}

// Table is the transposition table. Reads are unsynchronized; the search
// tolerates a torn or stale read because every probe re-checks the key and
// a failed alpha-beta window triggers a re-search anyway. Writes are
// synchronized per bucket via a striped set of mutexes.
type Table struct {
	log               *logging.Logger
	buckets           []bucket
	entriesPerCluster int
	locks             []sync.Mutex

	numberOfEntries uint64
	stats           Stats
}

// Stats tracks usage counters, updated atomically so Probe can stay
// lock-free.
type Stats struct {
	puts       uint64
	updates    uint64
	collisions uint64
	overwrites uint64
	probes     uint64
	hits       uint64
	misses     uint64
}

// NewTable creates a Table with tableSize buckets of entriesPerCluster
// entries each.
func NewTable(tableSize, entriesPerCluster int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(tableSize, entriesPerCluster)
	return t
}

// Resize replaces the table with a fresh one of the given shape. All
// previous entries are lost. Not safe to call concurrently with Probe/Put.
func (t *Table) Resize(tableSize, entriesPerCluster int) {
	if tableSize < 0 {
		tableSize = 0
	}
	if entriesPerCluster <= 0 {
		entriesPerCluster = 1
	}
	t.entriesPerCluster = entriesPerCluster
	t.buckets = make([]bucket, tableSize)
	for i := range t.buckets {
		t.buckets[i].entries = make([]TtEntry, entriesPerCluster)
	}
	nLocks := tableSize
	if nLocks > maxLocks {
		nLocks = maxLocks
	}
	if nLocks < 1 {
		nLocks = 1
	}
	t.locks = make([]sync.Mutex, nLocks)
	atomic.StoreUint64(&t.numberOfEntries, 0)
	t.stats = Stats{}
	t.log.Info("tt resized to ", tableSize, " buckets x ", entriesPerCluster, " entries")
}

func (t *Table) index(key Key) int {
	if len(t.buckets) == 0 {
		return 0
	}
	return int(uint64(key) % uint64(len(t.buckets)))
}

func (t *Table) lockFor(idx int) *sync.Mutex {
	return &t.locks[idx%len(t.locks)]
}

// Probe returns the entry for key, if present. The returned pointer aliases
// table storage and must not be retained past the next Put to the same
// bucket.
func (t *Table) Probe(key Key) (*TtEntry, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	atomic.AddUint64(&t.stats.probes, 1)
	b := &t.buckets[t.index(key)]
	for i := range b.entries {
		e := &b.entries[i]
		if !e.empty() && e.Key == key {
			atomic.AddUint64(&t.stats.hits, 1)
			return e, true
		}
	}
	atomic.AddUint64(&t.stats.misses, 1)
	return nil, false
}

// Put stores a search result, following the cluster replacement policy:
// update a matching key if the new depth is at least as deep, else evict
// the shallowest ancient slot, else the shallowest slot of any kind.
func (t *Table) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if len(t.buckets) == 0 {
		return
	}
	idx := t.index(key)
	lock := t.lockFor(idx)
	lock.Lock()
	defer lock.Unlock()

	atomic.AddUint64(&t.stats.puts, 1)
	b := &t.buckets[idx]
	fresh := TtEntry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, ValueType: valueType}

	for i := range b.entries {
		e := &b.entries[i]
		if !e.empty() && e.Key == key {
			if depth >= e.Depth {
				atomic.AddUint64(&t.stats.updates, 1)
				*e = fresh
			}
			return
		}
	}

	for i := range b.entries {
		if b.entries[i].empty() {
			b.entries[i] = fresh
			atomic.AddUint64(&t.numberOfEntries, 1)
			return
		}
	}

	atomic.AddUint64(&t.stats.collisions, 1)
	replace := 0
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i].Ancient && !b.entries[replace].Ancient {
			replace = i
			continue
		}
		if b.entries[i].Ancient == b.entries[replace].Ancient && b.entries[i].Depth < b.entries[replace].Depth {
			replace = i
		}
	}
	atomic.AddUint64(&t.stats.overwrites, 1)
	b.entries[replace] = fresh
}

// Clear empties every entry and resets statistics.
func (t *Table) Clear() {
	for i := range t.buckets {
		for j := range t.buckets[i].entries {
			t.buckets[i].entries[j] = TtEntry{}
		}
	}
	atomic.StoreUint64(&t.numberOfEntries, 0)
	t.stats = Stats{}
}

// Hashfull reports how full the table is, in permille, as per UCI.
func (t *Table) Hashfull() int {
	capacity := uint64(len(t.buckets)) * uint64(t.entriesPerCluster)
	if capacity == 0 {
		return 0
	}
	return int((1000 * atomic.LoadUint64(&t.numberOfEntries)) / capacity)
}

// Len returns the number of occupied entries.
func (t *Table) Len() uint64 {
	return atomic.LoadUint64(&t.numberOfEntries)
}

// AgeEntries toggles the Ancient bit of every occupied entry, marking the
// table's current contents as belonging to the iteration that just
// finished. Work is fanned out across a fixed number of goroutines, each
// aging a contiguous slice of buckets, directly adapted from the reference
// engine's TtTable.AgeEntries.
func (t *Table) AgeEntries() {
	start := time.Now()
	if len(t.buckets) == 0 {
		return
	}
	const numberOfGoroutines = 32
	n := numberOfGoroutines
	if n > len(t.buckets) {
		n = len(t.buckets)
	}
	var wg sync.WaitGroup
	wg.Add(n)
	slice := len(t.buckets) / n
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			lo := i * slice
			hi := lo + slice
			if i == n-1 {
				hi = len(t.buckets)
			}
			for bi := lo; bi < hi; bi++ {
				b := &t.buckets[bi]
				for ei := range b.entries {
					if !b.entries[ei].empty() {
						b.entries[ei].Ancient = !b.entries[ei].Ancient
					}
				}
			}
		}(i)
	}
	wg.Wait()
	t.log.Debug("aged tt entries in ", time.Since(start))
}

// String returns a short usage summary.
func (t *Table) String() string {
	return fmt.Sprintf("TT: buckets %d x %d entries %d (%d%%) puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		len(t.buckets), t.entriesPerCluster, t.Len(), t.Hashfull()/10,
		atomic.LoadUint64(&t.stats.puts), atomic.LoadUint64(&t.stats.updates), atomic.LoadUint64(&t.stats.collisions),
		atomic.LoadUint64(&t.stats.overwrites), atomic.LoadUint64(&t.stats.probes), atomic.LoadUint64(&t.stats.hits), atomic.LoadUint64(&t.stats.misses))
}
