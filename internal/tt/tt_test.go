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

package tt

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpeters/vareng/internal/config"
	. "github.com/tpeters/vareng/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestNewTableShape(t *testing.T) {
	table := NewTable(16, 4)
	assert.Len(t, table.buckets, 16)
	assert.Equal(t, 4, table.entriesPerCluster)
	for _, b := range table.buckets {
		assert.Len(t, b.entries, 4)
	}
}

func TestPutThenProbeRoundTrips(t *testing.T) {
	table := NewTable(64, 4)
	key := Key(12345)
	table.Put(key, MoveNone, 5, Value(100), ValueTypeExact, Value(90))

	e, found := table.Probe(key)
	assert.True(t, found)
	assert.Equal(t, key, e.Key)
	assert.Equal(t, Value(100), e.Value)
	assert.Equal(t, Value(90), e.Eval)
	assert.Equal(t, int8(5), e.Depth)
	assert.Equal(t, ValueTypeExact, e.ValueType)
	assert.EqualValues(t, uint64(1), table.Len())
}

func TestProbeMissReturnsFalse(t *testing.T) {
	table := NewTable(64, 4)
	_, found := table.Probe(Key(999))
	assert.False(t, found)
}

func TestPutSameKeyWithDeeperDepthOverwrites(t *testing.T) {
	table := NewTable(64, 4)
	key := Key(7)
	table.Put(key, MoveNone, 3, Value(10), ValueTypeExact, Value(10))
	table.Put(key, MoveNone, 8, Value(20), ValueTypeExact, Value(20))

	e, found := table.Probe(key)
	assert.True(t, found)
	assert.Equal(t, Value(20), e.Value)
	assert.Equal(t, int8(8), e.Depth)
	assert.EqualValues(t, uint64(1), table.Len())
}

func TestPutSameKeyWithShallowerDepthIsIgnored(t *testing.T) {
	table := NewTable(64, 4)
	key := Key(7)
	table.Put(key, MoveNone, 8, Value(20), ValueTypeExact, Value(20))
	table.Put(key, MoveNone, 3, Value(10), ValueTypeExact, Value(10))

	e, found := table.Probe(key)
	assert.True(t, found)
	assert.Equal(t, Value(20), e.Value)
	assert.Equal(t, int8(8), e.Depth)
}

// keysForBucket finds entriesPerCluster+1 distinct keys that all hash to
// the same bucket, so a cluster overflow can be exercised deterministically.
func keysForBucket(table *Table, bucketIdx int, count int) []Key {
	keys := make([]Key, 0, count)
	n := uint64(len(table.buckets))
	for k := uint64(0); len(keys) < count; k++ {
		if k%n == uint64(bucketIdx) {
			keys = append(keys, Key(k))
		}
	}
	return keys
}

func TestClusterOverflowEvictsShallowestAncientFirst(t *testing.T) {
	table := NewTable(8, 4)
	keys := keysForBucket(table, 0, 5)

	for i, k := range keys[:4] {
		table.Put(k, MoveNone, int8(1+i), Value(i), ValueTypeExact, Value(i))
	}
	assert.EqualValues(t, uint64(4), table.Len())

	table.AgeEntries()

	table.Put(keys[4], MoveNone, 2, Value(-1), ValueTypeExact, Value(-1))

	_, evicted := table.Probe(keys[0])
	assert.False(t, evicted, "shallowest ancient entry should have been evicted")

	for _, k := range keys[1:4] {
		_, found := table.Probe(k)
		assert.True(t, found)
	}
	_, found := table.Probe(keys[4])
	assert.True(t, found)
}

func TestClearResetsTable(t *testing.T) {
	table := NewTable(16, 4)
	table.Put(Key(1), MoveNone, 4, Value(1), ValueTypeExact, Value(1))
	assert.EqualValues(t, uint64(1), table.Len())

	table.Clear()
	assert.EqualValues(t, uint64(0), table.Len())
	_, found := table.Probe(Key(1))
	assert.False(t, found)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := NewTable(10, 4)
	assert.Equal(t, 0, table.Hashfull())
	for i := 0; i < 10; i++ {
		table.Put(Key(i), MoveNone, 1, Value(i), ValueTypeExact, Value(i))
	}
	assert.Equal(t, 250, table.Hashfull())
}

func TestZeroSizeTableIsANoOp(t *testing.T) {
	table := NewTable(0, 4)
	table.Put(Key(1), MoveNone, 4, Value(1), ValueTypeExact, Value(1))
	_, found := table.Probe(Key(1))
	assert.False(t, found)
	assert.Equal(t, 0, table.Hashfull())
}

func TestConcurrentPutsDoNotRace(t *testing.T) {
	table := NewTable(64, 4)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Put(Key(i), MoveNone, int8(i%8), Value(i), ValueTypeExact, Value(i))
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, table.Len(), uint64(64*4))
}
