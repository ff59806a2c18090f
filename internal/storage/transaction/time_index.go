package transaction

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/btree"
)

const timeIndexDegree = 32

// timeKey orders entries by creation time, then id, so records sharing a
// timestamp never collide.
type timeKey struct {
	at time.Time
	id int64
}

func timeKeyLess(a, b timeKey) bool {
	if !a.at.Equal(b.at) {
		return a.at.Before(b.at)
	}
	return a.id < b.id
}

// timeIndex is an insert-only ordered index. Writers serialise on mu and
// publish a copy-on-write clone after each insert; readers only ever touch
// a published clone, which is never mutated.
type timeIndex struct {
	mu       sync.Mutex
	tree     *btree.BTreeG[timeKey]
	snapshot atomic.Pointer[btree.BTreeG[timeKey]]
}

func newTimeIndex() *timeIndex {
	ix := &timeIndex{tree: btree.NewG(timeIndexDegree, timeKeyLess)}
	ix.snapshot.Store(ix.tree.Clone())
	return ix
}

func (ix *timeIndex) insert(at time.Time, id int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.tree.ReplaceOrInsert(timeKey{at: at, id: id})
	ix.snapshot.Store(ix.tree.Clone())
}

// descend visits every id, newest first, until fn returns false.
func (ix *timeIndex) descend(fn func(id int64) bool) {
	ix.snapshot.Load().Descend(func(k timeKey) bool {
		return fn(k.id)
	})
}

// descendRange visits ids with start <= createdAt <= end, newest first.
func (ix *timeIndex) descendRange(start, end time.Time, fn func(id int64) bool) {
	if end.Before(start) {
		return
	}
	// ids start at 1, so {start, 0} sorts below every key stamped at start.
	upper := timeKey{at: end, id: math.MaxInt64}
	lower := timeKey{at: start, id: 0}
	ix.snapshot.Load().DescendRange(upper, lower, func(k timeKey) bool {
		return fn(k.id)
	})
}
