// Package blockindex aggregates collected blocks into ordered views keyed by
// height and by timestamp, with last-write-wins deduplication on both keys.
package blockindex

import (
	"sort"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

// Index holds every block collected during one run. Duplicate keys overwrite
// the previous entry; overwritten timestamps are counted so the true block
// total stays recoverable. The zero value is not usable, call New.
type Index struct {
	byHeight map[uint64]model.Block
	byTime   map[int64]model.Block
	// atTime keeps every block per timestamp, including the ones the byTime
	// map collapses away.
	atTime map[int64][]model.Block

	dupeTimestamps int
	earliest       int64
	hasEarliest    bool
}

// New returns an empty index with a zeroed duplicate-timestamp counter.
func New() *Index {
	return &Index{
		byHeight: make(map[uint64]model.Block),
		byTime:   make(map[int64]model.Block),
		atTime:   make(map[int64][]model.Block),
	}
}

// Insert adds a block to every view. It returns the entries displaced by key
// collisions, if any: prevHeight when a block already occupied this height,
// prevTime when a block already occupied this timestamp. A timestamp collision
// also increments the duplicate-timestamp counter.
func (x *Index) Insert(b model.Block) (prevHeight, prevTime *model.Block) {
	if old, ok := x.byHeight[b.Height]; ok {
		displaced := old
		prevHeight = &displaced
	}
	x.byHeight[b.Height] = b

	if old, ok := x.byTime[b.Time]; ok {
		displaced := old
		prevTime = &displaced
		x.dupeTimestamps++
	}
	x.byTime[b.Time] = b
	x.atTime[b.Time] = append(x.atTime[b.Time], b)

	if !x.hasEarliest || b.Time < x.earliest {
		x.earliest = b.Time
		x.hasEarliest = true
	}
	return prevHeight, prevTime
}

// Len reports the size of the by-time view.
func (x *Index) Len() int {
	return len(x.byTime)
}

// DuplicateTimestamps reports how many timestamp collisions occurred.
func (x *Index) DuplicateTimestamps() int {
	return x.dupeTimestamps
}

// TotalBlocks reports the true number of indexed blocks: the by-time view plus
// the entries it collapsed on timestamp collisions.
func (x *Index) TotalBlocks() int {
	return len(x.byTime) + x.dupeTimestamps
}

// EarliestTime returns the smallest timestamp ever inserted. The second
// return is false while the index is empty.
func (x *Index) EarliestTime() (int64, bool) {
	return x.earliest, x.hasEarliest
}

// ByHeightAsc returns the by-height view sorted by ascending height.
func (x *Index) ByHeightAsc() []model.Block {
	blocks := make([]model.Block, 0, len(x.byHeight))
	for _, b := range x.byHeight {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Height < blocks[j].Height })
	return blocks
}

// ByTimeAsc returns the by-time view sorted by ascending timestamp.
func (x *Index) ByTimeAsc() []model.Block {
	blocks := make([]model.Block, 0, len(x.byTime))
	for _, b := range x.byTime {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Time < blocks[j].Time })
	return blocks
}

// AtTime returns every block inserted with the given timestamp, in insertion
// order, including entries the by-time view overwrote.
func (x *Index) AtTime(ts int64) []model.Block {
	return x.atTime[ts]
}
