package intervalset

import (
	"github.com/google/btree"
	"github.com/henderiw/rangeset/pkg/idrange"
)

const treeDegree = 2

// Set is an ordered set of disjoint id ranges keyed by their lower bound.
//
// Inserting a range merges it with every stored range it overlaps, so a
// point is covered iff the stored range with the greatest lower bound <= the
// point reaches it. A Set is not safe for concurrent insertion; once all
// inserts are done it may be shared read-only.
type Set struct {
	ranges        *btree.BTreeG[idrange.Range]
	mergeAdjacent bool
}

type Option func(*Set)

// WithAdjacentMerge makes the set also merge ranges that touch without
// overlapping, e.g. 3-5 and 6-8 are stored as 3-8.
func WithAdjacentMerge() Option {
	return func(s *Set) {
		s.mergeAdjacent = true
	}
}

func New(opts ...Option) *Set {
	s := &Set{
		ranges: btree.NewG(treeDegree, lessFrom),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FromRanges returns a set holding the union of rr.
func FromRanges(rr []idrange.Range, opts ...Option) *Set {
	s := New(opts...)
	for _, r := range rr {
		s.Insert(r)
	}
	return s
}

func lessFrom(a, b idrange.Range) bool {
	return a.From() < b.From()
}

// pivot returns a search key for lower bound id.
func pivot(id uint64) idrange.Range {
	return idrange.MustRangeFrom(id, id)
}

// Clone returns a copy of the set; later inserts in either are not visible in
// the other.
func (s *Set) Clone() *Set {
	return &Set{
		ranges:        s.ranges.Clone(),
		mergeAdjacent: s.mergeAdjacent,
	}
}

// Insert adds r to the set, merging it with the stored ranges it overlaps
// (or touches, with WithAdjacentMerge).
func (s *Set) Insert(r idrange.Range) {
	merged := r

	// stored ranges starting inside r, or right after it when merging
	// adjacent ranges
	var replaced []idrange.Range
	s.ranges.AscendGreaterOrEqual(pivot(r.From()), func(item idrange.Range) bool {
		if item.From() > r.To() && !(s.mergeAdjacent && item.Touches(r)) {
			return false
		}
		replaced = append(replaced, item)
		return true
	})
	for _, item := range replaced {
		s.ranges.Delete(item)
		merged = merged.Union(item)
	}

	// the range starting before r may still reach into it
	if prev, ok := s.predecessor(r.From()); ok {
		if prev.To() >= r.From() || (s.mergeAdjacent && prev.Touches(r)) {
			s.ranges.Delete(prev)
			merged = merged.Union(prev)
		}
	}

	s.ranges.ReplaceOrInsert(merged)
}

// predecessor returns the stored range with the greatest lower bound <= id.
func (s *Set) predecessor(id uint64) (idrange.Range, bool) {
	var (
		found idrange.Range
		ok    bool
	)
	s.ranges.DescendLessOrEqual(pivot(id), func(item idrange.Range) bool {
		found, ok = item, true
		return false
	})
	return found, ok
}

// Contains reports whether id is covered by a stored range.
func (s *Set) Contains(id uint64) bool {
	_, ok := s.Covering(id)
	return ok
}

// Covering returns the stored range covering id, if any.
func (s *Set) Covering(id uint64) (idrange.Range, bool) {
	r, ok := s.predecessor(id)
	if !ok || id > r.To() {
		return idrange.Range{}, false
	}
	return r, true
}

// CountContained returns how many of ids are covered by the set.
func (s *Set) CountContained(ids []uint64) int {
	count := 0
	for _, id := range ids {
		if s.Contains(id) {
			count++
		}
	}
	return count
}

// TotalCoveredCount returns the number of distinct ids covered by the set.
// The count saturates at math.MaxUint64.
func (s *Set) TotalCoveredCount() uint64 {
	var total uint64
	s.ranges.Ascend(func(item idrange.Range) bool {
		total = idrange.SaturatingAdd(total, item.Size())
		return true
	})
	return total
}

// Len returns the number of stored (merged) ranges.
func (s *Set) Len() int {
	return s.ranges.Len()
}

// Ranges returns the stored ranges in ascending order.
func (s *Set) Ranges() []idrange.Range {
	rr := make([]idrange.Range, 0, s.ranges.Len())
	s.ranges.Ascend(func(item idrange.Range) bool {
		rr = append(rr, item)
		return true
	})
	return rr
}

func (s *Set) Iterate() *Iterator {
	return &Iterator{current: -1, ranges: s.Ranges()}
}
