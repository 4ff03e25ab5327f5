package intervalset

import "github.com/henderiw/rangeset/pkg/idrange"

// Iterator walks a snapshot of the stored ranges in ascending order.
type Iterator struct {
	current int
	ranges  []idrange.Range
}

func (r *Iterator) Range() idrange.Range {
	return r.ranges[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.ranges)
}

// IsConsecutive reports whether the current range starts right after the
// previous one ends.
func (r *Iterator) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	return r.ranges[r.current-1].Touches(r.ranges[r.current])
}
