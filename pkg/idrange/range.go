package idrange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a range would have its lower bound above
// its upper bound.
var ErrInvalidRange = errors.New("invalid range")

// Range is an inclusive range of ids [from, to]. A Range obtained from this
// package always satisfies from <= to.
type Range struct {
	from uint64
	to   uint64
}

// RangeFrom returns the inclusive range [from, to].
func RangeFrom(from, to uint64) (Range, error) {
	if from > to {
		return Range{}, fmt.Errorf("%w: from %d is bigger than to %d", ErrInvalidRange, from, to)
	}
	return Range{from: from, to: to}, nil
}

// MustRangeFrom is like RangeFrom but panics on an invalid range.
func MustRangeFrom(from, to uint64) Range {
	r, err := RangeFrom(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRange parses a range in the "from-to" form, e.g. "10-14".
func ParseRange(s string) (Range, error) {
	var r Range
	s = strings.TrimSpace(s)
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+1:])
	fromUint64, err := strconv.ParseUint(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid from id %q in range %q", from, s)
	}
	toUint64, err := strconv.ParseUint(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid to id %q in range %q", to, s)
	}
	return RangeFrom(fromUint64, toUint64)
}

// From returns the lower bound of r.
func (r Range) From() uint64 { return r.from }

// To returns the upper bound of r.
func (r Range) To() uint64 { return r.to }

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

// Size returns the number of ids covered by r. The one range that covers the
// whole uint64 space reports math.MaxUint64.
func (r Range) Size() uint64 {
	size, overflow := myuint64(r.to - r.from).addOne()
	if overflow {
		return math.MaxUint64
	}
	return uint64(size)
}

// Contains reports whether id lies within r.
func (r Range) Contains(id uint64) bool {
	return r.from <= id && id <= r.to
}

// Overlaps reports whether r and other share at least one id.
func (r Range) Overlaps(other Range) bool {
	return max(r.from, other.from) <= min(r.to, other.to)
}

// Touches reports whether r and other are adjacent without overlapping,
// e.g. 3-5 and 6-8.
func (r Range) Touches(other Range) bool {
	if next, overflow := myuint64(r.to).addOne(); !overflow && uint64(next) == other.from {
		return true
	}
	if next, overflow := myuint64(other.to).addOne(); !overflow && uint64(next) == r.from {
		return true
	}
	return false
}

// Less orders ranges by lower bound, then by upper bound.
func (r Range) Less(other Range) bool {
	if r.from != other.from {
		return r.from < other.from
	}
	return r.to < other.to
}

// EntirelyBefore returns whether r lies entirely before other.
func (r Range) EntirelyBefore(other Range) bool {
	return r.to < other.from
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range) CoveredBy(other Range) bool {
	return other.from <= r.from && r.to <= other.to
}

// Union returns the smallest range spanning both r and other. The ids in
// between are included even if r and other do not overlap.
func (r Range) Union(other Range) Range {
	return Range{
		from: min(r.from, other.from),
		to:   max(r.to, other.to),
	}
}

// SaturatingAdd adds two sizes, clamping at math.MaxUint64.
func SaturatingAdd(a, b uint64) uint64 {
	return uint64(myuint64(a).saturatingAdd(myuint64(b)))
}
