package intervalset

import (
	"errors"
	"fmt"

	"github.com/henderiw/rangeset/pkg/idrange"
)

// Builder collects raw (from, to) pairs. Every invalid pair is remembered so
// the caller sees all of them at once; a batch with any invalid pair does not
// produce a set.
type Builder struct {
	opts []Option
	in   []idrange.Range
	errs error
}

func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

func (b *Builder) Add(from, to uint64) {
	r, err := idrange.RangeFrom(from, to)
	if err != nil {
		b.errs = errors.Join(b.errs, fmt.Errorf("addRange(%d-%d): %w", from, to, err))
		return
	}
	b.in = append(b.in, r)
}

func (b *Builder) AddRange(r idrange.Range) {
	b.in = append(b.in, r)
}

// Set returns the set built from all added ranges, or the joined errors of
// every invalid pair.
func (b *Builder) Set() (*Set, error) {
	if b.errs != nil {
		return nil, b.errs
	}
	return FromRanges(b.in, b.opts...), nil
}
