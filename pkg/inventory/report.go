package inventory

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/idrange"
	"github.com/henderiw/rangeset/pkg/intervalset"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	LabelStatus = "status"
	LabelRange  = "range"

	StatusFresh   = "fresh"
	StatusSpoiled = "spoiled"
)

type Entry interface {
	ID() uint64
	Labels() labels.Set
	IsFresh() bool
	String() string
}

type entry struct {
	id     uint64
	labels labels.Set
}

type Entries []Entry

func (r entry) ID() uint64         { return r.id }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) IsFresh() bool      { return r.labels[LabelStatus] == StatusFresh }
func (r entry) String() string     { return fmt.Sprintf("id: %d, labels: %s", r.id, r.labels.String()) }

func newEntry(id uint64, covering idrange.Range, fresh bool) Entry {
	if !fresh {
		return entry{id: id, labels: labels.Set{LabelStatus: StatusSpoiled}}
	}
	return entry{id: id, labels: labels.Set{
		LabelStatus: StatusFresh,
		LabelRange:  covering.String(),
	}}
}

// Report holds the outcome of an evaluation: the merged fresh ranges and the
// verdict for every available id, in input order.
type Report struct {
	ranges     []idrange.Range
	totalFresh uint64
	fresh      int
	entries    Entries
}

func newReport(set *intervalset.Set, ids []uint64, fresh []bool) *Report {
	r := &Report{
		ranges:     set.Ranges(),
		totalFresh: set.TotalCoveredCount(),
		entries:    make(Entries, 0, len(ids)),
	}
	for i, id := range ids {
		var covering idrange.Range
		if fresh[i] {
			r.fresh++
			covering, _ = set.Covering(id)
		}
		r.entries = append(r.entries, newEntry(id, covering, fresh[i]))
	}
	return r
}

// Fresh returns how many available ids fall in a fresh range.
func (r *Report) Fresh() int { return r.fresh }

// Spoiled returns how many available ids fall in no fresh range.
func (r *Report) Spoiled() int { return len(r.entries) - r.fresh }

// TotalFresh returns how many distinct ids the fresh ranges cover.
func (r *Report) TotalFresh() uint64 { return r.totalFresh }

// Ranges returns the merged fresh ranges in ascending order.
func (r *Report) Ranges() []idrange.Range {
	return append([]idrange.Range{}, r.ranges...)
}

func (r *Report) Entries() Entries {
	return append(Entries{}, r.entries...)
}

func (r *Report) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}
	for _, e := range r.entries {
		if selector.Matches(e.Labels()) {
			entries = append(entries, e)
		}
	}
	return entries
}
