package ipset

import (
	"net/netip"
	"testing"

	"github.com/henderiw/rangeset/pkg/intervalset"
	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestInsert(t *testing.T) {
	cases := map[string]struct {
		opts             []intervalset.Option
		newSuccessRanges []string
		newFailedRanges  []string
		contained        []string
		notContained     []string
		expectedCount    uint64
		expectedRanges   []string
	}{
		"Normal": {
			newSuccessRanges: []string{"10.0.0.10-10.0.0.20", "10.0.0.15-10.0.0.30"},
			newFailedRanges:  []string{"10.0.0.20-10.0.0.10", "2001:db8::1-2001:db8::5", "foo"},
			contained:        []string{"10.0.0.10", "10.0.0.20", "10.0.0.30"},
			notContained:     []string{"10.0.0.9", "10.0.0.31", "2001:db8::1"},
			expectedCount:    21,
			expectedRanges:   []string{"10.0.0.10-10.0.0.30"},
		},
		"Prefixes": {
			newSuccessRanges: []string{"192.168.0.0/24", "192.168.1.0/24", "192.168.0.128/25"},
			newFailedRanges:  []string{"2001:db8::/64"},
			contained:        []string{"192.168.0.0", "192.168.1.255"},
			notContained:     []string{"192.168.2.0"},
			expectedCount:    512,
			expectedRanges:   []string{"192.168.0.0-192.168.0.255", "192.168.1.0-192.168.1.255"},
		},
		"PrefixesMerged": {
			opts:             []intervalset.Option{intervalset.WithAdjacentMerge()},
			newSuccessRanges: []string{"192.168.0.0/24", "192.168.1.0/24"},
			expectedCount:    512,
			expectedRanges:   []string{"192.168.0.0-192.168.1.255"},
		},
		"WholeSpace": {
			newSuccessRanges: []string{"0.0.0.0/0"},
			contained:        []string{"0.0.0.0", "255.255.255.255"},
			expectedCount:    1 << 32,
			expectedRanges:   []string{"0.0.0.0-255.255.255.255"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := New(tc.opts...)

			for _, rng := range tc.newSuccessRanges {
				err := s.ParseAndInsert(rng)
				assert.NoError(t, err)
			}
			for _, rng := range tc.newFailedRanges {
				err := s.ParseAndInsert(rng)
				assert.Error(t, err)
			}
			for _, addr := range tc.contained {
				if !s.Contains(netip.MustParseAddr(addr)) {
					t.Errorf("%s expecting address to be covered: %s\n", name, addr)
				}
			}
			for _, addr := range tc.notContained {
				if s.Contains(netip.MustParseAddr(addr)) {
					t.Errorf("%s not expecting address to be covered: %s\n", name, addr)
				}
			}
			if s.Count() != tc.expectedCount {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedCount, s.Count())
			}
			var got []string
			for _, r := range s.Ranges() {
				got = append(got, r.String())
			}
			assert.Equal(t, tc.expectedRanges, got)
		})
	}
}

func TestInsertInvalid(t *testing.T) {
	s := New()
	assert.Error(t, s.InsertRange(netipx.IPRange{}))
	assert.Error(t, s.InsertPrefix(netip.Prefix{}))
	assert.Equal(t, uint64(0), s.Count())
}
