package idrange

import (
	"errors"
	"math"
	"testing"

	"github.com/tj/assert"
)

func TestRangeFrom(t *testing.T) {
	cases := map[string]struct {
		from         uint64
		to           uint64
		expectedSize uint64
		expectedErr  bool
	}{
		"Normal": {
			from:         3,
			to:           5,
			expectedSize: 3,
		},
		"SingleID": {
			from:         7,
			to:           7,
			expectedSize: 1,
		},
		"Reversed": {
			from:        5,
			to:          3,
			expectedErr: true,
		},
		"FullSpace": {
			from:         0,
			to:           math.MaxUint64,
			expectedSize: math.MaxUint64,
		},
		"Top": {
			from:         math.MaxUint64 - 1,
			to:           math.MaxUint64,
			expectedSize: 2,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := RangeFrom(tc.from, tc.to)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.from, r.From())
			assert.Equal(t, tc.to, r.To())
			if r.Size() != tc.expectedSize {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedSize, r.Size())
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		input       string
		expected    Range
		expectedErr error
	}{
		"Normal": {
			input:    "10-14",
			expected: Range{from: 10, to: 14},
		},
		"Spaces": {
			input:    " 3 - 5 ",
			expected: Range{from: 3, to: 5},
		},
		"NoHyphen": {
			input:       "10",
			expectedErr: errors.New("no hyphen"),
		},
		"BadFrom": {
			input:       "a-5",
			expectedErr: errors.New("invalid from id"),
		},
		"BadTo": {
			input:       "5-",
			expectedErr: errors.New("invalid to id"),
		},
		"Negative": {
			input:       "-5-3",
			expectedErr: errors.New("invalid from id"),
		},
		"Reversed": {
			input:       "5-3",
			expectedErr: ErrInvalidRange,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseRange(tc.input)
			if tc.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tc.expectedErr, ErrInvalidRange) {
					assert.True(t, errors.Is(err, ErrInvalidRange))
				} else {
					assert.Contains(t, err.Error(), tc.expectedErr.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, r)
			assert.Equal(t, tc.expected.String(), r.String())
		})
	}
}

func TestRelations(t *testing.T) {
	a := MustRangeFrom(3, 5)
	b := MustRangeFrom(6, 8)
	c := MustRangeFrom(5, 10)
	d := MustRangeFrom(4, 4)

	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Touches(b))
	assert.True(t, b.Touches(a))
	assert.True(t, a.Overlaps(c))
	assert.False(t, a.Touches(c))
	assert.True(t, b.Overlaps(c))

	assert.True(t, a.EntirelyBefore(b))
	assert.False(t, a.EntirelyBefore(c))
	assert.True(t, d.CoveredBy(a))
	assert.False(t, a.CoveredBy(d))
	assert.True(t, a.Less(b))
	assert.True(t, d.Less(c))
	assert.True(t, a.Less(MustRangeFrom(3, 6)))

	assert.Equal(t, MustRangeFrom(3, 8), a.Union(b))
	assert.Equal(t, MustRangeFrom(3, 10), c.Union(a))

	assert.True(t, a.Contains(3))
	assert.True(t, a.Contains(5))
	assert.False(t, a.Contains(6))
	assert.False(t, a.Contains(2))
}

func TestTouchesAtLimits(t *testing.T) {
	top := MustRangeFrom(math.MaxUint64-1, math.MaxUint64)
	bottom := MustRangeFrom(0, 1)

	assert.False(t, top.Touches(bottom))
	assert.False(t, bottom.Touches(top))
	assert.True(t, MustRangeFrom(2, math.MaxUint64-2).Touches(top))
	assert.True(t, MustRangeFrom(0, math.MaxUint64).Overlaps(top))
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint64(14), SaturatingAdd(3, 11))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64-1, 1))
}
