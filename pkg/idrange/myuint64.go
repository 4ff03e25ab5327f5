package idrange

import "math/bits"

type myuint64 uint64

// addOne returns u + 1 and whether the addition overflowed.
func (u myuint64) addOne() (myuint64, bool) {
	lo, carry := bits.Add64(uint64(u), 1, 0)
	return myuint64(lo), carry != 0
}

// saturatingAdd returns u + m, clamped to the largest uint64.
func (u myuint64) saturatingAdd(m myuint64) myuint64 {
	sum, carry := bits.Add64(uint64(u), uint64(m), 0)
	if carry != 0 {
		return myuint64(^uint64(0))
	}
	return myuint64(sum)
}
