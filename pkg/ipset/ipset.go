package ipset

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/henderiw/rangeset/pkg/idrange"
	"github.com/henderiw/rangeset/pkg/intervalset"
	"go4.org/netipx"
)

// IPSet tracks which IPv4 addresses are covered by a collection of address
// ranges. Addresses are mapped onto their 32 bit value so the ranges are
// merged and queried by an intervalset.Set.
type IPSet interface {
	InsertRange(r netipx.IPRange) error
	InsertPrefix(p netip.Prefix) error
	ParseAndInsert(s string) error

	Contains(addr netip.Addr) bool
	Count() uint64
	Ranges() []netipx.IPRange
}

func New(opts ...intervalset.Option) IPSet {
	return &ipSet{
		set: intervalset.New(opts...),
	}
}

type ipSet struct {
	set *intervalset.Set
}

func (r *ipSet) InsertRange(ipRange netipx.IPRange) error {
	rng, err := r.validateRange(ipRange)
	if err != nil {
		return err
	}
	r.set.Insert(rng)
	return nil
}

func (r *ipSet) InsertPrefix(p netip.Prefix) error {
	if !p.IsValid() {
		return fmt.Errorf("prefix %s is invalid", p.String())
	}
	return r.InsertRange(netipx.RangeOfPrefix(p))
}

// ParseAndInsert accepts either a "from-to" address range or a prefix.
func (r *ipSet) ParseAndInsert(s string) error {
	if p, err := netip.ParsePrefix(s); err == nil {
		return r.InsertPrefix(p)
	}
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		return fmt.Errorf("%q is neither an ip range nor a prefix: %w", s, err)
	}
	return r.InsertRange(ipRange)
}

func (r *ipSet) Contains(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}
	return r.set.Contains(ipToID(addr))
}

func (r *ipSet) Count() uint64 {
	return r.set.TotalCoveredCount()
}

func (r *ipSet) Ranges() []netipx.IPRange {
	var ranges []netipx.IPRange
	iter := r.set.Iterate()
	for iter.Next() {
		rng := iter.Range()
		ranges = append(ranges, netipx.IPRangeFrom(idToIP(rng.From()), idToIP(rng.To())))
	}
	return ranges
}

func (r *ipSet) validateRange(ipRange netipx.IPRange) (idrange.Range, error) {
	if !ipRange.IsValid() {
		return idrange.Range{}, fmt.Errorf("ip range %s is invalid", ipRange.String())
	}
	if !ipRange.From().Is4() || !ipRange.To().Is4() {
		return idrange.Range{}, fmt.Errorf("ip range %s is not an ipv4 range", ipRange.String())
	}
	return idrange.RangeFrom(ipToID(ipRange.From()), ipToID(ipRange.To()))
}

func ipToID(addr netip.Addr) uint64 {
	a4 := addr.As4()
	return uint64(binary.BigEndian.Uint32(a4[:]))
}

func idToIP(id uint64) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], uint32(id))
	return netip.AddrFrom4(a4)
}
