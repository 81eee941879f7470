// Package osmem wraps the OS-level primitives a heap allocator needs:
// a page-size query, a monotonically growing program-break region, and
// anonymous page-aligned mapping/unmapping for large allocations.
//
// The allocator core in package alloc never touches golang.org/x/sys/unix
// directly; it depends only on the Region type and the package-level
// PageSize, Reserve, MapAnonymous and Unmap functions, so the placement/coalescing logic can be tested without
// any OS dependency beyond what this package already exercises.
package osmem

import "errors"

// ErrReserveExhausted is returned by Region.ExtendBreak when growing the
// break would exceed the region's reserved address-space ceiling.
var ErrReserveExhausted = errors.New("osmem: break region exhausted")

// ErrRegionClosed is returned by operations on a Region after Release.
var ErrRegionClosed = errors.New("osmem: region already released")

// Region is a single reserved, contiguous range of virtual address space
// backing a program-break-style heap. Address space is reserved up front
// (PROT_NONE) and committed page-by-page via ExtendBreak, which is the
// idiomatic Go stand-in for sbrk: Go programs have no direct access to the
// process break, but can reserve a large private anonymous mapping and grow
// the committed prefix of it, which is observably equivalent for this
// allocator's purposes (a monotonically growing, never-shrinking span of
// addressable bytes).
type Region struct {
	base      []byte
	committed int
	closed    bool
}

// Bytes returns the committed prefix of the region: spec's [start_brk, end_brk).
func (r *Region) Bytes() []byte {
	if r == nil || r.closed {
		return nil
	}
	return r.base[:r.committed]
}

// Len returns the number of committed bytes (end_brk - start_brk).
func (r *Region) Len() int {
	if r == nil || r.closed {
		return 0
	}
	return r.committed
}

// Cap returns the total reserved size, regardless of how much is committed.
func (r *Region) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.base)
}
