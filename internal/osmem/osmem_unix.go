//go:build linux || darwin

package osmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PageSize reports the platform's page size in bytes.
func PageSize() int {
	return unix.Getpagesize()
}

// Reserve reserves max bytes of private anonymous address space, unmapped
// (PROT_NONE) until committed by ExtendBreak. max is rounded up to a page
// boundary by the kernel; callers should pick a ceiling generous enough that
// a long-lived process never exhausts it, since the region never shrinks.
func Reserve(max int) (*Region, error) {
	if max <= 0 {
		return nil, fmt.Errorf("osmem: reserve size must be positive, got %d", max)
	}
	b, err := unix.Mmap(-1, 0, max, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("osmem: reserve %d bytes: %w", max, err)
	}
	return &Region{base: b}, nil
}

// ExtendBreak advances the committed prefix of the region by exactly
// deltaBytes (it does not round deltaBytes to a page multiple) and returns the
// region's new committed byte slice (spec's new end_brk). It never shrinks
// the region and never moves previously committed bytes.
func (r *Region) ExtendBreak(deltaBytes int) ([]byte, error) {
	if r == nil || r.closed {
		return nil, ErrRegionClosed
	}
	if deltaBytes <= 0 {
		return r.Bytes(), nil
	}
	newCommitted := r.committed + deltaBytes
	if newCommitted > len(r.base) {
		return nil, ErrReserveExhausted
	}
	if err := unix.Mprotect(r.base[r.committed:newCommitted], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return nil, fmt.Errorf("osmem: mprotect commit: %w", err)
	}
	r.committed = newCommitted
	return r.Bytes(), nil
}

// Release unmaps the entire reservation. Not used in normal operation
// (spec.md's heap is monotonically non-decreasing for the life of the
// process) but kept for tests and for graceful shutdown of short-lived
// allocator instances.
func (r *Region) Release() error {
	if r == nil || r.closed {
		return nil
	}
	err := unix.Munmap(r.base)
	r.closed = true
	r.base = nil
	r.committed = 0
	return err
}

// MapAnonymous creates a new private, read/write, page-aligned anonymous
// mapping of exactly size bytes, used for the large-allocation path.
func MapAnonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("osmem: map size must be positive, got %d", size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("osmem: map %d bytes: %w", size, err)
	}
	return b, nil
}

// Unmap releases a mapping previously returned by MapAnonymous.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("osmem: unmap: %w", err)
	}
	return nil
}
