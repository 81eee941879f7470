package alloc

import "github.com/bagnalla/bagnalloc/internal/osmem"

// growAndFit grows the heap enough to satisfy an n-byte request and returns
// the offset of a free block that now fits it, or noOffset if the
// underlying reservation is exhausted.
//
// The very first growth (an empty heap) installs exactly the page count the
// request needs, with no further rounding — matching the source allocator's
// init_heap, which acquires a single page via sbrk(page_size) before ever
// considering HEAP_GROWTH_INCREMENT. Every subsequent growth rounds its page
// count up to a multiple of heapGrowthIncrement, matching grow_heap's
// round_up_multof(pages, HEAP_GROWTH_INCREMENT): growth happens in coarse,
// predictable jumps rather than tracking each request's size exactly,
// trading a little wasted tail space for fewer, cheaper mmap/mprotect calls.
func (a *Allocator) growAndFit(n int64) int64 {
	need := n + headerSize
	pageSize := int64(a.pageSize)
	oldLen := int64(a.region.Len())

	pages := (need + pageSize - 1) / pageSize
	if oldLen > 0 {
		pages = ((pages + heapGrowthIncrement - 1) / heapGrowthIncrement) * heapGrowthIncrement
	}
	growBytes := pages * pageSize

	newData, err := a.region.ExtendBreak(int(growBytes))
	if err != nil {
		debugLogf("grow: failed to extend by %d bytes: %v", growBytes, err)
		return noOffset
	}
	debugLogf("grow: %d -> %d bytes (request %d)", oldLen, len(newData), n)
	a.stats.Grows++
	a.stats.HeapBytes = int64(len(newData))

	if tail := a.lastFree(newData); tail != noOffset && tail+headerSize+payloadSize(readLength(newData, tail)) == oldLen {
		// The heap's previous tail block was free: grow it in place rather
		// than create a new, physically-adjacent free block (which eager
		// coalescing forbids).
		writeLength(newData, tail, payloadSize(readLength(newData, tail))+growBytes)
	} else {
		newOff := oldLen
		writeLength(newData, newOff, growBytes-headerSize)
		a.insertSorted(newData, newOff)
	}
	return a.findFit(newData, n)
}

// ensureReserved lazily reserves the allocator's backing address space on
// first use, matching the source allocator's on-demand init_heap.
func (a *Allocator) ensureReserved() error {
	if a.region != nil {
		return nil
	}
	r, err := osmem.Reserve(a.reserveSize)
	if err != nil {
		return err
	}
	a.region = r
	a.freeHead = noOffset
	return nil
}
