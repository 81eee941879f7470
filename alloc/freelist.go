package alloc

// The free list is a doubly-linked, strictly address-ordered list of free
// blocks threaded through each block's own header (prev/next fields carry
// list neighbors, never physical neighbors). Because Free coalesces
// eagerly, no two free blocks are ever physically adjacent: the address
// ordering lets both findFit's scan and the coalescing checks in Free treat
// "list-adjacent" and "address-adjacent" as the same relationship once an
// insertion point has been located.

// findFit returns the offset of the first free block (lowest address) whose
// payload is at least n bytes, or noOffset if none fits.
func (a *Allocator) findFit(data []byte, n int64) int64 {
	for off := a.freeHead; off != noOffset; off = readNext(data, off) {
		if payloadSize(readLength(data, off)) >= n {
			return off
		}
	}
	return noOffset
}

// locate scans the free list for the insertion point of off: the highest
// free offset below off (prev) and the lowest free offset above it (next).
// off itself must not currently be in the list.
func (a *Allocator) locate(data []byte, off int64) (prev, next int64) {
	prev = noOffset
	next = noOffset
	for cur := a.freeHead; cur != noOffset; cur = readNext(data, cur) {
		if cur > off {
			next = cur
			return prev, next
		}
		prev = cur
	}
	return prev, noOffset
}

// linkBetween splices a free block at off into the list between prev and
// next, which must already be the list's real neighbors at that position.
func (a *Allocator) linkBetween(data []byte, prev, off, next int64) {
	writePrev(data, off, prev)
	writeNext(data, off, next)
	if prev == noOffset {
		a.freeHead = off
	} else {
		writeNext(data, prev, off)
	}
	if next != noOffset {
		writePrev(data, next, off)
	}
}

// unlink removes the free block at off from the list using its own header's
// prev/next fields.
func (a *Allocator) unlink(data []byte, off int64) {
	p := readPrev(data, off)
	n := readNext(data, off)
	if p == noOffset {
		a.freeHead = n
	} else {
		writeNext(data, p, n)
	}
	if n != noOffset {
		writePrev(data, n, p)
	}
}

// insertSorted inserts a brand-new free block at off (not derived from an
// existing list node's neighbors) at its correct address-ordered position.
// Used when extending the heap with a freshly grown tail block.
func (a *Allocator) insertSorted(data []byte, off int64) {
	prev, next := a.locate(data, off)
	a.linkBetween(data, prev, off, next)
}

// lastFree returns the offset of the highest-address free block, or
// noOffset if the free list is empty.
func (a *Allocator) lastFree(data []byte) int64 {
	last := noOffset
	for cur := a.freeHead; cur != noOffset; cur = readNext(data, cur) {
		last = cur
	}
	return last
}
