package alloc

import (
	"fmt"
	"os"
	"sync"
)

var (
	debugOnce  sync.Once
	debugAlloc bool
)

// debugLogf writes a trace line to stderr when BAGNALLOC_LOG_ALLOC is set in
// the environment, mirroring the source's HIVE_LOG_ALLOC-gated debugAlloc
// switch: zero cost when unset, human-legible tracing when chasing a bug.
func debugLogf(format string, args ...any) {
	debugOnce.Do(func() {
		debugAlloc = os.Getenv("BAGNALLOC_LOG_ALLOC") != ""
	})
	if !debugAlloc {
		return
	}
	fmt.Fprintf(os.Stderr, "bagnalloc: "+format+"\n", args...)
}

// CheckInvariants walks the entire heap, block by block, verifying the
// structural invariants this allocator depends on. It is O(heap size) and is
// meant for tests and debug builds, not production hot paths.
func (a *Allocator) CheckInvariants() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.region == nil {
		return nil
	}
	data := a.region.Bytes()
	heapLen := int64(len(data))

	seenFree := make(map[int64]bool)
	wasFree := false
	var off int64
	for off = 0; off < heapLen; {
		length := readLength(data, off)
		size := payloadSize(length)
		if size < 0 || off+headerSize+size > heapLen {
			return fmt.Errorf("alloc: block at %d overruns heap (size=%d, heap=%d)", off, size, heapLen)
		}
		free := !isAllocatedLength(length)
		if free {
			if wasFree {
				return fmt.Errorf("alloc: adjacent free blocks at and before %d were not coalesced", off)
			}
			seenFree[off] = true
		}
		wasFree = free
		off += headerSize + size
	}
	if off != heapLen {
		return fmt.Errorf("alloc: last block does not end exactly at heap boundary (%d != %d)", off, heapLen)
	}

	count := 0
	prevOff := noOffset
	for cur := a.freeHead; cur != noOffset; cur = readNext(data, cur) {
		if !seenFree[cur] {
			return fmt.Errorf("alloc: free list references offset %d not marked free in the block walk", cur)
		}
		if prevOff != noOffset && prevOff >= cur {
			return fmt.Errorf("alloc: free list not strictly address-ordered at %d -> %d", prevOff, cur)
		}
		if readPrev(data, cur) != prevOff {
			return fmt.Errorf("alloc: free block %d has prev=%d, want %d", cur, readPrev(data, cur), prevOff)
		}
		prevOff = cur
		count++
	}
	if count != len(seenFree) {
		return fmt.Errorf("alloc: free list has %d nodes but block walk found %d free blocks", count, len(seenFree))
	}
	return nil
}
