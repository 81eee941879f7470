package alloc

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats is a point-in-time snapshot of an Allocator's bookkeeping counters,
// grounded in the source's allocatorStats/EfficiencyStats: coarse enough to
// answer "is this allocator healthy" without walking the heap.
type Stats struct {
	// HeapBytes is the total committed size of the program-break-style heap.
	HeapBytes int64
	// UsedBytes is the sum of payload bytes currently handed out to callers,
	// across both the heap and large allocations.
	UsedBytes int64
	// Allocations and Frees count heap-path Alloc/Free calls (Calloc and the
	// copying branch of Realloc count as Allocations too).
	Allocations int64
	Frees       int64
	// Grows counts heap-growth events (internal/osmem.Region.ExtendBreak calls).
	Grows int64
	// LargeAllocations and LargeFrees count the direct-mmap fast path.
	LargeAllocations int64
	LargeFrees       int64
}

// Stats returns a snapshot of the allocator's counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.stats
	if a.region != nil {
		s.HeapBytes = int64(a.region.Len())
	}
	return s
}

// FreeBlocks reports the current number of free blocks threaded through the
// heap's free list. It walks the list under lock, so it is O(n) in the
// number of free blocks; intended for diagnostics and tests, not hot paths.
func (a *Allocator) FreeBlocks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.region == nil {
		return 0
	}
	data := a.region.Bytes()
	n := 0
	for off := a.freeHead; off != noOffset; off = readNext(data, off) {
		n++
	}
	return n
}

// String renders s with thousand-separated byte counts, e.g.
// "heap=1,048,576 used=262,144 allocs=12 frees=3 grows=1 large_allocs=0 large_frees=0".
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	fmt.Fprintf(&b, "heap=%s used=%s allocs=%s frees=%s grows=%s large_allocs=%s large_frees=%s",
		p.Sprintf("%d", s.HeapBytes),
		p.Sprintf("%d", s.UsedBytes),
		p.Sprintf("%d", s.Allocations),
		p.Sprintf("%d", s.Frees),
		p.Sprintf("%d", s.Grows),
		p.Sprintf("%d", s.LargeAllocations),
		p.Sprintf("%d", s.LargeFrees),
	)
	return b.String()
}
