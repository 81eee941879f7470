// Package alloc implements a general-purpose dynamic memory allocator: a
// program-managed heap grown from the operating system via a program-break
// style region, with a first-fit, address-ordered free list, immediate
// neighbor coalescing, and a direct-mapped large-allocation fast path.
//
// # Overview
//
// The core abstraction is the Allocator type, which supports:
//
//   - Alloc(size): allocate size bytes, rounded up to an 8-byte multiple.
//   - Free(ptr): return a previously allocated block to the free list.
//   - Calloc(n, size): allocate n*size bytes, zeroed.
//   - Realloc(ptr, size): allocate size bytes, copy the overlapping prefix,
//     free the original.
//
// # Heap layout
//
// The heap is a single osmem.Region whose committed prefix is tiled,
// end-to-end, by adjacent blocks. Each block begins with a 24-byte header
// (length, prev, next) addressed by int64 offset from the region base
// rather than by raw pointer — see DESIGN.md for why. Free blocks form a
// doubly-linked, strictly address-ordered list; no two free blocks are ever
// physically adjacent, since Free eagerly coalesces.
//
// # Large allocations
//
// Requests at or above 128 KiB bypass the heap entirely: they are served by
// a dedicated anonymous mapping via internal/osmem, with the mapping's
// total length stored in an 8-byte prefix immediately before the returned
// payload.
//
// # Thread safety
//
// A single *Allocator serializes all four entry points behind one
// sync.Mutex. There is no reentrancy: Calloc and Realloc call unexported,
// lock-free variants of Alloc/Free while already holding the lock.
//
// # Usage example
//
//	a, err := alloc.New(alloc.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	buf := a.Alloc(256)
//	if buf == nil {
//	    return errors.New("out of memory")
//	}
//	copy(buf, "hello")
//	a.Free(buf)
package alloc
