package alloc

import "encoding/binary"

const (
	// alignment is the alignment quantum: every payload size and every
	// payload start offset is a multiple of this value.
	alignment = 8

	// headerSize is the size in bytes of the in-band block header: three
	// int64 fields (length, prev, next), already a multiple of alignment.
	headerSize = 24

	// minSplitRemainder is the split threshold of spec.md §4.1: a chosen
	// free block is split only if the leftover would be at least this many
	// bytes (header + 8 bytes of payload); otherwise the whole block is
	// donated to the allocation.
	minSplitRemainder = headerSize + 8

	// mmapThreshold is the large-allocation cutover point (spec.md §4.6).
	mmapThreshold = 128 * 1024

	// heapGrowthIncrement is the page-count multiple every heap growth after
	// the first rounds up to (spec.md §4.2); the first growth is not rounded.
	heapGrowthIncrement = 4
)

// noOffset marks the absence of a free-list neighbor (spec's "none"). The
// heap's current end is never stored per-block; it is simply len(data), so
// no separate "heap_end" sentinel is needed.
const noOffset int64 = -1

// header is the in-band metadata record preceding every block's payload,
// free or allocated. length's sign doubles as the allocated/free flag
// (spec.md §9's permitted optimization over the source's next==none flag):
// negative means allocated, and its absolute value is the payload size.
//
//	offset 0:  length int64
//	offset 8:  prev   int64
//	offset 16: next   int64
type header struct {
	length int64
	prev   int64
	next   int64
}

func isAllocatedLength(length int64) bool {
	return length < 0
}

func payloadSize(length int64) int64 {
	if length < 0 {
		return -length
	}
	return length
}

// alignUp rounds n up to the nearest multiple of to.
func alignUp(n, to int64) int64 {
	return (n + to - 1) / to * to
}

// readHeader decodes the header at offset off within data.
func readHeader(data []byte, off int64) header {
	b := data[off : off+headerSize]
	return header{
		length: int64(binary.LittleEndian.Uint64(b[0:8])),
		prev:   int64(binary.LittleEndian.Uint64(b[8:16])),
		next:   int64(binary.LittleEndian.Uint64(b[16:24])),
	}
}

// writeHeader encodes h at offset off within data.
func writeHeader(data []byte, off int64, h header) {
	b := data[off : off+headerSize]
	binary.LittleEndian.PutUint64(b[0:8], uint64(h.length))
	binary.LittleEndian.PutUint64(b[8:16], uint64(h.prev))
	binary.LittleEndian.PutUint64(b[16:24], uint64(h.next))
}

func readLength(data []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(data[off : off+8]))
}

func writeLength(data []byte, off int64, length int64) {
	binary.LittleEndian.PutUint64(data[off:off+8], uint64(length))
}

func readPrev(data []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(data[off+8 : off+16]))
}

func writePrev(data []byte, off int64, prev int64) {
	binary.LittleEndian.PutUint64(data[off+8:off+16], uint64(prev))
}

func readNext(data []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(data[off+16 : off+24]))
}

func writeNext(data []byte, off int64, next int64) {
	binary.LittleEndian.PutUint64(data[off+16:off+24], uint64(next))
}
