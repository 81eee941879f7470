package alloc

import (
	"encoding/binary"
	"unsafe"

	"github.com/bagnalla/bagnalloc/internal/osmem"
)

// largePrefixSize is the width of the length prefix stored immediately
// before every large allocation's payload, mirroring the source
// allocator's convention of stashing a block's total mapped length just
// ahead of the pointer it hands back.
const largePrefixSize = 8

// allocLarge serves a request at or above mmapThreshold directly from a
// dedicated anonymous mapping, bypassing the heap and its free list
// entirely. The mapping's total length (prefix + payload) is recorded in
// the first 8 bytes so Free can recover it without any bookkeeping outside
// the mapping itself.
func (a *Allocator) allocLarge(size int64) []byte {
	total := largePrefixSize + size
	full, err := osmem.MapAnonymous(int(total))
	if err != nil {
		return nil
	}
	binary.LittleEndian.PutUint64(full[:largePrefixSize], uint64(total))
	a.stats.LargeAllocations++
	a.stats.UsedBytes += size
	return full[largePrefixSize:]
}

// freeLarge unmaps a large allocation previously returned by allocLarge.
func (a *Allocator) freeLarge(ptr []byte) {
	full, total := fullMappingOf(ptr)
	a.stats.LargeFrees++
	a.stats.UsedBytes -= total - largePrefixSize
	_ = osmem.Unmap(full) //nolint:errcheck
}

// fullMappingOf reconstructs the full mapping (prefix + payload) backing a
// large allocation's payload slice, by walking backward largePrefixSize
// bytes from the payload's own address. This only ever touches memory known
// to belong to the same anonymous mapping allocLarge created, so the
// pointer arithmetic stays within a single allocation's bounds.
func fullMappingOf(payload []byte) (full []byte, total int64) {
	base := unsafe.Pointer(&payload[0])
	prefixPtr := unsafe.Add(base, -largePrefixSize)
	prefix := unsafe.Slice((*byte)(prefixPtr), largePrefixSize)
	total = int64(binary.LittleEndian.Uint64(prefix))
	full = unsafe.Slice((*byte)(prefixPtr), total)
	return full, total
}
