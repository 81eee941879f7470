package alloc

import "errors"

// ErrRegionClosed is returned by Close when the Allocator was already
// closed. Alloc/Free/Calloc/Realloc never return errors at all: like the
// source allocator, a failed allocation is signaled only by a nil result.
var ErrRegionClosed = errors.New("alloc: allocator already closed")
