package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These tests pin down the exact boundary of the split-vs-donate decision in
// allocLocked: a free block is only split when the leftover is big enough
// to host a block of its own (header + at least 8 bytes of payload). Each
// test sandwiches an isolated free block between two allocated neighbors so
// the assertion doesn't depend on whatever leftover tail space heap growth
// happened to leave lying around.

func Test_Alloc_SplitsWhenRemainderIsLargeEnough(t *testing.T) {
	a := newTestAllocator(t)
	require.NotNil(t, a.Alloc(8)) // force an initial grow

	target := 64 + int(minSplitRemainder)
	mid := a.Alloc(target)
	require.NotNil(t, mid)
	require.NotNil(t, a.Alloc(8)) // neighbor on the right, prevents coalescing

	a.Free(mid)
	before := a.FreeBlocks()

	got := a.Alloc(64)
	require.NotNil(t, got)
	require.Equal(t, before, a.FreeBlocks(),
		"a large-enough remainder is split off, so the free block is replaced rather than removed")
	require.NoError(t, a.CheckInvariants())
}

func Test_Alloc_DonatesWholeBlockWhenRemainderTooSmall(t *testing.T) {
	a := newTestAllocator(t)
	require.NotNil(t, a.Alloc(8))

	target := 64 + int(minSplitRemainder) - 8
	mid := a.Alloc(target)
	require.NotNil(t, mid)
	require.NotNil(t, a.Alloc(8))

	a.Free(mid)
	before := a.FreeBlocks()

	got := a.Alloc(64)
	require.NotNil(t, got)
	require.Equal(t, before-1, a.FreeBlocks(),
		"a too-small remainder is donated wholesale, removing the block with no replacement")
	require.NoError(t, a.CheckInvariants())
}
