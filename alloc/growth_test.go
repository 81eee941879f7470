package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Grow_InitialGrowthInstallsExactlyWhatTheFirstRequestNeeds(t *testing.T) {
	a := newTestAllocator(t)

	buf := a.Alloc(16)
	require.NotNil(t, buf)

	pg := int64(a.pageSize)
	got := int64(a.region.Len())
	require.Zero(t, got%pg, "heap length must be a whole number of pages")
	require.Equal(t, pg, got,
		"the very first growth installs exactly one page for a small request, with no heapGrowthIncrement rounding")
}

func Test_Grow_SubsequentGrowthRoundsToIncrementMultiple(t *testing.T) {
	a := newTestAllocator(t)
	require.NotNil(t, a.Alloc(16)) // initial, unrounded growth
	before := int64(a.region.Len())

	// A request too big for what's left of the first page forces a second,
	// steady-state growth.
	require.NotNil(t, a.Alloc(int(before)))
	after := int64(a.region.Len())

	pg := int64(a.pageSize)
	delta := after - before
	require.Zero(t, delta%pg, "growth must advance by a whole number of pages")
	require.Zero(t, (delta/pg)%heapGrowthIncrement,
		"growth past the initial page must round up to a multiple of heapGrowthIncrement pages")
}

func Test_Grow_ExtendsExistingFreeTailInPlace(t *testing.T) {
	a := newTestAllocator(t)

	// Force an initial grow, then free everything so the whole heap is one
	// free tail block, then force a second grow and confirm no new
	// physically-adjacent free block was created (eager coalescing holds
	// across grow boundaries too).
	x := a.Alloc(16)
	require.NotNil(t, x)
	a.Free(x)
	require.Equal(t, 1, a.FreeBlocks())

	// One full page is more than the free tail holds but stays below
	// mmapThreshold, so it must be served by growing the heap.
	big := a.Alloc(int(a.region.Len()))
	require.NotNil(t, big)
	require.NoError(t, a.CheckInvariants())
}

func Test_Grow_ExhaustsReservationReturnsNil(t *testing.T) {
	a, err := New(Config{ReserveSize: 4096})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	var last []byte
	for i := 0; i < 10_000; i++ {
		last = a.Alloc(256)
		if last == nil {
			break
		}
	}
	require.Nil(t, last, "a small reservation must eventually be exhausted")
}

func Test_Grow_NeverMovesPreviouslyAllocatedData(t *testing.T) {
	a := newTestAllocator(t)

	first := a.Alloc(32)
	require.NotNil(t, first)
	copy(first, []byte("first block payload bytes"))

	// Drive enough further allocations to force at least one more grow.
	for i := 0; i < 64; i++ {
		require.NotNil(t, a.Alloc(4096))
	}

	require.Equal(t, "first block payload bytes", string(first[:len("first block payload bytes")]))
}
