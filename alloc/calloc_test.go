package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Calloc_ZeroesMemory(t *testing.T) {
	a := newTestAllocator(t)

	buf := a.Alloc(256)
	require.NotNil(t, buf)
	for i := range buf {
		buf[i] = 0xFF
	}
	a.Free(buf)

	// The allocator should hand the same bytes back out (first-fit, empty
	// heap) still zeroed, proving Calloc zeroes rather than relying on the
	// OS having already zeroed fresh pages.
	z := a.Calloc(32, 8)
	require.NotNil(t, z)
	for i, b := range z {
		require.Zero(t, b, "byte %d was not zeroed", i)
	}
}

func Test_Calloc_RejectsOverflow(t *testing.T) {
	a := newTestAllocator(t)
	require.Nil(t, a.Calloc(1<<62, 1<<62))
}

func Test_Calloc_RejectsNonPositiveArgs(t *testing.T) {
	a := newTestAllocator(t)
	require.Nil(t, a.Calloc(0, 8))
	require.Nil(t, a.Calloc(8, 0))
	require.Nil(t, a.Calloc(-1, 8))
}

func Test_Calloc_SizeMatchesNmembTimesSize(t *testing.T) {
	a := newTestAllocator(t)
	buf := a.Calloc(10, 16)
	require.NotNil(t, buf)
	require.Len(t, buf, 160)
}
