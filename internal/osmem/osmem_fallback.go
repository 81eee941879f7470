//go:build !linux && !darwin

package osmem

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("osmem: platform not supported (need linux or darwin)")

// PageSize reports the page size given by os.Getpagesize on unsupported platforms.
func PageSize() int {
	return os.Getpagesize()
}

// Reserve always fails outside linux/darwin; this allocator's break-region
// simulation depends on mmap(PROT_NONE)+mprotect, which this build has no
// portable implementation for.
func Reserve(int) (*Region, error) {
	return nil, errUnsupported
}

func (r *Region) ExtendBreak(int) ([]byte, error) {
	return nil, errUnsupported
}

func (r *Region) Release() error {
	return nil
}

func MapAnonymous(int) ([]byte, error) {
	return nil, errUnsupported
}

func Unmap([]byte) error {
	return nil
}
