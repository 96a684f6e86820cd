package mathhelp

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPow2 reports whether n is a power of two (> 0).
func IsPow2[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// FloorPow2 returns the largest power of two not exceeding n, or 0 for n <= 0.
func FloorPow2[T constraints.Integer](n T) T {
	if n <= 0 {
		return 0
	}
	return T(1) << (bits.Len64(uint64(n)) - 1)
}

// LowestSetBit isolates the lowest set bit of n: the largest power of two dividing n.
// Returns 0 for n == 0.
func LowestSetBit[T constraints.Integer](n T) T {
	return n & -n
}

// RowMajor returns the linear index of (x, y) in a row-major grid with the given stride.
func RowMajor[T constraints.Integer](x, y, stride T) T {
	return y*stride + x
}
