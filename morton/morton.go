// Package morton interleaves the bits of two 16-bit coordinates into a 32-bit
// Morton (Z-order) key and back.
//
// x occupies the even bit positions of a key, y the odd ones:
//
//	y1 x1 y0 x0  ->  z = 0b y1 x1 y0 x0
//
// See http://graphics.stanford.edu/~seander/bithacks.html#InterleaveBMN
package morton

import (
	"errors"
	"fmt"
	"math"
)

// Z is a Morton key.
type Z = uint32

// MaxCoord is the largest coordinate that can be interleaved.
const MaxCoord = math.MaxUint16

var ErrDomainViolation = errors.New("coordinate exceeds 16 bits")

var (
	masks = [...]uint32{
		0b01010101010101010101010101010101,
		0b00110011001100110011001100110011,
		0b00001111000011110000111100001111,
		0b00000000111111110000000011111111,
		0b00000000000000001111111111111111,
	}
	powersOfTwo = [...]uint32{1, 2, 4, 8}
)

// Interleave spreads x over the even bits and y over the odd bits of the key.
func Interleave(x, y uint16) Z {
	return spread(x) | spread(y)<<1
}

// Deinterleave is the inverse of Interleave.
func Deinterleave(z Z) (x, y uint16) {
	return compress(z), compress(z >> 1)
}

func spread(v uint16) uint32 {
	s := uint32(v)
	for i := len(powersOfTwo) - 1; i >= 0; i-- {
		s = (s | (s << powersOfTwo[i])) & masks[i]
	}
	return s
}

func compress(z uint32) uint16 {
	c := z & masks[0]
	for i := 0; i < len(powersOfTwo); i++ {
		c = (c | (c >> powersOfTwo[i])) & masks[i+1]
	}
	return uint16(c)
}

// ToZ interleaves x and y when both fit in 16 bits.
// ok is false (and z is 0) otherwise.
func ToZ(x, y uint) (z Z, ok bool) {
	if x > MaxCoord || y > MaxCoord {
		return 0, false
	}
	return Interleave(uint16(x), uint16(y)), true
}

func MustToZ(x, y uint) Z {
	z, ok := ToZ(x, y)
	if !ok {
		panic(fmt.Errorf(`cannot make Z out of %v and %v: %w`, x, y, ErrDomainViolation))
	}
	return z
}

func FromZ(z Z) (x, y uint) {
	dx, dy := Deinterleave(z)
	return uint(dx), uint(dy)
}
