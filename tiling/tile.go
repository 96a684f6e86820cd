// Package tiling repacks a row-major 2D grid into square tiles whose elements are
// stored in Morton (Z-order) order.
//
// A Layout owns one contiguous buffer. Tiles are (offset, length) entries into it:
//
//	width 8, height 4, side 4
//
//	row-major               tiles (each Morton-ordered)
//	|-------------------|   |---------|---------|
//	| 0 1 2 3 4 5 6 7   |   | tile 0  | tile 1  |
//	| . . . . . . . .   |   | col 0   | col 1   |
//	| . . . . . . . .   |   | [0,16)  | [16,32) |
//	| . . . . . . . .   |   |---------|---------|
//	|-------------------|
package tiling

import (
	"fmt"

	"github.com/pdok/mortontile/mathhelp"
)

// MaxSide bounds the tile side so that tile-local coordinates fit a 16-bit Morton coordinate.
const MaxSide = 1 << 16

// Location is the half-open range [Offset, Offset+Length) of a tile inside a layout's buffer.
type Location struct {
	Offset int
	Length int
}

func (l Location) End() int {
	return l.Offset + l.Length
}

// Tile is a side x side square of the grid.
// Col and Row are its position in the grid of tiles.
type Tile struct {
	Col int
	Row int
	Location
}

// DeriveTileSide returns the largest power of two, at most MaxSide, that divides both width and height.
// Non-positive dimensions are a programming error and panic.
func DeriveTileSide(width, height int) int {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("cannot derive a tile side for a %dx%d grid", width, height))
	}
	side := min(mathhelp.FloorPow2(min(width, height)), MaxSide)
	for width%side != 0 || height%side != 0 {
		side >>= 1
	}
	return side
}
