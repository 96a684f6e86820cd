package tiling

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/kelindar/bitmap"
	"github.com/pdok/mortontile/mathhelp"
	"github.com/pdok/mortontile/morton"
)

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrPlacement means two cells were mapped onto one slot, or a slot was left empty.
	ErrPlacement = errors.New("tile placement is not a bijection")
)

// maxCells is the largest grid the placement bitmap can address.
const maxCells = min(math.MaxUint32, math.MaxInt)

type grid struct {
	width  int
	height int
	side   int
	tilesX int
	tilesY int
}

func newGrid(width, height, length int) (grid, error) {
	if width <= 0 || height <= 0 {
		return grid{}, fmt.Errorf("%w: width %d and height %d must be positive", ErrDimensionMismatch, width, height)
	}
	if width > maxCells/height {
		return grid{}, fmt.Errorf("%w: a %dx%d grid exceeds %d cells", ErrDimensionMismatch, width, height, maxCells)
	}
	if length != width*height {
		return grid{}, fmt.Errorf("%w: got %d elements for a %dx%d grid, want %d", ErrDimensionMismatch, length, width, height, width*height)
	}
	side := DeriveTileSide(width, height)
	if morton.Debug && (!mathhelp.IsPow2(side) || side != min(mathhelp.LowestSetBit(width), mathhelp.LowestSetBit(height), MaxSide)) {
		panic(fmt.Errorf("tile side %d is not the largest common power of two of %d and %d", side, width, height))
	}
	return grid{
		width:  width,
		height: height,
		side:   side,
		tilesX: width / side,
		tilesY: height / side,
	}, nil
}

func (g grid) tileSize() int {
	return g.side * g.side
}

// tileBase is the offset of the first element of tile (col, row).
func (g grid) tileBase(col, row int) int {
	return row*g.tilesX*g.tileSize() + col*g.tileSize()
}

// destination is the buffer offset of source cell (x, y).
func (g grid) destination(x, y int) int {
	localX, localY := x&(g.side-1), y&(g.side-1)
	if morton.Debug {
		morton.MustToZ(uint(localX), uint(localY))
	}
	return g.tileBase(x/g.side, y/g.side) + int(morton.Interleave(uint16(localX), uint16(localY)))
}

// rearrange moves the rows [rows[0], rows[1]) of src into dst.
// The rows must cover whole tile rows so that their destinations are exactly
// [base, base+(rows[1]-rows[0])*width). Each destination is checked before it is written.
func rearrange[T any](src, dst []T, width int, rows [2]int, base int, destination func(x, y int) int) error {
	n := (rows[1] - rows[0]) * width
	var placed bitmap.Bitmap
	placed.Grow(uint32(n - 1))
	for y := rows[0]; y < rows[1]; y++ {
		for x := 0; x < width; x++ {
			d := destination(x, y)
			rel := d - base
			if rel < 0 || rel >= n {
				return fmt.Errorf("%w: cell (%d, %d) maps to %d, outside [%d, %d)", ErrPlacement, x, y, d, base, base+n)
			}
			if placed.Contains(uint32(rel)) {
				return fmt.Errorf("%w: cell (%d, %d) maps to already occupied %d", ErrPlacement, x, y, d)
			}
			placed.Set(uint32(rel))
			dst[d] = src[mathhelp.RowMajor(x, y, width)]
		}
	}
	if count := placed.Count(); count != n {
		return fmt.Errorf("%w: placed %d of %d cells", ErrPlacement, count, n)
	}
	return nil
}

// Layout is a grid stored as Morton-ordered tiles in one buffer.
// It is immutable once built.
type Layout[T any] struct {
	grid
	data  []T
	tiles []Tile
}

// Build repacks data, a row-major width x height grid, into Morton-ordered tiles.
//
// Build takes ownership of the elements: after a successful build every slot of data
// is reset to the zero value. On error data is left untouched.
func Build[T any](width, height int, data []T) (*Layout[T], error) {
	return BuildParallel(width, height, data, 1)
}

// newLayout indexes the tiles of a completely filled buffer.
func newLayout[T any](g grid, data []T) *Layout[T] {
	tiles := make([]Tile, 0, g.tilesX*g.tilesY)
	for row := 0; row < g.tilesY; row++ {
		for col := 0; col < g.tilesX; col++ {
			tiles = append(tiles, Tile{
				Col:      col,
				Row:      row,
				Location: Location{Offset: g.tileBase(col, row), Length: g.tileSize()},
			})
		}
	}
	return &Layout[T]{
		grid:  g,
		data:  data,
		tiles: tiles,
	}
}

func (l *Layout[T]) Width() int     { return l.width }
func (l *Layout[T]) Height() int    { return l.height }
func (l *Layout[T]) Side() int      { return l.side }
func (l *Layout[T]) TilesX() int    { return l.tilesX }
func (l *Layout[T]) TilesY() int    { return l.tilesY }
func (l *Layout[T]) TileCount() int { return len(l.tiles) }

// Len is the number of elements (width * height).
func (l *Layout[T]) Len() int { return len(l.data) }

// Tile returns the i-th tile, tiles are numbered row-major over the tile grid.
func (l *Layout[T]) Tile(i int) Tile {
	return l.tiles[i]
}

func (l *Layout[T]) TileAt(col, row int) Tile {
	if col < 0 || col >= l.tilesX || row < 0 || row >= l.tilesY {
		panic(fmt.Errorf("tile (%d, %d) outside the %dx%d tile grid", col, row, l.tilesX, l.tilesY))
	}
	return l.tiles[mathhelp.RowMajor(col, row, l.tilesX)]
}

func (l *Layout[T]) Tiles() []Tile {
	return slices.Clone(l.tiles)
}

// Elements returns the elements of t in Morton order.
// The slice is a view into the layout and must not be modified.
func (l *Layout[T]) Elements(t Tile) []T {
	return l.data[t.Offset:t.End():t.End()]
}

// Data returns the whole buffer, tile after tile. It must not be modified.
func (l *Layout[T]) Data() []T {
	return l.data[:len(l.data):len(l.data)]
}

// Offset returns where the element originally at (x, y) is stored in Data.
func (l *Layout[T]) Offset(x, y int) int {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		panic(fmt.Errorf("coord (%d, %d) outside the %dx%d grid", x, y, l.width, l.height))
	}
	return l.destination(x, y)
}

// At returns the element originally at (x, y).
func (l *Layout[T]) At(x, y int) T {
	return l.data[l.Offset(x, y)]
}

// Coord reconstructs the original (x, y) of the i-th element of t.
func (l *Layout[T]) Coord(t Tile, i int) (x, y int) {
	if i < 0 || i >= t.Length {
		panic(fmt.Errorf("index %d outside tile (%d, %d) of length %d", i, t.Col, t.Row, t.Length))
	}
	localX, localY := morton.Deinterleave(morton.Z(i))
	return t.Col*l.side + int(localX), t.Row*l.side + int(localY)
}
