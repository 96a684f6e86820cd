package morton

import (
	"math/rand/v2"
	"testing"

	"github.com/pdok/mortontile/mathhelp"
)

// larger than the last level cache of most machines (16MB of uint32)
const benchSide = 2048

var sinkZ Z
var sinkXY uint16
var sinkV uint32

func BenchmarkInterleave1000(b *testing.B) {
	x, y := uint16(rand.UintN(1<<16)), uint16(rand.UintN(1<<16))
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			sinkZ = Interleave(x, y)
		}
	}
}

func BenchmarkDeinterleave1000(b *testing.B) {
	z := rand.Uint32()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			sinkXY, _ = Deinterleave(z)
		}
	}
}

func BenchmarkInterleaveDeinterleave1000(b *testing.B) {
	x, y := uint16(rand.UintN(1<<16)), uint16(rand.UintN(1<<16))
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			sinkXY, _ = Deinterleave(Interleave(x, y))
		}
	}
}

func BenchmarkDeinterleaveInterleave1000(b *testing.B) {
	z := rand.Uint32()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			sinkZ = Interleave(Deinterleave(z))
		}
	}
}

func randomGrid() []uint32 {
	grid := make([]uint32, benchSide*benchSide)
	for i := range grid {
		grid[i] = rand.Uint32()
	}
	return grid
}

func BenchmarkAccess(b *testing.B) {
	grid := randomGrid()
	// a row-major buffer indexed by (x, y), and the same buffer read as if Morton-ordered
	rowMajor := func(x, y uint16) int { return mathhelp.RowMajor(int(x), int(y), benchSide) }
	mortonOrder := func(x, y uint16) int { return int(Interleave(x, y)) }
	layouts := []struct {
		name  string
		index func(x, y uint16) int
	}{
		{name: "row-major", index: rowMajor},
		{name: "morton", index: mortonOrder},
	}
	for _, layout := range layouts {
		b.Run(layout.name+"/horizontal", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for y := uint16(0); y < benchSide; y++ {
					for x := uint16(0); x < benchSide; x++ {
						sinkV = grid[layout.index(x, y)]
					}
				}
			}
		})
		b.Run(layout.name+"/vertical", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for x := uint16(0); x < benchSide; x++ {
					for y := uint16(0); y < benchSide; y++ {
						sinkV = grid[layout.index(x, y)]
					}
				}
			}
		})
		b.Run(layout.name+"/morton", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for z := Z(0); z < benchSide*benchSide; z++ {
					sinkV = grid[layout.index(Deinterleave(z))]
				}
			}
		})
	}
}
