package tiling

import (
	"fmt"
	"testing"
)

func BenchmarkBuild(b *testing.B) {
	const width, height = 1024, 1024
	src := make([]uint32, width*height)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("%d workers", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := BuildParallel(width, height, src, workers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLayout_At(b *testing.B) {
	const width, height = 1024, 1024
	layout, err := Build(width, height, make([]uint32, width*height))
	if err != nil {
		b.Fatal(err)
	}
	var sink uint32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				sink += layout.At(x, y)
			}
		}
	}
	_ = sink
}
