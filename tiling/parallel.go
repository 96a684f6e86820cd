package tiling

import (
	"errors"
	"sync"
)

// BuildParallel is Build with the rearrangement spread over up to workers goroutines.
// The grid is cut into bands of whole tile rows. Bands write disjoint parts of the
// buffer, so they need no locking. The result is identical to Build.
func BuildParallel[T any](width, height int, data []T, workers int) (*Layout[T], error) {
	g, err := newGrid(width, height, len(data))
	if err != nil {
		return nil, err
	}
	buf := make([]T, len(data))
	if err = rearrangeBands(g, data, buf, g.bands(workers)); err != nil {
		return nil, err
	}
	clear(data)
	return newLayout(g, buf), nil
}

// bands splits the tile rows into at most n runs of about equal size,
// returned as source row ranges.
func (g grid) bands(n int) [][2]int {
	n = max(1, min(n, g.tilesY))
	bands := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		from := i * g.tilesY / n
		to := (i + 1) * g.tilesY / n
		bands = append(bands, [2]int{from * g.side, to * g.side})
	}
	return bands
}

func rearrangeBands[T any](g grid, src, dst []T, bands [][2]int) error {
	if len(bands) == 1 {
		return rearrange(src, dst, g.width, bands[0], g.tileBase(0, bands[0][0]/g.side), g.destination)
	}
	errs := make([]error, len(bands))
	wg := sync.WaitGroup{}
	for i, band := range bands {
		wg.Add(1)
		go func(i int, band [2]int) {
			defer wg.Done()
			errs[i] = rearrange(src, dst, g.width, band, g.tileBase(0, band[0]/g.side), g.destination)
		}(i, band)
	}
	wg.Wait()
	return errors.Join(errs...)
}
