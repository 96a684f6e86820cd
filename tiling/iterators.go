package tiling

import "iter"

// All yields every tile with its elements in Morton order, tiles in row-major order.
func (l *Layout[T]) All() iter.Seq2[Tile, []T] {
	return func(yield func(Tile, []T) bool) {
		for _, t := range l.tiles {
			if !yield(t, l.Elements(t)) {
				return
			}
		}
	}
}

// Cells yields every element with its original (x, y), in storage order.
func (l *Layout[T]) Cells() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for _, t := range l.tiles {
			for i, e := range l.Elements(t) {
				x, y := l.Coord(t, i)
				if !yield([2]int{x, y}, e) {
					return
				}
			}
		}
	}
}
