package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/mortontile/tiling"
)

type coord [2]int

func (c coord) String() string {
	return fmt.Sprintf("(%d,%d)", c[0], c[1])
}

type layoutJSON struct {
	Width  int                                     `json:"width"`
	Height int                                     `json:"height"`
	Side   int                                     `json:"side"`
	Tiles  *orderedmap.OrderedMap[string, []coord] `json:"tiles"`
}

// writeJSON writes the tiles keyed "col,row", in storage order.
func writeJSON(w io.Writer, layout *tiling.Layout[coord]) error {
	tiles := orderedmap.New[string, []coord]()
	for tile, elements := range layout.All() {
		tiles.Set(fmt.Sprintf("%d,%d", tile.Col, tile.Row), elements)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(layoutJSON{
		Width:  layout.Width(),
		Height: layout.Height(),
		Side:   layout.Side(),
		Tiles:  tiles,
	})
}

// writeText writes one line per tile, lines longer than maxWidth are cut off.
func writeText(w io.Writer, layout *tiling.Layout[coord], maxWidth uint) error {
	_, err := fmt.Fprintf(w, "%dx%d grid, %d tiles (%dx%d) of side %d\n",
		layout.Width(), layout.Height(), layout.TileCount(), layout.TilesX(), layout.TilesY(), layout.Side())
	if err != nil {
		return err
	}
	for tile, elements := range layout.All() {
		var line strings.Builder
		fmt.Fprintf(&line, "tile %d,%d [%d,%d):", tile.Col, tile.Row, tile.Offset, tile.End())
		for _, e := range elements {
			line.WriteByte(' ')
			line.WriteString(e.String())
		}
		if _, err = fmt.Fprintln(w, truncate.StringWithTail(line.String(), maxWidth, "…")); err != nil {
			return err
		}
	}
	return nil
}
