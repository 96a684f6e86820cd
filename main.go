package main

import (
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	"github.com/pdok/mortontile/tiling"
)

const WIDTH string = `width`
const HEIGHT string = `height`
const FORMAT string = `format`
const WORKERS string = `workers`
const TRUNCATE string = `truncate`

type options struct {
	Width    int    `default:"4" validate:"min=1"`
	Height   int    `default:"8" validate:"min=1"`
	Format   string `default:"text" validate:"oneof=text json"`
	Workers  int    `default:"1" validate:"min=1"`
	Truncate uint   `default:"120" validate:"min=8"`
}

//nolint:funlen
func main() {
	var defaultOptions options
	if err := defaults.Set(&defaultOptions); err != nil {
		log.Fatal(err)
	}

	app := cli.NewApp()
	app.Name = "mortontile"
	app.Usage = "Rearrange a grid into Morton ordered tiles and print it"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    WIDTH,
			Aliases: []string{"W"},
			Usage:   "Grid width",
			Value:   defaultOptions.Width,
			EnvVars: []string{strcase.ToScreamingSnake(WIDTH)},
		},
		&cli.IntFlag{
			Name:    HEIGHT,
			Aliases: []string{"H"},
			Usage:   "Grid height",
			Value:   defaultOptions.Height,
			EnvVars: []string{strcase.ToScreamingSnake(HEIGHT)},
		},
		&cli.StringFlag{
			Name:    FORMAT,
			Aliases: []string{"f"},
			Usage:   "Output format: text or json",
			Value:   defaultOptions.Format,
			EnvVars: []string{strcase.ToScreamingSnake(FORMAT)},
		},
		&cli.IntFlag{
			Name:    WORKERS,
			Aliases: []string{"j"},
			Usage:   "Number of goroutines rearranging the grid",
			Value:   defaultOptions.Workers,
			EnvVars: []string{strcase.ToScreamingSnake(WORKERS)},
		},
		&cli.UintFlag{
			Name:    TRUNCATE,
			Aliases: []string{"t"},
			Usage:   "Maximum width of a line of text output",
			Value:   defaultOptions.Truncate,
			EnvVars: []string{strcase.ToScreamingSnake(TRUNCATE)},
		},
	}

	app.Action = func(c *cli.Context) error {
		opts := options{
			Width:    c.Int(WIDTH),
			Height:   c.Int(HEIGHT),
			Format:   c.String(FORMAT),
			Workers:  c.Int(WORKERS),
			Truncate: c.Uint(TRUNCATE),
		}
		validate := validator.New(validator.WithRequiredStructEnabled())
		if err := validate.Struct(opts); err != nil {
			return err
		}

		layout, err := tiling.BuildParallel(opts.Width, opts.Height, coords(opts.Width, opts.Height), opts.Workers)
		if err != nil {
			return err
		}
		log.Printf("built %dx%d layout: %d tiles of side %d", layout.Width(), layout.Height(), layout.TileCount(), layout.Side())

		if opts.Format == "json" {
			return writeJSON(os.Stdout, layout)
		}
		return writeText(os.Stdout, layout, opts.Truncate)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// coords returns a row-major grid in which every element is its own coordinate.
func coords(width, height int) []coord {
	grid := make([]coord, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid = append(grid, coord{x, y})
		}
	}
	return grid
}
