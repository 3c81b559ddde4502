// Command ggboard applies JSON shape batches to a drawing board and writes
// the rendered frames.
//
// Usage:
//
//	ggboard [-config board.toml] [-out frame.png] batch.json...
//	ggboard -sweep "first line" -frames 100 batch.json
//
// Batches are applied in the order given. With -sweep, the end point of the
// named line then travels around the board border, one frame per pixel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggboard"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ggboard", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML config file")
		width      = fs.Int("width", 0, "board width (overrides config)")
		height     = fs.Int("height", 0, "board height (overrides config)")
		output     = fs.String("out", "", "output image: .png, .bmp or .tiff (overrides config)")
		sweepID    = fs.String("sweep", "", "id of a line whose end sweeps the border")
		frames     = fs.Int("frames", 0, "number of sweep frames")
		verbose    = fs.Bool("v", false, "log diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *verbose {
		ggboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if _, err := encoderFor(cfg.Output); err != nil {
		return err
	}

	b, err := ggboard.New(cfg.Width, cfg.Height, cfg.BoardOptions()...)
	if err != nil {
		return err
	}
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		if !b.Batch(data) {
			return fmt.Errorf("%s: batch rejected", path)
		}
	}

	if *sweepID == "" {
		b.Render()
		return writeImage(cfg.Output, b.Image())
	}
	if *frames <= 0 {
		return errors.New("-sweep needs -frames > 0")
	}
	return sweep(b, *sweepID, *frames, cfg.Output)
}

func sweep(b *ggboard.Board, id string, frames int, output string) error {
	if _, ok := b.Shapes().Get(id); !ok {
		return fmt.Errorf("sweep: no shape %q", id)
	}
	s := &sweeper{width: uint32(b.Width()), height: uint32(b.Height())} //nolint:gosec // board dimensions are positive
	for n := range frames {
		b.ApplyBatch(changeTo(id, s.next()))
		b.Render()
		if err := writeImage(framePath(output, n), b.Image()); err != nil {
			return err
		}
	}
	return nil
}
