package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggboard/batch"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "board.toml", `
width = 32
height = 16
antialias = true
output = "out.bmp"

[background]
red = 1
green = 2
blue = 3
alpha = 255
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
	assert.True(t, cfg.Antialias)
	assert.Equal(t, 1.0, cfg.LineWidth, "unset keys keep defaults")
	assert.Equal(t, "out.bmp", cfg.Output)
	require.NotNil(t, cfg.Background)
	assert.Equal(t, ColorTable{Red: 1, Green: 2, Blue: 3, Alpha: 255}, *cfg.Background)
	assert.Len(t, cfg.BoardOptions(), 3)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "typo.toml", "widht = 3\n"))
	assert.ErrorContains(t, err, "unknown keys")

	_, err = LoadConfig(writeFile(t, dir, "bad.toml", "width = \n"))
	assert.Error(t, err)
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "a.BMP", "a.tif", "a.tiff"} {
		_, err := encoderFor(name)
		assert.NoError(t, err, name)
	}
	_, err := encoderFor("a.gif")
	assert.Error(t, err)
}

func TestFramePath(t *testing.T) {
	assert.Equal(t, "out/frame-0007.png", framePath("out/frame.png", 7))
}

func TestSweeperWalksBorder(t *testing.T) {
	s := &sweeper{width: 3, height: 3}
	var got []batch.Point
	for range 9 {
		got = append(got, s.next())
	}
	want := []batch.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 2, Y: 2},
		{X: 1, Y: 2}, {X: 0, Y: 2},
		{X: 0, Y: 1}, {X: 0, Y: 0},
	}
	assert.Equal(t, want, got)
}

func TestRunWritesFrame(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "batch.json", `{"add":[{"id":"l","fill":{"red":0,"green":0,"blue":0,"alpha":255},
		"from":{"x":0,"y":0},"to":{"x":7,"y":7}}],"remove":[],"change":[]}`)
	out := filepath.Join(dir, "frame.png")

	require.NoError(t, run([]string{"-width", "8", "-height", "8", "-out", out, b}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "batch.json", `{"add":[{"id":"l","fill":{"red":0,"green":0,"blue":0,"alpha":255},
		"from":{"x":2,"y":2},"to":{"x":3,"y":3}}],"remove":[],"change":[]}`)
	out := filepath.Join(dir, "f.bmp")

	require.NoError(t, run([]string{"-width", "4", "-height", "4", "-out", out, "-sweep", "l", "-frames", "3", b}))

	for n := range 3 {
		assert.FileExists(t, framePath(out, n))
	}
	assert.Error(t, run([]string{"-width", "4", "-height", "4", "-out", out, "-sweep", "nope", "-frames", "1", b}))
}

func TestRunRejectsBadBatch(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "bad.json", `{"add":[]}`)
	err := run([]string{"-out", filepath.Join(dir, "x.png"), b})
	assert.ErrorContains(t, err, "batch rejected")
}

func TestBoardOptionsBackground(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.BoardOptions(), 2)
	cfg.Background = &ColorTable{Red: 9, Alpha: 255}
	assert.Len(t, cfg.BoardOptions(), 3)
}
