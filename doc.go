// Package ggboard is a retained-mode drawing board on top of the gg
// rasterizer.
//
// # Overview
//
// A Board owns a raster buffer and a registry of shapes. Shapes are added,
// changed and removed either one at a time or in batches; the board keeps
// them in paint order and remembers whether anything changed since the last
// frame. The host calls Render once per frame and reads the buffer:
//
//	b, err := ggboard.New(640, 480)
//	if err != nil {
//	    return err
//	}
//	id := b.PutLine(shape.RGB(255, 255, 2), shape.Pt(320, 240), shape.Pt(100, 50))
//	b.ChangePrimitive(id, shape.WithTo(shape.Pt(0, 0)))
//	b.Render()
//	pixels := b.Buffer() // RGBA, 4 bytes per pixel, zero-copy
//
// # Batches
//
// Batch accepts the JSON form decoded by package batch:
//
//	b.Batch([]byte(`{"add":[],"remove":[],"change":[{"id":"0","to":{"x":1,"y":0}}]}`))
//
// A batch that does not decode is dropped whole and leaves the board
// untouched. Unknown ids inside a valid batch are logged and skipped.
//
// # Paint order
//
// Shapes paint by z-order ascending, ties broken by id. The background set
// with WithBackground sits at BackgroundZ, below everything else.
//
// # Errors
//
// Only New fails, on invalid dimensions. Every other anomaly is logged (see
// SetLogger) and absorbed.
//
// Board is not safe for concurrent use.
package ggboard

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
