// Package shapes provides immediate-mode 2D shape drawing and geometric
// collision checks for Go.
//
// # Overview
//
// shapes is the vertex-emission layer of the GoGPU ecosystem: it turns
// high-level shape descriptions (circles, rings, rounded rectangles,
// polygons, bezier ribbons) into ordered vertex streams for a rasterization
// backend, and separately provides closed-form 2D collision tests between
// primitives (point, rectangle, circle, triangle, polygon, line).
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	// Record the vertex stream (or plug in your own Renderer)
//	rec := shapes.NewRecorder()
//	e := shapes.NewEmitter(rec)
//
//	e.Circle(shapes.Pt(256, 256), 100, shapes.Red)
//	e.RectangleRounded(shapes.R(10, 10, 200, 80), 0.3, 0, shapes.SkyBlue)
//
//	// Collision checks are plain package functions
//	hit := shapes.PointInCircle(shapes.Pt(300, 256), shapes.Pt(256, 256), 100)
//	_ = hit
//
// # Architecture
//
// The library is organized around three independent pieces:
//   - Emitter: translates each draw call into Begin/End vertex batches on
//     a Renderer, tessellating curves adaptively so chords deviate from the
//     true arc by at most a configurable error (0.5 units by default).
//   - Renderer: the consumed interface; any backend that accepts an ordered
//     vertex stream (GPU command encoder, display list, Recorder) fits.
//   - Collision functions: pure, allocation-free predicates with no
//     dependency on rendering.
//
// # Primitive Assembly
//
// Filled shapes can be assembled as independent triangles (default) or as
// quads, selected once at construction with WithAssembly. Quad assembly
// stamps texture coordinates from the shapes texture binding so shape and
// text geometry can share a single draw call via a font atlas.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Shape angles are in degrees, 0 is right, increasing clockwise on
//     screen
//
// # Error Handling
//
// Drawing never fails: degenerate inputs (zero radius, zero thickness,
// too few points, swapped angle ranges) are clamped, swapped, or skipped
// so a malformed call degrades to the nearest sensible shape instead of
// corrupting the vertex stream.
package shapes

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
