package shapes

// Assembly selects how filled shapes are assembled into primitives.
// It is chosen once at construction; see WithAssembly.
type Assembly int

const (
	// AssemblyTriangles emits independent triangles, three vertices each,
	// counter-clockwise winding. This is the default.
	AssemblyTriangles Assembly = iota

	// AssemblyQuads emits quads, four vertices each, with texture
	// coordinates from the shapes texture binding. Quads reduce
	// state-change overhead and avoid seam artifacts on some raster
	// backends.
	AssemblyQuads
)

// String returns the assembly name.
func (a Assembly) String() string {
	switch a {
	case AssemblyTriangles:
		return "Triangles"
	case AssemblyQuads:
		return "Quads"
	default:
		return "Unknown"
	}
}

// Option configures an Emitter during creation.
//
// Example:
//
//	// Default: triangle assembly, 0.5 unit arc error
//	e := shapes.NewEmitter(rec)
//
//	// Quad assembly with a tighter tessellation tolerance
//	e := shapes.NewEmitter(rec,
//	    shapes.WithAssembly(shapes.AssemblyQuads),
//	    shapes.WithArcError(0.25))
type Option func(*Emitter)

// WithAssembly selects the primitive assembly for filled shapes.
func WithAssembly(a Assembly) Option {
	return func(e *Emitter) {
		e.assembly = a
	}
}

// WithArcError sets the maximum chord deviation, in the same units as the
// radius, used when tessellating curves. Non-positive values are ignored,
// keeping the default of SmoothCircleErrorRate.
func WithArcError(tol float32) Option {
	return func(e *Emitter) {
		if tol > 0 {
			e.arcError = tol
		}
	}
}

// WithBezierDivisions sets the number of straight divisions used to
// approximate bezier lines. Values below 1 are ignored, keeping the
// default of BezierLineDivisions.
func WithBezierDivisions(n int) Option {
	return func(e *Emitter) {
		if n >= 1 {
			e.bezierDivs = n
		}
	}
}

// WithSectorCapLines controls whether sector and ring outlines draw the
// two cap lines joining the arc endpoints. Default on.
func WithSectorCapLines(on bool) Option {
	return func(e *Emitter) {
		e.capLines = on
	}
}

// WithShapesTexture sets the initial shapes texture binding, with the same
// validation as Emitter.SetShapesTexture.
func WithShapesTexture(tex Texture, source Rect) Option {
	return func(e *Emitter) {
		e.SetShapesTexture(tex, source)
	}
}
