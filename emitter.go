package shapes

// Emitter translates shape-drawing calls into vertex batches on a
// Renderer. Every draw call runs to completion synchronously and emits
// vertices in a deterministic order, so triangle winding and texture
// coordinate pairing survive all the way to rasterization.
//
// An Emitter is not safe for concurrent use: the shapes texture binding is
// mutable state, and interleaving draw calls from multiple goroutines
// would interleave their vertex batches. Use one Emitter per rendering
// thread, or synchronize externally.
type Emitter struct {
	r Renderer

	assembly   Assembly
	arcError   float32
	bezierDivs int
	capLines   bool

	texShapes Texture
	texSource Rect
}

// NewEmitter creates an Emitter that draws through the given Renderer.
// The shapes texture binding starts as the reserved white pixel.
func NewEmitter(r Renderer, opts ...Option) *Emitter {
	e := &Emitter{
		r:          r,
		assembly:   AssemblyTriangles,
		arcError:   SmoothCircleErrorRate,
		bezierDivs: BezierLineDivisions,
		capLines:   true,
		texShapes:  WhitePixel(),
		texSource:  defaultTexSource(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assembly returns the primitive assembly selected at construction.
func (e *Emitter) Assembly() Assembly { return e.assembly }

// SetShapesTexture sets the texture and source rectangle used to stamp
// texture coordinates onto shape geometry. Binding a font-atlas white
// glyph here lets text and shapes share a single draw call.
//
// A texture with ID 0 or a source rectangle with zero width or height
// resets the binding to the default white pixel; a broken binding would
// otherwise silently corrupt every subsequent shape draw.
func (e *Emitter) SetShapesTexture(tex Texture, source Rect) {
	if tex.ID == 0 || source.Width == 0 || source.Height == 0 {
		Logger().Debug("invalid shapes texture, reset to white pixel",
			"id", tex.ID, "sourceWidth", source.Width, "sourceHeight", source.Height)
		e.texShapes = WhitePixel()
		e.texSource = defaultTexSource()
		return
	}
	e.texShapes = tex
	e.texSource = source
}

// ShapesTexture returns the current shapes texture binding.
func (e *Emitter) ShapesTexture() (Texture, Rect) {
	return e.texShapes, e.texSource
}

// texCorners returns the normalized UV corners of the shapes texture
// source rectangle: (u0,v0) top-left, (u1,v1) bottom-right.
func (e *Emitter) texCorners() (u0, v0, u1, v1 float32) {
	w := float32(e.texShapes.Width)
	h := float32(e.texShapes.Height)
	u0 = e.texSource.X / w
	v0 = e.texSource.Y / h
	u1 = (e.texSource.X + e.texSource.Width) / w
	v1 = (e.texSource.Y + e.texSource.Height) / h
	return u0, v0, u1, v1
}
