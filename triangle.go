package shapes

// Triangle draws a color-filled triangle. Vertices must be provided in
// counter-clockwise order on screen; the emitter does not reorder.
func (e *Emitter) Triangle(v1, v2, v3 Point, col Color) {
	if e.assembly == AssemblyQuads {
		u0, v0, u1, vv1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)

		e.r.Color(col)

		e.r.TexCoord(u0, v0)
		e.r.Vertex(v1.X, v1.Y)

		e.r.TexCoord(u0, vv1)
		e.r.Vertex(v2.X, v2.Y)

		e.r.TexCoord(u1, vv1)
		e.r.Vertex(v2.X, v2.Y)

		e.r.TexCoord(u1, v0)
		e.r.Vertex(v3.X, v3.Y)

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	e.r.Color(col)
	e.r.Vertex(v1.X, v1.Y)
	e.r.Vertex(v2.X, v2.Y)
	e.r.Vertex(v3.X, v3.Y)
	e.r.End()
}

// TriangleLines draws the outline of a triangle. Vertices must be
// provided in counter-clockwise order on screen.
func (e *Emitter) TriangleLines(v1, v2, v3 Point, col Color) {
	e.r.Begin(ModeLines)
	e.r.Color(col)

	e.r.Vertex(v1.X, v1.Y)
	e.r.Vertex(v2.X, v2.Y)

	e.r.Vertex(v2.X, v2.Y)
	e.r.Vertex(v3.X, v3.Y)

	e.r.Vertex(v3.X, v3.Y)
	e.r.Vertex(v1.X, v1.Y)

	e.r.End()
}

// TriangleFan draws a fan of triangles sharing points[0] as the center.
// Points after the first should be in counter-clockwise order on screen.
// Fewer than three points draws nothing.
func (e *Emitter) TriangleFan(points []Point, col Color) {
	if len(points) < 3 {
		return
	}

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)
		e.r.Color(col)

		for i := 1; i < len(points)-1; i++ {
			e.r.TexCoord(u0, v0)
			e.r.Vertex(points[0].X, points[0].Y)

			e.r.TexCoord(u0, v1)
			e.r.Vertex(points[i].X, points[i].Y)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(points[i+1].X, points[i+1].Y)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(points[i+1].X, points[i+1].Y)
		}

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	e.r.Color(col)
	for i := 1; i < len(points)-1; i++ {
		e.r.Vertex(points[0].X, points[0].Y)
		e.r.Vertex(points[i].X, points[i].Y)
		e.r.Vertex(points[i+1].X, points[i+1].Y)
	}
	e.r.End()
}

// TriangleStrip draws a strip of triangles where every new point connects
// with the previous two. The winding order alternates by index parity so
// every triangle in the zig-zag keeps counter-clockwise winding; this
// alternation is load-bearing geometry, not a stylistic choice.
// Fewer than three points draws nothing.
func (e *Emitter) TriangleStrip(points []Point, col Color) {
	if len(points) < 3 {
		return
	}

	e.r.Begin(ModeTriangles)
	e.r.Color(col)

	for i := 2; i < len(points); i++ {
		if i%2 == 0 {
			e.r.Vertex(points[i].X, points[i].Y)
			e.r.Vertex(points[i-2].X, points[i-2].Y)
			e.r.Vertex(points[i-1].X, points[i-1].Y)
		} else {
			e.r.Vertex(points[i].X, points[i].Y)
			e.r.Vertex(points[i-1].X, points[i-1].Y)
			e.r.Vertex(points[i-2].X, points[i-2].Y)
		}
	}

	e.r.End()
}
