package shapes

import "github.com/chewxy/math32"

// Polygon draws a filled regular polygon of n sides, rotated by rotation
// degrees. Fewer than three sides is clamped to three.
func (e *Emitter) Polygon(center Point, sides int, radius, rotation float32, col Color) {
	if sides < 3 {
		sides = 3
	}
	centralAngle := rotation * deg2Rad
	angleStep := 360 / float32(sides) * deg2Rad

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)
		for i := 0; i < sides; i++ {
			e.r.Color(col)
			nextAngle := centralAngle + angleStep

			e.r.TexCoord(u0, v0)
			e.r.Vertex(center.X, center.Y)

			e.r.TexCoord(u0, v1)
			e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(center.X+math32.Cos(nextAngle)*radius, center.Y+math32.Sin(nextAngle)*radius)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)

			centralAngle = nextAngle
		}
		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	for i := 0; i < sides; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X, center.Y)
		e.r.Vertex(center.X+math32.Cos(centralAngle+angleStep)*radius, center.Y+math32.Sin(centralAngle+angleStep)*radius)
		e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)

		centralAngle += angleStep
	}
	e.r.End()
}

// PolygonLines draws the outline of a regular polygon of n sides.
func (e *Emitter) PolygonLines(center Point, sides int, radius, rotation float32, col Color) {
	if sides < 3 {
		sides = 3
	}
	centralAngle := rotation * deg2Rad
	angleStep := 360 / float32(sides) * deg2Rad

	e.r.Begin(ModeLines)
	for i := 0; i < sides; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)
		e.r.Vertex(center.X+math32.Cos(centralAngle+angleStep)*radius, center.Y+math32.Sin(centralAngle+angleStep)*radius)

		centralAngle += angleStep
	}
	e.r.End()
}

// PolygonLinesEx draws a regular polygon outline with stroke thickness.
// The inner radius is pulled in by lineThick*cos(exteriorAngle/2) so the
// stroke is centered on the ideal polygon edge rather than sitting purely
// inside or outside it.
func (e *Emitter) PolygonLinesEx(center Point, sides int, radius, rotation, lineThick float32, col Color) {
	if sides < 3 {
		sides = 3
	}
	centralAngle := rotation * deg2Rad
	exteriorAngle := 360 / float32(sides) * deg2Rad
	innerRadius := radius - lineThick*math32.Cos(exteriorAngle/2)

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)
		for i := 0; i < sides; i++ {
			e.r.Color(col)
			nextAngle := centralAngle + exteriorAngle

			e.r.TexCoord(u0, v1)
			e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)

			e.r.TexCoord(u0, v0)
			e.r.Vertex(center.X+math32.Cos(centralAngle)*innerRadius, center.Y+math32.Sin(centralAngle)*innerRadius)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(center.X+math32.Cos(nextAngle)*innerRadius, center.Y+math32.Sin(nextAngle)*innerRadius)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(center.X+math32.Cos(nextAngle)*radius, center.Y+math32.Sin(nextAngle)*radius)

			centralAngle = nextAngle
		}
		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	for i := 0; i < sides; i++ {
		e.r.Color(col)
		nextAngle := centralAngle + exteriorAngle

		e.r.Vertex(center.X+math32.Cos(nextAngle)*radius, center.Y+math32.Sin(nextAngle)*radius)
		e.r.Vertex(center.X+math32.Cos(centralAngle)*radius, center.Y+math32.Sin(centralAngle)*radius)
		e.r.Vertex(center.X+math32.Cos(centralAngle)*innerRadius, center.Y+math32.Sin(centralAngle)*innerRadius)

		e.r.Vertex(center.X+math32.Cos(centralAngle)*innerRadius, center.Y+math32.Sin(centralAngle)*innerRadius)
		e.r.Vertex(center.X+math32.Cos(nextAngle)*innerRadius, center.Y+math32.Sin(nextAngle)*innerRadius)
		e.r.Vertex(center.X+math32.Cos(nextAngle)*radius, center.Y+math32.Sin(nextAngle)*radius)

		centralAngle = nextAngle
	}
	e.r.End()
}
