package shapes

import "github.com/chewxy/math32"

// Circle draws a color-filled circle.
func (e *Emitter) Circle(center Point, radius float32, col Color) {
	e.CircleSector(center, radius, 0, 360, 36, col)
}

// CircleSector draws a filled piece of a circle. Angles are in degrees and
// are swapped if endAngle < startAngle. A non-positive radius is clamped
// to 0.1 to avoid division by zero in the tessellator.
//
// If segments is below the minimum of one per quarter-turn, the segment
// count is computed adaptively from the arc error tolerance.
func (e *Emitter) CircleSector(center Point, radius, startAngle, endAngle float32, segments int, col Color) {
	if radius <= 0 {
		radius = 0.1 // Avoid div by zero
	}

	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	minSegments := int(math32.Ceil((endAngle - startAngle) / 90))
	if segments < minSegments {
		segments = ArcSegments(radius, endAngle-startAngle, e.arcError)
		if segments < minSegments {
			segments = minSegments
		}
	}

	stepLength := (endAngle - startAngle) / float32(segments)
	angle := startAngle

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)

		// Every quad covers two segments.
		for i := 0; i < segments/2; i++ {
			e.r.Color(col)

			e.r.TexCoord(u0, v0)
			e.r.Vertex(center.X, center.Y)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength*2))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength*2))*radius)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*radius)

			e.r.TexCoord(u0, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)

			angle += stepLength * 2
		}

		// Odd segment count leaves one last piece of the cake, emitted as
		// a degenerate quad (one vertex repeated).
		if segments%2 == 1 {
			e.r.Color(col)

			e.r.TexCoord(u0, v0)
			e.r.Vertex(center.X, center.Y)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*radius)

			e.r.TexCoord(u0, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(center.X, center.Y)
		}

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	for i := 0; i < segments; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X, center.Y)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*radius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)

		angle += stepLength
	}
	e.r.End()
}

// CircleSectorLines draws the outline of a circle sector. The two cap
// radii joining the center to the arc endpoints are controlled by
// WithSectorCapLines (default on).
func (e *Emitter) CircleSectorLines(center Point, radius, startAngle, endAngle float32, segments int, col Color) {
	if radius <= 0 {
		radius = 0.1 // Avoid div by zero
	}

	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	minSegments := int(math32.Ceil((endAngle - startAngle) / 90))
	if segments < minSegments {
		segments = ArcSegments(radius, endAngle-startAngle, e.arcError)
		if segments < minSegments {
			segments = minSegments
		}
	}

	stepLength := (endAngle - startAngle) / float32(segments)
	angle := startAngle

	e.r.Begin(ModeLines)

	if e.capLines {
		e.r.Color(col)
		e.r.Vertex(center.X, center.Y)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)
	}

	for i := 0; i < segments; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*radius)

		angle += stepLength
	}

	if e.capLines {
		e.r.Color(col)
		e.r.Vertex(center.X, center.Y)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)
	}

	e.r.End()
}

// CircleGradient draws a circle interpolating two colors, inner at the
// center and outer at the rim.
//
// The resolution is a fixed 36 segments (10 degree steps) rather than
// adaptive; gradients hide faceting well enough that the fixed fan is an
// intentional simplification.
func (e *Emitter) CircleGradient(center Point, radius float32, inner, outer Color) {
	e.r.Begin(ModeTriangles)
	for i := 0; i < 360; i += 10 {
		e.r.Color(inner)
		e.r.Vertex(center.X, center.Y)
		e.r.Color(outer)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i+10))*radius, center.Y+math32.Sin(deg2Rad*float32(i+10))*radius)
		e.r.Color(outer)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i))*radius, center.Y+math32.Sin(deg2Rad*float32(i))*radius)
	}
	e.r.End()
}

// CircleLines draws a circle outline at a fixed 10 degree resolution.
func (e *Emitter) CircleLines(center Point, radius float32, col Color) {
	e.r.Begin(ModeLines)
	e.r.Color(col)

	for i := 0; i < 360; i += 10 {
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i))*radius, center.Y+math32.Sin(deg2Rad*float32(i))*radius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i+10))*radius, center.Y+math32.Sin(deg2Rad*float32(i+10))*radius)
	}
	e.r.End()
}

// Ellipse draws a filled ellipse at a fixed 10 degree resolution.
func (e *Emitter) Ellipse(center Point, radiusH, radiusV float32, col Color) {
	e.r.Begin(ModeTriangles)
	for i := 0; i < 360; i += 10 {
		e.r.Color(col)
		e.r.Vertex(center.X, center.Y)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i+10))*radiusH, center.Y+math32.Sin(deg2Rad*float32(i+10))*radiusV)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i))*radiusH, center.Y+math32.Sin(deg2Rad*float32(i))*radiusV)
	}
	e.r.End()
}

// EllipseLines draws an ellipse outline at a fixed 10 degree resolution.
func (e *Emitter) EllipseLines(center Point, radiusH, radiusV float32, col Color) {
	e.r.Begin(ModeLines)
	for i := 0; i < 360; i += 10 {
		e.r.Color(col)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i+10))*radiusH, center.Y+math32.Sin(deg2Rad*float32(i+10))*radiusV)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*float32(i))*radiusH, center.Y+math32.Sin(deg2Rad*float32(i))*radiusV)
	}
	e.r.End()
}

// Ring draws a filled ring segment between two radii. Radii and angles are
// each swapped into order if reversed. A zero-sweep ring draws nothing,
// and a ring whose inner radius collapses to zero degrades to a circle
// sector.
func (e *Emitter) Ring(center Point, innerRadius, outerRadius, startAngle, endAngle float32, segments int, col Color) {
	if startAngle == endAngle {
		return
	}

	if outerRadius < innerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
		if outerRadius <= 0 {
			outerRadius = 0.1
		}
	}

	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	minSegments := int(math32.Ceil((endAngle - startAngle) / 90))
	if segments < minSegments {
		segments = ArcSegments(outerRadius, endAngle-startAngle, e.arcError)
		if segments < minSegments {
			segments = minSegments
		}
	}

	// Not a ring
	if innerRadius <= 0 {
		e.CircleSector(center, outerRadius, startAngle, endAngle, segments, col)
		return
	}

	stepLength := (endAngle - startAngle) / float32(segments)
	angle := startAngle

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)
		for i := 0; i < segments; i++ {
			e.r.Color(col)

			e.r.TexCoord(u0, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)

			e.r.TexCoord(u0, v0)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)

			e.r.TexCoord(u1, v0)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*innerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*innerRadius)

			e.r.TexCoord(u1, v1)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*outerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*outerRadius)

			angle += stepLength
		}
		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	for i := 0; i < segments; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*innerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*innerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)

		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*innerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*innerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*outerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*outerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)

		angle += stepLength
	}
	e.r.End()
}

// RingLines draws the outline of a ring segment, with cap lines joining
// the inner and outer arcs controlled by WithSectorCapLines.
func (e *Emitter) RingLines(center Point, innerRadius, outerRadius, startAngle, endAngle float32, segments int, col Color) {
	if startAngle == endAngle {
		return
	}

	if outerRadius < innerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
		if outerRadius <= 0 {
			outerRadius = 0.1
		}
	}

	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	minSegments := int(math32.Ceil((endAngle - startAngle) / 90))
	if segments < minSegments {
		segments = ArcSegments(outerRadius, endAngle-startAngle, e.arcError)
		if segments < minSegments {
			segments = minSegments
		}
	}

	if innerRadius <= 0 {
		e.CircleSectorLines(center, outerRadius, startAngle, endAngle, segments, col)
		return
	}

	stepLength := (endAngle - startAngle) / float32(segments)
	angle := startAngle

	e.r.Begin(ModeLines)

	if e.capLines {
		e.r.Color(col)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)
	}

	for i := 0; i < segments; i++ {
		e.r.Color(col)

		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*outerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*outerRadius)

		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*innerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*innerRadius)

		angle += stepLength
	}

	if e.capLines {
		e.r.Color(col)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)
		e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)
	}

	e.r.End()
}
