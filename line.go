package shapes

import "github.com/chewxy/math32"

// Pixel draws a single pixel as a 1x1 filled quad or triangle pair.
func (e *Emitter) Pixel(pos Point, col Color) {
	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)

		e.r.Normal(0, 0, 1)
		e.r.Color(col)

		e.r.TexCoord(u0, v0)
		e.r.Vertex(pos.X, pos.Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(pos.X, pos.Y+1)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(pos.X+1, pos.Y+1)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(pos.X+1, pos.Y)

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	e.r.Color(col)

	e.r.Vertex(pos.X, pos.Y)
	e.r.Vertex(pos.X, pos.Y+1)
	e.r.Vertex(pos.X+1, pos.Y)

	e.r.Vertex(pos.X+1, pos.Y)
	e.r.Vertex(pos.X, pos.Y+1)
	e.r.Vertex(pos.X+1, pos.Y+1)

	e.r.End()
}

// Line draws a thin line between two points.
func (e *Emitter) Line(start, end Point, col Color) {
	e.r.Begin(ModeLines)
	e.r.Color(col)
	e.r.Vertex(start.X, start.Y)
	e.r.Vertex(end.X, end.Y)
	e.r.End()
}

// LineStrip draws a sequence of connected thin lines.
// Fewer than two points draws nothing.
func (e *Emitter) LineStrip(points []Point, col Color) {
	if len(points) < 2 {
		return
	}

	e.r.Begin(ModeLines)
	e.r.Color(col)
	for i := 0; i < len(points)-1; i++ {
		e.r.Vertex(points[i].X, points[i].Y)
		e.r.Vertex(points[i+1].X, points[i+1].Y)
	}
	e.r.End()
}

// LineEx draws a line with thickness as a quad built from a perpendicular
// offset of thick/2 on each side. A zero-length line or non-positive
// thickness draws nothing.
func (e *Emitter) LineEx(start, end Point, thick float32, col Color) {
	delta := end.Sub(start)
	length := delta.Length()

	if length <= 0 || thick <= 0 {
		return
	}

	scale := thick / (2 * length)
	radius := Point{X: -scale * delta.Y, Y: scale * delta.X}
	strip := []Point{
		{X: start.X - radius.X, Y: start.Y - radius.Y},
		{X: start.X + radius.X, Y: start.Y + radius.Y},
		{X: end.X - radius.X, Y: end.Y - radius.Y},
		{X: end.X + radius.X, Y: end.Y + radius.Y},
	}

	e.TriangleStrip(strip, col)
}

// LineBezier draws a line that eases vertically between the endpoints
// while x advances linearly.
//
// This is a named special case kept for API compatibility, not a
// geometric bezier: a cubic ease in-out is applied to the y coordinate
// only. Use LineBezierQuad or LineBezierCubic for true bezier curves.
func (e *Emitter) LineBezier(start, end Point, thick float32, col Color) {
	divs := float32(e.bezierDivs)
	e.bezierRibbon(func(t float32) Point {
		return Point{
			X: start.X + (end.X-start.X)*t,
			Y: easeCubicInOut(t*divs, start.Y, end.Y-start.Y, divs),
		}
	}, thick, col)
}

// LineBezierQuad draws a quadratic bezier line with one control point.
func (e *Emitter) LineBezierQuad(start, end, control Point, thick float32, col Color) {
	e.bezierRibbon(func(t float32) Point {
		a := (1 - t) * (1 - t)
		b := 2 * (1 - t) * t
		c := t * t
		return Point{
			X: a*start.X + b*control.X + c*end.X,
			Y: a*start.Y + b*control.Y + c*end.Y,
		}
	}, thick, col)
}

// LineBezierCubic draws a cubic bezier line with two control points.
func (e *Emitter) LineBezierCubic(start, end, startControl, endControl Point, thick float32, col Color) {
	e.bezierRibbon(func(t float32) Point {
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		return Point{
			X: a*start.X + b*startControl.X + c*endControl.X + d*end.X,
			Y: a*start.Y + b*startControl.Y + c*endControl.Y + d*end.Y,
		}
	}, thick, col)
}

// bezierRibbon samples eval at bezierDivs+1 parameter values and emits the
// offset ribbon as one triangle strip of 2*divs+2 points. The thickness
// offset at each sample is perpendicular to the local tangent.
func (e *Emitter) bezierRibbon(eval func(t float32) Point, thick float32, col Color) {
	divs := e.bezierDivs
	step := 1 / float32(divs)

	previous := eval(0)
	points := make([]Point, 2*divs+2)

	for i := 1; i <= divs; i++ {
		current := eval(step * float32(i))

		dy := current.Y - previous.Y
		dx := current.X - previous.X
		size := 0.5 * thick / math32.Sqrt(dx*dx+dy*dy)

		if i == 1 {
			points[0] = Point{X: previous.X + dy*size, Y: previous.Y - dx*size}
			points[1] = Point{X: previous.X - dy*size, Y: previous.Y + dx*size}
		}

		points[2*i+1] = Point{X: current.X - dy*size, Y: current.Y + dx*size}
		points[2*i] = Point{X: current.X + dy*size, Y: current.Y - dx*size}

		previous = current
	}

	e.TriangleStrip(points, col)
}

// easeCubicInOut is the cubic easing used by LineBezier: t is the current
// step, b the start value, c the total change, d the total steps.
func easeCubicInOut(t, b, c, d float32) float32 {
	t /= 0.5 * d
	if t < 1 {
		return 0.5*c*t*t*t + b
	}
	t -= 2
	return 0.5*c*(t*t*t+2) + b
}
