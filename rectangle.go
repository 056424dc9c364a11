package shapes

import "github.com/chewxy/math32"

// Rectangle draws a color-filled rectangle.
func (e *Emitter) Rectangle(rec Rect, col Color) {
	e.RectanglePro(rec, Point{}, 0, col)
}

// RectanglePro draws a color-filled rectangle rotated by rotation degrees
// around origin (an offset from the rectangle's top-left corner).
//
// Corner order is top-left, bottom-left, bottom-right, top-right
// (counter-clockwise on screen); this winding is what downstream face
// culling relies on.
func (e *Emitter) RectanglePro(rec Rect, origin Point, rotation float32, col Color) {
	var topLeft, topRight, bottomLeft, bottomRight Point

	// Only compute rotation when needed.
	if rotation == 0 {
		x := rec.X - origin.X
		y := rec.Y - origin.Y
		topLeft = Point{X: x, Y: y}
		topRight = Point{X: x + rec.Width, Y: y}
		bottomLeft = Point{X: x, Y: y + rec.Height}
		bottomRight = Point{X: x + rec.Width, Y: y + rec.Height}
	} else {
		sin := math32.Sin(rotation * deg2Rad)
		cos := math32.Cos(rotation * deg2Rad)
		x := rec.X
		y := rec.Y
		dx := -origin.X
		dy := -origin.Y

		topLeft = Point{
			X: x + dx*cos - dy*sin,
			Y: y + dx*sin + dy*cos,
		}
		topRight = Point{
			X: x + (dx+rec.Width)*cos - dy*sin,
			Y: y + (dx+rec.Width)*sin + dy*cos,
		}
		bottomLeft = Point{
			X: x + dx*cos - (dy+rec.Height)*sin,
			Y: y + dx*sin + (dy+rec.Height)*cos,
		}
		bottomRight = Point{
			X: x + (dx+rec.Width)*cos - (dy+rec.Height)*sin,
			Y: y + (dx+rec.Width)*sin + (dy+rec.Height)*cos,
		}
	}

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)

		e.r.Normal(0, 0, 1)
		e.r.Color(col)

		e.r.TexCoord(u0, v0)
		e.r.Vertex(topLeft.X, topLeft.Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(bottomLeft.X, bottomLeft.Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(bottomRight.X, bottomRight.Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(topRight.X, topRight.Y)

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)
	e.r.Color(col)

	e.r.Vertex(topLeft.X, topLeft.Y)
	e.r.Vertex(bottomLeft.X, bottomLeft.Y)
	e.r.Vertex(topRight.X, topRight.Y)

	e.r.Vertex(topRight.X, topRight.Y)
	e.r.Vertex(bottomLeft.X, bottomLeft.Y)
	e.r.Vertex(bottomRight.X, bottomRight.Y)

	e.r.End()
}

// RectangleGradientV draws a rectangle with a vertical gradient from col1
// at the top to col2 at the bottom.
func (e *Emitter) RectangleGradientV(rec Rect, col1, col2 Color) {
	e.RectangleGradientEx(rec, col1, col2, col2, col1)
}

// RectangleGradientH draws a rectangle with a horizontal gradient from
// col1 at the left to col2 at the right.
func (e *Emitter) RectangleGradientH(rec Rect, col1, col2 Color) {
	e.RectangleGradientEx(rec, col1, col1, col2, col2)
}

// RectangleGradientEx draws a rectangle with a color at each corner,
// starting at the top-left and continuing counter-clockwise on screen.
// The four-corner interpolation needs a quad regardless of the assembly
// selected for filled shapes.
func (e *Emitter) RectangleGradientEx(rec Rect, col1, col2, col3, col4 Color) {
	u0, v0, u1, v1 := e.texCorners()

	e.r.SetTexture(e.texShapes.ID)
	e.r.Begin(ModeQuads)

	e.r.Normal(0, 0, 1)

	e.r.Color(col1)
	e.r.TexCoord(u0, v0)
	e.r.Vertex(rec.X, rec.Y)

	e.r.Color(col2)
	e.r.TexCoord(u0, v1)
	e.r.Vertex(rec.X, rec.Y+rec.Height)

	e.r.Color(col3)
	e.r.TexCoord(u1, v1)
	e.r.Vertex(rec.X+rec.Width, rec.Y+rec.Height)

	e.r.Color(col4)
	e.r.TexCoord(u1, v0)
	e.r.Vertex(rec.X+rec.Width, rec.Y)

	e.r.End()
	e.r.SetTexture(0)
}

// RectangleLines draws a one-pixel rectangle outline. Quad assembly uses
// four thin filled bars; triangle assembly uses raw line segments with the
// classic one-pixel inset so the outline lands on the same pixels.
func (e *Emitter) RectangleLines(rec Rect, col Color) {
	if e.assembly == AssemblyQuads {
		e.Rectangle(Rect{X: rec.X, Y: rec.Y, Width: rec.Width, Height: 1}, col)
		e.Rectangle(Rect{X: rec.X + rec.Width - 1, Y: rec.Y + 1, Width: 1, Height: rec.Height - 2}, col)
		e.Rectangle(Rect{X: rec.X, Y: rec.Y + rec.Height - 1, Width: rec.Width, Height: 1}, col)
		e.Rectangle(Rect{X: rec.X, Y: rec.Y + 1, Width: 1, Height: rec.Height - 2}, col)
		return
	}

	e.r.Begin(ModeLines)
	e.r.Color(col)

	e.r.Vertex(rec.X+1, rec.Y+1)
	e.r.Vertex(rec.X+rec.Width, rec.Y+1)

	e.r.Vertex(rec.X+rec.Width, rec.Y+1)
	e.r.Vertex(rec.X+rec.Width, rec.Y+rec.Height)

	e.r.Vertex(rec.X+rec.Width, rec.Y+rec.Height)
	e.r.Vertex(rec.X+1, rec.Y+rec.Height)

	e.r.Vertex(rec.X+1, rec.Y+rec.Height)
	e.r.Vertex(rec.X+1, rec.Y+1)

	e.r.End()
}

// RectangleLinesEx draws a rectangle outline with thickness, as four
// filled bars (top and bottom spanning the full width, left and right
// spanning the reduced height). Thickness exceeding the rectangle size is
// clamped to half the shorter dimension; a thickness of one or less falls
// back to plain line segments.
func (e *Emitter) RectangleLinesEx(rec Rect, lineThick float32, col Color) {
	if lineThick > rec.Width || lineThick > rec.Height {
		if rec.Width > rec.Height {
			lineThick = rec.Height / 2
		} else if rec.Width < rec.Height {
			lineThick = rec.Width / 2
		}
	}

	if lineThick <= 1 {
		e.RectangleLines(rec, col)
		return
	}

	// When rec = { x, y, 8.0, 6.0 } and lineThick = 2, the following
	// four rectangles are drawn ([T]op, [B]ottom, [L]eft, [R]ight):
	//
	//   TTTTTTTT
	//   TTTTTTTT
	//   LL    RR
	//   LL    RR
	//   BBBBBBBB
	//   BBBBBBBB

	top := Rect{X: rec.X, Y: rec.Y, Width: rec.Width, Height: lineThick}
	bottom := Rect{X: rec.X, Y: rec.Y - lineThick + rec.Height, Width: rec.Width, Height: lineThick}
	left := Rect{X: rec.X, Y: rec.Y + lineThick, Width: lineThick, Height: rec.Height - lineThick*2}
	right := Rect{X: rec.X - lineThick + rec.Width, Y: rec.Y + lineThick, Width: lineThick, Height: rec.Height - lineThick*2}

	e.Rectangle(top, col)
	e.Rectangle(bottom, col)
	e.Rectangle(left, col)
	e.Rectangle(right, col)
}

// roundedCornerAngles maps corner index (top-left, top-right,
// bottom-right, bottom-left) to the start angle of its quarter arc.
// Getting this mapping wrong shows up as seams between adjacent shapes.
var roundedCornerAngles = [4]float32{180, 270, 0, 90}

// RectangleRounded draws a rectangle with rounded corners. The corner
// radius is roundness (clamped to [0,1]) times half the shorter dimension.
// A non-positive roundness or a degenerate rectangle degrades to a plain
// Rectangle. Fewer than 4 requested segments triggers adaptive
// tessellation of the quarter-turn corner arcs.
func (e *Emitter) RectangleRounded(rec Rect, roundness float32, segments int, col Color) {
	// Not a rounded rectangle
	if roundness <= 0 || rec.Width < 1 || rec.Height < 1 {
		e.Rectangle(rec, col)
		return
	}

	if roundness >= 1 {
		roundness = 1
	}

	// Calculate corner radius
	var radius float32
	if rec.Width > rec.Height {
		radius = rec.Height * roundness / 2
	} else {
		radius = rec.Width * roundness / 2
	}
	if radius <= 0 {
		return
	}

	// Calculate number of segments to use for the corners
	if segments < 4 {
		segments = arcSegmentsRaw(radius, 360, e.arcError) / 4
		if segments <= 0 {
			segments = 4
		}
	}

	stepLength := 90 / float32(segments)

	/*
	   Quick sketch to make sense of all of this,
	   there are 9 parts to draw, also mark the 12 points we'll use

	         P0____________________P1
	         /|                    |\
	        /1|          2         |3\
	    P7 /__|____________________|__\ P2
	      |   |P8                P9|   |
	      | 8 |          9         | 4 |
	      | __|____________________|__ |
	    P6 \  |P11              P10|  / P3
	        \7|          6         |5/
	         \|____________________|/
	         P5                    P4
	*/
	point := [12]Point{
		{X: rec.X + radius, Y: rec.Y}, {X: rec.X + rec.Width - radius, Y: rec.Y}, {X: rec.X + rec.Width, Y: rec.Y + radius}, // P0, P1, P2
		{X: rec.X + rec.Width, Y: rec.Y + rec.Height - radius}, {X: rec.X + rec.Width - radius, Y: rec.Y + rec.Height}, // P3, P4
		{X: rec.X + radius, Y: rec.Y + rec.Height}, {X: rec.X, Y: rec.Y + rec.Height - radius}, {X: rec.X, Y: rec.Y + radius}, // P5, P6, P7
		{X: rec.X + radius, Y: rec.Y + radius}, {X: rec.X + rec.Width - radius, Y: rec.Y + radius}, // P8, P9
		{X: rec.X + rec.Width - radius, Y: rec.Y + rec.Height - radius}, {X: rec.X + radius, Y: rec.Y + rec.Height - radius}, // P10, P11
	}

	centers := [4]Point{point[8], point[9], point[10], point[11]}

	if e.assembly == AssemblyQuads {
		u0, v0, u1, v1 := e.texCorners()

		e.r.SetTexture(e.texShapes.ID)
		e.r.Begin(ModeQuads)

		// Corner fans: upper-left, upper-right, lower-right, lower-left.
		for k := 0; k < 4; k++ {
			angle := roundedCornerAngles[k]
			center := centers[k]

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

			// Odd segment count leaves one last piece of the cake.
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
		}

		// [2] Upper rectangle
		e.r.Color(col)
		e.r.TexCoord(u0, v0)
		e.r.Vertex(point[0].X, point[0].Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(point[8].X, point[8].Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(point[9].X, point[9].Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(point[1].X, point[1].Y)

		// [4] Right rectangle
		e.r.Color(col)
		e.r.TexCoord(u0, v0)
		e.r.Vertex(point[2].X, point[2].Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(point[9].X, point[9].Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(point[10].X, point[10].Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(point[3].X, point[3].Y)

		// [6] Bottom rectangle
		e.r.Color(col)
		e.r.TexCoord(u0, v0)
		e.r.Vertex(point[11].X, point[11].Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(point[5].X, point[5].Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(point[4].X, point[4].Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(point[10].X, point[10].Y)

		// [8] Left rectangle
		e.r.Color(col)
		e.r.TexCoord(u0, v0)
		e.r.Vertex(point[7].X, point[7].Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(point[6].X, point[6].Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(point[11].X, point[11].Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(point[8].X, point[8].Y)

		// [9] Middle rectangle
		e.r.Color(col)
		e.r.TexCoord(u0, v0)
		e.r.Vertex(point[8].X, point[8].Y)
		e.r.TexCoord(u0, v1)
		e.r.Vertex(point[11].X, point[11].Y)
		e.r.TexCoord(u1, v1)
		e.r.Vertex(point[10].X, point[10].Y)
		e.r.TexCoord(u1, v0)
		e.r.Vertex(point[9].X, point[9].Y)

		e.r.End()
		e.r.SetTexture(0)
		return
	}

	e.r.Begin(ModeTriangles)

	// Corner fans: upper-left, upper-right, lower-right, lower-left.
	for k := 0; k < 4; k++ {
		angle := roundedCornerAngles[k]
		center := centers[k]
		for i := 0; i < segments; i++ {
			e.r.Color(col)
			e.r.Vertex(center.X, center.Y)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*radius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*radius)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*radius, center.Y+math32.Sin(deg2Rad*angle)*radius)
			angle += stepLength
		}
	}

	// [2] Upper rectangle
	e.r.Color(col)
	e.r.Vertex(point[0].X, point[0].Y)
	e.r.Vertex(point[8].X, point[8].Y)
	e.r.Vertex(point[9].X, point[9].Y)
	e.r.Vertex(point[1].X, point[1].Y)
	e.r.Vertex(point[0].X, point[0].Y)
	e.r.Vertex(point[9].X, point[9].Y)

	// [4] Right rectangle
	e.r.Color(col)
	e.r.Vertex(point[9].X, point[9].Y)
	e.r.Vertex(point[10].X, point[10].Y)
	e.r.Vertex(point[3].X, point[3].Y)
	e.r.Vertex(point[2].X, point[2].Y)
	e.r.Vertex(point[9].X, point[9].Y)
	e.r.Vertex(point[3].X, point[3].Y)

	// [6] Bottom rectangle
	e.r.Color(col)
	e.r.Vertex(point[11].X, point[11].Y)
	e.r.Vertex(point[5].X, point[5].Y)
	e.r.Vertex(point[4].X, point[4].Y)
	e.r.Vertex(point[10].X, point[10].Y)
	e.r.Vertex(point[11].X, point[11].Y)
	e.r.Vertex(point[4].X, point[4].Y)

	// [8] Left rectangle
	e.r.Color(col)
	e.r.Vertex(point[7].X, point[7].Y)
	e.r.Vertex(point[6].X, point[6].Y)
	e.r.Vertex(point[11].X, point[11].Y)
	e.r.Vertex(point[8].X, point[8].Y)
	e.r.Vertex(point[7].X, point[7].Y)
	e.r.Vertex(point[11].X, point[11].Y)

	// [9] Middle rectangle
	e.r.Color(col)
	e.r.Vertex(point[8].X, point[8].Y)
	e.r.Vertex(point[11].X, point[11].Y)
	e.r.Vertex(point[10].X, point[10].Y)
	e.r.Vertex(point[9].X, point[9].Y)
	e.r.Vertex(point[8].X, point[8].Y)
	e.r.Vertex(point[10].X, point[10].Y)

	e.r.End()
}

// RectangleRoundedLines draws the outline of a rounded rectangle with
// thickness. The stroke sits outside the rectangle: the outer arc radius
// is the corner radius plus lineThick. A thickness of one or less draws
// the outline as raw line segments.
func (e *Emitter) RectangleRoundedLines(rec Rect, roundness float32, segments int, lineThick float32, col Color) {
	if lineThick < 0 {
		lineThick = 0
	}

	// Not a rounded rectangle
	if roundness <= 0 {
		e.RectangleLinesEx(Rect{
			X:      rec.X - lineThick,
			Y:      rec.Y - lineThick,
			Width:  rec.Width + 2*lineThick,
			Height: rec.Height + 2*lineThick,
		}, lineThick, col)
		return
	}

	if roundness >= 1 {
		roundness = 1
	}

	// Calculate corner radius
	var radius float32
	if rec.Width > rec.Height {
		radius = rec.Height * roundness / 2
	} else {
		radius = rec.Width * roundness / 2
	}
	if radius <= 0 {
		return
	}

	// Calculate number of segments to use for the corners
	if segments < 4 {
		segments = arcSegmentsRaw(radius, 360, e.arcError) / 2
		if segments <= 0 {
			segments = 4
		}
	}

	stepLength := 90 / float32(segments)
	outerRadius := radius + lineThick
	innerRadius := radius

	/*
	   Quick sketch to make sense of all of this,
	   marks the 16 + 4 (corner centers P16-19) points we'll use

	          P0 ================== P1
	         // P8                P9 \\
	        //                        \\
	    P7 // P15                  P10 \\ P2
	      ||   *P16             P17*    ||
	      ||                            ||
	      || P14                   P11  ||
	    P6 \\  *P19             P18*   // P3
	        \\                        //
	         \\ P13              P12 //
	          P5 ================== P4
	*/
	point := [16]Point{
		{X: rec.X + innerRadius, Y: rec.Y - lineThick}, {X: rec.X + rec.Width - innerRadius, Y: rec.Y - lineThick}, {X: rec.X + rec.Width + lineThick, Y: rec.Y + innerRadius}, // P0, P1, P2
		{X: rec.X + rec.Width + lineThick, Y: rec.Y + rec.Height - innerRadius}, {X: rec.X + rec.Width - innerRadius, Y: rec.Y + rec.Height + lineThick}, // P3, P4
		{X: rec.X + innerRadius, Y: rec.Y + rec.Height + lineThick}, {X: rec.X - lineThick, Y: rec.Y + rec.Height - innerRadius}, {X: rec.X - lineThick, Y: rec.Y + innerRadius}, // P5, P6, P7
		{X: rec.X + innerRadius, Y: rec.Y}, {X: rec.X + rec.Width - innerRadius, Y: rec.Y}, // P8, P9
		{X: rec.X + rec.Width, Y: rec.Y + innerRadius}, {X: rec.X + rec.Width, Y: rec.Y + rec.Height - innerRadius}, // P10, P11
		{X: rec.X + rec.Width - innerRadius, Y: rec.Y + rec.Height}, {X: rec.X + innerRadius, Y: rec.Y + rec.Height}, // P12, P13
		{X: rec.X, Y: rec.Y + rec.Height - innerRadius}, {X: rec.X, Y: rec.Y + innerRadius}, // P14, P15
	}

	centers := [4]Point{
		{X: rec.X + innerRadius, Y: rec.Y + innerRadius}, {X: rec.X + rec.Width - innerRadius, Y: rec.Y + innerRadius}, // P16, P17
		{X: rec.X + rec.Width - innerRadius, Y: rec.Y + rec.Height - innerRadius}, {X: rec.X + innerRadius, Y: rec.Y + rec.Height - innerRadius}, // P18, P19
	}

	if lineThick > 1 {
		if e.assembly == AssemblyQuads {
			u0, v0, u1, v1 := e.texCorners()

			e.r.SetTexture(e.texShapes.ID)
			e.r.Begin(ModeQuads)

			// Corner rings: upper-left, upper-right, lower-right, lower-left.
			for k := 0; k < 4; k++ {
				angle := roundedCornerAngles[k]
				center := centers[k]
				for i := 0; i < segments; i++ {
					e.r.Color(col)

					e.r.TexCoord(u0, v0)
					e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*innerRadius, center.Y+math32.Sin(deg2Rad*angle)*innerRadius)

					e.r.TexCoord(u1, v0)
					e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*innerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*innerRadius)

					e.r.TexCoord(u1, v1)
					e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*outerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*outerRadius)

					e.r.TexCoord(u0, v1)
					e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)

					angle += stepLength
				}
			}

			// Upper rectangle
			e.r.Color(col)
			e.r.TexCoord(u0, v0)
			e.r.Vertex(point[0].X, point[0].Y)
			e.r.TexCoord(u0, v1)
			e.r.Vertex(point[8].X, point[8].Y)
			e.r.TexCoord(u1, v1)
			e.r.Vertex(point[9].X, point[9].Y)
			e.r.TexCoord(u1, v0)
			e.r.Vertex(point[1].X, point[1].Y)

			// Right rectangle
			e.r.Color(col)
			e.r.TexCoord(u0, v0)
			e.r.Vertex(point[2].X, point[2].Y)
			e.r.TexCoord(u0, v1)
			e.r.Vertex(point[10].X, point[10].Y)
			e.r.TexCoord(u1, v1)
			e.r.Vertex(point[11].X, point[11].Y)
			e.r.TexCoord(u1, v0)
			e.r.Vertex(point[3].X, point[3].Y)

			// Lower rectangle
			e.r.Color(col)
			e.r.TexCoord(u0, v0)
			e.r.Vertex(point[13].X, point[13].Y)
			e.r.TexCoord(u0, v1)
			e.r.Vertex(point[5].X, point[5].Y)
			e.r.TexCoord(u1, v1)
			e.r.Vertex(point[4].X, point[4].Y)
			e.r.TexCoord(u1, v0)
			e.r.Vertex(point[12].X, point[12].Y)

			// Left rectangle
			e.r.Color(col)
			e.r.TexCoord(u0, v0)
			e.r.Vertex(point[15].X, point[15].Y)
			e.r.TexCoord(u0, v1)
			e.r.Vertex(point[7].X, point[7].Y)
			e.r.TexCoord(u1, v1)
			e.r.Vertex(point[6].X, point[6].Y)
			e.r.TexCoord(u1, v0)
			e.r.Vertex(point[14].X, point[14].Y)

			e.r.End()
			e.r.SetTexture(0)
			return
		}

		e.r.Begin(ModeTriangles)

		// Corner rings: upper-left, upper-right, lower-right, lower-left.
		for k := 0; k < 4; k++ {
			angle := roundedCornerAngles[k]
			center := centers[k]

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
		}

		// Upper rectangle
		e.r.Color(col)
		e.r.Vertex(point[0].X, point[0].Y)
		e.r.Vertex(point[8].X, point[8].Y)
		e.r.Vertex(point[9].X, point[9].Y)
		e.r.Vertex(point[1].X, point[1].Y)
		e.r.Vertex(point[0].X, point[0].Y)
		e.r.Vertex(point[9].X, point[9].Y)

		// Right rectangle
		e.r.Color(col)
		e.r.Vertex(point[10].X, point[10].Y)
		e.r.Vertex(point[11].X, point[11].Y)
		e.r.Vertex(point[3].X, point[3].Y)
		e.r.Vertex(point[2].X, point[2].Y)
		e.r.Vertex(point[10].X, point[10].Y)
		e.r.Vertex(point[3].X, point[3].Y)

		// Lower rectangle
		e.r.Color(col)
		e.r.Vertex(point[13].X, point[13].Y)
		e.r.Vertex(point[5].X, point[5].Y)
		e.r.Vertex(point[4].X, point[4].Y)
		e.r.Vertex(point[12].X, point[12].Y)
		e.r.Vertex(point[13].X, point[13].Y)
		e.r.Vertex(point[4].X, point[4].Y)

		// Left rectangle
		e.r.Color(col)
		e.r.Vertex(point[7].X, point[7].Y)
		e.r.Vertex(point[6].X, point[6].Y)
		e.r.Vertex(point[14].X, point[14].Y)
		e.r.Vertex(point[15].X, point[15].Y)
		e.r.Vertex(point[7].X, point[7].Y)
		e.r.Vertex(point[14].X, point[14].Y)

		e.r.End()
		return
	}

	// Thin outline: raw line segments along the outer edge.
	e.r.Begin(ModeLines)

	// Corner arcs: upper-left, upper-right, lower-right, lower-left.
	for k := 0; k < 4; k++ {
		angle := roundedCornerAngles[k]
		center := centers[k]

		for i := 0; i < segments; i++ {
			e.r.Color(col)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*angle)*outerRadius, center.Y+math32.Sin(deg2Rad*angle)*outerRadius)
			e.r.Vertex(center.X+math32.Cos(deg2Rad*(angle+stepLength))*outerRadius, center.Y+math32.Sin(deg2Rad*(angle+stepLength))*outerRadius)
			angle += stepLength
		}
	}

	// And now the remaining 4 lines
	for i := 0; i < 8; i += 2 {
		e.r.Color(col)
		e.r.Vertex(point[i].X, point[i].Y)
		e.r.Vertex(point[i+1].X, point[i+1].Y)
	}

	e.r.End()
}
