package shapes

import "github.com/chewxy/math32"

// Collision checks are pure, allocation-free predicates with no dependency
// on the emitter. Absence of a collision is reported as false, never as an
// error.

// fltEpsilon is the float32 machine epsilon, used to reject near-parallel
// lines and degenerate segment axes.
const fltEpsilon = 1.1920929e-07

// PointInRect reports whether point lies inside rec. The test is
// half-open: the left and top edges are inclusive, the right and bottom
// edges are not.
func PointInRect(point Point, rec Rect) bool {
	return point.X >= rec.X && point.X < rec.X+rec.Width &&
		point.Y >= rec.Y && point.Y < rec.Y+rec.Height
}

// PointInCircle reports whether point lies inside the circle, treating
// the point as a zero-radius circle so the boundary is inclusive.
func PointInCircle(point, center Point, radius float32) bool {
	return CirclesOverlap(point, 0, center, radius)
}

// PointInTriangle reports whether point lies strictly inside the triangle
// (p1, p2, p3), via barycentric coordinates. Points exactly on an edge
// are not inside.
func PointInTriangle(point, p1, p2, p3 Point) bool {
	det := (p2.Y-p3.Y)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Y-p3.Y)

	alpha := ((p2.Y-p3.Y)*(point.X-p3.X) + (p3.X-p2.X)*(point.Y-p3.Y)) / det
	beta := ((p3.Y-p1.Y)*(point.X-p3.X) + (p1.X-p3.X)*(point.Y-p3.Y)) / det
	gamma := 1 - alpha - beta

	return alpha > 0 && beta > 0 && gamma > 0
}

// PointInPoly reports whether point lies inside the polygon described by
// points, using the even-odd (ray casting) rule over consecutive edges.
//
// Only the edges between consecutive slice entries are tested; the edge
// from the last point back to the first is not. Pass a closed ring with
// the first point repeated as the last to test a closed polygon.
func PointInPoly(point Point, points []Point) bool {
	collision := false

	if len(points) > 2 {
		for i := 0; i < len(points)-1; i++ {
			vc := points[i]
			vn := points[i+1]

			if ((vc.Y >= point.Y && vn.Y < point.Y) || (vc.Y < point.Y && vn.Y >= point.Y)) &&
				point.X < (vn.X-vc.X)*(point.Y-vc.Y)/(vn.Y-vc.Y)+vc.X {
				collision = !collision
			}
		}
	}

	return collision
}

// RectsOverlap reports whether two rectangles overlap. The comparison is
// strict: rectangles sharing only a boundary edge do not collide. Note
// this deliberately differs from CirclesOverlap, whose boundary is
// inclusive.
func RectsOverlap(rec1, rec2 Rect) bool {
	return rec1.X < rec2.X+rec2.Width && rec1.X+rec1.Width > rec2.X &&
		rec1.Y < rec2.Y+rec2.Height && rec1.Y+rec1.Height > rec2.Y
}

// CirclesOverlap reports whether two circles overlap or touch. The
// boundary is inclusive: circles whose center distance equals the sum of
// radii collide.
func CirclesOverlap(center1 Point, radius1 float32, center2 Point, radius2 float32) bool {
	dx := center2.X - center1.X
	dy := center2.Y - center1.Y

	distance := math32.Sqrt(dx*dx + dy*dy)

	return distance <= radius1+radius2
}

// CircleRectOverlap reports whether a circle and a rectangle overlap,
// handling the corner case via a squared-distance check against the
// nearest corner. The rectangle center snaps to whole pixels.
func CircleRectOverlap(center Point, radius float32, rec Rect) bool {
	recCenterX := float32(int32(rec.X + rec.Width/2))
	recCenterY := float32(int32(rec.Y + rec.Height/2))

	dx := math32.Abs(center.X - recCenterX)
	dy := math32.Abs(center.Y - recCenterY)

	if dx > rec.Width/2+radius {
		return false
	}
	if dy > rec.Height/2+radius {
		return false
	}

	if dx <= rec.Width/2 {
		return true
	}
	if dy <= rec.Height/2 {
		return true
	}

	cornerDistanceSq := (dx-rec.Width/2)*(dx-rec.Width/2) +
		(dy-rec.Height/2)*(dy-rec.Height/2)

	return cornerDistanceSq <= radius*radius
}

// LinesIntersect reports whether the segments (start1, end1) and
// (start2, end2) intersect, and if so at what point. Parallel and
// collinear segments report no intersection.
func LinesIntersect(start1, end1, start2, end2 Point) (Point, bool) {
	div := (end2.Y-start2.Y)*(end1.X-start1.X) - (end2.X-start2.X)*(end1.Y-start1.Y)

	if math32.Abs(div) < fltEpsilon {
		return Point{}, false
	}

	xi := ((start2.X-end2.X)*(start1.X*end1.Y-start1.Y*end1.X) - (start1.X-end1.X)*(start2.X*end2.Y-start2.Y*end2.X)) / div
	yi := ((start2.Y-end2.Y)*(start1.X*end1.Y-start1.Y*end1.X) - (start1.Y-end1.Y)*(start2.X*end2.Y-start2.Y*end2.X)) / div

	// Reject intersections outside either segment's extent, on every axis
	// where the segment is non-degenerate.
	if (math32.Abs(start1.X-end1.X) > fltEpsilon && (xi < math32.Min(start1.X, end1.X) || xi > math32.Max(start1.X, end1.X))) ||
		(math32.Abs(start2.X-end2.X) > fltEpsilon && (xi < math32.Min(start2.X, end2.X) || xi > math32.Max(start2.X, end2.X))) ||
		(math32.Abs(start1.Y-end1.Y) > fltEpsilon && (yi < math32.Min(start1.Y, end1.Y) || yi > math32.Max(start1.Y, end1.Y))) ||
		(math32.Abs(start2.Y-end2.Y) > fltEpsilon && (yi < math32.Min(start2.Y, end2.Y) || yi > math32.Max(start2.Y, end2.Y))) {
		return Point{}, false
	}

	return Point{X: xi, Y: yi}, true
}

// PointOnLine reports whether point lies on the segment (p1, p2) within
// threshold pixels of perpendicular distance. The containment check runs
// along the dominant axis so the point must be inside the segment's span,
// not merely on the infinite line.
func PointOnLine(point, p1, p2 Point, threshold int) bool {
	dxc := point.X - p1.X
	dyc := point.Y - p1.Y
	dxl := p2.X - p1.X
	dyl := p2.Y - p1.Y
	cross := dxc*dyl - dyc*dxl

	if math32.Abs(cross) >= float32(threshold)*math32.Max(math32.Abs(dxl), math32.Abs(dyl)) {
		return false
	}

	if math32.Abs(dxl) >= math32.Abs(dyl) {
		if dxl > 0 {
			return p1.X <= point.X && point.X <= p2.X
		}
		return p2.X <= point.X && point.X <= p1.X
	}
	if dyl > 0 {
		return p1.Y <= point.Y && point.Y <= p2.Y
	}
	return p2.Y <= point.Y && point.Y <= p1.Y
}

// OverlapRect returns the overlap rectangle of two colliding rectangles,
// or the zero Rect if they do not overlap.
func OverlapRect(rec1, rec2 Rect) Rect {
	left := math32.Max(rec1.X, rec2.X)
	right := math32.Min(rec1.X+rec1.Width, rec2.X+rec2.Width)
	top := math32.Max(rec1.Y, rec2.Y)
	bottom := math32.Min(rec1.Y+rec1.Height, rec2.Y+rec2.Height)

	if left >= right || top >= bottom {
		return Rect{}
	}

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
