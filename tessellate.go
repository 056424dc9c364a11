package shapes

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// SmoothCircleErrorRate is the default maximum distance, in the same
	// units as the radius, between a tessellated chord and the true
	// circular arc. Derived from https://stackoverflow.com/a/2244088.
	SmoothCircleErrorRate = 0.5

	// BezierLineDivisions is the default number of straight divisions
	// used to approximate a bezier line.
	BezierLineDivisions = 24
)

// deg2Rad converts degrees to radians.
const deg2Rad = math.Pi / 180

// ArcSegments returns the number of straight segments needed so that a
// tessellated arc of the given radius and span (in degrees) deviates from
// the true circle by at most tol units.
//
// The maximum permissible angle between two consecutive vertices is
// th = acos(2*(1 - tol/radius)^2 - 1); the full circle needs ceil(2*pi/th)
// segments and a partial span scales proportionally.
//
// ArcSegments is pure and always returns at least one segment per
// quarter-turn of span (and never less than 1), so very small spans and
// degenerate radii fall back to visible-faceting-free minimums instead of
// zero. Callers are expected to clamp a non-positive radius before calling;
// see the emitter operations.
func ArcSegments(radius, spanDeg, tol float32) int {
	minSegments := int(math32.Ceil(spanDeg / 90))
	if minSegments < 1 {
		minSegments = 1
	}

	segments := arcSegmentsRaw(radius, spanDeg, tol)
	if segments < minSegments {
		segments = minSegments
	}
	return segments
}

// arcSegmentsRaw is ArcSegments without the per-quarter-turn minimum:
// it returns 0 when the span is too small to earn a segment or when
// tol >= 2*radius, where a single chord already satisfies the error and
// the chord-angle math degenerates. Callers that divide the count down
// (the rounded-rectangle corners) apply their own floor and must see the
// raw zero rather than an already-clamped minimum.
func arcSegmentsRaw(radius, spanDeg, tol float32) int {
	th := math32.Acos(2*sq(1-tol/radius) - 1)
	if math32.IsNaN(th) || th <= 0 {
		return 0
	}
	return int(spanDeg * math32.Ceil(2*math.Pi/th) / 360)
}

func sq(x float32) float32 { return x * x }
