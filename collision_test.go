package shapes

import "testing"

func TestPointInRect(t *testing.T) {
	rect := R(0, 0, 10, 10)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center", Pt(5, 5), true},
		{"top-left corner included", Pt(0, 0), true},
		{"right edge excluded", Pt(10, 5), false},
		{"bottom edge excluded", Pt(5, 10), false},
		{"left of rect", Pt(-1, 5), false},
		{"above rect", Pt(5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.point, rect); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.point, rect, got, tt.want)
			}
		})
	}
}

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name   string
		point  Point
		center Point
		radius float32
		want   bool
	}{
		{"center", Pt(0, 0), Pt(0, 0), 5, true},
		{"inside", Pt(3, 0), Pt(0, 0), 5, true},
		{"on boundary included", Pt(5, 0), Pt(0, 0), 5, true},
		{"outside", Pt(6, 0), Pt(0, 0), 5, false},
		{"diagonal boundary", Pt(3, 4), Pt(0, 0), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.point, tt.center, tt.radius); got != tt.want {
				t.Errorf("PointInCircle(%v, %v, %v) = %v, want %v",
					tt.point, tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := Pt(0, 0), Pt(10, 0), Pt(0, 10)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"interior", Pt(2, 2), true},
		{"near corner", Pt(1, 1), true},
		{"outside", Pt(8, 8), false},
		// Boundary points are excluded: the barycentric test is strict.
		{"on edge excluded", Pt(5, 0), false},
		{"on vertex excluded", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInTriangle(tt.point, a, b, c); got != tt.want {
				t.Errorf("PointInTriangle(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestPointInPoly(t *testing.T) {
	closed := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	open := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

	tests := []struct {
		name  string
		poly  []Point
		point Point
		want  bool
	}{
		{"closed center", closed, Pt(5, 5), true},
		{"closed outside right", closed, Pt(15, 5), false},
		{"closed outside left", closed, Pt(-5, 5), false},
		// Without the closing vertex the left edge is never walked, so a
		// point to the left of the square crosses only one edge and is
		// reported inside. Callers must pass a closed ring.
		{"open ring misses closing edge", open, Pt(-5, 5), true},
		{"too few points", []Point{Pt(0, 0), Pt(10, 0)}, Pt(5, 0), false},
		{"empty", nil, Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPoly(tt.point, tt.poly); got != tt.want {
				t.Errorf("PointInPoly(%v, %d pts) = %v, want %v",
					tt.point, len(tt.poly), got, tt.want)
			}
		})
	}
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name   string
		r1, r2 Rect
		want   bool
	}{
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 10, 10), true},
		{"contained", R(0, 0, 10, 10), R(2, 2, 4, 4), true},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), false},
		// Strict inequality: rects sharing only an edge do not overlap.
		{"touching edges", R(0, 0, 10, 10), R(10, 0, 10, 10), false},
		{"touching corners", R(0, 0, 10, 10), R(10, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(tt.r1, tt.r2); got != tt.want {
				t.Errorf("RectsOverlap(%v, %v) = %v, want %v", tt.r1, tt.r2, got, tt.want)
			}
			// The predicate is symmetric.
			if got := RectsOverlap(tt.r2, tt.r1); got != tt.want {
				t.Errorf("RectsOverlap(%v, %v) = %v, want %v", tt.r2, tt.r1, got, tt.want)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		c1     Point
		r1     float32
		c2     Point
		r2     float32
		want   bool
	}{
		{"overlapping", Pt(0, 0), 5, Pt(5, 0), 5, true},
		{"disjoint", Pt(0, 0), 2, Pt(10, 0), 2, false},
		// Inclusive boundary: circles exactly tangent still overlap.
		{"tangent", Pt(0, 0), 4, Pt(10, 0), 6, true},
		{"concentric", Pt(0, 0), 1, Pt(0, 0), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlap(t *testing.T) {
	rect := R(0, 0, 10, 10)

	tests := []struct {
		name   string
		center Point
		radius float32
		want   bool
	}{
		{"circle inside", Pt(5, 5), 2, true},
		{"circle far right", Pt(20, 5), 5, false},
		{"circle reaches side", Pt(12, 5), 3, true},
		{"corner out of reach", Pt(14, 14), 5, false},
		{"corner within reach", Pt(14, 14), 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectOverlap(tt.center, tt.radius, rect); got != tt.want {
				t.Errorf("CircleRectOverlap(%v, %v, %v) = %v, want %v",
					tt.center, tt.radius, rect, got, tt.want)
			}
		})
	}
}

func TestLinesIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		wantPoint      Point
		wantHit        bool
	}{
		{
			name: "perpendicular cross",
			a1:   Pt(0, 0), a2: Pt(10, 0),
			b1: Pt(5, -5), b2: Pt(5, 5),
			wantPoint: Pt(5, 0), wantHit: true,
		},
		{
			name: "diagonal cross",
			a1:   Pt(0, 0), a2: Pt(10, 10),
			b1: Pt(0, 10), b2: Pt(10, 0),
			wantPoint: Pt(5, 5), wantHit: true,
		},
		{
			name: "parallel",
			a1:   Pt(0, 0), a2: Pt(10, 0),
			b1: Pt(0, 5), b2: Pt(10, 5),
			wantHit: false,
		},
		{
			// Collinear overlapping segments have a zero determinant and
			// report no intersection.
			name: "collinear",
			a1:   Pt(0, 0), a2: Pt(5, 5),
			b1: Pt(2, 2), b2: Pt(8, 8),
			wantHit: false,
		},
		{
			name: "would cross beyond extent",
			a1:   Pt(0, 0), a2: Pt(10, 0),
			b1: Pt(20, -5), b2: Pt(20, 5),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := LinesIntersect(tt.a1, tt.a2, tt.b1, tt.b2)
			if hit != tt.wantHit {
				t.Fatalf("LinesIntersect hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && !got.Approx(tt.wantPoint, testEps) {
				t.Errorf("LinesIntersect point = %v, want %v", got, tt.wantPoint)
			}
		})
	}
}

func TestPointOnLine(t *testing.T) {
	tests := []struct {
		name      string
		point     Point
		p1, p2    Point
		threshold int
		want      bool
	}{
		{"exactly on", Pt(5, 0), Pt(0, 0), Pt(10, 0), 1, true},
		{"slightly off within threshold", Pt(5, 2), Pt(0, 0), Pt(10, 0), 3, true},
		{"slightly off beyond threshold", Pt(5, 2), Pt(0, 0), Pt(10, 0), 1, false},
		{"on diagonal", Pt(5, 5), Pt(0, 0), Pt(10, 10), 1, true},
		{"off diagonal", Pt(5, 8), Pt(0, 0), Pt(10, 10), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointOnLine(tt.point, tt.p1, tt.p2, tt.threshold); got != tt.want {
				t.Errorf("PointOnLine(%v, %v, %v, %d) = %v, want %v",
					tt.point, tt.p1, tt.p2, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestOverlapRect(t *testing.T) {
	tests := []struct {
		name   string
		r1, r2 Rect
		want   Rect
	}{
		{"partial overlap", R(0, 0, 10, 10), R(5, 5, 10, 10), R(5, 5, 5, 5)},
		{"contained", R(0, 0, 10, 10), R(2, 2, 4, 4), R(2, 2, 4, 4)},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), Rect{}},
		{"identical", R(1, 2, 3, 4), R(1, 2, 3, 4), R(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapRect(tt.r1, tt.r2); got != tt.want {
				t.Errorf("OverlapRect(%v, %v) = %v, want %v", tt.r1, tt.r2, got, tt.want)
			}
		})
	}
}
