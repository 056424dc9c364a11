package shapes

import "testing"

func TestPolygon(t *testing.T) {
	t.Run("hexagon", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).Polygon(Pt(0, 0), 6, 10, 0, Red)

		// One triangle per side.
		if got := rec.VertexCount(); got != 18 {
			t.Fatalf("got %d vertices, want 18", got)
		}
		checkWinding(t, rec)

		// Every rim vertex is on the circumscribed circle.
		for i, tri := range triangles(rec) {
			if !tri[0].Approx(Pt(0, 0), testEps) {
				t.Fatalf("triangle %d apex = %v, want center", i, tri[0])
			}
			for _, rim := range tri[1:] {
				if d := rim.Length(); d < 9.99 || d > 10.01 {
					t.Errorf("rim vertex %v at distance %v, want 10", rim, d)
				}
			}
		}
	})

	t.Run("sides clamp to three", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).Polygon(Pt(0, 0), 2, 10, 0, Red)
		if got := rec.VertexCount(); got != 9 {
			t.Errorf("got %d vertices, want 9", got)
		}
	})

	t.Run("quads", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec, WithAssembly(AssemblyQuads)).Polygon(Pt(0, 0), 5, 10, 0, Red)

		b := rec.Batches()[0]
		if b.Mode != ModeQuads || len(b.Vertices) != 20 {
			t.Fatalf("got %v with %d vertices, want Quads with 20", b.Mode, len(b.Vertices))
		}
		// Each quad repeats the current rim vertex as its fourth corner.
		for i := 0; i < len(b.Vertices); i += 4 {
			if b.Vertices[i+1].Pos != b.Vertices[i+3].Pos {
				t.Errorf("quad %d does not repeat its rim vertex", i/4)
			}
		}
	})
}

func TestPolygonRotation(t *testing.T) {
	rec := NewRecorder()
	NewEmitter(rec).Polygon(Pt(0, 0), 4, 10, 45, Red)

	// A square rotated 45 degrees has vertices on the diagonals.
	want := Pt(7.0710678, 7.0710678)
	found := false
	for _, p := range rec.Positions() {
		if p.Approx(want, 0.001) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no vertex near %v after rotation", want)
	}
}

func TestPolygonLines(t *testing.T) {
	rec := NewRecorder()
	NewEmitter(rec).PolygonLines(Pt(0, 0), 6, 10, 0, Red)

	b := rec.Batches()[0]
	if b.Mode != ModeLines {
		t.Fatalf("mode = %v, want %v", b.Mode, ModeLines)
	}
	// One edge per side, two endpoints each.
	if len(b.Vertices) != 12 {
		t.Errorf("got %d vertices, want 12", len(b.Vertices))
	}
}

func TestPolygonLinesEx(t *testing.T) {
	t.Run("triangles", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).PolygonLinesEx(Pt(0, 0), 6, 10, 0, 2, Red)

		// Two triangles per side.
		if got := rec.VertexCount(); got != 36 {
			t.Fatalf("got %d vertices, want 36", got)
		}
		checkWinding(t, rec)

		// The stroke stays between the inner and outer radii.
		for _, p := range rec.Positions() {
			d := p.Length()
			if d < 7 || d > 10.01 {
				t.Errorf("vertex %v at distance %v, outside the stroke band", p, d)
			}
		}
	})

	t.Run("quads", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec, WithAssembly(AssemblyQuads)).PolygonLinesEx(Pt(0, 0), 6, 10, 0, 2, Red)

		b := rec.Batches()[0]
		if b.Mode != ModeQuads || len(b.Vertices) != 24 {
			t.Fatalf("got %v with %d vertices, want Quads with 24", b.Mode, len(b.Vertices))
		}
	})
}
