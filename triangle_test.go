package shapes

import "testing"

func TestTriangle(t *testing.T) {
	v1, v2, v3 := Pt(0, 0), Pt(0, 10), Pt(10, 0)

	t.Run("triangles", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).Triangle(v1, v2, v3, Red)

		b := rec.Batches()[0]
		if b.Mode != ModeTriangles || len(b.Vertices) != 3 {
			t.Fatalf("got %v with %d vertices, want Triangles with 3", b.Mode, len(b.Vertices))
		}
		checkWinding(t, rec)
	})

	t.Run("quads duplicate second vertex", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec, WithAssembly(AssemblyQuads)).Triangle(v1, v2, v3, Red)

		b := rec.Batches()[0]
		if b.Mode != ModeQuads || len(b.Vertices) != 4 {
			t.Fatalf("got %v with %d vertices, want Quads with 4", b.Mode, len(b.Vertices))
		}
		if b.Vertices[1].Pos != b.Vertices[2].Pos {
			t.Errorf("quad triangle should repeat the second vertex: %v vs %v",
				b.Vertices[1].Pos, b.Vertices[2].Pos)
		}
	})
}

func TestTriangleLines(t *testing.T) {
	rec := NewRecorder()
	NewEmitter(rec).TriangleLines(Pt(0, 0), Pt(0, 10), Pt(10, 0), Red)

	b := rec.Batches()[0]
	if b.Mode != ModeLines {
		t.Fatalf("mode = %v, want %v", b.Mode, ModeLines)
	}
	// Three edges, two endpoints each.
	if len(b.Vertices) != 6 {
		t.Errorf("got %d vertices, want 6", len(b.Vertices))
	}
	// The outline closes back on the first vertex.
	if b.Vertices[5].Pos != b.Vertices[0].Pos {
		t.Errorf("outline does not close: last %v, first %v",
			b.Vertices[5].Pos, b.Vertices[0].Pos)
	}
}

func TestTriangleFan(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(-10, 10), Pt(0, 10), Pt(10, 10), Pt(10, 0)}

	t.Run("triangles", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).TriangleFan(points, Red)

		// Five points: three triangles around the shared apex.
		if got := rec.VertexCount(); got != 9 {
			t.Fatalf("got %d vertices, want 9", got)
		}
		checkWinding(t, rec)
		for i, tri := range triangles(rec) {
			if tri[0] != points[0] {
				t.Errorf("triangle %d apex = %v, want %v", i, tri[0], points[0])
			}
		}
	})

	t.Run("quads", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec, WithAssembly(AssemblyQuads)).TriangleFan(points, Red)

		b := rec.Batches()[0]
		if b.Mode != ModeQuads || len(b.Vertices) != 12 {
			t.Fatalf("got %v with %d vertices, want Quads with 12", b.Mode, len(b.Vertices))
		}
		// Each quad repeats its third corner to stay a triangle.
		for i := 0; i < len(b.Vertices); i += 4 {
			if b.Vertices[i+2].Pos != b.Vertices[i+3].Pos {
				t.Errorf("quad %d does not repeat its third corner", i/4)
			}
		}
	})

	t.Run("too few points", func(t *testing.T) {
		rec := NewRecorder()
		NewEmitter(rec).TriangleFan(points[:2], Red)
		if got := len(rec.Batches()); got != 0 {
			t.Errorf("got %d batches, want 0", got)
		}
	})
}

func TestTriangleStrip(t *testing.T) {
	// A zig-zag strip along the x axis.
	points := []Point{
		Pt(0, 0), Pt(0, 2), Pt(2, 0), Pt(2, 2), Pt(4, 0), Pt(4, 2),
	}

	rec := NewRecorder()
	NewEmitter(rec).TriangleStrip(points, Red)

	// Six points: four triangles.
	if got := rec.VertexCount(); got != 12 {
		t.Fatalf("got %d vertices, want 12", got)
	}

	// The alternating vertex order keeps every triangle counter-clockwise.
	checkWinding(t, rec)

	// Exact emission order for the first two triangles: even index emits
	// (i, i-2, i-1), odd index emits (i, i-1, i-2).
	tris := triangles(rec)
	want0 := [3]Point{points[2], points[0], points[1]}
	want1 := [3]Point{points[3], points[2], points[1]}
	if tris[0] != want0 {
		t.Errorf("triangle 0 = %v, want %v", tris[0], want0)
	}
	if tris[1] != want1 {
		t.Errorf("triangle 1 = %v, want %v", tris[1], want1)
	}
}

func TestTriangleStripTooFewPoints(t *testing.T) {
	rec := NewRecorder()
	NewEmitter(rec).TriangleStrip([]Point{Pt(0, 0), Pt(1, 1)}, Red)
	if got := len(rec.Batches()); got != 0 {
		t.Errorf("got %d batches, want 0", got)
	}
}
