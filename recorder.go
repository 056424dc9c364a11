package shapes

// Vertex is one recorded entry of the vertex stream: a position plus the
// attribute state captured when it was emitted.
type Vertex struct {
	Pos    Point
	UV     Point
	Color  Color
	Normal [3]float32
}

// Batch is one Begin/End bracket of the vertex stream.
type Batch struct {
	Mode     Mode
	Texture  uint32 // texture bound when the batch was opened
	Vertices []Vertex
}

// Recorder is a Renderer that captures the vertex stream in memory.
// It is the reference backend used by the tests and is handy for clients
// that batch geometry themselves before uploading it.
//
// Recorder is not safe for concurrent use, matching the single-threaded
// contract of the Emitter.
type Recorder struct {
	batches []Batch

	texture uint32
	color   Color
	uv      Point
	normal  [3]float32
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{color: White, normal: [3]float32{0, 0, 1}}
}

// Begin opens a new batch.
func (r *Recorder) Begin(mode Mode) {
	r.batches = append(r.batches, Batch{Mode: mode, Texture: r.texture})
}

// End closes the current batch. No-op bookkeeping: batches are delimited
// by Begin calls.
func (r *Recorder) End() {}

// SetTexture records the texture binding for subsequent batches.
func (r *Recorder) SetTexture(id uint32) { r.texture = id }

// Color sets the current vertex color.
func (r *Recorder) Color(c Color) { r.color = c }

// TexCoord sets the current texture coordinate.
func (r *Recorder) TexCoord(u, v float32) { r.uv = Point{X: u, Y: v} }

// Normal sets the current vertex normal.
func (r *Recorder) Normal(x, y, z float32) { r.normal = [3]float32{x, y, z} }

// Vertex appends a vertex to the current batch with the current attribute
// state. Vertices emitted before any Begin are dropped.
func (r *Recorder) Vertex(x, y float32) {
	if len(r.batches) == 0 {
		return
	}
	b := &r.batches[len(r.batches)-1]
	b.Vertices = append(b.Vertices, Vertex{
		Pos:    Point{X: x, Y: y},
		UV:     r.uv,
		Color:  r.color,
		Normal: r.normal,
	})
}

// Batches returns the recorded batches in submission order.
func (r *Recorder) Batches() []Batch { return r.batches }

// VertexCount returns the total number of recorded vertices.
func (r *Recorder) VertexCount() int {
	n := 0
	for i := range r.batches {
		n += len(r.batches[i].Vertices)
	}
	return n
}

// Positions returns every recorded vertex position in submission order,
// across all batches.
func (r *Recorder) Positions() []Point {
	pts := make([]Point, 0, r.VertexCount())
	for i := range r.batches {
		for _, v := range r.batches[i].Vertices {
			pts = append(pts, v.Pos)
		}
	}
	return pts
}

// Reset discards all recorded batches and restores default attribute state.
func (r *Recorder) Reset() {
	r.batches = nil
	r.texture = 0
	r.color = White
	r.uv = Point{}
	r.normal = [3]float32{0, 0, 1}
}
