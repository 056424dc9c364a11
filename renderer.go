package shapes

// Mode selects the primitive type for a Begin/End vertex batch.
type Mode int

const (
	// ModeLines assembles every two vertices into an independent line.
	ModeLines Mode = iota
	// ModeTriangles assembles every three vertices into an independent
	// triangle with counter-clockwise winding.
	ModeTriangles
	// ModeQuads assembles every four vertices into a quad, typically
	// decomposed into two triangles by the backend.
	ModeQuads
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "Lines"
	case ModeTriangles:
		return "Triangles"
	case ModeQuads:
		return "Quads"
	default:
		return "Unknown"
	}
}

// Renderer is the interface for backends that consume an ordered vertex
// stream. The Emitter never emits outside a Begin/End bracket, and vertices
// reach the Renderer in exactly the sequence generated; any batching or
// reordering is the backend's responsibility.
//
// Color, TexCoord and Normal set the current attribute state; Vertex
// captures that state into a new vertex. This mirrors classic
// immediate-mode pipelines so a backend can be a GPU command encoder, a
// display list, or the in-tree Recorder.
type Renderer interface {
	// Begin opens a vertex batch for the given primitive mode.
	Begin(mode Mode)

	// End closes the current vertex batch.
	End()

	// SetTexture binds the texture for subsequent batches.
	// ID 0 unbinds, restoring the backend default.
	SetTexture(id uint32)

	// Color sets the current vertex color.
	Color(c Color)

	// TexCoord sets the current texture coordinate.
	TexCoord(u, v float32)

	// Normal sets the current vertex normal. 2D shapes always use (0,0,1).
	Normal(x, y, z float32)

	// Vertex emits a vertex at the given position with the current
	// color, texture coordinate, and normal.
	Vertex(x, y float32)
}
