package shapes

import "github.com/gogpu/gputypes"

// Texture is an opaque handle to a GPU-resident texture. The shape engine
// only reads ID, Width and Height to compute normalized texture
// coordinates; the remaining fields travel with the handle for the
// backend's benefit.
type Texture struct {
	ID      uint32
	Width   int
	Height  int
	Mipmaps int
	Format  gputypes.TextureFormat
}

// WhitePixel returns the reserved 1x1 white texture loaded by the backend
// at startup. It is the default shapes texture, so untextured geometry
// samples solid white and per-vertex colors pass through unchanged.
func WhitePixel() Texture {
	return Texture{
		ID:      1,
		Width:   1,
		Height:  1,
		Mipmaps: 1,
		Format:  gputypes.TextureFormatRGBA8Unorm,
	}
}

// defaultTexSource is the source rectangle covering the whole white pixel.
func defaultTexSource() Rect {
	return Rect{X: 0, Y: 0, Width: 1, Height: 1}
}
