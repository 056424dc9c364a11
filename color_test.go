package shapes

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"RRGGBB", "FF8000", Color{255, 128, 0, 255}},
		{"RRGGBB with hash", "#FF8000", Color{255, 128, 0, 255}},
		{"RRGGBBAA", "FF800080", Color{255, 128, 0, 128}},
		{"RGB shorthand", "f00", Color{255, 0, 0, 255}},
		{"RGBA shorthand", "f008", Color{255, 0, 0, 136}},
		{"lowercase", "ff8000", Color{255, 128, 0, 255}},
		{"invalid length", "ff800", Color{0, 0, 0, 255}},
		{"empty", "", Color{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBConstructors(t *testing.T) {
	if got := RGB(10, 20, 30); got != (Color{10, 20, 30, 255}) {
		t.Errorf("RGB = %v", got)
	}
	if got := RGBA(10, 20, 30, 40); got != (Color{10, 20, 30, 40}) {
		t.Errorf("RGBA = %v", got)
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		name  string
		alpha float32
		want  uint8
	}{
		{"half", 0.5, 127},
		{"full", 1, 255},
		{"zero", 0, 0},
		{"clamped high", 2, 255},
		{"clamped low", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := White.Fade(tt.alpha)
			if got.A != tt.want {
				t.Errorf("Fade(%v).A = %d, want %d", tt.alpha, got.A, tt.want)
			}
			if got.R != 255 || got.G != 255 || got.B != 255 {
				t.Errorf("Fade changed RGB: %v", got)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	// Round-trip through the standard color interface.
	c := Color{10, 20, 30, 255}
	if got := FromColor(c.Color()); got != c {
		t.Errorf("round-trip = %v, want %v", got, c)
	}

	// Named web colors convert cleanly since they are fully opaque.
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"red", FromColor(colornames.Red), Color{255, 0, 0, 255}},
		{"blue", FromColor(colornames.Blue), Color{0, 0, 255, 255}},
		{"purple", FromColor(colornames.Purple), Color{128, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.in != tt.want {
				t.Errorf("got %v, want %v", tt.in, tt.want)
			}
		})
	}
}
