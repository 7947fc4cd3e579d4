package tint

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestFromStdColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want f32.Vec4
	}{
		{"opaque white", color.NRGBA{255, 255, 255, 255}, f32.Vec4{1, 1, 1, 1}},
		{"transparent", color.NRGBA{0, 0, 0, 0}, f32.Vec4{0, 0, 0, 0}},
		{"half alpha red", color.NRGBA{255, 0, 0, 128}, f32.Vec4{1, 0, 0, float32(0x8080) / 65535}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStdColor(tt.in)
			if !vecNear(got.Raw, tt.want, 1e-4) {
				t.Errorf("FromStdColor = %v, want %v", got.Raw, tt.want)
			}
		})
	}
}

func TestStdColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	got := StdColor(FromStdColor(in))
	if got != in {
		t.Errorf("std color round trip = %v, want %v", got, in)
	}
}

// StdColor clamps out-of-range channels instead of wrapping.
func TestStdColorClamps(t *testing.T) {
	c := SRGBA[Separate](1.5, -0.5, 0.5, 1)
	got := StdColor(c)
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("StdColor = %v, want %v", got, want)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want f32.Vec4
	}{
		{"RRGGBB", "#ff0000", f32.Vec4{1, 0, 0, 1}},
		{"RRGGBBAA", "#00ff0080", f32.Vec4{0, 1, 0, float32(0x80) / 255}},
		{"RGB shorthand", "#f00", f32.Vec4{1, 0, 0, 1}},
		{"RGBA shorthand", "0f08", f32.Vec4{0, 1, 0, float32(0x88) / 255}},
		{"no hash", "0000ff", f32.Vec4{0, 0, 1, 1}},
		{"malformed", "xyz!!", f32.Vec4{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexColor(tt.hex)
			if !vecNear(got.Raw, tt.want, 1e-4) {
				t.Errorf("HexColor(%q) = %v, want %v", tt.hex, got.Raw, tt.want)
			}
		})
	}
}
