package tint

import "testing"

func TestGPUClearColor(t *testing.T) {
	c := NewColorAlpha[LinearSrgb, Premultiplied](0.5, 0.25, 0.125, 0.5)
	got := GPUClearColor(c)
	if got.R != 0.5 || got.G != 0.25 || got.B != 0.125 || got.A != 0.5 {
		t.Errorf("GPUClearColor = %+v", got)
	}
}

// A dynamic encoded-sRGB color is converted to linear premultiplied
// before being handed to the GPU.
func TestDynamicGPUClearColor(t *testing.T) {
	d := SRGBA[Separate](1, 0, 0, 0.5).Dynamic()
	got := DynamicGPUClearColor(d)
	want := GPUClearColor(Convert[LinearSrgb, Premultiplied](SRGBA[Separate](1, 0, 0, 0.5)))
	if got != want {
		t.Errorf("DynamicGPUClearColor = %+v, want %+v", got, want)
	}
}
