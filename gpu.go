package tint

import "github.com/gogpu/gputypes"

// GPUClearColor returns the color as a gputypes.Color for use as a
// render-pass clear value. The type parameters require linear sRGB
// with premultiplied alpha, which is the representation WebGPU render
// passes expect for clear colors.
func GPUClearColor(c ColorAlpha[LinearSrgb, Premultiplied]) gputypes.Color {
	return gputypes.Color{
		R: float64(c.Raw[0]),
		G: float64(c.Raw[1]),
		B: float64(c.Raw[2]),
		A: float64(c.Raw[3]),
	}
}

// DynamicGPUClearColor converts a dynamic color to linear sRGB with
// premultiplied alpha and returns it as a gputypes.Color clear value.
func DynamicGPUClearColor(d DynamicColorAlpha) gputypes.Color {
	return GPUClearColor(DowncastConvert[LinearSrgb, Premultiplied](d))
}
