// Package transfer provides the per-channel transfer functions used by
// the color conversion pipeline.
//
// A transfer function maps between a display-encoded channel value and
// its linear-light counterpart. Gamut transforms, blending and alpha
// premultiplication are only physically meaningful on linear values, so
// every conversion between encoded spaces passes through these
// functions.
package transfer

import "math"

// SRGBToLinear converts an sRGB-encoded component to linear
// (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64(s+0.055)/1.055, 2.4))
}

// LinearToSRGB converts a linear component to sRGB
// (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}
