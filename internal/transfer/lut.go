package transfer

// sRGBToLinearLUT provides O(1) sRGB byte to Linear conversion.
// Pre-computed 256 entries, 1KB memory cost.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT provides O(1) Linear to sRGB byte conversion.
// Uses 4096 entries for 12-bit precision (sufficient for 8-bit sRGB).
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}

	for i := 0; i < 4096; i++ {
		s := LinearToSRGB(float32(i) / 4095.0)
		srgb := int(float64(s)*255.0 + 0.5)
		if srgb < 0 {
			srgb = 0
		}
		if srgb > 255 {
			srgb = 255
		}
		linearToSRGBLUT[i] = uint8(srgb)
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using the
// lookup table. This is ~20x faster than computing with math.Pow and
// exact for 8-bit input.
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear float32 to an sRGB byte using the
// lookup table. Input is clamped to [0.0, 1.0].
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return linearToSRGBLUT[index]
}

// LinearToSRGBSlow is the math.Pow reference implementation of
// LinearToSRGBFast, used for testing and verification only.
func LinearToSRGBSlow(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	s := int(float64(LinearToSRGB(l))*255.0 + 0.5)
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	return uint8(s)
}
