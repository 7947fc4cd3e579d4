package tint

// Blender is a stateless per-channel blend strategy. Implementations
// carry their own parameters as struct fields, so a configured
// strategy value stands in for the original's parameter bundle.
type Blender interface {
	// BlendChannel blends two same-typed channel values. The factor
	// is not clamped; values outside [0, 1] extrapolate.
	BlendChannel(x, y, factor float32) float32
}

// LinearBlender blends channels by linear interpolation. It is the
// default strategy used by [Blend] and [BlendAlpha].
type LinearBlender struct{}

// BlendChannel returns x + (y-x)*factor.
func (LinearBlender) BlendChannel(x, y, factor float32) float32 {
	return x + (y-x)*factor
}

// Blend blends a's color channels with b's using [LinearBlender],
// leaving a's alpha unchanged. Both operands must be in the
// [Separate] alpha state and a linear working space, which the type
// parameters enforce.
func Blend[Spc WorkingSpace](a, b ColorAlpha[Spc, Separate], factor float32) ColorAlpha[Spc, Separate] {
	return BlendWith(a, b, LinearBlender{}, factor)
}

// BlendAlpha blends a's color channels and alpha with b's using
// [LinearBlender].
func BlendAlpha[Spc WorkingSpace](a, b ColorAlpha[Spc, Separate], factor float32) ColorAlpha[Spc, Separate] {
	return BlendAlphaWith(a, b, LinearBlender{}, factor)
}

// BlendWith blends a's color channels with b's using the given
// strategy, applied independently per channel. a's alpha is left
// unchanged.
func BlendWith[Spc WorkingSpace](a, b ColorAlpha[Spc, Separate], bl Blender, factor float32) ColorAlpha[Spc, Separate] {
	return NewColorAlpha[Spc, Separate](
		bl.BlendChannel(a.Raw[0], b.Raw[0], factor),
		bl.BlendChannel(a.Raw[1], b.Raw[1], factor),
		bl.BlendChannel(a.Raw[2], b.Raw[2], factor),
		a.Raw[3],
	)
}

// BlendAlphaWith blends a's color channels and alpha with b's using
// the given strategy and the same factor for all four channels.
func BlendAlphaWith[Spc WorkingSpace](a, b ColorAlpha[Spc, Separate], bl Blender, factor float32) ColorAlpha[Spc, Separate] {
	return NewColorAlpha[Spc, Separate](
		bl.BlendChannel(a.Raw[0], b.Raw[0], factor),
		bl.BlendChannel(a.Raw[1], b.Raw[1], factor),
		bl.BlendChannel(a.Raw[2], b.Raw[2], factor),
		bl.BlendChannel(a.Raw[3], b.Raw[3], factor),
	)
}
