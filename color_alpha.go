package tint

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/tint/internal/transfer"
)

// ColorAlpha is a strongly typed color with an alpha channel,
// parameterized by a color space and an alpha state.
//
// The raw channel values are only meaningful under exactly the
// (Spc, A) pair they are tagged with; operations that combine two
// colors require matching tags, and [Convert] is the only way to move
// a value between tags with the correct numeric transform. A color
// with an alpha channel is always display-referred. The alpha channel
// is always linear in [0, 1].
//
// The marker types carry no data, so a ColorAlpha has exactly the
// layout of its raw vector.
type ColorAlpha[Spc Space, A AlphaState] struct {
	// Raw holds the three color channels followed by alpha. Be
	// careful when modifying this directly; the type tags cannot
	// protect raw channel math.
	Raw f32.Vec4
}

// NewColorAlpha creates a [ColorAlpha] from the raw channel values
// c1, c2, c3 and alpha. No range validation is performed.
func NewColorAlpha[Spc Space, A AlphaState](c1, c2, c3, alpha float32) ColorAlpha[Spc, A] {
	return ColorAlpha[Spc, A]{Raw: f32.Vec4{c1, c2, c3, alpha}}
}

// ColorAlphaFromRaw creates a [ColorAlpha] from a raw vector.
func ColorAlphaFromRaw[Spc Space, A AlphaState](raw f32.Vec4) ColorAlpha[Spc, A] {
	return ColorAlpha[Spc, A]{Raw: raw}
}

// SRGBA creates a color in the [EncodedSrgb] space with components
// r, g, b and a.
func SRGBA[A AlphaState](r, g, b, a float32) ColorAlpha[EncodedSrgb, A] {
	return NewColorAlpha[EncodedSrgb, A](r, g, b, a)
}

// SRGBA8 creates a color in the [EncodedSrgb] space from 8-bit
// components.
func SRGBA8[A AlphaState](r, g, b, a uint8) ColorAlpha[EncodedSrgb, A] {
	return ColorAlphaFromU8[EncodedSrgb, A]([4]uint8{r, g, b, a})
}

// LinearSRGBA creates a color in the [LinearSrgb] space with
// components r, g, b and a.
func LinearSRGBA[A AlphaState](r, g, b, a float32) ColorAlpha[LinearSrgb, A] {
	return NewColorAlpha[LinearSrgb, A](r, g, b, a)
}

// LinearSRGBA8 decodes four encoded-sRGB bytes directly into a
// [LinearSrgb] color with separate alpha, using the lookup-table fast
// path. Equivalent to linearizing the result of [SRGBA8], but ~20x
// faster, which matters when unpacking whole images.
func LinearSRGBA8(r, g, b, a uint8) ColorAlpha[LinearSrgb, Separate] {
	return NewColorAlpha[LinearSrgb, Separate](
		transfer.SRGBToLinearFast(r),
		transfer.SRGBToLinearFast(g),
		transfer.SRGBToLinearFast(b),
		float32(a)/255,
	)
}

// ToSRGB8 encodes a [LinearSrgb] color into four encoded-sRGB bytes
// using the lookup-table fast path. Color channels are clamped into
// [0, 1]; alpha is scaled linearly (it is never gamma-encoded).
func ToSRGB8(c ColorAlpha[LinearSrgb, Separate]) [4]uint8 {
	return [4]uint8{
		transfer.LinearToSRGBFast(c.Raw[0]),
		transfer.LinearToSRGBFast(c.Raw[1]),
		transfer.LinearToSRGBFast(c.Raw[2]),
		uint8(math.Round(float64(clamp01(c.Raw[3])) * 255)),
	}
}

// Saturate clamps all four channels into [0, 1].
func (c ColorAlpha[Spc, A]) Saturate() ColorAlpha[Spc, A] {
	for i := range c.Raw {
		c.Raw[i] = clamp01(c.Raw[i])
	}
	return c
}

// MaxElement returns the maximum of the four channels.
func (c ColorAlpha[Spc, A]) MaxElement() float32 {
	m := c.Raw[0]
	for _, v := range c.Raw[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MinElement returns the minimum of the four channels.
func (c ColorAlpha[Spc, A]) MinElement() float32 {
	m := c.Raw[0]
	for _, v := range c.Raw[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// ToU8 converts the channels to four bytes as round(x*255). All
// channels must already be in [0, 1]; out-of-range input is not
// clamped and produces meaningless bytes.
func (c ColorAlpha[Spc, A]) ToU8() [4]uint8 {
	return [4]uint8{
		uint8(math.Round(float64(c.Raw[0]) * 255)),
		uint8(math.Round(float64(c.Raw[1]) * 255)),
		uint8(math.Round(float64(c.Raw[2]) * 255)),
		uint8(math.Round(float64(c.Raw[3]) * 255)),
	}
}

// ColorAlphaFromU8 decodes four bytes into a [ColorAlpha] with the
// given space and alpha state, mapping [0, 255] to [0, 1].
func ColorAlphaFromU8[Spc Space, A AlphaState](encoded [4]uint8) ColorAlpha[Spc, A] {
	return NewColorAlpha[Spc, A](
		float32(encoded[0])/255,
		float32(encoded[1])/255,
		float32(encoded[2])/255,
		float32(encoded[3])/255,
	)
}

// Premultiply multiplies the color channels by alpha. A no-op if the
// color is already premultiplied. Premultiplication is only
// numerically valid in a linear working space.
func (c ColorAlpha[Spc, A]) Premultiply() ColorAlpha[Spc, Premultiplied] {
	var state A
	r, g, b := convertAlphaRaw(c.Raw[0], c.Raw[1], c.Raw[2], c.Raw[3], state.AlphaStateID(), AlphaPremultiplied)
	return NewColorAlpha[Spc, Premultiplied](r, g, b, c.Raw[3])
}

// Separate divides the color channels by alpha. A no-op if the color
// is already separate. When alpha is 0 the color channels are left
// unchanged.
func (c ColorAlpha[Spc, A]) Separate() ColorAlpha[Spc, Separate] {
	var state A
	r, g, b := convertAlphaRaw(c.Raw[0], c.Raw[1], c.Raw[2], c.Raw[3], state.AlphaStateID(), AlphaSeparate)
	return NewColorAlpha[Spc, Separate](r, g, b, c.Raw[3])
}

// IntoColor premultiplies the color and strips off the alpha
// component, producing a display-referred [Color].
func (c ColorAlpha[Spc, A]) IntoColor() Color[Spc] {
	p := c.Premultiply()
	return Color[Spc]{Raw: f32.Vec3{p.Raw[0], p.Raw[1], p.Raw[2]}}
}

// IntoColorNoPremultiply strips off the alpha component without
// touching the color channels.
func (c ColorAlpha[Spc, A]) IntoColorNoPremultiply() Color[Spc] {
	return Color[Spc]{Raw: f32.Vec3{c.Raw[0], c.Raw[1], c.Raw[2]}}
}

// Dynamic upcasts the color into a [DynamicColorAlpha] carrying the
// same raw values with the space and alpha state as runtime data.
// The upcast is lossless; [Downcast] reverses it.
func (c ColorAlpha[Spc, A]) Dynamic() DynamicColorAlpha {
	var (
		spc   Spc
		state A
	)
	return DynamicColorAlpha{Raw: c.Raw, Space: spc.SpaceID(), AlphaState: state.AlphaStateID()}
}

// String implements fmt.Stringer.
func (c ColorAlpha[Spc, A]) String() string {
	var (
		spc   Spc
		state A
	)
	return fmt.Sprintf("ColorAlpha[%s, %s](%g, %g, %g, %g)",
		spc.SpaceID(), state.AlphaStateID(), c.Raw[0], c.Raw[1], c.Raw[2], c.Raw[3])
}

// CastSpace reinterprets the color as being in the space Dst with no
// numeric transform. This is an unchecked escape hatch: the caller
// asserts that an external computation already produced values valid
// in Dst. Misuse silently corrupts downstream math.
func CastSpace[Dst Space, Src Space, A AlphaState](c ColorAlpha[Src, A]) ColorAlpha[Dst, A] {
	return ColorAlpha[Dst, A]{Raw: c.Raw}
}

// CastAlphaState reinterprets the color's alpha state with no numeric
// transform. Unchecked; see [CastSpace].
func CastAlphaState[DstA AlphaState, Spc Space, SrcA AlphaState](c ColorAlpha[Spc, SrcA]) ColorAlpha[Spc, DstA] {
	return ColorAlpha[Spc, DstA]{Raw: c.Raw}
}

// Cast reinterprets both the color's space and alpha state with no
// numeric transform. Unchecked; see [CastSpace].
func Cast[Dst Space, DstA AlphaState, Src Space, SrcA AlphaState](c ColorAlpha[Src, SrcA]) ColorAlpha[Dst, DstA] {
	return ColorAlpha[Dst, DstA]{Raw: c.Raw}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
