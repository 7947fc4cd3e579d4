package tint

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// DynamicColorAlpha is a color with an alpha channel whose space and
// alpha state are runtime data instead of compile-time tags. It is
// the serialization and type-erased-storage form of [ColorAlpha]:
// any typed color upcasts losslessly via [ColorAlpha.Dynamic], and
// [Downcast] recovers the typed form after checking the tags.
type DynamicColorAlpha struct {
	// Raw holds the three color channels followed by alpha. Don't
	// combine two Raw vectors unless Space and AlphaState match.
	Raw        f32.Vec4     `json:"raw"`
	Space      SpaceID      `json:"space"`
	AlphaState AlphaStateID `json:"alphaState"`
}

// NewDynamicColorAlpha creates a [DynamicColorAlpha] from raw channel
// values and runtime tags.
func NewDynamicColorAlpha(raw f32.Vec4, space SpaceID, alphaState AlphaStateID) DynamicColorAlpha {
	return DynamicColorAlpha{Raw: raw, Space: space, AlphaState: alphaState}
}

// Convert converts the color to another space and alpha state. It is
// the runtime equivalent of [Convert] and runs the same five-stage
// pipeline from a conversion descriptor looked up by the space pair.
//
// Upcasting and deserialization only ever produce catalog tags; if the
// receiver or dstSpace carries a SpaceID outside the catalog (possible
// only by constructing the value by hand), Convert panics rather than
// silently producing garbage.
func (d DynamicColorAlpha) Convert(dstSpace SpaceID, dstAlpha AlphaStateID) DynamicColorAlpha {
	logger().Debug("tint: dynamic convert",
		"srcSpace", d.Space.String(), "dstSpace", dstSpace.String(),
		"srcAlpha", d.AlphaState.String(), "dstAlpha", dstAlpha.String())

	conv := conversionBetween(d.Space, dstSpace)
	a := d.Raw[3]

	r, g, b := conv.applySrcTransform(d.Raw[0], d.Raw[1], d.Raw[2])
	r, g, b = convertAlphaRaw(r, g, b, a, d.AlphaState, AlphaSeparate)
	r, g, b = conv.applyLinearPart(r, g, b)
	r, g, b = convertAlphaRaw(r, g, b, a, AlphaSeparate, dstAlpha)
	r, g, b = conv.applyDstTransform(r, g, b)

	return DynamicColorAlpha{Raw: f32.Vec4{r, g, b, a}, Space: dstSpace, AlphaState: dstAlpha}
}

// ConvertAlphaState converts the color to another alpha state,
// leaving the space untouched. A no-op when converting to the current
// state. Premultiplied to Separate with alpha 0 leaves the color
// channels unchanged.
func (d DynamicColorAlpha) ConvertAlphaState(dstAlpha AlphaStateID) DynamicColorAlpha {
	r, g, b := convertAlphaRaw(d.Raw[0], d.Raw[1], d.Raw[2], d.Raw[3], d.AlphaState, dstAlpha)
	return DynamicColorAlpha{Raw: f32.Vec4{r, g, b, d.Raw[3]}, Space: d.Space, AlphaState: dstAlpha}
}

// IntoColor premultiplies the color if it is not already and strips
// off the alpha component.
func (d DynamicColorAlpha) IntoColor() DynamicColor {
	p := d.ConvertAlphaState(AlphaPremultiplied)
	return DynamicColor{Raw: f32.Vec3{p.Raw[0], p.Raw[1], p.Raw[2]}, Space: d.Space}
}

// IntoColorNoPremultiply strips off the alpha component without
// checking whether the color is premultiplied.
func (d DynamicColorAlpha) IntoColorNoPremultiply() DynamicColor {
	return DynamicColor{Raw: f32.Vec3{d.Raw[0], d.Raw[1], d.Raw[2]}, Space: d.Space}
}

// String implements fmt.Stringer.
func (d DynamicColorAlpha) String() string {
	return fmt.Sprintf("DynamicColorAlpha(%s, %s)(%g, %g, %g, %g)",
		d.Space, d.AlphaState, d.Raw[0], d.Raw[1], d.Raw[2], d.Raw[3])
}

// Downcast reinterprets the dynamic color as a typed [ColorAlpha]
// after checking that the runtime tags match the requested type
// parameters exactly. On a mismatch it returns a
// [*MismatchedSpaceError] or [*MismatchedAlphaStateError]; on success
// the raw values are unchanged.
func Downcast[Spc Space, A AlphaState](d DynamicColorAlpha) (ColorAlpha[Spc, A], error) {
	var (
		spc   Spc
		state A
	)
	if d.Space != spc.SpaceID() {
		return ColorAlpha[Spc, A]{}, &MismatchedSpaceError{Expected: spc.SpaceID(), Actual: d.Space}
	}
	if d.AlphaState != state.AlphaStateID() {
		return ColorAlpha[Spc, A]{}, &MismatchedAlphaStateError{Expected: state.AlphaStateID(), Actual: d.AlphaState}
	}
	return ColorAlpha[Spc, A]{Raw: d.Raw}, nil
}

// DowncastUnchecked reinterprets the dynamic color as a typed
// [ColorAlpha] without checking the runtime tags. Use only when the
// caller has already established that the tags match; misuse silently
// corrupts downstream math.
func DowncastUnchecked[Spc Space, A AlphaState](d DynamicColorAlpha) ColorAlpha[Spc, A] {
	return ColorAlpha[Spc, A]{Raw: d.Raw}
}

// DowncastConvert converts the dynamic color to the requested space
// and alpha state and then downcasts it. Because the conversion
// guarantees matching tags, this cannot fail.
func DowncastConvert[Spc Space, A AlphaState](d DynamicColorAlpha) ColorAlpha[Spc, A] {
	var (
		spc   Spc
		state A
	)
	dst := d.Convert(spc.SpaceID(), state.AlphaStateID())
	return ColorAlpha[Spc, A]{Raw: dst.Raw}
}

// DynamicColor is the alpha-stripped counterpart of
// [DynamicColorAlpha], always display-referred.
type DynamicColor struct {
	Raw   f32.Vec3 `json:"raw"`
	Space SpaceID  `json:"space"`
}

// NewDynamicColor creates a [DynamicColor] from raw channel values
// and a runtime space tag.
func NewDynamicColor(raw f32.Vec3, space SpaceID) DynamicColor {
	return DynamicColor{Raw: raw, Space: space}
}

// DowncastColor reinterprets the dynamic color as a typed [Color]
// after checking that the runtime space tag matches.
func DowncastColor[Spc Space](d DynamicColor) (Color[Spc], error) {
	var spc Spc
	if d.Space != spc.SpaceID() {
		return Color[Spc]{}, &MismatchedSpaceError{Expected: spc.SpaceID(), Actual: d.Space}
	}
	return Color[Spc]{Raw: d.Raw}, nil
}

// String implements fmt.Stringer.
func (d DynamicColor) String() string {
	return fmt.Sprintf("DynamicColor(%s)(%g, %g, %g)", d.Space, d.Raw[0], d.Raw[1], d.Raw[2])
}
