package tint

import "fmt"

// conversion describes the three space-transform stages between a
// source and destination space. The same descriptor drives both the
// typed [Convert] and the dynamic [DynamicColorAlpha.Convert]; Go
// generics cannot specialize per space pair at compile time, so the
// typed path resolves its zero-size tags to runtime IDs and shares
// this table-driven dispatch.
type conversion struct {
	// decode maps a source channel into the source's linear working
	// space. nil means the source is already linear.
	decode func(float32) float32

	// linear is the gamut transform between the source and
	// destination working spaces, precomposed through CIE XYZ.
	// Skipped when linearIdentity is set.
	linear         mat3
	linearIdentity bool

	// encode maps a linear destination channel into the
	// destination's encoded form. nil means the destination is
	// linear.
	encode func(float32) float32
}

// conversionBetween builds the conversion descriptor for a space pair.
// The same-space pair is the identity shortcut. The typed path can only
// produce catalog IDs, but a hand-built [DynamicColorAlpha] can carry
// any SpaceID value, so out-of-range tags are rejected here for both.
func conversionBetween(src, dst SpaceID) conversion {
	if int(src) >= len(spaces) || int(dst) >= len(spaces) {
		panic(fmt.Sprintf("tint: conversion with unknown SpaceID (src=%d, dst=%d)", src, dst))
	}
	if src == dst {
		return conversion{linearIdentity: true}
	}
	si, di := &spaces[src], &spaces[dst]
	conv := conversion{decode: si.decode, encode: di.encode}
	if si.working == di.working {
		conv.linearIdentity = true
	} else {
		conv.linear = di.fromXYZ.mul(si.toXYZ)
	}
	return conv
}

// applySrcTransform decodes source channels into the source's linear
// working space.
func (cv conversion) applySrcTransform(r, g, b float32) (float32, float32, float32) {
	if cv.decode == nil {
		return r, g, b
	}
	return cv.decode(r), cv.decode(g), cv.decode(b)
}

// applyLinearPart applies the gamut transform between working spaces.
func (cv conversion) applyLinearPart(r, g, b float32) (float32, float32, float32) {
	if cv.linearIdentity {
		return r, g, b
	}
	return cv.linear.mulVec(r, g, b)
}

// applyDstTransform encodes linear channels into the destination's
// encoded form.
func (cv conversion) applyDstTransform(r, g, b float32) (float32, float32, float32) {
	if cv.encode == nil {
		return r, g, b
	}
	return cv.encode(r), cv.encode(g), cv.encode(b)
}

// Convert converts a color from one (space, alpha state) pair to
// another, as a fixed five-stage pipeline over the raw channels:
//
//  1. decode the source channels into the source's linear working
//     space,
//  2. normalize the alpha state to [Separate] (gamut transforms are
//     only valid on unpremultiplied values),
//  3. apply the linear gamut transform into the destination's working
//     space,
//  4. re-target the alpha state to DstA,
//  5. encode into the destination's final form.
//
// Alpha itself passes through unchanged; it is never encoded.
// Converting to the current space and alpha state returns the same
// values up to floating-point rounding.
//
// The source type parameters are inferred from the argument:
//
//	linear := tint.Convert[tint.LinearSrgb, tint.Premultiplied](c)
func Convert[DstSpc Space, DstA AlphaState, SrcSpc Space, SrcA AlphaState](c ColorAlpha[SrcSpc, SrcA]) ColorAlpha[DstSpc, DstA] {
	var (
		srcSpc SrcSpc
		dstSpc DstSpc
		srcA   SrcA
		dstA   DstA
	)
	conv := conversionBetween(srcSpc.SpaceID(), dstSpc.SpaceID())
	a := c.Raw[3]

	r, g, b := conv.applySrcTransform(c.Raw[0], c.Raw[1], c.Raw[2])
	r, g, b = convertAlphaRaw(r, g, b, a, srcA.AlphaStateID(), AlphaSeparate)
	r, g, b = conv.applyLinearPart(r, g, b)
	r, g, b = convertAlphaRaw(r, g, b, a, AlphaSeparate, dstA.AlphaStateID())
	r, g, b = conv.applyDstTransform(r, g, b)

	return NewColorAlpha[DstSpc, DstA](r, g, b, a)
}

// ConvertAlpha converts a color to the alpha state DstA, leaving the
// space untouched. A no-op when converting to the current state. When
// converting from [Premultiplied] to [Separate] with alpha 0, the
// color channels are left unchanged.
func ConvertAlpha[DstA AlphaState, Spc Space, SrcA AlphaState](c ColorAlpha[Spc, SrcA]) ColorAlpha[Spc, DstA] {
	var (
		srcA SrcA
		dstA DstA
	)
	r, g, b := convertAlphaRaw(c.Raw[0], c.Raw[1], c.Raw[2], c.Raw[3], srcA.AlphaStateID(), dstA.AlphaStateID())
	return NewColorAlpha[Spc, DstA](r, g, b, c.Raw[3])
}

// Linearize converts a nonlinear color into its declared linear
// working space by applying only the source decode half-step. Alpha is
// untouched. The destination type is constrained to the one working
// space the source decodes to:
//
//	linear := tint.Linearize[tint.LinearSrgb](srgb)
func Linearize[Dst Space, Src NonlinearTo[Dst], A AlphaState](c ColorAlpha[Src, A]) ColorAlpha[Dst, A] {
	var src Src
	info := &spaces[src.SpaceID()]
	return NewColorAlpha[Dst, A](info.decode(c.Raw[0]), info.decode(c.Raw[1]), info.decode(c.Raw[2]), c.Raw[3])
}

// Decode converts an encoded color into its declared decoded working
// space, which allows many more operations to be performed. Alpha is
// untouched.
func Decode[Dst Space, Src EncodedAs[Dst], A AlphaState](c ColorAlpha[Src, A]) ColorAlpha[Dst, A] {
	var src Src
	info := &spaces[src.SpaceID()]
	return NewColorAlpha[Dst, A](info.decode(c.Raw[0]), info.decode(c.Raw[1]), info.decode(c.Raw[2]), c.Raw[3])
}
