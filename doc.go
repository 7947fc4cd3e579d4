// Package tint provides strongly typed color management for Go.
//
// # Overview
//
// tint represents colors tagged with a color space and, for colors
// carrying transparency, an alpha-compositing state. The tags are
// zero-size marker types used as type parameters, so the compiler
// rejects operations that would mix incompatible representations, and
// a tagged color has exactly the memory layout of its raw channel
// vector. tint is designed to integrate with the GoGPU ecosystem, but
// has no rendering dependencies of its own.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	// An encoded sRGB color with separate (straight) alpha.
//	c := tint.SRGBA[tint.Separate](1.0, 0.0, 0.0, 0.5)
//
//	// Convert to linear sRGB with premultiplied alpha. The five-stage
//	// pipeline decodes, normalizes alpha, transforms gamut,
//	// re-targets alpha and encodes.
//	lin := tint.Convert[tint.LinearSrgb, tint.Premultiplied](c)
//
//	// Upcast to the runtime-tagged form for storage or JSON.
//	dyn := lin.Dynamic()
//
//	// Downcast back, with the tags checked.
//	back, err := tint.Downcast[tint.LinearSrgb, tint.Premultiplied](dyn)
//
// # Typed and dynamic paths
//
// The typed path ([ColorAlpha], [Convert], [Blend]) trusts the type
// system and documented caller contracts instead of runtime checks.
// The dynamic path ([DynamicColorAlpha]) carries the tags as data for
// serialization and heterogeneous storage, and [Downcast] is the one
// place a runtime validation is paid for.
//
// # Architecture
//
// The library is organized into:
//   - Public API: ColorAlpha, Color, DynamicColorAlpha, DynamicColor,
//     the space and alpha state markers, Convert and Blend
//   - Internal: transfer (per-channel transfer functions and LUTs)
//
// All operations are pure value transforms; concurrent callers need no
// coordination.
package tint
