package tint

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Color is a strongly typed color without an alpha channel,
// parameterized by a color space. A Color produced by stripping the
// alpha off a [ColorAlpha] is always display-referred.
type Color[Spc Space] struct {
	// Raw holds the three color channels.
	Raw f32.Vec3
}

// NewColor creates a [Color] from the raw channel values c1, c2, c3.
// No range validation is performed.
func NewColor[Spc Space](c1, c2, c3 float32) Color[Spc] {
	return Color[Spc]{Raw: f32.Vec3{c1, c2, c3}}
}

// ColorFromRaw creates a [Color] from a raw vector.
func ColorFromRaw[Spc Space](raw f32.Vec3) Color[Spc] {
	return Color[Spc]{Raw: raw}
}

// WithAlpha extends the color with a separate alpha channel.
func (c Color[Spc]) WithAlpha(alpha float32) ColorAlpha[Spc, Separate] {
	return NewColorAlpha[Spc, Separate](c.Raw[0], c.Raw[1], c.Raw[2], alpha)
}

// Dynamic upcasts the color into a [DynamicColor] carrying the same
// raw values with the space as runtime data.
func (c Color[Spc]) Dynamic() DynamicColor {
	var spc Spc
	return DynamicColor{Raw: c.Raw, Space: spc.SpaceID()}
}

// String implements fmt.Stringer.
func (c Color[Spc]) String() string {
	var spc Spc
	return fmt.Sprintf("Color[%s](%g, %g, %g)", spc.SpaceID(), c.Raw[0], c.Raw[1], c.Raw[2])
}
