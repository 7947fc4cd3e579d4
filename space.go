package tint

import "github.com/gogpu/tint/internal/transfer"

// SpaceID identifies a color space at runtime. It is the tags-as-data
// counterpart of the zero-size space marker types used as type
// parameters on [ColorAlpha].
type SpaceID uint8

const (
	// SpaceEncodedSrgb is sRGB with the standard nonlinear transfer
	// function applied (what images and displays use).
	SpaceEncodedSrgb SpaceID = iota

	// SpaceLinearSrgb is sRGB with linear-light channels, the working
	// space of [SpaceEncodedSrgb].
	SpaceLinearSrgb

	// SpaceEncodedDisplayP3 is Display P3 with the sRGB transfer
	// function applied.
	SpaceEncodedDisplayP3

	// SpaceLinearDisplayP3 is Display P3 with linear-light channels.
	SpaceLinearDisplayP3

	// SpaceLinearRec2020 is ITU-R BT.2020 with linear-light channels.
	SpaceLinearRec2020

	numSpaces
)

// String returns the space name.
func (s SpaceID) String() string {
	if int(s) < len(spaces) {
		return spaces[s].name
	}
	return "Unknown"
}

// IsLinear reports whether channels in this space are proportional to
// physical light intensity.
func (s SpaceID) IsLinear() bool { return spaces[s].decode == nil }

// WorkingSpaceID returns the linear working space this space decodes to.
// For a linear space it returns the space itself.
func (s SpaceID) WorkingSpaceID() SpaceID { return spaces[s].working }

// MarshalText encodes the space as its name, for use in JSON and other
// textual serialization of [DynamicColorAlpha].
func (s SpaceID) MarshalText() ([]byte, error) {
	if int(s) >= len(spaces) {
		return nil, &UnknownSpaceError{Name: s.String()}
	}
	return []byte(spaces[s].name), nil
}

// UnmarshalText decodes a space name produced by MarshalText.
func (s *SpaceID) UnmarshalText(text []byte) error {
	for id := range spaces {
		if spaces[id].name == string(text) {
			*s = SpaceID(id)
			return nil
		}
	}
	return &UnknownSpaceError{Name: string(text)}
}

// Space is the constraint satisfied by the zero-size color space
// markers ([EncodedSrgb], [LinearSrgb], ...). The marker type itself
// acts as the compile-time tag; SpaceID exposes the same identity as
// runtime data for the dynamic path.
type Space interface {
	SpaceID() SpaceID
}

// WorkingSpace is the constraint satisfied by linear working spaces,
// the only spaces in which gamut transforms, blending and
// premultiplication are numerically valid.
type WorkingSpace interface {
	Space
	workingSpace()
}

// NonlinearTo constrains a nonlinear space whose declared working
// space is L. Used by [Linearize] so the destination type can only be
// the one linear space the source actually decodes to.
type NonlinearTo[L Space] interface {
	Space
	linearizesTo(L)
}

// EncodedAs constrains an encoded space whose declared decoded space
// is D. Used by [Decode].
type EncodedAs[D Space] interface {
	Space
	decodesTo(D)
}

// EncodedSrgb is the marker for nonlinear (display-encoded) sRGB.
type EncodedSrgb struct{}

// LinearSrgb is the marker for linear-light sRGB, the working space of
// [EncodedSrgb].
type LinearSrgb struct{}

// EncodedDisplayP3 is the marker for nonlinear Display P3.
type EncodedDisplayP3 struct{}

// LinearDisplayP3 is the marker for linear-light Display P3.
type LinearDisplayP3 struct{}

// LinearRec2020 is the marker for linear-light BT.2020.
type LinearRec2020 struct{}

func (EncodedSrgb) SpaceID() SpaceID { return SpaceEncodedSrgb }

func (EncodedSrgb) linearizesTo(LinearSrgb) {}
func (EncodedSrgb) decodesTo(LinearSrgb)    {}

func (LinearSrgb) SpaceID() SpaceID { return SpaceLinearSrgb }

func (LinearSrgb) workingSpace() {}

func (EncodedDisplayP3) SpaceID() SpaceID { return SpaceEncodedDisplayP3 }

func (EncodedDisplayP3) linearizesTo(LinearDisplayP3) {}
func (EncodedDisplayP3) decodesTo(LinearDisplayP3)    {}

func (LinearDisplayP3) SpaceID() SpaceID { return SpaceLinearDisplayP3 }

func (LinearDisplayP3) workingSpace() {}

func (LinearRec2020) SpaceID() SpaceID { return SpaceLinearRec2020 }

func (LinearRec2020) workingSpace() {}

// spaceInfo is the per-space transform table consumed by the
// conversion pipeline. decode/encode are the transfer functions
// applied per channel (nil for linear spaces); toXYZ/fromXYZ are the
// primaries matrices routing gamut transforms through CIE XYZ (D65).
type spaceInfo struct {
	name    string
	working SpaceID
	decode  func(float32) float32
	encode  func(float32) float32
	toXYZ   mat3
	fromXYZ mat3
}

var spaces = [numSpaces]spaceInfo{
	SpaceEncodedSrgb: {
		name:    "EncodedSrgb",
		working: SpaceLinearSrgb,
		decode:  transfer.SRGBToLinear,
		encode:  transfer.LinearToSRGB,
		toXYZ:   srgbToXYZ,
		fromXYZ: xyzToSRGB,
	},
	SpaceLinearSrgb: {
		name:    "LinearSrgb",
		working: SpaceLinearSrgb,
		toXYZ:   srgbToXYZ,
		fromXYZ: xyzToSRGB,
	},
	SpaceEncodedDisplayP3: {
		name:    "EncodedDisplayP3",
		working: SpaceLinearDisplayP3,
		decode:  transfer.SRGBToLinear,
		encode:  transfer.LinearToSRGB,
		toXYZ:   displayP3ToXYZ,
		fromXYZ: xyzToDisplayP3,
	},
	SpaceLinearDisplayP3: {
		name:    "LinearDisplayP3",
		working: SpaceLinearDisplayP3,
		toXYZ:   displayP3ToXYZ,
		fromXYZ: xyzToDisplayP3,
	},
	SpaceLinearRec2020: {
		name:    "LinearRec2020",
		working: SpaceLinearRec2020,
		toXYZ:   rec2020ToXYZ,
		fromXYZ: xyzToRec2020,
	},
}

// Primaries matrices, D65 white point. Values from the sRGB, Display P3
// and BT.2020 specifications (colour-science derivation, row-major).
var (
	srgbToXYZ = mat3{
		0.41239080, 0.35758434, 0.18048079,
		0.21263901, 0.71516868, 0.07219232,
		0.01933082, 0.11919478, 0.95053215,
	}
	xyzToSRGB = mat3{
		3.24096994, -1.53738318, -0.49861076,
		-0.96924364, 1.87596750, 0.04155506,
		0.05563008, -0.20397696, 1.05697151,
	}
	displayP3ToXYZ = mat3{
		0.48657095, 0.26566769, 0.19821729,
		0.22897456, 0.69173852, 0.07928691,
		0.00000000, 0.04511338, 1.04394437,
	}
	xyzToDisplayP3 = mat3{
		2.49349691, -0.93138362, -0.40271078,
		-0.82948897, 1.76266406, 0.02362469,
		0.03584583, -0.07617239, 0.95688452,
	}
	rec2020ToXYZ = mat3{
		0.63695805, 0.14461690, 0.16888098,
		0.26270021, 0.67799807, 0.05930171,
		0.00000000, 0.02807269, 1.06098506,
	}
	xyzToRec2020 = mat3{
		1.71665119, -0.35567078, -0.25336628,
		-0.66668435, 1.61648124, 0.01576855,
		0.01763986, -0.04277061, 0.94210312,
	}
)
