package tint

// AlphaStateID identifies an alpha-compositing state at runtime. It is
// the tags-as-data counterpart of the [Separate] and [Premultiplied]
// marker types.
type AlphaStateID uint8

const (
	// AlphaSeparate means the color channels are independent of the
	// alpha channel (also called unpremultiplied or straight alpha).
	AlphaSeparate AlphaStateID = iota

	// AlphaPremultiplied means the color channels have been
	// pre-scaled by the alpha channel.
	AlphaPremultiplied
)

// String returns the alpha state name.
func (a AlphaStateID) String() string {
	switch a {
	case AlphaSeparate:
		return "Separate"
	case AlphaPremultiplied:
		return "Premultiplied"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the alpha state as its name.
func (a AlphaStateID) MarshalText() ([]byte, error) {
	if a > AlphaPremultiplied {
		return nil, &UnknownAlphaStateError{Name: a.String()}
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an alpha state name produced by MarshalText.
func (a *AlphaStateID) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Separate":
		*a = AlphaSeparate
	case "Premultiplied":
		*a = AlphaPremultiplied
	default:
		return &UnknownAlphaStateError{Name: string(text)}
	}
	return nil
}

// AlphaState is the constraint satisfied by the zero-size alpha state
// markers [Separate] and [Premultiplied].
type AlphaState interface {
	AlphaStateID() AlphaStateID
}

// Separate is the marker for unpremultiplied (straight) alpha.
type Separate struct{}

// Premultiplied is the marker for alpha-premultiplied color channels.
type Premultiplied struct{}

func (Separate) AlphaStateID() AlphaStateID      { return AlphaSeparate }
func (Premultiplied) AlphaStateID() AlphaStateID { return AlphaPremultiplied }

// convertAlphaRaw converts the color channels of an (rgb, alpha) pair
// from one alpha state to another. Converting to the current state is
// the identity. Premultiplied to Separate with alpha == 0 leaves the
// color channels unchanged; this non-faulting policy is applied
// uniformly to the typed and dynamic paths.
func convertAlphaRaw(r, g, b, a float32, from, to AlphaStateID) (float32, float32, float32) {
	switch {
	case from == AlphaSeparate && to == AlphaPremultiplied:
		return r * a, g * a, b * a
	case from == AlphaPremultiplied && to == AlphaSeparate:
		if a == 0 {
			return r, g, b
		}
		return r / a, g / a, b / a
	default:
		return r, g, b
	}
}
