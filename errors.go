package tint

import "fmt"

// MismatchedSpaceError is returned by [Downcast] and [DowncastColor]
// when the stored runtime space tag differs from the requested space
// type parameter.
type MismatchedSpaceError struct {
	Expected, Actual SpaceID
}

func (e *MismatchedSpaceError) Error() string {
	return fmt.Sprintf("tint: mismatched color space: expected %s, got %s", e.Expected, e.Actual)
}

// MismatchedAlphaStateError is returned by [Downcast] when the stored
// runtime alpha state tag differs from the requested alpha state type
// parameter.
type MismatchedAlphaStateError struct {
	Expected, Actual AlphaStateID
}

func (e *MismatchedAlphaStateError) Error() string {
	return fmt.Sprintf("tint: mismatched alpha state: expected %s, got %s", e.Expected, e.Actual)
}

// UnknownSpaceError is returned when decoding a serialized space name
// that does not match any member of the space catalog.
type UnknownSpaceError struct {
	Name string
}

func (e *UnknownSpaceError) Error() string {
	return fmt.Sprintf("tint: unknown color space %q", e.Name)
}

// UnknownAlphaStateError is returned when decoding a serialized alpha
// state name that is neither Separate nor Premultiplied.
type UnknownAlphaStateError struct {
	Name string
}

func (e *UnknownAlphaStateError) Error() string {
	return fmt.Sprintf("tint: unknown alpha state %q", e.Name)
}
