package tint

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"
)

func TestDowncastContract(t *testing.T) {
	raw := f32.Vec4{0.5, 0.25, 0.125, 0.5}
	d := NewDynamicColorAlpha(raw, SpaceLinearSrgb, AlphaPremultiplied)

	got, err := Downcast[LinearSrgb, Premultiplied](d)
	if err != nil {
		t.Fatalf("matching downcast failed: %v", err)
	}
	if got.Raw != raw {
		t.Errorf("downcast raw = %v, want %v", got.Raw, raw)
	}

	_, err = Downcast[EncodedSrgb, Premultiplied](d)
	var spaceErr *MismatchedSpaceError
	if !errors.As(err, &spaceErr) {
		t.Fatalf("space mismatch error = %v, want *MismatchedSpaceError", err)
	}
	if spaceErr.Expected != SpaceEncodedSrgb || spaceErr.Actual != SpaceLinearSrgb {
		t.Errorf("space mismatch tags = %s/%s", spaceErr.Expected, spaceErr.Actual)
	}

	_, err = Downcast[LinearSrgb, Separate](d)
	var alphaErr *MismatchedAlphaStateError
	if !errors.As(err, &alphaErr) {
		t.Fatalf("alpha mismatch error = %v, want *MismatchedAlphaStateError", err)
	}
	if alphaErr.Expected != AlphaSeparate || alphaErr.Actual != AlphaPremultiplied {
		t.Errorf("alpha mismatch tags = %s/%s", alphaErr.Expected, alphaErr.Actual)
	}
}

func TestDowncastUnchecked(t *testing.T) {
	raw := f32.Vec4{0.1, 0.2, 0.3, 0.4}
	d := NewDynamicColorAlpha(raw, SpaceLinearRec2020, AlphaSeparate)

	// The tags are wrong on purpose; unchecked downcast must not care.
	got := DowncastUnchecked[EncodedSrgb, Premultiplied](d)
	if got.Raw != raw {
		t.Errorf("unchecked downcast raw = %v, want %v", got.Raw, raw)
	}
}

// DowncastConvert converts first, so it cannot fail and must agree
// with the typed conversion.
func TestDowncastConvert(t *testing.T) {
	typed := SRGBA[Separate](1, 0, 0, 0.5)
	want := Convert[LinearSrgb, Premultiplied](typed)

	got := DowncastConvert[LinearSrgb, Premultiplied](typed.Dynamic())
	if !vecNear(got.Raw, want.Raw, 1e-6) {
		t.Errorf("DowncastConvert = %v, want %v", got.Raw, want.Raw)
	}
}

// The upcast is lossless: a downcast of an upcast returns the exact
// raw values.
func TestUpcastDowncastRoundTrip(t *testing.T) {
	in := NewColorAlpha[EncodedDisplayP3, Separate](0.3, 0.6, 0.9, 0.5)
	got, err := Downcast[EncodedDisplayP3, Separate](in.Dynamic())
	if err != nil {
		t.Fatalf("downcast failed: %v", err)
	}
	if got.Raw != in.Raw {
		t.Errorf("round trip raw = %v, want %v", got.Raw, in.Raw)
	}
}

func TestDowncastColor(t *testing.T) {
	d := NewDynamicColor(f32.Vec3{0.1, 0.2, 0.3}, SpaceEncodedSrgb)

	got, err := DowncastColor[EncodedSrgb](d)
	if err != nil {
		t.Fatalf("matching downcast failed: %v", err)
	}
	if got.Raw != d.Raw {
		t.Errorf("downcast raw = %v, want %v", got.Raw, d.Raw)
	}

	var spaceErr *MismatchedSpaceError
	if _, err := DowncastColor[LinearSrgb](d); !errors.As(err, &spaceErr) {
		t.Fatalf("space mismatch error = %v, want *MismatchedSpaceError", err)
	}
}

func TestDynamicIntoColor(t *testing.T) {
	d := NewDynamicColorAlpha(f32.Vec4{0.8, 0.4, 0.2, 0.5}, SpaceLinearSrgb, AlphaSeparate)

	got := d.IntoColor()
	want := NewDynamicColor(f32.Vec3{0.4, 0.2, 0.1}, SpaceLinearSrgb)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("IntoColor mismatch (-want +got):\n%s", diff)
	}

	got = d.IntoColorNoPremultiply()
	want = NewDynamicColor(f32.Vec3{0.8, 0.4, 0.2}, SpaceLinearSrgb)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IntoColorNoPremultiply mismatch (-want +got):\n%s", diff)
	}
}

// A hand-built DynamicColorAlpha can carry a SpaceID outside the
// catalog. Convert must fail loudly, naming the bad tag, instead of
// indexing the space table out of range.
func TestConvertUnknownSpacePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Convert with unknown SpaceID did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "unknown SpaceID") {
			t.Errorf("panic = %v, want a message naming the unknown SpaceID", r)
		}
	}()

	d := NewDynamicColorAlpha(f32.Vec4{1, 0, 0, 1}, SpaceID(99), AlphaSeparate)
	d.Convert(SpaceLinearSrgb, AlphaSeparate)
}

func TestDynamicColorAlphaJSON(t *testing.T) {
	in := NewDynamicColorAlpha(f32.Vec4{0.5, 0, 0, 0.5}, SpaceLinearSrgb, AlphaPremultiplied)

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"raw":[0.5,0,0,0.5],"space":"LinearSrgb","alphaState":"Premultiplied"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var out DynamicColorAlpha
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONUnknownTags(t *testing.T) {
	var out DynamicColorAlpha

	err := json.Unmarshal([]byte(`{"raw":[0,0,0,0],"space":"Hsl","alphaState":"Separate"}`), &out)
	var spaceErr *UnknownSpaceError
	if !errors.As(err, &spaceErr) {
		t.Errorf("unknown space error = %v, want *UnknownSpaceError", err)
	}

	err = json.Unmarshal([]byte(`{"raw":[0,0,0,0],"space":"LinearSrgb","alphaState":"Matted"}`), &out)
	var alphaErr *UnknownAlphaStateError
	if !errors.As(err, &alphaErr) {
		t.Errorf("unknown alpha state error = %v, want *UnknownAlphaStateError", err)
	}
}
