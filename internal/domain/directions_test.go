package domain

import (
	"testing"
)

func TestDirectionsRoundTrip(t *testing.T) {
	in := Directions{
		{Title: "prep", Text: "chop the onions"},
		{Title: "cook", Text: "brown them slowly"},
		{Title: "serve", Text: "plate with bread"},
	}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out Directions
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d steps, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("step %d changed: %+v != %+v", i, out[i], in[i])
		}
	}
}

func TestDirectionsNilEncodesEmpty(t *testing.T) {
	var d Directions
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil directions should encode as [], got %v", v)
	}
}

func TestDirectionsScanNilAndEmpty(t *testing.T) {
	var d Directions
	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if d == nil || len(d) != 0 {
		t.Errorf("expected empty slice, got %#v", d)
	}
	if err := d.Scan([]byte(`[{"title":"a","text":"b"}]`)); err != nil {
		t.Fatalf("Scan(bytes): %v", err)
	}
	if len(d) != 1 || d[0].Title != "a" {
		t.Errorf("unexpected decode: %#v", d)
	}
}

func TestDirectionsScanRejectsUnknownType(t *testing.T) {
	var d Directions
	if err := d.Scan(3.14); err == nil {
		t.Error("expected error scanning float")
	}
}
