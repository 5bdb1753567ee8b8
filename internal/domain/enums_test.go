package domain

import (
	"strings"
	"testing"
)

func TestDurationMembership(t *testing.T) {
	if len(Durations) != 12 {
		t.Fatalf("expected 12 duration buckets, got %d", len(Durations))
	}
	for _, d := range Durations {
		if !d.Valid() {
			t.Errorf("duration %q should be valid", d)
		}
	}
	for _, bad := range []Duration{"", "150/180", "0-5", "five minutes"} {
		if bad.Valid() {
			t.Errorf("duration %q should be invalid", bad)
		}
	}
}

func TestCategoryMembership(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if Category("soup").Valid() {
		t.Error("category soup should be invalid")
	}
}

func TestMeasurementMembership(t *testing.T) {
	for _, m := range Measurements {
		if !m.Valid() {
			t.Errorf("measurement %q should be valid", m)
		}
	}
	// Case matters: the column vocabulary is exact.
	for _, bad := range []Measurement{"l", "G", "OZ", "Spoon", ""} {
		if bad.Valid() {
			t.Errorf("measurement %q should be invalid", bad)
		}
	}
}

func TestEnumValueRejectsInvalid(t *testing.T) {
	if _, err := Duration("13/14").Value(); err == nil {
		t.Error("expected error for invalid duration")
	} else if !strings.Contains(err.Error(), "duration") {
		t.Errorf("error should name the field, got %q", err.Error())
	}
	if _, err := Category("x").Value(); err == nil {
		t.Error("expected error for invalid category")
	}
	if _, err := Measurement("kg").Value(); err == nil {
		t.Error("expected error for invalid measurement")
	}
}

func TestEnumValueScanRoundTrip(t *testing.T) {
	for _, d := range Durations {
		v, err := d.Value()
		if err != nil {
			t.Fatalf("Value(%q): %v", d, err)
		}
		var got Duration
		if err := got.Scan(v); err != nil {
			t.Fatalf("Scan(%v): %v", v, err)
		}
		if got != d {
			t.Errorf("round trip changed %q to %q", d, got)
		}
	}

	// Postgres drivers may hand back []byte for enum columns.
	var m Measurement
	if err := m.Scan([]byte("spoon")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if m != MeasurementSpoon {
		t.Errorf("expected spoon, got %q", m)
	}
}

func TestEnumScanRejectsUnknownType(t *testing.T) {
	var c Category
	if err := c.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
