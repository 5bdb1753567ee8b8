package domain

import (
	"database/sql/driver"
	"fmt"
)

// Closed column vocabularies. Each type validates membership when it is
// written to the database, so an invalid label never reaches a row.

type Duration string

var Durations = []Duration{
	"0/5", "5/10", "10/15", "15/20", "20/25", "25/30",
	"30/45", "45/60", "60/75", "75/90", "90/120", "120/150",
}

func (d Duration) Valid() bool { return containsEnum(Durations, d) }

func (d Duration) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("duration: invalid enum value %q", string(d))
	}
	return string(d), nil
}

func (d *Duration) Scan(src interface{}) error {
	s, err := enumString("duration", src)
	if err != nil {
		return err
	}
	*d = Duration(s)
	return nil
}

type Category string

const (
	CategoryStarter Category = "starter"
	CategoryMain    Category = "main"
	CategoryDessert Category = "dessert"
)

var Categories = []Category{CategoryStarter, CategoryMain, CategoryDessert}

func (c Category) Valid() bool { return containsEnum(Categories, c) }

func (c Category) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("category: invalid enum value %q", string(c))
	}
	return string(c), nil
}

func (c *Category) Scan(src interface{}) error {
	s, err := enumString("category", src)
	if err != nil {
		return err
	}
	*c = Category(s)
	return nil
}

type Measurement string

const (
	MeasurementLiter Measurement = "L"
	MeasurementGram  Measurement = "g"
	MeasurementOunce Measurement = "oz"
	MeasurementSpoon Measurement = "spoon"
)

var Measurements = []Measurement{MeasurementLiter, MeasurementGram, MeasurementOunce, MeasurementSpoon}

func (m Measurement) Valid() bool { return containsEnum(Measurements, m) }

func (m Measurement) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("measurement: invalid enum value %q", string(m))
	}
	return string(m), nil
}

func (m *Measurement) Scan(src interface{}) error {
	s, err := enumString("measurement", src)
	if err != nil {
		return err
	}
	*m = Measurement(s)
	return nil
}

func containsEnum[T ~string](choices []T, v T) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}

func enumString(field string, src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%s: cannot scan %T", field, src)
	}
}
