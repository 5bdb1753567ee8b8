package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Direction is one ordered step of a recipe.
type Direction struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Directions encodes the ordered step list into a single jsonb column.
// Value and Scan are exact inverses: decoding what Value produced always
// yields an equal sequence in the same order.
type Directions []Direction

func (d Directions) Value() (driver.Value, error) {
	if d == nil {
		d = Directions{}
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("directions: encode: %w", err)
	}
	return string(raw), nil
}

func (d *Directions) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Directions{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("directions: cannot scan %T", src)
	}
	if len(raw) == 0 {
		*d = Directions{}
		return nil
	}
	out := Directions{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("directions: decode: %w", err)
	}
	*d = out
	return nil
}

func (Directions) GormDataType() string { return "jsonb" }
