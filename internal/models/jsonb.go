package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBDocument stores an arbitrary JSON document in a JSONB column.
// (De)serialization happens only at this storage edge; business logic
// works with decoded structures.
type JSONBDocument json.RawMessage

// Value implements the driver.Valuer interface
func (d JSONBDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	return []byte(d), nil
}

// Scan implements the sql.Scanner interface
func (d *JSONBDocument) Scan(value interface{}) error {
	if value == nil {
		*d = JSONBDocument("{}")
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*d = append((*d)[0:0], v...)
	case string:
		*d = JSONBDocument(v)
	}
	return nil
}

// MarshalJSON writes the stored document verbatim.
func (d JSONBDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores data verbatim.
func (d *JSONBDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}
