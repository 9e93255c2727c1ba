package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray maps a JSONB column to a string slice.
type StringArray []string

// Scan implements sql.Scanner so GORM can read JSONB values.
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value implements driver.Valuer so GORM can write JSONB values.
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // empty JSON array instead of null
	}
	return json.Marshal(o)
}
