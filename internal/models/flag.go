package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flag is a boolean that the remote API serves interchangeably as
// true/false or 0/1. It always encodes back to 0/1, which is what the
// API expects on writes.
type Flag bool

// MarshalJSON implements json.Marshaler
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}

// Bool returns the flag as a plain bool
func (f Flag) Bool() bool {
	return bool(f)
}

var _ json.Marshaler = Flag(false)
