package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also accepts numeric strings in JSON
// payloads. Storefront clients send prices both as numbers and as form
// field strings, so the decoder coerces either form.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("expected a number, got null")
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("could not convert string to float: '%s'", s)
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("could not convert value to float: %s", raw)
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the underlying value
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is an int that also accepts numeric strings in JSON payloads.
// Fractional JSON numbers are truncated; fractional strings are rejected.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("expected an integer, got null")
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("could not convert string to int: '%s'", s)
		}
		*f = FlexInt(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("could not convert value to int: %s", raw)
	}
	*f = FlexInt(int(v))
	return nil
}

// Int returns the underlying value
func (f FlexInt) Int() int {
	return int(f)
}
