package values

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// IMEI represents a validated device hardware identifier (14 or 15 digits).
type IMEI struct {
	value string
}

var imeiRegex = regexp.MustCompile(`^\d{14,15}$`)

// NewIMEI creates a new IMEI value object with validation.
func NewIMEI(value string) (IMEI, error) {
	if value == "" {
		return IMEI{}, fmt.Errorf("imei cannot be empty")
	}
	if !imeiRegex.MatchString(value) {
		return IMEI{}, fmt.Errorf("imei must be 14 or 15 digits: %s", value)
	}
	return IMEI{value: value}, nil
}

// MustNewIMEI creates an IMEI and panics on error (for constants/tests).
func MustNewIMEI(value string) IMEI {
	i, err := NewIMEI(value)
	if err != nil {
		panic(err)
	}
	return i
}

// String returns the raw IMEI digits.
func (i IMEI) String() string {
	return i.value
}

// IsEmpty checks if the IMEI is empty.
func (i IMEI) IsEmpty() bool {
	return i.value == ""
}

// Equal checks if two IMEI values are equal.
func (i IMEI) Equal(other IMEI) bool {
	return i.value == other.value
}

// MarshalJSON implements JSON marshaling.
func (i IMEI) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

// UnmarshalJSON implements JSON unmarshaling.
func (i *IMEI) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	imei, err := NewIMEI(value)
	if err != nil {
		return err
	}
	*i = imei
	return nil
}
