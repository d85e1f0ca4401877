package values

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// MSISDN represents a validated 10-digit national subscriber number as used
// by the Addinteli wholesale API.
type MSISDN struct {
	number string
}

var msisdnRegex = regexp.MustCompile(`^\d{10}$`)

// maskKeep is the number of trailing digits left visible when masking.
const maskKeep = 4

// NewMSISDN creates a new MSISDN value object with validation.
func NewMSISDN(number string) (MSISDN, error) {
	if number == "" {
		return MSISDN{}, fmt.Errorf("msisdn cannot be empty")
	}
	if !msisdnRegex.MatchString(number) {
		return MSISDN{}, fmt.Errorf("msisdn must be exactly 10 digits: %s", number)
	}
	return MSISDN{number: number}, nil
}

// MustNewMSISDN creates an MSISDN and panics on error (for constants/tests).
func MustNewMSISDN(number string) MSISDN {
	m, err := NewMSISDN(number)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the raw 10-digit number.
func (m MSISDN) String() string {
	return m.number
}

// IsEmpty checks if the MSISDN is empty.
func (m MSISDN) IsEmpty() bool {
	return m.number == ""
}

// Equal checks if two MSISDN values are equal.
func (m MSISDN) Equal(other MSISDN) bool {
	return m.number == other.number
}

// Masked returns the number with only its last 4 digits visible, e.g.
// "XXXXXX5678". This is the only form allowed to appear in logs.
func (m MSISDN) Masked() string {
	return MaskMSISDN(m.number)
}

// MaskMSISDN masks a raw subscriber number for logging, keeping the last 4
// digits. Inputs shorter than 4 characters are masked entirely.
func MaskMSISDN(number string) string {
	if number == "" {
		return ""
	}
	if len(number) <= maskKeep {
		return "XXXXXX"
	}
	return "XXXXXX" + number[len(number)-maskKeep:]
}

// MarshalJSON implements JSON marshaling.
func (m MSISDN) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.number)
}

// UnmarshalJSON implements JSON unmarshaling.
func (m *MSISDN) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	msisdn, err := NewMSISDN(number)
	if err != nil {
		return err
	}
	*m = msisdn
	return nil
}
