package values

import (
	"fmt"
	"strings"
)

// NoEmailSentinel is the literal the carrier accepts in place of a contact
// address for subscribers without email.
const NoEmailSentinel = "no_email"

// ContactEmail represents an activation contact address: either the
// no_email sentinel or a syntactically plausible address (exactly one @ with
// non-empty local and domain parts). The carrier does no deeper validation.
type ContactEmail struct {
	address string
}

// NewContactEmail creates a new ContactEmail value object with validation.
func NewContactEmail(address string) (ContactEmail, error) {
	if address == NoEmailSentinel {
		return ContactEmail{address: address}, nil
	}
	parts := strings.Split(address, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ContactEmail{}, fmt.Errorf("invalid email format: %s", address)
	}
	return ContactEmail{address: address}, nil
}

// String returns the address (or the sentinel).
func (e ContactEmail) String() string {
	return e.address
}

// IsSentinel reports whether the value is the no_email sentinel.
func (e ContactEmail) IsSentinel() bool {
	return e.address == NoEmailSentinel
}
