package customer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists at the requested key.
	ErrNotFound = errors.New("corral: customer not found")

	// ErrAlreadyExists is returned when creating a customer whose id is taken.
	ErrAlreadyExists = errors.New("corral: customer already exists")

	// ErrEmailTaken is returned when creating a customer whose email is
	// already mapped to another customer.
	ErrEmailTaken = errors.New("corral: email already in use")

	// ErrNotActive is returned when updating a customer that is missing or
	// disabled. A disabled customer must be re-enabled before its profile
	// can be refreshed.
	ErrNotActive = errors.New("corral: customer missing or disabled")
)

// DecodeError reports a stored attribute that is missing or has an
// unexpected shape. Decoding fails on the first faulty attribute.
type DecodeError struct {
	Attr   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("corral: decode attribute %q: %s", e.Attr, e.Reason)
}
