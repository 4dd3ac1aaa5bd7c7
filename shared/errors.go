package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedVDF is returned when a solution is checked against an instance it was not computed for.
	ErrMismatchedVDF = errors.New("mismatched vdf instance")

	// ErrVDFVerify is returned when a solution is out of range or fails the verification equation.
	ErrVDFVerify = errors.New("vdf verification failed")

	// ErrZeroDelay is returned when a setup is requested with a delay parameter of 0.
	ErrZeroDelay = errors.New("delay parameter must be positive")

	// ErrMalformed is returned when decoding a value that is missing a field or holds a negative integer.
	ErrMalformed = errors.New("malformed vdf value")
)

// MismatchError names the first field in which a solution's instance differs
// from the instance held by the verifier.
type MismatchError struct {
	Param string
}

func (err MismatchError) Error() string {
	return fmt.Sprintf("%v: `%v` differs from the expected instance", ErrMismatchedVDF, err.Param)
}

func (err MismatchError) Unwrap() error {
	return ErrMismatchedVDF
}
