package initialization

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/vdf/config"
)

// ErrEntropy is returned when the entropy source fails while sampling primes or seeds.
var ErrEntropy = errors.New("entropy source failure")

// ModulusBitsError is returned when a modulus of an unsupported length is requested.
type ModulusBitsError struct {
	Given uint
}

func (e ModulusBitsError) Error() string {
	return fmt.Sprintf("invalid modulus bit length; expected: even and %d-%d, given: %d",
		config.MinModulusBits, config.MaxModulusBits, e.Given)
}
