package shared

import (
	"fmt"
	"math/big"
)

// SetupForVDF holds the public parameters of a VDF epoch: the delay t and the modulus N
// of the hidden-order group.
type SetupForVDF struct {
	T uint64
	N *big.Int
}

// NewSetup returns a setup holding a copy of n.
func NewSetup(t uint64, n *big.Int) SetupForVDF {
	return SetupForVDF{T: t, N: cloneInt(n)}
}

func (s SetupForVDF) Clone() SetupForVDF {
	return NewSetup(s.T, s.N)
}

// Equal reports whether both setups carry the same delay and modulus.
func (s SetupForVDF) Equal(other SetupForVDF) bool {
	return s.mismatch(other) == ""
}

// Validate checks that the setup is well formed: a positive delay and an odd modulus N >= 3.
// It cannot tell whether N is composite with a hidden factorization; that is the setup authority's duty.
func (s SetupForVDF) Validate() error {
	if s.T == 0 {
		return ErrZeroDelay
	}
	if s.N == nil {
		return fmt.Errorf("%w: missing `N`", ErrMalformed)
	}
	if s.N.Sign() <= 0 || s.N.Bit(0) == 0 || s.N.BitLen() < 2 {
		return fmt.Errorf("%w: `N` must be an odd integer >= 3", ErrMalformed)
	}
	return nil
}

func (s SetupForVDF) mismatch(other SetupForVDF) string {
	switch {
	case s.T != other.T:
		return "t"
	case !equalInt(s.N, other.N):
		return "N"
	}
	return ""
}

// UnsolvedVDF is a single challenge: a fresh seed x bound to a setup.
type UnsolvedVDF struct {
	X     *big.Int
	Setup SetupForVDF
}

// NewUnsolved returns a challenge holding copies of x and setup.
func NewUnsolved(x *big.Int, setup SetupForVDF) UnsolvedVDF {
	return UnsolvedVDF{X: cloneInt(x), Setup: setup.Clone()}
}

func (u UnsolvedVDF) Clone() UnsolvedVDF {
	return NewUnsolved(u.X, u.Setup)
}

func (u UnsolvedVDF) Validate() error {
	if u.X == nil {
		return fmt.Errorf("%w: missing `x`", ErrMalformed)
	}
	if u.X.Sign() < 0 {
		return fmt.Errorf("%w: `x` must be non-negative", ErrMalformed)
	}
	return u.Setup.Validate()
}

// Equal reports whether both instances match bit-for-bit in x, t and N.
func (u UnsolvedVDF) Equal(other UnsolvedVDF) bool {
	return u.Mismatch(other) == ""
}

// Mismatch returns the name of the first field ("x", "t" or "N") in which the
// instances differ, or an empty string when they are equal.
func (u UnsolvedVDF) Mismatch(other UnsolvedVDF) string {
	if !equalInt(u.X, other.X) {
		return "x"
	}
	return u.Setup.mismatch(other.Setup)
}

// SolvedVDF is the prover's answer to an UnsolvedVDF: the output y = g^(2^t) mod N
// and the Wesolowski proof pi.
type SolvedVDF struct {
	Instance UnsolvedVDF
	Y        *big.Int
	Pi       *big.Int
}

// NewSolved returns a solution holding copies of its arguments.
func NewSolved(instance UnsolvedVDF, y, pi *big.Int) SolvedVDF {
	return SolvedVDF{
		Instance: instance.Clone(),
		Y:        cloneInt(y),
		Pi:       cloneInt(pi),
	}
}

func (s SolvedVDF) Clone() SolvedVDF {
	return NewSolved(s.Instance, s.Y, s.Pi)
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func equalInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
