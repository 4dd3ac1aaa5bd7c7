package verifying

import (
	"fmt"
	"math/big"

	"github.com/spacemeshos/vdf/oracle"
	"github.com/spacemeshos/vdf/shared"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Verify checks that solved answers unsolved, the instance held by the verifier.
// It returns nil if the proof is valid. Otherwise the error wraps shared.ErrMismatchedVDF when
// solved was computed for another instance, or shared.ErrVDFVerify when y or pi is not an
// element of (Z/NZ)* or the verification equation pi^l * g^r = y (mod N) does not hold.
//
// The group element g and the challenge prime l are always recomputed from unsolved.
// The cost is independent of t.
func Verify(solved shared.SolvedVDF, unsolved shared.UnsolvedVDF, opts ...OptionFunc) error {
	options := applyOpts(opts...)
	if err := options.cfg.Validate(); err != nil {
		return err
	}

	if field := solved.Instance.Mismatch(unsolved); field != "" {
		return shared.MismatchError{Param: field}
	}
	if err := unsolved.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrVDFVerify, err)
	}

	n := unsolved.Setup.N
	if !inGroup(solved.Y, n) {
		return fmt.Errorf("%w: `y` is not a unit in [1, N)", shared.ErrVDFVerify)
	}
	if !inGroup(solved.Pi, n) {
		return fmt.Errorf("%w: `pi` is not a unit in [1, N)", shared.ErrVDFVerify)
	}

	o, err := oracle.New(unsolved.Setup, oracle.WithConfig(options.cfg))
	if err != nil {
		return err
	}
	g, err := o.GroupElement(unsolved.X)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrVDFVerify, err)
	}
	l, err := o.ChallengePrime(g, solved.Y)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrVDFVerify, err)
	}

	// r = 2^t mod l replaces the t squarings.
	r := new(big.Int).Exp(bigTwo, new(big.Int).SetUint64(unsolved.Setup.T), l)

	lhs := new(big.Int).Exp(solved.Pi, l, n)
	gr := new(big.Int).Exp(g, r, n)
	lhs.Mul(lhs, gr)
	lhs.Mod(lhs, n)

	if lhs.Cmp(solved.Y) != 0 {
		return fmt.Errorf("%w: pi^l * g^r != y (mod N)", shared.ErrVDFVerify)
	}
	return nil
}

// inGroup reports whether v is an element of (Z/NZ)*, in canonical form.
// 0 is excluded: pi = 0 would satisfy the equation for y = 0 without any squaring.
func inGroup(v, n *big.Int) bool {
	if v == nil || v.Sign() <= 0 || v.Cmp(n) >= 0 {
		return false
	}
	return new(big.Int).GCD(nil, nil, v, n).Cmp(bigOne) == 0
}
