package oracle

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spacemeshos/vdf/config"
	"github.com/spacemeshos/vdf/shared"
)

const (
	// groupElementMargin is the number of bits hashed beyond the modulus length,
	// keeping the bias of the reduction mod N below 2^-128.
	groupElementMargin = 128

	// primalityRounds is the number of Miller-Rabin rounds, on top of the Baillie-PSW test
	// performed by big.Int.ProbablyPrime.
	primalityRounds = 20
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// GroupElement deterministically maps the modulus n and the seed x to an element g
// of the multiplicative group mod n, with 1 < g < n and gcd(g, n) = 1.
// Candidates that fall outside the group are rejected and the next attempt counter is hashed.
func GroupElement(n, x *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 || n.Bit(0) == 0 || n.BitLen() < 2 {
		return nil, fmt.Errorf("%w: invalid modulus", shared.ErrMalformed)
	}
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid seed", shared.ErrMalformed)
	}

	bits := uint(n.BitLen()) + groupElementMargin
	gcd := new(big.Int)
	for attempt := uint32(0); ; attempt++ {
		g := expand(transcriptHash(groupElementDomain, attempt, n, x), bits)
		g.Mod(g, n)
		if g.Cmp(bigOne) <= 0 {
			continue
		}
		if gcd.GCD(nil, nil, g, n).Cmp(bigOne) != 0 {
			continue
		}
		return g, nil
	}
}

// ChallengePrime derives the Fiat-Shamir challenge prime l from the setup (N, t), the
// group element g and the claimed output y.
//
// The transcript is hashed into a bits-bit candidate with its top and bottom bits set.
// The candidate is then increased by 2 until it passes the primality test. The search
// is deterministic, so prover and verifier always arrive at the same prime.
func ChallengePrime(setup shared.SetupForVDF, g, y *big.Int, bits uint) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("invalid challenge bit length; expected: >= 2, given: %d", bits)
	}
	if setup.N == nil || g == nil || y == nil {
		return nil, fmt.Errorf("%w: missing challenge input", shared.ErrMalformed)
	}

	t := new(big.Int).SetUint64(setup.T)
	l := expand(transcriptHash(challengePrimeDomain, 0, setup.N, t, g, y), bits)
	l.SetBit(l, int(bits-1), 1)
	l.SetBit(l, 0, 1)
	for !l.ProbablyPrime(primalityRounds) {
		l.Add(l, bigTwo)
	}
	return l, nil
}

type option struct {
	challengeBits uint
}

func (o *option) validate() error {
	if o.challengeBits == 0 {
		return errors.New("`challengeBits` is required")
	}
	return nil
}

// OptionFunc is a function that sets an option for an Oracle instance.
type OptionFunc func(*option) error

// WithConfig sets the challenge prime length from cfg.
func WithConfig(cfg config.Config) OptionFunc {
	return func(opts *option) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts.challengeBits = cfg.ChallengeBits
		return nil
	}
}

// WithChallengeBits sets the bit length of the challenge prime.
func WithChallengeBits(bits uint) OptionFunc {
	return func(opts *option) error {
		if bits < config.MinChallengeBits || bits > config.MaxChallengeBits {
			return fmt.Errorf("invalid `challengeBits`; expected: %d-%d, given: %d",
				config.MinChallengeBits, config.MaxChallengeBits, bits)
		}
		opts.challengeBits = bits
		return nil
	}
}

// Oracle binds both derivations to one setup, so prover and verifier can share the same code path.
type Oracle struct {
	setup   shared.SetupForVDF
	options *option
}

// New returns an Oracle for setup. If not specified, the challenge prime length of the default config is used.
func New(setup shared.SetupForVDF, opts ...OptionFunc) (*Oracle, error) {
	options := &option{
		challengeBits: config.DefaultChallengeBits,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	return &Oracle{
		setup:   setup.Clone(),
		options: options,
	}, nil
}

// GroupElement returns H_G(N, x) for the oracle's modulus.
func (o *Oracle) GroupElement(x *big.Int) (*big.Int, error) {
	return GroupElement(o.setup.N, x)
}

// ChallengePrime returns the challenge prime for g and y under the oracle's setup.
func (o *Oracle) ChallengePrime(g, y *big.Int) (*big.Int, error) {
	return ChallengePrime(o.setup, g, y, o.options.challengeBits)
}
