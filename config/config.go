package config

import (
	"fmt"
)

const (
	MinModulusBits = 256
	MaxModulusBits = 1 << 14

	MinSeedBits = 64
	MaxSeedBits = 1 << 12

	MinChallengeBits = 64
	MaxChallengeBits = 1 << 10
)

const (
	// DefaultModulusBits is the bit length of the RSA modulus in the reference deployment.
	DefaultModulusBits = 4096

	// DefaultSeedBits is the bit length of the domain challenge seeds are sampled from.
	DefaultSeedBits = 256

	// DefaultChallengeBits is the bit length of the Fiat-Shamir challenge prime.
	DefaultChallengeBits = 256
)

// Config holds the system-wide security parameters.
// Prover and verifier must agree on every field.
type Config struct {
	ModulusBits   uint `mapstructure:"vdf-modulus-bits"`
	SeedBits      uint `mapstructure:"vdf-seed-bits"`
	ChallengeBits uint `mapstructure:"vdf-challenge-bits"`
}

func (cfg *Config) Validate() error {
	if cfg.ModulusBits < MinModulusBits {
		return fmt.Errorf("invalid `ModulusBits`; expected: >= %d, given: %d", MinModulusBits, cfg.ModulusBits)
	}

	if cfg.ModulusBits > MaxModulusBits {
		return fmt.Errorf("invalid `ModulusBits`; expected: <= %d, given: %d", MaxModulusBits, cfg.ModulusBits)
	}

	// The modulus is a product of two primes of equal length.
	if cfg.ModulusBits%2 != 0 {
		return fmt.Errorf("invalid `ModulusBits`; expected: even, given: %d", cfg.ModulusBits)
	}

	if cfg.SeedBits < MinSeedBits {
		return fmt.Errorf("invalid `SeedBits`; expected: >= %d, given: %d", MinSeedBits, cfg.SeedBits)
	}

	if cfg.SeedBits > MaxSeedBits {
		return fmt.Errorf("invalid `SeedBits`; expected: <= %d, given: %d", MaxSeedBits, cfg.SeedBits)
	}

	if cfg.ChallengeBits < MinChallengeBits {
		return fmt.Errorf("invalid `ChallengeBits`; expected: >= %d, given: %d", MinChallengeBits, cfg.ChallengeBits)
	}

	if cfg.ChallengeBits > MaxChallengeBits {
		return fmt.Errorf("invalid `ChallengeBits`; expected: <= %d, given: %d", MaxChallengeBits, cfg.ChallengeBits)
	}

	if cfg.ChallengeBits >= cfg.ModulusBits {
		return fmt.Errorf("invalid `ChallengeBits`; expected: < `ModulusBits` (%d), given: %d", cfg.ModulusBits, cfg.ChallengeBits)
	}

	return nil
}

// DefaultConfig returns the parameters of the reference deployment.
func DefaultConfig() Config {
	return Config{
		ModulusBits:   DefaultModulusBits,
		SeedBits:      DefaultSeedBits,
		ChallengeBits: DefaultChallengeBits,
	}
}

// MainnetConfig is an alias of DefaultConfig kept for symmetry with deployments
// that pin their parameters explicitly.
func MainnetConfig() Config {
	return DefaultConfig()
}
