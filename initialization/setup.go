package initialization

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/shared"
)

// PublicSetup generates a fresh modulus of the configured length and pairs it with the
// delay parameter t. The returned setup is public and reused for every challenge of an epoch.
func PublicSetup(t uint64, opts ...OptionFunc) (shared.SetupForVDF, error) {
	if t == 0 {
		return shared.SetupForVDF{}, shared.ErrZeroDelay
	}
	options, err := applyOpts(opts...)
	if err != nil {
		return shared.SetupForVDF{}, err
	}

	n, err := generateModulus(options.cfg.ModulusBits, options)
	if err != nil {
		return shared.SetupForVDF{}, fmt.Errorf("public setup: %w", err)
	}
	return shared.SetupForVDF{T: t, N: n}, nil
}

// PickChallenge samples a fresh seed x uniformly from [0, 2^SeedBits) and binds it to setup.
// Seeds must never be reused with the same setup.
func PickChallenge(setup shared.SetupForVDF, opts ...OptionFunc) (shared.UnsolvedVDF, error) {
	if err := setup.Validate(); err != nil {
		return shared.UnsolvedVDF{}, err
	}
	options, err := applyOpts(opts...)
	if err != nil {
		return shared.UnsolvedVDF{}, err
	}

	limit := new(big.Int).Lsh(big.NewInt(1), options.cfg.SeedBits)
	x, err := rand.Int(options.reader, limit)
	if err != nil {
		return shared.UnsolvedVDF{}, fmt.Errorf("%w: sample seed: %v", ErrEntropy, err)
	}

	options.logger.Debug("picked challenge",
		zap.Uint64("t", setup.T),
		zap.Int("modulus_bits", setup.N.BitLen()),
		zap.Int("seed_bits", x.BitLen()),
	)
	return shared.UnsolvedVDF{X: x, Setup: setup.Clone()}, nil
}
