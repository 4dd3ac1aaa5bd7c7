package initialization

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/config"
)

// GenerateModulus returns an RSA modulus N = p*q of exactly bits bits, where p and q are
// distinct random primes of bits/2 bits each.
//
// Only N leaves this function. The factors are dropped on return, so the order of the
// multiplicative group mod N is unknown to every caller.
func GenerateModulus(bits uint, opts ...OptionFunc) (*big.Int, error) {
	if bits < config.MinModulusBits || bits > config.MaxModulusBits || bits%2 != 0 {
		return nil, ModulusBitsError{Given: bits}
	}
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}
	return generateModulus(bits, options)
}

func generateModulus(bits uint, options *option) (*big.Int, error) {
	logger := options.logger
	logger.Info("generating modulus", zap.Uint("bits", bits))
	start := time.Now()

	half := int(bits / 2)
	n := new(big.Int)
	for attempt := 1; ; attempt++ {
		p, err := rand.Prime(options.reader, half)
		if err != nil {
			return nil, fmt.Errorf("%w: sample prime: %v", ErrEntropy, err)
		}
		q, err := rand.Prime(options.reader, half)
		if err != nil {
			return nil, fmt.Errorf("%w: sample prime: %v", ErrEntropy, err)
		}
		if p.Cmp(q) == 0 {
			logger.Debug("resampling modulus: equal primes", zap.Int("attempt", attempt))
			continue
		}

		n.Mul(p, q)
		if n.BitLen() != int(bits) {
			logger.Debug("resampling modulus: short product", zap.Int("attempt", attempt), zap.Int("bits", n.BitLen()))
			continue
		}

		logger.Info("modulus generated",
			zap.Uint("bits", bits),
			zap.Int("attempts", attempt),
			zap.Duration("elapsed", time.Since(start)),
		)
		return n, nil
	}
}
