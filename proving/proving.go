package proving

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/oracle"
	"github.com/spacemeshos/vdf/shared"
)

// Eval solves the challenge: it performs the t sequential squarings and builds the Wesolowski proof.
// For a fixed (N, t, x) the result is always the same. The only errors come from a malformed
// instance or invalid options.
func Eval(unsolved shared.UnsolvedVDF, opts ...OptionFunc) (shared.SolvedVDF, error) {
	return EvalContext(context.Background(), unsolved, opts...)
}

// EvalContext is like Eval but abandons the evaluation once ctx is done, returning ctx.Err().
// Cancellation is observed between iterations, every checkInterval iterations.
func EvalContext(ctx context.Context, unsolved shared.UnsolvedVDF, opts ...OptionFunc) (shared.SolvedVDF, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return shared.SolvedVDF{}, err
	}
	if err := unsolved.Validate(); err != nil {
		return shared.SolvedVDF{}, err
	}

	o, err := oracle.New(unsolved.Setup, oracle.WithConfig(options.cfg))
	if err != nil {
		return shared.SolvedVDF{}, err
	}

	p := &prover{
		n:       unsolved.Setup.N,
		t:       unsolved.Setup.T,
		options: options,
	}
	logger := options.logger.With(zap.Uint64("t", p.t), zap.Int("modulus_bits", p.n.BitLen()))
	logger.Info("evaluation started")
	start := time.Now()

	g, err := o.GroupElement(unsolved.X)
	if err != nil {
		return shared.SolvedVDF{}, fmt.Errorf("derive group element: %w", err)
	}

	y, err := p.square(ctx, g)
	if err != nil {
		return shared.SolvedVDF{}, err
	}
	logger.Info("squaring completed", zap.Duration("elapsed", time.Since(start)))

	l, err := o.ChallengePrime(g, y)
	if err != nil {
		return shared.SolvedVDF{}, fmt.Errorf("derive challenge prime: %w", err)
	}

	proofStart := time.Now()
	pi, err := p.prove(ctx, g, l)
	if err != nil {
		return shared.SolvedVDF{}, err
	}
	logger.Info("evaluation completed",
		zap.Duration("proof_elapsed", time.Since(proofStart)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return shared.SolvedVDF{
		Instance: unsolved.Clone(),
		Y:        y,
		Pi:       pi,
	}, nil
}

type prover struct {
	n       *big.Int
	t       uint64
	options *option
}

// square returns g^(2^t) mod N. Each iteration depends on the previous one.
func (p *prover) square(ctx context.Context, g *big.Int) (*big.Int, error) {
	y := new(big.Int).Set(g)
	tmp := new(big.Int)
	for i := uint64(0); i < p.t; i++ {
		if err := p.checkpoint(ctx, "squaring", i); err != nil {
			return nil, err
		}
		tmp.Mul(y, y)
		y.Mod(tmp, p.n)
	}
	return y, nil
}

// prove returns pi = g^floor(2^t / l) mod N without computing 2^t, by long division of 2^t
// by l one binary digit at a time: r holds the running remainder and b the next quotient digit.
func (p *prover) prove(ctx context.Context, g, l *big.Int) (*big.Int, error) {
	r := big.NewInt(1)
	pi := big.NewInt(1)
	r2 := new(big.Int)
	b := new(big.Int)
	gb := new(big.Int)
	tmp := new(big.Int)
	for i := uint64(0); i < p.t; i++ {
		if err := p.checkpoint(ctx, "proof", i); err != nil {
			return nil, err
		}
		r2.Lsh(r, 1)
		b.DivMod(r2, l, r)
		gb.Exp(g, b, p.n)

		tmp.Mul(pi, pi)
		pi.Mod(tmp, p.n)
		tmp.Mul(pi, gb)
		pi.Mod(tmp, p.n)
	}
	return pi, nil
}

func (p *prover) checkpoint(ctx context.Context, phase string, i uint64) error {
	if i%p.options.checkInterval == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if rate := p.options.logRate; rate > 0 && i > 0 && i%rate == 0 {
		p.options.logger.Debug("evaluation progress",
			zap.String("phase", phase),
			zap.Uint64("iteration", i),
			zap.Uint64("t", p.t),
		)
	}
	return nil
}
