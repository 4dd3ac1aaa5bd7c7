// Package vdf is a Wesolowski verifiable delay function over the RSA group (Z/NZ)*.
//
// A setup authority publishes a modulus N with unknown factorization and a delay t (PublicSetup).
// Challengers draw fresh seeds x (PickChallenge). A prover computes y = g^(2^t) mod N with
// t sequential squarings together with a short proof pi (Eval), and anyone holding the
// challenge checks the proof with two modular exponentiations (Verify).
package vdf

import (
	"context"

	"github.com/spacemeshos/vdf/config"
	"github.com/spacemeshos/vdf/initialization"
	"github.com/spacemeshos/vdf/proving"
	"github.com/spacemeshos/vdf/shared"
	"github.com/spacemeshos/vdf/verifying"
)

type (
	Config        = config.Config
	SetupForVDF   = shared.SetupForVDF
	UnsolvedVDF   = shared.UnsolvedVDF
	SolvedVDF     = shared.SolvedVDF
	MismatchError = shared.MismatchError
)

var (
	ErrMismatchedVDF = shared.ErrMismatchedVDF
	ErrVDFVerify     = shared.ErrVDFVerify
	ErrZeroDelay     = shared.ErrZeroDelay
	ErrMalformed     = shared.ErrMalformed
	ErrEntropy       = initialization.ErrEntropy
)

func DefaultConfig() Config {
	return config.DefaultConfig()
}

// PublicSetup generates a fresh modulus of cfg.ModulusBits bits and binds it to delay t.
func PublicSetup(t uint64, cfg Config) (SetupForVDF, error) {
	return initialization.PublicSetup(t, initialization.WithConfig(cfg))
}

// PickChallenge draws a fresh seed of cfg.SeedBits bits for setup.
func PickChallenge(setup SetupForVDF, cfg Config) (UnsolvedVDF, error) {
	return initialization.PickChallenge(setup, initialization.WithConfig(cfg))
}

func Eval(unsolved UnsolvedVDF, cfg Config) (SolvedVDF, error) {
	return proving.Eval(unsolved, proving.WithConfig(cfg))
}

func EvalContext(ctx context.Context, unsolved UnsolvedVDF, cfg Config) (SolvedVDF, error) {
	return proving.EvalContext(ctx, unsolved, proving.WithConfig(cfg))
}

// Verify returns nil if solved is a valid answer to unsolved, the challenge held by the verifier.
func Verify(solved SolvedVDF, unsolved UnsolvedVDF, cfg Config) error {
	return verifying.Verify(solved, unsolved, verifying.WithConfig(cfg))
}
