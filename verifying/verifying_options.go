package verifying

import (
	"github.com/spacemeshos/vdf/config"
)

type option struct {
	// security parameters, ChallengeBits must match the prover's
	cfg config.Config
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		cfg: config.DefaultConfig(),
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

func WithConfig(cfg config.Config) OptionFunc {
	return func(o *option) {
		o.cfg = cfg
	}
}
