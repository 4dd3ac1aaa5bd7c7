package initialization

import (
	"crypto/rand"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/config"
)

type option struct {
	cfg    config.Config
	reader io.Reader
	logger *zap.Logger
}

func (o *option) validate() error {
	if o.reader == nil {
		return errors.New("`reader` is required")
	}
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	return o.cfg.Validate()
}

func applyOpts(opts ...OptionFunc) (*option, error) {
	options := &option{
		cfg:    config.DefaultConfig(),
		reader: rand.Reader,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// OptionFunc is a function that sets an option for the setup phase.
type OptionFunc func(*option) error

// WithConfig sets the security parameters. Defaults to config.DefaultConfig().
func WithConfig(cfg config.Config) OptionFunc {
	return func(o *option) error {
		o.cfg = cfg
		return nil
	}
}

// WithRandReader sets the entropy source. Defaults to crypto/rand.Reader.
// It must be cryptographically secure outside of tests.
func WithRandReader(reader io.Reader) OptionFunc {
	return func(o *option) error {
		if reader == nil {
			return errors.New("`reader` must not be nil")
		}
		o.reader = reader
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}
