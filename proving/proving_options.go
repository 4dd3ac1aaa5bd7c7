package proving

import (
	"errors"

	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/config"
)

const (
	// DefaultLogRate is the number of iterations between progress log entries.
	DefaultLogRate = 1 << 20

	// DefaultCheckInterval is the number of iterations between context cancellation checks.
	DefaultCheckInterval = 1 << 10
)

type option struct {
	cfg    config.Config
	logger *zap.Logger
	// 0 disables progress logging.
	logRate       uint64
	checkInterval uint64
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	if o.checkInterval == 0 {
		return errors.New("`checkInterval` must be greater than 0")
	}
	return o.cfg.Validate()
}

func applyOpts(opts ...OptionFunc) (*option, error) {
	options := &option{
		cfg:           config.DefaultConfig(),
		logger:        zap.NewNop(),
		logRate:       DefaultLogRate,
		checkInterval: DefaultCheckInterval,
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

type OptionFunc func(*option) error

// WithConfig sets the security parameters. The verifier must use the same ChallengeBits.
func WithConfig(cfg config.Config) OptionFunc {
	return func(o *option) error {
		o.cfg = cfg
		return nil
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithLogRate sets how many iterations pass between progress log entries. 0 disables them.
func WithLogRate(rate uint64) OptionFunc {
	return func(o *option) error {
		o.logRate = rate
		return nil
	}
}

// WithCheckInterval sets how many iterations pass between checks of the context passed to EvalContext.
func WithCheckInterval(interval uint64) OptionFunc {
	return func(o *option) error {
		if interval == 0 {
			return errors.New("`checkInterval` must be greater than 0")
		}
		o.checkInterval = interval
		return nil
	}
}
