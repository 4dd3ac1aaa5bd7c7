package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/vdf/config"
)

const defaultConfigFileName = "config.toml"

var (
	Version = "0.0.0"
	Commit  = ""

	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".vdf")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)
)

// cli holds the state shared by all subcommands, resolved before each run.
type cli struct {
	cfg    config.Config
	logger *zap.Logger

	configFile string
	logLevel   string
}

var state = &cli{cfg: config.DefaultConfig()}

var rootCmd = &cobra.Command{
	Use:   "vdfcli",
	Short: "Wesolowski verifiable delay function",
	Long: `vdfcli runs the Wesolowski VDF over an RSA group.

A typical session:
  vdfcli setup --delay 100000 --out setup.json
  vdfcli challenge --setup setup.json --out challenge.json
  vdfcli eval --challenge challenge.json --out solution.json
  vdfcli verify --challenge challenge.json --solution solution.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(state.logLevel)
		if err != nil {
			return err
		}
		state.cfg = cfg
		state.logger = logger
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if state.logger != nil {
			_ = state.logger.Sync()
		}
	},
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	setFlags(rootCmd.PersistentFlags(), state)
}

func setFlags(flags *pflag.FlagSet, c *cli) {
	flags.StringVar(&c.configFile, "config", defaultConfigFile, "Path to configuration file")
	flags.StringVar(&c.logLevel, "log-level", zapcore.InfoLevel.String(),
		"log level (debug, info, warn, error, dpanic, panic, fatal)")

	flags.Uint("vdf-modulus-bits", c.cfg.ModulusBits, "bit length of the RSA modulus")
	flags.Uint("vdf-seed-bits", c.cfg.SeedBits, "bit length of the challenge seed domain")
	flags.Uint("vdf-challenge-bits", c.cfg.ChallengeBits, "bit length of the Fiat-Shamir challenge prime")
}

// loadConfig resolves the security parameters from, in increasing priority: defaults,
// the config file, VDF_* environment variables and command line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	vip := viper.New()
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := loadConfigFile(smutil.GetCanonicalPath(state.configFile), vip); err != nil {
		return config.Config{}, err
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadConfigFile reads fileLocation into vip. Only the default location may be absent.
func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFile
	}

	_, err := os.Stat(fileLocation)
	switch {
	case errors.Is(err, fs.ErrNotExist) && fileLocation == defaultConfigFile:
		return nil
	case err != nil:
		return fmt.Errorf("failed to read config file: %w", err)
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	return logger, nil
}
