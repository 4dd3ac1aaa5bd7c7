package cmd

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/vdf/persistence"
	"github.com/spacemeshos/vdf/shared"
)

var testFlags = []string{
	"--log-level", "error",
	"--vdf-modulus-bits", "512",
	"--vdf-challenge-bits", "128",
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(args, testFlags...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSession(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	setupFile := filepath.Join(dir, "setup.json")
	challengeFile := filepath.Join(dir, "challenge.json")
	solutionFile := filepath.Join(dir, "solution.json")

	_, err := run(t, "setup", "--delay", "50", "--out", setupFile)
	r.NoError(err)
	setup, err := persistence.LoadSetup(setupFile)
	r.NoError(err)
	r.Equal(uint64(50), setup.T)
	r.Equal(512, setup.N.BitLen())

	_, err = run(t, "challenge", "--setup", setupFile, "--out", challengeFile)
	r.NoError(err)

	_, err = run(t, "eval", "--challenge", challengeFile, "--out", solutionFile)
	r.NoError(err)

	out, err := run(t, "verify", "--challenge", challengeFile, "--solution", solutionFile)
	r.NoError(err)
	r.Contains(out, "OK")

	out, err = run(t, "inspect", solutionFile)
	r.NoError(err)
	r.Contains(out, "solution")
	r.Contains(out, "512 bits")

	out, err = run(t, "config")
	r.NoError(err)
	r.Contains(out, "ModulusBits: (uint) 512")
}

func TestVerifyRejects(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	setupFile := filepath.Join(dir, "setup.json")
	challengeFile := filepath.Join(dir, "challenge.json")
	otherChallengeFile := filepath.Join(dir, "other.json")
	solutionFile := filepath.Join(dir, "solution.json")

	_, err := run(t, "setup", "--delay", "20", "--out", setupFile)
	r.NoError(err)
	_, err = run(t, "challenge", "--setup", setupFile, "--out", challengeFile)
	r.NoError(err)
	_, err = run(t, "challenge", "--setup", setupFile, "--out", otherChallengeFile)
	r.NoError(err)
	_, err = run(t, "eval", "--challenge", challengeFile, "--out", solutionFile)
	r.NoError(err)

	_, err = run(t, "verify", "--challenge", otherChallengeFile, "--solution", solutionFile)
	r.ErrorIs(err, shared.ErrMismatchedVDF)

	solved, err := persistence.LoadSolution(solutionFile)
	r.NoError(err)
	solved.Pi.Add(solved.Pi, big.NewInt(1))
	solved.Pi.Mod(solved.Pi, solved.Instance.Setup.N)
	r.NoError(persistence.SaveSolution(solutionFile, solved))

	_, err = run(t, "verify", "--challenge", challengeFile, "--solution", solutionFile)
	r.ErrorIs(err, shared.ErrVDFVerify)
}

// resetFlag restores a persistent flag to value and marks it as not set on the command line.
func resetFlag(t *testing.T, name, value string) {
	t.Helper()
	flag := rootCmd.PersistentFlags().Lookup(name)
	require.NotNil(t, flag)
	require.NoError(t, flag.Value.Set(value))
	flag.Changed = false
}

func TestConfigPrecedence(t *testing.T) {
	r := require.New(t)
	resetFlag(t, "vdf-seed-bits", "256")
	t.Cleanup(func() {
		resetFlag(t, "vdf-seed-bits", "256")
		resetFlag(t, "config", defaultConfigFile)
	})

	configFile := filepath.Join(t.TempDir(), "config.toml")
	r.NoError(os.WriteFile(configFile, []byte("vdf-seed-bits = 80\n"), 0o600))

	out, err := run(t, "config", "--config", configFile)
	r.NoError(err)
	r.Contains(out, "SeedBits: (uint) 80")

	t.Setenv("VDF_SEED_BITS", "100")
	out, err = run(t, "config", "--config", configFile)
	r.NoError(err)
	r.Contains(out, "SeedBits: (uint) 100")

	out, err = run(t, "config", "--config", configFile, "--vdf-seed-bits", "120")
	r.NoError(err)
	r.Contains(out, "SeedBits: (uint) 120")
}

func TestMissingConfigFile(t *testing.T) {
	t.Cleanup(func() {
		resetFlag(t, "config", defaultConfigFile)
	})

	_, err := run(t, "config", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "failed to read config file")
}

func TestInvalidConfig(t *testing.T) {
	t.Cleanup(func() {
		resetFlag(t, "vdf-seed-bits", "256")
	})

	_, err := run(t, "config", "--vdf-seed-bits", "8")
	require.ErrorContains(t, err, "invalid `SeedBits`")
}
