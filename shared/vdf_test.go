package shared_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/vdf/shared"
)

func TestUnsolvedMismatch(t *testing.T) {
	setup := shared.NewSetup(100, big.NewInt(187))
	u := shared.NewUnsolved(big.NewInt(7), setup)

	require.Equal(t, "", u.Mismatch(u.Clone()))
	require.True(t, u.Equal(u.Clone()))

	require.Equal(t, "x", u.Mismatch(shared.NewUnsolved(big.NewInt(8), setup)))
	require.Equal(t, "t", u.Mismatch(shared.NewUnsolved(big.NewInt(7), shared.NewSetup(101, big.NewInt(187)))))
	require.Equal(t, "N", u.Mismatch(shared.NewUnsolved(big.NewInt(7), shared.NewSetup(100, big.NewInt(209)))))
	require.Equal(t, "x", u.Mismatch(shared.UnsolvedVDF{Setup: setup}))
}

func TestCloneDoesNotAlias(t *testing.T) {
	r := require.New(t)
	n := big.NewInt(187)
	x := big.NewInt(7)

	u := shared.NewUnsolved(x, shared.NewSetup(100, n))
	n.SetInt64(1)
	x.SetInt64(1)
	r.Zero(u.X.Cmp(big.NewInt(7)))
	r.Zero(u.Setup.N.Cmp(big.NewInt(187)))

	c := u.Clone()
	c.X.SetInt64(9)
	r.Zero(u.X.Cmp(big.NewInt(7)))

	s := shared.NewSolved(u, big.NewInt(3), big.NewInt(4))
	s2 := s.Clone()
	s2.Y.SetInt64(5)
	s2.Instance.Setup.N.SetInt64(5)
	r.Zero(s.Y.Cmp(big.NewInt(3)))
	r.Zero(s.Instance.Setup.N.Cmp(big.NewInt(187)))
}

func TestMismatchError(t *testing.T) {
	err := error(shared.MismatchError{Param: "t"})
	require.True(t, errors.Is(err, shared.ErrMismatchedVDF))
	require.False(t, errors.Is(err, shared.ErrVDFVerify))
	require.EqualError(t, err, "mismatched vdf instance: `t` differs from the expected instance")
}

func TestValidate(t *testing.T) {
	r := require.New(t)
	r.NoError(shared.NewSetup(1, big.NewInt(3)).Validate())
	r.ErrorIs(shared.NewSetup(0, big.NewInt(187)).Validate(), shared.ErrZeroDelay)
	r.ErrorIs(shared.SetupForVDF{T: 1}.Validate(), shared.ErrMalformed)
	r.ErrorIs(shared.NewSetup(1, big.NewInt(1)).Validate(), shared.ErrMalformed)
	r.ErrorIs(shared.NewSetup(1, big.NewInt(186)).Validate(), shared.ErrMalformed)
	r.ErrorIs(shared.NewSetup(1, big.NewInt(-187)).Validate(), shared.ErrMalformed)

	setup := shared.NewSetup(1, big.NewInt(187))
	r.NoError(shared.NewUnsolved(big.NewInt(0), setup).Validate())
	r.ErrorIs(shared.UnsolvedVDF{Setup: setup}.Validate(), shared.ErrMalformed)
	r.ErrorIs(shared.NewUnsolved(big.NewInt(-1), setup).Validate(), shared.ErrMalformed)
}
