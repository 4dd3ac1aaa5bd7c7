package oracle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/vdf/config"
	"github.com/spacemeshos/vdf/shared"
)

// 1019 * 1031, small enough to exercise the rejection paths.
var smallN = big.NewInt(1019 * 1031)

func testModulus(tb testing.TB) *big.Int {
	// A fixed 2048-bit odd modulus.
	n, ok := new(big.Int).SetString("c7970ceedcc3b0754490201a7aa613cd73911081c790f5f1a8726f463550bb5b7ff0db8e1ea1189ec72f93d1650011bd721aeeacc2acde32a04107f0648c2813a31f5b0b7765ff8b44b4b6ffc93384b646eb09c7cf5e8592d40ea33c80039f35b4f14a04b51f7bfd781be4d1673164ba8eb991c2c4d730bbbe35f592bdef524af7e8daefd26c66fc02c479af89d64d373f442709439de66ceb955f3ea37d5159f6135809f85334b5cb1813addc80cd05609f10ac6a95ad65872c909525bdad32bc729592642920f24c61dc5b3c3b7923e56b16a4d9d373d8721f24a3fc0f1b3131f55615172866bccc30f95054c824e733a5eb6817f7bc16399d48c6361cc7e5", 16)
	require.True(tb, ok)
	return n
}

func TestGroupElementDeterministic(t *testing.T) {
	r := require.New(t)
	n := testModulus(t)
	x := big.NewInt(42)

	g1, err := GroupElement(n, x)
	r.NoError(err)
	g2, err := GroupElement(new(big.Int).Set(n), big.NewInt(42))
	r.NoError(err)
	r.Zero(g1.Cmp(g2))

	r.Equal(1, g1.Cmp(bigOne))
	r.Equal(-1, g1.Cmp(n))

	g3, err := GroupElement(n, big.NewInt(43))
	r.NoError(err)
	r.NotZero(g1.Cmp(g3))
}

func TestGroupElementInGroup(t *testing.T) {
	r := require.New(t)
	gcd := new(big.Int)
	for i := int64(0); i < 500; i++ {
		g, err := GroupElement(smallN, big.NewInt(i))
		r.NoError(err)
		r.Equal(1, g.Cmp(bigOne))
		r.Equal(-1, g.Cmp(smallN))
		r.Zero(gcd.GCD(nil, nil, g, smallN).Cmp(bigOne))
	}
}

func TestGroupElementInvalidInput(t *testing.T) {
	_, err := GroupElement(nil, big.NewInt(1))
	require.ErrorIs(t, err, shared.ErrMalformed)
	_, err = GroupElement(big.NewInt(1), big.NewInt(1))
	require.ErrorIs(t, err, shared.ErrMalformed)
	_, err = GroupElement(smallN, big.NewInt(-1))
	require.ErrorIs(t, err, shared.ErrMalformed)
}

func TestChallengePrime(t *testing.T) {
	r := require.New(t)
	setup := shared.NewSetup(1000, testModulus(t))
	g, err := GroupElement(setup.N, big.NewInt(7))
	r.NoError(err)
	y := new(big.Int).Exp(g, big.NewInt(1<<20), setup.N)

	l, err := ChallengePrime(setup, g, y, 256)
	r.NoError(err)
	r.True(l.ProbablyPrime(20))
	r.Equal(256, l.BitLen())

	again, err := ChallengePrime(setup.Clone(), new(big.Int).Set(g), new(big.Int).Set(y), 256)
	r.NoError(err)
	r.Zero(l.Cmp(again))

	otherY, err := ChallengePrime(setup, g, new(big.Int).Add(y, bigOne), 256)
	r.NoError(err)
	r.NotZero(l.Cmp(otherY), "challenge must depend on y")

	otherT, err := ChallengePrime(shared.NewSetup(1001, setup.N), g, y, 256)
	r.NoError(err)
	r.NotZero(l.Cmp(otherT), "challenge must depend on t")

	short, err := ChallengePrime(setup, g, y, 64)
	r.NoError(err)
	r.True(short.ProbablyPrime(20))
	r.Equal(64, short.BitLen())
}

func TestChallengePrimeInvalidInput(t *testing.T) {
	setup := shared.NewSetup(10, smallN)
	_, err := ChallengePrime(setup, big.NewInt(2), big.NewInt(4), 1)
	require.Error(t, err)
	_, err = ChallengePrime(setup, nil, big.NewInt(4), 64)
	require.ErrorIs(t, err, shared.ErrMalformed)
}

func TestExpandLength(t *testing.T) {
	for _, bits := range []uint{1, 7, 8, 9, 255, 256, 257, 4224} {
		x := expand([]byte("seed"), bits)
		require.LessOrEqual(t, x.BitLen(), int(bits))
	}
	require.Zero(t, expand([]byte("a"), 300).Cmp(expand([]byte("a"), 300)))
	require.NotZero(t, expand([]byte("a"), 300).Cmp(expand([]byte("b"), 300)))
}

func TestNew(t *testing.T) {
	r := require.New(t)
	setup := shared.NewSetup(10, testModulus(t))

	o, err := New(setup)
	r.NoError(err)
	r.EqualValues(config.DefaultChallengeBits, o.options.challengeBits)

	cfg := config.DefaultConfig()
	cfg.ChallengeBits = 128
	o, err = New(setup, WithConfig(cfg))
	r.NoError(err)

	g, err := o.GroupElement(big.NewInt(5))
	r.NoError(err)
	l, err := o.ChallengePrime(g, g)
	r.NoError(err)
	r.Equal(128, l.BitLen())

	_, err = New(setup, WithChallengeBits(8))
	r.Error(err)

	_, err = New(shared.NewSetup(0, setup.N))
	r.ErrorIs(err, shared.ErrZeroDelay)
}
