package trinitypow

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/Action-Committee/Trinity/params"
)

func TestCalcBlockWorkKnownValue(t *testing.T) {
	// The classic minimum-difficulty target: 2^256 / (0xffff*2^208 + 1).
	work := CalcBlockWork(0x1d00ffff)
	require.Equal(t, uint256.NewInt(0x100010001), work)
}

func TestCalcBlockWorkInvalidBits(t *testing.T) {
	require.True(t, CalcBlockWork(0x00000000).IsZero()) // zero target
	require.True(t, CalcBlockWork(0x01003456).IsZero()) // rounds to zero
	require.True(t, CalcBlockWork(0x04923456).IsZero()) // negative
	require.True(t, CalcBlockWork(0xff123456).IsZero()) // overflow
}

func TestCalcBlockWorkMaxTarget(t *testing.T) {
	// At the easiest encodable target the expected work is a single hash.
	work := CalcBlockWork(0x2100ffff)
	require.True(t, work.CmpUint64(1) <= 0)
	require.False(t, work.IsZero())
}

func TestCalcBlockWorkMonotonic(t *testing.T) {
	// Halving the target doubles the work, give or take truncation; at
	// minimum it must strictly grow.
	target, _, _ := CompactToTarget(0x1c0ffff0)
	double := new(uint256.Int).Lsh(target, 1)

	workSmall := CalcBlockWork(TargetToCompact(target))
	workLarge := CalcBlockWork(TargetToCompact(double))
	require.True(t, workSmall.Cmp(workLarge) > 0)
}

func TestCalcBlockProof(t *testing.T) {
	config := params.MainnetChainConfig
	bits := uint32(0x1d00ffff)
	work := CalcBlockWork(bits)

	for a := params.Algo(0); int(a) < params.AlgoCount; a++ {
		proof := CalcBlockProof(config, bits, a)
		want := new(uint256.Int).Mul(work, uint256.NewInt(config.AlgoWorkFactor(a)))
		require.Equal(t, want, proof, "algo %s", a)
	}

	// Scrypt blocks weigh more than sha256d blocks at equal bits.
	sha := CalcBlockProof(config, bits, params.AlgoSHA256D)
	scrypt := CalcBlockProof(config, bits, params.AlgoScrypt)
	require.True(t, scrypt.Cmp(sha) > 0)
}

func TestCalcBlockProofInvalidBits(t *testing.T) {
	config := params.MainnetChainConfig
	require.True(t, CalcBlockProof(config, 0x04923456, params.AlgoScrypt).IsZero())
}
