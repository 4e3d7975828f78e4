package trinitypow

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) *uint256.Int {
	t.Helper()
	x, err := uint256.FromHex(s)
	require.NoError(t, err)
	return x
}

func TestCompactToTarget(t *testing.T) {
	tests := []struct {
		bits     uint32
		target   *uint256.Int
		negative bool
		overflow bool
	}{
		{0x00000000, uint256.NewInt(0), false, false},
		{0x00123456, uint256.NewInt(0), false, false},
		{0x01003456, uint256.NewInt(0), false, false},
		{0x01123456, uint256.NewInt(0x12), false, false},
		{0x02123456, uint256.NewInt(0x1234), false, false},
		{0x03123456, uint256.NewInt(0x123456), false, false},
		{0x04123456, uint256.NewInt(0x12345600), false, false},
		{0x05009234, uint256.NewInt(0x92340000), false, false},
		// Sign bit set with a non-zero mantissa.
		{0x04923456, uint256.NewInt(0x12345600), true, false},
		// Sign bit set but mantissa zero: not negative.
		{0x01800000, uint256.NewInt(0), false, false},
		// Large but representable exponents.
		{0x20123456, new(uint256.Int).Lsh(uint256.NewInt(0x123456), 8*29), false, false},
		{0x21000100, new(uint256.Int).Lsh(uint256.NewInt(0x100), 8*30), false, false},
		{0x22000001, new(uint256.Int).Lsh(uint256.NewInt(1), 8*31), false, false},
	}
	for _, tt := range tests {
		target, negative, overflow := CompactToTarget(tt.bits)
		require.Equal(t, tt.negative, negative, "bits %08x", tt.bits)
		require.Equal(t, tt.overflow, overflow, "bits %08x", tt.bits)
		require.Zero(t, tt.target.Cmp(target), "bits %08x: got %s", tt.bits, target.Hex())
	}
}

func TestCompactToTargetOverflow(t *testing.T) {
	for _, bits := range []uint32{
		0xff123456, // exponent far past 256 bits
		0x23000001, // exponent 35, any mantissa
		0x22000100, // exponent 34, two-byte mantissa
		0x21010000, // exponent 33, three-byte mantissa
	} {
		_, _, overflow := CompactToTarget(bits)
		require.True(t, overflow, "bits %08x", bits)
	}

	// Zero mantissa never overflows regardless of exponent.
	_, _, overflow := CompactToTarget(0xff000000)
	require.False(t, overflow)
}

func TestTargetToCompact(t *testing.T) {
	require.Equal(t, uint32(0), TargetToCompact(uint256.NewInt(0)))
	require.Equal(t, uint32(0x01120000), TargetToCompact(uint256.NewInt(0x12)))
	require.Equal(t, uint32(0x02123400), TargetToCompact(uint256.NewInt(0x1234)))
	require.Equal(t, uint32(0x03123456), TargetToCompact(uint256.NewInt(0x123456)))
	require.Equal(t, uint32(0x04123456), TargetToCompact(uint256.NewInt(0x12345600)))

	// A high top bit would collide with the sign flag; the encoder shifts
	// the mantissa down a byte to keep the result non-negative.
	require.Equal(t, uint32(0x02008000), TargetToCompact(uint256.NewInt(0x80)))
	require.Equal(t, uint32(0x05009234), TargetToCompact(uint256.NewInt(0x92340000)))
}

func TestCompactRoundTrip(t *testing.T) {
	// Values already expressible in three mantissa bytes survive exactly.
	for _, bits := range []uint32{
		0x1d00ffff, // classic limit encoding
		0x1b0404cb,
		0x1c05a3f4,
		0x207fffff,
		0x03123456,
		0x181bc330,
	} {
		target, negative, overflow := CompactToTarget(bits)
		require.False(t, negative)
		require.False(t, overflow)
		require.Equal(t, bits, TargetToCompact(target), "bits %08x", bits)
	}
}

func TestCompactRoundTripLoss(t *testing.T) {
	// A full-precision target loses everything below its top three bytes,
	// and nothing above them.
	target := fromHex(t, "0x12345678000000000000000000000000000000000000000000000000000001ff")
	bits := TargetToCompact(target)
	rounded, negative, overflow := CompactToTarget(bits)
	require.False(t, negative)
	require.False(t, overflow)

	require.Equal(t,
		fromHex(t, "0x1234560000000000000000000000000000000000000000000000000000000000"),
		rounded)
	require.True(t, rounded.Cmp(target) <= 0)
}

func TestCompactMaxTarget(t *testing.T) {
	max := new(uint256.Int).Not(new(uint256.Int))
	bits := TargetToCompact(max)
	require.Equal(t, uint32(0x2100ffff), bits)

	_, negative, overflow := CompactToTarget(bits)
	require.False(t, negative)
	require.False(t, overflow)
}

func TestDifficulty(t *testing.T) {
	require.InDelta(t, 1.0, Difficulty(0x1d00ffff), 1e-9)
	require.InDelta(t, 16307.42094, Difficulty(0x1b0404cb), 1e-4)
	require.Greater(t, Difficulty(0x1b0404cb), Difficulty(0x1c0404cb))
}
