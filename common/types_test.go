package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToHash(t *testing.T) {
	h := HexToHash("0x00000c7a4ceed31ac0a8bd8e2b0e287f4f51e0431ca76ec20fa8e1c39d255a42")
	require.Equal(t, "0x00000c7a4ceed31ac0a8bd8e2b0e287f4f51e0431ca76ec20fa8e1c39d255a42", h.Hex())

	// Short input is left-padded.
	require.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000102",
		HexToHash("0x0102").Hex())
}

func TestSetBytesCropsLeft(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	var h Hash
	h.SetBytes(long)
	require.Equal(t, byte(8), h[0])
	require.Equal(t, byte(39), h[31])
}

func TestReverseBytes(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	require.Equal(t, []byte{4, 3, 2, 1}, ReverseBytes(in))
	// Input untouched.
	require.Equal(t, []byte{1, 2, 3, 4}, in)
}

func TestIsZero(t *testing.T) {
	var h Hash
	require.True(t, h.IsZero())
	h[31] = 1
	require.False(t, h.IsZero())
}

func TestFromHexInvalid(t *testing.T) {
	require.Nil(t, FromHex("0xzz"))
	require.Equal(t, []byte{0x01}, FromHex("1"))
}
