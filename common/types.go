package common

import (
	"encoding/hex"
	"fmt"
)

// HashLength is the expected length of a block or transaction hash.
const HashLength = 32

// Hash represents the 32 byte hash of a block header. Bytes are stored
// big-endian, so byte-wise comparison matches numeric comparison.
type Hash [HashLength]byte

// BytesToHash sets b to hash. If b is larger than 32 bytes, b will be
// cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash sets byte representation of s to hash. If s is larger than 32
// bytes, s will be cropped from the left.
func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

// Bytes gets the byte representation of the underlying hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface.
func (h Hash) String() string { return h.Hex() }

// Format implements fmt.Formatter, forcing the byte slice to be formatted
// as is, without going through the stringer interface.
func (h Hash) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

// SetBytes sets the hash to the value of b. If b is larger than 32 bytes,
// b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// IsZero reports whether the hash is the all-zero value.
func (h Hash) IsZero() bool { return h == Hash{} }

// FromHex returns the bytes represented by the hexadecimal string s. s may
// be prefixed with "0x". Invalid characters yield an empty slice.
func FromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// ReverseBytes returns a copy of b with the byte order flipped. Bitcoin
// style headers serialize hashes little-endian while targets compare them
// big-endian.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
