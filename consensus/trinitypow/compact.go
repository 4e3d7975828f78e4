package trinitypow

import (
	"github.com/holiman/uint256"
)

// The compact format is a floating-point style packing of a 256-bit target
// into 32 bits: the top byte is a base-256 exponent, the low 23 bits hold
// the most significant bytes of the mantissa and bit 23 carries the sign.
// The encoding is lossy; only the top three bytes of a target survive a
// round trip, and consensus depends on exactly that loss.

// CompactToTarget expands compact bits into a full 256-bit target. The
// negative and overflow conditions are reported as flags rather than
// errors because malformed bits are ordinary input from the network; the
// returned target is not meaningful when either flag is set.
func CompactToTarget(bits uint32) (target *uint256.Int, negative, overflow bool) {
	size := bits >> 24
	word := bits & 0x007fffff
	target = new(uint256.Int)
	if size <= 3 {
		target.SetUint64(uint64(word >> (8 * (3 - size))))
	} else {
		target.SetUint64(uint64(word))
		target.Lsh(target, uint(8*(size-3)))
	}
	negative = word != 0 && bits&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return target, negative, overflow
}

// TargetToCompact packs a target into compact form, truncating the
// mantissa to its three most significant bytes. If the top mantissa bit
// would land on the sign bit, the mantissa is shifted down a byte and the
// exponent bumped, so encoded targets always read back non-negative.
func TargetToCompact(target *uint256.Int) uint32 {
	size := uint32(target.ByteLen())
	var compact uint32
	if size <= 3 {
		compact = uint32(target.Uint64() << (8 * (3 - size)))
	} else {
		shifted := new(uint256.Int).Rsh(target, uint(8*(size-3)))
		compact = uint32(shifted.Uint64())
	}
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}
	return compact | size<<24
}

// Difficulty expresses compact bits as the conventional floating-point
// multiple of the minimum sha256d difficulty. Display only; never used in
// consensus decisions.
func Difficulty(bits uint32) float64 {
	shift := int(bits>>24) & 0xff
	diff := float64(0x0000ffff) / float64(bits&0x00ffffff)
	for shift < 29 {
		diff *= 256.0
		shift++
	}
	for shift > 29 {
		diff /= 256.0
		shift--
	}
	return diff
}
