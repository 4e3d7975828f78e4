// Package trinitypow implements Trinity's multi-algorithm proof-of-work
// rules: the compact target codec, per-algorithm difficulty retargeting,
// proof validation and the chain-work metric. Every entry point is a pure
// function over an explicit chain view; there is no hidden chain state.
package trinitypow

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/Action-Committee/Trinity/common"
	"github.com/Action-Committee/Trinity/consensus"
	"github.com/Action-Committee/Trinity/core/types"
	"github.com/Action-Committee/Trinity/params"
)

var (
	// ErrNegativeTarget is returned when the sign bit of the compact
	// encoding is set.
	ErrNegativeTarget = errors.New("negative difficulty target")

	// ErrOverflowTarget is returned when the decoded target exceeds 256
	// bits.
	ErrOverflowTarget = errors.New("difficulty target overflows 256 bits")

	// ErrTargetAboveLimit is returned when the decoded target is easier
	// than the algorithm's proof-of-work limit, or zero and therefore
	// unmeetable.
	ErrTargetAboveLimit = errors.New("difficulty target outside allowed range")

	// ErrInsufficientWork is returned when the block hash exceeds its
	// claimed target.
	ErrInsufficientWork = errors.New("hash does not satisfy claimed target")

	// ErrWrongBits is returned when a header carries different bits than
	// the retarget rules require.
	ErrWrongBits = errors.New("incorrect difficulty bits")
)

// Mode defines how much verification the engine performs.
type Mode uint

const (
	// ModeNormal fully verifies proof-of-work hashes.
	ModeNormal Mode = iota

	// ModeFake accepts any hash while still enforcing the difficulty
	// bits. Test harnesses use it to build chains without mining.
	ModeFake
)

// Config are the configuration parameters of the engine.
type Config struct {
	PowMode Mode
}

// TrinityPow is the proof-of-work engine for Trinity's three algorithms.
// It is stateless; the zero cost of sharing one instance across verifier
// goroutines falls on the caller holding a consistent chain snapshot.
type TrinityPow struct {
	config Config
}

// New creates an engine with the given configuration.
func New(config Config) *TrinityPow {
	return &TrinityPow{config: config}
}

// NewFaker returns an engine that skips hash verification but still
// enforces retarget rules, for tests.
func NewFaker() *TrinityPow {
	return &TrinityPow{config: Config{PowMode: ModeFake}}
}

// HashToTarget reinterprets a block hash as a 256-bit integer so it can be
// compared against a target.
func HashToTarget(hash common.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes(hash.Bytes())
}

// CheckProofOfWork checks that a target decoded from bits is within range
// for the algorithm and that the hash satisfies it. A nil error means the
// proof is valid. The check is skipped entirely on networks configured
// with SkipPowCheck.
func CheckProofOfWork(config *params.ChainConfig, hash common.Hash, bits uint32, algo params.Algo) error {
	if config.SkipPowCheck {
		return nil
	}
	target, negative, overflow := CompactToTarget(bits)
	if negative {
		powFailCounter.Inc()
		return fmt.Errorf("%w: bits %s", ErrNegativeTarget, formatBits(bits))
	}
	if overflow {
		powFailCounter.Inc()
		return fmt.Errorf("%w: bits %s", ErrOverflowTarget, formatBits(bits))
	}
	// A zero target can never be met; it is treated as out of range, the
	// same as one above the limit.
	if target.IsZero() || target.Cmp(config.PowLimit(algo)) > 0 {
		powFailCounter.Inc()
		return fmt.Errorf("%w: bits %s, algo %s", ErrTargetAboveLimit, formatBits(bits), algo)
	}
	if HashToTarget(hash).Cmp(target) > 0 {
		powFailCounter.Inc()
		return fmt.Errorf("%w: hash %s, bits %s", ErrInsufficientWork, hash, formatBits(bits))
	}
	return nil
}

// NextWorkRequired implements consensus.Engine.
func (tp *TrinityPow) NextWorkRequired(chain consensus.ChainReader, parent *types.BlockNode, header *types.Header) uint32 {
	return NextWorkRequired(chain, parent, header)
}

// VerifyHeader checks that a header carries the bits the retarget rules
// require for its position and algorithm, and that its proof-of-work hash
// satisfies those bits.
func (tp *TrinityPow) VerifyHeader(chain consensus.ChainReader, parent *types.BlockNode, header *types.Header) error {
	if expected := NextWorkRequired(chain, parent, header); header.Bits != expected {
		return fmt.Errorf("%w: have %s, want %s", ErrWrongBits, formatBits(header.Bits), formatBits(expected))
	}
	if tp.config.PowMode == ModeFake {
		return nil
	}
	return CheckProofOfWork(chain.Config(), header.PowHash(), header.Bits, header.Algo())
}

func formatBits(bits uint32) string {
	return fmt.Sprintf("%08x", bits)
}
