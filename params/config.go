package params

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/Action-Committee/Trinity/common"
)

var (
	MainnetGenesisHash = common.HexToHash("0x00000c7a4ceed31ac0a8bd8e2b0e287f4f51e0431ca76ec20fa8e1c39d255a42")
	TestnetGenesisHash = common.HexToHash("0x0000086fc6d9e2f17cc8d5ad5d2d7a072fc06be521a25e9b807c9906f1a0f2b7")
	RegtestGenesisHash = common.HexToHash("0x530827f38f93b43ed12af0b3ad25a288dc02ed74d6d7857862df51fc56c416f9")
)

// Algo identifies the proof-of-work hash function used by a block. Trinity
// runs three algorithms side by side; each retargets its difficulty
// independently of the others.
type Algo int

const (
	AlgoSHA256D Algo = iota
	AlgoScrypt
	AlgoKeccak

	algoCount
)

// AlgoCount is the number of supported proof-of-work algorithms.
const AlgoCount = int(algoCount)

func (a Algo) String() string {
	switch a {
	case AlgoSHA256D:
		return "sha256d"
	case AlgoScrypt:
		return "scrypt"
	case AlgoKeccak:
		return "keccak"
	}
	return fmt.Sprintf("algo(%d)", int(a))
}

// ParseAlgo maps an algorithm name to its id.
func ParseAlgo(name string) (Algo, error) {
	for a := Algo(0); a < algoCount; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// The mining algorithm of a block is carried in bits 9..11 of the block
// version word, leaving the low bits for the chain version number.
const (
	BlockVersionDefault  = int32(2)
	BlockVersionAlgoMask = int32(7) << 9
)

// AlgoFromVersion extracts the algorithm id from a block version word.
// Unknown values fall back to sha256d, matching historical behavior for
// pre-multi-algo blocks.
func AlgoFromVersion(version int32) Algo {
	a := Algo(version >> 9 & 7)
	if a >= algoCount {
		return AlgoSHA256D
	}
	return a
}

// VersionForAlgo returns the default block version word carrying the given
// algorithm id.
func VersionForAlgo(algo Algo) int32 {
	return BlockVersionDefault | int32(algo)<<9
}

// ChainConfig holds the consensus parameters of a Trinity network. All
// fields are read-only after construction; engines receive the config
// through the chain view and never mutate it.
type ChainConfig struct {
	Name string

	// PowLimits is the easiest allowed target per algorithm. A block whose
	// decoded target exceeds its algorithm's limit is invalid.
	PowLimits [AlgoCount]*uint256.Int

	// AlgoWorkFactors normalizes per-block work across algorithms so that
	// summed chain work is comparable between chains mined with different
	// algorithm mixes.
	AlgoWorkFactors [AlgoCount]uint64

	TargetTimespan int64 // retarget period in seconds
	TargetSpacing  int64 // desired seconds between blocks of one algorithm

	// Adjustment bounds, in percent, for the two difficulty eras. Blocks at
	// or above DiffAdjustV2Height use the V2 values.
	MaxAdjustUpV1   int64
	MaxAdjustDownV1 int64
	MaxAdjustUpV2   int64
	MaxAdjustDownV2 int64

	DiffAdjustV2Height int64

	// PowOverrideStart..PowOverrideEnd is a historical band in which
	// retargeting was disabled and blocks carried their own bits through
	// unchanged. Zero PowOverrideEnd disables the band.
	PowOverrideStart int64
	PowOverrideEnd   int64

	AllowMinDifficulty bool // testnet rule: min-difficulty blocks after a gap
	SkipPowCheck       bool // test networks only: accept any hash
}

var (
	maxTarget       = new(uint256.Int).Not(new(uint256.Int))
	mainPowLimit    = new(uint256.Int).Rsh(maxTarget, 20)
	testPowLimit    = new(uint256.Int).Rsh(maxTarget, 16)
	regtestPowLimit = new(uint256.Int).Rsh(maxTarget, 1)
)

var (
	// MainnetChainConfig is the consensus configuration of the Trinity
	// main network.
	MainnetChainConfig = &ChainConfig{
		Name:               "mainnet",
		PowLimits:          [AlgoCount]*uint256.Int{mainPowLimit, mainPowLimit, mainPowLimit},
		AlgoWorkFactors:    [AlgoCount]uint64{1, 4096, 128},
		TargetTimespan:     1500,
		TargetSpacing:      150,
		MaxAdjustUpV1:      4,
		MaxAdjustDownV1:    40,
		MaxAdjustUpV2:      2,
		MaxAdjustDownV2:    16,
		DiffAdjustV2Height: 225000,
		PowOverrideStart:   915235,
		PowOverrideEnd:     955000,
	}

	// TestnetChainConfig relaxes difficulty so that test blocks can be
	// mined on commodity hardware.
	TestnetChainConfig = &ChainConfig{
		Name:               "testnet",
		PowLimits:          [AlgoCount]*uint256.Int{testPowLimit, testPowLimit, testPowLimit},
		AlgoWorkFactors:    [AlgoCount]uint64{1, 4096, 128},
		TargetTimespan:     1500,
		TargetSpacing:      150,
		MaxAdjustUpV1:      4,
		MaxAdjustDownV1:    40,
		MaxAdjustUpV2:      2,
		MaxAdjustDownV2:    16,
		DiffAdjustV2Height: 1,
		AllowMinDifficulty: true,
	}

	// RegtestChainConfig skips proof-of-work checks entirely.
	RegtestChainConfig = &ChainConfig{
		Name:               "regtest",
		PowLimits:          [AlgoCount]*uint256.Int{regtestPowLimit, regtestPowLimit, regtestPowLimit},
		AlgoWorkFactors:    [AlgoCount]uint64{1, 4096, 128},
		TargetTimespan:     1500,
		TargetSpacing:      150,
		MaxAdjustUpV1:      4,
		MaxAdjustDownV1:    40,
		MaxAdjustUpV2:      2,
		MaxAdjustDownV2:    16,
		DiffAdjustV2Height: 1,
		SkipPowCheck:       true,
	}
)

// PowLimit returns the easiest allowed target for the given algorithm.
func (c *ChainConfig) PowLimit(algo Algo) *uint256.Int {
	return c.PowLimits[algo]
}

// AlgoWorkFactor returns the work normalization factor for the given
// algorithm.
func (c *ChainConfig) AlgoWorkFactor(algo Algo) uint64 {
	return c.AlgoWorkFactors[algo]
}

// AveragingInterval is the number of same-algorithm blocks spanned by one
// retarget window.
func (c *ChainConfig) AveragingInterval() int64 {
	return c.TargetTimespan / c.TargetSpacing
}

// AdjustBounds resolves the difficulty era for a block height and returns
// the maximum adjustment percentages (up, down) in force at that height.
func (c *ChainConfig) AdjustBounds(height int64) (maxUp, maxDown int64) {
	if height >= c.DiffAdjustV2Height {
		return c.MaxAdjustUpV2, c.MaxAdjustDownV2
	}
	return c.MaxAdjustUpV1, c.MaxAdjustDownV1
}

// IsPowOverride reports whether the given height falls inside the
// historical band where retargeting was disabled.
func (c *ChainConfig) IsPowOverride(height int64) bool {
	return c.PowOverrideEnd > 0 && height >= c.PowOverrideStart && height <= c.PowOverrideEnd
}
