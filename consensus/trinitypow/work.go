package trinitypow

import (
	"github.com/holiman/uint256"

	"github.com/Action-Committee/Trinity/params"
)

// CalcBlockWork returns the expected number of hash attempts behind a
// block at the given compact target: 2^256 / (target+1). 2^256 itself does
// not fit in 256 bits, but as it is at least target+1 the quotient equals
// ~target / (target+1) + 1, which does. Returns zero for bits that decode
// negative, overflowing or zero, so invalid blocks contribute no work.
func CalcBlockWork(bits uint32) *uint256.Int {
	target, negative, overflow := CompactToTarget(bits)
	if negative || overflow || target.IsZero() {
		return new(uint256.Int)
	}
	denom := new(uint256.Int).AddUint64(target, 1)
	work := new(uint256.Int).Not(target)
	work.Div(work, denom)
	return work.AddUint64(work, 1)
}

// CalcBlockProof weights a block's work by the per-algorithm normalization
// factor so that sums over mixed-algorithm chains are comparable when
// picking the best chain.
func CalcBlockProof(config *params.ChainConfig, bits uint32, algo params.Algo) *uint256.Int {
	work := CalcBlockWork(bits)
	return work.Mul(work, uint256.NewInt(config.AlgoWorkFactor(algo)))
}
