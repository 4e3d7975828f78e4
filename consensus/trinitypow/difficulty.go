package trinitypow

import (
	"github.com/holiman/uint256"

	"github.com/Action-Committee/Trinity/consensus"
	"github.com/Action-Committee/Trinity/core/types"
	"github.com/Action-Committee/Trinity/internal/logging"
)

// NextWorkRequired computes the compact difficulty a block extending last
// must carry. last is the current chain tip (nil when mining the first
// block); header supplies the candidate's algorithm, timestamp and, inside
// the historical override band, its own claimed bits.
func NextWorkRequired(chain consensus.ChainReader, last *types.BlockNode, header *types.Header) uint32 {
	config := chain.Config()

	// Historical band in which retargeting was disabled; blocks carried
	// their own bits through unchanged. Bypasses everything below.
	if last != nil && config.IsPowOverride(int64(last.Height)) {
		return header.Bits
	}

	algo := header.Algo()
	powLimit := TargetToCompact(config.PowLimit(algo))

	// Genesis block.
	if last == nil {
		return powLimit
	}

	if config.AllowMinDifficulty {
		// Testnet rule: when more than twice the target spacing has passed
		// since the previous block, allow a minimum-difficulty block.
		if int64(header.Time) > last.Time+config.TargetSpacing*2 {
			return powLimit
		}
		// Otherwise return the last bits not produced by the rule above.
		node := last
		for chain.Parent(node) != nil && int64(node.Height)%config.AveragingInterval() != 0 && node.Bits == powLimit {
			node = chain.Parent(node)
		}
		return node.Bits
	}

	// Previous block mined with the candidate's algorithm.
	prev := chain.LastNodeForAlgo(last, algo)

	// Walk back to the first block of the averaging window, hopping only
	// across blocks of the same algorithm.
	first := prev
	interval := config.AveragingInterval()
	for i := int64(0); first != nil && i < interval-1; i++ {
		first = chain.LastNodeForAlgo(chain.Parent(first), algo)
	}
	if first == nil {
		// Not enough history for this algorithm yet.
		return powLimit
	}

	actualTimespan := prev.Time - first.Time
	maxAdjustUp, maxAdjustDown := config.AdjustBounds(int64(last.Height) + 1)
	minTimespan := config.TargetTimespan * (100 - maxAdjustUp) / 100
	maxTimespan := config.TargetTimespan * (100 + maxAdjustDown) / 100
	clamped := actualTimespan
	if clamped < minTimespan {
		clamped = minTimespan
	}
	if clamped > maxTimespan {
		clamped = maxTimespan
	}
	if clamped != actualTimespan {
		retargetClampCounter.Inc()
	}

	oldBits := prev.Bits
	newTarget, _, _ := CompactToTarget(oldBits)
	// The intermediate product can spill one bit past 256 for targets near
	// the limit. Drop a bit before the multiply and restore it after; the
	// rounding this introduces is consensus-frozen, so the 235-bit
	// threshold must not be tightened.
	shift := newTarget.BitLen() > 235
	if shift {
		newTarget.Rsh(newTarget, 1)
	}
	newTarget.Mul(newTarget, uint256.NewInt(uint64(clamped)))
	newTarget.Div(newTarget, uint256.NewInt(uint64(config.TargetTimespan)))
	if shift {
		newTarget.Lsh(newTarget, 1)
	}
	if newTarget.Cmp(config.PowLimit(algo)) > 0 {
		newTarget.Set(config.PowLimit(algo))
	}
	newBits := TargetToCompact(newTarget)

	logging.GetLogger().Debugw("retarget",
		"algo", algo.String(),
		"height", last.Height+1,
		"targetTimespan", config.TargetTimespan,
		"actualTimespan", actualTimespan,
		"clampedTimespan", clamped,
		"before", formatBits(oldBits),
		"after", formatBits(newBits),
	)
	return newBits
}
